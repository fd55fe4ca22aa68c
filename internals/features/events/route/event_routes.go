package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	eventController "eventhub_backend/internals/features/events/controller"
	"eventhub_backend/internals/middlewares/auth"
)

// EventRoutes registers the event endpoints. Reads are public; creation is
// for organizers, status approval and deletion for admins.
func EventRoutes(app fiber.Router, db *mongo.Database) {
	ctrl := eventController.NewEventController(db)

	app.Get("/events", ctrl.GetEvents)
	app.Get("/all-events", ctrl.GetAllEvents)
	app.Get("/events/:id", ctrl.GetEventByID)

	app.Post("/events", auth.AuthMiddleware(), auth.OnlyOrganizer(db, "event creation"), ctrl.CreateEvent)
	app.Patch("/events/:id", auth.AuthMiddleware(), auth.OnlyOrganizer(db, "event update"), ctrl.UpdateEvent)
	app.Delete("/events/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "event deletion"), ctrl.DeleteEvent)
	app.Patch("/update-event/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "event approval"), ctrl.UpdateEventStatus)
}
