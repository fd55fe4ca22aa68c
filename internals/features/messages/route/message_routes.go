package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	messageController "eventhub_backend/internals/features/messages/controller"
	"eventhub_backend/internals/middlewares/auth"
)

// MessageRoutes registers the contact-message endpoints. Submitting is public;
// reading and managing the inbox is admin work.
func MessageRoutes(app fiber.Router, db *mongo.Database) {
	ctrl := messageController.NewMessageController(db)

	app.Post("/messages", ctrl.CreateMessage)

	app.Get("/messages", auth.AuthMiddleware(), auth.OnlyAdmin(db, "the inbox"), ctrl.GetMessages)
	app.Patch("/messages", auth.AuthMiddleware(), auth.OnlyAdmin(db, "the inbox"), ctrl.MarkAllSeen)
	app.Patch("/messages/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "the inbox"), ctrl.MarkSeen)
	app.Delete("/messages/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "the inbox"), ctrl.DeleteMessage)
}
