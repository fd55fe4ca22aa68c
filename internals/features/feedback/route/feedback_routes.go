package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	feedbackController "eventhub_backend/internals/features/feedback/controller"
	"eventhub_backend/internals/middlewares/auth"
)

func FeedbackRoutes(app fiber.Router, db *mongo.Database) {
	ctrl := feedbackController.NewFeedbackController(db)

	app.Get("/testimonial", ctrl.GetTestimonials)
	app.Post("/feedback", ctrl.CreateFeedback)
	app.Get("/feedback", ctrl.GetFeedbacks)
	app.Get("/feedback/:id", ctrl.GetFeedbackByID)

	app.Patch("/feedback/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "feedback moderation"), ctrl.UpdateFeedback)
	app.Delete("/feedback/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "feedback moderation"), ctrl.DeleteFeedback)
}
