package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	eventRoutes "eventhub_backend/internals/features/events/route"
	feedbackRoutes "eventhub_backend/internals/features/feedback/route"
	likedRoutes "eventhub_backend/internals/features/liked/route"
	messageRoutes "eventhub_backend/internals/features/messages/route"
	paymentRoutes "eventhub_backend/internals/features/payments/route"
	userRoutes "eventhub_backend/internals/features/users/route"
)

// SetupRoutes registers every endpoint once at startup. Nothing below here
// may register routes at request time.
func SetupRoutes(app *fiber.App, db *mongo.Database) {
	log.Println("[INFO] Setting up UserRoutes...")
	userRoutes.UserRoutes(app, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoutes.EventRoutes(app, db)

	log.Println("[INFO] Setting up MessageRoutes...")
	messageRoutes.MessageRoutes(app, db)

	log.Println("[INFO] Setting up LikedRoutes...")
	likedRoutes.LikedRoutes(app, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoutes.PaymentRoutes(app, db)

	log.Println("[INFO] Setting up FeedbackRoutes...")
	feedbackRoutes.FeedbackRoutes(app, db)
}
