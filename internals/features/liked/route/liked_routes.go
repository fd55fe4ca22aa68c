package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	likedController "eventhub_backend/internals/features/liked/controller"
	"eventhub_backend/internals/middlewares/auth"
)

func LikedRoutes(app fiber.Router, db *mongo.Database) {
	ctrl := likedController.NewLikedController(db)

	app.Post("/addToLiked", auth.AuthMiddleware(), ctrl.AddToLiked)
	app.Get("/liked/:email", auth.AuthMiddleware(), ctrl.GetLikedByEmail)
	app.Delete("/deleteFavEvent/:username/:eventId", auth.AuthMiddleware(), ctrl.RemoveFavEvent)

	app.Get("/allLiked", auth.AuthMiddleware(), auth.OnlyAdmin(db, "favorites reporting"), ctrl.GetAllLiked)
	app.Get("/allLikedEventIds", ctrl.GetAllLikedEventIDs)
}
