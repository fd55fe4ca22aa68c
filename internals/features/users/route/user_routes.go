package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	userController "eventhub_backend/internals/features/users/controller"
	"eventhub_backend/internals/middlewares/auth"
)

func UserRoutes(app fiber.Router, db *mongo.Database) {
	ctrl := userController.NewUserController(db)

	app.Post("/jwt", ctrl.IssueToken)
	app.Post("/users", ctrl.CreateUser)
	app.Get("/users/role/:email", ctrl.GetUserRole)

	app.Get("/users", auth.AuthMiddleware(), auth.OnlyAdmin(db, "the user list"), ctrl.GetUsers)
	app.Get("/users/:id", auth.AuthMiddleware(), ctrl.GetUserByID)
	app.Patch("/users/:id", auth.AuthMiddleware(), auth.OnlyAdmin(db, "role management"), ctrl.UpdateUserRole)
}
