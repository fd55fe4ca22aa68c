package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventhub_backend/internals/constants"
	database "eventhub_backend/internals/databases"
	helper "eventhub_backend/internals/helpers"
)

// OnlyRoles checks the caller's stored role against allowedRoles. The role is
// read from the users collection on every request, so a role change by an
// admin takes effect without re-issuing the token.
func OnlyRoles(db *mongo.Database, customForbiddenMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := TokenEmail(c)
		if email == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: missing email information")
		}

		var user struct {
			Role string `bson:"role"`
		}
		err := db.Collection(database.UsersCollection).
			FindOne(reqCtx(c), bson.M{"email": email}).
			Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return helper.Error(c, fiber.StatusForbidden, "Forbidden: unknown user")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		for _, allowed := range allowedRoles {
			if user.Role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.Error(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// Shortcuts for the three roles the app knows.
func OnlyAdmin(db *mongo.Database, feature string) fiber.Handler {
	return OnlyRoles(db, constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}

func OnlyOrganizer(db *mongo.Database, feature string) fiber.Handler {
	return OnlyRoles(db, constants.RoleErrorOrganizer(feature), constants.RoleOrganizer)
}

func OnlyAttendee(db *mongo.Database, feature string) fiber.Handler {
	return OnlyRoles(db, constants.RoleErrorAttendee(feature), constants.RoleAttendee)
}

func reqCtx(c *fiber.Ctx) context.Context {
	return c.UserContext()
}
