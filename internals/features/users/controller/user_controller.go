package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	database "eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/users/dto"
	"eventhub_backend/internals/features/users/model"
	helper "eventhub_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *mongo.Database
}

func NewUserController(db *mongo.Database) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) collection() *mongo.Collection {
	return ctrl.DB.Collection(database.UsersCollection)
}

// CreateUser registers a user on first login. The unique index on email makes
// this race-safe: a concurrent duplicate insert surfaces as a duplicate key
// error instead of a second document.
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	user := model.User{
		Name:      body.Name,
		Email:     body.Email,
		Photo:     body.Photo,
		Role:      body.Role,
		CreatedAt: time.Now().UTC(),
	}

	res, err := ctrl.collection().InsertOne(c.UserContext(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return helper.Error(c, fiber.StatusConflict, "User already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", user)
}

func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	cursor, err := ctrl.collection().Find(c.UserContext(), bson.M{})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	users := []model.User{}
	if err := cursor.All(c.UserContext(), &users); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode users")
	}
	return helper.Success(c, "Users fetched", users)
}

func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.User
	err = ctrl.collection().FindOne(c.UserContext(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.NotFound(c, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.Success(c, "User fetched", user)
}

// GetUserRole returns the stored role for an email. An unknown email answers
// an empty role rather than 404 so the client can treat "no account yet" and
// "no role yet" the same way.
func (ctrl *UserController) GetUserRole(c *fiber.Ctx) error {
	email := c.Params("email")

	var user model.User
	err := ctrl.collection().FindOne(c.UserContext(), bson.M{"email": email}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user role")
	}
	return helper.Success(c, "Role fetched", fiber.Map{"role": user.Role})
}

// UpdateUserRole is the admin-only role change.
func (ctrl *UserController) UpdateUserRole(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.UpdateUserRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.collection().UpdateOne(c.UserContext(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": body.Role}})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "User not found")
	}
	return helper.Success(c, "Role updated", fiber.Map{"role": body.Role})
}

// IssueToken signs the access token for a logged-in email (POST /jwt).
func (ctrl *UserController) IssueToken(c *fiber.Ctx) error {
	var body dto.TokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := helper.SignAccessToken(body.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	return helper.Success(c, "Token issued", fiber.Map{"token": token})
}
