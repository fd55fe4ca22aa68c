package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/messages/dto"
	"eventhub_backend/internals/features/messages/model"
	helper "eventhub_backend/internals/helpers"
)

var validate = validator.New()

type MessageController struct {
	DB *mongo.Database
}

func NewMessageController(db *mongo.Database) *MessageController {
	return &MessageController{DB: db}
}

func (ctrl *MessageController) collection() *mongo.Collection {
	return ctrl.DB.Collection(database.MessagesCollection)
}

// CreateMessage stores a contact-form submission as unseen.
func (ctrl *MessageController) CreateMessage(c *fiber.Ctx) error {
	var body dto.CreateMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	msg := model.Message{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
		Status:  model.StatusUnseen,
		Date:    time.Now().UTC(),
	}

	res, err := ctrl.collection().InsertOne(c.UserContext(), msg)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save message")
	}
	msg.ID = res.InsertedID.(primitive.ObjectID)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message sent", msg)
}

func (ctrl *MessageController) GetMessages(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := ctrl.collection().Find(c.UserContext(), bson.M{}, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	messages := []model.Message{}
	if err := cursor.All(c.UserContext(), &messages); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode messages")
	}
	return helper.Success(c, "Messages fetched", messages)
}

// MarkAllSeen flips every unseen message to seen.
func (ctrl *MessageController) MarkAllSeen(c *fiber.Ctx) error {
	res, err := ctrl.collection().UpdateMany(c.UserContext(),
		bson.M{"status": model.StatusUnseen},
		bson.M{"$set": bson.M{"status": model.StatusSeen}})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update messages")
	}
	return helper.Success(c, "Messages marked seen", fiber.Map{"modifiedCount": res.ModifiedCount})
}

func (ctrl *MessageController) MarkSeen(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid message id")
	}

	res, err := ctrl.collection().UpdateOne(c.UserContext(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": model.StatusSeen}})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "Message not found")
	}
	return helper.Success(c, "Message marked seen", fiber.Map{"modifiedCount": res.ModifiedCount})
}

func (ctrl *MessageController) DeleteMessage(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid message id")
	}

	res, err := ctrl.collection().DeleteOne(c.UserContext(), bson.M{"_id": id})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	if res.DeletedCount == 0 {
		return helper.NotFound(c, "Message not found")
	}
	return helper.Success(c, "Message deleted", fiber.Map{"deletedCount": res.DeletedCount})
}
