package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/feedback/dto"
	"eventhub_backend/internals/features/feedback/model"
	helper "eventhub_backend/internals/helpers"
)

var validate = validator.New()

type FeedbackController struct {
	DB *mongo.Database
}

func NewFeedbackController(db *mongo.Database) *FeedbackController {
	return &FeedbackController{DB: db}
}

func (ctrl *FeedbackController) collection() *mongo.Collection {
	return ctrl.DB.Collection(database.FeedbacksCollection)
}

// CreateFeedback stores a submission as pending until an admin publishes it.
func (ctrl *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	var body dto.CreateFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	fb := model.Feedback{
		Name:      body.Name,
		Email:     body.Email,
		Rating:    body.Rating,
		Feedback:  body.Feedback,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	res, err := ctrl.collection().InsertOne(c.UserContext(), fb)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}
	fb.ID = res.InsertedID.(primitive.ObjectID)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feedback submitted", fb)
}

func (ctrl *FeedbackController) GetFeedbacks(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.collection().Find(c.UserContext(), bson.M{}, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch feedback")
	}

	feedbacks := []model.Feedback{}
	if err := cursor.All(c.UserContext(), &feedbacks); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode feedback")
	}
	return helper.Success(c, "Feedback fetched", feedbacks)
}

func (ctrl *FeedbackController) GetFeedbackByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid feedback id")
	}

	var fb model.Feedback
	err = ctrl.collection().FindOne(c.UserContext(), bson.M{"_id": id}).Decode(&fb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.NotFound(c, "Feedback not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch feedback")
	}
	return helper.Success(c, "Feedback fetched", fb)
}

// UpdateFeedback applies a partial update; publishing is a status change here.
func (ctrl *FeedbackController) UpdateFeedback(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid feedback id")
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	res, err := ctrl.collection().UpdateOne(c.UserContext(), bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update feedback")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "Feedback not found")
	}
	return helper.Success(c, "Feedback updated", fiber.Map{"modifiedCount": res.ModifiedCount})
}

func (ctrl *FeedbackController) DeleteFeedback(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid feedback id")
	}

	res, err := ctrl.collection().DeleteOne(c.UserContext(), bson.M{"_id": id})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete feedback")
	}
	if res.DeletedCount == 0 {
		return helper.NotFound(c, "Feedback not found")
	}
	return helper.Success(c, "Feedback deleted", fiber.Map{"deletedCount": res.DeletedCount})
}

// GetTestimonials returns only published feedback, for the public landing page.
func (ctrl *FeedbackController) GetTestimonials(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.collection().Find(c.UserContext(),
		bson.M{"status": model.StatusPublished}, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch testimonials")
	}

	feedbacks := []model.Feedback{}
	if err := cursor.All(c.UserContext(), &feedbacks); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode testimonials")
	}
	return helper.Success(c, "Testimonials fetched", feedbacks)
}
