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
	"eventhub_backend/internals/features/events/dto"
	"eventhub_backend/internals/features/events/model"
	helper "eventhub_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB *mongo.Database
}

func NewEventController(db *mongo.Database) *EventController {
	return &EventController{DB: db}
}

func (ctrl *EventController) collection() *mongo.Collection {
	return ctrl.DB.Collection(database.EventsCollection)
}

// GetEvents lists every event, newest first.
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.collection().Find(c.UserContext(), bson.M{}, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	events := []model.Event{}
	if err := cursor.All(c.UserContext(), &events); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode events")
	}
	return helper.Success(c, "Events fetched", events)
}

// CreateEvent inserts a new event. Status always starts as pending; an admin
// approves it later via the status route.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	event := model.Event{
		Title:          body.Title,
		Description:    body.Description,
		Image:          body.Image,
		Date:           body.Date,
		Time:           body.Time,
		Location:       body.Location,
		Category:       body.Category,
		TotalTickets:   body.TotalTickets,
		TicketPrice:    body.TicketPrice,
		Status:         model.StatusPending,
		OrganizerEmail: body.OrganizerEmail,
		CreatedAt:      time.Now().UTC(),
	}

	res, err := ctrl.collection().InsertOne(c.UserContext(), event)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	event.ID = res.InsertedID.(primitive.ObjectID)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", event)
}

func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.Event
	err = ctrl.collection().FindOne(c.UserContext(), bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.NotFound(c, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}
	return helper.Success(c, "Event fetched", event)
}

// UpdateEvent applies a partial update: only fields present in the body are
// set, everything else stays untouched.
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
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
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "Event not found")
	}
	return helper.Success(c, "Event updated", fiber.Map{"modifiedCount": res.ModifiedCount})
}

func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res, err := ctrl.collection().DeleteOne(c.UserContext(), bson.M{"_id": id})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.DeletedCount == 0 {
		return helper.NotFound(c, "Event not found")
	}
	return helper.Success(c, "Event deleted", fiber.Map{"deletedCount": res.DeletedCount})
}

// UpdateEventStatus is the admin-only status patch behind /update-event/:id.
func (ctrl *EventController) UpdateEventStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var body dto.UpdateEventStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.collection().UpdateOne(c.UserContext(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": body.Status}})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event status")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "Event not found")
	}
	return helper.Success(c, "Event status updated", fiber.Map{"status": body.Status})
}

// GetAllEvents is the paginated listing with an optional status filter.
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	params, err := helper.ParsePageParams(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	total, err := ctrl.collection().CountDocuments(c.UserContext(), filter)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(params.Skip()).
		SetLimit(params.Limit())
	cursor, err := ctrl.collection().Find(c.UserContext(), filter, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	events := []model.Event{}
	if err := cursor.All(c.UserContext(), &events); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode events")
	}

	return helper.Success(c, "Events fetched", helper.Paged{
		Items:      events,
		TotalPages: params.TotalPages(total),
	})
}
