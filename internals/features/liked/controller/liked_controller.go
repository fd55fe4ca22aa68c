package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/liked/dto"
	"eventhub_backend/internals/features/liked/model"
	helper "eventhub_backend/internals/helpers"
)

var validate = validator.New()

type LikedController struct {
	DB *mongo.Database
}

func NewLikedController(db *mongo.Database) *LikedController {
	return &LikedController{DB: db}
}

func (ctrl *LikedController) collection() *mongo.Collection {
	return ctrl.DB.Collection(database.LikedEventsCollection)
}

// AddToLiked replaces the user's liked list with the submitted one in a
// single upsert. Repeating the same call leaves the same list, never a
// concatenation, and the unique username index keeps concurrent submits from
// creating two documents.
func (ctrl *LikedController) AddToLiked(c *fiber.Ctx) error {
	var body dto.AddToLikedRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	opts := options.Update().SetUpsert(true)
	res, err := ctrl.collection().UpdateOne(c.UserContext(),
		bson.M{"username": body.Username},
		bson.M{"$set": bson.M{"likedEvents": body.LikedEvents}},
		opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save liked events")
	}

	return helper.Success(c, "Liked events saved", fiber.Map{
		"matchedCount": res.MatchedCount,
		"upserted":     res.UpsertedCount > 0,
	})
}

func (ctrl *LikedController) GetLikedByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var doc model.LikedEvents
	err := ctrl.collection().FindOne(c.UserContext(), bson.M{"username": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.NotFound(c, "No liked events for this user")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch liked events")
	}
	return helper.Success(c, "Liked events fetched", doc)
}

func (ctrl *LikedController) GetAllLiked(c *fiber.Ctx) error {
	cursor, err := ctrl.collection().Find(c.UserContext(), bson.M{})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch liked events")
	}

	docs := []model.LikedEvents{}
	if err := cursor.All(c.UserContext(), &docs); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode liked events")
	}
	return helper.Success(c, "Liked events fetched", docs)
}

// GetAllLikedEventIDs flattens every liked id across all users into one list.
// Duplicates are kept on purpose: the client counts popularity from them.
func (ctrl *LikedController) GetAllLikedEventIDs(c *fiber.Ctx) error {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$likedEvents"}},
		{{Key: "$project", Value: bson.M{"_id": 0, "eventId": "$likedEvents"}}},
	}
	cursor, err := ctrl.collection().Aggregate(c.UserContext(), pipeline)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to aggregate liked events")
	}

	var rows []struct {
		EventID string `bson:"eventId"`
	}
	if err := cursor.All(c.UserContext(), &rows); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode liked events")
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EventID)
	}
	return helper.Success(c, "Liked event ids fetched", ids)
}

// RemoveFavEvent pulls a single event id from the user's list.
func (ctrl *LikedController) RemoveFavEvent(c *fiber.Ctx) error {
	username := c.Params("username")
	eventID := c.Params("eventId")

	res, err := ctrl.collection().UpdateOne(c.UserContext(),
		bson.M{"username": username},
		bson.M{"$pull": bson.M{"likedEvents": eventID}})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to remove liked event")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "No liked events for this user")
	}
	return helper.Success(c, "Liked event removed", fiber.Map{"modifiedCount": res.ModifiedCount})
}
