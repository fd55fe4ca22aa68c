package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventhub_backend/internals/configs"
	database "eventhub_backend/internals/databases"
	eventModel "eventhub_backend/internals/features/events/model"
	"eventhub_backend/internals/features/payments/dto"
	"eventhub_backend/internals/features/payments/model"
	"eventhub_backend/internals/features/payments/service"
	helper "eventhub_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *mongo.Database
}

func NewPaymentController(db *mongo.Database) *PaymentController {
	return &PaymentController{DB: db}
}

func (ctrl *PaymentController) collection() *mongo.Collection {
	return ctrl.DB.Collection(database.PaymentsCollection)
}

// CreateOrder starts the payment flow: load the event, open a gateway session
// with a fresh transaction id, and only then persist the pending record, so a
// refused session never leaves a record behind.
func (ctrl *PaymentController) CreateOrder(c *fiber.Ctx) error {
	var body dto.OrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	eventID, err := primitive.ObjectIDFromHex(body.EventID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event eventModel.Event
	err = ctrl.DB.Collection(database.EventsCollection).
		FindOne(c.UserContext(), bson.M{"_id": eventID}).
		Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return helper.NotFound(c, "Event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	trxID := uuid.NewString()
	sessionReq := service.SessionRequest{
		TransactionID:   trxID,
		Amount:          event.TicketPrice,
		Currency:        "BDT",
		ProductName:     event.Title,
		ProductCategory: event.Category,
		CustomerName:    body.Name,
		CustomerEmail:   body.Email,
		CustomerPhone:   body.Phone,
		CustomerAddress: body.Address,
		SuccessURL:      fmt.Sprintf("%s/payments/success/%s", configs.ServerURL, trxID),
		FailURL:         fmt.Sprintf("%s/payments/fail/%s", configs.ServerURL, trxID),
		CancelURL:       fmt.Sprintf("%s/payments/fail/%s", configs.ServerURL, trxID),
		IPNURL:          fmt.Sprintf("%s/payments/ipn", configs.ServerURL),
	}

	gatewayURL, err := service.Gateway.CreateSession(c.UserContext(), sessionReq)
	if err != nil {
		log.Printf("[ERROR] Gateway session failed for event %s: %v", body.EventID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway rejected the order")
	}

	payment := model.Payment{
		TransactionID: trxID,
		EventID:       body.EventID,
		EventTitle:    event.Title,
		TicketPrice:   event.TicketPrice,
		Amount:        event.TicketPrice,
		Currency:      "BDT",
		BuyerName:     body.Name,
		BuyerEmail:    body.Email,
		BuyerPhone:    body.Phone,
		BuyerAddress:  body.Address,
		PaidStatus:    false,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := ctrl.collection().InsertOne(c.UserContext(), payment); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.Success(c, "Order created", fiber.Map{"url": gatewayURL})
}

// PaymentSuccess is the gateway success callback: flip the matching record to
// paid. The unique transaction id index means a replayed callback can only
// touch the same record, never create a second one.
func (ctrl *PaymentController) PaymentSuccess(c *fiber.Ctx) error {
	trxID := c.Params("trx_Id")

	res, err := ctrl.collection().UpdateOne(c.UserContext(),
		bson.M{"transactionId": trxID},
		bson.M{"$set": bson.M{"paidStatus": true}})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to confirm payment")
	}
	if res.MatchedCount == 0 {
		return helper.NotFound(c, "Payment not found")
	}

	return c.Redirect(fmt.Sprintf("%s/payment/success/%s", configs.ClientURL, trxID), fiber.StatusSeeOther)
}

// PaymentFail removes the pending record outright; a failed or cancelled
// attempt leaves no trace and the buyer starts over with a fresh order.
func (ctrl *PaymentController) PaymentFail(c *fiber.Ctx) error {
	trxID := c.Params("trx_Id")

	res, err := ctrl.collection().DeleteOne(c.UserContext(), bson.M{"transactionId": trxID})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to discard payment")
	}
	if res.DeletedCount == 0 {
		return helper.NotFound(c, "Payment not found")
	}

	return c.Redirect(fmt.Sprintf("%s/payment/fail/%s", configs.ClientURL, trxID), fiber.StatusSeeOther)
}

// PaymentIPN acknowledges the gateway's out-of-band notification. The state
// change itself rides on the success/fail callbacks.
func (ctrl *PaymentController) PaymentIPN(c *fiber.Ctx) error {
	log.Printf("[INFO] IPN received: tran_id=%s status=%s", c.FormValue("tran_id"), c.FormValue("status"))
	return c.SendStatus(fiber.StatusOK)
}

func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.collection().Find(c.UserContext(), bson.M{}, opts)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	payments := []model.Payment{}
	if err := cursor.All(c.UserContext(), &payments); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode payments")
	}
	return helper.Success(c, "Payments fetched", payments)
}

// GetPaidStatusCount reports how many payments are confirmed vs still pending.
func (ctrl *PaymentController) GetPaidStatusCount(c *fiber.Ctx) error {
	paid, err := ctrl.collection().CountDocuments(c.UserContext(), bson.M{"paidStatus": true})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}
	pending, err := ctrl.collection().CountDocuments(c.UserContext(), bson.M{"paidStatus": false})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}
	return helper.Success(c, "Paid status counts", fiber.Map{"paid": paid, "pending": pending})
}

// GetRegisteredEvents lists the caller's paid payments, i.e. the events they
// hold a ticket for. The email always comes from the verified token; the
// query parameter is only a fallback for unauthenticated internal callers,
// never an override.
func (ctrl *PaymentController) GetRegisteredEvents(c *fiber.Ctx) error {
	email, _ := c.Locals("userEmail").(string)
	if email == "" {
		email = c.Query("email")
	}
	if email == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing email")
	}

	cursor, err := ctrl.collection().Find(c.UserContext(),
		bson.M{"buyerEmail": email, "paidStatus": true})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registered events")
	}

	payments := []model.Payment{}
	if err := cursor.All(c.UserContext(), &payments); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode registered events")
	}
	return helper.Success(c, "Registered events fetched", payments)
}
