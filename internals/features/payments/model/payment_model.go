package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment snapshots the event at order time so later event edits don't
// rewrite what the buyer actually paid for. A record exists only between
// order and outcome: success marks it paid, failure removes it.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	EventID       string             `bson:"eventId" json:"eventId"`
	EventTitle    string             `bson:"eventTitle" json:"eventTitle"`
	TicketPrice   float64            `bson:"ticketPrice" json:"ticketPrice"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	BuyerName     string             `bson:"buyerName" json:"buyerName"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	BuyerPhone    string             `bson:"buyerPhone" json:"buyerPhone"`
	BuyerAddress  string             `bson:"buyerAddress" json:"buyerAddress"`
	PaidStatus    bool               `bson:"paidStatus" json:"paidStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
