package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event status lifecycle: pending -> approved | denied.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Image          string             `bson:"image" json:"image"`
	Date           string             `bson:"date" json:"date"`
	Time           string             `bson:"time" json:"time"`
	Location       string             `bson:"location" json:"location"`
	Category       string             `bson:"category" json:"category"`
	TotalTickets   int                `bson:"totalTickets" json:"totalTickets"`
	TicketPrice    float64            `bson:"ticketPrice" json:"ticketPrice"`
	Status         string             `bson:"status" json:"status"`
	OrganizerEmail string             `bson:"organizerEmail" json:"organizerEmail"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
