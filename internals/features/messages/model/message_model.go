package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusUnseen = "unseen"
	StatusSeen   = "seen"
)

type Message struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Message string             `bson:"message" json:"message"`
	Status  string             `bson:"status" json:"status"`
	Date    time.Time          `bson:"date" json:"date"`
}
