package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// LikedEvents holds one document per user: the full set of event ids the
// user has favorited. The list is replaced wholesale on every submit.
type LikedEvents struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string             `bson:"username" json:"username"`
	LikedEvents []string           `bson:"likedEvents" json:"likedEvents"`
}
