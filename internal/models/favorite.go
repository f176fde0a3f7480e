package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is unique per (UserID, PropertyID).
type Favorite struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"user" bson:"user"`
	PropertyID primitive.ObjectID `json:"propertyId" bson:"property"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type FavoriteResponse struct {
	ID        primitive.ObjectID `json:"_id"`
	UserID    primitive.ObjectID `json:"user"`
	Property  *PropertyResponse  `json:"property"`
	CreatedAt time.Time          `json:"createdAt"`
}

type FavoriteCheck struct {
	IsFavorite bool `json:"isFavorite"`
}
