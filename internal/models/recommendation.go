package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RecommendationPending = "pending"
	RecommendationViewed  = "viewed"
)

// MaxRecommendationMessage bounds Recommendation.Message in characters.
const MaxRecommendationMessage = 500

// Recommendation is unique per (PropertyID, SenderID, RecipientID). Status only moves pending to viewed.
type Recommendation struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PropertyID  primitive.ObjectID `json:"propertyId" bson:"property"`
	SenderID    primitive.ObjectID `json:"senderId" bson:"sender"`
	RecipientID primitive.ObjectID `json:"recipientId" bson:"recipient"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type RecommendationResponse struct {
	Recommendation
	Property  *PropertyResponse `json:"property,omitempty"`
	Sender    *UserSummary      `json:"sender,omitempty"`
	Recipient *UserSummary      `json:"recipient,omitempty"`
}

// RecommendRequest names the recipient by email or by user id.
type RecommendRequest struct {
	RecipientEmail string `json:"recipientEmail" validate:"omitempty,email"`
	RecipientID    string `json:"recipientId" validate:"omitempty,len=24,hexadecimal"`
	Message        string `json:"message" validate:"max=500"`
}
