package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a document in the messages collection. Name and Text are
// pointers so that fields missing from the request are left out of the
// stored document instead of being saved as empty strings.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      *string            `bson:"name,omitempty" json:"name,omitempty"`
	Text      *string            `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SaveMessageRequest is the body accepted by POST /messages/save, either as
// JSON or as a url-encoded form.
type SaveMessageRequest struct {
	Name    *string `json:"name" form:"name"`
	Message *string `json:"message" form:"message"`
}
