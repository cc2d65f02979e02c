package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthToken is an opaque bearer token tied to a user. Tokens expire; the
// middleware only accepts tokens whose ExpiresAt lies in the future.
type AuthToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"token"`
	UserID    primitive.ObjectID `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}
