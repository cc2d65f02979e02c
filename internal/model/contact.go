package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a single address-book entry. The ID and CreatedAt fields are
// assigned server-side and never accepted from clients.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Avatar    string             `bson:"avatar"`
	First     string             `bson:"first"`
	Last      string             `bson:"last"`
	Twitter   string             `bson:"twitter"`
	Favorite  bool               `bson:"favorite"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ContactUpdate carries the replaceable fields of a contact. CreatedAt and
// the identifier are deliberately absent; updates never touch them.
type ContactUpdate struct {
	Avatar   string
	First    string
	Last     string
	Twitter  string
	Favorite bool
}
