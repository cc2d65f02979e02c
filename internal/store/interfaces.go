package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frbarbre/contacts-api/internal/model"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("not found")

// ContactStore defines the contract for contact data access
type ContactStore interface {
	// List returns every contact ordered by created_at descending, ties
	// broken by last name ascending.
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id model.ContactID) (*model.Contact, error)
	// Create inserts the contact and re-reads the persisted document so the
	// store-assigned identifier lands back in *contact.
	Create(ctx context.Context, contact *model.Contact) error
	// Update replaces only the fields in upd and returns the updated
	// document. A zero-modification update reports ErrNotFound.
	Update(ctx context.Context, id model.ContactID, upd model.ContactUpdate) (*model.Contact, error)
	Delete(ctx context.Context, id model.ContactID) error
	// Search matches query as a case-insensitive substring of first, last
	// or twitter. An empty query matches everything.
	Search(ctx context.Context, query string) ([]model.Contact, error)
	// SetFavorite persists only the favorite flag.
	SetFavorite(ctx context.Context, id model.ContactID, favorite bool) error
}

// UserStore defines the contract for user account data access
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// TokenStore defines the contract for bearer token data access
type TokenStore interface {
	Create(ctx context.Context, token *model.AuthToken) error
	// GetValid returns the token only while it has not expired.
	GetValid(ctx context.Context, token string, now time.Time) (*model.AuthToken, error)
	Delete(ctx context.Context, token string) error
}
