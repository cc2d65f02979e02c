package store

import (
	"github.com/frbarbre/contacts-api/core/db"
)

type Stores struct {
	db *db.DB
}

func NewStores(database *db.DB) *Stores {
	return &Stores{db: database}
}

func (s *Stores) Contacts() ContactStore {
	return newContactStore(s.db.Contacts())
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.db.Users())
}

func (s *Stores) Tokens() TokenStore {
	return newTokenStore(s.db.AuthTokens())
}
