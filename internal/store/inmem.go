package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frbarbre/contacts-api/internal/model"
)

// InMemoryContactStore is a map-backed ContactStore with the same observable
// semantics as the Mongo implementation, including the "zero documents
// modified means not found" behavior of Update. Intended for tests.
type InMemoryContactStore struct {
	mu       sync.RWMutex
	contacts map[primitive.ObjectID]model.Contact
}

func NewInMemoryContactStore() *InMemoryContactStore {
	return &InMemoryContactStore{
		contacts: make(map[primitive.ObjectID]model.Contact),
	}
}

func (s *InMemoryContactStore) List(_ context.Context) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c)
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		if !contacts[i].CreatedAt.Equal(contacts[j].CreatedAt) {
			return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
		}
		return contacts[i].Last < contacts[j].Last
	})
	return contacts, nil
}

func (s *InMemoryContactStore) Get(_ context.Context, id model.ContactID) (*model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contact, ok := s.contacts[id.ObjectID()]
	if !ok {
		return nil, ErrNotFound
	}
	return &contact, nil
}

func (s *InMemoryContactStore) Create(_ context.Context, contact *model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = primitive.NewObjectID()
	s.contacts[contact.ID] = *contact
	return nil
}

func (s *InMemoryContactStore) Update(_ context.Context, id model.ContactID, upd model.ContactUpdate) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[id.ObjectID()]
	if !ok {
		return nil, ErrNotFound
	}

	updated := existing
	updated.Avatar = upd.Avatar
	updated.First = upd.First
	updated.Last = upd.Last
	updated.Twitter = upd.Twitter
	updated.Favorite = upd.Favorite

	// Mongo reports no modification when the new values equal the old ones;
	// mirror that so tests exercise the same sharp edge.
	if updated == existing {
		return nil, ErrNotFound
	}

	s.contacts[id.ObjectID()] = updated
	return &updated, nil
}

func (s *InMemoryContactStore) Delete(_ context.Context, id model.ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id.ObjectID()]; !ok {
		return ErrNotFound
	}
	delete(s.contacts, id.ObjectID())
	return nil
}

func (s *InMemoryContactStore) Search(_ context.Context, query string) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	contacts := make([]model.Contact, 0)
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.First), q) ||
			strings.Contains(strings.ToLower(c.Last), q) ||
			strings.Contains(strings.ToLower(c.Twitter), q) {
			contacts = append(contacts, c)
		}
	}
	return contacts, nil
}

func (s *InMemoryContactStore) SetFavorite(_ context.Context, id model.ContactID, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact, ok := s.contacts[id.ObjectID()]
	if !ok {
		return ErrNotFound
	}
	contact.Favorite = favorite
	s.contacts[id.ObjectID()] = contact
	return nil
}
