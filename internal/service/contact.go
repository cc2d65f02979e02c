package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/store"
)

// ContactParams carries already-validated contact fields from the handler
// layer. Favorite defaults to false when the client omits it.
type ContactParams struct {
	Avatar   string
	First    string
	Last     string
	Twitter  string
	Favorite bool
}

type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id model.ContactID) (*model.Contact, error)
	Create(ctx context.Context, params ContactParams) (*model.Contact, error)
	Update(ctx context.Context, id model.ContactID, params ContactParams) (*model.Contact, error)
	Delete(ctx context.Context, id model.ContactID) error
	Search(ctx context.Context, query string) ([]model.Contact, error)
	ToggleFavorite(ctx context.Context, id model.ContactID) (*model.Contact, error)
}

type contactService struct {
	contactStore store.ContactStore
	now          func() time.Time
}

func NewContactService(contactStore store.ContactStore) ContactService {
	return &contactService{
		contactStore: contactStore,
		now:          time.Now,
	}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.contactStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) Get(ctx context.Context, id model.ContactID) (*model.Contact, error) {
	return s.contactStore.Get(ctx, id)
}

func (s *contactService) Create(ctx context.Context, params ContactParams) (*model.Contact, error) {
	contact := &model.Contact{
		Avatar:    params.Avatar,
		First:     params.First,
		Last:      params.Last,
		Twitter:   params.Twitter,
		Favorite:  params.Favorite,
		CreatedAt: s.now().UTC(),
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		slog.ErrorContext(ctx, "failed to create contact", "error", err)
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	slog.InfoContext(ctx, "contact created", "contact_id", contact.ID.Hex())
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id model.ContactID, params ContactParams) (*model.Contact, error) {
	contact, err := s.contactStore.Update(ctx, id, model.ContactUpdate{
		Avatar:   params.Avatar,
		First:    params.First,
		Last:     params.Last,
		Twitter:  params.Twitter,
		Favorite: params.Favorite,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "contact updated", "contact_id", id.Hex())
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id model.ContactID) error {
	if err := s.contactStore.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "contact deleted", "contact_id", id.Hex())
	return nil
}

func (s *contactService) Search(ctx context.Context, query string) ([]model.Contact, error) {
	contacts, err := s.contactStore.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching contacts: %w", err)
	}
	return contacts, nil
}

// ToggleFavorite reads the current flag and writes back its negation. The
// read and write are separate store calls, so two concurrent toggles on the
// same contact can lose one flip; see DESIGN.md for why this stays as-is.
func (s *contactService) ToggleFavorite(ctx context.Context, id model.ContactID) (*model.Contact, error) {
	contact, err := s.contactStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.contactStore.SetFavorite(ctx, id, !contact.Favorite); err != nil {
		return nil, err
	}

	return s.contactStore.Get(ctx, id)
}
