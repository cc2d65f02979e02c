package service_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frbarbre/contacts-api/internal/model"
)

type mockContactStore struct {
	listFn        func(ctx context.Context) ([]model.Contact, error)
	getFn         func(ctx context.Context, id model.ContactID) (*model.Contact, error)
	createFn      func(ctx context.Context, contact *model.Contact) error
	updateFn      func(ctx context.Context, id model.ContactID, upd model.ContactUpdate) (*model.Contact, error)
	deleteFn      func(ctx context.Context, id model.ContactID) error
	searchFn      func(ctx context.Context, query string) ([]model.Contact, error)
	setFavoriteFn func(ctx context.Context, id model.ContactID, favorite bool) error
}

func (m *mockContactStore) List(ctx context.Context) ([]model.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockContactStore) Get(ctx context.Context, id model.ContactID) (*model.Contact, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockContactStore) Create(ctx context.Context, contact *model.Contact) error {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return nil
}

func (m *mockContactStore) Update(ctx context.Context, id model.ContactID, upd model.ContactUpdate) (*model.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockContactStore) Delete(ctx context.Context, id model.ContactID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockContactStore) Search(ctx context.Context, query string) ([]model.Contact, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

func (m *mockContactStore) SetFavorite(ctx context.Context, id model.ContactID, favorite bool) error {
	if m.setFavoriteFn != nil {
		return m.setFavoriteFn(ctx, id, favorite)
	}
	return nil
}

type mockUserStore struct {
	getByIDFn    func(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn     func(ctx context.Context, user *model.User) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

type mockTokenStore struct {
	createFn   func(ctx context.Context, token *model.AuthToken) error
	getValidFn func(ctx context.Context, token string, now time.Time) (*model.AuthToken, error)
	deleteFn   func(ctx context.Context, token string) error
}

func (m *mockTokenStore) Create(ctx context.Context, token *model.AuthToken) error {
	if m.createFn != nil {
		return m.createFn(ctx, token)
	}
	return nil
}

func (m *mockTokenStore) GetValid(ctx context.Context, token string, now time.Time) (*model.AuthToken, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, token, now)
	}
	return nil, nil
}

func (m *mockTokenStore) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}
