package handler_test

import (
	"context"

	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/service"
)

type mockContactService struct {
	listFn           func(ctx context.Context) ([]model.Contact, error)
	getFn            func(ctx context.Context, id model.ContactID) (*model.Contact, error)
	createFn         func(ctx context.Context, params service.ContactParams) (*model.Contact, error)
	updateFn         func(ctx context.Context, id model.ContactID, params service.ContactParams) (*model.Contact, error)
	deleteFn         func(ctx context.Context, id model.ContactID) error
	searchFn         func(ctx context.Context, query string) ([]model.Contact, error)
	toggleFavoriteFn func(ctx context.Context, id model.ContactID) (*model.Contact, error)
}

func (m *mockContactService) List(ctx context.Context) ([]model.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Get(ctx context.Context, id model.ContactID) (*model.Contact, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockContactService) Create(ctx context.Context, params service.ContactParams) (*model.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return nil, nil
}

func (m *mockContactService) Update(ctx context.Context, id model.ContactID, params service.ContactParams) (*model.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, params)
	}
	return nil, nil
}

func (m *mockContactService) Delete(ctx context.Context, id model.ContactID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockContactService) Search(ctx context.Context, query string) ([]model.Contact, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

func (m *mockContactService) ToggleFavorite(ctx context.Context, id model.ContactID) (*model.Contact, error) {
	if m.toggleFavoriteFn != nil {
		return m.toggleFavoriteFn(ctx, id)
	}
	return nil, nil
}

type mockAuthService struct {
	registerFn     func(ctx context.Context, email, password string) (*model.User, string, error)
	signInFn       func(ctx context.Context, email, password string) (*model.User, string, error)
	signOutFn      func(ctx context.Context, token string) error
	authenticateFn func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, email, password)
	}
	return nil, "", nil
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, email, password)
	}
	return nil, "", nil
}

func (m *mockAuthService) SignOut(ctx context.Context, token string) error {
	if m.signOutFn != nil {
		return m.signOutFn(ctx, token)
	}
	return nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, nil
}
