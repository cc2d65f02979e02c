package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthService interface {
	// Register creates an account and returns it with a fresh bearer token.
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	SignIn(ctx context.Context, email, password string) (*model.User, string, error)
	SignOut(ctx context.Context, token string) error
	// Authenticate resolves a bearer token to its user. Expired or unknown
	// tokens return ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userStore  store.UserStore
	tokenStore store.TokenStore
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(userStore store.UserStore, tokenStore store.TokenStore, tokenTTLDays int) AuthService {
	return &authService{
		userStore:  userStore,
		tokenStore: tokenStore,
		tokenTTL:   time.Duration(tokenTTLDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

func (s *authService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("checking email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:     email,
		Password:  string(hash),
		CreatedAt: s.now().UTC(),
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to create user", "error", err, "email", email)
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID.Hex())
	return user, token, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	if err := s.tokenStore.Delete(ctx, token); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	authToken, err := s.tokenStore.GetValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("looking up token: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, authToken.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("looking up token user: %w", err)
	}

	return user, nil
}

func (s *authService) issueToken(ctx context.Context, user *model.User) (string, error) {
	value, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	authToken := &model.AuthToken{
		Token:     value.String(),
		UserID:    user.ID,
		CreatedAt: s.now().UTC(),
		ExpiresAt: s.now().UTC().Add(s.tokenTTL),
	}
	if err := s.tokenStore.Create(ctx, authToken); err != nil {
		slog.ErrorContext(ctx, "failed to create auth token", "error", err, "user_id", user.ID.Hex())
		return "", fmt.Errorf("creating auth token: %w", err)
	}

	return authToken.Token, nil
}
