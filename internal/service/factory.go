package service

import (
	"github.com/frbarbre/contacts-api/core/config"
	"github.com/frbarbre/contacts-api/internal/store"
)

type Services struct {
	stores  *store.Stores
	authCfg config.AuthConfig
}

func NewServices(stores *store.Stores, authCfg config.AuthConfig) *Services {
	return &Services{
		stores:  stores,
		authCfg: authCfg,
	}
}

func (s *Services) Contacts() ContactService {
	return NewContactService(s.stores.Contacts())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Tokens(), s.authCfg.TokenTTLDays)
}
