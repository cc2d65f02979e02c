package dto

import (
	"net/mail"

	"github.com/frbarbre/contacts-api/internal/model"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.Email == "" {
		errs.add("email", reasonRequired)
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs.add("email", "must be a valid email address")
	}

	if r.Password == "" {
		errs.add("password", reasonRequired)
	} else if len(r.Password) < 8 {
		errs.add("password", "must be at least 8 characters")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToAuthResponse(user *model.User, token string) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID.Hex(),
			Email: user.Email,
		},
	}
}
