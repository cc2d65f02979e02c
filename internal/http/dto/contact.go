package dto

import (
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/frbarbre/contacts-api/internal/model"
	"github.com/frbarbre/contacts-api/internal/service"
)

const maxFieldLength = 100

// ContactInput is the client-supplied shape of a contact. Identifier and
// created_at are absent on purpose: clients never set them, and unknown keys
// in the request body are dropped during decoding.
type ContactInput struct {
	Avatar   string `json:"avatar"`
	First    string `json:"first"`
	Last     string `json:"last"`
	Twitter  string `json:"twitter"`
	Favorite *bool  `json:"favorite"`
}

// Validate checks every field and reports all problems at once. A nil return
// means the input is valid.
func (in ContactInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if in.Avatar == "" {
		errs.add("avatar", reasonRequired)
	} else if !isURL(in.Avatar) {
		errs.add("avatar", reasonInvalidURL)
	}

	validateName(errs, "first", in.First)
	validateName(errs, "last", in.Last)
	validateName(errs, "twitter", in.Twitter)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Params converts validated input into service parameters, defaulting
// favorite to false when omitted.
func (in ContactInput) Params() service.ContactParams {
	favorite := false
	if in.Favorite != nil {
		favorite = *in.Favorite
	}
	return service.ContactParams{
		Avatar:   in.Avatar,
		First:    in.First,
		Last:     in.Last,
		Twitter:  in.Twitter,
		Favorite: favorite,
	}
}

func validateName(errs FieldErrors, field, value string) {
	if value == "" {
		errs.add(field, reasonRequired)
		return
	}
	if utf8.RuneCountInString(value) > maxFieldLength {
		errs.add(field, reasonTooLong)
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Avatar    string    `json:"avatar"`
	First     string    `json:"first"`
	Last      string    `json:"last"`
	Twitter   string    `json:"twitter"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
}

func ToContactResponse(c *model.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID.Hex(),
		Avatar:    c.Avatar,
		First:     c.First,
		Last:      c.Last,
		Twitter:   c.Twitter,
		Favorite:  c.Favorite,
		CreatedAt: c.CreatedAt,
	}
}

func ToContactResponses(contacts []model.Contact) []ContactResponse {
	result := make([]ContactResponse, len(contacts))
	for i := range contacts {
		result[i] = *ToContactResponse(&contacts[i])
	}
	return result
}
