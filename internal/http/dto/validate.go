package dto

// FieldErrors maps a field name to the reasons it failed validation. Every
// invalid field is reported so a client can fix the whole payload in one
// round-trip.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, reason string) {
	e[field] = append(e[field], reason)
}

const (
	reasonRequired   = "is required"
	reasonInvalidURL = "must be a valid URL"
	reasonTooLong    = "must be at most 100 characters"
)
