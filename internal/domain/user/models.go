package user

import "errors"

// ErrNotFound is returned when no local mirror record exists for a provider
// account.
var ErrNotFound = errors.New("user not found")

// User is the local mirror of an identity-provider account. The document id
// is the provider UID, so the mirror is keyed by the same identifier the
// provider hands out at signup.
type User struct {
	ID    string `bson:"_id" json:"id"`
	Email string `bson:"email" json:"email"`
}

// Identity is the subset of a provider account record this system uses.
type Identity struct {
	UID   string
	Email string
}
