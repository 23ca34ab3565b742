package store

import "strings"

// User is a directory entry: a name, an email, and an optional numeric
// identifier. ID is nil until an identifier is assigned; users built
// through the service's creation path always have one before they are
// inserted.
type User struct {
	Name  string
	Email string
	ID    *int64
}

// NewUser builds a User with no identifier assigned. No validation is
// performed; an invalid-looking email is accepted as-is.
func NewUser(name, email string) *User {
	return &User{Name: name, Email: email}
}

// IsValid reports whether the email looks like an address: it contains
// an @ character. No further format checking is done.
func (u *User) IsValid() bool {
	return strings.Contains(u.Email, "@")
}
