// Package store holds the User record and the storage backends behind
// the roster service: an insertion-ordered in-memory collection and a
// SQLite-backed equivalent.
package store

// Store is the storage layer behind a roster service. Implementations
// preserve insertion order and permit duplicate identifiers. There is
// no secondary index; lookup is first-match in insertion order.
type Store interface {
	// Insert appends a user to the collection. No uniqueness check is
	// performed; a user with a nil ID is accepted.
	Insert(u *User) error

	// ByID returns the first user, in insertion order, whose identifier
	// is set and equals id. Returns (nil, nil) when no user matches:
	// absence is an expected result, not an error.
	ByID(id int64) (*User, error)

	// All returns every user in insertion order.
	All() ([]*User, error)

	// Count returns the number of users held.
	Count() (int, error)

	// Close releases any resources held by the backend.
	Close() error
}
