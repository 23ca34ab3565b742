package roster

import "github.com/jward/roster/internal/store"

// Public type aliases for internal store types used in the Service API.
// These are Go type aliases (=), identical to the internal types at
// compile time, so external consumers never import internal/store.

type User = store.User
type Store = store.Store

// NewUser builds a User with no identifier assigned. No validation is
// performed at construction time.
func NewUser(name, email string) *User {
	return store.NewUser(name, email)
}

// NewMemoryStore returns the default slice-backed store: insertion
// ordered, duplicates permitted, returned users shared by reference.
func NewMemoryStore() Store {
	return store.NewMemory()
}

// NewSQLiteStore opens a SQLite-backed store at dsn. Pass ":memory:"
// for a throwaway in-process database.
func NewSQLiteStore(dsn string) (Store, error) {
	return store.NewSQLite(dsn)
}
