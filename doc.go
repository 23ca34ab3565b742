// Package roster is a small in-memory user directory: a User record
// with a name, an email, and an optional numeric identifier, plus a
// Service that creates users and looks them up by identifier.
//
// # Model
//
// A User starts with no identifier. The creation path assigns one
// uniformly at random in [1, 10000] before the user is appended to the
// service's collection. Identifiers are not guaranteed unique;
// collisions are possible and unhandled, and lookup returns the
// earliest-inserted match. Email validity is a substring check: an
// email is valid iff it contains an @ character.
//
// # Usage
//
// Create a Service, add users, and retrieve them:
//
//	svc := roster.NewService()
//	defer svc.Close()
//
//	u, err := svc.Create("Alice", "alice@example.com")
//	if err != nil { ... }
//
//	got, err := svc.GetUser(*u.ID)
//
// GetUser returns (nil, nil) when no user has the given identifier:
// absence is an expected result, not an error.
//
// # Storage
//
// The Service stores users behind the [Store] interface. The default
// backend is an insertion-ordered in-memory slice whose returned users
// are shared references into the collection. [NewSQLiteStore] provides
// an equivalent SQLite-backed store (pass ":memory:" to keep it
// in-process); it returns copies rather than shared references. Both
// backends preserve insertion order, permit duplicate identifiers, and
// resolve lookups by first match.
//
// # Determinism
//
// Identifier assignment draws from the process-wide random source by
// default. Inject a generator with [WithIDGenerator], or seed one via
// [NewRandGenerator], to make identifiers reproducible in tests.
package roster
