package roster

import (
	"fmt"

	"github.com/jward/roster/internal/store"
)

// Service owns a collection of users and is the creation path that
// guarantees every appended user carries an identifier. Retrieval is a
// linear first-match scan in insertion order; identifiers are not
// unique, and the service does not try to make them so.
type Service struct {
	store Store
	idgen IDGenerator
}

// Option configures a Service.
type Option func(*Service)

// WithStore backs the Service with st instead of the default in-memory
// store. The Service takes ownership: Close closes st.
func WithStore(st Store) Option {
	return func(s *Service) {
		s.store = st
	}
}

// WithIDGenerator makes the Service assign identifiers from gen
// instead of the process-wide random source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Service) {
		s.idgen = gen
	}
}

// NewService creates a Service. Without options it uses the in-memory
// store and random identifier assignment.
func NewService(opts ...Option) *Service {
	s := &Service{
		store: store.NewMemory(),
		idgen: defaultIDGen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a user from name and email, assigns it an identifier,
// and appends it to the collection. The identifier is set before
// insertion, so every user created through the service has one. The
// returned user is the stored value; with the in-memory backend it is
// a shared reference into the collection.
func (s *Service) Create(name, email string) (*User, error) {
	u := store.NewUser(name, email)
	id := s.idgen.NextID()
	u.ID = &id
	if err := s.store.Insert(u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUser returns the first user, in insertion order, whose identifier
// equals id. Returns (nil, nil) after a full scan with no match;
// absence is an expected result, not an error.
func (s *Service) GetUser(id int64) (*User, error) {
	u, err := s.store.ByID(id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// Users returns the collection in insertion order.
func (s *Service) Users() ([]*User, error) {
	users, err := s.store.All()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Count returns the number of users in the collection.
func (s *Service) Count() (int, error) {
	n, err := s.store.Count()
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Close releases the underlying store's resources.
func (s *Service) Close() error {
	return s.store.Close()
}
