package store

// Memory is the canonical slice-backed Store. Returned users are shared
// references into the collection, so a caller mutating one would see the
// change reflected in the store. Not safe for concurrent use.
type Memory struct {
	users []*User
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Insert appends u to the collection. Never fails.
func (m *Memory) Insert(u *User) error {
	m.users = append(m.users, u)
	return nil
}

// ByID scans the collection in insertion order and returns the first
// user whose identifier equals id, or (nil, nil) after a full scan with
// no match. Users with an unassigned identifier never match.
func (m *Memory) ByID(id int64) (*User, error) {
	for _, u := range m.users {
		if u.ID != nil && *u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// All returns the users in insertion order. The returned slice is a
// copy; the users it points to are shared.
func (m *Memory) All() ([]*User, error) {
	out := make([]*User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// Count returns the number of users held.
func (m *Memory) Count() (int, error) {
	return len(m.users), nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error {
	return nil
}
