package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a Store backed by a SQLite database. Insertion order is
// the rowid order of the users table, and the identifier column is
// nullable to preserve the unset-until-assigned contract. Unlike
// Memory, returned users are copies of the stored rows, not shared
// references.
//
// Pass ":memory:" as the DSN for a throwaway in-process database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and creates the schema.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A memory DSN exists per connection; cap the pool at one so every
	// statement sees the same database.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
  seq    INTEGER PRIMARY KEY AUTOINCREMENT,
  id     INTEGER,
  name   TEXT NOT NULL,
  email  TEXT NOT NULL
);
`

// migrate creates the users table. Idempotent. No index is created on
// the id column: lookups are linear scans, same as the Memory backend.
func (s *SQLite) migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Insert appends u as a new row. A nil identifier is stored as NULL.
func (s *SQLite) Insert(u *User) error {
	var id sql.NullInt64
	if u.ID != nil {
		id = sql.NullInt64{Int64: *u.ID, Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO users (id, name, email) VALUES (?, ?, ?)`,
		id, u.Name, u.Email,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// ByID returns the earliest-inserted user whose identifier equals id,
// or (nil, nil) when no row matches. NULL identifiers never match.
func (s *SQLite) ByID(id int64) (*User, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email FROM users WHERE id = ? ORDER BY seq LIMIT 1`,
		id,
	)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user %d: %w", id, err)
	}
	return u, nil
}

// All returns every user in insertion order.
func (s *SQLite) All() ([]*User, error) {
	rows, err := s.db.Query(`SELECT id, name, email FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: rows: %w", err)
	}
	return users, nil
}

// Count returns the number of rows in the users table.
func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(sc scanner) (*User, error) {
	var (
		id sql.NullInt64
		u  User
	)
	if err := sc.Scan(&id, &u.Name, &u.Email); err != nil {
		return nil, err
	}
	if id.Valid {
		u.ID = &id.Int64
	}
	return &u, nil
}
