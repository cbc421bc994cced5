package session

import (
	"database/sql"
	"fmt"
)

// Storage keys. The username is duplicated outside the serialized user
// record for fast header lookup.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyUsername = "username"
)

// PlaceholderToken is the constant stand-in credential. It is never validated
// server-side and never expires.
const PlaceholderToken = "mock-token"

const schema = `
CREATE TABLE IF NOT EXISTS session (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is the durable key-value session state. Reads happen on every API
// request (header lookup); writes only from explicit auth actions, so plain
// last-write-wins semantics are sufficient.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on the given database, initializing the session
// table if it does not exist.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize session table: %w", err)
	}
	return &Store{db: db}, nil
}

// Get retrieves a stored value by key. The second return is false when the
// key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	return value, true, nil
}

// Username returns the stored username, or the empty string when no session
// exists. It is the read-accessor handed to the HTTP client; errors degrade
// to an unauthenticated request rather than failing the caller.
func (s *Store) Username() string {
	value, ok, err := s.Get(KeyUsername)
	if err != nil || !ok {
		return ""
	}
	return value
}

// PutSession writes all three session keys in a single transaction so that a
// partial failure cannot leave the store with a username but no user record.
func (s *Store) PutSession(username, token string, user []byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session write: %w", err)
	}
	defer tx.Rollback()

	upsert := `INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	for _, kv := range []struct{ key, value string }{
		{KeyUsername, username},
		{KeyUser, string(user)},
		{KeyToken, token},
	} {
		if _, err := tx.Exec(upsert, kv.key, kv.value); err != nil {
			return fmt.Errorf("failed to write session key %s: %w", kv.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session write: %w", err)
	}

	return nil
}

// Clear removes all session keys in a single transaction.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session clear: %w", err)
	}
	defer tx.Rollback()

	for _, key := range []string{KeyToken, KeyUser, KeyUsername} {
		if _, err := tx.Exec(`DELETE FROM session WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to clear session key %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session clear: %w", err)
	}

	return nil
}
