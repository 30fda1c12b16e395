package kv

import (
	"database/sql"
)

// SQLStore implements repository.Store over a single game_state table.
// The SQL uses $1 placeholders and ON CONFLICT upserts, which both the
// postgres and sqlite3 drivers accept, so one implementation serves both.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a new SQL-backed key-value store
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get returns the value for a key, or false if the key is absent
func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM game_state WHERE key = $1`
	err := s.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Set upserts a key, last write wins
func (s *SQLStore) Set(key, value string) error {
	query := `
		INSERT INTO game_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value
	`
	_, err := s.db.Exec(query, key, value)
	return err
}

// Remove deletes a key; removing an absent key is not an error
func (s *SQLStore) Remove(key string) error {
	query := `DELETE FROM game_state WHERE key = $1`
	_, err := s.db.Exec(query, key)
	return err
}
