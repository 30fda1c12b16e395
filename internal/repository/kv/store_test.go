package kv

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSQLStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"value"}).AddRow("alice")
		mock.ExpectQuery(`SELECT value FROM game_state WHERE key = \$1`).
			WithArgs("currentUser").
			WillReturnRows(rows)

		value, ok, err := store.Get("currentUser")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "alice", value)
	})

	t.Run("absent key", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM game_state WHERE key = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		value, ok, err := store.Get("missing")

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM game_state WHERE key = \$1`).
			WithArgs("currentUser").
			WillReturnError(errors.New("connection refused"))

		_, ok, err := store.Get("currentUser")

		assert.Error(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO game_state`).
			WithArgs("stats_alice", `{"wins":3}`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Set("stats_alice", `{"wins":3}`)

		assert.NoError(t, err)
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO game_state`).
			WithArgs("stats_alice", `{"wins":3}`).
			WillReturnError(errors.New("disk full"))

		err := store.Set("stats_alice", `{"wins":3}`)

		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	t.Run("existing key", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM game_state WHERE key = \$1`).
			WithArgs("currentUser").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, store.Remove("currentUser"))
	})

	t.Run("absent key is not an error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM game_state WHERE key = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, store.Remove("missing"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
