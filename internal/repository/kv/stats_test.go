package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wordlebot/internal/domain"
	"wordlebot/internal/testutil"
)

func TestStatsRepo_PlayCount(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected int
	}{
		{
			name:     "no stored value",
			stored:   "",
			expected: 0,
		},
		{
			name:     "stored count",
			stored:   "7",
			expected: 7,
		},
		{
			name:     "malformed value defaults to zero",
			stored:   "seven",
			expected: 0,
		},
		{
			name:     "negative value defaults to zero",
			stored:   "-3",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMemoryStore()
			if tt.stored != "" {
				store.Put("playCount_alice", tt.stored)
			}
			repo := NewStatsRepo(store)

			count, err := repo.PlayCount("alice")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestStatsRepo_IncrementPlayCount(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := NewStatsRepo(store)

	count, err := repo.IncrementPlayCount("alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.IncrementPlayCount("alice")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	raw, ok := store.Raw("playCount_alice")
	assert.True(t, ok)
	assert.Equal(t, "2", raw)
}

func TestStatsRepo_Stats(t *testing.T) {
	t.Run("no stored value", func(t *testing.T) {
		repo := NewStatsRepo(testutil.NewMemoryStore())

		stats, recovered, err := repo.Stats("alice")

		assert.NoError(t, err)
		assert.False(t, recovered)
		assert.Equal(t, domain.Stats{}, stats)
	})

	t.Run("stored counters", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		store.Put("stats_alice", `{"wins":4,"currentStreak":2,"maxStreak":3}`)
		repo := NewStatsRepo(store)

		stats, recovered, err := repo.Stats("alice")

		assert.NoError(t, err)
		assert.False(t, recovered)
		assert.Equal(t, domain.Stats{Wins: 4, CurrentStreak: 2, MaxStreak: 3}, stats)
	})

	t.Run("malformed value degrades to zero values", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		store.Put("stats_alice", "{broken")
		repo := NewStatsRepo(store)

		stats, recovered, err := repo.Stats("alice")

		assert.NoError(t, err)
		assert.True(t, recovered)
		assert.Equal(t, domain.Stats{}, stats)
	})

	t.Run("storage error is surfaced", func(t *testing.T) {
		store := testutil.NewMemoryStore()
		store.FailNext = true
		repo := NewStatsRepo(store)

		_, _, err := repo.Stats("alice")

		assert.ErrorIs(t, err, testutil.ErrStoreUnavailable)
	})
}

func TestStatsRepo_SaveStats(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := NewStatsRepo(store)

	err := repo.SaveStats("alice", domain.Stats{Wins: 5, CurrentStreak: 1, MaxStreak: 4})
	assert.NoError(t, err)

	raw, ok := store.Raw("stats_alice")
	assert.True(t, ok)
	assert.JSONEq(t, `{"wins":5,"currentStreak":1,"maxStreak":4}`, raw)

	stats, recovered, err := repo.Stats("alice")
	assert.NoError(t, err)
	assert.False(t, recovered)
	assert.Equal(t, domain.Stats{Wins: 5, CurrentStreak: 1, MaxStreak: 4}, stats)
}

func TestUserRepo(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := NewUserRepo(store)

	t.Run("no user selected", func(t *testing.T) {
		user, err := repo.CurrentUser()

		assert.NoError(t, err)
		assert.Empty(t, user)
	})

	t.Run("select and read", func(t *testing.T) {
		assert.NoError(t, repo.SetCurrentUser("alice"))

		user, err := repo.CurrentUser()
		assert.NoError(t, err)
		assert.Equal(t, "alice", user)

		raw, ok := store.Raw("currentUser")
		assert.True(t, ok)
		assert.Equal(t, "alice", raw)
	})

	t.Run("clear", func(t *testing.T) {
		assert.NoError(t, repo.ClearCurrentUser())

		user, err := repo.CurrentUser()
		assert.NoError(t, err)
		assert.Empty(t, user)
	})
}
