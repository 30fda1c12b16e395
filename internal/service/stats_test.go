package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wordlebot/internal/domain"
	"wordlebot/internal/repository/kv"
	"wordlebot/internal/testutil"
)

func newStatsFixture() (*StatsService, *testutil.MemoryStore) {
	store := testutil.NewMemoryStore()
	svc := NewStatsService(kv.NewStatsRepo(store), kv.NewHistoryRepo(store), testutil.NewTestLogger())
	return svc, store
}

func TestStatsService_Current(t *testing.T) {
	t.Run("no active user", func(t *testing.T) {
		svc, _ := newStatsFixture()

		_, err := svc.Current("")

		assert.ErrorIs(t, err, domain.ErrNoActiveUser)
	})

	t.Run("fresh user", func(t *testing.T) {
		svc, _ := newStatsFixture()

		stats, err := svc.Current("alice")

		assert.NoError(t, err)
		assert.Equal(t, domain.Stats{}, stats)
	})

	t.Run("combines play count with counters", func(t *testing.T) {
		svc, store := newStatsFixture()
		store.Put("playCount_alice", "6")
		store.Put("stats_alice", `{"wins":4,"currentStreak":2,"maxStreak":3}`)

		stats, err := svc.Current("alice")

		assert.NoError(t, err)
		assert.Equal(t, domain.Stats{Played: 6, Wins: 4, CurrentStreak: 2, MaxStreak: 3}, stats)
		assert.Equal(t, 67, stats.WinPercent())
	})

	t.Run("malformed stats degrade to zero values", func(t *testing.T) {
		svc, store := newStatsFixture()
		store.Put("playCount_alice", "3")
		store.Put("stats_alice", "{broken")

		stats, err := svc.Current("alice")

		assert.NoError(t, err)
		assert.Equal(t, domain.Stats{Played: 3}, stats)
	})
}

func TestStatsService_CalendarHistory(t *testing.T) {
	t.Run("no active user", func(t *testing.T) {
		svc, _ := newStatsFixture()

		_, err := svc.CalendarHistory("")

		assert.ErrorIs(t, err, domain.ErrNoActiveUser)
	})

	t.Run("returns stored outcomes", func(t *testing.T) {
		svc, store := newStatsFixture()
		store.Put("history_alice", `{"2026-02-15":"win","2026-02-16":"lose"}`)

		history, err := svc.CalendarHistory("alice")

		assert.NoError(t, err)
		assert.Equal(t, map[domain.CalendarDate]domain.Outcome{
			testutil.MustDate("2026-02-15"): domain.OutcomeWin,
			testutil.MustDate("2026-02-16"): domain.OutcomeLose,
		}, history)
	})

	t.Run("malformed history degrades to empty map", func(t *testing.T) {
		svc, store := newStatsFixture()
		store.Put("history_alice", "not json")

		history, err := svc.CalendarHistory("alice")

		assert.NoError(t, err)
		assert.Empty(t, history)
	})
}
