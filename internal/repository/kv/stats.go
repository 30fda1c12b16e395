package kv

import (
	"encoding/json"
	"strconv"

	"wordlebot/internal/domain"
	"wordlebot/internal/repository"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	store repository.Store
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(store repository.Store) *StatsRepo {
	return &StatsRepo{store: store}
}

// statsValue is the persisted JSON shape; the played count is stored
// under its own key
type statsValue struct {
	Wins          int `json:"wins"`
	CurrentStreak int `json:"currentStreak"`
	MaxStreak     int `json:"maxStreak"`
}

// PlayCount returns the number of first-time plays
func (r *StatsRepo) PlayCount(user string) (int, error) {
	raw, ok, err := r.store.Get(playCountKey(user))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0, nil
	}
	return count, nil
}

// IncrementPlayCount bumps the play count and returns the new value
func (r *StatsRepo) IncrementPlayCount(user string) (int, error) {
	count, err := r.PlayCount(user)
	if err != nil {
		return 0, err
	}

	next := count + 1
	if err := r.store.Set(playCountKey(user), strconv.Itoa(next)); err != nil {
		return 0, err
	}
	return next, nil
}

// Stats returns the win and streak counters. A malformed stored value
// degrades to zero values with recovered set, never an error.
func (r *StatsRepo) Stats(user string) (domain.Stats, bool, error) {
	raw, ok, err := r.store.Get(statsKey(user))
	if err != nil {
		return domain.Stats{}, false, err
	}
	if !ok {
		return domain.Stats{}, false, nil
	}

	var value statsValue
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return domain.Stats{}, true, nil
	}

	return domain.Stats{
		Wins:          value.Wins,
		CurrentStreak: value.CurrentStreak,
		MaxStreak:     value.MaxStreak,
	}, false, nil
}

// SaveStats persists the win and streak counters
func (r *StatsRepo) SaveStats(user string, stats domain.Stats) error {
	data, err := json.Marshal(statsValue{
		Wins:          stats.Wins,
		CurrentStreak: stats.CurrentStreak,
		MaxStreak:     stats.MaxStreak,
	})
	if err != nil {
		return err
	}
	return r.store.Set(statsKey(user), string(data))
}
