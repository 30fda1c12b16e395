package repository

import (
	"time"

	"wordlebot/internal/domain"
)

// Store is the local key-value persistence substrate. Values are strings;
// a missing key is reported through the bool, not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// UserRepository manages the process-wide active username.
// CurrentUser returns "" when no user is selected.
type UserRepository interface {
	CurrentUser() (string, error)
	SetCurrentUser(username string) error
	ClearCurrentUser() error
}

// HistoryRepository stores per-user, per-date game records
type HistoryRepository interface {
	// History returns the full date-to-outcome map. recovered is true
	// when a malformed stored value was replaced by an empty map.
	History(user string) (history map[domain.CalendarDate]domain.Outcome, recovered bool, err error)
	OutcomeFor(user string, date domain.CalendarDate) (domain.Outcome, bool, error)
	RecordOutcome(user string, date domain.CalendarDate, outcome domain.Outcome) error
	SaveGuesses(user string, date domain.CalendarDate, guesses []string) error
	LoadGuesses(user string, date domain.CalendarDate) ([]string, error)
	RecordLossTimestamp(user string, date domain.CalendarDate, at time.Time) error
	LossTimestamp(user string, date domain.CalendarDate) (time.Time, bool, error)
	SetReplayLink(user string, replayDate, originalDate domain.CalendarDate) error
	ReplayLink(user string, replayDate domain.CalendarDate) (domain.CalendarDate, bool, error)
}

// StatsRepository stores the aggregate counters. The played count lives
// under its own key, separate from the win/streak JSON.
type StatsRepository interface {
	PlayCount(user string) (int, error)
	IncrementPlayCount(user string) (int, error)
	// Stats returns the win/streak counters without Played. recovered is
	// true when a malformed stored value was replaced by zero values.
	Stats(user string) (stats domain.Stats, recovered bool, err error)
	SaveStats(user string, stats domain.Stats) error
}
