package kv

import (
	"encoding/json"
	"strconv"
	"time"

	"wordlebot/internal/domain"
	"wordlebot/internal/repository"
)

// HistoryRepo implements repository.HistoryRepository
type HistoryRepo struct {
	store repository.Store
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(store repository.Store) *HistoryRepo {
	return &HistoryRepo{store: store}
}

// History returns the full date-to-outcome map for a user. A malformed
// stored value degrades to an empty map with recovered set, never an
// error.
func (r *HistoryRepo) History(user string) (map[domain.CalendarDate]domain.Outcome, bool, error) {
	raw, ok, err := r.store.Get(historyKey(user))
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return map[domain.CalendarDate]domain.Outcome{}, false, nil
	}

	var stored map[string]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return map[domain.CalendarDate]domain.Outcome{}, true, nil
	}

	history := make(map[domain.CalendarDate]domain.Outcome, len(stored))
	for dateStr, outcome := range stored {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			// Skip unreadable entries rather than dropping the whole map
			continue
		}
		history[date] = domain.Outcome(outcome)
	}

	return history, false, nil
}

// OutcomeFor returns the recorded outcome for a date, if any
func (r *HistoryRepo) OutcomeFor(user string, date domain.CalendarDate) (domain.Outcome, bool, error) {
	history, _, err := r.History(user)
	if err != nil {
		return "", false, err
	}
	outcome, ok := history[date]
	return outcome, ok, nil
}

// RecordOutcome upserts the outcome for a date, last write wins
func (r *HistoryRepo) RecordOutcome(user string, date domain.CalendarDate, outcome domain.Outcome) error {
	history, _, err := r.History(user)
	if err != nil {
		return err
	}

	stored := make(map[string]string, len(history)+1)
	for d, o := range history {
		stored[d.String()] = string(o)
	}
	stored[date.String()] = string(outcome)

	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return r.store.Set(historyKey(user), string(data))
}

// SaveGuesses fully replaces the guess list for a date
func (r *HistoryRepo) SaveGuesses(user string, date domain.CalendarDate, guesses []string) error {
	if guesses == nil {
		guesses = []string{}
	}
	data, err := json.Marshal(guesses)
	if err != nil {
		return err
	}
	return r.store.Set(guessesKey(user, date), string(data))
}

// LoadGuesses returns the saved guesses for a date, nil when none exist
func (r *HistoryRepo) LoadGuesses(user string, date domain.CalendarDate) ([]string, error) {
	raw, ok, err := r.store.Get(guessesKey(user, date))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var guesses []string
	if err := json.Unmarshal([]byte(raw), &guesses); err != nil {
		return nil, nil
	}
	return guesses, nil
}

// RecordLossTimestamp stamps the moment a loss was recorded for a date,
// stored as epoch milliseconds
func (r *HistoryRepo) RecordLossTimestamp(user string, date domain.CalendarDate, at time.Time) error {
	millis := strconv.FormatInt(at.UnixMilli(), 10)
	return r.store.Set(lostTimestampKey(user, date), millis)
}

// LossTimestamp returns the last loss timestamp for a date, if any
func (r *HistoryRepo) LossTimestamp(user string, date domain.CalendarDate) (time.Time, bool, error) {
	raw, ok, err := r.store.Get(lostTimestampKey(user, date))
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(millis), true, nil
}

// SetReplayLink associates a date beyond the original cycle with one of
// the original dates
func (r *HistoryRepo) SetReplayLink(user string, replayDate, originalDate domain.CalendarDate) error {
	return r.store.Set(replayLinkKey(user, replayDate), originalDate.String())
}

// ReplayLink returns the original date a replay date is linked to, if any
func (r *HistoryRepo) ReplayLink(user string, replayDate domain.CalendarDate) (domain.CalendarDate, bool, error) {
	raw, ok, err := r.store.Get(replayLinkKey(user, replayDate))
	if err != nil {
		return domain.CalendarDate{}, false, err
	}
	if !ok {
		return domain.CalendarDate{}, false, nil
	}

	original, err := domain.ParseDate(raw)
	if err != nil {
		return domain.CalendarDate{}, false, nil
	}
	return original, true, nil
}
