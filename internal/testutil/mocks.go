package testutil

import (
	"time"

	"wordlebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CurrentUser() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SetCurrentUser(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

func (m *MockUserRepository) ClearCurrentUser() error {
	args := m.Called()
	return args.Error(0)
}

// MockHistoryRepository is a mock for repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) History(user string) (map[domain.CalendarDate]domain.Outcome, bool, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(map[domain.CalendarDate]domain.Outcome), args.Bool(1), args.Error(2)
}

func (m *MockHistoryRepository) OutcomeFor(user string, date domain.CalendarDate) (domain.Outcome, bool, error) {
	args := m.Called(user, date)
	return args.Get(0).(domain.Outcome), args.Bool(1), args.Error(2)
}

func (m *MockHistoryRepository) RecordOutcome(user string, date domain.CalendarDate, outcome domain.Outcome) error {
	args := m.Called(user, date, outcome)
	return args.Error(0)
}

func (m *MockHistoryRepository) SaveGuesses(user string, date domain.CalendarDate, guesses []string) error {
	args := m.Called(user, date, guesses)
	return args.Error(0)
}

func (m *MockHistoryRepository) LoadGuesses(user string, date domain.CalendarDate) ([]string, error) {
	args := m.Called(user, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHistoryRepository) RecordLossTimestamp(user string, date domain.CalendarDate, at time.Time) error {
	args := m.Called(user, date, at)
	return args.Error(0)
}

func (m *MockHistoryRepository) LossTimestamp(user string, date domain.CalendarDate) (time.Time, bool, error) {
	args := m.Called(user, date)
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}

func (m *MockHistoryRepository) SetReplayLink(user string, replayDate, originalDate domain.CalendarDate) error {
	args := m.Called(user, replayDate, originalDate)
	return args.Error(0)
}

func (m *MockHistoryRepository) ReplayLink(user string, replayDate domain.CalendarDate) (domain.CalendarDate, bool, error) {
	args := m.Called(user, replayDate)
	return args.Get(0).(domain.CalendarDate), args.Bool(1), args.Error(2)
}

// MockStatsRepository is a mock for repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) PlayCount(user string) (int, error) {
	args := m.Called(user)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) IncrementPlayCount(user string) (int, error) {
	args := m.Called(user)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) Stats(user string) (domain.Stats, bool, error) {
	args := m.Called(user)
	return args.Get(0).(domain.Stats), args.Bool(1), args.Error(2)
}

func (m *MockStatsRepository) SaveStats(user string, stats domain.Stats) error {
	args := m.Called(user, stats)
	return args.Error(0)
}
