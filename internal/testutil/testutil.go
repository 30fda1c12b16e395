package testutil

import (
	"errors"
	"sync"
	"time"

	"wordlebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// MustDate parses a YYYY-MM-DD string or panics; test fixtures only
func MustDate(s string) domain.CalendarDate {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustTime builds a time.Time from date and clock components in the
// given location
func MustTime(dateStr string, hour, min int, loc *time.Location) time.Time {
	d := MustDate(dateStr)
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, min, 0, 0, loc)
}

// MemoryStore is an in-memory repository.Store for tests. FailNext makes
// the next operation return an error, for exercising storage-fault paths.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	FailNext bool
}

// ErrStoreUnavailable is returned by MemoryStore when FailNext is set
var ErrStoreUnavailable = errors.New("storage unavailable")

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) fail() bool {
	if s.FailNext {
		s.FailNext = false
		return true
	}
	return false
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return "", false, ErrStoreUnavailable
	}
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return ErrStoreUnavailable
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail() {
		return ErrStoreUnavailable
	}
	delete(s.values, key)
	return nil
}

// Put seeds a raw value, bypassing the fail switch
func (s *MemoryStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Raw returns the stored value for a key, for asserting on the persisted
// form
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok
}
