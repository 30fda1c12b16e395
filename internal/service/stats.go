package service

import (
	"wordlebot/internal/domain"
	"wordlebot/internal/repository"

	"go.uber.org/zap"
)

// StatsService reads the aggregate stats and the calendar history
type StatsService struct {
	statsRepo   repository.StatsRepository
	historyRepo repository.HistoryRepository
	logger      *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	statsRepo repository.StatsRepository,
	historyRepo repository.HistoryRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		statsRepo:   statsRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Current returns the aggregate stats, consistent with the last
// committed write. Malformed persisted values degrade to a fresh state
// and are logged so corruption stays observable.
func (s *StatsService) Current(user string) (domain.Stats, error) {
	if user == "" {
		return domain.Stats{}, domain.ErrNoActiveUser
	}

	played, err := s.statsRepo.PlayCount(user)
	if err != nil {
		return domain.Stats{}, err
	}

	stats, recovered, err := s.statsRepo.Stats(user)
	if err != nil {
		return domain.Stats{}, err
	}
	if recovered {
		s.logger.Warn("Malformed stats recovered to zero state",
			zap.String("user", user),
		)
	}

	stats.Played = played
	return stats, nil
}

// CalendarHistory returns the full date-to-outcome map for the calendar
// view
func (s *StatsService) CalendarHistory(user string) (map[domain.CalendarDate]domain.Outcome, error) {
	if user == "" {
		return nil, domain.ErrNoActiveUser
	}

	history, recovered, err := s.historyRepo.History(user)
	if err != nil {
		return nil, err
	}
	if recovered {
		s.logger.Warn("Malformed history recovered to empty state",
			zap.String("user", user),
		)
	}
	return history, nil
}
