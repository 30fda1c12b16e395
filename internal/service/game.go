package service

import (
	"wordlebot/internal/clock"
	"wordlebot/internal/domain"
	"wordlebot/internal/repository"

	"go.uber.org/zap"
)

// GameService records completed games. It distinguishes first-time plays,
// which update the aggregate counters, from replays, which update history
// only.
type GameService struct {
	historyRepo repository.HistoryRepository
	statsRepo   repository.StatsRepository
	clk         clock.Clock
	logger      *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(
	historyRepo repository.HistoryRepository,
	statsRepo repository.StatsRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		historyRepo: historyRepo,
		statsRepo:   statsRepo,
		clk:         clk,
		logger:      logger,
	}
}

// FinishGame records a completed game for a date and returns the
// resulting aggregate stats. A date with a recorded outcome is a replay.
func (s *GameService) FinishGame(user string, date domain.CalendarDate, outcome domain.Outcome, guesses []string) (domain.Stats, error) {
	if user == "" {
		return domain.Stats{}, domain.ErrNoActiveUser
	}

	_, played, err := s.historyRepo.OutcomeFor(user, date)
	if err != nil {
		return domain.Stats{}, err
	}

	if played {
		return s.recordReplay(user, date, outcome, guesses)
	}
	return s.recordFirstPlay(user, date, outcome, guesses)
}

// recordFirstPlay writes history first, then updates the counters, so an
// interrupted flow never produces stats for a game that was not saved
func (s *GameService) recordFirstPlay(user string, date domain.CalendarDate, outcome domain.Outcome, guesses []string) (domain.Stats, error) {
	if err := s.historyRepo.SaveGuesses(user, date, guesses); err != nil {
		return domain.Stats{}, err
	}
	if err := s.historyRepo.RecordOutcome(user, date, outcome); err != nil {
		return domain.Stats{}, err
	}
	if outcome == domain.OutcomeLose {
		if err := s.historyRepo.RecordLossTimestamp(user, date, s.clk.Now()); err != nil {
			return domain.Stats{}, err
		}
	}
	if err := s.propagateOutcome(user, date, outcome); err != nil {
		return domain.Stats{}, err
	}

	played, err := s.statsRepo.IncrementPlayCount(user)
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

	if outcome == domain.OutcomeWin {
		stats.Wins++
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 0
	}
	if stats.CurrentStreak > stats.MaxStreak {
		stats.MaxStreak = stats.CurrentStreak
	}

	if err := s.statsRepo.SaveStats(user, stats); err != nil {
		return domain.Stats{}, err
	}

	s.logger.Info("Recorded first play",
		zap.String("user", user),
		zap.String("date", date.String()),
		zap.String("outcome", string(outcome)),
	)

	stats.Played = played
	return stats, nil
}

// recordReplay overwrites the guesses and outcome for an already-played
// date. The aggregate counters stay untouched; a repeated loss re-arms
// the day lock.
func (s *GameService) recordReplay(user string, date domain.CalendarDate, outcome domain.Outcome, guesses []string) (domain.Stats, error) {
	if err := s.historyRepo.SaveGuesses(user, date, guesses); err != nil {
		return domain.Stats{}, err
	}
	if err := s.historyRepo.RecordOutcome(user, date, outcome); err != nil {
		return domain.Stats{}, err
	}
	if outcome == domain.OutcomeLose {
		if err := s.historyRepo.RecordLossTimestamp(user, date, s.clk.Now()); err != nil {
			return domain.Stats{}, err
		}
	}
	if err := s.propagateOutcome(user, date, outcome); err != nil {
		return domain.Stats{}, err
	}

	s.logger.Info("Recorded replay",
		zap.String("user", user),
		zap.String("date", date.String()),
		zap.String("outcome", string(outcome)),
	)

	played, err := s.statsRepo.PlayCount(user)
	if err != nil {
		return domain.Stats{}, err
	}
	stats, _, err := s.statsRepo.Stats(user)
	if err != nil {
		return domain.Stats{}, err
	}
	stats.Played = played
	return stats, nil
}

// Outcome returns the recorded outcome for a date, if any
func (s *GameService) Outcome(user string, date domain.CalendarDate) (domain.Outcome, bool, error) {
	if user == "" {
		return "", false, domain.ErrNoActiveUser
	}
	return s.historyRepo.OutcomeFor(user, date)
}

// SavedGuesses returns the stored board for a date, nil when none exists
func (s *GameService) SavedGuesses(user string, date domain.CalendarDate) ([]string, error) {
	if user == "" {
		return nil, domain.ErrNoActiveUser
	}
	return s.historyRepo.LoadGuesses(user, date)
}

// propagateOutcome keeps a date and its replay alias in the same
// terminal state. Wins cross the link in both directions: a win on the
// alias marks the original, and a win on the original marks today's
// alias. One call site for both directions so the entries cannot
// diverge.
func (s *GameService) propagateOutcome(user string, date domain.CalendarDate, outcome domain.Outcome) error {
	if outcome != domain.OutcomeWin {
		return nil
	}

	original, linked, err := s.historyRepo.ReplayLink(user, date)
	if err != nil {
		return err
	}
	if linked {
		if err := s.historyRepo.RecordOutcome(user, original, domain.OutcomeWin); err != nil {
			return err
		}
	}

	today := domain.DateOf(s.clk.Now())
	if today == date {
		return nil
	}
	linkedOriginal, linked, err := s.historyRepo.ReplayLink(user, today)
	if err != nil {
		return err
	}
	if linked && linkedOriginal == date {
		if err := s.historyRepo.RecordOutcome(user, today, domain.OutcomeWin); err != nil {
			return err
		}
	}
	return nil
}
