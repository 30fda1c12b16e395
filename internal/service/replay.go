package service

import (
	"time"

	"wordlebot/internal/clock"
	"wordlebot/internal/domain"
	"wordlebot/internal/puzzle"
	"wordlebot/internal/repository"

	"go.uber.org/zap"
)

// ReplayService is the replay lock engine. It decides whether a lost
// date may be retried and resolves dates past the original cycle through
// replay links.
type ReplayService struct {
	historyRepo repository.HistoryRepository
	statsRepo   repository.StatsRepository
	clk         clock.Clock
	logger      *zap.Logger
}

// NewReplayService creates a new replay service
func NewReplayService(
	historyRepo repository.HistoryRepository,
	statsRepo repository.StatsRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *ReplayService {
	return &ReplayService{
		historyRepo: historyRepo,
		statsRepo:   statsRepo,
		clk:         clk,
		logger:      logger,
	}
}

// ResolvedPuzzle is the playable puzzle for a date. IsReplay marks dates
// past the original cycle that play one of the original puzzles again.
type ResolvedPuzzle struct {
	Puzzle   domain.Puzzle
	IsReplay bool
	Original domain.CalendarDate
}

// CanReplay decides whether a lost date may be retried. A loss locks the
// date until the next day boundary in the reference timezone. Storage
// errors fail open: a transient fault must not soft-lock the player, the
// outcome writes enforce their own correctness independently.
func (s *ReplayService) CanReplay(user string, date domain.CalendarDate) domain.ReplayVerdict {
	lossAt, ok, err := s.historyRepo.LossTimestamp(user, date)
	if err != nil {
		s.logger.Warn("Replay lock check failed, allowing replay",
			zap.String("user", user),
			zap.String("date", date.String()),
			zap.Error(err),
		)
		return domain.ReplayVerdict{CanReplay: true}
	}
	if !ok {
		return domain.ReplayVerdict{CanReplay: true}
	}

	now := s.clk.Now()
	today := domain.DateOf(now)
	lossDay := domain.DateOf(lossAt.In(now.Location()))

	if today.DaysSince(lossDay) >= 1 {
		return domain.ReplayVerdict{CanReplay: true}
	}

	// Nudged down a millisecond so the display never reads a full 24h
	// exactly at midnight
	nextMidnight := today.AddDays(1).Midnight(now.Location())
	remaining := nextMidnight.Sub(now) - time.Millisecond
	if remaining < 0 {
		remaining = 0
	}

	return domain.ReplayVerdict{CanReplay: false, TimeRemaining: remaining}
}

// ResolvePuzzle returns the puzzle a date plays. Dates inside the
// original cycle use the fixed table. Dates past it resolve through the
// user's replay link, assigning one when the cycle is exhausted and an
// original date is still lost. ok is false when the date has nothing
// playable.
func (s *ReplayService) ResolvePuzzle(user string, date domain.CalendarDate) (ResolvedPuzzle, bool, error) {
	if p, found := puzzle.ForDate(date); found {
		return ResolvedPuzzle{Puzzle: p}, true, nil
	}

	// Extended regime: a date already finished is terminal
	_, played, err := s.historyRepo.OutcomeFor(user, date)
	if err != nil {
		return ResolvedPuzzle{}, false, err
	}
	if played {
		return ResolvedPuzzle{}, false, nil
	}

	original, linked, err := s.historyRepo.ReplayLink(user, date)
	if err != nil {
		return ResolvedPuzzle{}, false, err
	}
	if !linked {
		original, linked, err = s.assignReplayLink(user, date)
		if err != nil || !linked {
			return ResolvedPuzzle{}, false, err
		}
	}

	outcome, played, err := s.historyRepo.OutcomeFor(user, original)
	if err != nil {
		return ResolvedPuzzle{}, false, err
	}
	if !played || outcome != domain.OutcomeLose {
		// A won original is terminal in both cells
		return ResolvedPuzzle{}, false, nil
	}

	p, found := puzzle.ForDate(original)
	if !found {
		return ResolvedPuzzle{}, false, nil
	}
	return ResolvedPuzzle{Puzzle: p, IsReplay: true, Original: original}, true, nil
}

// PuzzleFor returns the puzzle a date shows, from the original cycle or
// through an existing replay link, regardless of play state. Used for
// replaying lost dates and rendering finished boards.
func (s *ReplayService) PuzzleFor(user string, date domain.CalendarDate) (domain.Puzzle, bool, error) {
	if p, found := puzzle.ForDate(date); found {
		return p, true, nil
	}
	original, linked, err := s.historyRepo.ReplayLink(user, date)
	if err != nil || !linked {
		return domain.Puzzle{}, false, err
	}
	p, found := puzzle.ForDate(original)
	return p, found, nil
}

// assignReplayLink picks the earliest original-cycle date the user lost
// and links the given date to it. Requires the full cycle to have been
// played first.
func (s *ReplayService) assignReplayLink(user string, date domain.CalendarDate) (domain.CalendarDate, bool, error) {
	count, err := s.statsRepo.PlayCount(user)
	if err != nil {
		return domain.CalendarDate{}, false, err
	}
	if count < puzzle.CycleLength {
		return domain.CalendarDate{}, false, nil
	}

	history, recovered, err := s.historyRepo.History(user)
	if err != nil {
		return domain.CalendarDate{}, false, err
	}
	if recovered {
		s.logger.Warn("Malformed history recovered to empty state",
			zap.String("user", user),
		)
	}

	for offset := 0; offset < puzzle.CycleLength; offset++ {
		original := puzzle.EpochStart.AddDays(offset)
		if history[original] != domain.OutcomeLose {
			continue
		}
		if err := s.historyRepo.SetReplayLink(user, date, original); err != nil {
			return domain.CalendarDate{}, false, err
		}
		s.logger.Info("Assigned replay link",
			zap.String("user", user),
			zap.String("replay_date", date.String()),
			zap.String("original_date", original.String()),
		)
		return original, true, nil
	}

	return domain.CalendarDate{}, false, nil
}
