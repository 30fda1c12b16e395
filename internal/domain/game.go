package domain

import "time"

// Word and board dimensions
const (
	WordLength = 5
	MaxGuesses = 6
)

// Outcome is the result of a finished game
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// TileState is the score of one letter of a guess
type TileState int

const (
	TileAbsent TileState = iota
	TilePresent
	TileCorrect
)

// Puzzle identifies one daily puzzle. It is derived from the word table,
// never stored.
type Puzzle struct {
	Word      string
	Number    int
	Date      CalendarDate
	DayOffset int
}

// Stats holds the aggregate counters for one user. Replays never touch
// these fields, only first-time plays do.
type Stats struct {
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
}

// WinPercent returns the win rate rounded to whole percent
func (s Stats) WinPercent() int {
	if s.Played == 0 {
		return 0
	}
	return (100*s.Wins + s.Played/2) / s.Played
}

// ReplayVerdict is the decision of the replay lock check
type ReplayVerdict struct {
	CanReplay     bool
	TimeRemaining time.Duration
}
