package puzzle

import (
	"fmt"

	"wordlebot/internal/domain"
)

// EpochStart is the first day of the game. No puzzle exists before it.
var EpochStart = domain.CalendarDate{Year: 2026, Month: 2, Day: 15}

// The original cycle: one fixed word and puzzle number per day offset.
var (
	dailyWords    = []string{"LMFAO", "GUCCI", "SLEEP", "YANNO", "WANGE"}
	puzzleNumbers = []int{321, 819, 902, 918, 1002}
)

// CycleLength is the number of days in the original cycle
var CycleLength = len(dailyWords)

// ForOffset returns the puzzle for a day offset from the epoch.
// Offsets past the original cycle have no canonical word; callers in the
// extended regime must resolve through a replay link instead.
func ForOffset(offset int) (domain.Puzzle, bool) {
	if offset < 0 || offset >= CycleLength {
		return domain.Puzzle{}, false
	}
	return domain.Puzzle{
		Word:      dailyWords[offset],
		Number:    puzzleNumbers[offset],
		Date:      EpochStart.AddDays(offset),
		DayOffset: offset,
	}, true
}

// OffsetForDate returns the whole-day difference between date and the
// epoch start. Dates before the epoch clamp to 0; they are never
// playable, IsPlayable guards that independently.
func OffsetForDate(date domain.CalendarDate) int {
	offset := date.DaysSince(EpochStart)
	if offset < 0 {
		return 0
	}
	return offset
}

// ForDate returns the canonical puzzle for a date, if it has one
func ForDate(date domain.CalendarDate) (domain.Puzzle, bool) {
	return ForOffset(OffsetForDate(date))
}

// IsPlayable reports whether a date falls within the playable range,
// inclusive on both ends
func IsPlayable(date, today domain.CalendarDate) bool {
	return !date.Before(EpochStart) && !date.After(today)
}

// HasLaunched reports whether the game has started as of today
func HasLaunched(today domain.CalendarDate) bool {
	return !today.Before(EpochStart)
}

var monthNames = []string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DisplayDate formats a date for display, e.g. "February 15, 2026"
func DisplayDate(date domain.CalendarDate) string {
	return fmt.Sprintf("%s %d, %d", monthNames[date.Month], date.Day, date.Year)
}

// NumberString formats a puzzle number, e.g. "No. 0321"
func NumberString(number int) string {
	return fmt.Sprintf("No. %04d", number)
}
