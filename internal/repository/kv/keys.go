package kv

import (
	"fmt"

	"wordlebot/internal/domain"
)

// Key templates for the persisted state layout. Every entity lives under
// its own key, so a failed write can never tear across entities.
const currentUserKey = "currentUser"

func playCountKey(user string) string {
	return "playCount_" + user
}

func statsKey(user string) string {
	return "stats_" + user
}

func historyKey(user string) string {
	return "history_" + user
}

func guessesKey(user string, date domain.CalendarDate) string {
	return fmt.Sprintf("guesses_%s_%s", user, date)
}

func lostTimestampKey(user string, date domain.CalendarDate) string {
	return fmt.Sprintf("lostTimestamp_%s_%s", user, date)
}

func replayLinkKey(user string, replayDate domain.CalendarDate) string {
	return fmt.Sprintf("replayLink_%s_%s", user, replayDate)
}
