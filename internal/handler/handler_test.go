package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wordlebot/internal/domain"
)

func TestRenderBoard(t *testing.T) {
	tests := []struct {
		name     string
		guesses  []string
		solution string
		expected string
	}{
		{
			name:     "single winning row",
			guesses:  []string{"LMFAO"},
			solution: "LMFAO",
			expected: "🟩🟩🟩🟩🟩 LMFAO",
		},
		{
			name:     "mixed tiles",
			guesses:  []string{"SPEED"},
			solution: "ERASE",
			expected: "🟨⬜🟨🟨⬜ SPEED",
		},
		{
			name:     "multiple rows uppercase the guess",
			guesses:  []string{"mount", "LMFAO"},
			solution: "LMFAO",
			expected: "🟨🟨⬜⬜⬜ MOUNT\n🟩🟩🟩🟩🟩 LMFAO",
		},
		{
			name:     "no guesses",
			guesses:  nil,
			solution: "LMFAO",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderBoard(tt.guesses, tt.solution))
		})
	}
}

func TestAbsentLetters(t *testing.T) {
	tests := []struct {
		name     string
		guesses  []string
		solution string
		expected string
	}{
		{
			name:     "no guesses",
			guesses:  nil,
			solution: "LMFAO",
			expected: "",
		},
		{
			name:     "all letters present",
			guesses:  []string{"LMFAO"},
			solution: "LMFAO",
			expected: "",
		},
		{
			name:     "eliminated letters in alphabetical order",
			guesses:  []string{"MOUNT", "SPEED"},
			solution: "LMFAO",
			expected: "D E N P S T U",
		},
		{
			name:     "lowercase input",
			guesses:  []string{"gucci"},
			solution: "SLEEP",
			expected: "C G I U",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, absentLetters(tt.guesses, tt.solution))
		})
	}
}

func TestStatsText(t *testing.T) {
	stats := domain.Stats{Played: 6, Wins: 4, CurrentStreak: 2, MaxStreak: 3}

	text := statsText(stats)

	assert.Contains(t, text, "Played: 6")
	assert.Contains(t, text, "Win %: 67")
	assert.Contains(t, text, "Current Streak: 2")
	assert.Contains(t, text, "Max Streak: 3")
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "hours and minutes",
			duration: 6*time.Hour + 30*time.Minute,
			expected: "6h 30m",
		},
		{
			name:     "just under a day",
			duration: 24*time.Hour - time.Millisecond,
			expected: "23h 59m",
		},
		{
			name:     "under an hour",
			duration: 45 * time.Minute,
			expected: "0h 45m",
		},
		{
			name:     "negative clamps to zero",
			duration: -time.Minute,
			expected: "0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRemaining(tt.duration))
		})
	}
}

func TestCleanCallbackData(t *testing.T) {
	assert.Equal(t, "play", cleanCallbackData("play"))
	assert.Equal(t, "play", cleanCallbackData("\fplay"))
	assert.Equal(t, "replay_2026-02-15", cleanCallbackData(" replay_2026-02-15\n"))
	assert.Equal(t, "", cleanCallbackData("\f\x00"))
}

func TestHandlerState(t *testing.T) {
	h := &Handler{states: make(map[int64]*domain.StateData)}

	// unseen chats start idle
	state := h.GetState(42)
	assert.Equal(t, domain.StateIdle, state.State)

	h.SetState(42, &domain.StateData{State: domain.StatePlaying, Solution: "LMFAO"})
	state = h.GetState(42)
	assert.Equal(t, domain.StatePlaying, state.State)
	assert.Equal(t, "LMFAO", state.Solution)

	h.ResetState(42)
	state = h.GetState(42)
	assert.Equal(t, domain.StateIdle, state.State)
}
