package puzzle

import (
	"strings"

	"wordlebot/internal/domain"
)

// Evaluate scores one guess against the solution using standard Wordle
// rules. Two passes: exact positions first, then misplaced letters
// against the remaining unconsumed solution letters, scanning the
// solution left to right. A duplicated letter in the guess is never
// marked more times than it occurs in the solution.
//
// Matching is case-insensitive. Inputs are pre-validated to be exactly
// five letters.
func Evaluate(guess, solution string) []domain.TileState {
	g := strings.ToUpper(guess)
	s := strings.ToUpper(solution)

	result := make([]domain.TileState, domain.WordLength)
	used := make([]bool, domain.WordLength)

	for i := 0; i < domain.WordLength; i++ {
		if g[i] == s[i] {
			result[i] = domain.TileCorrect
			used[i] = true
		}
	}

	for i := 0; i < domain.WordLength; i++ {
		if result[i] == domain.TileCorrect {
			continue
		}
		for j := 0; j < domain.WordLength; j++ {
			if !used[j] && s[j] == g[i] {
				result[i] = domain.TilePresent
				used[j] = true
				break
			}
		}
	}

	return result
}

// IsValidGuess reports whether a submission is exactly five ASCII letters
func IsValidGuess(guess string) bool {
	if len(guess) != domain.WordLength {
		return false
	}
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
