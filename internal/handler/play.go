package handler

import (
	"fmt"
	"strings"
	"time"

	"wordlebot/internal/domain"
	"wordlebot/internal/puzzle"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on chat state
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(chatID)

	switch state.State {
	case domain.StateWaitingUsername:
		return h.handleUsername(c, text)
	case domain.StatePlaying:
		return h.handleGuess(c, state, text)
	default:
		has, err := h.session.HasUser()
		if err != nil {
			h.logger.Error("Failed to check active user", zap.Error(err))
			return nil
		}
		if !has {
			return c.Send("Pick a username first: send /start.")
		}
		return c.Send("Send /play to start today's puzzle.", mainMenuMarkup())
	}
}

// handlePlay starts (or resumes the verdict on) today's puzzle
func (h *Handler) handlePlay(c tele.Context) error {
	user, err := h.session.CurrentUser()
	if err != nil {
		h.logger.Error("Failed to load active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	today := domain.DateOf(h.clk.Now())
	if !puzzle.HasLaunched(today) {
		return h.reply(c, fmt.Sprintf(
			"The game launches on %s. See you then!",
			puzzle.DisplayDate(puzzle.EpochStart),
		), nil)
	}

	return h.startGame(c, user, today)
}

// startGame opens the board for a playable date, routing finished dates
// to their results and lost dates through the replay lock
func (h *Handler) startGame(c tele.Context, user string, date domain.CalendarDate) error {
	chatID := c.Sender().ID

	outcome, played, err := h.game.Outcome(user, date)
	if err != nil {
		h.logger.Error("Failed to load outcome", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if played && outcome == domain.OutcomeWin {
		return h.showFinished(c, user, date)
	}

	if played && outcome == domain.OutcomeLose {
		verdict := h.replay.CanReplay(user, date)
		if !verdict.CanReplay {
			return h.reply(c, fmt.Sprintf(
				"You already played %s. Game will reset in %s.",
				puzzle.DisplayDate(date),
				formatRemaining(verdict.TimeRemaining),
			), mainMenuMarkup())
		}

		p, found, err := h.replay.PuzzleFor(user, date)
		if err != nil || !found {
			if err != nil {
				h.logger.Error("Failed to resolve replay puzzle", zap.Error(err))
			}
			return c.Send("Something went wrong. Please try again later.")
		}
		h.SetState(chatID, &domain.StateData{
			State:    domain.StatePlaying,
			Date:     date,
			Solution: p.Word,
			IsReplay: true,
		})
		return h.reply(c, fmt.Sprintf(
			"Replay unlocked! %s — %s\nSend a 5-letter word.",
			puzzle.NumberString(p.Number),
			puzzle.DisplayDate(date),
		), nil)
	}

	resolved, ok, err := h.replay.ResolvePuzzle(user, date)
	if err != nil {
		h.logger.Error("Failed to resolve puzzle", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}
	if !ok {
		return h.reply(c,
			"No puzzle today — you have finished the original run with nothing left to replay. Check back tomorrow!",
			mainMenuMarkup())
	}

	h.SetState(chatID, &domain.StateData{
		State:    domain.StatePlaying,
		Date:     date,
		Solution: resolved.Puzzle.Word,
		IsReplay: resolved.IsReplay,
	})

	intro := fmt.Sprintf(
		"%s — %s\nSend a 5-letter word. You have %d guesses.",
		puzzle.NumberString(resolved.Puzzle.Number),
		puzzle.DisplayDate(date),
		domain.MaxGuesses,
	)
	if resolved.IsReplay {
		intro = "Second chance! " + intro
	}
	return h.reply(c, intro, nil)
}

// handleGuess scores one submitted word against the current board
func (h *Handler) handleGuess(c tele.Context, state *domain.StateData, text string) error {
	if !puzzle.IsValidGuess(text) {
		return c.Send(fmt.Sprintf("Enter exactly %d letters.", domain.WordLength))
	}

	guess := strings.ToUpper(text)
	state.Guesses = append(state.Guesses, guess)
	h.SetState(c.Sender().ID, state)

	won := guess == strings.ToUpper(state.Solution)
	board := renderBoard(state.Guesses, state.Solution)

	if won {
		return h.finishGame(c, state, domain.OutcomeWin, board)
	}
	if len(state.Guesses) >= domain.MaxGuesses {
		return h.finishGame(c, state, domain.OutcomeLose, board)
	}

	left := domain.MaxGuesses - len(state.Guesses)
	msg := fmt.Sprintf("%s\n%d guesses left.", board, left)
	if eliminated := absentLetters(state.Guesses, state.Solution); eliminated != "" {
		msg += "\nNot in the word: " + eliminated
	}
	return c.Send(msg)
}

// finishGame records the completed board and shows the result summary
func (h *Handler) finishGame(c tele.Context, state *domain.StateData, outcome domain.Outcome, board string) error {
	chatID := c.Sender().ID

	user, err := h.session.CurrentUser()
	if err != nil {
		h.logger.Error("Failed to load active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	stats, err := h.game.FinishGame(user, state.Date, outcome, state.Guesses)
	if err != nil {
		h.logger.Error("Failed to record finished game",
			zap.String("date", state.Date.String()),
			zap.Error(err),
		)
		return c.Send("Your game could not be saved. Please try again.")
	}

	h.ResetState(chatID)

	var result string
	if outcome == domain.OutcomeWin {
		result = fmt.Sprintf("🌟 Congratulations! You solved it in %d guesses.", len(state.Guesses))
	} else {
		result = fmt.Sprintf(
			"Thanks for playing! The word was %s.\nGame will reset in 24 hours.",
			strings.ToUpper(state.Solution),
		)
	}

	return c.Send(
		fmt.Sprintf("%s\n\n%s\n\n%s", board, result, statsText(stats)),
		mainMenuMarkup(),
	)
}

// showFinished renders the read-only board of a won date
func (h *Handler) showFinished(c tele.Context, user string, date domain.CalendarDate) error {
	p, found, err := h.replay.PuzzleFor(user, date)
	if err != nil {
		h.logger.Error("Failed to resolve finished puzzle", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	guesses, err := h.game.SavedGuesses(user, date)
	if err != nil {
		h.logger.Error("Failed to load saved guesses", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	text := fmt.Sprintf("You already solved %s. ✓", puzzle.DisplayDate(date))
	if found && len(guesses) > 0 {
		text = fmt.Sprintf("%s %s — solved. ✓\n%s",
			puzzle.NumberString(p.Number),
			puzzle.DisplayDate(date),
			renderBoard(guesses, p.Word),
		)
	}
	return h.reply(c, text, mainMenuMarkup())
}

// reply edits the menu message for callbacks and sends a new message for
// commands
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	chatID := c.Sender().ID
	if c.Callback() != nil {
		var err error
		if markup != nil {
			err = c.Edit(text, markup)
		} else {
			err = c.Edit(text)
		}
		if err != nil {
			if handleErr := h.handleEditError(err, c, chatID); handleErr == nil {
				return nil
			}
			if markup != nil {
				return c.Send(text, markup)
			}
			return c.Send(text)
		}
		return c.Respond()
	}
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

// renderBoard draws the scored rows as coloured squares with the guessed
// letters alongside
func renderBoard(guesses []string, solution string) string {
	var b strings.Builder
	for i, guess := range guesses {
		if i > 0 {
			b.WriteByte('\n')
		}
		tiles := puzzle.Evaluate(guess, solution)
		for _, tile := range tiles {
			b.WriteString(tileEmoji(tile))
		}
		b.WriteByte(' ')
		b.WriteString(strings.ToUpper(guess))
	}
	return b.String()
}

func tileEmoji(tile domain.TileState) string {
	switch tile {
	case domain.TileCorrect:
		return "🟩"
	case domain.TilePresent:
		return "🟨"
	default:
		return "⬜"
	}
}

// absentLetters lists the guessed letters the solution does not contain,
// in alphabetical order
func absentLetters(guesses []string, solution string) string {
	upper := strings.ToUpper(solution)
	var out []string
	for c := byte('A'); c <= 'Z'; c++ {
		if strings.IndexByte(upper, c) >= 0 {
			continue
		}
		for _, guess := range guesses {
			if strings.IndexByte(strings.ToUpper(guess), c) >= 0 {
				out = append(out, string(c))
				break
			}
		}
	}
	return strings.Join(out, " ")
}

// statsText formats the aggregate summary shown after every game
func statsText(stats domain.Stats) string {
	return fmt.Sprintf(
		"STATISTICS\nPlayed: %d\nWin %%: %d\nCurrent Streak: %d\nMax Streak: %d",
		stats.Played,
		stats.WinPercent(),
		stats.CurrentStreak,
		stats.MaxStreak,
	)
}

// formatRemaining renders a lock countdown as "23h 59m"
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
