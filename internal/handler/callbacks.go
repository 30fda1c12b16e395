package handler

import (
	"fmt"
	"strings"
	"unicode"

	"wordlebot/internal/domain"
	"wordlebot/internal/puzzle"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not
// modified, just acknowledge the callback; otherwise acknowledge and
// return the error so the caller can send a new message
func (h *Handler) handleEditError(err error, c tele.Context, chatID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("chat_id", chatID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", chatID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	switch callback.Unique {
	case "play":
		return h.handlePlay(c)
	case "stats":
		return h.handleStats(c)
	case "calendar":
		return h.handleCalendar(c)
	case "main_menu":
		return h.handleStart(c)
	}

	if callback.Unique == "" {
		switch data {
		case "play":
			return h.handlePlay(c)
		case "stats":
			return h.handleStats(c)
		case "calendar":
			return h.handleCalendar(c)
		case "main_menu":
			return h.handleStart(c)
		}
	}

	// Dynamic retry buttons carry the date in their unique; depending on
	// how the update was parsed it shows up in either field
	if strings.HasPrefix(callback.Unique, "replay_") {
		return h.handleReplayDate(c, callback.Unique)
	}
	if strings.HasPrefix(data, "replay_") {
		return h.handleReplayDate(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleStats shows the aggregate statistics
func (h *Handler) handleStats(c tele.Context) error {
	user, err := h.session.CurrentUser()
	if err != nil {
		h.logger.Error("Failed to load active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	stats, err := h.stats.Current(user)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	text := fmt.Sprintf("📊 %s\n\n%s", user, statsText(stats))
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return h.reply(c, text, markup)
}

// handleCalendar shows the played dates with their results. Lost dates
// that are playable get a retry button, subject to the replay lock.
func (h *Handler) handleCalendar(c tele.Context) error {
	user, err := h.session.CurrentUser()
	if err != nil {
		h.logger.Error("Failed to load active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	history, err := h.stats.CalendarHistory(user)
	if err != nil {
		h.logger.Error("Failed to load history", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	today := domain.DateOf(h.clk.Now())
	if !puzzle.HasLaunched(today) {
		return h.reply(c, fmt.Sprintf(
			"The game launches on %s.",
			puzzle.DisplayDate(puzzle.EpochStart),
		), mainMenuMarkup())
	}

	text := "📅 Game History\n\n"
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for date := puzzle.EpochStart; !date.After(today); date = date.AddDays(1) {
		outcome, played := history[date]
		switch {
		case !played:
			text += fmt.Sprintf("%s — not played\n", puzzle.DisplayDate(date))
		case outcome == domain.OutcomeWin:
			text += fmt.Sprintf("%s — ✓ won\n", puzzle.DisplayDate(date))
		default:
			text += fmt.Sprintf("%s — ✗ lost\n", puzzle.DisplayDate(date))
			btn := markup.Data("↻ Retry "+puzzle.DisplayDate(date), "replay_"+date.String())
			rows = append(rows, markup.Row(btn))
		}
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return h.reply(c, text, markup)
}

// handleReplayDate starts a replay for a lost date picked from the
// calendar
func (h *Handler) handleReplayDate(c tele.Context, data string) error {
	user, err := h.session.CurrentUser()
	if err != nil {
		h.logger.Error("Failed to load active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	dateStr := strings.TrimPrefix(strings.TrimSpace(data), "replay_")
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid date"})
	}

	today := domain.DateOf(h.clk.Now())
	if !puzzle.IsPlayable(date, today) {
		return c.Respond(&tele.CallbackResponse{Text: "That date is not playable"})
	}

	return h.startGame(c, user, date)
}
