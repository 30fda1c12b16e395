package handler

import (
	"fmt"

	"wordlebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID

	h.logger.Info("Chat started bot",
		zap.Int64("chat_id", chatID),
		zap.String("telegram_username", c.Sender().Username),
	)

	has, err := h.session.HasUser()
	if err != nil {
		h.logger.Error("Failed to check active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if !has {
		h.SetState(chatID, &domain.StateData{State: domain.StateWaitingUsername})
		return c.Send("Welcome to Wordle! Pick a username to track your games:")
	}

	user, err := h.session.CurrentUser()
	if err != nil {
		h.logger.Error("Failed to load active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.ResetState(chatID)
	text := fmt.Sprintf("Hi %s! Get 6 chances to guess a 5-letter word.", user)
	if c.Callback() != nil {
		if err := c.Edit(text, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, chatID); handleErr == nil {
				return nil
			}
			return c.Send(text, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(text, mainMenuMarkup())
}

// handleSwitchUser clears the active username so another player can take
// over the device
func (h *Handler) handleSwitchUser(c tele.Context) error {
	chatID := c.Sender().ID

	if err := h.session.ClearUser(); err != nil {
		h.logger.Error("Failed to clear active user", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.SetState(chatID, &domain.StateData{State: domain.StateWaitingUsername})
	return c.Send("User cleared. Pick a new username:")
}

// handleUsername stores the submitted username and shows the menu
func (h *Handler) handleUsername(c tele.Context, username string) error {
	chatID := c.Sender().ID

	if err := h.session.SetUser(username); err != nil {
		if err == domain.ErrEmptyUsername {
			return c.Send("Username cannot be empty. Try again:")
		}
		h.logger.Error("Failed to set username", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.logger.Info("Username selected", zap.Int64("chat_id", chatID))
	h.ResetState(chatID)
	return c.Send(
		fmt.Sprintf("Welcome, %s! Get 6 chances to guess a 5-letter word.", username),
		mainMenuMarkup(),
	)
}
