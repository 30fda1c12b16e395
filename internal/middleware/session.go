package middleware

import (
	"wordlebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequireUser gates game handlers behind username selection. Commands
// wrapped with it prompt for /start while no player is selected.
func RequireUser(session *service.SessionService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			has, err := session.HasUser()
			if err != nil {
				logger.Error("Failed to check active user in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			if !has {
				return c.Send("Pick a username first: send /start.")
			}

			return next(c)
		}
	}
}
