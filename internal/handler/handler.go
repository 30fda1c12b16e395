package handler

import (
	"sync"

	"wordlebot/internal/clock"
	"wordlebot/internal/domain"
	"wordlebot/internal/middleware"
	"wordlebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	session *service.SessionService
	game    *service.GameService
	replay  *service.ReplayService
	stats   *service.StatsService
	clk     clock.Clock
	logger  *zap.Logger

	// Chat states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	session *service.SessionService,
	game *service.GameService,
	replay *service.ReplayService,
	stats *service.StatsService,
	clk clock.Clock,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:     bot,
		session: session,
		game:    game,
		replay:  replay,
		stats:   stats,
		clk:     clk,
		logger:  logger,
		states:  make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	requireUser := middleware.RequireUser(h.session, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/switchuser", h.handleSwitchUser)
	h.bot.Handle("/play", h.handlePlay, requireUser)
	h.bot.Handle("/stats", h.handleStats, requireUser)
	h.bot.Handle("/calendar", h.handleCalendar, requireUser)

	// Text messages (username entry and guesses)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPlay, h.handlePlay, requireUser)
	h.bot.Handle(&btnStats, h.handleStats, requireUser)
	h.bot.Handle(&btnCalendar, h.handleCalendar, requireUser)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns a chat's current state
func (h *Handler) GetState(chatID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[chatID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets a chat's state
func (h *Handler) SetState(chatID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[chatID] = state
}

// ResetState resets a chat to idle state
func (h *Handler) ResetState(chatID int64) {
	h.SetState(chatID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnPlay = tele.Btn{
		Unique: "play",
		Text:   "▶️ Play",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Statistics",
	}
	btnCalendar = tele.Btn{
		Unique: "calendar",
		Text:   "📅 Game History",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPlay),
		menu.Row(btnStats, btnCalendar),
	)
	return menu
}
