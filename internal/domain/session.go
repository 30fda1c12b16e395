package domain

// UserState represents a chat's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingUsername UserState = "waiting_username"
	StatePlaying         UserState = "playing"
)

// StateData holds the in-progress board for a chat. The board lives in
// memory only; completed games go through the game service.
type StateData struct {
	State    UserState
	Date     CalendarDate
	Solution string
	IsReplay bool
	Guesses  []string
}
