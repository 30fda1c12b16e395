package service

import (
	"strings"

	"wordlebot/internal/domain"
	"wordlebot/internal/repository"
)

// SessionService manages the active username. All game storage is scoped
// by it; operations with no selected user fail with ErrNoActiveUser.
type SessionService struct {
	userRepo repository.UserRepository
}

// NewSessionService creates a new session service
func NewSessionService(userRepo repository.UserRepository) *SessionService {
	return &SessionService{userRepo: userRepo}
}

// CurrentUser returns the active username
func (s *SessionService) CurrentUser() (string, error) {
	user, err := s.userRepo.CurrentUser()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(user) == "" {
		return "", domain.ErrNoActiveUser
	}
	return user, nil
}

// HasUser reports whether a username is selected
func (s *SessionService) HasUser() (bool, error) {
	_, err := s.CurrentUser()
	if err == domain.ErrNoActiveUser {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetUser selects the active username
func (s *SessionService) SetUser(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return domain.ErrEmptyUsername
	}
	return s.userRepo.SetCurrentUser(trimmed)
}

// ClearUser deselects the active username, for switching players
func (s *SessionService) ClearUser() error {
	return s.userRepo.ClearCurrentUser()
}
