package kv

import (
	"wordlebot/internal/repository"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	store repository.Store
}

// NewUserRepo creates a new user repository
func NewUserRepo(store repository.Store) *UserRepo {
	return &UserRepo{store: store}
}

// CurrentUser returns the active username, or "" if none is set
func (r *UserRepo) CurrentUser() (string, error) {
	value, ok, err := r.store.Get(currentUserKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// SetCurrentUser selects the active username
func (r *UserRepo) SetCurrentUser(username string) error {
	return r.store.Set(currentUserKey, username)
}

// ClearCurrentUser deselects the active username
func (r *UserRepo) ClearCurrentUser() error {
	return r.store.Remove(currentUserKey)
}
