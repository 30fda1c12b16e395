package domain

import "errors"

// ErrNoActiveUser is returned by any history or stats operation invoked
// while no username is selected
var ErrNoActiveUser = errors.New("no active user selected")

// ErrEmptyUsername is returned when an empty or whitespace-only username
// is submitted
var ErrEmptyUsername = errors.New("username cannot be empty")
