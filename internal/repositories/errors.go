package repositories

import "errors"

// Core error taxonomy. Handlers translate these into transport status
// codes; repositories never decide HTTP representation.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrPostNotFound   = errors.New("post not found")
	ErrVoteNotFound   = errors.New("vote does not exist")
	ErrDuplicateVote  = errors.New("vote already exists")
)
