package session

import "errors"

var (
	ErrNotFound         = errors.New("session not found")
	ErrSlotConflict     = errors.New("slot conflicts with an existing session")
	ErrAlreadyCompleted = errors.New("session is already completed")
	ErrAlreadyCancelled = errors.New("session is already cancelled")
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrInvalidStatus    = errors.New("invalid status transition")
)
