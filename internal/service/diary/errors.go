package diary

import "errors"

var (
	ErrEntryNotFound      = errors.New("diary entry not found")
	ErrEntryAlreadyExists = errors.New("an entry already exists for this date")
	ErrInvalidMood        = errors.New("mood must be between 1 and 10")
	ErrInvalidEnergy      = errors.New("energy must be between 1 and 10")
	ErrConsentRequired    = errors.New("patient has not shared diary data")
)
