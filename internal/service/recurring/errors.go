package recurring

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSeriesNotFound  = errors.New("recurring series not found")
	ErrNotInSeries     = errors.New("session does not belong to a recurring series")
	ErrInvalidConfig   = errors.New("recurring configuration is invalid")
	ErrNothingCreated  = errors.New("every occurrence conflicted with an existing session")

	// ErrOccurrenceRaceLost means an occurrence passed the pre-flight
	// conflict check but lost the insert race to a concurrent booking.
	ErrOccurrenceRaceLost = errors.New("occurrence slot was booked concurrently")
)
