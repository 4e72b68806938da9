package profile

import "errors"

var (
	ErrProfileNotFound      = errors.New("psychologist profile not found")
	ErrProfileAlreadyExists = errors.New("member already has a psychologist profile")
	ErrBlockNotFound        = errors.New("unavailability block not found")
	ErrOverlappingBlock     = errors.New("unavailability block overlaps with an existing block")
	ErrInvalidTimeRange     = errors.New("end_time must be after start_time")
	ErrInvalidWorkingHours  = errors.New("working hours entry is malformed")
	ErrInvalidTimezone      = errors.New("invalid timezone identifier")
)
