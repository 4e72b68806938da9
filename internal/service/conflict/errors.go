package conflict

import "errors"

var (
	ErrPsychologistNotFound = errors.New("psychologist not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrInvalidTimezone      = errors.New("invalid timezone identifier")
	ErrInvalidDuration      = errors.New("duration is out of the allowed range")
	ErrInvalidTimeRange     = errors.New("end date must be after start date")
)
