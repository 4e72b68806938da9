package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email address is already in use")
	ErrNoEmailOnFile        = errors.New("no email address on file")
	ErrEmailAlreadyVerified = errors.New("email address is already verified")
	ErrEmailSendFailed      = errors.New("failed to send verification email")
	ErrCodeExpired          = errors.New("verification code has expired")
	ErrCodeInvalid          = errors.New("verification code is incorrect")
	ErrCodeMaxAttempts      = errors.New("too many incorrect attempts, request a new code")
)
