package auth

import "errors"

var (
	ErrPhoneAlreadyExists = errors.New("phone number already registered")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidPhone       = errors.New("invalid phone number format")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrOTPExpired         = errors.New("OTP has expired or does not exist")
	ErrOTPInvalid         = errors.New("OTP code is incorrect")
	ErrOTPMaxAttempts     = errors.New("too many incorrect OTP attempts")
	ErrInvalidCredentials = errors.New("phone/email or password is incorrect")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrPhoneNotVerified   = errors.New("phone number is not verified")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
