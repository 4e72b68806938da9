package patient

import "errors"

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("user is already a patient in this clinic")
	ErrInvalidStatus        = errors.New("invalid patient status")
	ErrAccessDenied         = errors.New("access denied to this patient record")

	ErrLinkNotFound      = errors.New("care link not found")
	ErrLinkAlreadyExists = errors.New("care link already exists for this pair")
	ErrLinkNotPending    = errors.New("care link is not pending")
	ErrLinkNotActive     = errors.New("care link is not active")
	ErrInviteCodeInvalid = errors.New("invite code is invalid or expired")
)
