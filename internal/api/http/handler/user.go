package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/amparasaude/ampara_backend/internal/service/user"
	pasetotoken "github.com/amparasaude/ampara_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID.String())
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Timezone  *string `json:"timezone"`
		Email     *string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.UpdateMe(c.Context(), claims.UserID, user.UpdateMeRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Timezone:  body.Timezone,
		Email:     body.Email,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, result)
}

// POST /api/v1/users/me/email/verify-request
func (h *UserHandler) RequestEmailVerification(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	if err := h.svc.RequestEmailVerification(c.Context(), claims.UserID); err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"message": "verification code sent to your email"})
}

// POST /api/v1/users/me/email/verify
func (h *UserHandler) VerifyEmail(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Code == "" {
		return badRequest(c, "code is required")
	}

	if err := h.svc.VerifyEmail(c.Context(), claims.UserID, body.Code); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrNoEmailOnFile):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyVerified):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrEmailSendFailed):
		return internalError(c)
	case errors.Is(err, user.ErrCodeExpired):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrCodeInvalid):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrCodeMaxAttempts):
		return tooManyRequests(c, err.Error())
	default:
		return internalError(c)
	}
}
