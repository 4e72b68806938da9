package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/service/profile"
)

type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func mapProfileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, profile.ErrProfileAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, profile.ErrBlockNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, profile.ErrOverlappingBlock):
		return conflict(c, err.Error())
	case errors.Is(err, profile.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, profile.ErrInvalidWorkingHours):
		return badRequest(c, err.Error())
	case errors.Is(err, profile.ErrInvalidTimezone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type profileBody struct {
	CRPLicense         *string        `json:"crp_license"`
	Approach           *string        `json:"approach"`
	Specialties        []string       `json:"specialties"`
	Bio                *string        `json:"bio"`
	SessionPriceCents  *int64         `json:"session_price_cents"`
	SessionDurationMin *int           `json:"session_duration_min"`
	Timezone           *string        `json:"timezone"`
	WorkingHours       map[string]any `json:"working_hours"`
	SlotGranularityMin *int           `json:"slot_granularity_min"`
}

func (b profileBody) toRequest() profile.UpsertRequest {
	return profile.UpsertRequest{
		CRPLicense:         b.CRPLicense,
		Approach:           b.Approach,
		Specialties:        b.Specialties,
		Bio:                b.Bio,
		SessionPriceCents:  b.SessionPriceCents,
		SessionDurationMin: b.SessionDurationMin,
		Timezone:           b.Timezone,
		WorkingHours:       b.WorkingHours,
		SlotGranularityMin: b.SlotGranularityMin,
	}
}

// GET /profile
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.Get(c.Context(), memberID)
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, p)
}

// POST /profile
func (h *ProfileHandler) Create(c fiber.Ctx) error {
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body profileBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), memberID, body.toRequest())
	if err != nil {
		return mapProfileError(c, err)
	}

	return created(c, p)
}

// PATCH /profile
func (h *ProfileHandler) Update(c fiber.Ctx) error {
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body profileBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), memberID, body.toRequest())
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, p)
}

// PATCH /profile/accepting
func (h *ProfileHandler) SetAccepting(c fiber.Ctx) error {
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Accepting bool `json:"accepting"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetAccepting(c.Context(), memberID, body.Accepting); err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, fiber.Map{"accepting": body.Accepting})
}

// GET /profile/blocks?from=...&to=...
func (h *ProfileHandler) ListBlocks(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	from := time.Now()
	to := from.AddDate(0, 1, 0)
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			to = t
		}
	}

	blocks, err := h.svc.ListBlocks(c.Context(), clinicID, memberID, from, to)
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, blocks)
}

// POST /profile/blocks
func (h *ProfileHandler) AddBlock(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		Reason    *string   `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	block, err := h.svc.AddBlock(c.Context(), clinicID, memberID, profile.BlockRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Reason:    body.Reason,
	})
	if err != nil {
		return mapProfileError(c, err)
	}

	return created(c, block)
}

// DELETE /profile/blocks/:id
func (h *ProfileHandler) RemoveBlock(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	blockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid block id")
	}

	if err := h.svc.RemoveBlock(c.Context(), clinicID, memberID, blockID); err != nil {
		return mapProfileError(c, err)
	}

	return noContent(c)
}
