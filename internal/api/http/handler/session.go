package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/service/session"
)

type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func mapSessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrSlotConflict):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrNotInProgress):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		PsychologistID string `query:"psychologist_id"`
		PatientID      string `query:"patient_id"`
		SeriesID       string `query:"series_id"`
		Status         string `query:"status"`
		From           string `query:"from"`
		To             string `query:"to"`
		Page           int    `query:"page"`
		PerPage        int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := session.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PsychologistID != "" {
		id, err := uuid.Parse(q.PsychologistID)
		if err != nil {
			return badRequest(c, "invalid psychologist_id")
		}
		req.PsychologistID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.SeriesID != "" {
		id, err := uuid.Parse(q.SeriesID)
		if err != nil {
			return badRequest(c, "invalid series_id")
		}
		req.SeriesID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	sessions, err := h.svc.List(c.Context(), clinicID, req)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, sessions)
}

// GET /sessions/:id
func (h *SessionHandler) GetByID(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	sess, err := h.svc.GetByID(c.Context(), clinicID, sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, sess)
}

// POST /sessions
func (h *SessionHandler) Schedule(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		PsychologistID  string    `json:"psychologist_id"`
		PatientID       *string   `json:"patient_id"`
		ScheduledAt     time.Time `json:"scheduled_at"`
		DurationMinutes int       `json:"duration_minutes"`
		Timezone        string    `json:"timezone"`
		Type            string    `json:"type"`
		Notes           *string   `json:"notes"`
		PriceCents      *int64    `json:"price_cents"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PsychologistID == "" {
		return badRequest(c, "psychologist_id is required")
	}

	psychologistID, err := uuid.Parse(body.PsychologistID)
	if err != nil {
		return badRequest(c, "invalid psychologist_id")
	}

	req := session.ScheduleRequest{
		PsychologistID:  psychologistID,
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		Timezone:        body.Timezone,
		Type:            body.Type,
		Notes:           body.Notes,
		PriceCents:      body.PriceCents,
	}
	if body.PatientID != nil {
		id, err := uuid.Parse(*body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}

	sess, err := h.svc.Schedule(c.Context(), clinicID, req)
	if err != nil {
		return mapSessionError(c, err)
	}

	return created(c, sess)
}

// PATCH /sessions/:id/reschedule
func (h *SessionHandler) Reschedule(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		ScheduledAt     time.Time `json:"scheduled_at"`
		DurationMinutes *int      `json:"duration_minutes"`
		Timezone        *string   `json:"timezone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ScheduledAt.IsZero() {
		return badRequest(c, "scheduled_at is required")
	}

	sess, err := h.svc.Reschedule(c.Context(), clinicID, sessionID, session.RescheduleRequest{
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		Timezone:        body.Timezone,
	})
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, sess)
}

// PATCH /sessions/:id/confirm
func (h *SessionHandler) Confirm(c fiber.Ctx) error {
	return h.statusTransition(c, h.svc.Confirm)
}

// PATCH /sessions/:id/start
func (h *SessionHandler) Start(c fiber.Ctx) error {
	return h.statusTransition(c, h.svc.Start)
}

// PATCH /sessions/:id/complete
func (h *SessionHandler) Complete(c fiber.Ctx) error {
	return h.statusTransition(c, h.svc.Complete)
}

// PATCH /sessions/:id/no-show
func (h *SessionHandler) MarkNoShow(c fiber.Ctx) error {
	return h.statusTransition(c, h.svc.MarkNoShow)
}

// PATCH /sessions/:id/cancel
func (h *SessionHandler) Cancel(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Reason      *string `json:"reason"`
		RequestedBy string  `json:"requested_by"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RequestedBy == "" {
		body.RequestedBy = "clinic"
	}

	if err := h.svc.Cancel(c.Context(), clinicID, sessionID, session.CancelRequest{
		Reason:      body.Reason,
		RequestedBy: body.RequestedBy,
	}); err != nil {
		return mapSessionError(c, err)
	}

	return noContent(c)
}

func (h *SessionHandler) statusTransition(c fiber.Ctx, fn func(ctx context.Context, clinicID, sessionID uuid.UUID) error) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := fn(c.Context(), clinicID, sessionID); err != nil {
		return mapSessionError(c, err)
	}

	return noContent(c)
}
