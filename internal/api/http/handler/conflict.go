package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	conflictsvc "github.com/amparasaude/ampara_backend/internal/service/conflict"
)

type ConflictHandler struct {
	svc conflictsvc.Service
}

func NewConflictHandler(svc conflictsvc.Service) *ConflictHandler {
	return &ConflictHandler{svc: svc}
}

func mapConflictError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conflictsvc.ErrPsychologistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, conflictsvc.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, conflictsvc.ErrInvalidTimezone):
		return badRequest(c, err.Error())
	case errors.Is(err, conflictsvc.ErrInvalidDuration):
		return badRequest(c, err.Error())
	case errors.Is(err, conflictsvc.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type checkBody struct {
	PsychologistID   string    `json:"psychologist_id"`
	PatientID        *string   `json:"patient_id"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	DurationMinutes  int       `json:"duration_minutes"`
	Timezone         string    `json:"timezone"`
	ExcludeSessionID *string   `json:"exclude_session_id"`
}

func (b checkBody) toRequest(clinicID uuid.UUID) (conflictsvc.CheckRequest, error) {
	req := conflictsvc.CheckRequest{
		ClinicID:        clinicID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		Timezone:        b.Timezone,
	}

	psychologistID, err := uuid.Parse(b.PsychologistID)
	if err != nil {
		return req, errors.New("invalid psychologist_id")
	}
	req.PsychologistID = psychologistID

	if b.PatientID != nil {
		id, err := uuid.Parse(*b.PatientID)
		if err != nil {
			return req, errors.New("invalid patient_id")
		}
		req.PatientID = &id
	}
	if b.ExcludeSessionID != nil {
		id, err := uuid.Parse(*b.ExcludeSessionID)
		if err != nil {
			return req, errors.New("invalid exclude_session_id")
		}
		req.ExcludeSessionID = &id
	}

	return req, nil
}

// POST /conflicts/check
func (h *ConflictHandler) Check(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body checkBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := body.toRequest(clinicID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	report, err := h.svc.CheckConflicts(c.Context(), req)
	if err != nil {
		return mapConflictError(c, err)
	}

	return ok(c, report)
}

// POST /conflicts/validate
func (h *ConflictHandler) Validate(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body checkBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := body.toRequest(clinicID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.svc.ValidateScheduling(c.Context(), req)
	if err != nil {
		return mapConflictError(c, err)
	}

	return ok(c, result)
}

// GET /availability?psychologist_id=...&date=2026-08-28&timezone=America/Sao_Paulo
func (h *ConflictHandler) Availability(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	psychologistID, err := uuid.Parse(c.Query("psychologist_id"))
	if err != nil {
		return badRequest(c, "invalid psychologist_id")
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	slots, err := h.svc.Availability(c.Context(), clinicID, psychologistID, day, c.Query("timezone"))
	if err != nil {
		return mapConflictError(c, err)
	}

	return ok(c, slots)
}

// POST /conflicts/suggestions
func (h *ConflictHandler) Suggestions(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		checkBody
		NumSuggestions int `json:"num_suggestions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := body.toRequest(clinicID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	slots, err := h.svc.SuggestAlternatives(c.Context(), req, body.NumSuggestions)
	if err != nil {
		return mapConflictError(c, err)
	}

	return ok(c, slots)
}

// GET /conflicts/timezone-check?psychologist_id=...&patient_id=...&scheduled_at=...
func (h *ConflictHandler) TimezoneCheck(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	psychologistID, err := uuid.Parse(c.Query("psychologist_id"))
	if err != nil {
		return badRequest(c, "invalid psychologist_id")
	}
	patientID, err := uuid.Parse(c.Query("patient_id"))
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	scheduledAt, err := time.Parse(time.RFC3339, c.Query("scheduled_at"))
	if err != nil {
		return badRequest(c, "scheduled_at must be RFC3339")
	}

	check, err := h.svc.CheckTimezoneMismatch(c.Context(), clinicID, psychologistID, patientID, scheduledAt)
	if err != nil {
		return mapConflictError(c, err)
	}

	return ok(c, check)
}

// GET /conflicts/load?psychologist_id=...&from=...&to=...
func (h *ConflictHandler) SessionLoad(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	psychologistID, err := uuid.Parse(c.Query("psychologist_id"))
	if err != nil {
		return badRequest(c, "invalid psychologist_id")
	}
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return badRequest(c, "from must be RFC3339")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return badRequest(c, "to must be RFC3339")
	}

	report, err := h.svc.SessionLoad(c.Context(), clinicID, psychologistID, from, to)
	if err != nil {
		return mapConflictError(c, err)
	}

	return ok(c, report)
}
