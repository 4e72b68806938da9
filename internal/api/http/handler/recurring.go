package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/service/recurring"
)

type RecurringHandler struct {
	svc recurring.Service
}

func NewRecurringHandler(svc recurring.Service) *RecurringHandler {
	return &RecurringHandler{svc: svc}
}

func mapRecurringError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, recurring.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, recurring.ErrSeriesNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, recurring.ErrNotInSeries):
		return badRequest(c, err.Error())
	case errors.Is(err, recurring.ErrInvalidConfig):
		return badRequest(c, err.Error())
	case errors.Is(err, recurring.ErrNothingCreated):
		return conflict(c, err.Error())
	case errors.Is(err, recurring.ErrOccurrenceRaceLost):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// recurringConfigBody is shared by the create and validate endpoints.
type recurringConfigBody struct {
	PsychologistID  string      `json:"psychologist_id"`
	PatientID       *string     `json:"patient_id"`
	Frequency       string      `json:"frequency"`
	Interval        int         `json:"interval"`
	DaysOfWeek      []int       `json:"days_of_week"`
	StartsAt        time.Time   `json:"starts_at"`
	DurationMinutes int         `json:"duration_minutes"`
	Timezone        string      `json:"timezone"`
	Occurrences     *int        `json:"occurrences"`
	EndDate         *time.Time  `json:"end_date"`
	SkipDates       []time.Time `json:"skip_dates"`
	Type            string      `json:"type"`
	Notes           *string     `json:"notes"`
	PriceCents      *int64      `json:"price_cents"`
}

func (b recurringConfigBody) toConfig(clinicID uuid.UUID) (recurring.Config, error) {
	cfg := recurring.Config{
		ClinicID:        clinicID,
		Frequency:       recurring.Frequency(b.Frequency),
		Interval:        b.Interval,
		StartsAt:        b.StartsAt,
		DurationMinutes: b.DurationMinutes,
		Timezone:        b.Timezone,
		Occurrences:     b.Occurrences,
		EndDate:         b.EndDate,
		SkipDates:       b.SkipDates,
		Type:            b.Type,
		Notes:           b.Notes,
		PriceCents:      b.PriceCents,
	}

	psychologistID, err := uuid.Parse(b.PsychologistID)
	if err != nil {
		return cfg, errors.New("invalid psychologist_id")
	}
	cfg.PsychologistID = psychologistID

	if b.PatientID != nil {
		id, err := uuid.Parse(*b.PatientID)
		if err != nil {
			return cfg, errors.New("invalid patient_id")
		}
		cfg.PatientID = &id
	}

	for _, d := range b.DaysOfWeek {
		cfg.DaysOfWeek = append(cfg.DaysOfWeek, time.Weekday(d))
	}

	return cfg, nil
}

// POST /recurring/validate
func (h *RecurringHandler) Validate(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body recurringConfigBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cfg, err := body.toConfig(clinicID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return ok(c, h.svc.ValidateConfig(cfg))
}

// POST /recurring
func (h *RecurringHandler) CreateSeries(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body recurringConfigBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cfg, err := body.toConfig(clinicID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.svc.CreateSeries(c.Context(), cfg)
	if err != nil {
		return mapRecurringError(c, err)
	}

	return created(c, result)
}

type patchBody struct {
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes"`
	Notes           *string    `json:"notes"`
	PriceCents      *int64     `json:"price_cents"`
	Type            *string    `json:"type"`
}

func (b patchBody) toPatch() recurring.Patch {
	return recurring.Patch{
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		Notes:           b.Notes,
		PriceCents:      b.PriceCents,
		Type:            b.Type,
	}
}

// PATCH /recurring/sessions/:id?scope=single|future|all
func (h *RecurringHandler) UpdateOccurrences(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body patchBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	patch := body.toPatch()

	scope := recurring.Scope(c.Query("scope", string(recurring.ScopeSingle)))
	switch scope {
	case recurring.ScopeSingle:
		if err := h.svc.UpdateSingle(c.Context(), clinicID, sessionID, patch); err != nil {
			return mapRecurringError(c, err)
		}
		return ok(c, fiber.Map{"updated": 1})
	case recurring.ScopeFuture:
		n, err := h.svc.UpdateFuture(c.Context(), clinicID, sessionID, patch)
		if err != nil {
			return mapRecurringError(c, err)
		}
		return ok(c, fiber.Map{"updated": n})
	case recurring.ScopeAll:
		n, err := h.svc.UpdateAll(c.Context(), clinicID, sessionID, patch)
		if err != nil {
			return mapRecurringError(c, err)
		}
		return ok(c, fiber.Map{"updated": n})
	default:
		return badRequest(c, "scope must be one of: single, future, all")
	}
}

// PATCH /recurring/sessions/:id/cancel?scope=single|future|all
func (h *RecurringHandler) CancelSeries(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	scope := recurring.Scope(c.Query("scope", string(recurring.ScopeFuture)))
	if scope != recurring.ScopeSingle && scope != recurring.ScopeFuture && scope != recurring.ScopeAll {
		return badRequest(c, "scope must be one of: single, future, all")
	}

	n, err := h.svc.CancelSeries(c.Context(), clinicID, sessionID, scope)
	if err != nil {
		return mapRecurringError(c, err)
	}

	return ok(c, fiber.Map{"cancelled": n})
}

// PATCH /recurring/sessions/:id/skip
func (h *RecurringHandler) SkipOccurrence(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := h.svc.SkipOccurrence(c.Context(), clinicID, sessionID); err != nil {
		return mapRecurringError(c, err)
	}

	return noContent(c)
}

// GET /recurring/:seriesID/sessions
func (h *RecurringHandler) SeriesSessions(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	seriesID, err := uuid.Parse(c.Params("seriesID"))
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	sessions, err := h.svc.SeriesSessions(c.Context(), clinicID, seriesID)
	if err != nil {
		return mapRecurringError(c, err)
	}

	return ok(c, sessions)
}

// GET /recurring/:seriesID/statistics
func (h *RecurringHandler) SeriesStatistics(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	seriesID, err := uuid.Parse(c.Params("seriesID"))
	if err != nil {
		return badRequest(c, "invalid series id")
	}

	stats, err := h.svc.SeriesStatistics(c.Context(), clinicID, seriesID)
	if err != nil {
		return mapRecurringError(c, err)
	}

	return ok(c, stats)
}
