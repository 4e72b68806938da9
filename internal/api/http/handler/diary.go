package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/service/diary"
)

type DiaryHandler struct {
	svc diary.Service
}

func NewDiaryHandler(svc diary.Service) *DiaryHandler {
	return &DiaryHandler{svc: svc}
}

func mapDiaryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, diary.ErrEntryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diary.ErrEntryAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, diary.ErrInvalidMood):
		return badRequest(c, err.Error())
	case errors.Is(err, diary.ErrConsentRequired):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

func parsePatientID(c fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("patientID"))
}

// entryRange reads optional from/to query params, defaulting to the last 30 days.
func entryRange(c fiber.Ctx) (time.Time, time.Time) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t
		}
	}
	return from, to
}

// POST /patients/:patientID/diary
func (h *DiaryHandler) CreateEntry(c fiber.Ctx) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		EntryDate time.Time `json:"entry_date"`
		Mood      int       `json:"mood"`
		Energy    int       `json:"energy"`
		Content   *string   `json:"content"`
		Emotions  []string  `json:"emotions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.EntryDate.IsZero() {
		body.EntryDate = time.Now()
	}

	entry, err := h.svc.CreateEntry(c.Context(), patientID, diary.CreateEntryRequest{
		EntryDate: body.EntryDate,
		Mood:      body.Mood,
		Energy:    body.Energy,
		Content:   body.Content,
		Emotions:  body.Emotions,
	})
	if err != nil {
		return mapDiaryError(c, err)
	}

	return created(c, entry)
}

// PATCH /patients/:patientID/diary/:entryID
func (h *DiaryHandler) UpdateEntry(c fiber.Ctx) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	entryID, err := uuid.Parse(c.Params("entryID"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	var body struct {
		Mood     *int     `json:"mood"`
		Energy   *int     `json:"energy"`
		Content  *string  `json:"content"`
		Emotions []string `json:"emotions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.svc.UpdateEntry(c.Context(), patientID, entryID, diary.UpdateEntryRequest{
		Mood:     body.Mood,
		Energy:   body.Energy,
		Content:  body.Content,
		Emotions: body.Emotions,
	})
	if err != nil {
		return mapDiaryError(c, err)
	}

	return ok(c, entry)
}

// DELETE /patients/:patientID/diary/:entryID
func (h *DiaryHandler) DeleteEntry(c fiber.Ctx) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	entryID, err := uuid.Parse(c.Params("entryID"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.svc.DeleteEntry(c.Context(), patientID, entryID); err != nil {
		return mapDiaryError(c, err)
	}

	return noContent(c)
}

// GET /patients/:patientID/diary
func (h *DiaryHandler) ListEntries(c fiber.Ctx) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	from, to := entryRange(c)
	entries, err := h.svc.ListEntries(c.Context(), patientID, from, to)
	if err != nil {
		return mapDiaryError(c, err)
	}

	return ok(c, entries)
}

// GET /patients/:patientID/diary/shared
// Psychologist view: the caller's member id must hold an active care link
// with diary sharing enabled.
func (h *DiaryHandler) ListEntriesShared(c fiber.Ctx) error {
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	from, to := entryRange(c)
	entries, err := h.svc.ListEntriesForPsychologist(c.Context(), memberID, patientID, from, to)
	if err != nil {
		return mapDiaryError(c, err)
	}

	return ok(c, entries)
}

// GET /patients/:patientID/mood-trend?days=30
func (h *DiaryHandler) MoodTrend(c fiber.Ctx) error {
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	days, _ := strconv.Atoi(c.Query("days", "30"))
	if days < 1 {
		days = 30
	}
	trend, err := h.svc.MoodTrendForPsychologist(c.Context(), memberID, patientID, days)
	if err != nil {
		return mapDiaryError(c, err)
	}

	return ok(c, trend)
}

// GET /patients/:patientID/diary/export
// Plain-text download of the patient's full diary history.
func (h *DiaryHandler) Export(c fiber.Ctx) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	doc, err := h.svc.ExportText(c.Context(), patientID)
	if err != nil {
		return mapDiaryError(c, err)
	}

	filename := fmt.Sprintf("ampara_diario_%s.txt", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(doc)
}
