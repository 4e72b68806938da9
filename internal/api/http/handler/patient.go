package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/api/http/middleware"
	"github.com/amparasaude/ampara_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func clinicIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsClinicID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func memberIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsMemberID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrPatientAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, patient.ErrLinkNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrLinkAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrLinkNotPending):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrLinkNotActive):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrInviteCodeInvalid):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		PsychologistID string `query:"psychologist_id"`
		Status         string `query:"status"`
		HasDiscount    *bool  `query:"has_discount"`
		Order          string `query:"order"`
		Page           int    `query:"page"`
		PerPage        int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListPatientsRequest{
		Page:        q.Page,
		PerPage:     q.PerPage,
		HasDiscount: q.HasDiscount,
		Order:       q.Order,
	}
	if q.PsychologistID != "" {
		id, err := uuid.Parse(q.PsychologistID)
		if err != nil {
			return badRequest(c, "invalid psychologist_id")
		}
		req.PsychologistID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	result, err := h.svc.List(c.Context(), clinicID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, result)
}

type patientBody struct {
	UserID                 string     `json:"user_id"`
	AssignedPsychologistID *string    `json:"assigned_psychologist_id"`
	FileNumber             *string    `json:"file_number"`
	Status                 *string    `json:"status"`
	CPF                    *string    `json:"cpf"`
	BirthDate              *time.Time `json:"birth_date"`
	Timezone               *string    `json:"timezone"`
	HasDiscount            *bool      `json:"has_discount"`
	DiscountPercent        *int       `json:"discount_percent"`
	Notes                  *string    `json:"notes"`
	ReferralSource         *string    `json:"referral_source"`
	ChiefComplaint         *string    `json:"chief_complaint"`
	EmergencyContactName   *string    `json:"emergency_contact_name"`
	EmergencyContactPhone  *string    `json:"emergency_contact_phone"`
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.UserID == "" {
		return badRequest(c, "user_id is required")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	req := patient.CreatePatientRequest{
		UserID:                userID,
		FileNumber:            body.FileNumber,
		CPF:                   body.CPF,
		BirthDate:             body.BirthDate,
		Timezone:              body.Timezone,
		Notes:                 body.Notes,
		ReferralSource:        body.ReferralSource,
		ChiefComplaint:        body.ChiefComplaint,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
	}
	if body.AssignedPsychologistID != nil {
		id, err := uuid.Parse(*body.AssignedPsychologistID)
		if err != nil {
			return badRequest(c, "invalid assigned_psychologist_id")
		}
		req.AssignedPsychologistID = &id
	}

	p, err := h.svc.Create(c.Context(), clinicID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/:patientID
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), clinicID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// GET /patients/:patientID/cpf
// Separate endpoint so CPF access can carry its own permission check and
// never rides along in list/detail payloads.
func (h *PatientHandler) RevealCPF(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), clinicID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	cpf, err := h.svc.DecryptCPF(p)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{"cpf": cpf})
}

// PATCH /patients/:patientID
func (h *PatientHandler) Update(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdatePatientRequest{
		FileNumber:            body.FileNumber,
		Status:                body.Status,
		CPF:                   body.CPF,
		BirthDate:             body.BirthDate,
		Timezone:              body.Timezone,
		HasDiscount:           body.HasDiscount,
		DiscountPercent:       body.DiscountPercent,
		Notes:                 body.Notes,
		ReferralSource:        body.ReferralSource,
		ChiefComplaint:        body.ChiefComplaint,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
	}
	if body.AssignedPsychologistID != nil {
		id, err := uuid.Parse(*body.AssignedPsychologistID)
		if err != nil {
			return badRequest(c, "invalid assigned_psychologist_id")
		}
		req.AssignedPsychologistID = &id
	}

	p, err := h.svc.Update(c.Context(), clinicID, patientID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// ---------------------------------------------------------------------------
// Care links
// ---------------------------------------------------------------------------

// POST /patients/:patientID/links
func (h *PatientHandler) InviteLink(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	memberID, valid := memberIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		ShareDiary bool `json:"share_diary"`
		ShareMood  bool `json:"share_mood"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	link, err := h.svc.InviteLink(c.Context(), clinicID, patient.InviteLinkRequest{
		PsychologistID: memberID,
		PatientID:      patientID,
		ShareDiary:     body.ShareDiary,
		ShareMood:      body.ShareMood,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, link)
}

// POST /links/accept
func (h *PatientHandler) AcceptLink(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		InviteCode string `json:"invite_code"`
		ShareDiary bool   `json:"share_diary"`
		ShareMood  bool   `json:"share_mood"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.InviteCode == "" {
		return badRequest(c, "invite_code is required")
	}

	link, err := h.svc.AcceptLink(c.Context(), clinicID, body.InviteCode, patient.ConsentRequest{
		ShareDiary: body.ShareDiary,
		ShareMood:  body.ShareMood,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, link)
}

// PATCH /links/:linkID/consent
func (h *PatientHandler) UpdateConsent(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	linkID, err := uuid.Parse(c.Params("linkID"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	var body struct {
		ShareDiary bool `json:"share_diary"`
		ShareMood  bool `json:"share_mood"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	link, err := h.svc.UpdateConsent(c.Context(), clinicID, linkID, patient.ConsentRequest{
		ShareDiary: body.ShareDiary,
		ShareMood:  body.ShareMood,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, link)
}

// PATCH /links/:linkID/revoke
func (h *PatientHandler) RevokeLink(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	linkID, err := uuid.Parse(c.Params("linkID"))
	if err != nil {
		return badRequest(c, "invalid link id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.RevokeLink(c.Context(), clinicID, linkID, body.Reason); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// GET /patients/:patientID/links
func (h *PatientHandler) ListLinks(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := parsePatientID(c)
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	links, err := h.svc.ListLinks(c.Context(), clinicID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, links)
}
