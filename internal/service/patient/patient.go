package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entpatient "github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/pkg/crypto"
	"github.com/amparasaude/ampara_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListPatientsRequest struct {
	Page           int
	PerPage        int
	PsychologistID *uuid.UUID
	Status         *string
	HasDiscount    *bool
	Order          string // asc | desc
}

type CreatePatientRequest struct {
	UserID                 uuid.UUID
	AssignedPsychologistID *uuid.UUID
	FileNumber             *string
	CPF                    *string // plaintext; encrypted before storage
	BirthDate              *time.Time
	Timezone               *string
	Notes                  *string
	ReferralSource         *string
	ChiefComplaint         *string
	EmergencyContactName   *string
	EmergencyContactPhone  *string
}

type UpdatePatientRequest struct {
	AssignedPsychologistID *uuid.UUID
	FileNumber             *string
	Status                 *string
	CPF                    *string
	BirthDate              *time.Time
	Timezone               *string
	HasDiscount            *bool
	DiscountPercent        *int
	Notes                  *string
	ReferralSource         *string
	ChiefComplaint         *string
	EmergencyContactName   *string
	EmergencyContactPhone  *string
}

type InviteLinkRequest struct {
	PsychologistID uuid.UUID
	PatientID      uuid.UUID
	ShareDiary     bool
	ShareMood      bool
}

type ConsentRequest struct {
	ShareDiary bool
	ShareMood  bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Patient CRUD
	Create(ctx context.Context, clinicID uuid.UUID, req CreatePatientRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, clinicID uuid.UUID, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, clinicID, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)

	// DecryptCPF reveals the stored CPF for authorized staff views.
	DecryptCPF(p *repo.Patient) (string, error)

	// Care links (consent-gated psychologist ↔ patient binding)
	InviteLink(ctx context.Context, clinicID uuid.UUID, req InviteLinkRequest) (*repo.CareLink, error)
	AcceptLink(ctx context.Context, clinicID uuid.UUID, inviteCode string, req ConsentRequest) (*repo.CareLink, error)
	UpdateConsent(ctx context.Context, clinicID, linkID uuid.UUID, req ConsentRequest) (*repo.CareLink, error)
	RevokeLink(ctx context.Context, clinicID, linkID uuid.UUID, reason *string) error
	ListLinks(ctx context.Context, clinicID, patientID uuid.UUID) ([]*repo.CareLink, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	encKey []byte
	email  *email.Client
	domain string
}

func New(db *repo.Client, encKey []byte, emailClient *email.Client, domain string) Service {
	return &patientService{db: db, encKey: encKey, email: emailClient, domain: domain}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

func (s *patientService) Create(ctx context.Context, clinicID uuid.UUID, req CreatePatientRequest) (*repo.Patient, error) {
	exists, err := s.db.Patient.Query().
		Where(entpatient.ClinicID(clinicID), entpatient.UserID(req.UserID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if exists {
		return nil, ErrPatientAlreadyExists
	}

	c := s.db.Patient.Create().
		SetClinicID(clinicID).
		SetUserID(req.UserID)

	if req.AssignedPsychologistID != nil {
		c = c.SetAssignedPsychologistID(*req.AssignedPsychologistID)
	}
	if req.FileNumber != nil {
		c = c.SetNillableFileNumber(req.FileNumber)
	}
	if req.CPF != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.CPF)
		if err != nil {
			return nil, fmt.Errorf("encrypt cpf: %w", err)
		}
		c = c.SetCpfEncrypted(enc)
	}
	if req.BirthDate != nil {
		c = c.SetNillableBirthDate(req.BirthDate)
	}
	if req.Timezone != nil {
		c = c.SetTimezone(*req.Timezone)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}
	if req.ReferralSource != nil {
		c = c.SetNillableReferralSource(req.ReferralSource)
	}
	if req.ChiefComplaint != nil {
		c = c.SetNillableChiefComplaint(req.ChiefComplaint)
	}
	if req.EmergencyContactName != nil {
		c = c.SetNillableEmergencyContactName(req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		c = c.SetNillableEmergencyContactPhone(req.EmergencyContactPhone)
	}

	return c.Save(ctx)
}

func (s *patientService) GetByID(ctx context.Context, clinicID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, clinicID uuid.UUID, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.ClinicID(clinicID), entpatient.DeletedAtIsNil())

	if req.PsychologistID != nil {
		q = q.Where(entpatient.AssignedPsychologistID(*req.PsychologistID))
	}
	if req.Status != nil {
		q = q.Where(entpatient.StatusEQ(entpatient.Status(*req.Status)))
	}
	if req.HasDiscount != nil {
		q = q.Where(entpatient.HasDiscount(*req.HasDiscount))
	}

	if req.Order == "asc" {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.WithUser().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, clinicID, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.AssignedPsychologistID != nil {
		u = u.SetAssignedPsychologistID(*req.AssignedPsychologistID)
	}
	if req.FileNumber != nil {
		u = u.SetNillableFileNumber(req.FileNumber)
	}
	if req.Status != nil {
		u = u.SetStatus(entpatient.Status(*req.Status))
	}
	if req.CPF != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.CPF)
		if err != nil {
			return nil, fmt.Errorf("encrypt cpf: %w", err)
		}
		u = u.SetCpfEncrypted(enc)
	}
	if req.BirthDate != nil {
		u = u.SetNillableBirthDate(req.BirthDate)
	}
	if req.Timezone != nil {
		u = u.SetTimezone(*req.Timezone)
	}
	if req.HasDiscount != nil {
		u = u.SetHasDiscount(*req.HasDiscount)
	}
	if req.DiscountPercent != nil {
		u = u.SetDiscountPercent(*req.DiscountPercent)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	if req.ReferralSource != nil {
		u = u.SetNillableReferralSource(req.ReferralSource)
	}
	if req.ChiefComplaint != nil {
		u = u.SetNillableChiefComplaint(req.ChiefComplaint)
	}
	if req.EmergencyContactName != nil {
		u = u.SetNillableEmergencyContactName(req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		u = u.SetNillableEmergencyContactPhone(req.EmergencyContactPhone)
	}

	return u.Save(ctx)
}

func (s *patientService) DecryptCPF(p *repo.Patient) (string, error) {
	if p.CpfEncrypted == nil || *p.CpfEncrypted == "" {
		return "", nil
	}
	return crypto.Decrypt(s.encKey, *p.CpfEncrypted)
}
