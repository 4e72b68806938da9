package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entprofile "github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	entunavail "github.com/amparasaude/ampara_backend/internal/repo/unavailability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpsertRequest struct {
	CRPLicense         *string
	Approach           *string
	Specialties        []string
	Bio                *string
	SessionPriceCents  *int64
	SessionDurationMin *int
	Timezone           *string
	WorkingHours       map[string]any
	SlotGranularityMin *int
}

type BlockRequest struct {
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, memberID uuid.UUID) (*repo.PsychologistProfile, error)
	Create(ctx context.Context, memberID uuid.UUID, req UpsertRequest) (*repo.PsychologistProfile, error)
	Update(ctx context.Context, memberID uuid.UUID, req UpsertRequest) (*repo.PsychologistProfile, error)

	// SetAccepting flips whether the psychologist appears as bookable.
	SetAccepting(ctx context.Context, memberID uuid.UUID, accepting bool) error

	ListBlocks(ctx context.Context, clinicID, memberID uuid.UUID, from, to time.Time) ([]*repo.Unavailability, error)
	AddBlock(ctx context.Context, clinicID, memberID uuid.UUID, req BlockRequest) (*repo.Unavailability, error)
	RemoveBlock(ctx context.Context, clinicID, memberID, blockID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type profileService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &profileService{db: db}
}

func (s *profileService) Get(ctx context.Context, memberID uuid.UUID) (*repo.PsychologistProfile, error) {
	p, err := s.db.PsychologistProfile.Query().
		Where(entprofile.ClinicMemberID(memberID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Create(ctx context.Context, memberID uuid.UUID, req UpsertRequest) (*repo.PsychologistProfile, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	exists, err := s.db.PsychologistProfile.Query().
		Where(entprofile.ClinicMemberID(memberID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return nil, ErrProfileAlreadyExists
	}

	c := s.db.PsychologistProfile.Create().
		SetClinicMemberID(memberID)
	c = applyUpsertCreate(c, req)

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, memberID uuid.UUID, req UpsertRequest) (*repo.PsychologistProfile, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	p, err := s.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	u := applyUpsertUpdate(s.db.PsychologistProfile.UpdateOne(p), req)
	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

func (s *profileService) SetAccepting(ctx context.Context, memberID uuid.UUID, accepting bool) error {
	p, err := s.Get(ctx, memberID)
	if err != nil {
		return err
	}
	return s.db.PsychologistProfile.UpdateOne(p).
		SetIsAccepting(accepting).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Unavailability blocks
// ---------------------------------------------------------------------------

func (s *profileService) ListBlocks(ctx context.Context, clinicID, memberID uuid.UUID, from, to time.Time) ([]*repo.Unavailability, error) {
	blocks, err := s.db.Unavailability.Query().
		Where(
			entunavail.ClinicID(clinicID),
			entunavail.PsychologistID(memberID),
			entunavail.StartTimeLT(to),
			entunavail.EndTimeGT(from),
		).
		Order(entunavail.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return blocks, nil
}

func (s *profileService) AddBlock(ctx context.Context, clinicID, memberID uuid.UUID, req BlockRequest) (*repo.Unavailability, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	overlapping, err := s.db.Unavailability.Query().
		Where(
			entunavail.PsychologistID(memberID),
			entunavail.StartTimeLT(req.EndTime),
			entunavail.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check block overlap: %w", err)
	}
	if overlapping {
		return nil, ErrOverlappingBlock
	}

	c := s.db.Unavailability.Create().
		SetClinicID(clinicID).
		SetPsychologistID(memberID).
		SetStartTime(req.StartTime.UTC()).
		SetEndTime(req.EndTime.UTC())
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}

	block, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}
	return block, nil
}

func (s *profileService) RemoveBlock(ctx context.Context, clinicID, memberID, blockID uuid.UUID) error {
	block, err := s.db.Unavailability.Query().
		Where(
			entunavail.ID(blockID),
			entunavail.ClinicID(clinicID),
			entunavail.PsychologistID(memberID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrBlockNotFound
		}
		return fmt.Errorf("get block: %w", err)
	}
	return s.db.Unavailability.DeleteOne(block).Exec(ctx)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func validateUpsert(req UpsertRequest) error {
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return ErrInvalidTimezone
		}
	}
	if req.WorkingHours != nil {
		if err := validateWorkingHours(req.WorkingHours); err != nil {
			return err
		}
	}
	return nil
}

var weekdays = map[string]struct{}{
	"sunday": {}, "monday": {}, "tuesday": {}, "wednesday": {},
	"thursday": {}, "friday": {}, "saturday": {},
}

// validateWorkingHours checks the {"monday": {"start": "08:00", "end":
// "18:00"}} document shape without interpreting the hours.
func validateWorkingHours(wh map[string]any) error {
	for day, raw := range wh {
		if _, ok := weekdays[day]; !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidWorkingHours, day)
		}
		entry, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s entry is not an object", ErrInvalidWorkingHours, day)
		}
		for _, key := range []string{"start", "end"} {
			v, ok := entry[key].(string)
			if !ok {
				return fmt.Errorf("%w: %s is missing %q", ErrInvalidWorkingHours, day, key)
			}
			var h, m int
			if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
				return fmt.Errorf("%w: %s %s %q is not HH:MM", ErrInvalidWorkingHours, day, key, v)
			}
		}
	}
	return nil
}

func applyUpsertCreate(c *repo.PsychologistProfileCreate, req UpsertRequest) *repo.PsychologistProfileCreate {
	if req.CRPLicense != nil {
		c = c.SetCrpLicense(*req.CRPLicense)
	}
	if req.Approach != nil {
		c = c.SetNillableApproach(req.Approach)
	}
	if req.Specialties != nil {
		c = c.SetSpecialties(req.Specialties)
	}
	if req.Bio != nil {
		c = c.SetNillableBio(req.Bio)
	}
	if req.SessionPriceCents != nil {
		c = c.SetSessionPriceCents(*req.SessionPriceCents)
	}
	if req.SessionDurationMin != nil {
		c = c.SetSessionDurationMin(*req.SessionDurationMin)
	}
	if req.Timezone != nil {
		c = c.SetTimezone(*req.Timezone)
	}
	if req.WorkingHours != nil {
		c = c.SetWorkingHours(req.WorkingHours)
	}
	if req.SlotGranularityMin != nil {
		c = c.SetSlotGranularityMin(*req.SlotGranularityMin)
	}
	return c
}

func applyUpsertUpdate(u *repo.PsychologistProfileUpdateOne, req UpsertRequest) *repo.PsychologistProfileUpdateOne {
	if req.CRPLicense != nil {
		u = u.SetCrpLicense(*req.CRPLicense)
	}
	if req.Approach != nil {
		u = u.SetNillableApproach(req.Approach)
	}
	if req.Specialties != nil {
		u = u.SetSpecialties(req.Specialties)
	}
	if req.Bio != nil {
		u = u.SetNillableBio(req.Bio)
	}
	if req.SessionPriceCents != nil {
		u = u.SetSessionPriceCents(*req.SessionPriceCents)
	}
	if req.SessionDurationMin != nil {
		u = u.SetSessionDurationMin(*req.SessionDurationMin)
	}
	if req.Timezone != nil {
		u = u.SetTimezone(*req.Timezone)
	}
	if req.WorkingHours != nil {
		u = u.SetWorkingHours(req.WorkingHours)
	}
	if req.SlotGranularityMin != nil {
		u = u.SetSlotGranularityMin(*req.SlotGranularityMin)
	}
	return u
}
