package session

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entsession "github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/amparasaude/ampara_backend/internal/service/conflict"
	"github.com/amparasaude/ampara_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	PsychologistID *uuid.UUID
	PatientID      *uuid.UUID
	SeriesID       *uuid.UUID
	Status         *string
	From           *time.Time
	To             *time.Time
	Page           int
	PerPage        int
}

type ScheduleRequest struct {
	PsychologistID  uuid.UUID
	PatientID       *uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Timezone        string
	Type            string
	Notes           *string
	PriceCents      *int64
}

type RescheduleRequest struct {
	ScheduledAt     time.Time
	DurationMinutes *int
	Timezone        *string
}

type CancelRequest struct {
	Reason      *string
	RequestedBy string // "patient" | "psychologist" | "clinic"
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Session, error)
	GetByID(ctx context.Context, clinicID, sessionID uuid.UUID) (*repo.Session, error)
	Schedule(ctx context.Context, clinicID uuid.UUID, req ScheduleRequest) (*repo.Session, error)
	Reschedule(ctx context.Context, clinicID, sessionID uuid.UUID, req RescheduleRequest) (*repo.Session, error)
	Confirm(ctx context.Context, clinicID, sessionID uuid.UUID) error
	Start(ctx context.Context, clinicID, sessionID uuid.UUID) error
	Complete(ctx context.Context, clinicID, sessionID uuid.UUID) error
	Cancel(ctx context.Context, clinicID, sessionID uuid.UUID, req CancelRequest) error
	MarkNoShow(ctx context.Context, clinicID, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type sessionService struct {
	db       *repo.Client
	conflict conflict.Service
	nc       *nats.Conn
}

func New(db *repo.Client, conflictSvc conflict.Service, nc *nats.Conn) Service {
	return &sessionService{db: db, conflict: conflictSvc, nc: nc}
}

func (s *sessionService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Session, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Session.Query().
		Where(entsession.ClinicID(clinicID))

	if req.PsychologistID != nil {
		q = q.Where(entsession.PsychologistID(*req.PsychologistID))
	}
	if req.PatientID != nil {
		q = q.Where(entsession.PatientID(*req.PatientID))
	}
	if req.SeriesID != nil {
		q = q.Where(entsession.SeriesID(*req.SeriesID))
	}
	if req.Status != nil {
		q = q.Where(entsession.StatusEQ(entsession.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entsession.ScheduledAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entsession.ScheduledAtLT(*req.To))
	}

	q = q.Order(entsession.ByScheduledAt(sql.OrderDesc()))

	sessions, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) GetByID(ctx context.Context, clinicID, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.db.Session.Query().
		Where(entsession.ID(sessionID), entsession.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) Schedule(ctx context.Context, clinicID uuid.UUID, req ScheduleRequest) (*repo.Session, error) {
	report, err := s.conflict.CheckConflicts(ctx, conflict.CheckRequest{
		ClinicID:        clinicID,
		PsychologistID:  req.PsychologistID,
		PatientID:       req.PatientID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Timezone:        req.Timezone,
	})
	if err != nil {
		return nil, err
	}
	if report.HasConflict {
		return nil, ErrSlotConflict
	}

	c := s.db.Session.Create().
		SetClinicID(clinicID).
		SetPsychologistID(req.PsychologistID).
		SetScheduledAt(req.ScheduledAt.UTC()).
		SetDurationMinutes(req.DurationMinutes).
		SetTimezone(req.Timezone)

	if req.PatientID != nil {
		c = c.SetPatientID(*req.PatientID)
	}
	if req.Type != "" {
		c = c.SetType(entsession.Type(req.Type))
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}
	if req.PriceCents != nil {
		c = c.SetPriceCents(*req.PriceCents)
	}

	sess, err := c.Save(ctx)
	if err != nil {
		// The exclusion constraint is the authority; the check above is
		// only a pre-flight and can lose a race.
		if database.IsExclusionViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.publish("session.created", clinicID, sess.ID)
	return sess, nil
}

func (s *sessionService) Reschedule(ctx context.Context, clinicID, sessionID uuid.UUID, req RescheduleRequest) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, clinicID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entsession.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if sess.Status == entsession.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	duration := sess.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	tz := sess.Timezone
	if req.Timezone != nil {
		tz = *req.Timezone
	}

	// The session being moved is excluded so it cannot conflict with itself.
	report, err := s.conflict.CheckConflicts(ctx, conflict.CheckRequest{
		ClinicID:         clinicID,
		PsychologistID:   sess.PsychologistID,
		PatientID:        sess.PatientID,
		ScheduledAt:      req.ScheduledAt,
		DurationMinutes:  duration,
		Timezone:         tz,
		ExcludeSessionID: &sess.ID,
	})
	if err != nil {
		return nil, err
	}
	if report.HasConflict {
		return nil, ErrSlotConflict
	}

	updated, err := s.db.Session.UpdateOne(sess).
		SetScheduledAt(req.ScheduledAt.UTC()).
		SetDurationMinutes(duration).
		SetTimezone(tz).
		Save(ctx)
	if err != nil {
		if database.IsExclusionViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("reschedule session: %w", err)
	}

	s.publish("session.rescheduled", clinicID, updated.ID)
	return updated, nil
}

func (s *sessionService) Confirm(ctx context.Context, clinicID, sessionID uuid.UUID) error {
	return s.transition(ctx, clinicID, sessionID,
		[]entsession.Status{entsession.StatusScheduled},
		entsession.StatusConfirmed, "")
}

func (s *sessionService) Start(ctx context.Context, clinicID, sessionID uuid.UUID) error {
	return s.transition(ctx, clinicID, sessionID,
		[]entsession.Status{entsession.StatusScheduled, entsession.StatusConfirmed},
		entsession.StatusInProgress, "")
}

func (s *sessionService) Complete(ctx context.Context, clinicID, sessionID uuid.UUID) error {
	sess, err := s.GetByID(ctx, clinicID, sessionID)
	if err != nil {
		return err
	}
	switch sess.Status {
	case entsession.StatusCompleted:
		return ErrAlreadyCompleted
	case entsession.StatusCancelled:
		return ErrAlreadyCancelled
	case entsession.StatusInProgress, entsession.StatusConfirmed, entsession.StatusScheduled:
	default:
		return ErrInvalidStatus
	}

	err = s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}

	s.publish("session.completed", clinicID, sess.ID)
	return nil
}

func (s *sessionService) Cancel(ctx context.Context, clinicID, sessionID uuid.UUID, req CancelRequest) error {
	sess, err := s.GetByID(ctx, clinicID, sessionID)
	if err != nil {
		return err
	}

	if sess.Status == entsession.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if sess.Status == entsession.StatusCompleted {
		return ErrAlreadyCompleted
	}

	upd := s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancelRequestedBy(entsession.CancelRequestedBy(req.RequestedBy))

	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel session: %w", err)
	}

	s.publish("session.cancelled", clinicID, sess.ID)
	return nil
}

func (s *sessionService) MarkNoShow(ctx context.Context, clinicID, sessionID uuid.UUID) error {
	return s.transition(ctx, clinicID, sessionID,
		[]entsession.Status{entsession.StatusScheduled, entsession.StatusConfirmed},
		entsession.StatusNoShow, "session.no_show")
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *sessionService) transition(ctx context.Context, clinicID, sessionID uuid.UUID, from []entsession.Status, to entsession.Status, event string) error {
	sess, err := s.GetByID(ctx, clinicID, sessionID)
	if err != nil {
		return err
	}

	allowed := false
	for _, st := range from {
		if sess.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		switch sess.Status {
		case entsession.StatusCancelled:
			return ErrAlreadyCancelled
		case entsession.StatusCompleted:
			return ErrAlreadyCompleted
		default:
			return ErrInvalidStatus
		}
	}

	if err := s.db.Session.UpdateOne(sess).SetStatus(to).Exec(ctx); err != nil {
		return fmt.Errorf("set status %s: %w", to, err)
	}

	if event != "" {
		s.publish(event, clinicID, sess.ID)
	}
	return nil
}

// publish emits a best-effort NATS event carrying the session id. Event
// delivery must never fail the primary operation.
func (s *sessionService) publish(event string, clinicID, sessionID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("ampara.%s.%s", event, clinicID)
	_ = s.nc.Publish(subject, []byte(sessionID.String()))
}
