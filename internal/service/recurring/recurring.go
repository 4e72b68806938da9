package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/repo"
	entsession "github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/amparasaude/ampara_backend/internal/service/conflict"
	"github.com/amparasaude/ampara_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Config describes a recurring series to be expanded into sessions.
// Exactly one of Occurrences or EndDate must be set.
type Config struct {
	ClinicID       uuid.UUID
	PsychologistID uuid.UUID
	PatientID      *uuid.UUID

	Frequency  Frequency
	Interval   int // pattern multiplier, default 1
	DaysOfWeek []time.Weekday

	StartsAt        time.Time // anchor: first occurrence start
	DurationMinutes int
	Timezone        string

	Occurrences *int
	EndDate     *time.Time
	SkipDates   []time.Time

	Type       string // "therapy" | "consultation"
	Notes      *string
	PriceCents *int64
}

type ValidationResult struct {
	Valid  bool
	Errors []string
}

// CreateResult reports what was actually inserted. Dates that conflicted
// with existing sessions are skipped and listed, not silently dropped.
type CreateResult struct {
	SeriesID        uuid.UUID
	Sessions        []*repo.Session
	CreatedSessions int
	SkippedDates    []time.Time
}

// Patch is a partial update applied to one or more occurrences.
type Patch struct {
	ScheduledAt     *time.Time
	DurationMinutes *int
	Notes           *string
	PriceCents      *int64
	Type            *string
}

type Scope string

const (
	ScopeSingle Scope = "single"
	ScopeFuture Scope = "future"
	ScopeAll    Scope = "all"
)

type Statistics struct {
	Total     int
	Scheduled int
	Completed int
	Cancelled int
	NoShow    int
	FirstAt   *time.Time
	LastAt    *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ValidateConfig is pure: it never touches the database.
	ValidateConfig(cfg Config) ValidationResult

	CreateSeries(ctx context.Context, cfg Config) (*CreateResult, error)

	UpdateSingle(ctx context.Context, clinicID, sessionID uuid.UUID, patch Patch) error
	UpdateFuture(ctx context.Context, clinicID, anchorSessionID uuid.UUID, patch Patch) (int, error)
	UpdateAll(ctx context.Context, clinicID, anchorSessionID uuid.UUID, patch Patch) (int, error)

	CancelSeries(ctx context.Context, clinicID, sessionID uuid.UUID, scope Scope) (int, error)
	SkipOccurrence(ctx context.Context, clinicID, sessionID uuid.UUID) error

	SeriesSessions(ctx context.Context, clinicID, seriesID uuid.UUID) ([]*repo.Session, error)
	SeriesStatistics(ctx context.Context, clinicID, seriesID uuid.UUID) (*Statistics, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type recurringService struct {
	db       *repo.Client
	conflict conflict.Service
	cfg      config.SchedulingConfig
}

func New(db *repo.Client, conflictSvc conflict.Service, cfg config.SchedulingConfig) Service {
	return &recurringService{db: db, conflict: conflictSvc, cfg: cfg}
}

func (s *recurringService) ValidateConfig(cfg Config) ValidationResult {
	res := ValidationResult{Valid: true}
	fail := func(msg string) {
		res.Valid = false
		res.Errors = append(res.Errors, msg)
	}

	if cfg.PsychologistID == uuid.Nil {
		fail("psychologist_id is required")
	}
	if !cfg.Frequency.Valid() {
		fail(fmt.Sprintf("frequency must be one of daily, weekly, biweekly, monthly; got %q", cfg.Frequency))
	}
	if cfg.StartsAt.IsZero() {
		fail("starts_at is required")
	} else if cfg.StartsAt.Before(time.Now()) {
		fail("starts_at is in the past")
	}
	if cfg.DurationMinutes <= 0 {
		fail("duration_minutes must be positive")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		fail(fmt.Sprintf("unknown timezone %q", cfg.Timezone))
	}

	switch {
	case cfg.Occurrences == nil && cfg.EndDate == nil:
		fail("either occurrences or end_date must be set")
	case cfg.Occurrences != nil && cfg.EndDate != nil:
		fail("occurrences and end_date are mutually exclusive")
	case cfg.Occurrences != nil && *cfg.Occurrences < 1:
		fail("occurrences must be at least 1")
	case cfg.EndDate != nil && cfg.EndDate.Before(cfg.StartsAt):
		fail("end_date is before starts_at")
	}

	if cfg.Frequency != FrequencyWeekly && cfg.Frequency != FrequencyBiweekly && len(cfg.DaysOfWeek) > 0 {
		fail("days_of_week is only valid for weekly and biweekly patterns")
	}
	for _, d := range cfg.DaysOfWeek {
		if d < time.Sunday || d > time.Saturday {
			fail(fmt.Sprintf("invalid weekday %d", d))
		}
	}

	if cfg.Type != "" && cfg.Type != "therapy" && cfg.Type != "consultation" {
		fail(fmt.Sprintf("type must be therapy or consultation; got %q", cfg.Type))
	}

	return res
}

func (s *recurringService) CreateSeries(ctx context.Context, cfg Config) (*CreateResult, error) {
	if v := s.ValidateConfig(cfg); !v.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, v.Errors)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	dates := expandDates(cfg, loc, s.cfg.MaxOccurrences, s.cfg.MaxHorizonDays)
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no occurrences inside the allowed horizon", ErrInvalidConfig)
	}

	seriesID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new series id: %w", err)
	}

	result := &CreateResult{SeriesID: seriesID}

	// The application-level conflict check is a pre-flight; the insert runs
	// inside one transaction so a partially created series never survives.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, date := range dates {
		report, cerr := s.conflict.CheckConflicts(ctx, conflict.CheckRequest{
			ClinicID:        cfg.ClinicID,
			PsychologistID:  cfg.PsychologistID,
			PatientID:       cfg.PatientID,
			ScheduledAt:     date,
			DurationMinutes: cfg.DurationMinutes,
			Timezone:        cfg.Timezone,
		})
		if cerr != nil {
			err = cerr
			return nil, fmt.Errorf("preflight conflict check: %w", cerr)
		}
		if report.HasConflict {
			result.SkippedDates = append(result.SkippedDates, date)
			continue
		}

		c := tx.Session.Create().
			SetClinicID(cfg.ClinicID).
			SetPsychologistID(cfg.PsychologistID).
			SetScheduledAt(date.UTC()).
			SetDurationMinutes(cfg.DurationMinutes).
			SetTimezone(cfg.Timezone).
			SetSeriesID(seriesID)

		if cfg.PatientID != nil {
			c = c.SetPatientID(*cfg.PatientID)
		}
		if cfg.Type != "" {
			c = c.SetType(entsession.Type(cfg.Type))
		}
		if cfg.Notes != nil {
			c = c.SetNillableNotes(cfg.Notes)
		}
		if cfg.PriceCents != nil {
			c = c.SetPriceCents(*cfg.PriceCents)
		}

		sess, serr := c.Save(ctx)
		if serr != nil {
			err = serr
			// A lost race past the pre-flight check aborts the whole batch;
			// a partially created series must not survive.
			if database.IsExclusionViolation(serr) {
				return nil, fmt.Errorf("%w: %s", ErrOccurrenceRaceLost, date.Format(time.RFC3339))
			}
			return nil, fmt.Errorf("create occurrence: %w", serr)
		}
		result.Sessions = append(result.Sessions, sess)
	}

	if len(result.Sessions) == 0 {
		err = ErrNothingCreated
		return nil, ErrNothingCreated
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	result.CreatedSessions = len(result.Sessions)
	return result, nil
}

func (s *recurringService) UpdateSingle(ctx context.Context, clinicID, sessionID uuid.UUID, patch Patch) error {
	sess, err := s.getSession(ctx, clinicID, sessionID)
	if err != nil {
		return err
	}
	if err := applyPatch(s.db.Session.UpdateOne(sess), patch).Exec(ctx); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *recurringService) UpdateFuture(ctx context.Context, clinicID, anchorSessionID uuid.UUID, patch Patch) (int, error) {
	anchor, err := s.getSeriesAnchor(ctx, clinicID, anchorSessionID)
	if err != nil {
		return 0, err
	}

	siblings, err := s.db.Session.Query().
		Where(
			entsession.ClinicID(clinicID),
			entsession.SeriesID(*anchor.SeriesID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load series: %w", err)
	}

	ids := futureCohortIDs(siblings, anchor)
	n, err := applyPatchMany(s.db.Session.Update().
		Where(entsession.IDIn(ids...)), patch).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update future sessions: %w", err)
	}
	return n, nil
}

// futureCohortIDs selects the occurrences the "future" scope covers: the
// anchor itself and every sibling scheduled at or after the anchor's own
// time. The wall clock plays no part, so editing an anchor that already
// passed still rewrites its later siblings.
func futureCohortIDs(siblings []*repo.Session, anchor *repo.Session) []uuid.UUID {
	var ids []uuid.UUID
	for _, sess := range siblings {
		if !sess.ScheduledAt.Before(anchor.ScheduledAt) {
			ids = append(ids, sess.ID)
		}
	}
	return ids
}

func (s *recurringService) UpdateAll(ctx context.Context, clinicID, anchorSessionID uuid.UUID, patch Patch) (int, error) {
	anchor, err := s.getSeriesAnchor(ctx, clinicID, anchorSessionID)
	if err != nil {
		return 0, err
	}

	n, err := applyPatchMany(s.db.Session.Update().
		Where(
			entsession.ClinicID(clinicID),
			entsession.SeriesID(*anchor.SeriesID),
		), patch).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update all sessions: %w", err)
	}
	return n, nil
}

func (s *recurringService) CancelSeries(ctx context.Context, clinicID, sessionID uuid.UUID, scope Scope) (int, error) {
	anchor, err := s.getSession(ctx, clinicID, sessionID)
	if err != nil {
		return 0, err
	}

	now := time.Now()

	if scope == ScopeSingle || anchor.SeriesID == nil {
		if anchor.Status == entsession.StatusCancelled {
			return 0, nil
		}
		err := s.db.Session.UpdateOne(anchor).
			SetStatus(entsession.StatusCancelled).
			SetCancelledAt(now).
			SetCancelRequestedBy(entsession.CancelRequestedByClinic).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("cancel session: %w", err)
		}
		return 1, nil
	}

	q := s.db.Session.Update().
		Where(
			entsession.ClinicID(clinicID),
			entsession.SeriesID(*anchor.SeriesID),
			entsession.StatusNEQ(entsession.StatusCancelled),
		)
	if scope == ScopeFuture {
		q = q.Where(entsession.ScheduledAtGTE(anchor.ScheduledAt))
	}

	n, err := q.
		SetStatus(entsession.StatusCancelled).
		SetCancelledAt(now).
		SetCancelRequestedBy(entsession.CancelRequestedByClinic).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("cancel series: %w", err)
	}
	return n, nil
}

func (s *recurringService) SkipOccurrence(ctx context.Context, clinicID, sessionID uuid.UUID) error {
	sess, err := s.getSession(ctx, clinicID, sessionID)
	if err != nil {
		return err
	}
	if sess.SeriesID == nil {
		return ErrNotInSeries
	}
	if sess.Status == entsession.StatusCancelled {
		return nil
	}
	err = s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancelRequestedBy(entsession.CancelRequestedByClinic).
		SetCancellationReason("occurrence skipped").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("skip occurrence: %w", err)
	}
	return nil
}

func (s *recurringService) SeriesSessions(ctx context.Context, clinicID, seriesID uuid.UUID) ([]*repo.Session, error) {
	sessions, err := s.db.Session.Query().
		Where(
			entsession.ClinicID(clinicID),
			entsession.SeriesID(seriesID),
		).
		Order(entsession.ByScheduledAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list series sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, ErrSeriesNotFound
	}
	return sessions, nil
}

func (s *recurringService) SeriesStatistics(ctx context.Context, clinicID, seriesID uuid.UUID) (*Statistics, error) {
	sessions, err := s.SeriesSessions(ctx, clinicID, seriesID)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{Total: len(sessions)}
	for _, sess := range sessions {
		switch sess.Status {
		case entsession.StatusCompleted:
			stats.Completed++
		case entsession.StatusCancelled:
			stats.Cancelled++
		case entsession.StatusNoShow:
			stats.NoShow++
		default:
			stats.Scheduled++
		}
	}
	first := sessions[0].ScheduledAt
	last := sessions[len(sessions)-1].ScheduledAt
	stats.FirstAt = &first
	stats.LastAt = &last
	return stats, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *recurringService) getSession(ctx context.Context, clinicID, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.db.Session.Query().
		Where(entsession.ID(sessionID), entsession.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *recurringService) getSeriesAnchor(ctx context.Context, clinicID, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.getSession(ctx, clinicID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SeriesID == nil {
		return nil, ErrNotInSeries
	}
	return sess, nil
}

func applyPatch(u *repo.SessionUpdateOne, p Patch) *repo.SessionUpdateOne {
	if p.ScheduledAt != nil {
		u = u.SetScheduledAt(p.ScheduledAt.UTC())
	}
	if p.DurationMinutes != nil {
		u = u.SetDurationMinutes(*p.DurationMinutes)
	}
	if p.Notes != nil {
		u = u.SetNotes(*p.Notes)
	}
	if p.PriceCents != nil {
		u = u.SetPriceCents(*p.PriceCents)
	}
	if p.Type != nil {
		u = u.SetType(entsession.Type(*p.Type))
	}
	return u
}

// applyPatchMany mirrors applyPatch for bulk updates. Bulk patches never
// move scheduled times: shifting a whole cohort to one instant would make
// every occurrence collide.
func applyPatchMany(u *repo.SessionUpdate, p Patch) *repo.SessionUpdate {
	if p.DurationMinutes != nil {
		u = u.SetDurationMinutes(*p.DurationMinutes)
	}
	if p.Notes != nil {
		u = u.SetNotes(*p.Notes)
	}
	if p.PriceCents != nil {
		u = u.SetPriceCents(*p.PriceCents)
	}
	if p.Type != nil {
		u = u.SetType(entsession.Type(*p.Type))
	}
	return u
}
