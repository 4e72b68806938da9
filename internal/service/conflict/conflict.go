package conflict

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/repo"
	entpatient "github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	entprofile "github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	entsession "github.com/amparasaude/ampara_backend/internal/repo/session"
	entunavail "github.com/amparasaude/ampara_backend/internal/repo/unavailability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CheckRequest describes a proposed session slot. ExcludeSessionID is set
// when re-validating a reschedule so the session is not matched against
// itself.
type CheckRequest struct {
	ClinicID         uuid.UUID
	PsychologistID   uuid.UUID
	PatientID        *uuid.UUID
	ScheduledAt      time.Time
	DurationMinutes  int
	Timezone         string
	ExcludeSessionID *uuid.UUID
}

// Report is the outcome of a conflict check. A found conflict is a normal
// result, not an error.
type Report struct {
	HasConflict bool
	Conflicts   []*repo.Session
}

type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Report   *Report
}

type TimezoneCheck struct {
	HasMismatch           bool
	PsychologistTimezone  string
	PatientTimezone       string
	PsychologistLocalTime string
	PatientLocalTime      string
}

type LoadReport struct {
	SessionsPerDay map[string]int
	TotalSessions  int
	TotalHours     float64
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CheckConflicts(ctx context.Context, req CheckRequest) (*Report, error)
	ValidateScheduling(ctx context.Context, req CheckRequest) (*ValidationResult, error)
	Availability(ctx context.Context, clinicID, psychologistID uuid.UUID, day time.Time, timezone string) ([]Slot, error)
	SuggestAlternatives(ctx context.Context, req CheckRequest, numSuggestions int) ([]Slot, error)
	CheckTimezoneMismatch(ctx context.Context, clinicID, psychologistID, patientID uuid.UUID, scheduledAt time.Time) (*TimezoneCheck, error)
	SessionLoad(ctx context.Context, clinicID, psychologistID uuid.UUID, from, to time.Time) (*LoadReport, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conflictService struct {
	db  *repo.Client
	cfg config.SchedulingConfig
}

func New(db *repo.Client, cfg config.SchedulingConfig) Service {
	return &conflictService{db: db, cfg: cfg}
}

// activeStatuses are statuses that occupy the psychologist's calendar.
var activeStatuses = []entsession.Status{
	entsession.StatusScheduled,
	entsession.StatusConfirmed,
	entsession.StatusInProgress,
	entsession.StatusCompleted,
}

func (s *conflictService) CheckConflicts(ctx context.Context, req CheckRequest) (*Report, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	start := req.ScheduledAt.UTC()
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	conflicts, err := s.overlappingSessions(ctx, entsession.PsychologistID(req.PsychologistID), req, start, end)
	if err != nil {
		return nil, err
	}

	if req.PatientID != nil {
		patientConflicts, err := s.overlappingSessions(ctx, entsession.PatientID(*req.PatientID), req, start, end)
		if err != nil {
			return nil, err
		}
		for _, pc := range patientConflicts {
			if !containsSession(conflicts, pc.ID) {
				conflicts = append(conflicts, pc)
			}
		}
	}

	return &Report{HasConflict: len(conflicts) > 0, Conflicts: conflicts}, nil
}

// overlappingSessions loads active sessions near the proposed interval and
// filters to exact half-open overlap in Go. The window query is bounded by
// the configured maximum session duration because the end time is derived,
// not stored.
func (s *conflictService) overlappingSessions(ctx context.Context, owner predicate.Session, req CheckRequest, start, end time.Time) ([]*repo.Session, error) {
	maxDur := time.Duration(s.cfg.MaxDurationMinutes) * time.Minute
	if maxDur <= 0 {
		maxDur = 4 * time.Hour
	}

	q := s.db.Session.Query().
		Where(
			owner,
			entsession.ClinicID(req.ClinicID),
			entsession.StatusIn(activeStatuses...),
			entsession.ScheduledAtGT(start.Add(-maxDur)),
			entsession.ScheduledAtLT(end),
		)
	if req.ExcludeSessionID != nil {
		q = q.Where(entsession.IDNEQ(*req.ExcludeSessionID))
	}

	candidates, err := q.Order(entsession.ByScheduledAt()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query overlap candidates: %w", err)
	}

	return filterOverlapping(candidates, req.ExcludeSessionID, start, end), nil
}

// filterOverlapping keeps candidates whose derived interval truly overlaps
// [start, end). The session being rescheduled is skipped so it never
// conflicts with itself.
func filterOverlapping(candidates []*repo.Session, excludeID *uuid.UUID, start, end time.Time) []*repo.Session {
	var out []*repo.Session
	for _, c := range candidates {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		cEnd := c.ScheduledAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
		if overlaps(start, end, c.ScheduledAt, cEnd) {
			out = append(out, c)
		}
	}
	return out
}

func (s *conflictService) ValidateScheduling(ctx context.Context, req CheckRequest) (*ValidationResult, error) {
	res := &ValidationResult{Valid: true}

	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	if req.DurationMinutes < s.cfg.MinDurationMinutes || req.DurationMinutes > s.cfg.MaxDurationMinutes {
		res.Valid = false
		res.Errors = append(res.Errors, fmt.Sprintf(
			"duration must be between %d and %d minutes", s.cfg.MinDurationMinutes, s.cfg.MaxDurationMinutes))
	}

	if req.ScheduledAt.Before(time.Now()) {
		res.Valid = false
		res.Errors = append(res.Errors, "scheduled time is in the past")
	}

	profile, err := s.profileByMember(ctx, req.PsychologistID)
	if err != nil {
		return nil, err
	}

	start := req.ScheduledAt.In(loc)
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	window, working := workingWindow(profile.WorkingHours, start, loc, s.cfg.DefaultWorkStartHour, s.cfg.DefaultWorkEndHour)
	switch {
	case !working:
		res.Valid = false
		res.Errors = append(res.Errors, fmt.Sprintf("%s is not a working day", weekdayKey(start.Weekday())))
	case start.Before(window.Start) || end.After(window.End):
		res.Valid = false
		res.Errors = append(res.Errors, fmt.Sprintf(
			"session must fall within working hours %s to %s",
			window.Start.Format("15:04"), window.End.Format("15:04")))
	}

	if !profile.IsAccepting {
		res.Warnings = append(res.Warnings, "psychologist is not currently accepting new sessions")
	}

	report, err := s.CheckConflicts(ctx, req)
	if err != nil {
		return nil, err
	}
	res.Report = report
	if report.HasConflict {
		res.Valid = false
		res.Errors = append(res.Errors, fmt.Sprintf("slot conflicts with %d existing session(s)", len(report.Conflicts)))
	}

	return res, nil
}

func (s *conflictService) Availability(ctx context.Context, clinicID, psychologistID uuid.UUID, day time.Time, timezone string) ([]Slot, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	profile, err := s.profileByMember(ctx, psychologistID)
	if err != nil {
		return nil, err
	}

	window, working := workingWindow(profile.WorkingHours, day, loc, s.cfg.DefaultWorkStartHour, s.cfg.DefaultWorkEndHour)
	if !working {
		return nil, nil
	}

	busy, err := s.busyIntervals(ctx, clinicID, psychologistID, window.Start.UTC(), window.End.UTC())
	if err != nil {
		return nil, err
	}

	granularity := time.Duration(profile.SlotGranularityMin) * time.Minute
	if granularity <= 0 {
		granularity = time.Duration(s.cfg.DefaultGranularityMin) * time.Minute
	}
	duration := profileSlotDuration(profile, granularity)

	return chunkSlots(subtractBusy(window, busy), duration, granularity), nil
}

// profileSlotDuration picks the slot length offered when computing
// availability. session_duration_min is nil when the psychologist relies on
// the clinic default; in that case one granularity step is offered.
func profileSlotDuration(profile *repo.PsychologistProfile, granularity time.Duration) time.Duration {
	if profile.SessionDurationMin != nil && *profile.SessionDurationMin > 0 {
		return time.Duration(*profile.SessionDurationMin) * time.Minute
	}
	return granularity
}

func (s *conflictService) SuggestAlternatives(ctx context.Context, req CheckRequest, numSuggestions int) ([]Slot, error) {
	if numSuggestions < 1 {
		numSuggestions = 3
	}
	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	now := time.Now()

	var suggestions []Slot
	collect := func(free []Slot, keep func(Slot) bool) {
		for _, slot := range free {
			if slot.Duration() < duration || slot.Start.Before(now) {
				continue
			}
			if keep != nil && !keep(slot) {
				continue
			}
			suggestions = append(suggestions, Slot{Start: slot.Start, End: slot.Start.Add(duration)})
			if len(suggestions) >= numSuggestions {
				return
			}
		}
	}

	// Probe forward from the requested time first, day by day.
	day := req.ScheduledAt.In(loc)
	for offset := 0; offset < 14 && len(suggestions) < numSuggestions; offset++ {
		free, err := s.Availability(ctx, req.ClinicID, req.PsychologistID, day.AddDate(0, 0, offset), req.Timezone)
		if err != nil {
			return nil, err
		}
		keep := func(Slot) bool { return true }
		if offset == 0 {
			keep = func(slot Slot) bool { return !slot.Start.Before(req.ScheduledAt) }
		}
		collect(free, keep)
	}

	// Then walk backward toward today, nearest day first, picking up
	// earlier-in-the-day openings the forward pass skipped. Days already
	// behind the calendar are never probed.
	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	for offset := 0; offset < 14 && len(suggestions) < numSuggestions; offset++ {
		probe := day.AddDate(0, 0, -offset)
		if probe.Before(today) {
			break
		}
		free, err := s.Availability(ctx, req.ClinicID, req.PsychologistID, probe, req.Timezone)
		if err != nil {
			return nil, err
		}
		keep := func(slot Slot) bool { return slot.Start.Before(req.ScheduledAt) }
		if offset > 0 {
			keep = nil
		}
		collect(free, keep)
	}
	return suggestions, nil
}

func (s *conflictService) CheckTimezoneMismatch(ctx context.Context, clinicID, psychologistID, patientID uuid.UUID, scheduledAt time.Time) (*TimezoneCheck, error) {
	profile, err := s.profileByMember(ctx, psychologistID)
	if err != nil {
		return nil, err
	}

	patient, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	psyLoc, err := time.LoadLocation(profile.Timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	patLoc, err := time.LoadLocation(patient.Timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	psyLocal := scheduledAt.In(psyLoc)
	patLocal := scheduledAt.In(patLoc)

	// Informational only: flag sessions outside 07:00–22:00 local time for
	// either party.
	mismatch := outsideWakingHours(psyLocal) || outsideWakingHours(patLocal)

	return &TimezoneCheck{
		HasMismatch:           mismatch,
		PsychologistTimezone:  profile.Timezone,
		PatientTimezone:       patient.Timezone,
		PsychologistLocalTime: psyLocal.Format(time.RFC3339),
		PatientLocalTime:      patLocal.Format(time.RFC3339),
	}, nil
}

func (s *conflictService) SessionLoad(ctx context.Context, clinicID, psychologistID uuid.UUID, from, to time.Time) (*LoadReport, error) {
	if !to.After(from) {
		return nil, ErrInvalidTimeRange
	}

	sessions, err := s.db.Session.Query().
		Where(
			entsession.ClinicID(clinicID),
			entsession.PsychologistID(psychologistID),
			entsession.StatusIn(activeStatuses...),
			entsession.ScheduledAtGTE(from),
			entsession.ScheduledAtLT(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session load: %w", err)
	}

	report := &LoadReport{SessionsPerDay: map[string]int{}}
	var totalMinutes int
	for _, sess := range sessions {
		report.SessionsPerDay[sess.ScheduledAt.Format("2006-01-02")]++
		totalMinutes += sess.DurationMinutes
	}
	report.TotalSessions = len(sessions)
	report.TotalHours = float64(totalMinutes) / 60.0
	return report, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *conflictService) validateRequest(req CheckRequest) error {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return ErrInvalidTimezone
	}
	if req.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (s *conflictService) profileByMember(ctx context.Context, memberID uuid.UUID) (*repo.PsychologistProfile, error) {
	profile, err := s.db.PsychologistProfile.Query().
		Where(entprofile.ClinicMemberID(memberID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPsychologistNotFound
		}
		return nil, fmt.Errorf("get psychologist profile: %w", err)
	}
	return profile, nil
}

// busyIntervals collects session and unavailability intervals for one
// psychologist inside [from, to).
func (s *conflictService) busyIntervals(ctx context.Context, clinicID, psychologistID uuid.UUID, from, to time.Time) ([]Slot, error) {
	maxDur := time.Duration(s.cfg.MaxDurationMinutes) * time.Minute
	if maxDur <= 0 {
		maxDur = 4 * time.Hour
	}

	sessions, err := s.db.Session.Query().
		Where(
			entsession.ClinicID(clinicID),
			entsession.PsychologistID(psychologistID),
			entsession.StatusIn(activeStatuses...),
			entsession.ScheduledAtGT(from.Add(-maxDur)),
			entsession.ScheduledAtLT(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query busy sessions: %w", err)
	}

	busy := make([]Slot, 0, len(sessions))
	for _, sess := range sessions {
		busy = append(busy, Slot{
			Start: sess.ScheduledAt,
			End:   sess.ScheduledAt.Add(time.Duration(sess.DurationMinutes) * time.Minute),
		})
	}

	blocks, err := s.db.Unavailability.Query().
		Where(
			entunavail.PsychologistID(psychologistID),
			entunavail.StartTimeLT(to),
			entunavail.EndTimeGT(from),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unavailability: %w", err)
	}
	for _, b := range blocks {
		busy = append(busy, Slot{Start: b.StartTime, End: b.EndTime})
	}

	return busy, nil
}

func containsSession(list []*repo.Session, id uuid.UUID) bool {
	for _, s := range list {
		if s.ID == id {
			return true
		}
	}
	return false
}

func outsideWakingHours(t time.Time) bool {
	h := t.Hour()
	return h < 7 || h >= 22
}
