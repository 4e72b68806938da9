package diary

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entlink "github.com/amparasaude/ampara_backend/internal/repo/carelink"
	entdiary "github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateEntryRequest struct {
	EntryDate time.Time
	Mood      int
	Energy    int
	Content   *string
	Emotions  []string
}

type UpdateEntryRequest struct {
	Mood     *int
	Energy   *int
	Content  *string
	Emotions []string
}

// MoodPoint is one day in a mood trend.
type MoodPoint struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
}

type MoodTrend struct {
	Points    []MoodPoint `json:"points"`
	AvgMood   float64     `json:"avg_mood"`
	AvgEnergy float64     `json:"avg_energy"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateEntry(ctx context.Context, patientID uuid.UUID, req CreateEntryRequest) (*repo.DiaryEntry, error)
	UpdateEntry(ctx context.Context, patientID, entryID uuid.UUID, req UpdateEntryRequest) (*repo.DiaryEntry, error)
	DeleteEntry(ctx context.Context, patientID, entryID uuid.UUID) error
	ListEntries(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]*repo.DiaryEntry, error)
	ExportText(ctx context.Context, patientID uuid.UUID) (string, error)

	// Psychologist views, gated by care-link consent.
	ListEntriesForPsychologist(ctx context.Context, psychologistID, patientID uuid.UUID, from, to time.Time) ([]*repo.DiaryEntry, error)
	MoodTrendForPsychologist(ctx context.Context, psychologistID, patientID uuid.UUID, days int) (*MoodTrend, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type diaryService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &diaryService{db: db, nc: nc}
}

func (s *diaryService) CreateEntry(ctx context.Context, patientID uuid.UUID, req CreateEntryRequest) (*repo.DiaryEntry, error) {
	if req.Mood < 1 || req.Mood > 10 {
		return nil, ErrInvalidMood
	}
	if req.Energy < 1 || req.Energy > 10 {
		return nil, ErrInvalidEnergy
	}

	day := dateOnly(req.EntryDate)
	exists, err := s.db.DiaryEntry.Query().
		Where(entdiary.PatientID(patientID), entdiary.EntryDate(day)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check entry: %w", err)
	}
	if exists {
		return nil, ErrEntryAlreadyExists
	}

	c := s.db.DiaryEntry.Create().
		SetPatientID(patientID).
		SetEntryDate(day).
		SetMood(req.Mood).
		SetEnergy(req.Energy)
	if req.Content != nil {
		c = c.SetNillableContent(req.Content)
	}
	if req.Emotions != nil {
		c = c.SetEmotions(req.Emotions)
	}

	entry, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	// Best-effort: gamification and reminders ride on this event; a lost
	// event never fails the entry itself.
	if s.nc != nil {
		subject := fmt.Sprintf("ampara.diary.created.%s", patientID)
		_ = s.nc.Publish(subject, []byte(entry.ID.String()))
	}

	return entry, nil
}

func (s *diaryService) UpdateEntry(ctx context.Context, patientID, entryID uuid.UUID, req UpdateEntryRequest) (*repo.DiaryEntry, error) {
	entry, err := s.getEntry(ctx, patientID, entryID)
	if err != nil {
		return nil, err
	}

	u := s.db.DiaryEntry.UpdateOne(entry)
	if req.Mood != nil {
		if *req.Mood < 1 || *req.Mood > 10 {
			return nil, ErrInvalidMood
		}
		u = u.SetMood(*req.Mood)
	}
	if req.Energy != nil {
		if *req.Energy < 1 || *req.Energy > 10 {
			return nil, ErrInvalidEnergy
		}
		u = u.SetEnergy(*req.Energy)
	}
	if req.Content != nil {
		u = u.SetNillableContent(req.Content)
	}
	if req.Emotions != nil {
		u = u.SetEmotions(req.Emotions)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return updated, nil
}

func (s *diaryService) DeleteEntry(ctx context.Context, patientID, entryID uuid.UUID) error {
	entry, err := s.getEntry(ctx, patientID, entryID)
	if err != nil {
		return err
	}
	return s.db.DiaryEntry.DeleteOne(entry).Exec(ctx)
}

func (s *diaryService) ListEntries(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]*repo.DiaryEntry, error) {
	entries, err := s.db.DiaryEntry.Query().
		Where(
			entdiary.PatientID(patientID),
			entdiary.EntryDateGTE(dateOnly(from)),
			entdiary.EntryDateLTE(dateOnly(to)),
		).
		Order(entdiary.ByEntryDate(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *diaryService) ListEntriesForPsychologist(ctx context.Context, psychologistID, patientID uuid.UUID, from, to time.Time) ([]*repo.DiaryEntry, error) {
	if err := s.requireConsent(ctx, psychologistID, patientID, entlink.FieldShareDiary); err != nil {
		return nil, err
	}
	return s.ListEntries(ctx, patientID, from, to)
}

func (s *diaryService) MoodTrendForPsychologist(ctx context.Context, psychologistID, patientID uuid.UUID, days int) (*MoodTrend, error) {
	if err := s.requireConsent(ctx, psychologistID, patientID, entlink.FieldShareMood); err != nil {
		return nil, err
	}
	if days < 1 || days > 365 {
		days = 30
	}

	to := time.Now().UTC()
	entries, err := s.ListEntries(ctx, patientID, to.AddDate(0, 0, -days), to)
	if err != nil {
		return nil, err
	}

	trend := &MoodTrend{Points: make([]MoodPoint, 0, len(entries))}
	var moodSum, energySum int
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		trend.Points = append(trend.Points, MoodPoint{
			Date:   e.EntryDate.Format("2006-01-02"),
			Mood:   e.Mood,
			Energy: e.Energy,
		})
		moodSum += e.Mood
		energySum += e.Energy
	}
	if n := len(entries); n > 0 {
		trend.AvgMood = float64(moodSum) / float64(n)
		trend.AvgEnergy = float64(energySum) / float64(n)
	}
	return trend, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *diaryService) getEntry(ctx context.Context, patientID, entryID uuid.UUID) (*repo.DiaryEntry, error) {
	entry, err := s.db.DiaryEntry.Query().
		Where(entdiary.ID(entryID), entdiary.PatientID(patientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// dateOnly truncates a timestamp to its UTC calendar day. Entry dates are
// stored day-granular so the one-entry-per-day rule is timezone-stable.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// requireConsent verifies an active care link with the named consent flag
// on. consentField is one of the generated care-link field names.
func (s *diaryService) requireConsent(ctx context.Context, psychologistID, patientID uuid.UUID, consentField string) error {
	q := s.db.CareLink.Query().
		Where(
			entlink.PsychologistID(psychologistID),
			entlink.PatientID(patientID),
			entlink.StatusEQ(entlink.StatusActive),
		)
	switch consentField {
	case entlink.FieldShareDiary:
		q = q.Where(entlink.ShareDiary(true))
	case entlink.FieldShareMood:
		q = q.Where(entlink.ShareMood(true))
	}

	ok, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("check consent: %w", err)
	}
	if !ok {
		return ErrConsentRequired
	}
	return nil
}
