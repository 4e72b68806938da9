package conflict

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
)

func TestFilterOverlapping(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	sessionAt := func(start time.Time, minutes int) *repo.Session {
		return &repo.Session{ID: uuid.New(), ScheduledAt: start, DurationMinutes: minutes}
	}

	overlapping := sessionAt(base.Add(30*time.Minute), 50)
	touching := sessionAt(base.Add(60*time.Minute), 50)

	tests := []struct {
		name       string
		candidates []*repo.Session
		excludeID  *uuid.UUID
		want       int
	}{
		{
			name:       "overlap detected",
			candidates: []*repo.Session{overlapping},
			want:       1,
		},
		{
			name:       "touching edge is not a conflict",
			candidates: []*repo.Session{touching},
			want:       0,
		},
		{
			name:       "rescheduled session never conflicts with itself",
			candidates: []*repo.Session{overlapping},
			excludeID:  &overlapping.ID,
			want:       0,
		},
		{
			name:       "exclusion leaves other conflicts standing",
			candidates: []*repo.Session{overlapping, sessionAt(base.Add(15*time.Minute), 50)},
			excludeID:  &overlapping.ID,
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterOverlapping(tt.candidates, tt.excludeID, base, base.Add(60*time.Minute))
			if len(got) != tt.want {
				t.Errorf("filterOverlapping() returned %d sessions, want %d", len(got), tt.want)
			}
		})
	}
}

func TestProfileSlotDuration(t *testing.T) {
	granularity := 30 * time.Minute
	fifty := 50
	zero := 0

	tests := []struct {
		name    string
		profile *repo.PsychologistProfile
		want    time.Duration
	}{
		{
			name:    "explicit profile duration",
			profile: &repo.PsychologistProfile{SessionDurationMin: &fifty},
			want:    50 * time.Minute,
		},
		{
			name:    "nil duration falls back to granularity",
			profile: &repo.PsychologistProfile{},
			want:    granularity,
		},
		{
			name:    "zero duration falls back to granularity",
			profile: &repo.PsychologistProfile{SessionDurationMin: &zero},
			want:    granularity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profileSlotDuration(tt.profile, granularity); got != tt.want {
				t.Errorf("profileSlotDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
