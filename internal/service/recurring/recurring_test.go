package recurring

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/repo"
)

func validWeeklyConfig() Config {
	return Config{
		ClinicID:        uuid.New(),
		PsychologistID:  uuid.New(),
		Frequency:       FrequencyWeekly,
		DaysOfWeek:      []time.Weekday{time.Monday, time.Thursday},
		StartsAt:        time.Now().Add(48 * time.Hour),
		DurationMinutes: 50,
		Timezone:        "America/Sao_Paulo",
		Occurrences:     intPtr(10),
		Type:            "therapy",
	}
}

func TestValidateConfig(t *testing.T) {
	svc := New(nil, nil, config.SchedulingConfig{})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string // substring of one reported error; empty means valid
	}{
		{
			name:   "valid weekly config",
			mutate: func(c *Config) {},
		},
		{
			name: "valid end date config",
			mutate: func(c *Config) {
				c.Occurrences = nil
				end := c.StartsAt.AddDate(0, 2, 0)
				c.EndDate = &end
			},
		},
		{
			name:    "missing psychologist",
			mutate:  func(c *Config) { c.PsychologistID = uuid.Nil },
			wantErr: "psychologist_id is required",
		},
		{
			name:    "unknown frequency",
			mutate:  func(c *Config) { c.Frequency = "fortnightly" },
			wantErr: "frequency must be one of",
		},
		{
			name:    "zero starts_at",
			mutate:  func(c *Config) { c.StartsAt = time.Time{} },
			wantErr: "starts_at is required",
		},
		{
			name:    "starts_at in the past",
			mutate:  func(c *Config) { c.StartsAt = time.Now().Add(-time.Hour) },
			wantErr: "starts_at is in the past",
		},
		{
			name:    "non-positive duration",
			mutate:  func(c *Config) { c.DurationMinutes = 0 },
			wantErr: "duration_minutes must be positive",
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *Config) { c.Timezone = "America/Nowhere" },
			wantErr: "unknown timezone",
		},
		{
			name: "neither occurrences nor end_date",
			mutate: func(c *Config) {
				c.Occurrences = nil
				c.EndDate = nil
			},
			wantErr: "either occurrences or end_date",
		},
		{
			name: "both occurrences and end_date",
			mutate: func(c *Config) {
				end := c.StartsAt.AddDate(0, 1, 0)
				c.EndDate = &end
			},
			wantErr: "mutually exclusive",
		},
		{
			name:    "occurrences below one",
			mutate:  func(c *Config) { c.Occurrences = intPtr(0) },
			wantErr: "occurrences must be at least 1",
		},
		{
			name: "end_date before starts_at",
			mutate: func(c *Config) {
				c.Occurrences = nil
				end := c.StartsAt.Add(-24 * time.Hour)
				c.EndDate = &end
			},
			wantErr: "end_date is before starts_at",
		},
		{
			name: "days_of_week on daily pattern",
			mutate: func(c *Config) {
				c.Frequency = FrequencyDaily
			},
			wantErr: "days_of_week is only valid",
		},
		{
			name:    "weekday out of range",
			mutate:  func(c *Config) { c.DaysOfWeek = []time.Weekday{time.Weekday(9)} },
			wantErr: "invalid weekday",
		},
		{
			name:    "unknown session type",
			mutate:  func(c *Config) { c.Type = "workshop" },
			wantErr: "type must be therapy or consultation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validWeeklyConfig()
			tt.mutate(&cfg)

			res := svc.ValidateConfig(cfg)

			if tt.wantErr == "" {
				if !res.Valid {
					t.Fatalf("ValidateConfig() invalid, errors = %v", res.Errors)
				}
				return
			}
			if res.Valid {
				t.Fatal("ValidateConfig() valid, want invalid")
			}
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("errors %v missing %q", res.Errors, tt.wantErr)
			}
		})
	}
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly} {
		if !f.Valid() {
			t.Errorf("Frequency(%q).Valid() = false, want true", f)
		}
	}
	if Frequency("yearly").Valid() {
		t.Error(`Frequency("yearly").Valid() = true, want false`)
	}
}

func TestFutureCohortIDs(t *testing.T) {
	// A series that already ran entirely: the scope must still be computed
	// from the anchor occurrence, never from the wall clock.
	weekAgo := func(weeks int) time.Time {
		return time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC).AddDate(0, 0, 7*weeks)
	}
	series := make([]*repo.Session, 5)
	for i := range series {
		series[i] = &repo.Session{ID: uuid.New(), ScheduledAt: weekAgo(i)}
	}
	anchor := series[2]

	got := futureCohortIDs(series, anchor)

	want := []uuid.UUID{series[2].ID, series[3].ID, series[4].ID}
	if len(got) != len(want) {
		t.Fatalf("futureCohortIDs() returned %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("futureCohortIDs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if ids := futureCohortIDs(series, series[0]); len(ids) != len(series) {
		t.Errorf("anchor at first occurrence covers %d ids, want %d", len(ids), len(series))
	}
	if ids := futureCohortIDs(series, series[4]); len(ids) != 1 {
		t.Errorf("anchor at last occurrence covers %d ids, want 1", len(ids))
	}
}
