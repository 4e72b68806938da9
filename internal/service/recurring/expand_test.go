package recurring

import (
	"testing"
	"time"
)

// 2026-01-05 is a Monday.
var anchorMonday = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

func intPtr(n int) *int              { return &n }
func timePtr(t time.Time) *time.Time { return &t }

func TestExpandDatesDaily(t *testing.T) {
	cfg := Config{
		Frequency:   FrequencyDaily,
		StartsAt:    anchorMonday,
		Occurrences: intPtr(4),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		anchorMonday,
		anchorMonday.AddDate(0, 0, 1),
		anchorMonday.AddDate(0, 0, 2),
		anchorMonday.AddDate(0, 0, 3),
	}
	assertDates(t, got, want)
}

func TestExpandDatesDailyInterval(t *testing.T) {
	cfg := Config{
		Frequency:   FrequencyDaily,
		Interval:    3,
		StartsAt:    anchorMonday,
		Occurrences: intPtr(3),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		anchorMonday,
		anchorMonday.AddDate(0, 0, 3),
		anchorMonday.AddDate(0, 0, 6),
	}
	assertDates(t, got, want)
}

func TestExpandDatesWeeklyDaysOfWeek(t *testing.T) {
	cfg := Config{
		Frequency:   FrequencyWeekly,
		DaysOfWeek:  []time.Weekday{time.Monday, time.Wednesday},
		StartsAt:    anchorMonday,
		Occurrences: intPtr(5),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		anchorMonday,                  // Mon Jan 5
		anchorMonday.AddDate(0, 0, 2), // Wed Jan 7
		anchorMonday.AddDate(0, 0, 7), // Mon Jan 12
		anchorMonday.AddDate(0, 0, 9), // Wed Jan 14
		anchorMonday.AddDate(0, 0, 14),
	}
	assertDates(t, got, want)
}

func TestExpandDatesWeeklyAnchorMidWeek(t *testing.T) {
	// Anchor on Wednesday: the anchor week's Monday has already passed and
	// must not be generated.
	wednesday := anchorMonday.AddDate(0, 0, 2)
	cfg := Config{
		Frequency:   FrequencyWeekly,
		DaysOfWeek:  []time.Weekday{time.Monday, time.Wednesday},
		StartsAt:    wednesday,
		Occurrences: intPtr(3),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		wednesday,                  // Wed Jan 7
		wednesday.AddDate(0, 0, 5), // Mon Jan 12
		wednesday.AddDate(0, 0, 7), // Wed Jan 14
	}
	assertDates(t, got, want)
}

func TestExpandDatesBiweekly(t *testing.T) {
	cfg := Config{
		Frequency:   FrequencyBiweekly,
		StartsAt:    anchorMonday,
		Occurrences: intPtr(3),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		anchorMonday,
		anchorMonday.AddDate(0, 0, 14),
		anchorMonday.AddDate(0, 0, 28),
	}
	assertDates(t, got, want)
}

func TestExpandDatesMonthlyClampsDayOfMonth(t *testing.T) {
	jan31 := time.Date(2026, 1, 31, 14, 30, 0, 0, time.UTC)
	cfg := Config{
		Frequency:   FrequencyMonthly,
		StartsAt:    jan31,
		Occurrences: intPtr(4),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		jan31,
		time.Date(2026, 2, 28, 14, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 14, 30, 0, 0, time.UTC),
		time.Date(2026, 4, 30, 14, 30, 0, 0, time.UTC),
	}
	assertDates(t, got, want)
}

func TestExpandDatesSkipAdvancesPattern(t *testing.T) {
	cfg := Config{
		Frequency:   FrequencyDaily,
		StartsAt:    anchorMonday,
		Occurrences: intPtr(3),
		SkipDates:   []time.Time{anchorMonday.AddDate(0, 0, 1)},
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	// The skipped day is omitted but the series still reaches the requested
	// occurrence count by stepping one day further.
	want := []time.Time{
		anchorMonday,
		anchorMonday.AddDate(0, 0, 2),
		anchorMonday.AddDate(0, 0, 3),
	}
	assertDates(t, got, want)
}

func TestExpandDatesEndDateInclusive(t *testing.T) {
	cfg := Config{
		Frequency: FrequencyDaily,
		StartsAt:  anchorMonday,
		// Midnight of Jan 7 still admits the 10:00 occurrence on Jan 7.
		EndDate: timePtr(time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)),
	}

	got := expandDates(cfg, time.UTC, 0, 0)

	want := []time.Time{
		anchorMonday,
		anchorMonday.AddDate(0, 0, 1),
		anchorMonday.AddDate(0, 0, 2),
	}
	assertDates(t, got, want)
}

func TestExpandDatesMaxOccurrencesCap(t *testing.T) {
	cfg := Config{
		Frequency:   FrequencyDaily,
		StartsAt:    anchorMonday,
		Occurrences: intPtr(50),
	}

	got := expandDates(cfg, time.UTC, 3, 0)

	if len(got) != 3 {
		t.Fatalf("expandDates() returned %d dates, want 3", len(got))
	}
}

func TestExpandDatesHorizonCap(t *testing.T) {
	cfg := Config{
		Frequency: FrequencyDaily,
		StartsAt:  anchorMonday,
		EndDate:   timePtr(anchorMonday.AddDate(1, 0, 0)),
	}

	got := expandDates(cfg, time.UTC, 100, 5)

	// Day 0 through day 5 inclusive.
	if len(got) != 6 {
		t.Fatalf("expandDates() returned %d dates, want 6", len(got))
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		months int
		want   time.Time
	}{
		{
			name:   "jan 31 plus one month clamps to feb 28",
			anchor: time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "leap year clamps to feb 29",
			anchor: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "mid month day is kept",
			anchor: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:   "year rollover",
			anchor: time.Date(2026, 11, 30, 9, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2027, 2, 28, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addMonthsClamped(tt.anchor, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("addMonthsClamped() = %v, want %v", got, tt.want)
			}
		})
	}
}

func assertDates(t *testing.T, got, want []time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d dates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("date[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
