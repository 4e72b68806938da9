package gamification

import (
	"testing"
	"time"
)

func testReward() Reward {
	return Reward{
		ActivityType:    "diary_entry_created",
		Points:          10,
		XP:              15,
		MinLevel:        1,
		MaxDailyCount:   1,
		CooldownMinutes: 60,
		Enabled:         true,
	}
}

func TestAwardGuard(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Reward)
		level      int
		dailyCount int
		inCooldown bool
		wantReason string
	}{
		{
			name:  "all clear",
			level: 1,
		},
		{
			name:       "disabled reward",
			mutate:     func(r *Reward) { r.Enabled = false },
			level:      5,
			wantReason: ReasonDisabled,
		},
		{
			name:       "below minimum level",
			mutate:     func(r *Reward) { r.MinLevel = 3 },
			level:      2,
			wantReason: ReasonBelowMinLevel,
		},
		{
			name:       "daily limit reached",
			level:      1,
			dailyCount: 1,
			wantReason: ReasonDailyLimit,
		},
		{
			name:       "second award inside cooldown window",
			level:      1,
			inCooldown: true,
			wantReason: ReasonInCooldown,
		},
		{
			name:       "cooldown ignored when not configured",
			mutate:     func(r *Reward) { r.CooldownMinutes = 0 },
			level:      1,
			inCooldown: true,
		},
		{
			name:       "daily limit ignored when not configured",
			mutate:     func(r *Reward) { r.MaxDailyCount = 0 },
			level:      1,
			dailyCount: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reward := testReward()
			if tt.mutate != nil {
				tt.mutate(&reward)
			}
			got := awardGuard(reward, tt.level, tt.dailyCount, tt.inCooldown)
			if tt.wantReason == "" {
				if got != nil {
					t.Fatalf("awardGuard() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("awardGuard() = nil, want reason %q", tt.wantReason)
			}
			if got.Success {
				t.Errorf("awardGuard() Success = true, want false")
			}
			if got.Reason != tt.wantReason {
				t.Errorf("awardGuard() Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestSelfReportable(t *testing.T) {
	tests := []struct {
		activity string
		want     bool
	}{
		{"mood_logged", true},
		{"meditation_completed", true},
		{"diary_entry_created", false},
		{"session_attended", false},
		{"weekly_streak", false},
		{"unknown_activity", false},
	}

	for _, tt := range tests {
		t.Run(tt.activity, func(t *testing.T) {
			if got := SelfReportable(tt.activity); got != tt.want {
				t.Errorf("SelfReportable(%q) = %v, want %v", tt.activity, got, tt.want)
			}
		})
	}
}

func TestRollCounter(t *testing.T) {
	week := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // a Monday
	prevWeek := week.AddDate(0, 0, -7)

	tests := []struct {
		name        string
		current     int
		anchor      *time.Time
		periodStart time.Time
		wantCount   int
		wantAnchor  time.Time
	}{
		{
			name:        "nil anchor resets",
			current:     120,
			anchor:      nil,
			periodStart: week,
			wantCount:   0,
			wantAnchor:  week,
		},
		{
			name:        "stale anchor resets",
			current:     120,
			anchor:      &prevWeek,
			periodStart: week,
			wantCount:   0,
			wantAnchor:  week,
		},
		{
			name:        "current anchor keeps counting",
			current:     120,
			anchor:      &week,
			periodStart: week,
			wantCount:   120,
			wantAnchor:  week,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCount, gotAnchor := rollCounter(tt.current, tt.anchor, tt.periodStart)
			if gotCount != tt.wantCount {
				t.Errorf("rollCounter() count = %d, want %d", gotCount, tt.wantCount)
			}
			if !gotAnchor.Equal(tt.wantAnchor) {
				t.Errorf("rollCounter() anchor = %v, want %v", gotAnchor, tt.wantAnchor)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to monday",
			in:   time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to preceding monday",
			in:   time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday is its own start",
			in:   time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
