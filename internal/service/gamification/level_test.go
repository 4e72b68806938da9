package gamification

import (
	"testing"
	"time"
)

func TestXPRequiredFor(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 282},
		{3, 519},
		{4, 800},
		{5, 1118},
	}

	for _, tt := range tests {
		if got := xpRequiredFor(tt.level); got != tt.want {
			t.Errorf("xpRequiredFor(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		name    string
		totalXP int
		want    int
	}{
		{"zero xp starts at level one", 0, 1},
		{"negative xp stays at level one", -50, 1},
		{"just below level two threshold", 281, 1},
		{"exactly at level two threshold", 282, 2},
		{"just below level three threshold", 518, 2},
		{"exactly at level three threshold", 519, 3},
		{"level five", 1118, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFromXP(tt.totalXP); got != tt.want {
				t.Errorf("LevelFromXP(%d) = %d, want %d", tt.totalXP, got, tt.want)
			}
		})
	}
}

func TestLevelFromXPMonotonic(t *testing.T) {
	prev := 1
	for xp := 0; xp <= 5000; xp += 10 {
		lvl := LevelFromXP(xp)
		if lvl < prev {
			t.Fatalf("LevelFromXP(%d) = %d dropped below previous level %d", xp, lvl, prev)
		}
		prev = lvl
	}
}

func TestFallbackRewardsWellFormed(t *testing.T) {
	for key, r := range fallbackRewards {
		if r.ActivityType != key {
			t.Errorf("fallback reward %q has mismatched ActivityType %q", key, r.ActivityType)
		}
		if !r.Enabled {
			t.Errorf("fallback reward %q is disabled", key)
		}
		if r.Points <= 0 || r.XP <= 0 {
			t.Errorf("fallback reward %q has non-positive points/xp: %d/%d", key, r.Points, r.XP)
		}
		if r.MinLevel < 1 {
			t.Errorf("fallback reward %q has MinLevel %d, want >= 1", key, r.MinLevel)
		}
	}
}

func TestRewardCache(t *testing.T) {
	c := newRewardCache(time.Minute)

	if _, ok := c.get(); ok {
		t.Fatal("get() on empty cache ok = true, want false")
	}

	c.set(map[string]Reward{"mood_logged": {ActivityType: "mood_logged", Points: 5}})
	rewards, ok := c.get()
	if !ok {
		t.Fatal("get() after set ok = false, want true")
	}
	if _, found := rewards["mood_logged"]; !found {
		t.Error("cached table missing stored reward")
	}

	c.invalidate()
	if _, ok := c.get(); ok {
		t.Error("get() after invalidate ok = true, want false")
	}
}

func TestRewardCacheExpiry(t *testing.T) {
	c := newRewardCache(time.Millisecond)
	c.set(map[string]Reward{"mood_logged": {}})

	time.Sleep(5 * time.Millisecond)

	if _, ok := c.get(); ok {
		t.Error("get() after TTL ok = true, want false")
	}
}
