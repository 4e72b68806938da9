package conflict

import (
	"testing"
	"time"
)

func hm(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		aStart, aEnd   time.Time
		bStart, bEnd   time.Time
		want           bool
	}{
		{"disjoint before", hm(9, 0), hm(10, 0), hm(11, 0), hm(12, 0), false},
		{"touching edges do not overlap", hm(9, 0), hm(10, 0), hm(10, 0), hm(11, 0), false},
		{"partial overlap", hm(9, 0), hm(10, 30), hm(10, 0), hm(11, 0), true},
		{"contained", hm(9, 0), hm(12, 0), hm(10, 0), hm(11, 0), true},
		{"identical", hm(9, 0), hm(10, 0), hm(9, 0), hm(10, 0), true},
		{"one minute overlap", hm(9, 0), hm(10, 1), hm(10, 0), hm(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtractBusy(t *testing.T) {
	window := Slot{Start: hm(8, 0), End: hm(18, 0)}

	tests := []struct {
		name string
		busy []Slot
		want []Slot
	}{
		{
			name: "no busy intervals",
			busy: nil,
			want: []Slot{window},
		},
		{
			name: "single gap in the middle",
			busy: []Slot{{Start: hm(12, 0), End: hm(13, 0)}},
			want: []Slot{
				{Start: hm(8, 0), End: hm(12, 0)},
				{Start: hm(13, 0), End: hm(18, 0)},
			},
		},
		{
			name: "busy covers whole window",
			busy: []Slot{{Start: hm(7, 0), End: hm(19, 0)}},
			want: []Slot{},
		},
		{
			name: "busy extends past window edges",
			busy: []Slot{
				{Start: hm(7, 0), End: hm(9, 0)},
				{Start: hm(17, 30), End: hm(19, 0)},
			},
			want: []Slot{{Start: hm(9, 0), End: hm(17, 30)}},
		},
		{
			name: "overlapping busy intervals merge",
			busy: []Slot{
				{Start: hm(10, 0), End: hm(12, 0)},
				{Start: hm(11, 0), End: hm(13, 0)},
			},
			want: []Slot{
				{Start: hm(8, 0), End: hm(10, 0)},
				{Start: hm(13, 0), End: hm(18, 0)},
			},
		},
		{
			name: "unsorted busy input",
			busy: []Slot{
				{Start: hm(15, 0), End: hm(16, 0)},
				{Start: hm(9, 0), End: hm(10, 0)},
			},
			want: []Slot{
				{Start: hm(8, 0), End: hm(9, 0)},
				{Start: hm(10, 0), End: hm(15, 0)},
				{Start: hm(16, 0), End: hm(18, 0)},
			},
		},
		{
			name: "busy outside window is ignored",
			busy: []Slot{{Start: hm(19, 0), End: hm(20, 0)}},
			want: []Slot{window},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtractBusy(window, tt.busy)
			assertSlots(t, got, tt.want)
		})
	}
}

func TestChunkSlots(t *testing.T) {
	free := []Slot{{Start: hm(9, 0), End: hm(11, 0)}}

	t.Run("granularity equals duration", func(t *testing.T) {
		got := chunkSlots(free, 50*time.Minute, 50*time.Minute)
		want := []Slot{
			{Start: hm(9, 0), End: hm(9, 50)},
			{Start: hm(9, 50), End: hm(10, 40)},
		}
		assertSlots(t, got, want)
	})

	t.Run("finer granularity produces overlapping starts", func(t *testing.T) {
		got := chunkSlots(free, 60*time.Minute, 30*time.Minute)
		want := []Slot{
			{Start: hm(9, 0), End: hm(10, 0)},
			{Start: hm(9, 30), End: hm(10, 30)},
			{Start: hm(10, 0), End: hm(11, 0)},
		}
		assertSlots(t, got, want)
	})

	t.Run("zero granularity falls back to duration", func(t *testing.T) {
		got := chunkSlots(free, 60*time.Minute, 0)
		want := []Slot{
			{Start: hm(9, 0), End: hm(10, 0)},
			{Start: hm(10, 0), End: hm(11, 0)},
		}
		assertSlots(t, got, want)
	})

	t.Run("remainder shorter than duration is dropped", func(t *testing.T) {
		short := []Slot{{Start: hm(9, 0), End: hm(9, 40)}}
		got := chunkSlots(short, 50*time.Minute, 50*time.Minute)
		if len(got) != 0 {
			t.Errorf("chunkSlots() = %v, want none", got)
		}
	})
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		h, m    int
		wantErr bool
	}{
		{"08:00", 8, 0, false},
		{"23:59", 23, 59, false},
		{"9:30", 9, 30, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := parseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (h != tt.h || m != tt.m) {
				t.Errorf("parseClock(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.h, tt.m)
			}
		})
	}
}

func TestWorkingWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	// 2026-03-10 is a Tuesday.
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	t.Run("nil document uses default hours", func(t *testing.T) {
		w, ok := workingWindow(nil, day, loc, 8, 18)
		if !ok {
			t.Fatal("workingWindow() ok = false, want true")
		}
		wantStart := time.Date(2026, 3, 10, 8, 0, 0, 0, loc)
		wantEnd := time.Date(2026, 3, 10, 18, 0, 0, 0, loc)
		if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
			t.Errorf("workingWindow() = %v-%v, want %v-%v", w.Start, w.End, wantStart, wantEnd)
		}
	})

	t.Run("weekday entry is honored", func(t *testing.T) {
		wh := map[string]any{
			"tuesday": map[string]any{"start": "09:30", "end": "17:00"},
		}
		w, ok := workingWindow(wh, day, loc, 8, 18)
		if !ok {
			t.Fatal("workingWindow() ok = false, want true")
		}
		wantStart := time.Date(2026, 3, 10, 9, 30, 0, 0, loc)
		wantEnd := time.Date(2026, 3, 10, 17, 0, 0, 0, loc)
		if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
			t.Errorf("workingWindow() = %v-%v, want %v-%v", w.Start, w.End, wantStart, wantEnd)
		}
	})

	t.Run("missing weekday means non-working day", func(t *testing.T) {
		wh := map[string]any{
			"monday": map[string]any{"start": "08:00", "end": "18:00"},
		}
		if _, ok := workingWindow(wh, day, loc, 8, 18); ok {
			t.Error("workingWindow() ok = true, want false for missing weekday")
		}
	})

	t.Run("malformed clock rejects the day", func(t *testing.T) {
		wh := map[string]any{
			"tuesday": map[string]any{"start": "morning", "end": "18:00"},
		}
		if _, ok := workingWindow(wh, day, loc, 8, 18); ok {
			t.Error("workingWindow() ok = true, want false for bad clock")
		}
	})

	t.Run("inverted window rejects the day", func(t *testing.T) {
		wh := map[string]any{
			"tuesday": map[string]any{"start": "18:00", "end": "08:00"},
		}
		if _, ok := workingWindow(wh, day, loc, 8, 18); ok {
			t.Error("workingWindow() ok = true, want false for inverted window")
		}
	})
}

func TestWeekdayKey(t *testing.T) {
	if got := weekdayKey(time.Monday); got != "monday" {
		t.Errorf("weekdayKey(Monday) = %q, want %q", got, "monday")
	}
	if got := weekdayKey(time.Sunday); got != "sunday" {
		t.Errorf("weekdayKey(Sunday) = %q, want %q", got, "sunday")
	}
}

func TestOutsideWakingHours(t *testing.T) {
	tests := []struct {
		hour int
		want bool
	}{
		{6, true},
		{7, false},
		{12, false},
		{21, false},
		{22, true},
		{23, true},
		{0, true},
	}

	for _, tt := range tests {
		at := hm(tt.hour, 0)
		if got := outsideWakingHours(at); got != tt.want {
			t.Errorf("outsideWakingHours(%02d:00) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func assertSlots(t *testing.T, got, want []Slot) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("slot[%d] = %v-%v, want %v-%v", i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}
