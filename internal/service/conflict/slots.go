package conflict

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Slot is a half-open time interval [Start, End).
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (s Slot) Duration() time.Duration { return s.End.Sub(s.Start) }

// overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// subtractBusy removes the busy intervals from window and returns the free
// remainder, ordered by start time. Busy intervals may overlap each other
// and may extend past the window edges.
func subtractBusy(window Slot, busy []Slot) []Slot {
	sorted := make([]Slot, 0, len(busy))
	for _, b := range busy {
		if overlaps(window.Start, window.End, b.Start, b.End) {
			sorted = append(sorted, b)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	free := make([]Slot, 0, len(sorted)+1)
	cursor := window.Start
	for _, b := range sorted {
		if b.Start.After(cursor) {
			free = append(free, Slot{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(window.End) {
		free = append(free, Slot{Start: cursor, End: window.End})
	}
	return free
}

// chunkSlots splits each free interval into fixed-size bookable slots of
// the given duration, stepping by granularity. Remainders shorter than the
// duration are dropped.
func chunkSlots(free []Slot, duration, granularity time.Duration) []Slot {
	if granularity <= 0 {
		granularity = duration
	}
	var out []Slot
	for _, f := range free {
		for start := f.Start; !start.Add(duration).After(f.End); start = start.Add(granularity) {
			out = append(out, Slot{Start: start, End: start.Add(duration)})
		}
	}
	return out
}

// weekdayKey returns the lowercase english weekday name used as the key in
// working-hours JSON ("monday", "tuesday", ...).
func weekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// parseClock parses "HH:MM" into hour and minute.
func parseClock(s string) (int, int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("clock %q out of range", s)
	}
	return h, m, nil
}

// workingWindow resolves the working window for one calendar day from a
// working-hours JSON document keyed by lowercase weekday:
//
//	{"monday": {"start": "08:00", "end": "18:00"}, ...}
//
// A missing weekday entry means a non-working day. A nil document falls
// back to the default hours.
func workingWindow(wh map[string]any, day time.Time, loc *time.Location, defStartHour, defEndHour int) (Slot, bool) {
	y, mo, d := day.In(loc).Date()

	if wh == nil {
		return Slot{
			Start: time.Date(y, mo, d, defStartHour, 0, 0, 0, loc),
			End:   time.Date(y, mo, d, defEndHour, 0, 0, 0, loc),
		}, true
	}

	raw, ok := wh[weekdayKey(day.In(loc).Weekday())]
	if !ok {
		return Slot{}, false
	}
	entry, ok := raw.(map[string]any)
	if !ok {
		return Slot{}, false
	}
	startStr, _ := entry["start"].(string)
	endStr, _ := entry["end"].(string)

	sh, sm, err := parseClock(startStr)
	if err != nil {
		return Slot{}, false
	}
	eh, em, err := parseClock(endStr)
	if err != nil {
		return Slot{}, false
	}

	w := Slot{
		Start: time.Date(y, mo, d, sh, sm, 0, 0, loc),
		End:   time.Date(y, mo, d, eh, em, 0, 0, loc),
	}
	if !w.End.After(w.Start) {
		return Slot{}, false
	}
	return w, true
}
