package recurring

import (
	"sort"
	"time"
)

// Frequency is the recurrence pattern of a series.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// expandDates generates the concrete occurrence start times for a config,
// in the series timezone, ordered ascending. Termination is either the
// occurrence count or the end date (inclusive of its calendar day), further
// capped by maxOccurrences and maxHorizonDays. Dates listed in SkipDates
// are omitted but still advance the pattern.
func expandDates(cfg Config, loc *time.Location, maxOccurrences, maxHorizonDays int) []time.Time {
	if maxOccurrences <= 0 {
		maxOccurrences = 100
	}
	if maxHorizonDays <= 0 {
		maxHorizonDays = 365
	}

	anchor := cfg.StartsAt.In(loc)
	horizon := anchor.AddDate(0, 0, maxHorizonDays)

	limit := maxOccurrences
	if cfg.Occurrences != nil && *cfg.Occurrences < limit {
		limit = *cfg.Occurrences
	}

	var until time.Time
	if cfg.EndDate != nil {
		// End date bounds the calendar day, not the instant.
		y, m, d := cfg.EndDate.In(loc).Date()
		until = time.Date(y, m, d, 23, 59, 59, 0, loc)
	}

	skip := make(map[string]struct{}, len(cfg.SkipDates))
	for _, sd := range cfg.SkipDates {
		skip[sd.In(loc).Format("2006-01-02")] = struct{}{}
	}

	interval := cfg.Interval
	if interval < 1 {
		interval = 1
	}

	var candidates []time.Time
	switch cfg.Frequency {
	case FrequencyDaily:
		candidates = stepDates(anchor, horizon, until, limit, len(skip), func(n int) time.Time {
			return anchor.AddDate(0, 0, n*interval)
		})
	case FrequencyWeekly, FrequencyBiweekly:
		weeks := interval
		if cfg.Frequency == FrequencyBiweekly {
			weeks = 2 * interval
		}
		candidates = expandWeekly(anchor, horizon, until, limit+len(skip), weeks, cfg.DaysOfWeek)
	case FrequencyMonthly:
		candidates = stepDates(anchor, horizon, until, limit, len(skip), func(n int) time.Time {
			return addMonthsClamped(anchor, n*interval)
		})
	}

	out := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if _, skipped := skip[c.Format("2006-01-02")]; skipped {
			continue
		}
		out = append(out, c)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// stepDates applies gen for n = 0, 1, 2, ... collecting dates inside the
// bounds. extra widens the count budget so skipped dates do not shrink the
// series below the requested occurrence count.
func stepDates(anchor, horizon, until time.Time, limit, extra int, gen func(n int) time.Time) []time.Time {
	var out []time.Time
	for n := 0; len(out) < limit+extra; n++ {
		d := gen(n)
		if d.After(horizon) {
			break
		}
		if !until.IsZero() && d.After(until) {
			break
		}
		out = append(out, d)
	}
	return out
}

// expandWeekly generates occurrences on the given weekdays at the anchor's
// time of day, grouped in blocks of weekInterval weeks. With no explicit
// weekdays, the anchor's own weekday is used.
func expandWeekly(anchor, horizon, until time.Time, limit, weekInterval int, days []time.Weekday) []time.Time {
	if len(days) == 0 {
		days = []time.Weekday{anchor.Weekday()}
	}
	// Order weekdays by their distance from the anchor's weekday so each
	// block is generated chronologically; sorting by weekday index would
	// let the occurrence limit cut off earlier dates when the anchor falls
	// mid-week.
	fromAnchor := func(wd time.Weekday) int {
		return (int(wd) - int(anchor.Weekday()) + 7) % 7
	}
	sorted := append([]time.Weekday(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return fromAnchor(sorted[i]) < fromAnchor(sorted[j]) })

	// weekStart is the anchor's calendar day; occurrences in the anchor week
	// that fall before the anchor itself are dropped.
	var out []time.Time
	for week := 0; ; week += weekInterval {
		if len(out) >= limit {
			break
		}
		base := anchor.AddDate(0, 0, week*7)
		weekDone := false
		for _, wd := range sorted {
			delta := int(wd) - int(anchor.Weekday())
			if delta < 0 {
				delta += 7
			}
			d := base.AddDate(0, 0, delta)
			if d.Before(anchor) {
				continue
			}
			if d.After(horizon) || (!until.IsZero() && d.After(until)) {
				weekDone = true
				break
			}
			out = append(out, d)
			if len(out) >= limit {
				break
			}
		}
		if weekDone {
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// addMonthsClamped adds months keeping the anchor's day of month, clamping
// to the target month's last day instead of letting the date normalize into
// the following month (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func addMonthsClamped(anchor time.Time, months int) time.Time {
	y, m, d := anchor.Date()
	h, min, sec := anchor.Clock()

	target := time.Date(y, m+time.Month(months), 1, h, min, sec, 0, anchor.Location())
	last := daysInMonth(target.Year(), target.Month())
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, h, min, sec, 0, anchor.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
