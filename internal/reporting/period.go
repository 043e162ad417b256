package reporting

import (
	"strings"
	"time"
)

// Period is the reporting selector accepted by dashboard endpoints.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ParsePeriod is lenient: empty or unknown selectors mean month.
func ParsePeriod(raw string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(raw))) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodYear:
		return PeriodYear
	case PeriodAll:
		return PeriodAll
	default:
		return PeriodMonth
	}
}

// Since returns the start boundary of the period, nil for PeriodAll.
func (p Period) Since(now time.Time) *time.Time {
	var from time.Time
	switch p {
	case PeriodAll:
		return nil
	case PeriodWeek:
		from = now.AddDate(0, 0, -7)
	case PeriodYear:
		from = now.AddDate(-1, 0, 0)
	default:
		from = now.AddDate(0, 0, -30)
	}
	return &from
}

// Window is a closed reporting interval.
type Window struct {
	From time.Time
	To   time.Time
}

// Days is the window length in days, never below 1.
func (w Window) Days() float64 {
	return max(1, w.To.Sub(w.From).Hours()/24)
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// WindowFor resolves a period into a concrete window ending at now. For
// PeriodAll the window starts at earliest, or 30 days back when nothing is
// known.
func WindowFor(p Period, now time.Time, earliest *time.Time) Window {
	if since := p.Since(now); since != nil {
		return Window{From: *since, To: now}
	}
	if earliest != nil && earliest.Before(now) {
		return Window{From: *earliest, To: now}
	}
	return Window{From: now.AddDate(0, 0, -30), To: now}
}

// monthStart truncates t to the first instant of its month in loc.
func monthStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}
