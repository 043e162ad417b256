package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodYear, ParsePeriod(" YEAR "))
	assert.Equal(t, PeriodAll, ParsePeriod("all"))
	assert.Equal(t, PeriodMonth, ParsePeriod("month"))
	assert.Equal(t, PeriodMonth, ParsePeriod(""))
	assert.Equal(t, PeriodMonth, ParsePeriod("quarter"))
}

func TestPeriodSince(t *testing.T) {
	assert.Nil(t, PeriodAll.Since(now))

	week := PeriodWeek.Since(now)
	require.NotNil(t, week)
	assert.Equal(t, now.AddDate(0, 0, -7), *week)

	month := PeriodMonth.Since(now)
	require.NotNil(t, month)
	assert.Equal(t, now.AddDate(0, 0, -30), *month)

	year := PeriodYear.Since(now)
	require.NotNil(t, year)
	assert.Equal(t, time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC), *year)
}

func TestWindowFor(t *testing.T) {
	w := WindowFor(PeriodWeek, now, nil)
	assert.Equal(t, 7.0, w.Days())

	earliest := now.AddDate(0, 0, -100)
	w = WindowFor(PeriodAll, now, &earliest)
	assert.Equal(t, earliest, w.From)
	assert.Equal(t, 100.0, w.Days())

	w = WindowFor(PeriodAll, now, nil)
	assert.Equal(t, 30.0, w.Days())

	future := now.AddDate(0, 0, 5)
	w = WindowFor(PeriodAll, now, &future)
	assert.Equal(t, now.AddDate(0, 0, -30), w.From)
}

func TestWindowDays_Floored(t *testing.T) {
	assert.Equal(t, 1.0, Window{From: now, To: now}.Days())
	assert.Equal(t, 1.0, Window{From: now, To: now.Add(-time.Hour)}.Days())
}
