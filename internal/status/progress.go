package status

import (
	"math"
	"time"
)

// Progress returns how far now is through [start, end] as a percentage in
// [0, 100]. A zero-length range reports 100 once now reaches it.
func Progress(start, end, now time.Time) int {
	if !now.Before(end) {
		return 100
	}
	if !now.After(start) {
		return 0
	}
	total := max(time.Duration(1), end.Sub(start))
	pct := math.Round(float64(now.Sub(start)) / float64(total) * 100)
	return int(min(100, max(0, pct)))
}
