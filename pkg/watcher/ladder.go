package watcher

import (
	"strconv"

	"calloutgo/pkg/cue"
)

// Rung is one threshold of a ladder and the cue it raises.
type Rung struct {
	Threshold float64
	Cue       cue.ID
}

// AltitudeLadder holds the descent callouts, smallest threshold first.
var AltitudeLadder = []Rung{
	{10, "alt/10"},
	{20, "alt/20"},
	{30, "alt/30"},
	{40, "alt/40"},
	{50, "alt/50"},
	{100, "alt/100"},
	{200, "alt/200"},
	{300, "alt/300"},
	{400, "alt/400"},
	{500, "alt/500"},
	{1000, "alt/1000"},
	{1500, "alt/1500"},
	{2000, "alt/2000"},
	{3000, cue.RadioAlt},
}

// GForceLadder holds the g warnings, highest threshold first.
var GForceLadder = Ladder(cue.CategoryGForce, 6, 5, 4, 3)

// Descending returns the first rung crossed downward between prev and curr.
// Rungs are scanned in order, so with AltitudeLadder the smallest crossed
// threshold wins and larger ones crossed in the same tick are skipped.
func Descending(rungs []Rung, prev, curr float64) (Rung, bool) {
	for _, r := range rungs {
		if curr <= r.Threshold && prev > r.Threshold {
			return r, true
		}
	}
	return Rung{}, false
}

// Ascending returns the first rung crossed upward between prev and curr.
func Ascending(rungs []Rung, prev, curr float64) (Rung, bool) {
	for _, r := range rungs {
		if curr >= r.Threshold && prev < r.Threshold {
			return r, true
		}
	}
	return Rung{}, false
}

// Ladder builds rungs from thresholds using "category/<threshold>" cue IDs.
func Ladder(category string, thresholds ...float64) []Rung {
	rungs := make([]Rung, 0, len(thresholds))
	for _, t := range thresholds {
		rungs = append(rungs, Rung{Threshold: t, Cue: cue.New(category, strconv.FormatFloat(t, 'f', -1, 64))})
	}
	return rungs
}
