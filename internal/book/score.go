package book

import (
	"fmt"
	"math"
)

// MatchPercent converts a similarity distance into a display percentage.
//
// The backend distance is assumed to sit roughly in [0, 2], so the mapping
// is round(max(0, 1-d/2) * 100). There is no upper clamp: a negative
// distance reads above 100. A nil or non-finite distance has no score.
func MatchPercent(distance *float64) (int, bool) {
	if distance == nil {
		return 0, false
	}
	d := *distance
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	v := math.Max(0, 1-d/2)
	return int(math.Round(v * 100)), true
}

// FormatMatch renders the match badge text, e.g. "87% Match".
// Returns "" when there is no score to show.
func FormatMatch(distance *float64) string {
	p, ok := MatchPercent(distance)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d%% Match", p)
}
