package report

import (
	"math"

	"github.com/samber/lo"
)

// Round4 rounds to 4 decimals, ties to even.
func Round4(v float64) float64 {
	return math.RoundToEven(v*1e4) / 1e4
}

// NormalizeEmotions divides every raw count by the total. When the total is
// zero every category present in raw maps to 0.
func NormalizeEmotions(raw map[string]int) map[string]float64 {
	total := lo.Sum(lo.Values(raw))

	normalized := make(map[string]float64, len(raw))
	for name, count := range raw {
		if total > 0 {
			normalized[name] = Round4(float64(count) / float64(total))
		} else {
			normalized[name] = 0.0
		}
	}
	return normalized
}
