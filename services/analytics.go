package services

import "math"

// Rate computes count / (total - declined) * 100 rounded to two decimals.
// Declined ideas are excluded from the eligible population; a non-positive
// denominator yields zero.
func Rate(count, total, declined int64) float64 {
	denominator := total - declined
	if denominator <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(denominator)*100*100) / 100
}

// FoldTime normalizes a saved-time total so that minutes stay below sixty,
// folding whole hours out of the minute sum.
func FoldTime(hours, minutes float64) (float64, float64) {
	hours += math.Floor(minutes / 60)
	minutes = math.Mod(minutes, 60)
	return hours, minutes
}
