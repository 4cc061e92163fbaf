package vision

// otsuThreshold selects the intensity threshold maximizing the between-class
// variance of the foreground/background split.
//
// For every candidate split t in [0, 255), the histogram is partitioned into
// buckets [0..t] and [t+1..255]; the between-class variance is
// w1*w2*(m1-m2)^2 where w are the class weights and m the intensity-weighted
// class means. A strict > comparison keeps the earliest-seen maximum, so the
// result is deterministic. Splits leaving either class empty are skipped.
//
// A histogram with a single populated bucket (constant image) has no valid
// split; the populated bucket's index is returned as a deterministic
// fallback.
func otsuThreshold(hist []int64) int {
	var total, weightedTotal float64
	for i, c := range hist {
		total += float64(c)
		weightedTotal += float64(i) * float64(c)
	}

	bestIndex := -1
	bestVariance := 0.0

	var weightLow, weightedLow float64
	for t := 0; t < len(hist)-1; t++ {
		weightLow += float64(hist[t])
		weightedLow += float64(t) * float64(hist[t])

		weightHigh := total - weightLow
		if weightLow == 0 || weightHigh == 0 {
			continue
		}

		meanLow := weightedLow / weightLow
		meanHigh := (weightedTotal - weightedLow) / weightHigh

		diff := meanLow - meanHigh
		variance := (weightLow / total) * (weightHigh / total) * diff * diff
		if variance > bestVariance {
			bestVariance = variance
			bestIndex = t
		}
	}

	if bestIndex < 0 {
		return firstNonZero(hist)
	}
	return bestIndex
}
