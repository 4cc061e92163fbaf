package vision

import "math"

// triangleThreshold selects the intensity threshold using the triangle
// (histogram-shape) method.
//
// The histogram is trimmed to its non-empty support [lo, hi]. A chord is
// drawn from the peak bucket down to the far end of the longer tail; the
// returned threshold is the bucket whose top is furthest from that chord,
// measured perpendicular to it. Indices are carried in absolute histogram
// coordinates throughout, so no inverse lookup is needed at the end.
//
// A histogram with a single populated bucket returns that bucket's index.
func triangleThreshold(hist []int64) int {
	lo := firstNonZero(hist)
	hi := lastNonZero(hist)
	if lo < 0 {
		return 0
	}
	if lo == hi {
		return lo
	}

	peak := lo
	for i := lo + 1; i <= hi; i++ {
		if hist[i] > hist[peak] {
			peak = i
		}
	}
	peakHeight := float64(hist[peak])

	// Scan the side with the longer run between peak and support edge; the
	// chord's zero end is the support edge on that side.
	if peak-lo >= hi-peak {
		return furthestFromChord(hist, lo, peak, lo, peakHeight)
	}
	return furthestFromChord(hist, peak, hi, hi, peakHeight)
}

// furthestFromChord scans buckets [from, to] and returns the index whose
// histogram bar lies furthest below the chord running from the peak height
// down to zero at zeroEnd.
//
// With the chord's angle a = atan(peakHeight/run), a bar at horizontal
// distance d from the zero end sits tan(a)*d below the chord's height; the
// perpendicular distance to the chord is that vertical gap scaled by cos(a)
// (the gap and run legs of the right triangle divided by its hypotenuse).
// Bars above the chord are clamped to distance zero.
func furthestFromChord(hist []int64, from, to, zeroEnd int, peakHeight float64) int {
	run := math.Abs(float64(to - from))
	angle := math.Atan(peakHeight / run)
	slope := math.Tan(angle)
	scale := math.Cos(angle)

	best := from
	bestDist := -1.0
	for i := from; i <= to; i++ {
		base := math.Abs(float64(i - zeroEnd))
		gap := slope*base - float64(hist[i])
		if gap < 0 {
			gap = 0
		}
		if dist := gap * scale; dist > bestDist {
			bestDist = dist
			best = i
		}
	}

	return best
}
