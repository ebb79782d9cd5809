// Package timeinterval provides pure helpers for half-open time intervals.
package timeinterval

import (
	"fmt"
	"math"
	"time"
)

// Overlap returns the intersection of two half-open intervals [aStart, aEnd)
// and [bStart, bEnd). The returned duration is zero when the intervals are
// disjoint or merely touch at an endpoint.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// Intersects reports whether two half-open intervals share a strictly
// positive duration. Back-to-back intervals do not intersect.
func Intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapPercentage reports how much of the candidate interval
// [candidateStart, candidateEnd) is covered by the existing interval,
// rounded to the nearest whole percent. The ratio is always relative to the
// candidate's duration, answering "how much of the new commitment collides".
// Returns an error when the candidate interval has non-positive duration.
func OverlapPercentage(candidateStart, candidateEnd, existingStart, existingEnd time.Time) (int, error) {
	candDur := candidateEnd.Sub(candidateStart)
	if candDur <= 0 {
		return 0, fmt.Errorf("candidate interval must have positive duration (start=%s end=%s)", candidateStart, candidateEnd)
	}
	overlap := Overlap(candidateStart, candidateEnd, existingStart, existingEnd)
	if overlap == 0 {
		return 0, nil
	}
	return int(math.Round(float64(overlap) / float64(candDur) * 100)), nil
}
