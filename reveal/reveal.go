// Package reveal holds the threshold lookups shared by scenes that reveal, select or phase content as progress
// advances.
package reveal

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Count returns how many thresholds have been reached at the given progress. Thresholds do not need to be evenly
// spaced, and the result is non-decreasing in progress and always within [0, len(thresholds)].
func Count[T constraints.Float](thresholds []T, progress T) int {
	count := 0
	for _, t := range thresholds {
		if t <= progress {
			count++
		}
	}
	return count
}

// Selected returns the index of the most recently revealed item, or -1 when nothing is revealed yet.
func Selected[T constraints.Float](thresholds []T, progress T) int {
	return Count(thresholds, progress) - 1
}

// Phase maps progress onto a discrete phase given the ascending boundaries where each new phase begins. Progress
// below the first boundary is phase 0.
func Phase[T constraints.Float](boundaries []T, progress T) int {
	return Count(boundaries, progress)
}

// Segment splits progress into n equal segments and returns the active one, clamped to [0, n-1].
func Segment[T constraints.Float](n int, progress T) int {
	if n <= 0 {
		return 0
	}
	idx := int(math.Floor(float64(progress) * float64(n)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// Near reports whether progress lies strictly within eps of any of the points.
func Near[T constraints.Float](points []T, progress, eps T) bool {
	for _, p := range points {
		if math.Abs(float64(p-progress)) < float64(eps) {
			return true
		}
	}
	return false
}

// Window reports whether progress lies in the open interval (from, to).
func Window[T constraints.Float](from, to, progress T) bool {
	return progress > from && progress < to
}
