package matching

import "time"

// rangesOverlap reports whether the closed intervals [s1,e1] and [s2,e2]
// overlap. An inverted interval (start after end) can never overlap
// anything; stored availability rows are data, not validated input, so the
// predicate defines the behavior instead of guessing.
func rangesOverlap(s1, e1, s2, e2 time.Time) bool {
	if e1.Before(s1) || e2.Before(s2) {
		return false
	}
	return !s1.After(e2) && !s2.After(e1)
}
