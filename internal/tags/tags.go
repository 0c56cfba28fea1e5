// Package tags provides normalization and set operations for style tags.
// Tags arrive from profile fields, portfolio images, and projects with
// inconsistent casing and whitespace; everything is normalized before any
// set arithmetic so that "Wedding " and "wedding" count as one tag.
package tags

import "strings"

// Normalize lowercases and trims a single tag. An empty result means the
// tag should be discarded.
func Normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeAll normalizes a tag list into a deduplicated set, preserving
// first-seen order. Always returns a non-nil slice.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		n := Normalize(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Union merges any number of tag lists into one normalized, deduplicated set.
func Union(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	merged := make([]string, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	return NormalizeAll(merged)
}

// Jaccard returns the Jaccard similarity of two tag collections:
// |intersection| / |union|. Duplicates and casing are irrelevant. Two empty
// sets yield 0 rather than an undefined division.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, t := range list {
		n := Normalize(t)
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
