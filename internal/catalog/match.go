package catalog

import (
	"strings"
)

// Keyword matching is a case-insensitive substring test against text that
// the caller has already lowercased.

// Matched returns the keywords contained in lower, in keyword order.
func Matched(lower string, keywords []string) []string {
	out := []string{}
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			out = append(out, kw)
		}
	}
	return out
}

// Missing returns the keywords not contained in lower, in keyword order.
func Missing(lower string, keywords []string) []string {
	out := []string{}
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			out = append(out, kw)
		}
	}
	return out
}

// ContainsAny reports whether any keyword is contained in lower.
func ContainsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// First returns at most the first n items.
func First(items []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// Slice returns items[from:to], clamped to the slice bounds.
func Slice(items []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(items) {
		to = len(items)
	}
	if from >= to {
		return []string{}
	}
	return items[from:to]
}

// JoinFirst joins at most the first n items with ", ".
func JoinFirst(items []string, n int) string {
	return strings.Join(First(items, n), ", ")
}
