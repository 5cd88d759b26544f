// Package query shapes joined collections for display: text filtering,
// stable sorting and pagination. Every operation is pure: inputs are never
// mutated, so repository snapshots stay intact no matter how often a view
// is re-derived.
package query

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// minFilterLength is the shortest search term that actually filters; shorter
// terms are treated as noise and leave the collection untouched. Measured in
// runes, so a single accented character is still noise.
const minFilterLength = 2

// FilterByText keeps the items whose field contains term, case-insensitively.
func FilterByText[T any](items []T, term string, field func(T) string) []T {
	if utf8.RuneCountInString(term) < minFilterLength {
		return items
	}

	needle := strings.ToLower(term)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortBy returns a sorted copy. The sort is stable: re-sorting with the same
// ordering is a no-op, and ties keep their prior relative order, so a view
// re-derived on every keystroke does not shuffle unrelated rows.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
