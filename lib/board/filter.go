// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package board

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
)

// SortKey selects the comparator for the projection.
type SortKey string

const (
	// SortDateAdded orders by the DateAdded timestamp.
	SortDateAdded SortKey = "dateAdded"
	// SortCompany orders by company name, locale-aware.
	SortCompany SortKey = "company"
	// SortTitle orders by position title, locale-aware.
	SortTitle SortKey = "title"
	// SortResumeFit orders by resume match percentage. Jobs without
	// an analysis use a sentinel below any real percentage, so a
	// descending sort puts them last.
	SortResumeFit SortKey = "resumeFit"
)

// Direction is the sort direction.
type Direction string

const (
	// Ascending keeps the natural comparator sign.
	Ascending Direction = "asc"
	// Descending negates the comparator.
	Descending Direction = "desc"
)

// DefaultSortKey and DefaultDirection are the board's documented
// defaults, restored by the clear-filters action.
const (
	DefaultSortKey   = SortDateAdded
	DefaultDirection = Descending
)

// Project filters jobs by a case-insensitive substring query against
// company, title, and the optional short description, then stably
// sorts the survivors by the given key and direction. An empty or
// whitespace-only query passes every job. Ties keep their relative
// order from the input, so equal-keyed jobs stay in snapshot order.
//
// The input slice is never modified; the result is a fresh slice.
func Project(entries []jobindex.Entry, query string, key SortKey, direction Direction) []jobindex.Entry {
	result := filterEntries(entries, query)

	compare := comparator(key)
	sign := 1
	if direction == Descending {
		sign = -1
	}
	slices.SortStableFunc(result, func(a, b jobindex.Entry) int {
		return sign * compare(a, b)
	})
	return result
}

// Matches reports whether a single job passes the query. Used by
// Project and exported for callers that highlight match context.
func Matches(entry jobindex.Entry, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(entry.Content.Company), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Content.Title), needle) {
		return true
	}
	summary := entry.Content.SummaryText()
	return summary != "" && strings.Contains(strings.ToLower(summary), needle)
}

func filterEntries(entries []jobindex.Entry, query string) []jobindex.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(entries)
	}
	result := make([]jobindex.Entry, 0, len(entries))
	for _, entry := range entries {
		if Matches(entry, query) {
			result = append(result, entry)
		}
	}
	return result
}

// comparator returns the ascending comparison function for a sort key.
// Unknown keys fall back to DateAdded so a stale persisted preference
// cannot break the projection.
func comparator(key SortKey) func(a, b jobindex.Entry) int {
	switch key {
	case SortCompany:
		collator := newCollator()
		return func(a, b jobindex.Entry) int {
			return collator.CompareString(a.Content.Company, b.Content.Company)
		}
	case SortTitle:
		collator := newCollator()
		return func(a, b jobindex.Entry) int {
			return collator.CompareString(a.Content.Title, b.Content.Title)
		}
	case SortResumeFit:
		return func(a, b jobindex.Entry) int {
			return a.Content.MatchPercentage() - b.Content.MatchPercentage()
		}
	default:
		return func(a, b jobindex.Entry) int {
			switch {
			case a.Content.DateAdded < b.Content.DateAdded:
				return -1
			case a.Content.DateAdded > b.Content.DateAdded:
				return 1
			default:
				return 0
			}
		}
	}
}

// newCollator builds the locale-aware string collator used for the
// company and title comparators. Und with loose comparison ignores
// case and width differences, matching how users expect company
// names to sort regardless of capitalization.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose)
}
