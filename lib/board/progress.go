// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package board

import (
	"slices"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// Segment is one active status's share of the header progress bar.
type Segment struct {
	Status job.Status

	// Count is the number of jobs currently in this status.
	Count int

	// Fraction is Count / totalJobCount: the segment's proportional
	// width. Fractions across segments sum to at most 1; archived
	// jobs account for the remainder.
	Fraction float64
}

// ComputeSegments derives the progress bar model: one segment per
// non-archived status ordered by Status.Order ascending, plus the
// archived count (totalJobCount minus the active segment counts).
//
// When totalJobCount is zero the segment slice is empty; the bar
// renders nothing rather than dividing by zero.
func ComputeSegments(statuses []job.Status, buckets map[string][]jobindex.Entry, totalJobCount int, archivedStatuses []string) (segments []Segment, archived int) {
	if totalJobCount == 0 {
		return nil, 0
	}

	denied := make(map[string]bool, len(archivedStatuses))
	for _, name := range archivedStatuses {
		denied[name] = true
	}

	active := make([]job.Status, 0, len(statuses))
	for _, status := range statuses {
		if !denied[status.Name] {
			active = append(active, status)
		}
	}
	slices.SortStableFunc(active, func(a, b job.Status) int {
		return a.Order - b.Order
	})

	activeTotal := 0
	segments = make([]Segment, 0, len(active))
	for _, status := range active {
		count := len(buckets[status.Name])
		activeTotal += count
		segments = append(segments, Segment{
			Status:   status,
			Count:    count,
			Fraction: float64(count) / float64(totalJobCount),
		})
	}

	return segments, totalJobCount - activeTotal
}
