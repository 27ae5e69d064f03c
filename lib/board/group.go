// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package board

import (
	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// Group buckets an already-projected job list by status name. Every
// registry status gets an entry, empty or not, and within-bucket order
// is the input order; callers run Group after Project so columns
// reflect the user's chosen sort.
//
// Jobs whose status matches no registry name are silently omitted
// from every bucket. That is a data-integrity condition the store
// should have prevented; the board's contract is to not throw on it.
// Ungrouped reports how many were omitted so the view can surface
// the count without scanning.
func Group(orderedEntries []jobindex.Entry, statuses []job.Status) map[string][]jobindex.Entry {
	buckets := make(map[string][]jobindex.Entry, len(statuses))
	for _, status := range statuses {
		buckets[status.Name] = []jobindex.Entry{}
	}
	for _, entry := range orderedEntries {
		bucket, known := buckets[entry.Content.Status]
		if !known {
			continue
		}
		buckets[entry.Content.Status] = append(bucket, entry)
	}
	return buckets
}

// Ungrouped counts jobs whose status matches no registry name, the
// jobs Group drops. Zero in healthy data.
func Ungrouped(entries []jobindex.Entry, statuses []job.Status) int {
	known := make(map[string]bool, len(statuses))
	for _, status := range statuses {
		known[status.Name] = true
	}
	count := 0
	for _, entry := range entries {
		if !known[entry.Content.Status] {
			count++
		}
	}
	return count
}
