// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jobindex

import (
	"slices"
	"strings"

	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// Entry pairs a job ID with its content. Returned by query methods.
type Entry struct {
	ID      string
	Content job.Content
}

// Stats holds aggregate counts across all jobs in the index.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// Index is an in-memory job collection with a by-status secondary
// index. Construct with [NewIndex]. Not safe for concurrent use.
type Index struct {
	jobs map[string]job.Content

	// byStatus: status name → set of job IDs.
	byStatus map[string]map[string]struct{}
}

// NewIndex returns an empty index ready for use.
func NewIndex() *Index {
	return &Index{
		jobs:     make(map[string]job.Content),
		byStatus: make(map[string]map[string]struct{}),
	}
}

// Len returns the number of jobs in the index.
func (idx *Index) Len() int {
	return len(idx.jobs)
}

// Put adds or updates a job. If a job with the same ID exists it is
// replaced and the status index is updated. Put does not validate the
// content against a registry; the board excludes unmatched statuses
// at grouping time.
func (idx *Index) Put(jobID string, content job.Content) {
	if old, exists := idx.jobs[jobID]; exists {
		idx.removeFromStatus(jobID, old.Status)
	}
	idx.jobs[jobID] = content
	idx.addToStatus(jobID, content.Status)
}

// Remove deletes a job, reporting whether it existed. No-op on an
// unknown ID.
func (idx *Index) Remove(jobID string) bool {
	content, exists := idx.jobs[jobID]
	if !exists {
		return false
	}
	idx.removeFromStatus(jobID, content.Status)
	delete(idx.jobs, jobID)
	return true
}

// Get returns a job's content by ID.
func (idx *Index) Get(jobID string) (job.Content, bool) {
	content, exists := idx.jobs[jobID]
	return content, exists
}

// List returns every job ordered by DateAdded descending, breaking
// ties by ID ascending so snapshot order is deterministic.
func (idx *Index) List() []Entry {
	entries := make([]Entry, 0, len(idx.jobs))
	for jobID, content := range idx.jobs {
		entries = append(entries, Entry{ID: jobID, Content: content})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Content.DateAdded != b.Content.DateAdded {
			if a.Content.DateAdded > b.Content.DateAdded {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return entries
}

// ListByStatus returns the jobs in one status, same ordering as List.
func (idx *Index) ListByStatus(status string) []Entry {
	ids := idx.byStatus[status]
	entries := make([]Entry, 0, len(ids))
	for jobID := range ids {
		entries = append(entries, Entry{ID: jobID, Content: idx.jobs[jobID]})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Content.DateAdded != b.Content.DateAdded {
			if a.Content.DateAdded > b.Content.DateAdded {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return entries
}

// Stats computes aggregate counts from the status index.
func (idx *Index) Stats() Stats {
	stats := Stats{
		Total:    len(idx.jobs),
		ByStatus: make(map[string]int, len(idx.byStatus)),
	}
	for status, ids := range idx.byStatus {
		if len(ids) > 0 {
			stats.ByStatus[status] = len(ids)
		}
	}
	return stats
}

func (idx *Index) addToStatus(jobID, status string) {
	ids, exists := idx.byStatus[status]
	if !exists {
		ids = make(map[string]struct{})
		idx.byStatus[status] = ids
	}
	ids[jobID] = struct{}{}
}

func (idx *Index) removeFromStatus(jobID, status string) {
	ids, exists := idx.byStatus[status]
	if !exists {
		return
	}
	delete(ids, jobID)
	if len(ids) == 0 {
		delete(idx.byStatus, status)
	}
}
