// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package board

import (
	"testing"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

func TestGroupBucketPerStatus(t *testing.T) {
	statuses := job.DefaultStatuses()
	buckets := Group(testEntries(), statuses)

	if len(buckets) != len(statuses) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(statuses))
	}
	for _, status := range statuses {
		if _, exists := buckets[status.Name]; !exists {
			t.Errorf("no bucket for status %q", status.Name)
		}
	}
}

func TestGroupEmptyStatusGetsEmptyBucket(t *testing.T) {
	buckets := Group(testEntries(), job.DefaultStatuses())
	withdrawn, exists := buckets["Withdrawn"]
	if !exists {
		t.Fatal("Withdrawn bucket missing")
	}
	if len(withdrawn) != 0 {
		t.Errorf("Withdrawn bucket has %d jobs, want 0", len(withdrawn))
	}
}

func TestGroupCoversEachJobExactlyOnce(t *testing.T) {
	entries := testEntries()
	buckets := Group(entries, job.DefaultStatuses())

	placed := make(map[string]int)
	for _, bucket := range buckets {
		for _, entry := range bucket {
			placed[entry.ID]++
		}
	}
	for _, entry := range entries {
		if placed[entry.ID] != 1 {
			t.Errorf("job %s appears %d times across buckets, want 1", entry.ID, placed[entry.ID])
		}
	}
}

func TestGroupPreservesInputOrder(t *testing.T) {
	ordered := Project(testEntries(), "", SortDateAdded, Ascending)
	buckets := Group(ordered, job.DefaultStatuses())

	applied := buckets["Applied"]
	if !equalIDs(ids(applied), []string{"job-003", "job-005"}) {
		t.Errorf("Applied bucket order %v, want [job-003 job-005]", ids(applied))
	}
}

func TestGroupOmitsUnknownStatusSilently(t *testing.T) {
	entries := []jobindex.Entry{
		{ID: "job-ok", Content: job.Content{Status: "Applied"}},
		{ID: "job-orphan", Content: job.Content{Status: "Ghosted"}},
	}
	statuses := job.DefaultStatuses()
	buckets := Group(entries, statuses)

	for name, bucket := range buckets {
		for _, entry := range bucket {
			if entry.ID == "job-orphan" {
				t.Errorf("orphaned job placed in bucket %q", name)
			}
		}
	}
	if count := Ungrouped(entries, statuses); count != 1 {
		t.Errorf("Ungrouped = %d, want 1", count)
	}
}

func TestGroupEmptyCollection(t *testing.T) {
	buckets := Group(nil, job.DefaultStatuses())
	for name, bucket := range buckets {
		if len(bucket) != 0 {
			t.Errorf("bucket %q non-empty for empty collection", name)
		}
	}
}
