// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package board

import (
	"testing"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// progressStatuses is the four-stage registry from the projector's
// reference scenario: three active stages plus one terminal.
func progressStatuses() []job.Status {
	return []job.Status{
		{ID: "applied", Name: "Applied", Order: 1},
		{ID: "interview", Name: "Interview", Order: 2},
		{ID: "offer", Name: "Offer", Order: 3},
		{ID: "rejected", Name: "Rejected", Order: 4},
	}
}

func TestComputeSegmentsReferenceScenario(t *testing.T) {
	entries := []jobindex.Entry{
		{ID: "1", Content: job.Content{Status: "Applied"}},
		{ID: "2", Content: job.Content{Status: "Interview"}},
		{ID: "3", Content: job.Content{Status: "Rejected"}},
	}
	statuses := progressStatuses()
	buckets := Group(entries, statuses)

	segments, archived := ComputeSegments(statuses, buckets, len(entries), []string{"Rejected"})

	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}
	wantCounts := map[string]int{"Applied": 1, "Interview": 1, "Offer": 0}
	for _, segment := range segments {
		if segment.Count != wantCounts[segment.Status.Name] {
			t.Errorf("segment %s count = %d, want %d",
				segment.Status.Name, segment.Count, wantCounts[segment.Status.Name])
		}
	}
	if archived != 1 {
		t.Errorf("archived = %d, want 1", archived)
	}
}

func TestComputeSegmentsOrderedByStatusOrder(t *testing.T) {
	statuses := []job.Status{
		{ID: "offer", Name: "Offer", Order: 3},
		{ID: "applied", Name: "Applied", Order: 1},
		{ID: "interview", Name: "Interview", Order: 2},
	}
	buckets := Group(nil, statuses)
	segments, _ := ComputeSegments(statuses, buckets, 1, nil)

	want := []string{"Applied", "Interview", "Offer"}
	for index, segment := range segments {
		if segment.Status.Name != want[index] {
			t.Errorf("segment %d = %s, want %s", index, segment.Status.Name, want[index])
		}
	}
}

func TestComputeSegmentsFractionsSumAtMostOne(t *testing.T) {
	entries := []jobindex.Entry{
		{ID: "1", Content: job.Content{Status: "Applied"}},
		{ID: "2", Content: job.Content{Status: "Applied"}},
		{ID: "3", Content: job.Content{Status: "Offer"}},
		{ID: "4", Content: job.Content{Status: "Rejected"}},
	}
	statuses := progressStatuses()
	buckets := Group(entries, statuses)
	segments, archived := ComputeSegments(statuses, buckets, len(entries), []string{"Rejected"})

	sum := 0.0
	counted := 0
	for _, segment := range segments {
		sum += segment.Fraction
		counted += segment.Count
	}
	if sum > 1.0 {
		t.Errorf("fractions sum to %f, want <= 1", sum)
	}
	if counted != len(entries)-archived {
		t.Errorf("segment counts total %d, want total-archived = %d", counted, len(entries)-archived)
	}
}

func TestComputeSegmentsZeroTotalRendersNothing(t *testing.T) {
	statuses := progressStatuses()
	segments, archived := ComputeSegments(statuses, Group(nil, statuses), 0, []string{"Rejected"})
	if len(segments) != 0 {
		t.Errorf("zero total produced %d segments, want 0", len(segments))
	}
	if archived != 0 {
		t.Errorf("zero total produced archived = %d, want 0", archived)
	}
}
