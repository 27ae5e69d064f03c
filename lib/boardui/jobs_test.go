// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

func writeTestJSONL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestLoadJobsFile(t *testing.T) {
	content := `{"id":"job-001","company":"Stripe","title":"Backend Engineer","status":"Applied","date_added":1756000000000}

{"id":"job-002","company":"Google","title":"SRE","status":"Interview","date_added":1756000001000,"resume_analysis":{"grade":"B","match_percentage":74}}
`
	path := writeTestJSONL(t, content)

	source, err := LoadJobsFile(path, job.DefaultStatuses())
	if err != nil {
		t.Fatalf("LoadJobsFile: %v", err)
	}

	snapshot := source.Jobs()
	if snapshot.Stats.Total != 2 {
		t.Fatalf("loaded %d jobs, expected 2", snapshot.Stats.Total)
	}

	analyzed, exists := source.Get("job-002")
	if !exists {
		t.Fatal("job-002 missing")
	}
	if analyzed.ResumeAnalysis == nil || analyzed.ResumeAnalysis.MatchPercentage != 74 {
		t.Errorf("job-002 resume analysis = %+v", analyzed.ResumeAnalysis)
	}
}

func TestLoadJobsFileMissingID(t *testing.T) {
	path := writeTestJSONL(t, `{"company":"Stripe","status":"Applied"}`+"\n")
	if _, err := LoadJobsFile(path, job.DefaultStatuses()); err == nil {
		t.Fatal("expected error for line without id")
	}
}

func TestLoadJobsFileMissing(t *testing.T) {
	if _, err := LoadJobsFile("/nonexistent/jobs.jsonl", job.DefaultStatuses()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadJobsSnapshotEmptyFile(t *testing.T) {
	path := writeTestJSONL(t, "")
	snapshot, err := readJobsSnapshot(path)
	if err != nil {
		t.Fatalf("readJobsSnapshot on empty file: %v", err)
	}
	if len(snapshot) != 0 {
		t.Errorf("expected 0 entries, got %d", len(snapshot))
	}
}

func TestDiffJobSnapshots(t *testing.T) {
	source := NewIndexSource(job.DefaultStatuses())
	source.Put("job-001", job.Content{Company: "Stripe", Status: "Applied"})
	source.Put("job-002", job.Content{Company: "Google", Status: "Applied"})
	events := source.Subscribe()

	previous := map[string]jobSnapshotEntry{
		"job-001": {
			rawJSON: []byte(`{"id":"job-001","company":"Stripe","status":"Applied"}`),
			content: job.Content{Company: "Stripe", Status: "Applied"},
		},
		"job-002": {
			rawJSON: []byte(`{"id":"job-002","company":"Google","status":"Applied"}`),
			content: job.Content{Company: "Google", Status: "Applied"},
		},
	}
	current := map[string]jobSnapshotEntry{
		// Unchanged bytes: no event.
		"job-001": previous["job-001"],
		// Changed bytes: put event.
		"job-002": {
			rawJSON: []byte(`{"id":"job-002","company":"Google","status":"Interview"}`),
			content: job.Content{Company: "Google", Status: "Interview"},
		},
		// New entry: put event.
		"job-003": {
			rawJSON: []byte(`{"id":"job-003","company":"Anthropic","status":"Applied"}`),
			content: job.Content{Company: "Anthropic", Status: "Applied"},
		},
	}

	diffJobSnapshots(source, previous, current)

	received := make(map[string]EventKind)
	for len(events) > 0 {
		event := <-events
		received[event.JobID] = event.Kind
	}

	if _, unchanged := received["job-001"]; unchanged {
		t.Error("unchanged entry produced an event")
	}
	if kind, ok := received["job-002"]; !ok || kind != EventPut {
		t.Errorf("changed entry event = %v, ok=%v", kind, ok)
	}
	if kind, ok := received["job-003"]; !ok || kind != EventPut {
		t.Errorf("new entry event = %v, ok=%v", kind, ok)
	}

	if updated, _ := source.Get("job-002"); updated.Status != "Interview" {
		t.Errorf("job-002 status = %q after diff, expected Interview", updated.Status)
	}
}

func TestDiffJobSnapshotsRemoval(t *testing.T) {
	source := NewIndexSource(job.DefaultStatuses())
	source.Put("job-001", job.Content{Company: "Stripe", Status: "Applied"})
	events := source.Subscribe()

	previous := map[string]jobSnapshotEntry{
		"job-001": {
			rawJSON: []byte(`{"id":"job-001"}`),
			content: job.Content{Company: "Stripe", Status: "Applied"},
		},
	}

	diffJobSnapshots(source, previous, map[string]jobSnapshotEntry{})

	select {
	case event := <-events:
		if event.Kind != EventRemove || event.JobID != "job-001" {
			t.Errorf("unexpected event %+v", event)
		}
	default:
		t.Fatal("expected a remove event")
	}
	if source.Jobs().Stats.Total != 0 {
		t.Error("removed job still in snapshot")
	}
}
