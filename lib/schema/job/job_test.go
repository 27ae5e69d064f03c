// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"slices"
	"testing"
)

func TestMatchPercentageSentinel(t *testing.T) {
	analyzed := Content{ResumeAnalysis: &ResumeAnalysis{Grade: "B", MatchPercentage: 82}}
	if analyzed.MatchPercentage() != 82 {
		t.Errorf("MatchPercentage() = %d, expected 82", analyzed.MatchPercentage())
	}

	unanalyzed := Content{}
	if unanalyzed.MatchPercentage() != MissingMatchPercentage {
		t.Errorf("MatchPercentage() = %d, expected sentinel %d",
			unanalyzed.MatchPercentage(), MissingMatchPercentage)
	}

	// A real 0% must rank above the sentinel in a descending fit sort.
	zero := Content{ResumeAnalysis: &ResumeAnalysis{MatchPercentage: 0}}
	if zero.MatchPercentage() <= MissingMatchPercentage {
		t.Error("a real 0% should compare above the missing sentinel")
	}
}

func TestSummaryText(t *testing.T) {
	withSummary := Content{Summary: &Summary{Short: "Payments infrastructure."}}
	if withSummary.SummaryText() != "Payments infrastructure." {
		t.Errorf("SummaryText() = %q", withSummary.SummaryText())
	}
	if (Content{}).SummaryText() != "" {
		t.Error("SummaryText() on a job without summary should be empty")
	}
}

func TestSortStatuses(t *testing.T) {
	statuses := []Status{
		{ID: "c", Name: "Gamma", Order: 3},
		{ID: "a", Name: "Alpha", Order: 1},
		{ID: "b2", Name: "BetaTwo", Order: 2},
		{ID: "b1", Name: "BetaOne", Order: 2},
	}
	SortStatuses(statuses)

	expected := []string{"Alpha", "BetaOne", "BetaTwo", "Gamma"}
	for position, name := range expected {
		if statuses[position].Name != name {
			t.Errorf("statuses[%d] = %q, expected %q", position, statuses[position].Name, name)
		}
	}

	names := StatusNames(statuses)
	if !slices.Equal(names, expected) {
		t.Errorf("StatusNames = %v, expected %v", names, expected)
	}
}

func TestValidateRegistry(t *testing.T) {
	if err := ValidateRegistry(DefaultStatuses()); err != nil {
		t.Errorf("default registry should validate, got %v", err)
	}
	if err := ValidateRegistry(nil); err == nil {
		t.Error("empty registry should be rejected")
	}

	duplicate := []Status{
		{ID: "a", Name: "Applied", Order: 1},
		{ID: "b", Name: "Applied", Order: 2},
	}
	if err := ValidateRegistry(duplicate); err == nil {
		t.Error("duplicate names should be rejected")
	}

	noID := []Status{{Name: "Applied", Order: 1}}
	if err := ValidateRegistry(noID); err == nil {
		t.Error("missing id should be rejected")
	}
}

func TestFileEntryConversion(t *testing.T) {
	content := Content{
		Company:        "Stripe",
		Title:          "Backend Engineer",
		Status:         "Interview",
		DateAdded:      1756000000000,
		URL:            "https://stripe.com/jobs/1",
		Summary:        &Summary{Short: "Payments.", JobType: "full-time"},
		ResumeAnalysis: &ResumeAnalysis{Grade: "A-", MatchPercentage: 91},
	}

	entry := FromContent("job-042", content)
	if entry.ID != "job-042" {
		t.Errorf("ID = %q, expected job-042", entry.ID)
	}

	roundTripped := entry.ToContent()
	if roundTripped != content {
		t.Errorf("round trip changed content:\n got %+v\nwant %+v", roundTripped, content)
	}
}
