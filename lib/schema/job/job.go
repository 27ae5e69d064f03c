// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"fmt"
	"slices"
	"strings"
)

// Content holds the fields of a tracked job application. The board
// reads Content values from a store snapshot and never mutates them;
// status transitions go through the store's mutation contract.
type Content struct {
	// Company is the hiring company's display name.
	Company string `json:"company"`

	// Title is the position title as posted.
	Title string `json:"title"`

	// Status is the current pipeline stage, matched against
	// [Status.Name] in the registry.
	Status string `json:"status"`

	// DateAdded is when the job was logged, in Unix milliseconds.
	DateAdded int64 `json:"date_added"`

	// URL is the posting URL, when known.
	URL string `json:"url,omitempty"`

	// Summary is the optional short description captured when the
	// posting was logged.
	Summary *Summary `json:"summary,omitempty"`

	// ResumeAnalysis is the optional AI resume grade for this
	// posting. Produced by an external provider client.
	ResumeAnalysis *ResumeAnalysis `json:"resume_analysis,omitempty"`
}

// Summary is the short free-text description of a posting.
type Summary struct {
	// Short is a one-or-two sentence description of the role.
	Short string `json:"short,omitempty"`

	// JobType is the employment type (full-time, contract, ...).
	JobType string `json:"job_type,omitempty"`

	// Salary is the posted compensation range, verbatim.
	Salary string `json:"salary,omitempty"`
}

// ResumeAnalysis holds the outcome of grading a resume against a
// posting. Grade is a letter (A-F, with +/- variants); MatchPercentage
// is 0-100.
type ResumeAnalysis struct {
	Grade           string `json:"grade"`
	MatchPercentage int    `json:"match_percentage"`
}

// SummaryText returns the short description for search matching, or
// empty string when the job has no summary.
func (content Content) SummaryText() string {
	if content.Summary == nil {
		return ""
	}
	return content.Summary.Short
}

// MatchPercentage returns the resume match percentage, or
// [MissingMatchPercentage] when the job has no analysis. The sentinel
// sorts below any real percentage so unanalyzed jobs land at the end
// of a descending resume-fit sort.
func (content Content) MatchPercentage() int {
	if content.ResumeAnalysis == nil {
		return MissingMatchPercentage
	}
	return content.ResumeAnalysis.MatchPercentage
}

// MissingMatchPercentage is the sort sentinel for jobs without a
// resume analysis. Below the 0-100 range of real percentages.
const MissingMatchPercentage = -1

// Status is one pipeline stage in the registry. The registry is
// static per board session: created and edited by settings tooling,
// read-only to the board.
type Status struct {
	// ID is the stable identifier. Survives display renames.
	ID string `json:"id" yaml:"id"`

	// Name is the display label and the grouping key jobs match
	// against. Unique across the registry.
	Name string `json:"name" yaml:"name"`

	// Color is a display hint: a lipgloss-compatible value, either
	// an ANSI 256 code ("114") or a hex triplet ("#5fd787").
	Color string `json:"color" yaml:"color"`

	// Order defines the left-to-right column position, ascending.
	Order int `json:"order" yaml:"order"`
}

// DefaultStatuses is the built-in five-stage registry used when no
// board configuration is supplied.
func DefaultStatuses() []Status {
	return []Status{
		{ID: "applied", Name: "Applied", Color: "75", Order: 1},
		{ID: "interview", Name: "Interview", Color: "220", Order: 2},
		{ID: "offer", Name: "Offer", Color: "114", Order: 3},
		{ID: "rejected", Name: "Rejected", Color: "196", Order: 4},
		{ID: "withdrawn", Name: "Withdrawn", Color: "245", Order: 5},
	}
}

// DefaultArchivedStatuses is the built-in deny list of terminal
// statuses excluded from the active progress segments.
func DefaultArchivedStatuses() []string {
	return []string{"Rejected", "Withdrawn"}
}

// SortStatuses orders a registry by Order ascending, breaking ties by
// Name so column layout is deterministic.
func SortStatuses(statuses []Status) {
	slices.SortStableFunc(statuses, func(a, b Status) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// ValidateRegistry checks registry invariants: at least one status,
// non-empty unique names, and non-empty IDs. Returns the first
// violation found.
func ValidateRegistry(statuses []Status) error {
	if len(statuses) == 0 {
		return fmt.Errorf("status registry is empty")
	}
	seen := make(map[string]bool, len(statuses))
	for _, status := range statuses {
		if status.ID == "" {
			return fmt.Errorf("status %q has no id", status.Name)
		}
		if status.Name == "" {
			return fmt.Errorf("status %q has no name", status.ID)
		}
		if seen[status.Name] {
			return fmt.Errorf("duplicate status name %q", status.Name)
		}
		seen[status.Name] = true
	}
	return nil
}

// StatusNames returns the registry's names in slice order.
func StatusNames(statuses []Status) []string {
	names := make([]string, len(statuses))
	for index, status := range statuses {
		names[index] = status.Name
	}
	return names
}
