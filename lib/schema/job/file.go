// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package job

// FileEntry is the JSON structure of a single line in a jobdeck JSONL
// file: Content plus the job's stable identifier. The file is the
// interchange format with the external tracker; jobdeck reads every
// line on load and rewrites the whole file on a status transition.
type FileEntry struct {
	ID string `json:"id"`

	Company        string          `json:"company"`
	Title          string          `json:"title"`
	Status         string          `json:"status"`
	DateAdded      int64           `json:"date_added"`
	URL            string          `json:"url,omitempty"`
	Summary        *Summary        `json:"summary,omitempty"`
	ResumeAnalysis *ResumeAnalysis `json:"resume_analysis,omitempty"`
}

// ToContent converts a file entry to board content.
func (entry FileEntry) ToContent() Content {
	return Content{
		Company:        entry.Company,
		Title:          entry.Title,
		Status:         entry.Status,
		DateAdded:      entry.DateAdded,
		URL:            entry.URL,
		Summary:        entry.Summary,
		ResumeAnalysis: entry.ResumeAnalysis,
	}
}

// FromContent builds a file entry for writing.
func FromContent(jobID string, content Content) FileEntry {
	return FileEntry{
		ID:             jobID,
		Company:        content.Company,
		Title:          content.Title,
		Status:         content.Status,
		DateAdded:      content.DateAdded,
		URL:            content.URL,
		Summary:        content.Summary,
		ResumeAnalysis: content.ResumeAnalysis,
	}
}
