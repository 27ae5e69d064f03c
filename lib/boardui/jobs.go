// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// jobSnapshotEntry pairs a parsed job with the raw JSONL line it came
// from. The raw bytes drive change detection in the file watcher and
// preserve fields this tool does not model when rewriting the file.
type jobSnapshotEntry struct {
	rawJSON []byte
	content job.Content
}

// LoadJobsFile reads a jobs JSONL file and returns an IndexSource
// populated with its entries. Each line is an independent JSON object
// representing one tracked application; see job.FileEntry for the
// field mapping.
func LoadJobsFile(path string, statuses []job.Status) (*IndexSource, error) {
	snapshot, err := readJobsSnapshot(path)
	if err != nil {
		return nil, err
	}

	source := NewIndexSource(statuses)
	for jobID, entry := range snapshot {
		source.Put(jobID, entry.content)
	}
	return source, nil
}

// readJobsSnapshot parses the jobs file into a map keyed by job ID.
func readJobsSnapshot(path string) (map[string]jobSnapshotEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs file: %w", err)
	}
	defer file.Close()

	snapshot := make(map[string]jobSnapshotEntry)
	scanner := bufio.NewScanner(file)

	// Scraped postings carry full descriptions; the default 64KB
	// scanner buffer may be insufficient.
	const maxLineSize = 1024 * 1024
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry job.FileEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if entry.ID == "" {
			return nil, fmt.Errorf("line %d: missing id field", lineNumber)
		}

		snapshot[entry.ID] = jobSnapshotEntry{
			rawJSON: append([]byte(nil), line...),
			content: entry.ToContent(),
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}
	return snapshot, nil
}
