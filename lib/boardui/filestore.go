// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// FileStore is a [Source] backed by a watched jobs JSONL file that
// also implements [Mutator]: status transitions are written back to
// the file with an atomic temp-file-and-rename replace. Scrapers and
// other tools writing the same file are picked up through the inotify
// watcher underneath.
type FileStore struct {
	*IndexSource
	path string

	// Serializes read-modify-write cycles against our own writes.
	// External writers are handled by the raw-JSON diff in the
	// watcher, not by this lock.
	writeMutex sync.Mutex
}

// OpenFileStore starts watching the jobs file at path and returns a
// mutable store. The cleanup function stops the watcher.
func OpenFileStore(path string, statuses []job.Status) (*FileStore, func(), error) {
	source, cleanup, err := WatchJobsFile(path, statuses)
	if err != nil {
		return nil, nil, err
	}
	store := &FileStore{IndexSource: source, path: path}
	return store, cleanup, nil
}

// UpdateStatus implements [Mutator]. The jobs file is rewritten with
// only the status field of the target line changed; fields this tool
// does not model are preserved verbatim. The in-memory index is
// updated immediately so the board reflects the move without waiting
// for the watcher round trip.
func (store *FileStore) UpdateStatus(ctx context.Context, jobID string, newStatus string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	known := false
	for _, status := range store.Statuses() {
		if status.Name == newStatus {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown status %q", newStatus)
	}

	current, exists := store.Get(jobID)
	if !exists {
		return fmt.Errorf("unknown job %q", jobID)
	}
	if current.Status == newStatus {
		return nil
	}

	store.writeMutex.Lock()
	defer store.writeMutex.Unlock()

	if err := rewriteJobStatus(store.path, jobID, newStatus); err != nil {
		return err
	}

	current.Status = newStatus
	store.Put(jobID, current)
	return nil
}

// rewriteJobStatus rewrites the jobs file with the status of one line
// changed. Each line is decoded into a generic map so fields outside
// the job schema survive the round trip.
func rewriteJobStatus(path string, jobID string, newStatus string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open jobs file: %w", err)
	}

	const maxLineSize = 1024 * 1024
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	var lines [][]byte
	found := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var fields map[string]any
		if err := json.Unmarshal(line, &fields); err != nil {
			file.Close()
			return fmt.Errorf("parse jobs file: %w", err)
		}

		if id, _ := fields["id"].(string); id == jobID {
			fields["status"] = newStatus
			rewritten, err := json.Marshal(fields)
			if err != nil {
				file.Close()
				return fmt.Errorf("encode job %s: %w", jobID, err)
			}
			lines = append(lines, rewritten)
			found = true
			continue
		}

		lines = append(lines, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		file.Close()
		return fmt.Errorf("read jobs file: %w", err)
	}
	file.Close()

	if !found {
		return fmt.Errorf("job %s not in file", jobID)
	}

	// Write to a temp file in the same directory and rename over the
	// original, so concurrent readers never see a half-written file.
	directory := filepath.Dir(path)
	temp, err := os.CreateTemp(directory, ".jobs-*.jsonl")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := temp.Name()

	for _, line := range lines {
		if _, err := temp.Write(append(line, '\n')); err != nil {
			temp.Close()
			os.Remove(tempPath)
			return fmt.Errorf("write temp file: %w", err)
		}
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace jobs file: %w", err)
	}
	return nil
}
