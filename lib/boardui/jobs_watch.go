// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"time"

	"github.com/bureau-foundation/jobdeck/lib/schema/job"
	"golang.org/x/sys/unix"
)

// WatchJobsFile loads the initial jobs snapshot and starts an inotify
// watcher that feeds incremental updates into the returned IndexSource.
// The cleanup function stops the watcher and closes the inotify fd.
//
// The watcher monitors the parent directory for IN_CLOSE_WRITE and
// IN_MOVED_TO events on the target filename (handling both in-place
// writes and atomic renames). On each change, the file is re-read in
// full and diffed against the previous snapshot; only actual changes
// produce Put/Remove calls on the IndexSource.
func WatchJobsFile(path string, statuses []job.Status) (*IndexSource, func(), error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := readJobsSnapshot(absolutePath)
	if err != nil {
		return nil, nil, err
	}

	source := NewIndexSource(statuses)
	for jobID, entry := range snapshot {
		source.Put(jobID, entry.content)
	}

	// Watch the parent directory, not the file. Atomic renames create
	// a new inode, so a file-level watch on the old inode misses the
	// replacement.
	directory := filepath.Dir(absolutePath)
	filename := filepath.Base(absolutePath)

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, nil, err
	}

	_, err = unix.InotifyAddWatch(fd, directory, unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO)
	if err != nil {
		unix.Close(fd)
		return nil, nil, err
	}

	stopChannel := make(chan struct{})
	go jobsWatchLoop(fd, absolutePath, filename, source, snapshot, stopChannel)

	cleanedUp := false
	cleanup := func() {
		if cleanedUp {
			return
		}
		cleanedUp = true
		close(stopChannel)
	}

	return source, cleanup, nil
}

// jobsWatchLoop polls the inotify fd for changes to the jobs file,
// re-reads the snapshot, and diffs it against the previous state.
// Changes are pushed into the IndexSource via Put/Remove, which
// dispatches events to subscribers (driving board recompute and the
// heat animation).
//
// Uses poll(2) with 100ms timeout for responsive stop-channel
// checking. After detecting a change, waits 50ms and drains queued
// events to coalesce rapid writes (a scraper appending several jobs
// in one run).
func jobsWatchLoop(
	fd int,
	path string,
	filename string,
	source *IndexSource,
	previous map[string]jobSnapshotEntry,
	stopChannel <-chan struct{},
) {
	defer unix.Close(fd)

	buffer := make([]byte, 4096)

	for {
		select {
		case <-stopChannel:
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			// Fatal poll error. The board degrades to a static view
			// of the last successful snapshot.
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		if !inotifyMatchesFile(buffer[:bytesRead], filename) {
			continue
		}

		// Debounce: wait 50ms and drain additional events that
		// arrived during that window.
		time.Sleep(50 * time.Millisecond)
		drainInotifyEvents(fd, buffer)

		current, err := readJobsSnapshot(path)
		if err != nil {
			// File may be mid-write or briefly absent during an
			// atomic replace. The next inotify event (from the
			// completed write) will succeed.
			continue
		}

		diffJobSnapshots(source, previous, current)
		previous = current
	}
}

// diffJobSnapshots compares two snapshots and pushes changes into the
// IndexSource. Only entries whose raw JSON bytes differ (or are
// new/removed) produce Put/Remove calls, avoiding false heat
// animation.
func diffJobSnapshots(source *IndexSource, previous, current map[string]jobSnapshotEntry) {
	for jobID, entry := range current {
		old, exists := previous[jobID]
		if !exists || !bytes.Equal(old.rawJSON, entry.rawJSON) {
			source.Put(jobID, entry.content)
		}
	}
	for jobID := range previous {
		if _, exists := current[jobID]; !exists {
			source.Remove(jobID)
		}
	}
}

// inotifyMatchesFile checks whether any inotify event in the buffer
// matches the target filename. Layout from inotify(7):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, null-padded to alignment
//	};
func inotifyMatchesFile(buffer []byte, targetFilename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			nameBytes := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminatedString(nameBytes) == targetFilename {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

// nullTerminatedString extracts a string from a null-padded byte
// slice, stopping at the first null byte.
func nullTerminatedString(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// drainInotifyEvents reads and discards any pending inotify events.
func drainInotifyEvents(fd int, buffer []byte) {
	for {
		_, err := unix.Read(fd, buffer)
		if err != nil {
			// EAGAIN means no more events; any other error, stop.
			return
		}
	}
}
