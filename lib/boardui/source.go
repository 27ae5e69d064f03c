// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"context"
	"sync"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// EventKind discriminates subscribe-stream events.
type EventKind int

const (
	// EventPut reports a job added or replaced in the collection.
	EventPut EventKind = iota
	// EventRemove reports a job removed from the collection.
	EventRemove
)

// Event is a single change to the job collection, delivered on the
// channel returned by [Source.Subscribe].
type Event struct {
	Kind    EventKind
	JobID   string
	Content job.Content
}

// Snapshot is a point-in-time view of the job collection.
type Snapshot struct {
	Entries []jobindex.Entry
	Stats   jobindex.Stats
}

// Source provides the job collection to the board. Implementations
// must be safe for concurrent use: the bubbletea event loop reads
// snapshots while a watcher goroutine feeds changes in.
type Source interface {
	// Jobs returns the current collection, sorted most recent first.
	Jobs() Snapshot
	// Statuses returns the ordered status registry.
	Statuses() []job.Status
	// Get returns the content of the job with the given ID.
	Get(jobID string) (job.Content, bool)
	// Subscribe returns a channel of collection change events. The
	// channel is closed when the source shuts down.
	Subscribe() <-chan Event
}

// Mutator is implemented by sources that can change job status.
// Sources without it render the board read-only.
type Mutator interface {
	// UpdateStatus moves the job to the named status. The change is
	// observed through the subscribe stream, not a return value.
	UpdateStatus(ctx context.Context, jobID string, newStatus string) error
}

// Selector is implemented by sources that react to card selection,
// for example by surfacing job detail in an adjacent pane.
type Selector interface {
	SelectJob(jobID string)
}

// Opener is implemented by sources that can start the add-job flow.
type Opener interface {
	OpenAddJob() error
}

// IndexSource is an in-memory [Source] backed by a [jobindex.Index].
// It is the store behind the file-backed board and the test double
// for everything above it.
type IndexSource struct {
	mutex       sync.RWMutex
	index       *jobindex.Index
	statuses    []job.Status
	subscribers []chan Event
}

// NewIndexSource creates an empty source with the given status
// registry. The registry is sorted by column order and not copied;
// callers must not mutate it afterwards.
func NewIndexSource(statuses []job.Status) *IndexSource {
	job.SortStatuses(statuses)
	return &IndexSource{
		index:    jobindex.NewIndex(),
		statuses: statuses,
	}
}

// Put adds or replaces a job and notifies subscribers.
func (source *IndexSource) Put(jobID string, content job.Content) {
	source.mutex.Lock()
	source.index.Put(jobID, content)
	source.mutex.Unlock()
	source.dispatch(Event{Kind: EventPut, JobID: jobID, Content: content})
}

// Remove deletes a job and notifies subscribers. Removing an unknown
// ID is a no-op.
func (source *IndexSource) Remove(jobID string) {
	source.mutex.Lock()
	existed := source.index.Remove(jobID)
	source.mutex.Unlock()
	if existed {
		source.dispatch(Event{Kind: EventRemove, JobID: jobID})
	}
}

// Jobs implements [Source].
func (source *IndexSource) Jobs() Snapshot {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return Snapshot{
		Entries: source.index.List(),
		Stats:   source.index.Stats(),
	}
}

// Statuses implements [Source].
func (source *IndexSource) Statuses() []job.Status {
	return source.statuses
}

// Get implements [Source].
func (source *IndexSource) Get(jobID string) (job.Content, bool) {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	return source.index.Get(jobID)
}

// Subscribe implements [Source]. Subscribers that fall more than 64
// events behind have further events dropped; the board resnapshots
// on every event so a dropped event only delays, never corrupts.
func (source *IndexSource) Subscribe() <-chan Event {
	channel := make(chan Event, 64)
	source.mutex.Lock()
	source.subscribers = append(source.subscribers, channel)
	source.mutex.Unlock()
	return channel
}

// Close closes all subscriber channels.
func (source *IndexSource) Close() {
	source.mutex.Lock()
	defer source.mutex.Unlock()
	for _, channel := range source.subscribers {
		close(channel)
	}
	source.subscribers = nil
}

func (source *IndexSource) dispatch(event Event) {
	source.mutex.RLock()
	defer source.mutex.RUnlock()
	for _, channel := range source.subscribers {
		select {
		case channel <- event:
		default:
		}
	}
}
