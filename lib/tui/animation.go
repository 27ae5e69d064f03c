// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "time"

// HeatDecayDuration is how long a card glows after a change event.
// Heat starts at 1.0 and decays linearly to 0.0 over this duration.
const HeatDecayDuration = 5 * time.Second

// HeatTickInterval is the re-render interval while any cards are hot.
// 100ms gives ~10fps for smooth color decay.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind distinguishes change types for color selection.
type HeatKind int

const (
	// HeatPut indicates a job was created or updated (amber glow).
	HeatPut HeatKind = iota
	// HeatRemove indicates a job left the collection (red glow).
	HeatRemove
)

// heatEntry records when and how a job was last changed.
type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

// HeatTracker maps job IDs to ignition timestamps for animated change
// highlighting. Store events, including the board's own transitions
// arriving back through the subscribe stream, ignite a card, which
// decays from full intensity to zero over [HeatDecayDuration].
type HeatTracker struct {
	entries map[string]heatEntry
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{entries: make(map[string]heatEntry)}
}

// Ignite records a change event for a job. Resets the decay timer if
// the job was already hot.
func (tracker *HeatTracker) Ignite(jobID string, kind HeatKind, now time.Time) {
	tracker.entries[jobID] = heatEntry{ignition: now, kind: kind}
}

// Heat returns the current intensity for a job: 1.0 at ignition,
// linearly decaying to 0.0 over [HeatDecayDuration]. Returns 0.0 for
// jobs never ignited or fully decayed.
func (tracker *HeatTracker) Heat(jobID string, now time.Time) float64 {
	entry, exists := tracker.entries[jobID]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// Kind returns the heat kind for a job. Only meaningful when Heat()
// returns > 0.
func (tracker *HeatTracker) Kind(jobID string) HeatKind {
	entry, exists := tracker.entries[jobID]
	if !exists {
		return HeatPut
	}
	return entry.kind
}

// HasHot returns true if any tracked job still has heat > 0, meaning
// the tick timer should keep running for animation.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	for jobID, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			return true
		}
		// Garbage-collect fully decayed entries.
		delete(tracker.entries, jobID)
	}
	return false
}
