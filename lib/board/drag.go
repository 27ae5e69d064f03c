// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package board

// Drag resolution. A gesture runs Idle → Pressed → Dragging → Idle:
// Pressed on pointer-down over a card, Dragging once motion exceeds
// the activation distance (so plain clicks never start a drag), Idle
// again on release or cancel. Release resolves against the zone
// registry with pointer-within semantics: the exact release point
// must lie inside a target's bounds. Keyboard moves call the same
// ResolveDrop with a synthesized point inside the targeted column, so
// both modalities share one resolution path.

// ActivationDistance is the Manhattan distance, in terminal cells,
// the pointer must travel from the press point before the gesture
// becomes a drag. Two cells is the smallest motion distinguishable
// from click jitter in cell coordinates.
const ActivationDistance = 2

// Zone is a rectangular drop target in screen cells. Width and Height
// are extents; a zone contains a point when the point lies inside the
// half-open rectangle [X, X+Width) × [Y, Y+Height).
type Zone struct {
	// Status is the candidate status a drop on this zone resolves
	// to. For card zones this is the card's current status.
	Status string

	// JobID identifies the card for card zones; empty for columns.
	JobID string

	X, Y, Width, Height int
}

// Contains reports pointer-within for this zone.
func (zone Zone) Contains(x, y int) bool {
	return x >= zone.X && x < zone.X+zone.Width &&
		y >= zone.Y && y < zone.Y+zone.Height
}

// ZoneRegistry holds the drop targets registered for the current
// layout. The board view rebuilds it whenever layout changes (resize,
// recompute, scroll); resolution is a pure query against it.
type ZoneRegistry struct {
	columns []Zone
	cards   []Zone
}

// Reset clears all registrations, keeping capacity.
func (registry *ZoneRegistry) Reset() {
	registry.columns = registry.columns[:0]
	registry.cards = registry.cards[:0]
}

// AddColumn registers a column drop zone.
func (registry *ZoneRegistry) AddColumn(status string, x, y, width, height int) {
	registry.columns = append(registry.columns, Zone{
		Status: status, X: x, Y: y, Width: width, Height: height,
	})
}

// AddCard registers a card drop zone. Cards also serve as drag
// handles: a press inside a card zone begins a gesture on that job.
func (registry *ZoneRegistry) AddCard(jobID, status string, x, y, width, height int) {
	registry.cards = append(registry.cards, Zone{
		Status: status, JobID: jobID, X: x, Y: y, Width: width, Height: height,
	})
}

// CardAt returns the card zone containing the point, if any. Used for
// the press that may begin a gesture and for click-to-select.
func (registry *ZoneRegistry) CardAt(x, y int) (Zone, bool) {
	for _, zone := range registry.cards {
		if zone.Contains(x, y) {
			return zone, true
		}
	}
	return Zone{}, false
}

// ColumnAt returns the status of the column containing the point.
func (registry *ZoneRegistry) ColumnAt(x, y int) (string, bool) {
	for _, zone := range registry.columns {
		if zone.Contains(x, y) {
			return zone.Status, true
		}
	}
	return "", false
}

// ResolveDrop maps a release point to a candidate status: a column
// zone containing the point wins; failing that, a card zone re-targets
// to that card's column; failing both, there is no candidate and the
// gesture is a no-op.
func (registry *ZoneRegistry) ResolveDrop(x, y int) (string, bool) {
	if status, ok := registry.ColumnAt(x, y); ok {
		return status, true
	}
	if zone, ok := registry.CardAt(x, y); ok {
		return zone.Status, true
	}
	return "", false
}

// SessionState is the gesture state.
type SessionState int

const (
	// SessionIdle means no gesture is in flight.
	SessionIdle SessionState = iota
	// SessionPressed means the pointer is down on a card but has not
	// yet traveled the activation distance.
	SessionPressed
	// SessionDragging means the gesture is an active drag; the board
	// renders the dragged card as a ghost overlay.
	SessionDragging
)

// Transition is a resolved status-change request: the one call the
// board makes to the store per completed drag.
type Transition struct {
	JobID    string
	ToStatus string
}

// Session tracks a single drag gesture. The session is a singleton on
// the board model: one pointer, at most one gesture in flight.
type Session struct {
	state        SessionState
	jobID        string
	originStatus string
	pressX       int
	pressY       int
	pointerX     int
	pointerY     int
}

// State returns the current gesture state.
func (session *Session) State() SessionState {
	return session.state
}

// Dragging reports whether the gesture has passed activation.
func (session *Session) Dragging() bool {
	return session.state == SessionDragging
}

// JobID returns the job under gesture; empty when idle.
func (session *Session) JobID() string {
	if session.state == SessionIdle {
		return ""
	}
	return session.jobID
}

// Pointer returns the last observed pointer position. Meaningful only
// while a gesture is in flight; the ghost overlay anchors here.
func (session *Session) Pointer() (x, y int) {
	return session.pointerX, session.pointerY
}

// Press begins a gesture on a card. The gesture stays in Pressed
// until motion exceeds the activation distance, so a press-release
// without travel stays a click.
func (session *Session) Press(jobID, originStatus string, x, y int) {
	session.state = SessionPressed
	session.jobID = jobID
	session.originStatus = originStatus
	session.pressX = x
	session.pressY = y
	session.pointerX = x
	session.pointerY = y
}

// Move updates the pointer position and promotes Pressed to Dragging
// once the activation distance is exceeded. Returns true if the state
// changed (the view needs a ghost overlay from now on).
func (session *Session) Move(x, y int) bool {
	if session.state == SessionIdle {
		return false
	}
	session.pointerX = x
	session.pointerY = y
	if session.state != SessionPressed {
		return false
	}
	if manhattan(x-session.pressX, y-session.pressY) < ActivationDistance {
		return false
	}
	session.state = SessionDragging
	return true
}

// Drop completes the gesture at a release point. Returns a transition
// exactly when the gesture was an active drag, the point resolves to
// a candidate status, and the candidate differs from the job's origin
// status. A release before activation, outside every zone, or over
// the origin column returns no transition. The session returns to
// Idle either way.
func (session *Session) Drop(x, y int, registry *ZoneRegistry) (Transition, bool) {
	state := session.state
	jobID := session.jobID
	origin := session.originStatus
	session.reset()

	if state != SessionDragging {
		return Transition{}, false
	}
	candidate, ok := registry.ResolveDrop(x, y)
	if !ok || candidate == origin {
		return Transition{}, false
	}
	return Transition{JobID: jobID, ToStatus: candidate}, true
}

// Cancel abandons the gesture with no side effects.
func (session *Session) Cancel() {
	session.reset()
}

func (session *Session) reset() {
	*session = Session{}
}

func manhattan(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
