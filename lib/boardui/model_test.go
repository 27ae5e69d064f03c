// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/jobdeck/lib/board"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// recordingSource wraps an IndexSource with a Mutator that records
// every status update it is asked for. With err set it rejects the
// update without applying anything, mimicking a store failure.
type recordingSource struct {
	*IndexSource
	updates  []recordedUpdate
	err      error
	selected []string
}

type recordedUpdate struct {
	jobID  string
	status string
}

func (source *recordingSource) UpdateStatus(ctx context.Context, jobID, status string) error {
	source.updates = append(source.updates, recordedUpdate{jobID: jobID, status: status})
	if source.err != nil {
		return source.err
	}
	content, _ := source.Get(jobID)
	content.Status = status
	source.Put(jobID, content)
	return nil
}

func (source *recordingSource) SelectJob(jobID string) {
	source.selected = append(source.selected, jobID)
}

// testBoardSource builds a source with three jobs: two in Applied,
// one in Interview. Dates descend with ID so Applied lists job-001
// before job-002.
func testBoardSource() *recordingSource {
	source := &recordingSource{IndexSource: NewIndexSource(job.DefaultStatuses())}
	source.Put("job-001", job.Content{Company: "Stripe", Title: "Backend Engineer", Status: "Applied", DateAdded: 300})
	source.Put("job-002", job.Content{Company: "Google", Title: "SRE", Status: "Applied", DateAdded: 200})
	source.Put("job-003", job.Content{Company: "Amazon", Title: "Platform Engineer", Status: "Interview", DateAdded: 100})
	return source
}

// Test geometry at 100x30 with the five default statuses: columns are
// 20 cells wide, the column area spans rows 1..28, and the first card
// of each column occupies rows 2..3.
func newTestModel(t *testing.T, source Source, options Options) Model {
	t.Helper()
	model := NewModel(source, options)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func apply(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	return updated.(Model), cmd
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{Action: action, Button: button, X: x, Y: y}
}

func TestDragIssuesExactlyOneUpdate(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	// Press on job-001 in Applied (column 0), drag to Offer (column 2).
	model, cmd := apply(t, model, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 2))
	if cmd != nil {
		t.Fatal("press should not dispatch anything")
	}
	model, _ = apply(t, model, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 50, 10))
	if !model.drag.Dragging() {
		t.Fatal("motion past the activation distance should promote to a drag")
	}
	model, cmd = apply(t, model, mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 50, 10))
	if cmd == nil {
		t.Fatal("release over another column should dispatch a transition")
	}

	message := cmd()
	result, ok := message.(mutationResultMsg)
	if !ok {
		t.Fatalf("command produced %T, expected mutationResultMsg", message)
	}
	if result.err != nil {
		t.Fatalf("transition failed: %v", result.err)
	}

	if len(source.updates) != 1 {
		t.Fatalf("recorded %d updates, expected exactly 1", len(source.updates))
	}
	if source.updates[0] != (recordedUpdate{jobID: "job-001", status: "Offer"}) {
		t.Errorf("update = %+v, expected job-001 to Offer", source.updates[0])
	}
}

// Terminals without SGR mouse report releases with Button=None (the
// X10 fallback encoding). The drop must still resolve.
func TestReleaseWithoutButtonEndsDrag(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 2))
	model, _ = apply(t, model, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 50, 10))
	model, cmd := apply(t, model, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 50, 10))

	if model.drag.Dragging() {
		t.Fatal("session should be idle after release")
	}
	if cmd == nil {
		t.Fatal("buttonless release over another column should dispatch a transition")
	}
	if message := cmd(); message.(mutationResultMsg).err != nil {
		t.Fatalf("transition failed: %v", message.(mutationResultMsg).err)
	}
	if len(source.updates) != 1 {
		t.Fatalf("recorded %d updates, expected exactly 1", len(source.updates))
	}
	if source.updates[0] != (recordedUpdate{jobID: "job-001", status: "Offer"}) {
		t.Errorf("update = %+v, expected job-001 to Offer", source.updates[0])
	}
}

func TestDropOnOwnColumnIsNoOp(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 2))
	model, _ = apply(t, model, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 5, 15))
	_, cmd := apply(t, model, mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 5, 15))

	if cmd != nil {
		t.Error("drop over the origin column should dispatch nothing")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates, expected none", len(source.updates))
	}
}

func TestClickSelectsWithoutDragging(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	// Click on job-003 in Interview (column 1): press and release
	// with travel below the activation distance.
	model, _ = apply(t, model, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 22, 2))
	model, _ = apply(t, model, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 23, 2))
	model, cmd := apply(t, model, mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 23, 2))

	if cmd != nil {
		t.Error("a click should not dispatch a transition")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates for a click", len(source.updates))
	}
	if model.selectedID != "job-003" {
		t.Errorf("selectedID = %q, expected job-003", model.selectedID)
	}
	if model.focusColumn != 1 {
		t.Errorf("focusColumn = %d, expected 1", model.focusColumn)
	}
	if len(source.selected) != 1 || source.selected[0] != "job-003" {
		t.Errorf("selector calls = %v, expected [job-003]", source.selected)
	}
}

func TestReleaseOutsideZonesIsNoOp(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 2))
	model, _ = apply(t, model, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 50, 29))
	// Row 29 is the status bar, outside every column zone.
	_, cmd := apply(t, model, mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 50, 29))

	if cmd != nil {
		t.Error("release outside all zones should dispatch nothing")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates, expected none", len(source.updates))
	}
}

func TestKeyboardMoveSharesResolutionPath(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	// Selection starts on job-001 in Applied. Pick up, retarget one
	// column right, drop.
	model, _ = apply(t, model, keyPress('m'))
	if model.pending == nil {
		t.Fatal("pick up should start a pending move")
	}
	model, _ = apply(t, model, keyPress('l'))
	if model.pending.targetColumn != 1 {
		t.Fatalf("targetColumn = %d, expected 1", model.pending.targetColumn)
	}
	model, cmd := apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("drop should dispatch a transition")
	}
	cmd()

	if len(source.updates) != 1 {
		t.Fatalf("recorded %d updates, expected exactly 1", len(source.updates))
	}
	if source.updates[0] != (recordedUpdate{jobID: "job-001", status: "Interview"}) {
		t.Errorf("update = %+v, expected job-001 to Interview", source.updates[0])
	}
	if model.pending != nil {
		t.Error("pending move should be cleared after drop")
	}
}

func TestKeyboardDropOnOriginIsNoOp(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('m'))
	_, cmd := apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("dropping on the origin column should dispatch nothing")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates, expected none", len(source.updates))
	}
}

func TestKeyboardMoveCancel(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('m'))
	model, _ = apply(t, model, keyPress('l'))
	model, _ = apply(t, model, tea.KeyMsg{Type: tea.KeyEscape})

	if model.pending != nil {
		t.Error("escape should abandon the pending move")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates after cancel", len(source.updates))
	}
}

func TestEnterWithoutPendingMoveNotifiesSelector(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	_, cmd := apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("enter without a pending move should dispatch nothing")
	}
	if len(source.selected) != 1 || source.selected[0] != model.selectedID {
		t.Errorf("selector notified with %v, expected [%s]", source.selected, model.selectedID)
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates, expected none", len(source.updates))
	}
}

func TestRejectedTransitionLeavesBoardUnchanged(t *testing.T) {
	source := testBoardSource()
	source.err = errors.New("store rejected the move")
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, 2))
	model, _ = apply(t, model, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 50, 10))
	model, cmd := apply(t, model, mouse(tea.MouseActionRelease, tea.MouseButtonLeft, 50, 10))
	if cmd == nil {
		t.Fatal("release should still dispatch the attempt")
	}

	model, fade := apply(t, model, cmd())
	if model.notice == "" {
		t.Error("failed transition should surface a notice")
	}
	if fade == nil {
		t.Error("notice should schedule its own fade")
	}

	// The board never applied the move locally, so the card is still
	// in its origin column.
	applied := model.buckets["Applied"]
	found := false
	for _, entry := range applied {
		if entry.ID == "job-001" {
			found = true
		}
	}
	if !found {
		t.Error("job-001 left the Applied column despite the rejection")
	}
	if len(model.buckets["Offer"]) != 0 {
		t.Error("Offer column gained a card despite the rejection")
	}
}

func TestSearchNarrowsColumns(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('/'))
	if model.focusRegion != FocusFilter {
		t.Fatal("/ should focus the search bar")
	}
	for _, r := range "google" {
		model, _ = apply(t, model, keyPress(r))
	}

	if len(model.buckets["Applied"]) != 1 || model.buckets["Applied"][0].ID != "job-002" {
		t.Errorf("Applied bucket = %+v, expected only job-002", model.buckets["Applied"])
	}
	if len(model.buckets["Interview"]) != 0 {
		t.Errorf("Interview bucket should be empty under the search")
	}

	// The header keeps summarizing the whole collection.
	if model.stats.Total != 3 {
		t.Errorf("stats total = %d, expected 3", model.stats.Total)
	}
}

func TestClearAllResetsSearchAndSort(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('/'))
	for _, r := range "goo" {
		model, _ = apply(t, model, keyPress(r))
	}
	model, _ = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = apply(t, model, keyPress('s'))
	model, _ = apply(t, model, keyPress('S'))

	model, _ = apply(t, model, keyPress('c'))

	if model.filter.Input != "" {
		t.Errorf("filter input = %q after reset", model.filter.Input)
	}
	if model.sortKey != board.DefaultSortKey {
		t.Errorf("sortKey = %q after reset, expected %q", model.sortKey, board.DefaultSortKey)
	}
	if model.sortDirection != board.DefaultDirection {
		t.Errorf("direction = %q after reset, expected %q", model.sortDirection, board.DefaultDirection)
	}
	if len(model.buckets["Applied"]) != 2 {
		t.Errorf("Applied bucket has %d cards after reset, expected 2", len(model.buckets["Applied"]))
	}
}

func TestSortCycleOrder(t *testing.T) {
	sequence := []board.SortKey{
		board.SortCompany, board.SortTitle, board.SortResumeFit, board.SortDateAdded,
	}
	current := board.SortDateAdded
	for _, expected := range sequence {
		current = nextSortKey(current)
		if current != expected {
			t.Fatalf("nextSortKey = %q, expected %q", current, expected)
		}
	}
}

func TestReadOnlyBlocksMoves(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{ReadOnly: true})

	model, _ = apply(t, model, keyPress('m'))
	if model.pending != nil {
		t.Error("read-only board should refuse to pick up a card")
	}
	if model.notice == "" {
		t.Error("read-only refusal should surface a notice")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates on a read-only board", len(source.updates))
	}
}

func TestSourceWithoutMutatorIsReadOnly(t *testing.T) {
	source := NewIndexSource(job.DefaultStatuses())
	source.Put("job-001", job.Content{Company: "Stripe", Status: "Applied", DateAdded: 1})

	model := newTestModel(t, source, Options{})
	if !model.readOnly {
		t.Error("a source without Mutator should render the board read-only")
	}
}

func TestSourceEventRecomputesProjection(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	// Simulate an external writer moving job-003 to Offer: the store
	// changes first, then the event arrives.
	content, _ := source.Get("job-003")
	content.Status = "Offer"
	source.IndexSource.Put("job-003", content)

	model, cmd := apply(t, model, sourceEventMsg{event: Event{
		Kind: EventPut, JobID: "job-003", Content: content,
	}})
	if cmd == nil {
		t.Error("source event should re-listen and start the heat tick")
	}

	if len(model.buckets["Interview"]) != 0 {
		t.Error("job-003 still grouped under Interview after the event")
	}
	offer := model.buckets["Offer"]
	if len(offer) != 1 || offer[0].ID != "job-003" {
		t.Errorf("Offer bucket = %+v, expected [job-003]", offer)
	}
}

func TestStatusDropdownSameStatusIsNoOp(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('t'))
	if model.focusRegion != FocusDropdown || model.activeDropdown == nil {
		t.Fatal("t should open the status dropdown")
	}
	// Cursor starts on the card's current status; selecting it must
	// not dispatch anything.
	_, cmd := apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("choosing the current status should dispatch nothing")
	}
	if len(source.updates) != 0 {
		t.Errorf("recorded %d updates, expected none", len(source.updates))
	}
}

func TestStatusDropdownMove(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('t'))
	model, _ = apply(t, model, keyPress('j'))
	model, cmd := apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("choosing a different status should dispatch a transition")
	}
	cmd()

	if len(source.updates) != 1 {
		t.Fatalf("recorded %d updates, expected 1", len(source.updates))
	}
	if source.updates[0] != (recordedUpdate{jobID: "job-001", status: "Interview"}) {
		t.Errorf("update = %+v, expected job-001 to Interview", source.updates[0])
	}
	if model.activeDropdown != nil || model.focusRegion != FocusBoard {
		t.Error("dropdown should close after selection")
	}
}

func TestFinderJump(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	model, _ = apply(t, model, keyPress('f'))
	if model.focusRegion != FocusFinder {
		t.Fatal("f should open the finder")
	}
	for _, r := range "amaz" {
		model, _ = apply(t, model, keyPress(r))
	}
	model, _ = apply(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.finder != nil {
		t.Error("finder should close on jump")
	}
	if model.selectedID != "job-003" {
		t.Errorf("selectedID = %q after jump, expected job-003", model.selectedID)
	}
	if model.focusColumn != 1 {
		t.Errorf("focusColumn = %d after jump, expected Interview (1)", model.focusColumn)
	}
}

func TestSelectionFollowsJobAcrossColumns(t *testing.T) {
	source := testBoardSource()
	model := newTestModel(t, source, Options{})

	if model.selectedID != "job-001" {
		t.Fatalf("initial selection = %q, expected job-001", model.selectedID)
	}

	content, _ := source.Get("job-001")
	content.Status = "Offer"
	source.IndexSource.Put("job-001", content)
	model, _ = apply(t, model, sourceEventMsg{event: Event{
		Kind: EventPut, JobID: "job-001", Content: content,
	}})

	if model.selectedID != "job-001" {
		t.Errorf("selection lost across recompute: %q", model.selectedID)
	}
	if model.focusColumn != 2 {
		t.Errorf("focusColumn = %d, expected to follow the card to Offer (2)", model.focusColumn)
	}
}
