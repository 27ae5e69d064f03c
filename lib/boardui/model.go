// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/jobdeck/lib/board"
	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// FocusRegion identifies which part of the UI receives keyboard input.
type FocusRegion int

const (
	// FocusBoard routes keys to column and card navigation.
	FocusBoard FocusRegion = iota
	// FocusFilter routes keys to the search bar.
	FocusFilter
	// FocusDropdown routes keys to the status dropdown overlay.
	FocusDropdown
	// FocusFinder routes keys to the fuzzy job finder overlay.
	FocusFinder
)

// sourceEventMsg wraps a Source Event for delivery through the
// bubbletea message loop.
type sourceEventMsg struct {
	event Event
}

// heatTickMsg is sent periodically to drive the heat decay animation.
// While any cards are hot, a new tick is scheduled after each one.
type heatTickMsg struct{}

// mutationResultMsg is sent when an asynchronous status update
// completes. On success, err is nil and the subscribe stream delivers
// the change. On error, err is displayed in the status bar; the board
// state was never touched, so the card simply stays where it was.
type mutationResultMsg struct {
	err error
}

// noticeFadeMsg is sent after a delay to clear the status bar notice.
type noticeFadeMsg struct{}

// noticeFadeDelay is how long status bar notices stay visible.
const noticeFadeDelay = 3 * time.Second

// pendingMove is an in-flight keyboard card move: the card is picked
// up and left/right retarget the destination column until drop or
// cancel. The resolution path is shared with pointer drags: drop
// synthesizes a point inside the target column and runs it through
// the same zone registry.
type pendingMove struct {
	jobID        string
	originStatus string
	targetColumn int
}

// Options configures a board model beyond its data source.
type Options struct {
	// ArchivedStatuses are status names excluded from the progress
	// bar segments. Defaults to job.DefaultArchivedStatuses().
	ArchivedStatuses []string

	// SortKey and Direction are the initial (and reset-target) sort
	// settings. Zero values mean the package defaults.
	SortKey   board.SortKey
	Direction board.Direction

	// ReadOnly disables status moves even when the source implements
	// Mutator.
	ReadOnly bool
}

// Model is the top-level bubbletea model for the pipeline board.
type Model struct {
	source Source
	theme  tui.Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	readOnly bool

	// Status registry, sorted by column order. archivedStatuses is
	// the progress bar deny list.
	statuses         []job.Status
	archivedStatuses []string

	// View configuration: search and sort, plus the defaults the
	// reset action restores.
	filter           FilterModel
	sortKey          board.SortKey
	sortDirection    board.Direction
	defaultSortKey   board.SortKey
	defaultDirection board.Direction

	// Derived projection, recomputed on every data or view change.
	// entries is the raw snapshot; projected is filtered and sorted;
	// buckets groups the projection by status; segments and
	// archivedCount summarize the full collection for the header.
	entries       []jobindex.Entry
	stats         jobindex.Stats
	projected     []jobindex.Entry
	buckets       map[string][]jobindex.Entry
	segments      []board.Segment
	archivedCount int
	ungrouped     int // Jobs whose status is outside the registry.

	// Selection. selectedID is stable across recomputes; focusColumn
	// is the column receiving keyboard navigation.
	focusColumn   int
	selectedID    string
	scrollOffsets map[string]int // Per status name, in cards.

	// Drag and drop. drag is the pointer gesture session; zones is
	// rebuilt whenever layout changes; pending is the keyboard move.
	drag    board.Session
	zones   board.ZoneRegistry
	pending *pendingMove

	focusRegion    FocusRegion
	activeDropdown *tui.DropdownOverlay
	finder         *FinderModel

	// notice is briefly displayed in the status bar (mutation errors,
	// read-only warnings).
	notice string

	// Live update animation.
	heatTracker  *tui.HeatTracker
	eventChannel <-chan Event
	tickRunning  bool
}

// NewModel creates a board model connected to the given job source.
func NewModel(source Source, options Options) Model {
	archived := options.ArchivedStatuses
	if archived == nil {
		archived = job.DefaultArchivedStatuses()
	}
	sortKey := options.SortKey
	if sortKey == "" {
		sortKey = board.DefaultSortKey
	}
	direction := options.Direction
	if direction == "" {
		direction = board.DefaultDirection
	}

	_, mutable := source.(Mutator)

	model := Model{
		source:           source,
		theme:            tui.DefaultTheme,
		keys:             DefaultKeyMap,
		readOnly:         options.ReadOnly || !mutable,
		statuses:         source.Statuses(),
		archivedStatuses: archived,
		sortKey:          sortKey,
		sortDirection:    direction,
		defaultSortKey:   sortKey,
		defaultDirection: direction,
		scrollOffsets:    make(map[string]int),
		heatTracker:      tui.NewHeatTracker(),
		eventChannel:     source.Subscribe(),
	}

	model.recompute()

	// Initialize stable selection on the first card of the first
	// non-empty column.
	for index, status := range model.statuses {
		if bucket := model.buckets[status.Name]; len(bucket) > 0 {
			model.focusColumn = index
			model.selectedID = bucket[0].ID
			break
		}
	}

	return model
}

// Init implements tea.Model. Starts listening for source events.
func (model Model) Init() tea.Cmd {
	if model.eventChannel == nil {
		return nil
	}
	return listenForSourceEvent(model.eventChannel)
}

// listenForSourceEvent returns a tea.Cmd that blocks until an event
// arrives on the source channel, then delivers it as a sourceEventMsg.
func listenForSourceEvent(channel <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-channel
		if !ok {
			return nil
		}
		return sourceEventMsg{event: event}
	}
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles layout changes.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.focusRegion == FocusFilter {
			return model.handleFilterKeys(message)
		}
		if model.focusRegion == FocusDropdown {
			return model.handleDropdownKeys(message)
		}
		if model.focusRegion == FocusFinder {
			return model.handleFinderKeys(message)
		}
		return model.handleBoardKeys(message)

	case tea.MouseMsg:
		if cmd := model.handleMouse(message); cmd != nil {
			return model, cmd
		}

	case mutationResultMsg:
		if message.err != nil {
			model.notice = message.err.Error()
			return model, scheduleNoticeFade()
		}

	case noticeFadeMsg:
		model.notice = ""

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.clampAllScrolls()
		model.rebuildZones()

	case sourceEventMsg:
		return model.handleSourceEvent(message)

	case heatTickMsg:
		return model.handleHeatTick()
	}
	return model, nil
}

// handleBoardKeys processes keystrokes while the board has focus.
func (model Model) handleBoardKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Cancel):
		switch {
		case model.pending != nil:
			model.pending = nil
		case model.filter.Input != "":
			model.filter.Clear()
			model.recompute()
		}

	case key.Matches(message, model.keys.Left):
		model.moveHorizontal(-1)

	case key.Matches(message, model.keys.Right):
		model.moveHorizontal(1)

	case key.Matches(message, model.keys.Up):
		model.moveVertical(-1)

	case key.Matches(message, model.keys.Down):
		model.moveVertical(1)

	case key.Matches(message, model.keys.Home):
		model.moveToRow(0)

	case key.Matches(message, model.keys.End):
		model.moveToRow(len(model.focusEntries()) - 1)

	case key.Matches(message, model.keys.PickUp):
		model.pickUpSelected()

	case key.Matches(message, model.keys.Drop) && model.pending != nil:
		return model, model.dropPending()

	case key.Matches(message, model.keys.Select):
		if model.selectedID != "" {
			if selector, ok := model.source.(Selector); ok {
				selector.SelectJob(model.selectedID)
			}
		}

	case key.Matches(message, model.keys.StatusMenu):
		model.openStatusDropdown()

	case key.Matches(message, model.keys.FilterActivate):
		model.focusRegion = FocusFilter
		model.filter.Active = true

	case key.Matches(message, model.keys.SortCycle):
		model.sortKey = nextSortKey(model.sortKey)
		model.recompute()

	case key.Matches(message, model.keys.SortFlip):
		if model.sortDirection == board.Ascending {
			model.sortDirection = board.Descending
		} else {
			model.sortDirection = board.Ascending
		}
		model.recompute()

	case key.Matches(message, model.keys.ClearAll):
		// Reset search and sort together so no intermediate
		// projection is observable.
		model.filter.Clear()
		model.sortKey = model.defaultSortKey
		model.sortDirection = model.defaultDirection
		model.recompute()

	case key.Matches(message, model.keys.Finder):
		model.openFinder()

	case key.Matches(message, model.keys.AddJob):
		if opener, ok := model.source.(Opener); ok {
			if err := opener.OpenAddJob(); err != nil {
				model.notice = err.Error()
				return model, scheduleNoticeFade()
			}
		}
	}
	return model, nil
}

// handleFilterKeys processes keystrokes while the search bar has
// focus. Regular characters go to the input; Esc clears or exits;
// Enter confirms and returns focus to the board.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		// ctrl+c always quits; 'q' is a regular character here.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		model.filter.HandleRune('q')
		model.recompute()

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.recompute()
		} else {
			model.filter.Active = false
		}
		model.focusRegion = FocusBoard

	case message.Type == tea.KeyEnter:
		model.filter.Active = false
		model.focusRegion = FocusBoard

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.recompute()
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, r := range message.Runes {
			model.filter.HandleRune(r)
		}
		model.recompute()
	}
	return model, nil
}

// handleDropdownKeys processes keystrokes while the status dropdown
// is open.
func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		model.dismissDropdown()

	case key.Matches(message, model.keys.Up):
		model.activeDropdown.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.activeDropdown.MoveDown()

	case message.Type == tea.KeyEnter:
		option := model.activeDropdown.Selected()
		jobID := model.activeDropdown.JobID
		model.dismissDropdown()
		return model, model.applyStatusSelection(jobID, option.Value)

	case message.Type == tea.KeyEscape:
		model.dismissDropdown()
	}
	return model, nil
}

// handleFinderKeys processes keystrokes while the fuzzy finder is
// open.
func (model Model) handleFinderKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case message.Type == tea.KeyEscape:
		model.closeFinder()

	case message.Type == tea.KeyEnter:
		if entry, ok := model.finder.Selected(); ok {
			model.closeFinder()
			model.jumpToJob(entry)
		}

	case message.Type == tea.KeyUp:
		model.finder.MoveUp()

	case message.Type == tea.KeyDown:
		model.finder.MoveDown()

	case message.Type == tea.KeyBackspace:
		if len(model.finder.Input) > 0 {
			runes := []rune(model.finder.Input)
			model.finder.Input = string(runes[:len(runes)-1])
			model.finder.Refresh(model.entries)
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		model.finder.Input += string(message.Runes)
		model.finder.Refresh(model.entries)
	}
	return model, nil
}

// handleMouse processes pointer events: wheel scrolling, card press,
// drag motion, and release resolution.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	// The dropdown captures clicks while open.
	if model.activeDropdown != nil && message.Action == tea.MouseActionPress {
		if model.activeDropdown.Contains(message.X, message.Y) {
			if index := model.activeDropdown.OptionAtY(message.Y); index >= 0 {
				model.activeDropdown.Cursor = index
				option := model.activeDropdown.Selected()
				jobID := model.activeDropdown.JobID
				model.dismissDropdown()
				return model.applyStatusSelection(jobID, option.Value)
			}
		}
		model.dismissDropdown()
		return nil
	}
	if model.focusRegion == FocusFinder && message.Action == tea.MouseActionPress {
		model.closeFinder()
		return nil
	}

	// Resolve release before switching on Button: terminals without
	// SGR mouse report every release as Button=None, so the gesture
	// must end on any release regardless of the reported button.
	if message.Action == tea.MouseActionRelease {
		wasDragging := model.drag.Dragging()
		transition, ok := model.drag.Drop(message.X, message.Y, &model.zones)
		if ok {
			return model.updateStatusCmd(transition)
		}
		// A press and release without travel is a click: the card
		// was selected at press time; notify the selector.
		clickButton := message.Button == tea.MouseButtonLeft ||
			message.Button == tea.MouseButtonNone
		if !wasDragging && clickButton && model.selectedID != "" {
			if selector, ok := model.source.(Selector); ok {
				selector.SelectJob(model.selectedID)
			}
		}
		return nil
	}

	switch message.Button {
	case tea.MouseButtonWheelUp:
		model.scrollColumnAt(message.X, -1)

	case tea.MouseButtonWheelDown:
		model.scrollColumnAt(message.X, 1)

	case tea.MouseButtonLeft:
		switch message.Action {
		case tea.MouseActionPress:
			if zone, ok := model.zones.CardAt(message.X, message.Y); ok {
				model.drag.Press(zone.JobID, zone.Status, message.X, message.Y)
				model.selectCard(zone.JobID, zone.Status)
			}

		case tea.MouseActionMotion:
			model.drag.Move(message.X, message.Y)
		}

	case tea.MouseButtonNone:
		if message.Action == tea.MouseActionMotion {
			model.drag.Move(message.X, message.Y)
		}

	case tea.MouseButtonRight:
		model.drag.Cancel()
	}
	return nil
}

// handleSourceEvent processes a live event from the source (job
// created, updated, or removed). Refreshes the projection, ignites
// the heat tracker, and schedules the animation tick if not already
// running.
func (model Model) handleSourceEvent(message sourceEventMsg) (tea.Model, tea.Cmd) {
	event := message.event
	now := time.Now()

	kind := tui.HeatPut
	if event.Kind == EventRemove {
		kind = tui.HeatRemove
	}
	model.heatTracker.Ignite(event.JobID, kind, now)

	// The source already has the change applied; a fresh snapshot
	// includes it.
	model.recompute()

	commands := []tea.Cmd{listenForSourceEvent(model.eventChannel)}
	if !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}
	return model, tea.Batch(commands...)
}

// handleHeatTick processes a heat animation tick. If any cards are
// still hot, schedules another tick; otherwise stops the timer.
func (model Model) handleHeatTick() (tea.Model, tea.Cmd) {
	if model.heatTracker.HasHot(time.Now()) {
		return model, scheduleHeatTick()
	}
	model.tickRunning = false
	return model, nil
}

// scheduleHeatTick returns a tea.Cmd that sends a heatTickMsg after
// the animation tick interval.
func scheduleHeatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// scheduleNoticeFade returns a tea.Cmd that clears the status bar
// notice after a delay.
func scheduleNoticeFade() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// recompute rebuilds the full projection pipeline from a fresh source
// snapshot: filter and sort, then group by status, then the progress
// segments. Runs on every data change, view change, and resize.
func (model *Model) recompute() {
	snapshot := model.source.Jobs()
	model.entries = snapshot.Entries
	model.stats = snapshot.Stats

	model.projected = board.Project(
		model.entries, model.filter.Input, model.sortKey, model.sortDirection)
	model.buckets = board.Group(model.projected, model.statuses)

	// The header summarizes the whole collection, not the filtered
	// view, so its segments come from an unfiltered grouping.
	fullBuckets := board.Group(model.entries, model.statuses)
	model.segments, model.archivedCount = board.ComputeSegments(
		model.statuses, fullBuckets, model.stats.Total, model.archivedStatuses)

	// Jobs with a status outside the registry have no column to live
	// in; surface the count so they do not vanish silently.
	model.ungrouped = board.Ungrouped(model.entries, model.statuses)

	model.restoreSelection()
	model.clampAllScrolls()
	model.rebuildZones()
}

// restoreSelection keeps the selection stable across recomputes: if
// the selected job is still in the projection, follow it (it may have
// changed column); otherwise fall back to the focus column's first
// visible card.
func (model *Model) restoreSelection() {
	if model.focusColumn >= len(model.statuses) {
		model.focusColumn = len(model.statuses) - 1
	}
	if model.selectedID != "" {
		if column, _, ok := model.findCard(model.selectedID); ok {
			model.focusColumn = column
			return
		}
	}
	entries := model.focusEntries()
	if len(entries) > 0 {
		offset := model.scrollOffsets[model.focusStatus().Name]
		if offset >= len(entries) {
			offset = len(entries) - 1
		}
		model.selectedID = entries[offset].ID
		return
	}
	model.selectedID = ""
}

// findCard locates a job in the grouped projection, returning its
// column index and row.
func (model *Model) findCard(jobID string) (column, row int, ok bool) {
	for columnIndex, status := range model.statuses {
		for rowIndex, entry := range model.buckets[status.Name] {
			if entry.ID == jobID {
				return columnIndex, rowIndex, true
			}
		}
	}
	return 0, 0, false
}

// focusStatus returns the status of the focused column.
func (model *Model) focusStatus() job.Status {
	if model.focusColumn < 0 || model.focusColumn >= len(model.statuses) {
		return job.Status{}
	}
	return model.statuses[model.focusColumn]
}

// focusEntries returns the cards in the focused column.
func (model *Model) focusEntries() []jobindex.Entry {
	return model.buckets[model.focusStatus().Name]
}

// moveHorizontal shifts the focused column. While a keyboard move is
// pending it retargets the move instead, which is the keyboard
// equivalent of hovering a drag over a column.
func (model *Model) moveHorizontal(delta int) {
	if model.pending != nil {
		target := model.pending.targetColumn + delta
		if target >= 0 && target < len(model.statuses) {
			model.pending.targetColumn = target
		}
		return
	}

	column := model.focusColumn + delta
	if column < 0 || column >= len(model.statuses) {
		return
	}

	// Carry the row position into the new column where possible.
	_, row, _ := model.findCard(model.selectedID)
	model.focusColumn = column
	entries := model.focusEntries()
	if len(entries) == 0 {
		model.selectedID = ""
		return
	}
	if row >= len(entries) {
		row = len(entries) - 1
	}
	model.selectedID = entries[row].ID
	model.ensureSelectionVisible()
}

// moveVertical shifts the selection within the focused column.
func (model *Model) moveVertical(delta int) {
	entries := model.focusEntries()
	if len(entries) == 0 {
		return
	}
	_, row, ok := model.findCard(model.selectedID)
	if !ok {
		row = 0
	} else {
		row += delta
	}
	if row < 0 {
		row = 0
	}
	if row >= len(entries) {
		row = len(entries) - 1
	}
	model.selectedID = entries[row].ID
	model.ensureSelectionVisible()
}

// moveToRow jumps the selection to an absolute row in the focused
// column.
func (model *Model) moveToRow(row int) {
	entries := model.focusEntries()
	if len(entries) == 0 {
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= len(entries) {
		row = len(entries) - 1
	}
	model.selectedID = entries[row].ID
	model.ensureSelectionVisible()
}

// selectCard sets the stable selection and focuses the card's column.
func (model *Model) selectCard(jobID, status string) {
	model.selectedID = jobID
	for index, candidate := range model.statuses {
		if candidate.Name == status {
			model.focusColumn = index
			break
		}
	}
}

// pickUpSelected begins a keyboard move of the selected card.
func (model *Model) pickUpSelected() {
	if model.selectedID == "" || model.pending != nil {
		return
	}
	if model.readOnly {
		model.notice = "read-only: cannot move jobs"
		return
	}
	model.pending = &pendingMove{
		jobID:        model.selectedID,
		originStatus: model.focusStatus().Name,
		targetColumn: model.focusColumn,
	}
}

// dropPending completes a keyboard move by synthesizing a pointer
// gesture through the same zone registry pointer drops use: press at
// the origin column's center, travel to the target column's center,
// release. Dropping on the origin column falls out as a no-op exactly
// like a pointer drop would.
func (model *Model) dropPending() tea.Cmd {
	pending := model.pending
	model.pending = nil

	originX, originY, ok := model.columnCenter(pending.originStatus)
	if !ok {
		return nil
	}
	targetX, targetY, ok := model.columnCenter(model.statuses[pending.targetColumn].Name)
	if !ok {
		return nil
	}

	var session board.Session
	session.Press(pending.jobID, pending.originStatus, originX, originY)
	session.Move(targetX, targetY)
	transition, ok := session.Drop(targetX, targetY, &model.zones)
	if !ok {
		return nil
	}
	return model.updateStatusCmd(transition)
}

// columnCenter returns a point guaranteed to lie inside the named
// column's drop zone.
func (model *Model) columnCenter(status string) (x, y int, ok bool) {
	for index, candidate := range model.statuses {
		if candidate.Name != status {
			continue
		}
		x = model.columnX(index) + model.columnWidth(index)/2
		y = 1 + model.columnAreaHeight()/2
		_, inside := model.zones.ColumnAt(x, y)
		return x, y, inside
	}
	return 0, 0, false
}

// openStatusDropdown opens the status menu for the selected card,
// anchored beside it.
func (model *Model) openStatusDropdown() {
	if model.selectedID == "" {
		return
	}
	if model.readOnly {
		model.notice = "read-only: cannot move jobs"
		return
	}

	options := make([]tui.DropdownOption, 0, len(model.statuses))
	cursor := 0
	current := ""
	if content, ok := model.source.Get(model.selectedID); ok {
		current = content.Status
	}
	for index, status := range model.statuses {
		options = append(options, tui.DropdownOption{Label: status.Name, Value: status.Name})
		if status.Name == current {
			cursor = index
		}
	}

	anchorX := model.columnX(model.focusColumn) + 2
	anchorY := 2
	if _, row, ok := model.findCard(model.selectedID); ok {
		offset := model.scrollOffsets[model.focusStatus().Name]
		anchorY = 2 + (row-offset)*CardHeight + 1
	}

	dropdown := &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		JobID:   model.selectedID,
	}
	dropdown.AnchorX, dropdown.AnchorY = tui.ClampAnchor(
		anchorX, anchorY, dropdown.Width(), len(options), model.width, model.height)

	model.activeDropdown = dropdown
	model.focusRegion = FocusDropdown
}

// dismissDropdown closes the status menu without applying anything.
func (model *Model) dismissDropdown() {
	model.activeDropdown = nil
	model.focusRegion = FocusBoard
}

// applyStatusSelection turns a dropdown choice into a status update.
// Choosing the card's current status is a no-op, the same guard drag
// resolution applies.
func (model *Model) applyStatusSelection(jobID, status string) tea.Cmd {
	content, ok := model.source.Get(jobID)
	if !ok || content.Status == status {
		return nil
	}
	return model.updateStatusCmd(board.Transition{JobID: jobID, ToStatus: status})
}

// updateStatusCmd dispatches a status transition to the source. The
// board never applies the change locally; the subscribe stream
// delivers the result, and on error the card simply never moved.
func (model *Model) updateStatusCmd(transition board.Transition) tea.Cmd {
	mutator, ok := model.source.(Mutator)
	if !ok || model.readOnly {
		model.notice = "read-only: cannot move jobs"
		return scheduleNoticeFade()
	}
	return func() tea.Msg {
		err := mutator.UpdateStatus(context.Background(), transition.JobID, transition.ToStatus)
		return mutationResultMsg{err: err}
	}
}

// openFinder opens the fuzzy job finder overlay.
func (model *Model) openFinder() {
	model.finder = &FinderModel{}
	model.finder.Refresh(model.entries)
	model.focusRegion = FocusFinder
}

// closeFinder dismisses the finder overlay.
func (model *Model) closeFinder() {
	model.finder = nil
	model.focusRegion = FocusBoard
}

// jumpToJob moves the selection to a job chosen in the finder. When a
// search is hiding the job, the search is cleared first so the jump
// always lands.
func (model *Model) jumpToJob(entry jobindex.Entry) {
	if _, _, ok := model.findCard(entry.ID); !ok && model.filter.Input != "" {
		model.filter.Clear()
		model.recompute()
	}
	column, _, ok := model.findCard(entry.ID)
	if !ok {
		model.notice = "job has an unknown status"
		return
	}
	model.focusColumn = column
	model.selectedID = entry.ID
	model.ensureSelectionVisible()
}

// nextSortKey cycles through the sort keys in display order.
func nextSortKey(current board.SortKey) board.SortKey {
	switch current {
	case board.SortDateAdded:
		return board.SortCompany
	case board.SortCompany:
		return board.SortTitle
	case board.SortTitle:
		return board.SortResumeFit
	default:
		return board.SortDateAdded
	}
}

// scrollColumnAt scrolls the column under the given X coordinate.
func (model *Model) scrollColumnAt(x, delta int) {
	for index := range model.statuses {
		if x >= model.columnX(index) && x < model.columnX(index)+model.columnWidth(index) {
			model.scrollColumn(index, delta)
			return
		}
	}
}

// scrollColumn adjusts one column's card offset, clamped to content.
func (model *Model) scrollColumn(index, delta int) {
	status := model.statuses[index].Name
	entries := model.buckets[status]
	visible := visibleCardCount(model.columnAreaHeight())
	maxOffset := len(entries) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := model.scrollOffsets[status] + delta
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	model.scrollOffsets[status] = offset
	model.rebuildZones()
}

// ensureSelectionVisible scrolls the focused column so the selected
// card is on screen.
func (model *Model) ensureSelectionVisible() {
	_, row, ok := model.findCard(model.selectedID)
	if !ok {
		return
	}
	status := model.focusStatus().Name
	visible := visibleCardCount(model.columnAreaHeight())
	if visible <= 0 {
		return
	}
	offset := model.scrollOffsets[status]
	if row < offset {
		offset = row
	}
	if row >= offset+visible {
		offset = row - visible + 1
	}
	model.scrollOffsets[status] = offset
	model.rebuildZones()
}

// clampAllScrolls re-clamps every column's offset after a resize or
// data change.
func (model *Model) clampAllScrolls() {
	for index := range model.statuses {
		model.scrollColumn(index, 0)
	}
}

// columnAreaHeight is the line count each column occupies, including
// its header row. One chrome line above, one status bar line below.
func (model *Model) columnAreaHeight() int {
	height := model.height - 2
	if height < 0 {
		return 0
	}
	return height
}

// columnWidth returns the footprint of a column; the last column
// absorbs the division remainder.
func (model *Model) columnWidth(index int) int {
	count := len(model.statuses)
	if count == 0 {
		return model.width
	}
	base := model.width / count
	if index == count-1 {
		return model.width - base*(count-1)
	}
	return base
}

// columnX returns the left edge of a column.
func (model *Model) columnX(index int) int {
	if len(model.statuses) == 0 {
		return 0
	}
	return (model.width / len(model.statuses)) * index
}

// rebuildZones re-registers the drop zones for the current layout.
// Must mirror the renderer's geometry exactly: zone hit testing is
// how pointer events find cards and columns.
func (model *Model) rebuildZones() {
	model.zones.Reset()
	if !model.ready {
		return
	}

	areaHeight := model.columnAreaHeight()
	visible := visibleCardCount(areaHeight)

	for index, status := range model.statuses {
		x := model.columnX(index)
		width := model.columnWidth(index)
		model.zones.AddColumn(status.Name, x, 1, width, areaHeight)

		entries := model.buckets[status.Name]
		offset := model.scrollOffsets[status.Name]
		for row := offset; row < len(entries) && row < offset+visible; row++ {
			y := 2 + (row-offset)*CardHeight
			model.zones.AddCard(entries[row].ID, status.Name, x, y, width-1, CardHeight-1)
		}
	}
}
