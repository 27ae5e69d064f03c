// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/jobdeck/lib/board"
	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// View implements tea.Model. Layout, top to bottom: one chrome line
// (progress header, replaced by the search bar while searching), the
// status columns, and the status bar. Overlays splice in last so they
// sit above everything.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}
	if model.stats.Total == 0 && model.filter.Input == "" {
		return model.renderEmptyState()
	}

	chrome := model.filter.View(model.theme, model.width)
	if chrome == "" {
		chrome = renderHeader(
			model.theme, model.segments, model.archivedCount,
			model.stats.Total, model.width)
	}

	hover := model.hoverStatus()
	now := time.Now()
	columns := make([]string, 0, len(model.statuses))
	for index, status := range model.statuses {
		columns = append(columns, renderColumn(model.theme, columnContext{
			Status:       status,
			StatusColor:  model.theme.StatusColor(status, index),
			Entries:      model.buckets[status.Name],
			Width:        model.columnWidth(index),
			Height:       model.columnAreaHeight(),
			ScrollOffset: model.scrollOffsets[status.Name],
			Focused:      index == model.focusColumn,
			DropTarget:   hover != "" && hover == status.Name,
			SelectedID:   model.selectedID,
			Query:        model.filter.Input,
			Heat:         model.heatTracker,
			Now:          now,
		}))
	}

	view := chrome + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, columns...) + "\n" +
		model.renderStatusBar()

	if model.activeDropdown != nil {
		view = tui.SpliceOverlay(view,
			model.activeDropdown.Render(model.theme),
			model.activeDropdown.AnchorX, model.activeDropdown.AnchorY)
	}
	if model.finder != nil {
		lines := model.finder.Render(model.theme, model.width)
		anchorX := (model.width - lipgloss.Width(lines[0])) / 2
		anchorX, anchorY := tui.ClampAnchor(
			anchorX, 3, lipgloss.Width(lines[0]), len(lines),
			model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	if model.drag.Dragging() {
		if entry, ok := model.draggedEntry(); ok {
			pointerX, pointerY := model.drag.Pointer()
			ghost := renderGhost(model.theme, entry)
			anchorX, anchorY := tui.ClampAnchor(
				pointerX+1, pointerY+1, lipgloss.Width(ghost[0]), 1,
				model.width, model.height)
			view = tui.SpliceOverlay(view, ghost, anchorX, anchorY)
		}
	}

	return view
}

// hoverStatus returns the column a gesture currently targets: the
// drop candidate under an active drag's pointer, or the keyboard
// move's target column.
func (model Model) hoverStatus() string {
	if model.drag.Dragging() {
		pointerX, pointerY := model.drag.Pointer()
		if status, ok := model.zones.ResolveDrop(pointerX, pointerY); ok {
			return status
		}
		return ""
	}
	if model.pending != nil {
		return model.statuses[model.pending.targetColumn].Name
	}
	return ""
}

// draggedEntry returns the snapshot entry for the job under drag.
func (model Model) draggedEntry() (jobindex.Entry, bool) {
	jobID := model.drag.JobID()
	if jobID == "" {
		return jobindex.Entry{}, false
	}
	content, ok := model.source.Get(jobID)
	if !ok {
		return jobindex.Entry{}, false
	}
	return jobindex.Entry{ID: jobID, Content: content}, true
}

// renderStatusBar produces the bottom line: a transient notice when
// set, otherwise the context-sensitive key help and sort indicator.
func (model Model) renderStatusBar() string {
	if model.notice != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.GradeF).
			Width(model.width).
			Render(" " + model.notice)
	}

	var help string
	switch {
	case model.pending != nil:
		help = " h/l target column · Enter drop · Esc cancel"
	case model.focusRegion == FocusFilter:
		help = " type to search · Enter confirm · Esc clear"
	case model.focusRegion == FocusDropdown:
		help = " j/k choose status · Enter apply · Esc dismiss"
	case model.focusRegion == FocusFinder:
		help = " type to find · ↑/↓ choose · Enter jump · Esc close"
	default:
		help = " h/l column · j/k card · m move · t status · / search · s sort · f find · q quit"
	}

	sortIndicator := fmt.Sprintf("%s %s ", sortKeyLabel(model.sortKey),
		directionArrow(model.sortDirection))
	if model.readOnly {
		sortIndicator = "read-only · " + sortIndicator
	}
	if model.ungrouped > 0 {
		sortIndicator = fmt.Sprintf("%d unstaged · ", model.ungrouped) + sortIndicator
	}

	gap := model.width - lipgloss.Width(help) - lipgloss.Width(sortIndicator)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(
		help + strings.Repeat(" ", gap) + sortIndicator)
}

// renderEmptyState fills the screen with a call to action for a brand
// new pipeline.
func (model Model) renderEmptyState() string {
	lines := []string{
		lipgloss.NewStyle().
			Foreground(model.theme.HeaderForeground).
			Bold(true).
			Render("No applications tracked yet"),
		"",
		lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("Press a to add your first job, or point jobdeck at a jobs file."),
	}
	return lipgloss.Place(model.width, model.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// sortKeyLabel maps a sort key to its status bar label.
func sortKeyLabel(key board.SortKey) string {
	switch key {
	case board.SortCompany:
		return "company"
	case board.SortTitle:
		return "title"
	case board.SortResumeFit:
		return "fit"
	default:
		return "date"
	}
}

// directionArrow maps a sort direction to its indicator glyph.
func directionArrow(direction board.Direction) string {
	if direction == board.Ascending {
		return "↑"
	}
	return "↓"
}
