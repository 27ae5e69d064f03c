// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the pipeline board TUI.
type KeyMap struct {
	// Navigation. Left/Right move between status columns; while a
	// card is picked up they retarget the pending move instead.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// Card movement.
	PickUp key.Binding // Pick up the selected card (enter move mode).
	Drop   key.Binding // Drop the picked-up card on the focused column.
	Cancel key.Binding // Abandon the pending move.

	// Status dropdown (alternative to pick-up-and-drop).
	StatusMenu key.Binding

	// Filter and sort.
	FilterActivate key.Binding
	FilterClear    key.Binding // Clear filter text and exit filter mode.
	SortCycle      key.Binding // Cycle sort key: date, company, title, fit.
	SortFlip       key.Binding // Reverse sort direction.
	ClearAll       key.Binding // Reset filter and sort to defaults at once.

	// Overlays and actions.
	Finder key.Binding // Fuzzy job finder.
	Select key.Binding // Confirm selection of the highlighted card.
	AddJob key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (h/j/k/l) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "column left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "column right"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	PickUp: key.NewBinding(
		key.WithKeys("m", " "),
		key.WithHelp("m", "move card"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "drop"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	StatusMenu: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "set status"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear search"),
	),
	SortCycle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	SortFlip: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "reverse"),
	),
	ClearAll: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "reset view"),
	),
	Finder: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "find"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	AddJob: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add job"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
