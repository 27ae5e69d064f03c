// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package boardui implements the jobdeck pipeline board: a terminal
// kanban view that holds job applications in ordered status columns,
// resolves drag-and-drop (and keyboard move) gestures into status
// transitions, and maintains a live filtered/sorted projection of the
// job collection. Built on bubbletea (Elm architecture).
//
// The board owns only transient UI state: search text, sort choice,
// the active drag session. The job collection belongs to a store
// behind the [Source] interface; transitions go through the optional
// [Mutator] interface and come back as events on the subscribe
// stream, which is the single source of truth. The board never
// mutates its snapshot, so a rejected transition needs no rollback:
// the card simply renders in its prior column on the next recompute.
//
// Data flow:
//
//	[jobs JSONL file / in-memory index]
//	        | (Source interface)
//	    [Model] <- bubbletea event loop
//	        |            \
//	  [board engines]   [transition requests via Mutator]
//	        |
//	  [terminal output]
//
// The pure computation (filter/sort projection, status grouping,
// progress segments, drop resolution) lives in lib/board; this
// package wires those engines to terminal events and rendering.
package boardui
