// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package board implements the pipeline board's pure computation
// engines: the filter/sort projection, the status grouping index, the
// progress segment projector, and the drag-resolution state machine
// with its geometric drop-zone registry.
//
// Nothing here touches a terminal or a store. The boardui package
// wires these engines to bubbletea events; tests drive them headless.
// All functions are total over their inputs: empty collections,
// unmatched statuses, and out-of-bounds drop points produce empty or
// no-op results rather than errors.
package board
