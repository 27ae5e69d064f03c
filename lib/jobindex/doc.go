// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jobindex provides the in-memory job collection that backs a
// jobdeck store. It is the store side of the board's Source contract:
// the index owns the collection, mutates on Put/Remove, and hands the
// board ordered snapshots plus aggregate stats.
//
// The index keeps a by-status secondary index for stats and exposes
// [Index.List] in reverse-chronological DateAdded order, which is the
// board's default sort before the filter/sort engine reorders.
//
// Not safe for concurrent use; callers wrap it in a lock (see the
// boardui IndexSource).
package jobindex
