// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package job defines the data model shared between the jobdeck board
// and its stores: tracked job applications, the optional analysis
// attached to them, and the status registry that defines the pipeline
// columns.
//
// A job's Status field is a plain string matched against Status.Name.
// The registry gives each status a stable ID alongside its display
// name so settings tooling has an identity to hang renames on, but
// the board matches by name at render time and treats jobs whose
// status resolves to no registry entry as a data-integrity condition
// rather than an error (they are excluded from every column).
//
// The JSONL line format ([FileEntry]) is the interchange format with
// the file-backed store: one JSON object per line, one line per job.
package job
