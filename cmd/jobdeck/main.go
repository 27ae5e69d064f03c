// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// jobdeck is a terminal kanban board for a job application pipeline.
// It loads tracked applications from a JSONL file, watches it for
// changes via inotify (so scrapers and other tools writing the file
// show up live), and lets the user move applications between pipeline
// stages by drag and drop or keyboard.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/jobdeck/lib/board"
	"github.com/bureau-foundation/jobdeck/lib/boardui"
	"github.com/bureau-foundation/jobdeck/lib/config"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
	"github.com/bureau-foundation/jobdeck/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filePath string
	var configPath string
	var readOnly bool
	var logOutput string

	flagSet := pflag.NewFlagSet("jobdeck", pflag.ContinueOnError)
	flagSet.StringVar(&filePath, "file", "", "path to the jobs JSONL file (default: from config)")
	flagSet.StringVar(&configPath, "config", "", "path to the board config file (default: $JOBDECK_CONFIG)")
	flagSet.BoolVar(&readOnly, "read-only", false, "browse without writing status changes back to the file")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other arguments.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("jobdeck")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	logger, logCleanup, err := newLogger(logOutput)
	if err != nil {
		return err
	}
	defer logCleanup()

	configuration, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := configuration.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if filePath == "" {
		filePath = configuration.DataFile
	}
	statuses := configuration.OrderedStatuses()

	options := boardui.Options{
		ArchivedStatuses: configuration.ArchivedStatuses,
		SortKey:          board.SortKey(configuration.Defaults.SortKey),
		Direction:        board.Direction(configuration.Defaults.Direction),
		ReadOnly:         readOnly,
	}

	var source boardui.Source
	var cleanup func()
	if readOnly {
		source, cleanup, err = boardui.WatchJobsFile(filePath, statuses)
	} else {
		source, cleanup, err = boardui.OpenFileStore(filePath, statuses)
	}
	if err != nil {
		return fmt.Errorf("cannot load jobs from %s: %w", filePath, err)
	}
	defer cleanup()

	snapshot := source.Jobs()
	logger.Info("jobdeck starting",
		"file", filePath,
		"jobs", snapshot.Stats.Total,
		"statuses", strings.Join(job.StatusNames(statuses), ","),
		"read_only", readOnly,
	)

	model := boardui.NewModel(source, options)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	return err
}

// newLogger builds the process logger. With --log-output, records go
// to a JSON file for post-mortem debugging; otherwise logging is
// discarded at the handler level, since stderr belongs to the
// alt-screen TUI.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		})
		return slog.New(handler), func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `jobdeck: interactive kanban board for a job application pipeline.

Loads applications from a JSONL file (one JSON object per line) and
groups them into status columns. The file is watched for changes, so
external tools appending or editing jobs show up live. Moving a card
writes the status change back with an atomic file replace.

Board keys: h/l switch column, j/k move within a column, m picks a
card up and Enter drops it, t opens a status menu, / searches, s
cycles the sort key, f opens the fuzzy finder, q quits. Cards can
also be dragged with the mouse.

Usage:
  jobdeck [flags]

Examples:
  # Open the board with the configured jobs file
  jobdeck

  # Open a specific file without writing changes back
  jobdeck --file exports/jobs.jsonl --read-only

  # Use a custom status registry
  jobdeck --config boards/startup-pipeline.yaml

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
