// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/jobdeck/lib/board"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// Config is the board configuration for jobdeck.
type Config struct {
	// DataFile is the jobs JSONL path. The --file flag overrides it.
	DataFile string `yaml:"data_file"`

	// Statuses is the pipeline registry. Replaces the built-in
	// registry entirely when present.
	Statuses []job.Status `yaml:"statuses"`

	// ArchivedStatuses is the deny list of terminal status names
	// excluded from the active progress segments.
	ArchivedStatuses []string `yaml:"archived_statuses"`

	// Defaults configures the board's initial sort.
	Defaults SortDefaults `yaml:"defaults"`
}

// SortDefaults is the sort state the board starts with and the state
// the clear-filters action restores.
type SortDefaults struct {
	SortKey   string `yaml:"sort_key"`
	Direction string `yaml:"direction"`
}

// Default returns the built-in configuration: the five-status
// registry, Rejected/Withdrawn archived, newest-first by date added.
func Default() *Config {
	return &Config{
		DataFile:         ".jobdeck/jobs.jsonl",
		Statuses:         job.DefaultStatuses(),
		ArchivedStatuses: job.DefaultArchivedStatuses(),
		Defaults: SortDefaults{
			SortKey:   string(board.DefaultSortKey),
			Direction: string(board.DefaultDirection),
		},
	}
}

// Load reads configuration from the given path, or from
// JOBDECK_CONFIG when path is empty, or returns defaults when neither
// is set. A file that exists but fails to parse or validate is an
// error, never silently ignored.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("JOBDECK_CONFIG")
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the registry invariants, that every archived name
// resolves to a registry status, and that the sort defaults name a
// known key and direction.
func (cfg *Config) Validate() error {
	if err := job.ValidateRegistry(cfg.Statuses); err != nil {
		return err
	}

	names := make(map[string]bool, len(cfg.Statuses))
	for _, status := range cfg.Statuses {
		names[status.Name] = true
	}
	for _, archived := range cfg.ArchivedStatuses {
		if !names[archived] {
			return fmt.Errorf("archived status %q is not in the registry", archived)
		}
	}

	switch board.SortKey(cfg.Defaults.SortKey) {
	case board.SortDateAdded, board.SortCompany, board.SortTitle, board.SortResumeFit:
	default:
		return fmt.Errorf("unknown sort key %q", cfg.Defaults.SortKey)
	}
	switch board.Direction(cfg.Defaults.Direction) {
	case board.Ascending, board.Descending:
	default:
		return fmt.Errorf("unknown sort direction %q", cfg.Defaults.Direction)
	}
	return nil
}

// OrderedStatuses returns the registry sorted by Order ascending.
func (cfg *Config) OrderedStatuses() []job.Status {
	statuses := make([]job.Status, len(cfg.Statuses))
	copy(statuses, cfg.Statuses)
	job.SortStatuses(statuses)
	return statuses
}
