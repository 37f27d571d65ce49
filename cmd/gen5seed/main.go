// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nazotools/gen5search/checkpoint"
	"github.com/nazotools/gen5search/planner"
	"github.com/nazotools/gen5search/rawseed"
	"github.com/nazotools/gen5search/seedtypes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gen5seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}
	defer logRotator.Close()

	store, err := checkpoint.Open(cfg.CheckpointDir)
	if err != nil {
		return fmt.Errorf("opening checkpoint store: %w", err)
	}
	defer store.Close()

	filter := buildIvFilter(cfg)
	params := rawseed.Params{Filter: filter, MtOffset: 0, Roamer: false}
	jobKey := planner.JobKey(planner.SearchParams{})

	var cursor uint64
	if state, ok, err := store.Load(jobKey); err != nil {
		return fmt.Errorf("loading checkpoint: %w", err)
	} else if ok && !state.Done {
		cursor = state.Cursor
		log.Infof("resuming mt-seed search from cursor %d", cursor)
	}

	searcher := rawseed.Resume(params, cursor)
	const batchSize = 1 << 20
	for !searcher.Done() {
		matches := searcher.NextBatch(batchSize)
		for _, seed := range matches {
			fmt.Printf("0x%08X\n", seed)
		}
		if err := store.Save(checkpoint.JobState{JobKey: jobKey, Cursor: searcher.Cursor(), Done: searcher.Done()}); err != nil {
			return fmt.Errorf("saving checkpoint: %w", err)
		}
	}

	return nil
}

func buildIvFilter(cfg *config) seedtypes.IvFilter {
	ranges := cfg.ivFilterRanges()
	var f seedtypes.IvFilter
	for i, r := range ranges {
		f.Ranges[i] = seedtypes.IvRange{Min: r[0], Max: r[1]}
	}
	return f
}
