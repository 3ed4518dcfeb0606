// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/eoflabs/eof1validator/core/vm"
	"github.com/eoflabs/eof1validator/internal/cache"
	"github.com/eoflabs/eof1validator/internal/codehash"
	"github.com/eoflabs/eof1validator/internal/xlog"
)

var batchCommand = &cli.Command{
	Name:      "batch",
	Usage:     "validate every file under a directory tree, memoizing results by code hash",
	ArgsUsage: "<dir>",
	Action:    runBatch,
}

func runBatch(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("batch takes exactly one directory argument", 1)
	}
	root := ctx.Args().First()
	cfg := configFromContext(ctx)
	log := xlog.Root().New("cmd", "batch")

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return cli.Exit(fmt.Errorf("walking %s: %w", root, err), 1)
	}

	store, err := cache.Open(cfg.CacheMemBytes, cfg.CacheDir)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer store.Close()

	jt := vm.MainnetEOFInstructionSet()

	concurrency := cfg.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var mu sync.Mutex
	var wg sync.WaitGroup
	summary := cache.BatchSummary{}

	for _, path := range files {
		path := path
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			ok, detail := validateOne(path, jt, store, log)

			mu.Lock()
			if ok {
				summary.Accepted = append(summary.Accepted, path)
			} else {
				summary.Rejected = append(summary.Rejected, fmt.Sprintf("%s: %s", path, detail))
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	report := summary.SortedReport()
	for _, p := range report.Accepted {
		fmt.Printf("ACCEPT %s\n", p)
	}
	for _, p := range report.Rejected {
		fmt.Printf("REJECT %s\n", p)
	}
	fmt.Printf("total=%d accepted=%d rejected=%d\n", len(files), len(report.Accepted), len(report.Rejected))
	return nil
}

// validateOne runs ValidateCode for the file at path through store's
// memoization layer, logging read failures through log rather than failing
// the whole batch over one unreadable file.
func validateOne(path string, jt *vm.JumpTable, store *cache.Store, log xlog.Logger) (bool, string) {
	code, err := readCode(path)
	if err != nil {
		log.Warn("skipping unreadable file", "path", path, "err", err)
		return false, err.Error()
	}

	h := codehash.Of(code)
	if res, hit := store.Get(h); hit {
		return res.OK, res.Err
	}

	ok, verr := vm.ValidateCode(code, jt)
	res := cache.Result{OK: ok}
	if verr != nil {
		res.Err = verr.Error()
	}
	if err := store.Put(h, res); err != nil {
		log.Warn("cache write failed", "path", path, "err", err)
	}
	return res.OK, res.Err
}
