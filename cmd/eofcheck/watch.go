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

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/eoflabs/eof1validator/core/vm"
	"github.com/eoflabs/eof1validator/internal/cache"
	"github.com/eoflabs/eof1validator/internal/xlog"
)

var watchCommand = &cli.Command{
	Name:      "watch",
	Usage:     "validate files as they are created under a directory, until interrupted",
	ArgsUsage: "<dir>",
	Action:    runWatch,
}

func runWatch(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("watch takes exactly one directory argument", 1)
	}
	dir := ctx.Args().First()
	cfg := configFromContext(ctx)
	log := xlog.Root().New("cmd", "watch")

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return cli.Exit(fmt.Errorf("creating watcher: %w", err), 1)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return cli.Exit(fmt.Errorf("watching %s: %w", dir, err), 1)
	}

	store, err := cache.Open(cfg.CacheMemBytes, cfg.CacheDir)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer store.Close()

	jt := vm.MainnetEOFInstructionSet()
	log.Info("watching for new containers", "dir", dir)

	for {
		select {
		case ev, open := <-w.Events:
			if !open {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			ok, detail := validateOne(ev.Name, jt, store, log)
			if ok {
				log.Info("accept", "path", ev.Name)
			} else {
				log.Warn("reject", "path", ev.Name, "detail", detail)
			}

		case werr, open := <-w.Errors:
			if !open {
				return nil
			}
			log.Error("watcher error", "err", werr)

		case <-ctx.Done():
			return nil
		}
	}
}
