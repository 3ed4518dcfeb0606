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

// eofcheck validates EVM Object Format v1 containers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/eoflabs/eof1validator/internal/config"
	"github.com/eoflabs/eof1validator/internal/xlog"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML config file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level: trace|debug|info|warn|error|crit",
	}
	cacheDirFlag = &cli.StringFlag{
		Name:  "cache.dir",
		Usage: "on-disk cache directory for batch/watch (empty disables the on-disk tier)",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "dump a disassembly-style opcode listing alongside the verdict",
	}
	versionOnlyFlag = &cli.BoolFlag{
		Name:  "version-only",
		Usage: "print only the parsed EOF version byte (0 for non-EOF code) and exit",
	}
)

type configCtxKey struct{}

// configFromContext retrieves the Config stashed by the App's Before hook.
func configFromContext(ctx *cli.Context) config.Config {
	if cfg, ok := ctx.Context.Value(configCtxKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.String(configFlag.Name))
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if v := ctx.String(logLevelFlag.Name); v != "" {
		cfg.LogLevel = v
	}
	if ctx.IsSet(cacheDirFlag.Name) {
		cfg.CacheDir = ctx.String(cacheDirFlag.Name)
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:  "eofcheck",
		Usage: "validate EVM Object Format v1 containers",
		Flags: []cli.Flag{configFlag, logLevelFlag, cacheDirFlag},
		Before: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			lvl, err := xlog.LvlFromString(cfg.LogLevel)
			if err != nil {
				return err
			}
			_ = lvl // the level is only checked for validity; no handler filters records by level.

			h := xlog.NewTerminalHandler(os.Stderr, xlog.IsTerminal(os.Stderr))
			xlog.SetRootHandler(h)

			ctx.Context = context.WithValue(ctx.Context, configCtxKey{}, cfg)
			return nil
		},
		Commands: []*cli.Command{
			validateCommand,
			batchCommand,
			watchCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
