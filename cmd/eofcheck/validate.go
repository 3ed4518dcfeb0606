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

	"github.com/urfave/cli/v2"

	"github.com/eoflabs/eof1validator/core/vm"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "validate a single container",
	ArgsUsage: "<file>",
	Flags:     []cli.Flag{verboseFlag, versionOnlyFlag},
	Action:    runValidate,
}

func runValidate(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("validate takes exactly one file argument", 1)
	}
	path := ctx.Args().First()

	code, err := readCode(path)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if ctx.Bool(versionOnlyFlag.Name) {
		fmt.Println(vm.Version(code))
		return nil
	}

	jt := vm.MainnetEOFInstructionSet()
	ok, verr := vm.ValidateCode(code, jt)

	if ok {
		fmt.Printf("ACCEPT %s (eof version %d)\n", path, vm.Version(code))
	} else {
		fmt.Printf("REJECT %s: %v\n", path, verr)
	}

	if ctx.Bool(verboseFlag.Name) {
		for _, line := range disassemble(code) {
			fmt.Println("  " + line)
		}
	}

	if !ok {
		return cli.Exit("", 1)
	}
	return nil
}
