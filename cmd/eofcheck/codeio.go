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
	"bytes"
	"fmt"
	"os"

	"github.com/eoflabs/eof1validator/core/vm"
	"github.com/eoflabs/eof1validator/internal/hexutil"
)

// readCode loads a single container's bytes from path. Files that look like
// hex text (every non-whitespace byte is a hex digit, optionally prefixed
// with 0x) are decoded as hex; anything else is treated as a raw binary
// container, the same dual handling cmd/evm's code-loading flags support.
func readCode(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if looksLikeHex(raw) {
		return hexutil.Decode(string(raw))
	}
	return raw, nil
}

func looksLikeHex(b []byte) bool {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return false
	}
	trimmed = bytes.TrimPrefix(trimmed, []byte("0x"))
	for _, c := range trimmed {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			return false
		}
	}
	return true
}

// disassemble renders code as a flat "offset opcode" listing, one mnemonic
// per line, grounded on cmd/disasm's own scan loop. It makes no legality
// judgement of its own — it is a read-only aid for -verbose output, not a
// second validation pass.
func disassemble(code []byte) []string {
	var lines []string
	for p := 0; p < len(code); {
		op := vm.OpCode(code[p])
		n := vm.ImmediateWidth(op, code, p)
		lines = append(lines, fmt.Sprintf("%05d %s", p, op))
		p += 1 + n
	}
	return lines
}
