// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"errors"
	"testing"
)

func TestValidateCodeSection(t *testing.T) {
	jt := newEOF1InstructionSet()
	for i, test := range []struct {
		code []byte
		err  error
	}{
		{code: []byte{byte(STOP)}},
		{code: []byte{byte(PUSH1), 0x00, byte(STOP)}},
		{code: []byte{byte(PUSH32), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
			16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, byte(STOP)}},
		{
			code: []byte{byte(PUSH1)},
			err:  errImmediateOverrun,
		},
		{
			code: []byte{byte(PC), byte(STOP)},
			err:  errUndefinedInstruction,
		},
		{
			// SELFDESTRUCT mid-body (not the final byte) is still illegal.
			code: []byte{byte(SELFDESTRUCT), byte(STOP)},
			err:  errUndefinedInstruction,
		},
		{
			// SELFDESTRUCT is legal as the final byte.
			code: []byte{byte(PUSH1), 0x00, byte(SELFDESTRUCT)},
		},
		{
			code: []byte{byte(CALLCODE), byte(STOP)},
			err:  errUndefinedInstruction,
		},
		{
			code: []byte{byte(INVALID)},
		},
		{
			// STOP is legal mid-body too; the second STOP terminates.
			code: []byte{byte(STOP), byte(STOP)},
		},
		{
			code: []byte{0xcc, byte(STOP)}, // not in the table at all.
			err:  errUndefinedInstruction,
		},
		{
			// RJUMP +0, lands right after itself (the STOP).
			code: []byte{byte(RJUMP), 0x00, 0x00, byte(STOP)},
		},
		{
			// RJUMP -3, lands on its own opcode byte (immediate-adjacent, not an immediate).
			code: []byte{byte(RJUMP), 0xff, 0xfd, byte(STOP)},
		},
		{
			// RJUMP lands on its own offset immediate.
			code: []byte{byte(RJUMP), 0xff, 0xff, byte(STOP)},
			err:  errJumpIntoImmediate,
		},
		{
			code: []byte{byte(RJUMP), 0x00},
			err:  errImmediateOverrun,
		},
		{
			code: []byte{byte(RJUMP), 0x7f, 0xff, byte(STOP)},
			err:  errJumpOutOfBounds,
		},
		{
			code: []byte{byte(RJUMPV), 0x00, 0x00, 0x00, byte(STOP)},
			err:  errEmptyJumpTable,
		},
		{
			// RJUMPV with a 2-entry table, both entries landing on the STOP.
			code: []byte{byte(RJUMPV), 0x02, 0x00, 0x00, 0x00, 0x00, byte(STOP)},
		},
		{
			// Truncated before even the table_size byte is readable.
			code: []byte{byte(RJUMPV)},
			err:  errImmediateOverrun,
		},
	} {
		err := validateCodeSection(test.code, jt)
		if test.err == nil {
			if err != nil {
				t.Errorf("test %d: unexpected error: %v", i, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("test %d: expected error %v, got none", i, test.err)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: got error %v, want %v", i, err, test.err)
		}
	}
}

func TestAllowedInBody(t *testing.T) {
	jt := newEOF1InstructionSet()
	for _, tt := range []struct {
		op   OpCode
		want bool
	}{
		{STOP, true},
		{INVALID, true},
		{PC, false},
		{SELFDESTRUCT, false},
		{CALLCODE, false},
		{RJUMP, true},
		{PUSH1, true},
		{OpCode(0xcc), false},
	} {
		if got := allowedInBody(jt, tt.op); got != tt.want {
			t.Errorf("allowedInBody(%s) = %v, want %v", tt.op, got, tt.want)
		}
	}
}
