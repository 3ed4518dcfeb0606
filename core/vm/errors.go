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

import "errors"

// Sentinel errors covering every way ValidateCode can reject a container.
// Every rejection error matches one of these under errors.Is. Most are
// wrapped with fmt.Errorf("%w: ...", sentinel, detail) to add a position or
// value to the message; a few header errors are returned bare.
var (
	errInvalidMagic          = errors.New("invalid EOF magic")
	errTruncatedHeader       = errors.New("truncated header")
	errBadSentinel           = errors.New("bad sentinel byte")
	errBadSectionCount       = errors.New("bad code section count")
	errBadTypeEntry          = errors.New("bad type section entry")
	errLengthMismatch        = errors.New("declared body length does not match actual remainder")
	errUndefinedInstruction  = errors.New("undefined instruction")
	errImmediateOverrun      = errors.New("immediate runs past code section end")
	errJumpOutOfBounds       = errors.New("relative jump target out of bounds")
	errJumpIntoImmediate     = errors.New("relative jump target lands inside an immediate")
	errBadTerminatorOpcode   = errors.New("code section does not end in a terminating opcode")
	errEmptyJumpTable        = errors.New("RJUMPV jump table is empty")
	errCodeSectionSizeZero   = errors.New("code section size must not be zero")
)
