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

import "fmt"

// ValidateCode decides whether code is an acceptable container: legacy
// bytecode (no EOF magic) passes through unconditionally, anything
// claiming EOF magic goes through the full magic/header/type/body
// pipeline. The returned bool is the canonical accept/reject bit; the
// error, when non-nil, is advisory detail about which phase rejected and
// why.
func ValidateCode(code []byte, jt *JumpTable) (bool, error) {
	// Magic & version probe.
	if !IsEOF(code) {
		return true, nil
	}

	// Header parsing and type section validation happen inside readHeader;
	// it also performs the body-length-mismatch check since all three need
	// the same section sizes in hand.
	container, _, err := readHeader(code)
	if err != nil {
		return false, err
	}

	// Opcode pass, one code section at a time: each declared code section
	// is scanned independently rather than the whole container from
	// offset 0, so a relative jump can never land in another section.
	for i, section := range container.Code {
		if err := validateCodeSection(section, jt); err != nil {
			return false, fmt.Errorf("code section %d: %w", i, err)
		}
	}
	return true, nil
}

// allowedInBody reports whether op may appear as an in-body instruction
// (i.e. anywhere but the final byte) under the EOF opcode rules. It takes
// whatever the hardfork's JumpTable reports as defined and applies the
// fixed add/remove deltas {+0xFE, -0x58, -0xFF, -0xF2}.
func allowedInBody(jt *JumpTable, op OpCode) bool {
	switch op {
	case INVALID:
		return true
	case PC, SELFDESTRUCT, CALLCODE:
		return false
	default:
		return jt.isDefined(op)
	}
}

// validateCodeSection runs the opcode pass over a single code section:
// every opcode must be legal, every PUSH/RJUMP/RJUMPI/RJUMPV immediate
// must fit inside the section, every relative-jump target must land
// inside the section on a non-immediate byte, and the section's last byte
// must be a terminating opcode.
func validateCodeSection(code []byte, jt *JumpTable) error {
	immediates := newBitvec(len(code))
	var jumpTargets []int

	p := 0
	var lastOp OpCode
	for p < len(code) {
		op := OpCode(code[p])
		lastOp = op
		// SELFDESTRUCT is excluded from allowedInBody but is one of the
		// terminating opcodes: it is illegal everywhere in a code section
		// except as that section's final byte, where the termination
		// check below takes over and this legality check must stand
		// aside for it.
		isLast := p == len(code)-1
		if !allowedInBody(jt, op) && !(op == SELFDESTRUCT && isLast) {
			return fmt.Errorf("%w: %s at pos %d", errUndefinedInstruction, op, p)
		}
		p++

		switch {
		case op >= PUSH1 && op <= PUSH32:
			n := int(op) - int(PUSH1) + 1
			if p+n > len(code) {
				return fmt.Errorf("%w: %s at pos %d", errImmediateOverrun, op, p-1)
			}
			immediates.setRange(p, n)
			p += n

		case op == RJUMP || op == RJUMPI:
			if p+2 > len(code) {
				return fmt.Errorf("%w: %s at pos %d", errImmediateOverrun, op, p-1)
			}
			immediates.setRange(p, 2)
			target := p + 2 + signExtend16(code[p], code[p+1])
			if target < 0 || target >= len(code) {
				return fmt.Errorf("%w: %s target %d at pos %d", errJumpOutOfBounds, op, target, p-1)
			}
			jumpTargets = append(jumpTargets, target)
			p += 2

		case op == RJUMPV:
			if p+1 > len(code) {
				return fmt.Errorf("%w: %s at pos %d", errImmediateOverrun, op, p-1)
			}
			tableSize := int(code[p])
			if tableSize == 0 {
				return fmt.Errorf("%w: at pos %d", errEmptyJumpTable, p-1)
			}
			tableBytes := 2 * tableSize
			if p+1+tableBytes > len(code) {
				return fmt.Errorf("%w: %s jump table at pos %d", errImmediateOverrun, op, p-1)
			}
			immediates.setRange(p, 1+tableBytes)
			base := p + 1 + tableBytes
			for j := 0; j < tableSize; j++ {
				off := p + 1 + 2*j
				target := base + signExtend16(code[off], code[off+1])
				if target < 0 || target >= len(code) {
					return fmt.Errorf("%w: %s entry %d target %d at pos %d", errJumpOutOfBounds, op, j, target, p-1)
				}
				jumpTargets = append(jumpTargets, target)
			}
			p = base
		}
	}

	if !terminalOpcodes[lastOp] {
		return fmt.Errorf("%w: ends with %s", errBadTerminatorOpcode, lastOp)
	}

	for _, t := range jumpTargets {
		if immediates.isSet(t) {
			return fmt.Errorf("%w: target %d", errJumpIntoImmediate, t)
		}
	}
	return nil
}

// signExtend16 reinterprets a two-byte big-endian sequence as a signed
// 16-bit relative offset, sign-extended before it is added to the
// (unsigned) cursor position.
func signExtend16(hi, lo byte) int {
	return int(int16(uint16(hi)<<8 | uint16(lo)))
}
