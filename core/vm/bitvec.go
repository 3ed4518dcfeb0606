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

// bitvec is a bit vector keyed by byte offset: one bit per code byte,
// O(n) memory, O(1) membership test for marking immediate bytes (jump
// targets are collected separately as a slice of offsets). Grounded on go-ethereum's analysis_eof.go bitvec, trimmed
// to just what the per-section scan needs: set a single bit and test a
// single bit.
type bitvec []byte

func newBitvec(size int) bitvec {
	return make(bitvec, size/8+1)
}

// set marks offset pos as an immediate byte.
func (bits bitvec) set(pos int) {
	bits[pos/8] |= 1 << (pos % 8)
}

// setRange marks [start, start+n) as immediate bytes.
func (bits bitvec) setRange(start, n int) {
	for i := 0; i < n; i++ {
		bits.set(start + i)
	}
}

// isSet reports whether pos was previously marked.
func (bits bitvec) isSet(pos int) bool {
	return bits[pos/8]&(1<<(pos%8)) != 0
}
