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
	"bytes"
	"encoding/binary"
	"fmt"
)

// EOF1 container wire constants (EIP-3540).
const (
	kindTypes = 0x01
	kindCode  = 0x02
	kindData  = 0x03

	eofMagicByte0 = 0xef
	eofMagicByte1 = 0x00
	eof1Version   = 0x01

	offsetVersion = 2

	maxCodeSections = 1024
	maxStackHeight  = 1023
	typeEntrySize   = 4

	minContainerSize = 15
)

var eofMagic = []byte{eofMagicByte0, eofMagicByte1}

// IsEOF reports whether code starts with the EIP-3540 magic, EF 00 — a
// magic-only check, nothing about version or header validity.
func IsEOF(code []byte) bool {
	return len(code) >= len(eofMagic) && bytes.Equal(code[:len(eofMagic)], eofMagic)
}

// Version returns the EOF version byte, or 0 if code does not start with
// EOF magic. It requires len(code) >= 3 to be meaningful, and returns 0
// rather than panicking on anything shorter, magic or no magic.
func Version(code []byte) byte {
	if !IsEOF(code) || len(code) <= offsetVersion {
		return 0
	}
	return code[offsetVersion]
}

// FunctionMetadata is a single 4-byte type section entry: one function's
// input/output arity and declared max stack height (EIP-4750 type entry).
type FunctionMetadata struct {
	Inputs         uint8
	Outputs        uint8
	MaxStackHeight uint16
}

// Container is a parsed EOF1 container: the type table, the code sections
// and the data section, built once per ValidateCode call and discarded at
// return — nothing here outlives a single validation.
type Container struct {
	Types []*FunctionMetadata
	Code  [][]byte
	Data  []byte
}

// readHeader parses the fixed EOF1 header grammar (EIP-3540), verifying
// every sentinel byte before trusting the length field that follows it,
// and returns the parsed Container (types/code/data slices pointing into
// b) plus the offset of the first code section (header length plus type
// section size).
//
// Every bounds check happens before the corresponding read; a short buffer
// anywhere in the header is errTruncatedHeader, never a panic.
func readHeader(b []byte) (*Container, int, error) {
	if len(b) < minContainerSize {
		return nil, 0, fmt.Errorf("%w: container shorter than %d bytes", errTruncatedHeader, minContainerSize)
	}
	if !IsEOF(b) {
		return nil, 0, errInvalidMagic
	}
	if b[offsetVersion] != eof1Version {
		return nil, 0, fmt.Errorf("%w: unsupported version %#x", errBadSentinel, b[offsetVersion])
	}

	pos := 3
	// KIND_TYPE + type_section_size.
	if b[pos] != kindTypes {
		return nil, 0, fmt.Errorf("%w: expected kind_types at offset %d", errBadSentinel, pos)
	}
	pos++
	if len(b) < pos+2 {
		return nil, 0, errTruncatedHeader
	}
	typeSize := int(binary.BigEndian.Uint16(b[pos:]))
	pos += 2
	if typeSize < typeEntrySize || typeSize%typeEntrySize != 0 {
		return nil, 0, fmt.Errorf("%w: type section size %d is not a positive multiple of %d", errBadTypeEntry, typeSize, typeEntrySize)
	}
	numCodeSections := typeSize / typeEntrySize
	if numCodeSections == 0 || numCodeSections > maxCodeSections {
		return nil, 0, fmt.Errorf("%w: num_code_sections %d", errBadSectionCount, numCodeSections)
	}

	// KIND_CODE + num_code_sections + code_section_size[].
	if len(b) < pos+1 {
		return nil, 0, errTruncatedHeader
	}
	if b[pos] != kindCode {
		return nil, 0, fmt.Errorf("%w: expected kind_code at offset %d", errBadSentinel, pos)
	}
	pos++
	if len(b) < pos+2 {
		return nil, 0, errTruncatedHeader
	}
	declaredCodeSections := int(binary.BigEndian.Uint16(b[pos:]))
	pos += 2
	if declaredCodeSections != numCodeSections {
		return nil, 0, fmt.Errorf("%w: code section count %d does not match type section count %d", errBadSectionCount, declaredCodeSections, numCodeSections)
	}
	if len(b) < pos+2*numCodeSections {
		return nil, 0, errTruncatedHeader
	}
	codeSizes := make([]int, numCodeSections)
	for i := 0; i < numCodeSections; i++ {
		codeSizes[i] = int(binary.BigEndian.Uint16(b[pos+2*i:]))
	}
	pos += 2 * numCodeSections

	// KIND_DATA + data_section_size.
	if len(b) < pos+1 {
		return nil, 0, errTruncatedHeader
	}
	if b[pos] != kindData {
		return nil, 0, fmt.Errorf("%w: expected kind_data at offset %d", errBadSentinel, pos)
	}
	pos++
	if len(b) < pos+2 {
		return nil, 0, errTruncatedHeader
	}
	dataSize := int(binary.BigEndian.Uint16(b[pos:]))
	pos += 2

	// TERMINATOR.
	if len(b) < pos+1 {
		return nil, 0, errTruncatedHeader
	}
	if b[pos] != 0x00 {
		return nil, 0, fmt.Errorf("%w: missing header terminator at offset %d", errBadSentinel, pos)
	}
	pos++

	headerLen := pos

	// Declared section sizes must exactly cover the remainder of the
	// container; no trailing garbage, no undersized body.
	codeTotal := 0
	for _, s := range codeSizes {
		codeTotal += s
	}
	expectedTotal := headerLen + typeSize + codeTotal + dataSize
	if expectedTotal != len(b) {
		return nil, 0, fmt.Errorf("%w: want total size %d, got %d", errLengthMismatch, expectedTotal, len(b))
	}

	// Type section.
	types := make([]*FunctionMetadata, numCodeSections)
	typeOff := headerLen
	for i := 0; i < numCodeSections; i++ {
		j := typeOff + i*typeEntrySize
		inputs, outputs := b[j], b[j+1]
		maxStack := binary.BigEndian.Uint16(b[j+2:])
		if inputs > 0x7f {
			return nil, 0, fmt.Errorf("%w: type entry %d inputs %d exceeds 0x7f", errBadTypeEntry, i, inputs)
		}
		if outputs > 0x7f {
			return nil, 0, fmt.Errorf("%w: type entry %d outputs %d exceeds 0x7f", errBadTypeEntry, i, outputs)
		}
		if maxStack > maxStackHeight {
			return nil, 0, fmt.Errorf("%w: type entry %d max_stack %d exceeds %d", errBadTypeEntry, i, maxStack, maxStackHeight)
		}
		types[i] = &FunctionMetadata{Inputs: inputs, Outputs: outputs, MaxStackHeight: maxStack}
	}

	// Code sections.
	code := make([][]byte, numCodeSections)
	codeOff := typeOff + typeSize
	for i, size := range codeSizes {
		if size == 0 {
			return nil, 0, fmt.Errorf("%w: code section %d", errCodeSectionSizeZero, i)
		}
		code[i] = b[codeOff : codeOff+size]
		codeOff += size
	}

	data := b[codeOff : codeOff+dataSize]

	return &Container{Types: types, Code: code, Data: data}, headerLen + typeSize, nil
}
