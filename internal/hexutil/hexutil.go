// Package hexutil provides small hex<->byte helpers for tests and the CLI,
// filling in for the go-ethereum/common.Hex2Bytes helpers go-ethereum's own
// tests lean on, without pulling in go-ethereum itself.
package hexutil

import (
	"encoding/hex"
	"strings"
)

// MustDecode decodes a hex string into bytes, tolerating an optional "0x"
// prefix and any whitespace used to group bytes for readability (e.g.
// "EF 00 01 ...").
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode is the error-returning counterpart of MustDecode.
func Decode(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		default:
			return r
		}
	}, s)
	return hex.DecodeString(s)
}

// Encode renders b as a lowercase "0x"-prefixed hex string.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
