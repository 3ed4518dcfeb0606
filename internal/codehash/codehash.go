// Package codehash derives cache keys and human-readable diagnostics from
// raw EOF container bytes. Keccak-256 for the key, grounded on
// go-ethereum's own crypto package convention of hashing code with
// golang.org/x/crypto/sha3's Keccak implementation rather than a generic
// SHA-256 from the standard library.
package codehash

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Hash is a 32-byte Keccak-256 digest, used as the memoization key in
// internal/cache.
type Hash [32]byte

// Of returns the Keccak-256 digest of code.
func Of(code []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(code)
	var out Hash
	h.Sum(out[:0])
	return out
}

// String renders the digest as a 0x-prefixed hex string, the same format
// hexutil.Encode produces for byte slices elsewhere in this tree.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// Bytes returns the digest's underlying bytes, for use as a pebble/fastcache
// key.
func (h Hash) Bytes() []byte {
	return h[:]
}
