package codehash_test

import (
	"testing"

	"github.com/eoflabs/eof1validator/internal/codehash"
)

func TestOfIsDeterministic(t *testing.T) {
	code := []byte{0x60, 0x00, 0x60, 0x00, 0xf3}
	a := codehash.Of(code)
	b := codehash.Of(code)
	if a != b {
		t.Fatalf("Of(%x) not deterministic: %v != %v", code, a, b)
	}
}

func TestOfDistinguishesInputs(t *testing.T) {
	a := codehash.Of([]byte{0x00})
	b := codehash.Of([]byte{0x01})
	if a == b {
		t.Fatalf("distinct inputs hashed to the same digest: %v", a)
	}
}

func TestStringIsHex(t *testing.T) {
	h := codehash.Of([]byte("hello"))
	s := h.String()
	if len(s) != 66 || s[:2] != "0x" {
		t.Fatalf("String() = %q, want a 0x-prefixed 64-hex-digit digest", s)
	}
}

func TestBytesLength(t *testing.T) {
	h := codehash.Of([]byte("hello"))
	if len(h.Bytes()) != 32 {
		t.Fatalf("Bytes() length = %d, want 32", len(h.Bytes()))
	}
}
