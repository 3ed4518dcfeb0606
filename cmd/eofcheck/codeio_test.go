package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadCodeHexFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.hex")
	if err := os.WriteFile(path, []byte("ef0001 01 0004\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readCode(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xef, 0x00, 0x01, 0x01, 0x00, 0x04}
	if string(got) != string(want) {
		t.Errorf("readCode = %x, want %x", got, want)
	}
}

func TestReadCodeRawFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.bin")
	raw := []byte{0x60, 0x00, 0x60, 0x00, 0xf3, 0x01, 0x02, 0x03, 0xaa, 0xbb}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readCode(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(raw) {
		t.Errorf("readCode = %x, want %x", got, raw)
	}
}

func TestLooksLikeHex(t *testing.T) {
	tests := []struct {
		in   []byte
		want bool
	}{
		{[]byte("ef0001"), true},
		{[]byte("0xef0001"), true},
		{[]byte("ef 00 01\n"), true},
		{[]byte{0x60, 0x00, 0xf3, 0x01, 0x02}, false},
		{[]byte(""), false},
	}
	for _, tt := range tests {
		if got := looksLikeHex(tt.in); got != tt.want {
			t.Errorf("looksLikeHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
