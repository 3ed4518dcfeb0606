// Package cache memoizes ValidateCode results for the batch and watch CLI
// commands, which may re-validate the same bytecode many times across a
// directory tree. It is a two-tier cache grounded directly on how the
// teacher's own state/trie layers are built: an in-memory
// github.com/VictoriaMetrics/fastcache in front of an on-disk
// github.com/cockroachdb/pebble KV store, the same pairing go-ethereum uses
// for its trie node cache and its state/chain database respectively.
//
// core/vm.ValidateCode is pure and the validator itself never touches this
// package — caching is strictly an ambient concern of the CLI layer.
package cache

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/cockroachdb/pebble"
	"golang.org/x/exp/slices"

	"github.com/eoflabs/eof1validator/internal/codehash"
)

// Result is the memoized outcome of one ValidateCode call.
type Result struct {
	OK  bool
	Err string // empty when OK, otherwise the advisory rejection detail
}

// Store is the two-tier memoization cache. A nil *pebble.DB means
// in-memory-only operation (e.g. tests, or a CLI invocation with caching
// disabled).
type Store struct {
	l1 *fastcache.Cache
	l2 *pebble.DB
}

// Open creates a Store with an L1 cache sized maxBytes and, if dir is
// non-empty, an L2 pebble database rooted at dir.
func Open(maxBytes int, dir string) (*Store, error) {
	s := &Store{l1: fastcache.New(maxBytes)}
	if dir == "" {
		return s, nil
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening cache database at %s: %w", dir, err)
	}
	s.l2 = db
	return s, nil
}

// Close releases the on-disk handle, if any.
func (s *Store) Close() error {
	if s.l2 == nil {
		return nil
	}
	return s.l2.Close()
}

// Get looks up a previously memoized result for code's Keccak-256 digest,
// checking the in-memory tier first and, on a miss, the on-disk tier
// (promoting the value back into L1 on a hit).
func (s *Store) Get(h codehash.Hash) (Result, bool) {
	if b, ok := s.l1.HasGet(nil, h.Bytes()); ok {
		return decodeResult(b), true
	}
	if s.l2 == nil {
		return Result{}, false
	}
	b, closer, err := s.l2.Get(h.Bytes())
	if err != nil {
		return Result{}, false
	}
	defer closer.Close()
	res := decodeResult(b)
	s.l1.Set(h.Bytes(), b)
	return res, true
}

// Put memoizes res for h in both tiers.
func (s *Store) Put(h codehash.Hash, res Result) error {
	b := encodeResult(res)
	s.l1.Set(h.Bytes(), b)
	if s.l2 == nil {
		return nil
	}
	return s.l2.Set(h.Bytes(), b, pebble.Sync)
}

// encodeResult packs Result into a small binary record: one status byte
// followed by the UTF-8 error detail, length-prefixed.
func encodeResult(r Result) []byte {
	status := byte(0)
	if r.OK {
		status = 1
	}
	b := make([]byte, 5, 5+len(r.Err))
	b[0] = status
	binary.BigEndian.PutUint32(b[1:], uint32(len(r.Err)))
	return append(b, r.Err...)
}

func decodeResult(b []byte) Result {
	if len(b) < 5 {
		return Result{}
	}
	n := binary.BigEndian.Uint32(b[1:5])
	return Result{OK: b[0] == 1, Err: string(b[5 : 5+n])}
}

// BatchSummary is the outcome of validating many files, used by the
// `batch` CLI command.
type BatchSummary struct {
	Accepted []string
	Rejected []string
}

// SortedReport returns Accepted/Rejected with entries in a stable,
// deterministic order so two runs over the same directory tree diff
// cleanly, mirroring go-ethereum's own convention of sorting collections
// before logging or writing them to disk.
func (b BatchSummary) SortedReport() BatchSummary {
	out := BatchSummary{
		Accepted: slices.Clone(b.Accepted),
		Rejected: slices.Clone(b.Rejected),
	}
	sort.Strings(out.Accepted)
	sort.Strings(out.Rejected)
	return out
}
