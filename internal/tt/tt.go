// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package tt implements the transposition table: a direct-mapped cache
// from Zobrist key to a previously searched score, indexed by the low
// bits of the key. Collisions are resolved by always overwriting (no
// chaining, no replacement scheme), which is correct but means a probe
// can miss information that was evicted by a colliding key.
package tt

import (
	. "github.com/cormorant-chess/core/internal/types"
)

// Bound records which side of the search window a stored score is exact
// or only a bound for, mirroring the three outcomes an alpha-beta search
// node can produce.
type Bound uint8

const (
	// BoundNone marks an empty slot: never matches a probe.
	BoundNone Bound = iota
	// BoundExact means the stored score is the node's true minimax value.
	BoundExact
	// BoundAlpha (upper bound) means the node failed low: the true value
	// is at most the stored score.
	BoundAlpha
	// BoundBeta (lower bound) means the node failed high: the true value
	// is at least the stored score.
	BoundBeta
)

// sizeLog2 is the table's size in entries, as a power of two: 2^22
// entries, matching the reference engine's fixed hash table size.
const sizeLog2 = 22

// Size is the number of entries in the table.
const Size = 1 << sizeLog2

const indexMask = Size - 1

// entry is one transposition table slot. It deliberately mirrors the
// reference engine's flat record (key, depth, bound, score, move) rather
// than a bit-packed layout: at 2^22 entries of 32 bytes each the table
// is 128 MiB, and a flat struct keeps probe/store trivial to get right.
type entry struct {
	key   uint64
	move  Move
	score Value
	depth int
	bound Bound
}

// Table is a transposition table. The zero value is not usable; call New.
type Table struct {
	entries []entry
}

// New allocates a fresh, empty transposition table.
func New() *Table {
	return &Table{entries: make([]entry, Size)}
}

// Clear resets every entry, discarding all cached search results.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
}

func index(key uint64) uint64 { return key & indexMask }

// Probe looks up key. ok is false if the slot is empty or holds a
// different key (a collision), or if the stored entry's depth is
// shallower than the caller's requested depth (too unreliable to reuse).
// score is already adjusted from the table's ply-independent mate
// distance back to a score relative to the search root at ply.
func (t *Table) Probe(key uint64, depth, ply int) (score Value, move Move, bound Bound, ok bool) {
	e := &t.entries[index(key)]
	if e.bound == BoundNone || e.key != key || e.depth < depth {
		return 0, MoveNone, BoundNone, false
	}
	return adjustMateFromTT(e.score, ply), e.move, e.bound, true
}

// ProbeMove looks up key purely for its best move (e.g. to seed move
// ordering), ignoring depth and bound: any previously stored move for
// this position is still a reasonable ordering hint even if its score
// is stale.
func (t *Table) ProbeMove(key uint64) Move {
	e := &t.entries[index(key)]
	if e.bound == BoundNone || e.key != key {
		return MoveNone
	}
	return e.move
}

// Store records a search result for key. Mate scores are converted to be
// independent of the path from the root before storing, so a later probe
// at a different ply can still adjust them correctly.
func (t *Table) Store(key uint64, depth, ply int, score Value, move Move, bound Bound) {
	t.entries[index(key)] = entry{
		key:   key,
		move:  move,
		score: adjustMateToTT(score, ply),
		depth: depth,
		bound: bound,
	}
}

// adjustMateToTT converts a root-relative mate score into a path-
// independent one before storing: a mate score is shifted by ply so it
// records the distance to mate from the current node rather than from
// the root, and the same table entry is valid regardless of how far from
// the root it is reached when it is probed again.
func adjustMateToTT(score Value, ply int) Value {
	switch {
	case score > MateScore:
		return score + Value(ply)
	case score < -MateScore:
		return score - Value(ply)
	default:
		return score
	}
}

// adjustMateFromTT reverses adjustMateToTT when reading a stored score
// back out at the probing node's ply.
func adjustMateFromTT(score Value, ply int) Value {
	switch {
	case score > MateScore:
		return score - Value(ply)
	case score < -MateScore:
		return score + Value(ply)
	default:
		return score
	}
}
