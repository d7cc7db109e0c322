// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cormorant-chess/core/internal/types"
)

func TestStoreProbeRoundTrip(t *testing.T) {
	table := New()
	m := NewMove(E2, E4, WP, NoPiece, false, true, false, false)
	table.Store(12345, 6, 0, 250, m, BoundExact)

	score, move, bound, ok := table.Probe(12345, 6, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(250), score)
	assert.Equal(t, m, move)
	assert.Equal(t, BoundExact, bound)
}

func TestProbeMissOnEmptySlot(t *testing.T) {
	table := New()
	_, _, _, ok := table.Probe(999, 1, 0)
	assert.False(t, ok)
}

func TestProbeMissOnKeyCollision(t *testing.T) {
	table := New()
	table.Store(1, 4, 0, 10, MoveNone, BoundExact)
	// A different key that happens to hash to the same slot must not probe as a hit.
	collidingKey := uint64(1) + Size
	_, _, _, ok := table.Probe(collidingKey, 4, 0)
	assert.False(t, ok)
}

func TestProbeMissOnShallowerStoredDepth(t *testing.T) {
	table := New()
	table.Store(42, 3, 0, 10, MoveNone, BoundExact)
	_, _, _, ok := table.Probe(42, 5, 0)
	assert.False(t, ok)
}

func TestMateScoreDistanceAdjustment(t *testing.T) {
	table := New()
	// A mate found 3 plies below the root, stored at ply 3.
	mateIn2FromHere := MateValue - 2
	table.Store(7, 10, 3, mateIn2FromHere, MoveNone, BoundExact)

	// Probed again at the same ply, the score must come back unchanged.
	score, _, _, ok := table.Probe(7, 10, 3)
	assert.True(t, ok)
	assert.Equal(t, mateIn2FromHere, score)
}

func TestProbeMoveIgnoresDepth(t *testing.T) {
	table := New()
	m := NewMove(G1, F3, WN, NoPiece, false, false, false, false)
	table.Store(42, 3, 0, 10, m, BoundAlpha)

	// Probe refuses a shallower stored entry, but ProbeMove still returns
	// its move: a stale move is still a reasonable ordering hint.
	_, _, _, ok := table.Probe(42, 5, 0)
	assert.False(t, ok)
	assert.Equal(t, m, table.ProbeMove(42))
}

func TestProbeMoveMissOnEmptyOrCollidingSlot(t *testing.T) {
	table := New()
	assert.Equal(t, MoveNone, table.ProbeMove(999))

	table.Store(1, 4, 0, 10, NewMove(E2, E4, WP, NoPiece, false, true, false, false), BoundExact)
	collidingKey := uint64(1) + Size
	assert.Equal(t, MoveNone, table.ProbeMove(collidingKey))
}

func TestClearRemovesEntries(t *testing.T) {
	table := New()
	table.Store(1, 1, 0, 1, MoveNone, BoundExact)
	table.Clear()
	_, _, _, ok := table.Probe(1, 1, 0)
	assert.False(t, ok)
}
