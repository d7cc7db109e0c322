// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cormorant-chess/core/internal/position"
	. "github.com/cormorant-chess/core/internal/types"
)

func TestPseudoLegalStartPositionCount(t *testing.T) {
	p := position.New()
	var list MoveList
	PseudoLegal(p, GenAll, &list)
	assert.Equal(t, 20, list.Len())
}

func TestLegalFiltersSelfCheck(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/5r2/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var list MoveList
	Legal(p, GenAll, &list)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, F1, list.At(i).Target())
	}
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	p, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	var list MoveList
	PseudoLegal(p, GenAll, &list)

	foundKingside, foundQueenside := false, false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsCastle() && m.Target() == G1 {
			foundKingside = true
		}
		if m.IsCastle() && m.Target() == C1 {
			foundQueenside = true
		}
	}
	assert.True(t, foundKingside)
	assert.True(t, foundQueenside)
}

func TestCastlingBlockedByAttackedTransit(t *testing.T) {
	p, err := position.FromFEN("r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	var list MoveList
	PseudoLegal(p, GenAll, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.IsCastle() && m.Target() == G1)
	}
}

func TestFromUCIFindsLegalMove(t *testing.T) {
	p := position.New()
	m := FromUCI(p, "e2e4")
	assert.NotEqual(t, MoveNone, m)
	assert.True(t, m.IsDoublePush())
	assert.Equal(t, MoveNone, FromUCI(p, "e2e5"))
}

func TestFromUCIPromotion(t *testing.T) {
	p, err := position.FromFEN("8/4P3/8/8/4k3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	m := FromUCI(p, "e7e8q")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, Queen, m.Promoted().Type())
}

func TestHasLegalMoveDetectsStalemate(t *testing.T) {
	p, err := position.FromFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(p))
}
