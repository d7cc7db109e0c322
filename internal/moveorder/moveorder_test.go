// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cormorant-chess/core/internal/movegen"
	"github.com/cormorant-chess/core/internal/position"
	. "github.com/cormorant-chess/core/internal/types"
)

func TestPVMoveSortsFirst(t *testing.T) {
	p := position.New()
	var list MoveList
	movegen.PseudoLegal(p, movegen.GenAll, &list)

	pv := movegen.FromUCI(p, "d2d4")
	o := New()
	o.SetPV(0, pv)
	o.Sort(p, 0, &list)
	assert.Equal(t, pv, list.At(0))
}

func TestTTMoveSortsAboveCapturesButBelowPV(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var list MoveList
	movegen.PseudoLegal(p, movegen.GenAll, &list)

	capture := movegen.FromUCI(p, "e4d5")
	assert.NotEqual(t, MoveNone, capture)
	hint := movegen.FromUCI(p, "e1d1")

	o := New()
	o.SetTTMove(0, hint)
	assert.Greater(t, o.Score(p, 0, hint), o.Score(p, 0, capture))

	pv := movegen.FromUCI(p, "e1f1")
	o.SetPV(0, pv)
	assert.Greater(t, o.Score(p, 0, pv), o.Score(p, 0, hint))
}

func TestClearPVForgetsLine(t *testing.T) {
	o := New()
	pv := movegen.FromUCI(position.New(), "d2d4")
	o.SetPV(0, pv)
	assert.Equal(t, pv, o.PV(0))
	o.ClearPV()
	assert.Equal(t, MoveNone, o.PV(0))
}

func TestMVVLVAOutranksKillersAndHistory(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	capture := movegen.FromUCI(p, "e4d5")
	assert.NotEqual(t, MoveNone, capture)

	quiet := NewMove(E1, D1, WK, NoPiece, false, false, false, false)

	o := New()
	o.StoreKiller(0, quiet)
	assert.Equal(t, killer1Score, o.Score(p, 0, quiet))
	assert.Greater(t, o.Score(p, 0, capture), o.Score(p, 0, quiet))
}

func TestStoreKillerShiftsSlots(t *testing.T) {
	o := New()
	m1 := NewMove(A2, A3, WP, NoPiece, false, false, false, false)
	m2 := NewMove(B2, B3, WP, NoPiece, false, false, false, false)
	o.StoreKiller(3, m1)
	o.StoreKiller(3, m2)
	assert.Equal(t, m2, o.killers[3][0])
	assert.Equal(t, m1, o.killers[3][1])
}

func TestHistorySaturatesAndHalves(t *testing.T) {
	o := New()
	for i := 0; i < 2000; i++ {
		o.AddHistory(WN, F3, 20)
	}
	assert.LessOrEqual(t, o.history[WN][F3], historyMax)
}
