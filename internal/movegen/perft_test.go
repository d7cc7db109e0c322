// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cormorant-chess/core/internal/position"
)

func TestPerftShallow(t *testing.T) {
	p := position.New()
	assert.EqualValues(t, 20, Perft(p, 1))
	assert.EqualValues(t, 400, Perft(p, 2))
	assert.EqualValues(t, 8902, Perft(p, 3))
}

func TestPerftStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft is slow; run without -short")
	}
	p := position.New()
	assert.EqualValues(t, 4_865_609, Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft is slow; run without -short")
	}
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, 4_085_603, Perft(p, 4))
}

func TestPerftEndgamePosition(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft is slow; run without -short")
	}
	p, err := position.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, 674_624, Perft(p, 5))
}

func TestPerftPromotionHeavyPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("deep perft is slow; run without -short")
	}
	p, err := position.FromFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, 422_333, Perft(p, 4))
}
