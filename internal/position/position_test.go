// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cormorant-chess/core/internal/types"
)

func TestStartPositionFEN(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AllCastling, p.Castling())
	assert.Equal(t, NoSquare, p.EnPassant())
	assert.Equal(t, StartFen, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbq1rk1/ppp1bppp/4pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 0 6",
		"8/8/8/4k3/8/4K3/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestMakeUnmakeQuietMove(t *testing.T) {
	p := New()
	before := p.Hash()
	m := NewMove(E2, E4, WP, NoPiece, false, true, false, false)
	legal, undo := p.MakeMove(m)
	assert.True(t, legal)
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, E3, p.EnPassant())
	piece, ok := p.PieceAt(E4)
	assert.True(t, ok)
	assert.Equal(t, WP, piece)

	p.UnmakeMove(m, undo)
	assert.Equal(t, before, p.Hash())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, NoSquare, p.EnPassant())
	piece, ok = p.PieceAt(E2)
	assert.True(t, ok)
	assert.Equal(t, WP, piece)
	_, ok = p.PieceAt(E4)
	assert.False(t, ok)
}

func TestMakeUnmakeCapture(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)
	before := p.Hash()
	m := NewMove(D4, E5, WP, NoPiece, true, false, false, false)
	legal, undo := p.MakeMove(m)
	assert.True(t, legal)
	piece, ok := p.PieceAt(E5)
	assert.True(t, ok)
	assert.Equal(t, WP, piece)

	p.UnmakeMove(m, undo)
	assert.Equal(t, before, p.Hash())
	piece, ok = p.PieceAt(E5)
	assert.True(t, ok)
	assert.Equal(t, BP, piece)
	piece, ok = p.PieceAt(D4)
	assert.True(t, ok)
	assert.Equal(t, WP, piece)
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	before := p.Hash()
	m := NewMove(E5, D6, WP, NoPiece, true, false, true, false)
	legal, undo := p.MakeMove(m)
	assert.True(t, legal)
	_, ok := p.PieceAt(D5)
	assert.False(t, ok)
	piece, ok := p.PieceAt(D6)
	assert.True(t, ok)
	assert.Equal(t, WP, piece)

	p.UnmakeMove(m, undo)
	assert.Equal(t, before, p.Hash())
	piece, ok = p.PieceAt(D5)
	assert.True(t, ok)
	assert.Equal(t, BP, piece)
}

func TestMakeUnmakeCastle(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.Hash()
	m := NewMove(E1, G1, WK, NoPiece, false, false, false, true)
	legal, undo := p.MakeMove(m)
	assert.True(t, legal)
	king, ok := p.PieceAt(G1)
	assert.True(t, ok)
	assert.Equal(t, WK, king)
	rook, ok := p.PieceAt(F1)
	assert.True(t, ok)
	assert.Equal(t, WR, rook)
	assert.False(t, p.Castling().Has(WhiteKingside))
	assert.False(t, p.Castling().Has(WhiteQueenside))

	p.UnmakeMove(m, undo)
	assert.Equal(t, before, p.Hash())
	assert.True(t, p.Castling().Has(WhiteKingside))
	assert.True(t, p.Castling().Has(WhiteQueenside))
	rook, ok = p.PieceAt(H1)
	assert.True(t, ok)
	assert.Equal(t, WR, rook)
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/5r2/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	m := NewMove(E1, F1, WK, NoPiece, false, false, false, false)
	legal, undo := p.MakeMove(m)
	assert.False(t, legal)
	p.UnmakeMove(m, undo)
	king, ok := p.PieceAt(E1)
	assert.True(t, ok)
	assert.Equal(t, WK, king)
}

func TestNullMovePreservesHistoryAndHash(t *testing.T) {
	p := New()
	historyLenBefore := len(p.history)
	hashBefore := p.Hash()
	side := p.SideToMove()
	ep := p.MakeNullMove()
	assert.Equal(t, side.Flip(), p.SideToMove())
	assert.Equal(t, historyLenBefore, len(p.history))
	p.UnmakeNullMove(ep)
	assert.Equal(t, side, p.SideToMove())
	assert.Equal(t, historyLenBefore, len(p.history))
	assert.Equal(t, hashBefore, p.Hash())
}

func TestIsRepetition(t *testing.T) {
	p := New()
	assert.False(t, p.IsRepetition())

	m1 := NewMove(G1, F3, WN, NoPiece, false, false, false, false)
	m2 := NewMove(G8, F6, BN, NoPiece, false, false, false, false)
	m3 := NewMove(F3, G1, WN, NoPiece, false, false, false, false)
	m4 := NewMove(F6, G8, BN, NoPiece, false, false, false, false)

	_, u1 := p.MakeMove(m1)
	_, u2 := p.MakeMove(m2)
	assert.False(t, p.IsRepetition())
	_, u3 := p.MakeMove(m3)
	_, u4 := p.MakeMove(m4)
	assert.True(t, p.IsRepetition())

	p.UnmakeMove(m4, u4)
	p.UnmakeMove(m3, u3)
	p.UnmakeMove(m2, u2)
	p.UnmakeMove(m1, u1)
	assert.Equal(t, New().Hash(), p.Hash())
}

func TestHistoryNeverExceedsMaxRepetitionHistory(t *testing.T) {
	p := New()
	wKnightOut := NewMove(G1, F3, WN, NoPiece, false, false, false, false)
	bKnightOut := NewMove(G8, F6, BN, NoPiece, false, false, false, false)
	wKnightBack := NewMove(F3, G1, WN, NoPiece, false, false, false, false)
	bKnightBack := NewMove(F6, G8, BN, NoPiece, false, false, false, false)

	for i := 0; i < maxRepetitionHistory; i++ {
		p.MakeMove(wKnightOut)
		p.MakeMove(bKnightOut)
		p.MakeMove(wKnightBack)
		p.MakeMove(bKnightBack)
		assert.LessOrEqual(t, len(p.history), maxRepetitionHistory)
	}
	assert.Equal(t, maxRepetitionHistory, len(p.history))
}
