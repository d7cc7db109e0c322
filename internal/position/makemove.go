// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package position

import (
	. "github.com/cormorant-chess/core/internal/types"
	"github.com/cormorant-chess/core/internal/zobrist"
)

// Undo carries everything MakeMove destroys that UnmakeMove needs back:
// the irreversible parts of position state (castling rights, en passant
// square, halfmove clock, hash) plus whatever was captured. It is the
// explicit-undo-record alternative to copying the whole Position on every
// move: the board itself is restored by replaying the move's effect in
// reverse, using only the fields recorded here.
type Undo struct {
	captured      Piece
	captureSquare Square
	castling      CastlingRights
	epSquare      Square
	hash          uint64
	halfmoveClock int
}

// MakeMove applies m to the position unconditionally, updating bitboards,
// occupancy, castling rights, en passant state, the incremental hash and
// the repetition history. It returns false (and leaves the position
// fully updated, including history) if the move left the mover's own king
// in check, in which case the caller must call UnmakeMove before
// continuing: legality is checked after the fact rather than filtered out
// during generation.
func (p *Position) MakeMove(m Move) (legal bool, undo Undo) {
	source, target := m.Source(), m.Target()
	piece := m.Piece()
	mover := piece.Color()

	undo.castling = p.castling
	undo.epSquare = p.epSquare
	undo.hash = p.hash
	undo.halfmoveClock = p.halfmoveClock
	undo.captured = NoPiece
	undo.captureSquare = NoSquare

	p.hash ^= zobrist.CastleKeys[p.castling]
	if p.epSquare != NoSquare {
		p.hash ^= zobrist.EnPassantKeys[p.epSquare]
	}

	if piece.Type() == Pawn || m.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	captureSquare := target
	if m.IsEnPassant() {
		if mover == White {
			captureSquare = target + Square(South)
		} else {
			captureSquare = target + Square(North)
		}
	}
	if m.IsCapture() {
		capturedPiece, ok := p.PieceAt(captureSquare)
		if !ok {
			panic("position: capture move has no piece on the capture square")
		}
		undo.captured = capturedPiece
		undo.captureSquare = captureSquare
		p.removePiece(capturedPiece, captureSquare)
		p.hash ^= zobrist.PieceKeys[capturedPiece][captureSquare]
	}

	p.removePiece(piece, source)
	p.hash ^= zobrist.PieceKeys[piece][source]

	placed := piece
	if m.IsPromotion() {
		placed = m.Promoted()
	}
	p.addPiece(placed, target)
	p.hash ^= zobrist.PieceKeys[placed][target]

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(target)
		rook := MakePiece(mover, Rook)
		p.removePiece(rook, rookFrom)
		p.hash ^= zobrist.PieceKeys[rook][rookFrom]
		p.addPiece(rook, rookTo)
		p.hash ^= zobrist.PieceKeys[rook][rookTo]
	}

	p.castling &= CastlingRightsMask[source] & CastlingRightsMask[target]
	p.hash ^= zobrist.CastleKeys[p.castling]

	if m.IsDoublePush() {
		if mover == White {
			p.epSquare = target + Square(South)
		} else {
			p.epSquare = target + Square(North)
		}
		p.hash ^= zobrist.EnPassantKeys[p.epSquare]
	} else {
		p.epSquare = NoSquare
	}

	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.SideKey

	if mover == Black {
		p.fullmoveNo++
	}

	if len(p.history) >= maxRepetitionHistory {
		copy(p.history, p.history[1:])
		p.history = p.history[:len(p.history)-1]
	}
	p.history = append(p.history, p.hash)

	if p.InCheck(mover) {
		return false, undo
	}
	return true, undo
}

// UnmakeMove reverses the effect of the matching MakeMove call, restoring
// the position to exactly the state it was in before, including the
// repetition history entry MakeMove appended.
func (p *Position) UnmakeMove(m Move, undo Undo) {
	if len(p.history) > 0 {
		p.history = p.history[:len(p.history)-1]
	}

	p.sideToMove = p.sideToMove.Flip()
	mover := p.sideToMove

	if mover == Black {
		p.fullmoveNo--
	}

	source, target := m.Source(), m.Target()
	piece := m.Piece()

	placed := piece
	if m.IsPromotion() {
		placed = m.Promoted()
	}
	p.removePiece(placed, target)
	p.addPiece(piece, source)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(target)
		rook := MakePiece(mover, Rook)
		p.removePiece(rook, rookTo)
		p.addPiece(rook, rookFrom)
	}

	if m.IsCapture() {
		p.addPiece(undo.captured, undo.captureSquare)
	}

	p.castling = undo.castling
	p.epSquare = undo.epSquare
	p.hash = undo.hash
	p.halfmoveClock = undo.halfmoveClock
}

// castleRookSquares returns the rook's source and destination square for
// a castling move identified only by the king's target square.
func castleRookSquares(kingTarget Square) (from, to Square) {
	switch kingTarget {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	panic("position: castling move has an invalid king target square")
}

// MakeNullMove flips the side to move and clears the en passant square
// without touching the repetition history: a null move position is never
// a real position the game could return to, so it must never be mistaken
// for a repetition, and reversing it must never create a phantom
// repetition entry either. Null moves are only legal when the side to
// move is not in check, which is the caller's responsibility to check.
func (p *Position) MakeNullMove() (epSquare Square) {
	epSquare = p.epSquare
	if p.epSquare != NoSquare {
		p.hash ^= zobrist.EnPassantKeys[p.epSquare]
		p.epSquare = NoSquare
	}
	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.SideKey
	return epSquare
}

// UnmakeNullMove reverses MakeNullMove given the en passant square it returned.
func (p *Position) UnmakeNullMove(epSquare Square) {
	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.SideKey
	if epSquare != NoSquare {
		p.epSquare = epSquare
		p.hash ^= zobrist.EnPassantKeys[epSquare]
	}
}

func (p *Position) addPiece(piece Piece, sq Square) {
	p.pieces[piece] = p.pieces[piece].Set(sq)
	if piece.Color() == White {
		p.occWhite = p.occWhite.Set(sq)
	} else {
		p.occBlack = p.occBlack.Set(sq)
	}
	p.occBoth = p.occBoth.Set(sq)
}

func (p *Position) removePiece(piece Piece, sq Square) {
	p.pieces[piece] = p.pieces[piece].Clear(sq)
	if piece.Color() == White {
		p.occWhite = p.occWhite.Clear(sq)
	} else {
		p.occBlack = p.occBlack.Clear(sq)
	}
	p.occBoth = p.occBoth.Clear(sq)
}
