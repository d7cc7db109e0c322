// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package types

// Move is a move packed into a single integer so it can be generated,
// sorted and compared without allocation:
//
//	bits [0:6)   source square
//	bits [6:12)  target square
//	bits [12:16) moving piece (0..11)
//	bits [16:20) promoted piece, or NoPiece (12) if this isn't a promotion
//	bit  20      capture flag
//	bit  21      double pawn push flag
//	bit  22      en passant flag
//	bit  23      castling flag
type Move uint32

// MoveNone is the zero move. It encodes to the UCI string "a8a8" (source
// and target both 0) which GUIs and tests may interpret as "no move".
const MoveNone Move = 0

const (
	sourceShift   = 0
	targetShift   = 6
	pieceShift    = 12
	promotedShift = 16
	captureBit    = 20
	doubleBit     = 21
	enPassantBit  = 22
	castleBit     = 23

	sixBitMask = 0x3F
	fourBitMask = 0xF
)

// NewMove packs a move from its fields.
func NewMove(source, target Square, piece, promoted Piece, capture, double, enPassant, castle bool) Move {
	m := Move(source)&sixBitMask | (Move(target)&sixBitMask)<<targetShift |
		(Move(piece)&fourBitMask)<<pieceShift | (Move(promoted)&fourBitMask)<<promotedShift
	if capture {
		m |= 1 << captureBit
	}
	if double {
		m |= 1 << doubleBit
	}
	if enPassant {
		m |= 1 << enPassantBit
	}
	if castle {
		m |= 1 << castleBit
	}
	return m
}

// Source returns the move's origin square.
func (m Move) Source() Square { return Square((m >> sourceShift) & sixBitMask) }

// Target returns the move's destination square.
func (m Move) Target() Square { return Square((m >> targetShift) & sixBitMask) }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return Piece((m >> pieceShift) & fourBitMask) }

// Promoted returns the promotion piece, or NoPiece if this move isn't a promotion.
func (m Move) Promoted() Piece { return Piece((m >> promotedShift) & fourBitMask) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promoted() != NoPiece }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m&(1<<captureBit) != 0 }

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool { return m&(1<<doubleBit) != 0 }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m&(1<<enPassantBit) != 0 }

// IsCastle reports whether the move is a castling move (king's move only;
// the rook relocation is implied by the target square).
func (m Move) IsCastle() bool { return m&(1<<castleBit) != 0 }

// IsQuiet reports whether the move is neither a capture nor a promotion,
// the population used by move ordering and late move reductions.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// UCI renders the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m == MoveNone {
		return "a8a8"
	}
	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		s += string(m.Promoted().Type().PromotionLetter())
	}
	return s
}

func (m Move) String() string { return m.UCI() }
