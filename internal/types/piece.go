// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package types

// PieceType is a piece kind independent of color: Pawn..King, 0..5.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeCount
)

// pieceTypeLetters is indexed by PieceType for FEN/UCI rendering.
var pieceTypeLetters = [PieceTypeCount]byte{'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	if pt < 0 || pt >= PieceTypeCount {
		return "?"
	}
	return string(pieceTypeLetters[pt])
}

// Piece is the board's piece code: 0..11 for {WP,WN,WB,WR,WQ,WK,BP,BN,BB,BR,BQ,BK}.
// NoPiece (12) is the sentinel used for "no piece" / "no promotion".
type Piece int

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	NoPiece
)

// PieceCount is the number of real piece codes (excludes the NoPiece sentinel).
const PieceCount = 12

// MakePiece builds the combined piece code from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*int(PieceTypeCount) + int(pt))
}

// Type strips the color, returning the piece kind.
func (p Piece) Type() PieceType {
	return PieceType(int(p) % int(PieceTypeCount))
}

// Color returns the owning side of the piece.
func (p Piece) Color() Color {
	if int(p) < int(PieceTypeCount) {
		return White
	}
	return Black
}

// Valid reports whether p is one of the 12 real piece codes.
func (p Piece) Valid() bool { return p >= WP && p <= BK }

var fenPieceLetters = [PieceCount]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// FenByte returns the FEN piece-placement letter for p.
func (p Piece) FenByte() byte {
	if !p.Valid() {
		return '?'
	}
	return fenPieceLetters[p]
}

func (p Piece) String() string {
	return string(p.FenByte())
}

// PieceFromFenByte maps a FEN letter back to a Piece. ok is false for any
// byte that isn't one of the 12 recognized piece letters.
func PieceFromFenByte(b byte) (p Piece, ok bool) {
	for i, l := range fenPieceLetters {
		if l == b {
			return Piece(i), true
		}
	}
	return NoPiece, false
}

// PromotionLetter returns the lowercase UCI promotion letter for a piece
// type (q, r, b or n). Only meaningful for Queen/Rook/Bishop/Knight.
func (pt PieceType) PromotionLetter() byte {
	return pieceTypeLetters[pt]
}

// PieceTypeFromPromotionLetter parses a UCI promotion letter (q|r|b|n).
func PieceTypeFromPromotionLetter(b byte) (PieceType, bool) {
	switch b {
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	}
	return Pawn, false
}
