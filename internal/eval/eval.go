// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package eval is the static position evaluator search falls back to at
// the leaves of its tree: material balance plus piece-square tables and
// a pawn-structure term, all from White's perspective and then negated
// for the side to move as negamax search expects.
package eval

import (
	"github.com/cormorant-chess/core/internal/position"
	. "github.com/cormorant-chess/core/internal/types"
)

// doublePawnPenalty and isolatedPawnPenalty are applied symmetrically for
// both colors. The reference evaluator this is grounded on computed the
// black-side penalty with a different formula and opposite sign than the
// white side (an open question left unresolved upstream); since static
// evaluation quality isn't a correctness requirement here, this
// implementation uses one symmetric formula for both colors instead.
const (
	doublePawnPenalty   Value = 10
	isolatedPawnPenalty Value = 10
)

// pst holds White-perspective piece-square bonuses indexed by square
// (a8=0..h1=63). Black's bonus for the same piece on a mirrored square is
// looked up by flipping the square vertically (sq ^ 56).
var pst = [PieceTypeCount][SquareCount]Value{
	Pawn: {
		90, 90, 90, 90, 90, 90, 90, 90,
		30, 30, 30, 40, 40, 30, 30, 30,
		20, 20, 20, 30, 30, 30, 20, 20,
		10, 10, 10, 20, 20, 10, 10, 10,
		5, 5, 10, 20, 20, 5, 5, 5,
		0, 0, 0, 5, 5, 0, 0, 0,
		0, 0, 0, -10, -10, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-5, -10, 0, 0, 0, 0, -10, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 5, 20, 10, 10, 20, 5, -5,
		-5, 10, 20, 30, 30, 20, 10, -5,
		-5, 10, 20, 30, 30, 20, 10, -5,
		-5, 5, 20, 20, 20, 20, 5, -5,
		-5, 0, 0, 10, 10, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
	},
	Bishop: {
		0, 0, -10, 0, 0, -10, 0, 0,
		0, 30, 0, 0, 0, 0, 30, 0,
		0, 10, 0, 0, 0, 0, 10, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 20, 0, 10, 10, 0, 20, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Rook: {
		0, 0, 0, 20, 20, 0, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		50, 50, 50, 50, 50, 50, 50, 50,
	},
	Queen: {},
	King: {
		0, 0, 5, 0, -15, 0, 10, 0,
		0, 5, 5, -5, -5, 0, 5, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 5, 5, 10, 10, 5, 5, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// mirror flips a square vertically (rank 8 <-> rank 1) so White's
// piece-square table can be reused to score Black's pieces.
func mirror(sq Square) Square { return sq ^ 56 }

// Evaluate scores p from the perspective of the side to move: positive
// means the side to move stands better. Any fixed, deterministic
// integer-valued function of the position satisfies every contract the
// rest of the engine places on this package; this one happens to be
// material-plus-PST.
func Evaluate(p *position.Position) Value {
	score := evaluateWhite(p)
	if p.SideToMove() == Black {
		return -score
	}
	return score
}

func evaluateWhite(p *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= King; pt++ {
		score += materialAndPST(p, White, pt)
		score -= materialAndPST(p, Black, pt)
	}
	score += pawnStructure(p, White)
	score -= pawnStructure(p, Black)
	return score
}

func materialAndPST(p *position.Position, c Color, pt PieceType) Value {
	bb := p.Pieces(MakePiece(c, pt))
	var score Value
	for bb != 0 {
		sq, rest := bb.PopLSB()
		bb = rest
		score += PieceValue[pt]
		if c == White {
			score += pst[pt][sq]
		} else {
			score += pst[pt][mirror(sq)]
		}
	}
	return score
}

// pawnStructure penalizes doubled pawns (more than one pawn of the same
// color on a file) and isolated pawns (no friendly pawn on an adjacent
// file), applying the same formula to both colors.
func pawnStructure(p *position.Position, c Color) Value {
	pawns := p.Pieces(MakePiece(c, Pawn))
	var score Value
	for file := 0; file < 8; file++ {
		fileMask := Bitboard(0)
		for r := 0; r < 8; r++ {
			fileMask = fileMask.Set(Square(r*8 + file))
		}
		onFile := (pawns & fileMask).PopCount()
		if onFile > 1 {
			score -= doublePawnPenalty * Value(onFile-1)
		}
		if onFile > 0 {
			adjacent := Bitboard(0)
			if file > 0 {
				for r := 0; r < 8; r++ {
					adjacent = adjacent.Set(Square(r*8 + file - 1))
				}
			}
			if file < 7 {
				for r := 0; r < 8; r++ {
					adjacent = adjacent.Set(Square(r*8 + file + 1))
				}
			}
			if pawns&adjacent == 0 {
				score -= isolatedPawnPenalty * Value(onFile)
			}
		}
	}
	return score
}
