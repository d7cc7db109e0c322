// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package attacks precomputes every piece's attack set so that move
// generation and check detection never walk a ray at search time. Leaper
// pieces (pawns, knights, kings) get a flat per-square table; sliders
// (bishops, rooks, queens) use magic bitboards: a per-square relevant-
// occupancy mask, a published magic multiplier and a shift collapse the
// actual blocker subset into a dense index into a precomputed attack table.
package attacks

import (
	. "github.com/cormorant-chess/core/internal/types"
)

var (
	pawnAttacks   [2][SquareCount]Bitboard
	knightAttacks [SquareCount]Bitboard
	kingAttacks   [SquareCount]Bitboard

	bishopMasks   [SquareCount]Bitboard
	rookMasks     [SquareCount]Bitboard
	bishopAttacks [SquareCount][]Bitboard
	rookAttacks   [SquareCount][]Bitboard
)

func init() {
	Init()
}

// Init populates every attack table. It is idempotent and cheap enough
// (well under a millisecond) to call once at process start; exported so
// tests and tools can force re-initialization deterministically.
func Init() {
	for sq := Square(0); sq < SquareCount; sq++ {
		pawnAttacks[White][sq] = maskPawnAttacks(White, sq)
		pawnAttacks[Black][sq] = maskPawnAttacks(Black, sq)
		knightAttacks[sq] = maskKnightAttacks(sq)
		kingAttacks[sq] = maskKingAttacks(sq)
		bishopMasks[sq] = maskBishopAttacks(sq)
		rookMasks[sq] = maskRookAttacks(sq)
	}
	initSliderTable(bishopMasks[:], bishopRelevantBits[:], bishopMagics[:], bishopAttacks[:], bishopAttacksOnTheFly)
	initSliderTable(rookMasks[:], rookRelevantBits[:], rookMagics[:], rookAttacks[:], rookAttacksOnTheFly)
}

// PawnAttacks returns the squares a pawn of the given color on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// BishopAttacks returns the bishop attack set from sq given the board's
// combined occupancy, in O(1) via the magic bitboard index.
func BishopAttacks(sq Square, occupancy Bitboard) Bitboard {
	occ := occupancy & bishopMasks[sq]
	idx := (uint64(occ) * bishopMagics[sq]) >> uint(64-bishopRelevantBits[sq])
	return bishopAttacks[sq][idx]
}

// RookAttacks returns the rook attack set from sq given the board's
// combined occupancy, in O(1) via the magic bitboard index.
func RookAttacks(sq Square, occupancy Bitboard) Bitboard {
	occ := occupancy & rookMasks[sq]
	idx := (uint64(occ) * rookMagics[sq]) >> uint(64-rookRelevantBits[sq])
	return rookAttacks[sq][idx]
}

// QueenAttacks is the union of the bishop and rook attack sets.
func QueenAttacks(sq Square, occupancy Bitboard) Bitboard {
	return BishopAttacks(sq, occupancy) | RookAttacks(sq, occupancy)
}

// AttacksOf returns the attack set for any piece kind by dispatching on
// pt; move generation uses it for the sliding pieces.
func AttacksOf(pt PieceType, c Color, sq Square, occupancy Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupancy)
	case Rook:
		return RookAttacks(sq, occupancy)
	case Queen:
		return QueenAttacks(sq, occupancy)
	case King:
		return kingAttacks[sq]
	}
	return 0
}

func maskPawnAttacks(c Color, sq Square) Bitboard {
	b := sq.Bb()
	var attacks Bitboard
	if c == White {
		attacks |= (b >> 7) & NotFileA
		attacks |= (b >> 9) & NotFileH
	} else {
		attacks |= (b << 7) & NotFileH
		attacks |= (b << 9) & NotFileA
	}
	return attacks
}

func maskKnightAttacks(sq Square) Bitboard {
	b := sq.Bb()
	var attacks Bitboard
	attacks |= (b >> 17) & NotFileH
	attacks |= (b >> 15) & NotFileA
	attacks |= (b >> 10) & NotFileGH
	attacks |= (b >> 6) & NotFileAB
	attacks |= (b << 17) & NotFileA
	attacks |= (b << 15) & NotFileH
	attacks |= (b << 10) & NotFileAB
	attacks |= (b << 6) & NotFileGH
	return attacks
}

func maskKingAttacks(sq Square) Bitboard {
	b := sq.Bb()
	var attacks Bitboard
	attacks |= b >> 8
	attacks |= (b >> 9) & NotFileH
	attacks |= (b >> 7) & NotFileA
	attacks |= (b >> 1) & NotFileH
	attacks |= b << 8
	attacks |= (b << 9) & NotFileA
	attacks |= (b << 7) & NotFileH
	attacks |= (b << 1) & NotFileA
	return attacks
}

// maskBishopAttacks returns the relevant-occupancy mask for a bishop on sq:
// every square a bishop could be blocked from, excluding the board edge
// (edge squares can never hold a blocking piece relevant to the magic index).
func maskBishopAttacks(sq Square) Bitboard {
	var attacks Bitboard
	tr, tf := sq.RankFromTop(), sq.File()
	for r, f := tr+1, tf+1; r < 7 && f < 7; r, f = r+1, f+1 {
		attacks = attacks.Set(Square(r*8 + f))
	}
	for r, f := tr-1, tf+1; r > 0 && f < 7; r, f = r-1, f+1 {
		attacks = attacks.Set(Square(r*8 + f))
	}
	for r, f := tr+1, tf-1; r < 7 && f > 0; r, f = r+1, f-1 {
		attacks = attacks.Set(Square(r*8 + f))
	}
	for r, f := tr-1, tf-1; r > 0 && f > 0; r, f = r-1, f-1 {
		attacks = attacks.Set(Square(r*8 + f))
	}
	return attacks
}

func maskRookAttacks(sq Square) Bitboard {
	var attacks Bitboard
	tr, tf := sq.RankFromTop(), sq.File()
	for r := tr + 1; r < 7; r++ {
		attacks = attacks.Set(Square(r*8 + tf))
	}
	for r := tr - 1; r > 0; r-- {
		attacks = attacks.Set(Square(r*8 + tf))
	}
	for f := tf + 1; f < 7; f++ {
		attacks = attacks.Set(Square(tr*8 + f))
	}
	for f := tf - 1; f > 0; f-- {
		attacks = attacks.Set(Square(tr*8 + f))
	}
	return attacks
}

// bishopAttacksOnTheFly walks all four diagonals from sq, stopping at the
// first blocker (inclusive), against a concrete occupancy. Used only during
// table initialization, never in the hot path.
func bishopAttacksOnTheFly(sq Square, block Bitboard) Bitboard {
	return slidingAttacksOnTheFly(sq, block, [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}})
}

func rookAttacksOnTheFly(sq Square, block Bitboard) Bitboard {
	return slidingAttacksOnTheFly(sq, block, [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}})
}

func slidingAttacksOnTheFly(sq Square, block Bitboard, deltas [4][2]int) Bitboard {
	var attacks Bitboard
	tr, tf := sq.RankFromTop(), sq.File()
	for _, d := range deltas {
		for r, f := tr+d[0], tf+d[1]; r >= 0 && r < 8 && f >= 0 && f < 8; r, f = r+d[0], f+d[1] {
			s := Square(r*8 + f)
			attacks = attacks.Set(s)
			if block.Has(s) {
				break
			}
		}
	}
	return attacks
}

// initSliderTable enumerates every subset of each square's relevant-
// occupancy mask (one per index, via occupancySubset), computes the true blocked
// attack for that occupancy and stores it at the magic index.
func initSliderTable(masks []Bitboard, relevantBits []int, magics []uint64, table [][]Bitboard, onTheFly func(Square, Bitboard) Bitboard) {
	for sq := Square(0); sq < SquareCount; sq++ {
		bits := relevantBits[sq]
		size := 1 << bits
		table[sq] = make([]Bitboard, size)
		mask := masks[sq]
		for index := 0; index < size; index++ {
			occupancy := occupancySubset(index, bits, mask)
			magicIdx := (uint64(occupancy) * magics[sq]) >> uint(64-bits)
			table[sq][magicIdx] = onTheFly(sq, occupancy)
		}
	}
}

// occupancySubset maps an integer in [0, 2^bits) to the corresponding
// subset of mask, by treating each bit of index as "include this square
// of mask".
func occupancySubset(index, bits int, mask Bitboard) Bitboard {
	var occupancy Bitboard
	for i := 0; i < bits; i++ {
		sq, rest := mask.PopLSB()
		mask = rest
		if index&(1<<uint(i)) != 0 {
			occupancy = occupancy.Set(sq)
		}
	}
	return occupancy
}
