// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package types holds the small, allocation-free value types shared by every
// other package: squares, colors, pieces, moves and bitboards. Nothing in
// here depends on position or search state, so it is safe to import from
// anywhere in the engine.
package types

import "fmt"

// Square is a board square numbered 0..63, row-major starting at a8.
//
//	a8=0 b8=1 c8=2 d8=3 e8=4 f8=5 g8=6 h8=7
//	a7=8 ...                              h7=15
//	...
//	a1=56 ...                             h1=63
//
// This convention (rank 8 first, a-file first) is load-bearing: the magic
// bitboard tables and the UCI coordinate mapping are both defined in terms
// of it and must not be renumbered independently.
type Square int

// Board squares, a8 through h1.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare
)

// SquareCount is the number of real board squares.
const SquareCount = 64

// File returns the 0-based file (0=a .. 7=h) of the square.
func (s Square) File() int { return int(s) & 7 }

// RankFromTop returns the 0-based row counting from rank 8 (0=rank8 .. 7=rank1).
func (s Square) RankFromTop() int { return int(s) >> 3 }

// Rank returns the conventional chess rank number, 1..8.
func (s Square) Rank() int { return 8 - s.RankFromTop() }

// Valid reports whether s is one of the 64 real board squares.
func (s Square) Valid() bool { return s >= A8 && s <= H1 }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File(), s.Rank())
}

// SquareOf builds the Square for the given file (0=a..7=h) and chess rank (1..8).
func SquareOf(file, rank int) Square {
	return Square((8-rank)*8 + file)
}

// ParseSquare parses an algebraic coordinate like "e4" into a Square.
// Returns NoSquare and false if the text isn't a well-formed coordinate.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareOf(int(file-'a'), int(rank-'0')), true
}

// Direction is a compass offset used when building leaper/slider masks.
type Direction int

// The eight compass directions, expressed as the square-index delta applied
// when moving one step in that direction (valid only away from board edges).
const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = -7
	Northwest Direction = -9
	Southeast Direction = 9
	Southwest Direction = 7
)
