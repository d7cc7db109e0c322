// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package types

// Value is a centipawn-scale search or evaluation score.
type Value int32

// Search-wide score constants (see package search for how they're used).
const (
	Infinity  Value = 50000
	MateValue Value = 49000
	MateScore Value = 48000
)

// MaxPly bounds every ply-indexed search table (PV, killers, the search
// stack itself): no search line is ever extended past this many plies.
const MaxPly = 64

// PieceValue gives the material worth of a piece type in centipawns, used
// by the static evaluator.
var PieceValue = [PieceTypeCount]Value{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}
