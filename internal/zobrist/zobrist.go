// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package zobrist holds the random keys used to build an incremental
// 64-bit position hash, and the deterministic PRNG that seeds them. The
// tables are generated once at process start and never change afterwards,
// so every position package can treat them as read-only globals.
package zobrist

import (
	. "github.com/cormorant-chess/core/internal/types"
)

// seed reproduces the reference engine's key generation bit for bit: a
// fixed seed means two processes started with the same binary always
// agree on the same hash keys.
const seed uint32 = 1804289383

var (
	// PieceKeys holds one random key per (piece, square) combination.
	PieceKeys [PieceCount][SquareCount]uint64
	// EnPassantKeys holds one random key per square; only squares that can
	// ever be an en passant target are actually XORed in.
	EnPassantKeys [SquareCount]uint64
	// CastleKeys holds one random key per castling-rights bitmask value (16).
	CastleKeys [16]uint64
	// SideKey is XORed into the hash whenever Black is to move.
	SideKey uint64
)

func init() {
	Init()
}

// Init (re)populates every Zobrist key table from the deterministic seed.
// Exported so tests can force a fresh, reproducible table.
func Init() {
	state := seed
	next32 := func() uint32 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return state
	}
	next64 := func() uint64 {
		var n [4]uint64
		for i := range n {
			n[i] = uint64(next32()) & 0xFFFF
		}
		return n[0] | n[1]<<16 | n[2]<<32 | n[3]<<48
	}

	for p := Piece(0); p < PieceCount; p++ {
		for sq := Square(0); sq < SquareCount; sq++ {
			PieceKeys[p][sq] = next64()
		}
	}
	for sq := Square(0); sq < SquareCount; sq++ {
		EnPassantKeys[sq] = next64()
	}
	for i := range CastleKeys {
		CastleKeys[i] = next64()
	}
	SideKey = next64()
}

// HashFields are the pieces of position state a Zobrist hash is built
// from, kept package-agnostic so position.Position can supply them
// without this package importing position (which would be a cycle).
type HashFields struct {
	PieceAt  func(sq Square) (Piece, bool)
	Castling CastlingRights
	EnPassant Square
	SideToMove Color
}

// Compute builds the full hash key from scratch: XOR every occupied
// (piece, square) key, the castling-rights key, the en-passant key if a
// target square exists, and the side key iff Black is to move. Used both
// to seed a freshly parsed position and to verify incremental updates.
func Compute(f HashFields) uint64 {
	var key uint64
	for sq := Square(0); sq < SquareCount; sq++ {
		if p, ok := f.PieceAt(sq); ok {
			key ^= PieceKeys[p][sq]
		}
	}
	key ^= CastleKeys[f.Castling]
	if f.EnPassant != NoSquare {
		key ^= EnPassantKeys[f.EnPassant]
	}
	if f.SideToMove == Black {
		key ^= SideKey
	}
	return key
}
