// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit mask, one bit per square, bit i set iff square i
// carries whatever the bitboard represents (a piece, an attack, ...).
type Bitboard uint64

// Bb returns the single-bit bitboard for the square.
func (s Square) Bb() Bitboard { return Bitboard(1) << uint(s) }

// Has reports whether square s is set in b.
func (b Bitboard) Has(s Square) bool { return b&s.Bb() != 0 }

// Set returns b with square s added.
func (b Bitboard) Set(s Square) Bitboard { return b | s.Bb() }

// Clear returns b with square s removed.
func (b Bitboard) Clear(s Square) Bitboard { return b &^ s.Bb() }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the least significant set square, or NoSquare if b is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the least significant set square and the bitboard with
// that bit cleared.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	sq := b.LSB()
	return sq, b.Clear(sq)
}

// fileMask/rankMask build the mask of an entire file or rank given any
// index on it; used during attack-table initialization.
func fileMask(f int) Bitboard {
	var m Bitboard
	for r := 0; r < 8; r++ {
		m = m.Set(Square(r*8 + f))
	}
	return m
}

func rankMask(rankFromTop int) Bitboard {
	var m Bitboard
	for f := 0; f < 8; f++ {
		m = m.Set(Square(rankFromTop*8 + f))
	}
	return m
}

// File/rank edge masks guard leaper attack generation against wrapping
// around the board edges.
var (
	fileAMask = fileMask(0)
	fileHMask = fileMask(7)
	notFileA  = ^fileAMask
	notFileH  = ^fileHMask
	notFileAB = ^(fileAMask | fileMask(1))
	notFileGH = ^(fileMask(6) | fileHMask)
)

// FileAMask, FileHMask, NotFileA and NotFileH are exported for packages
// (attacks) that need the edge masks directly.
var (
	FileAMask = fileAMask
	FileHMask = fileHMask
	NotFileA  = notFileA
	NotFileH  = notFileH
	NotFileAB = notFileAB
	NotFileGH = notFileGH
)

// String renders the bitboard as an 8x8 ASCII board, rank 8 at the top,
// matching how the engine numbers squares.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := Square(row*8 + file)
			if b.Has(sq) {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// MoveListCapacity is the fixed capacity of a MoveList, large enough for
// any legal chess position (the true maximum is 218).
const MoveListCapacity = 256

// MoveList is a fixed-capacity, ordered sequence of encoded moves. Using
// an array instead of a slice keeps move generation allocation-free.
type MoveList struct {
	moves [MoveListCapacity]Move
	count int
}

// Add appends a move to the list.
func (l *MoveList) Add(m Move) {
	l.moves[l.count] = m
	l.count++
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.count }

// At returns the move at index i.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Set overwrites the move at index i, used by move-ordering sorts.
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.count = 0 }

// Slice returns the populated moves as a plain slice, sharing the backing
// array (valid only until the list is reused).
func (l *MoveList) Slice() []Move { return l.moves[:l.count] }
