// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package position implements the bitboard position model: piece
// placement, castling rights, en passant state, incremental Zobrist
// hashing and make/unmake move semantics. Move legality is not checked by
// the move generator; it is enforced here, after a move is made, by
// testing whether the side that just moved left its own king in check.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cormorant-chess/core/internal/attacks"
	. "github.com/cormorant-chess/core/internal/types"
	"github.com/cormorant-chess/core/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxRepetitionHistory bounds the repetition buffer the way the data model
// specifies: at most 1000 past hash keys.
const maxRepetitionHistory = 1000

// Position is the full mutable board state. It is a value type: copying a
// Position copies the board, which client code should avoid in hot paths
// in favor of MakeMove/UnmakeMove with an Undo record.
type Position struct {
	pieces   [PieceCount]Bitboard
	occWhite Bitboard
	occBlack Bitboard
	occBoth  Bitboard

	sideToMove Color
	epSquare   Square
	castling   CastlingRights
	hash       uint64

	// history is the repetition buffer: every hash key visited so far, in
	// order, capped at maxRepetitionHistory entries as the data model
	// requires. MakeMove appends to it and UnmakeMove truncates it, which
	// gives push/pop semantics scoped to search recursion as well as to
	// the root game history built while parsing a UCI "position" command.
	history []uint64

	halfmoveClock int
	fullmoveNo    int
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFen)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return p
}

// FromFEN parses the piece-placement/side/castling/en-passant subset of a
// FEN string. Halfmove and fullmove counters are parsed when present but
// are not required for correctness of any operation described in the
// data model; a short FEN without them is accepted.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: FEN %q needs at least 4 fields", fen)
	}

	p := &Position{epSquare: NoSquare}

	sq := Square(0)
	for _, r := range fields[0] {
		switch {
		case r == '/':
			continue
		case r >= '1' && r <= '8':
			sq += Square(r - '0')
		default:
			piece, ok := PieceFromFenByte(byte(r))
			if !ok {
				return nil, fmt.Errorf("position: invalid piece letter %q in FEN", r)
			}
			if !sq.Valid() {
				return nil, fmt.Errorf("position: FEN piece placement overflows the board")
			}
			p.pieces[piece] = p.pieces[piece].Set(sq)
			sq++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fmt.Errorf("position: invalid side to move %q in FEN", fields[1])
	}

	p.castling = NoCastling
	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("position: invalid castling letter %q in FEN", r)
			}
		}
	}

	if fields[3] != "-" {
		epSq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("position: invalid en passant square %q in FEN", fields[3])
		}
		p.epSquare = epSq
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNo = n
		}
	}

	p.recomputeOccupancy()
	p.hash = p.computeHash()
	p.history = make([]uint64, 0, maxRepetitionHistory)
	p.history = append(p.history, p.hash)

	return p, nil
}

// FEN renders the position back into Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(row*8 + file)
			piece, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.FenByte())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	if p.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epSquare.String())
	}
	sb.WriteString(fmt.Sprintf(" %d %d", p.halfmoveClock, p.fullmoveNo))
	return sb.String()
}

func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.FEN())
	sb.WriteByte('\n')
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := Square(row*8 + file)
			if piece, ok := p.PieceAt(sq); ok {
				sb.WriteByte(' ')
				sb.WriteByte(piece.FenByte())
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// SideToMove returns the side to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// EnPassant returns the current en passant target square, or NoSquare.
func (p *Position) EnPassant() Square { return p.epSquare }

// Castling returns the current castling rights mask.
func (p *Position) Castling() CastlingRights { return p.castling }

// Hash returns the incrementally maintained Zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// Pieces returns the bitboard of every occupied square for the given piece code.
func (p *Position) Pieces(piece Piece) Bitboard { return p.pieces[piece] }

// Occupancy returns the combined occupancy of one color; OccupiedBoth covers both.
func (p *Position) Occupancy(c Color) Bitboard {
	if c == White {
		return p.occWhite
	}
	return p.occBlack
}

// OccupiedBoth returns the occupancy of all pieces of both colors.
func (p *Position) OccupiedBoth() Bitboard { return p.occBoth }

// PieceAt scans the 12 piece bitboards for the one occupying sq.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !p.occBoth.Has(sq) {
		return NoPiece, false
	}
	for piece := Piece(0); piece < PieceCount; piece++ {
		if p.pieces[piece].Has(sq) {
			return piece, true
		}
	}
	return NoPiece, false
}

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[MakePiece(c, King)].LSB()
}

// InCheck reports whether the given color's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsSquareAttacked(p.KingSquare(c), c.Flip())
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if attacks.PawnAttacks(by.Flip(), sq)&p.pieces[MakePiece(by, Pawn)] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.pieces[MakePiece(by, Knight)] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.pieces[MakePiece(by, King)] != 0 {
		return true
	}
	if attacks.BishopAttacks(sq, p.occBoth)&p.pieces[MakePiece(by, Bishop)] != 0 {
		return true
	}
	if attacks.RookAttacks(sq, p.occBoth)&p.pieces[MakePiece(by, Rook)] != 0 {
		return true
	}
	if attacks.QueenAttacks(sq, p.occBoth)&p.pieces[MakePiece(by, Queen)] != 0 {
		return true
	}
	return false
}

// IsRepetition reports whether the current hash key has already occurred
// earlier in the repetition buffer (the definition of a draw by repetition
// this engine uses: any one earlier occurrence, not three).
func (p *Position) IsRepetition() bool {
	if len(p.history) < 2 {
		return false
	}
	current := p.hash
	for i := 0; i < len(p.history)-1; i++ {
		if p.history[i] == current {
			return true
		}
	}
	return false
}

func (p *Position) recomputeOccupancy() {
	p.occWhite = 0
	for pt := Pawn; pt <= King; pt++ {
		p.occWhite |= p.pieces[MakePiece(White, pt)]
	}
	p.occBlack = 0
	for pt := Pawn; pt <= King; pt++ {
		p.occBlack |= p.pieces[MakePiece(Black, pt)]
	}
	p.occBoth = p.occWhite | p.occBlack
}

func (p *Position) computeHash() uint64 {
	return zobrist.Compute(zobrist.HashFields{
		PieceAt:    p.PieceAt,
		Castling:   p.castling,
		EnPassant:  p.epSquare,
		SideToMove: p.sideToMove,
	})
}
