// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package movegen generates pseudo-legal and legal moves for a position.
// Move generation never mutates its position argument; legality filtering
// is done by delegating to position.MakeMove/UnmakeMove, which is the only
// place that knows whether a move leaves its own king in check.
package movegen

import (
	"regexp"
	"strings"

	"github.com/cormorant-chess/core/internal/attacks"
	"github.com/cormorant-chess/core/internal/position"
	. "github.com/cormorant-chess/core/internal/types"
)

// GenMode selects which subset of moves to generate, so search can ask
// quiescence for captures only and the main loop for everything.
type GenMode int

const (
	GenCaptures GenMode = 1 << iota
	GenQuiets
	GenAll = GenCaptures | GenQuiets
)

// PseudoLegal fills a MoveList with every pseudo-legal move for the side
// to move in mode. "Pseudo-legal" means the board mechanics (piece
// movement pattern, blocking, capture rules, castling gating) are all
// respected, but a move may still leave the mover's own king in check;
// callers that need only legal moves should use Legal instead.
func PseudoLegal(p *position.Position, mode GenMode, list *MoveList) {
	list.Reset()
	genPawnMoves(p, mode, list)
	genKnightMoves(p, mode, list)
	genSliderMoves(p, Bishop, mode, list)
	genSliderMoves(p, Rook, mode, list)
	genSliderMoves(p, Queen, mode, list)
	genKingMoves(p, mode, list)
	if mode&GenQuiets != 0 {
		genCastling(p, list)
	}
}

// Legal fills list with every legal move: each pseudo-legal move is
// applied and immediately undone, keeping only the ones MakeMove reports
// as legal. This costs one make/unmake per candidate but keeps move
// generation itself simple and side-effect free.
func Legal(p *position.Position, mode GenMode, list *MoveList) {
	var pseudo MoveList
	PseudoLegal(p, mode, &pseudo)
	list.Reset()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		legal, undo := p.MakeMove(m)
		if legal {
			list.Add(m)
		}
		p.UnmakeMove(m, undo)
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full legal move list; used for checkmate
// and stalemate detection where only the existence of a move matters.
func HasLegalMove(p *position.Position) bool {
	var pseudo MoveList
	PseudoLegal(p, GenAll, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		legal, undo := p.MakeMove(m)
		p.UnmakeMove(m, undo)
		if legal {
			return true
		}
	}
	return false
}

var uciMoveRe = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrqNBRQ])?$`)

// FromUCI matches a UCI long algebraic move string (e.g. "e2e4", "e7e8q")
// against the position's legal moves and returns the matching encoded
// move, or MoveNone if it isn't legal here.
func FromUCI(p *position.Position, uci string) Move {
	match := uciMoveRe.FindStringSubmatch(uci)
	if match == nil {
		return MoveNone
	}
	source, ok1 := ParseSquare(match[1])
	target, ok2 := ParseSquare(match[2])
	if !ok1 || !ok2 {
		return MoveNone
	}
	var promo PieceType
	wantPromotion := false
	if match[3] != "" {
		pt, ok := PieceTypeFromPromotionLetter(strings.ToLower(match[3])[0])
		if !ok {
			return MoveNone
		}
		promo = pt
		wantPromotion = true
	}

	var legal MoveList
	Legal(p, GenAll, &legal)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.Source() != source || m.Target() != target {
			continue
		}
		if wantPromotion != m.IsPromotion() {
			continue
		}
		if wantPromotion && m.Promoted().Type() != promo {
			continue
		}
		return m
	}
	return MoveNone
}

func genPawnMoves(p *position.Position, mode GenMode, list *MoveList) {
	side := p.SideToMove()
	pawn := MakePiece(side, Pawn)
	occ := p.OccupiedBoth()
	enemy := p.Occupancy(side.Flip())

	forward := Square(North)
	startRank := 6 // rank 2 in RankFromTop terms
	promoRank := 0 // rank 8 in RankFromTop terms
	if side == Black {
		forward = Square(South)
		startRank = 1
		promoRank = 7
	}

	pawns := p.Pieces(pawn)
	for pawns != 0 {
		source, rest := pawns.PopLSB()
		pawns = rest

		target := source + forward
		if mode&GenQuiets != 0 && target.Valid() && !occ.Has(target) {
			if target.RankFromTop() == promoRank {
				addPromotions(list, source, target, pawn, false)
			} else {
				list.Add(NewMove(source, target, pawn, NoPiece, false, false, false, false))
				if source.RankFromTop() == startRank {
					doubleTarget := target + forward
					if !occ.Has(doubleTarget) {
						list.Add(NewMove(source, doubleTarget, pawn, NoPiece, false, true, false, false))
					}
				}
			}
		}

		if mode&GenCaptures != 0 {
			captures := attacks.PawnAttacks(side, source) & enemy
			for captures != 0 {
				captureTarget, capRest := captures.PopLSB()
				captures = capRest
				if captureTarget.RankFromTop() == promoRank {
					addPromotions(list, source, captureTarget, pawn, true)
				} else {
					list.Add(NewMove(source, captureTarget, pawn, NoPiece, true, false, false, false))
				}
			}

			if ep := p.EnPassant(); ep != NoSquare {
				if attacks.PawnAttacks(side, source).Has(ep) {
					list.Add(NewMove(source, ep, pawn, NoPiece, true, false, true, false))
				}
			}
		}
	}
}

func addPromotions(list *MoveList, source, target Square, pawn Piece, capture bool) {
	side := pawn.Color()
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		list.Add(NewMove(source, target, pawn, MakePiece(side, pt), capture, false, false, false))
	}
}

func genKnightMoves(p *position.Position, mode GenMode, list *MoveList) {
	side := p.SideToMove()
	piece := MakePiece(side, Knight)
	own := p.Occupancy(side)
	enemy := p.Occupancy(side.Flip())

	pieces := p.Pieces(piece)
	for pieces != 0 {
		source, rest := pieces.PopLSB()
		pieces = rest
		targets := attacks.KnightAttacks(source) &^ own
		addLeaperTargets(list, source, piece, targets, enemy, mode)
	}
}

func genKingMoves(p *position.Position, mode GenMode, list *MoveList) {
	side := p.SideToMove()
	piece := MakePiece(side, King)
	own := p.Occupancy(side)
	enemy := p.Occupancy(side.Flip())

	source := p.KingSquare(side)
	targets := attacks.KingAttacks(source) &^ own
	addLeaperTargets(list, source, piece, targets, enemy, mode)
}

func addLeaperTargets(list *MoveList, source Square, piece Piece, targets, enemy Bitboard, mode GenMode) {
	for targets != 0 {
		target, rest := targets.PopLSB()
		targets = rest
		capture := enemy.Has(target)
		if capture && mode&GenCaptures != 0 {
			list.Add(NewMove(source, target, piece, NoPiece, true, false, false, false))
		} else if !capture && mode&GenQuiets != 0 {
			list.Add(NewMove(source, target, piece, NoPiece, false, false, false, false))
		}
	}
}

func genSliderMoves(p *position.Position, pt PieceType, mode GenMode, list *MoveList) {
	side := p.SideToMove()
	piece := MakePiece(side, pt)
	own := p.Occupancy(side)
	enemy := p.Occupancy(side.Flip())
	occ := p.OccupiedBoth()

	pieces := p.Pieces(piece)
	for pieces != 0 {
		source, rest := pieces.PopLSB()
		pieces = rest
		targets := attacks.AttacksOf(pt, side, source, occ) &^ own
		addLeaperTargets(list, source, piece, targets, enemy, mode)
	}
}

func genCastling(p *position.Position, list *MoveList) {
	side := p.SideToMove()
	occ := p.OccupiedBoth()
	opponent := side.Flip()

	if side == White {
		if p.Castling().Has(WhiteKingside) &&
			!occ.Has(F1) && !occ.Has(G1) &&
			!p.IsSquareAttacked(E1, opponent) && !p.IsSquareAttacked(F1, opponent) {
			list.Add(NewMove(E1, G1, WK, NoPiece, false, false, false, true))
		}
		if p.Castling().Has(WhiteQueenside) &&
			!occ.Has(D1) && !occ.Has(C1) && !occ.Has(B1) &&
			!p.IsSquareAttacked(E1, opponent) && !p.IsSquareAttacked(D1, opponent) {
			list.Add(NewMove(E1, C1, WK, NoPiece, false, false, false, true))
		}
		return
	}

	if p.Castling().Has(BlackKingside) &&
		!occ.Has(F8) && !occ.Has(G8) &&
		!p.IsSquareAttacked(E8, opponent) && !p.IsSquareAttacked(F8, opponent) {
		list.Add(NewMove(E8, G8, BK, NoPiece, false, false, false, true))
	}
	if p.Castling().Has(BlackQueenside) &&
		!occ.Has(D8) && !occ.Has(C8) && !occ.Has(B8) &&
		!p.IsSquareAttacked(E8, opponent) && !p.IsSquareAttacked(D8, opponent) {
		list.Add(NewMove(E8, C8, BK, NoPiece, false, false, false, true))
	}
}
