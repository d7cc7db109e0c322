// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package moveorder ranks a list of pseudo-legal moves so alpha-beta
// search visits the moves most likely to cause a cutoff first: the
// principal-variation move, then the transposition table's best-move
// hint, then captures by MVV-LVA, then killer moves, then quiet moves by
// history heuristic score.
package moveorder

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cormorant-chess/core/internal/position"
	. "github.com/cormorant-chess/core/internal/types"
)

var out = message.NewPrinter(language.English)

// mvvLva[attacker][victim] ranks captures by victim value first, attacker
// value second, so "pawn takes queen" always outranks "queen takes pawn".
var mvvLva = [PieceTypeCount][PieceTypeCount]int{
	Pawn:   {Pawn: 105, Knight: 205, Bishop: 305, Rook: 405, Queen: 505, King: 605},
	Knight: {Pawn: 104, Knight: 204, Bishop: 304, Rook: 404, Queen: 504, King: 604},
	Bishop: {Pawn: 103, Knight: 203, Bishop: 303, Rook: 403, Queen: 503, King: 603},
	Rook:   {Pawn: 102, Knight: 202, Bishop: 302, Rook: 402, Queen: 502, King: 602},
	Queen:  {Pawn: 101, Knight: 201, Bishop: 301, Rook: 401, Queen: 501, King: 601},
	King:   {Pawn: 100, Knight: 200, Bishop: 300, Rook: 400, Queen: 500, King: 600},
}

// Score bands keep the ordering tiers from ever colliding: PV highest,
// then captures (offset so even the worst capture outranks any quiet
// move), then killers, then history scores (which live below the killer
// band because AddHistory caps them at historyMax, below killer2Score).
const (
	pvScore      = 20_000
	ttMoveScore  = 15_000
	captureBase  = 10_000
	killer1Score = 9_000
	killer2Score = 8_000
)

// historyMax is the saturation ceiling for history scores: the reference
// engine's `history[piece][to] += depth` has no aging or overflow guard
// (an open question in the underlying design); this engine instead caps
// the counter and halves the whole table once any entry would overflow,
// which keeps relative ordering stable across a long search.
const historyMax = killer2Score - 1000

// Orderer owns search-lifetime move-ordering state: the killer move slots
// (two per ply) and the history heuristic table (indexed by piece and
// target square). A single Orderer is meant to be reused across an entire
// search call, reset only between independent `go` commands.
type Orderer struct {
	killers [MaxPly][2]Move
	history [PieceCount][SquareCount]int
	pv      [MaxPly]Move
	ttMove  [MaxPly]Move
}

// New returns a freshly zeroed Orderer.
func New() *Orderer {
	return &Orderer{}
}

// Reset clears killers and history ahead of a new search (but not a new
// move within the same search, since killers and history are meant to
// carry information between sibling branches at the same ply).
func (o *Orderer) Reset() {
	*o = Orderer{}
}

// SetPV records the principal-variation move expected at ply.
func (o *Orderer) SetPV(ply int, m Move) {
	if ply >= 0 && ply < MaxPly {
		o.pv[ply] = m
	}
}

// ClearPV forgets the recorded PV line, so a stale line from a previous
// search can't be followed into an unrelated one.
func (o *Orderer) ClearPV() {
	o.pv = [MaxPly]Move{}
}

// PV returns the move currently recorded as the principal variation at
// ply, or MoveNone if none has been set.
func (o *Orderer) PV(ply int) Move {
	if ply < 0 || ply >= MaxPly {
		return MoveNone
	}
	return o.pv[ply]
}

// SetTTMove records the transposition table's best-move hint for the
// position currently being searched at ply: unlike SetPV, this is set
// fresh before every node (the hint is only valid for the position it was
// probed from), not once per iteration.
func (o *Orderer) SetTTMove(ply int, m Move) {
	if ply >= 0 && ply < MaxPly {
		o.ttMove[ply] = m
	}
}

// StoreKiller records a quiet move that caused a beta cutoff at ply,
// shifting the existing first killer down to the second slot. Capture
// moves are never stored as killers: MVV-LVA already orders them above
// the killer band.
func (o *Orderer) StoreKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly || m.IsCapture() {
		return
	}
	if o.killers[ply][0] == m {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = m
}

// AddHistory rewards a quiet move that raised alpha, scaled by
// how deep the cutoff occurred (deeper cutoffs are stronger evidence).
// The table saturates at historyMax and halves everywhere once any entry
// would overflow it, preserving relative order instead of wrapping.
func (o *Orderer) AddHistory(piece Piece, target Square, depth int) {
	cell := &o.history[piece][target]
	*cell += depth * depth
	if *cell > historyMax {
		for p := range o.history {
			for s := range o.history[p] {
				o.history[p][s] /= 2
			}
		}
	}
}

// Score assigns each candidate move a sort key combining all of the
// ordering tiers; a pseudo-legal move list sorted descending by this key
// visits the moves most likely to prune the tree first.
func (o *Orderer) Score(p *position.Position, ply int, m Move) int {
	if ply >= 0 && ply < MaxPly && o.pv[ply] == m {
		return pvScore
	}
	if ply >= 0 && ply < MaxPly && o.ttMove[ply] == m {
		return ttMoveScore
	}
	if m.IsCapture() {
		victim, ok := capturedPieceType(p, m)
		if !ok {
			victim = Pawn
		}
		return captureBase + mvvLva[m.Piece().Type()][victim]
	}
	if ply >= 0 && ply < MaxPly {
		if o.killers[ply][0] == m {
			return killer1Score
		}
		if o.killers[ply][1] == m {
			return killer2Score
		}
	}
	return o.history[m.Piece()][m.Target()]
}

// Sort orders list in place, descending by Score, using a simple
// insertion sort: move lists are short (bounded by MoveListCapacity) and
// mostly pre-ordered after the first few iterative-deepening passes, so
// insertion sort's near-linear behavior on nearly-sorted input beats a
// general-purpose sort's constant overhead here.
func (o *Orderer) Sort(p *position.Position, ply int, list *MoveList) {
	n := list.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = o.Score(p, ply, list.At(i))
	}
	for i := 1; i < n; i++ {
		m, s := list.At(i), scores[i]
		j := i - 1
		for j >= 0 && scores[j] < s {
			list.Set(j+1, list.At(j))
			scores[j+1] = scores[j]
			j--
		}
		list.Set(j+1, m)
		scores[j+1] = s
	}
}

func capturedPieceType(p *position.Position, m Move) (PieceType, bool) {
	target := m.Target()
	if m.IsEnPassant() {
		return Pawn, true
	}
	piece, ok := p.PieceAt(target)
	if !ok {
		return Pawn, false
	}
	return piece.Type(), true
}

func (o *Orderer) String() string {
	var sb strings.Builder
	for ply := 0; ply < MaxPly; ply++ {
		if o.killers[ply][0] == MoveNone && o.killers[ply][1] == MoveNone {
			continue
		}
		sb.WriteString(out.Sprintf("ply=%-2d killer1=%s killer2=%s\n", ply, o.killers[ply][0].UCI(), o.killers[ply][1].UCI()))
	}
	return sb.String()
}
