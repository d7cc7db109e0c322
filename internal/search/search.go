// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, quiescence search, null-move pruning, late move reductions and
// a principal-variation search re-search step, all feeding on a shared
// transposition table and move-ordering heuristics. It is the engine's
// single control flow: one Engine runs exactly one search at a time,
// driven synchronously by the UCI command loop.
package search

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/cormorant-chess/core/internal/eval"
	"github.com/cormorant-chess/core/internal/logx"
	"github.com/cormorant-chess/core/internal/movegen"
	"github.com/cormorant-chess/core/internal/moveorder"
	"github.com/cormorant-chess/core/internal/position"
	"github.com/cormorant-chess/core/internal/tt"
	. "github.com/cormorant-chess/core/internal/types"
	"github.com/cormorant-chess/core/internal/util"
)

// Search-wide constants, named exactly as the reference engine names
// them so its algorithm description reads directly onto this code.
const (
	// MaxSearchDepth is the deepest iterative deepening will go when the
	// caller doesn't supply an explicit depth limit.
	MaxSearchDepth = MaxPly - 1

	// fullDepthMoves is how many moves at a node are always searched at
	// full depth before late move reduction becomes eligible.
	fullDepthMoves = 4
	// reductionLimit is the shallowest remaining depth LMR still applies at.
	reductionLimit = 3

	// nullMoveMinDepth is the shallowest remaining depth null-move
	// pruning is attempted at.
	nullMoveMinDepth = 3
	// nullMoveReduction is how much depth a null-move search reduces by.
	nullMoveReduction = 3

	// aspirationWindow is the half-width of the window iterative
	// deepening centers on the previous iteration's score.
	aspirationWindow = 50

	// pollNodeMask makes the cancellation check a cheap bitwise test:
	// every 65536 nodes.
	pollNodeMask = 1<<16 - 1
)

var out = message.NewPrinter(language.English)

// Engine owns everything a search needs across its recursive calls: the
// transposition table, move-ordering heuristics, the triangular PV table,
// and the clock. One Engine is reused across an entire UCI session; every
// Search resets its move-ordering heuristics, and NewGame (ucinewgame)
// also clears the table but keeps it allocated.
type Engine struct {
	log *logging.Logger

	tt    *tt.Table
	order *moveorder.Orderer

	running *semaphore.Weighted
	stopped atomic.Bool

	nodes     uint64
	startTime time.Time
	stopTime  time.Time
	timed     bool

	pvTable  [MaxPly][MaxPly]Move
	pvLength [MaxPly]int

	// Info receives one line per iterative-deepening iteration plus the
	// final bestmove line, formatted as UCI protocol output. Defaults to
	// os.Stdout; the uci package overrides it to write over the same
	// writer the rest of the protocol uses.
	Info io.Writer
}

// NewEngine creates an Engine backed by table, which the caller owns and
// may share across engine restarts (ucinewgame should Clear it instead of
// discarding it).
func NewEngine(table *tt.Table) *Engine {
	return &Engine{
		log:     logx.Get("search"),
		tt:      table,
		order:   moveorder.New(),
		running: semaphore.NewWeighted(1),
		Info:    os.Stdout,
	}
}

// Stop requests that any in-progress search return as soon as it next
// polls the cancellation flag. Safe to call from another goroutine (the
// UCI reader) while Search runs.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

// NewGame resets move-ordering heuristics and the transposition table for
// a fresh game: killers and history from a previous game are not useful
// priors for an unrelated one.
func (e *Engine) NewGame() {
	e.order.Reset()
	e.tt.Clear()
}

// Search runs iterative deepening from depth 1 up to limits' depth cap,
// writing one "info" line per completed iteration to e.Info, and returns
// the best move found (the root of the last fully-searched PV). If
// search is cancelled before depth 1 completes, it returns MoveNone.
func (e *Engine) Search(p *position.Position, limits Limits) Move {
	if !e.running.TryAcquire(1) {
		e.log.Warning("search: Search called while a search is already running")
		return MoveNone
	}
	defer e.running.Release(1)

	e.stopped.Store(false)
	e.nodes = 0
	e.startTime = time.Now()
	e.pvLength = [MaxPly]int{}
	e.pvTable = [MaxPly][MaxPly]Move{}
	e.order.Reset()

	budget, timed := limits.Budget(p.SideToMove() == White)
	e.timed = timed
	if timed {
		e.stopTime = e.startTime.Add(budget)
	}

	maxDepth := limits.MaxDepth()
	alpha, beta := -Infinity, Infinity
	var best Move

	// Only a fully-completed iteration's PV is trusted for bestmove: an
	// iteration cancelled mid-search can have partially overwritten the
	// triangular PV table with moves from an incomplete line.
	for depth := 1; depth <= maxDepth; depth++ {
		if e.stopped.Load() {
			break
		}

		// follow_pv/score_pv gating: seed the orderer with the previous
		// iteration's completed line so this iteration searches it first
		// at every ply along the principal variation, not just the root.
		for ply := 0; ply < e.pvLength[0]; ply++ {
			e.order.SetPV(ply, e.pvTable[0][ply])
		}

		score := e.negamax(p, depth, 0, alpha, beta)

		if e.stopped.Load() {
			break
		}
		if score <= alpha || score >= beta {
			alpha, beta = -Infinity, Infinity
			depth--
			continue
		}

		alpha = score - aspirationWindow
		beta = score + aspirationWindow
		best = e.pvTable[0][0]

		e.reportIteration(depth, score)
	}

	io.WriteString(e.Info, out.Sprintf("bestmove %s\n", best.UCI()))
	return best
}

// checkStop polls the cancellation flag once per pollNodeMask+1 nodes,
// mirroring the reference engine's "communicate every 65536 nodes" cadence.
func (e *Engine) checkStop() {
	if e.nodes&pollNodeMask != 0 {
		return
	}
	if e.timed && time.Now().After(e.stopTime) {
		e.stopped.Store(true)
	}
}

func (e *Engine) reportIteration(depth int, score Value) {
	elapsed := time.Since(e.startTime)
	pv := e.pvTable[0][:e.pvLength[0]]
	pvStr := ""
	for i, m := range pv {
		if i > 0 {
			pvStr += " "
		}
		pvStr += m.UCI()
	}

	scoreStr := formatScore(score)
	io.WriteString(e.Info, out.Sprintf(
		"info score %s depth %d nodes %d nps %d time %d pv %s\n",
		scoreStr, depth, e.nodes, util.Nps(e.nodes, elapsed), elapsed.Milliseconds(), pvStr))
}

// formatScore renders score as a UCI "score cp N" or "score mate N" token,
// using the exact mate-distance formulas the engine commits to: a score
// just inside -MateValue means the side to move is being mated, a score
// just inside +MateValue means it is delivering mate.
func formatScore(score Value) string {
	switch {
	case score > -MateValue && score < -MateScore:
		n := -(score+MateValue)/2 - 1
		return out.Sprintf("mate %d", n)
	case score > MateScore && score < MateValue:
		n := (MateValue-score)/2 + 1
		return out.Sprintf("mate %d", n)
	default:
		return out.Sprintf("cp %d", score)
	}
}

// updatePV writes m as the best move at ply and appends the continuation
// already established one ply deeper, maintaining the classic triangular
// PV table.
func (e *Engine) updatePV(ply int, m Move) {
	e.pvTable[ply][ply] = m
	for i := ply + 1; i < e.pvLength[ply+1]; i++ {
		e.pvTable[ply][i] = e.pvTable[ply+1][i]
	}
	e.pvLength[ply] = e.pvLength[ply+1]
}

// negamax searches p to depth plies (extended by one when in check),
// returning a score from the side-to-move's perspective. ply is the
// distance from the search root, used for mate-distance scoring, the PV
// and killer tables, and repetition/MAX_PLY checks.
func (e *Engine) negamax(p *position.Position, depth, ply int, alpha, beta Value) Value {
	e.nodes++
	e.checkStop()

	if ply != 0 && p.IsRepetition() {
		return 0
	}

	pvNode := beta-alpha > 1

	if ttScore, _, bound, ok := e.tt.Probe(p.Hash(), depth, ply); ok && ply != 0 && !pvNode {
		switch bound {
		case tt.BoundExact:
			return ttScore
		case tt.BoundAlpha:
			if ttScore <= alpha {
				return ttScore
			}
		case tt.BoundBeta:
			if ttScore >= beta {
				return ttScore
			}
		}
	}

	e.pvLength[ply] = ply

	if depth == 0 {
		return e.quiescence(p, ply, alpha, beta)
	}
	if ply >= MaxPly {
		return eval.Evaluate(p)
	}

	inCheck := p.InCheck(p.SideToMove())
	if inCheck {
		depth++
	}

	if depth >= nullMoveMinDepth && !inCheck && ply != 0 {
		epSquare := p.MakeNullMove()
		score := -e.negamax(p, depth-nullMoveReduction, ply+1, -beta, -beta+1)
		p.UnmakeNullMove(epSquare)

		if e.stopped.Load() {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	e.order.SetTTMove(ply, e.tt.ProbeMove(p.Hash()))

	var list MoveList
	movegen.PseudoLegal(p, movegen.GenAll, &list)
	e.order.Sort(p, ply, &list)

	bound := tt.BoundAlpha
	legalMoves := 0

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		legal, undo := p.MakeMove(m)
		if !legal {
			p.UnmakeMove(m, undo)
			continue
		}
		legalMoves++

		var score Value
		if legalMoves == 1 {
			score = -e.negamax(p, depth-1, ply+1, -beta, -alpha)
		} else {
			if legalMoves > fullDepthMoves && depth >= reductionLimit && !inCheck && m.IsQuiet() {
				score = -e.negamax(p, depth-2, ply+1, -alpha-1, -alpha)
			} else {
				score = alpha + 1
			}
			if score > alpha {
				score = -e.negamax(p, depth-1, ply+1, -alpha-1, -alpha)
				if score > alpha && score < beta {
					score = -e.negamax(p, depth-1, ply+1, -beta, -alpha)
				}
			}
		}

		p.UnmakeMove(m, undo)

		if e.stopped.Load() {
			return 0
		}

		if score > alpha {
			bound = tt.BoundExact
			if m.IsQuiet() {
				e.order.AddHistory(m.Piece(), m.Target(), depth)
			}
			alpha = score
			e.updatePV(ply, m)

			if score >= beta {
				e.tt.Store(p.Hash(), depth, ply, beta, m, tt.BoundBeta)
				if m.IsQuiet() {
					e.order.StoreKiller(ply, m)
				}
				return beta
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -MateValue + Value(ply)
		}
		return 0
	}

	e.tt.Store(p.Hash(), depth, ply, alpha, MoveNone, bound)
	return alpha
}

// quiescence extends the search along capture sequences only, so the
// static evaluator is never asked to score a position in the middle of
// an unresolved exchange.
func (e *Engine) quiescence(p *position.Position, ply int, alpha, beta Value) Value {
	e.nodes++
	e.checkStop()

	if ply >= MaxPly {
		return eval.Evaluate(p)
	}

	standPat := eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list MoveList
	movegen.PseudoLegal(p, movegen.GenCaptures, &list)
	e.order.Sort(p, ply, &list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		legal, undo := p.MakeMove(m)
		if !legal {
			p.UnmakeMove(m, undo)
			continue
		}

		score := -e.quiescence(p, ply+1, -beta, -alpha)
		p.UnmakeMove(m, undo)

		if e.stopped.Load() {
			return 0
		}

		if score > alpha {
			alpha = score
			if score >= beta {
				return beta
			}
		}
	}

	return alpha
}
