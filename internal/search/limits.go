// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package search

import (
	"time"

	"github.com/cormorant-chess/core/internal/util"
)

// Limits describes everything a "go" command can constrain a search by.
// A zero Limits means "search forever" (bounded only by MaxPly), which is
// what "go infinite" maps to.
type Limits struct {
	Infinite bool
	Depth    int // hard depth cap; 0 means uncapped (MaxPly-1)

	MoveTime  time.Duration
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MovesToGo int
}

// Budget computes the time allotment for side and whether the search is
// time-controlled at all, following the reference engine's formula:
// movetime wins outright; otherwise the matching side's clock is divided
// by the moves remaining (default 30), a 100ms safety margin is
// subtracted, and the increment is added back.
func (l Limits) Budget(white bool) (budget time.Duration, timed bool) {
	if l.Infinite {
		return 0, false
	}
	if l.MoveTime > 0 {
		return l.MoveTime, true
	}

	clock, inc := l.BlackTime, l.BlackInc
	if white {
		clock, inc = l.WhiteTime, l.WhiteInc
	}
	if clock <= 0 {
		return 0, false
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}

	budget = clock/time.Duration(movesToGo) - 100*time.Millisecond + inc
	budget = time.Duration(util.Max64(int64(budget), 0))
	return budget, true
}

// MaxDepth returns the hard depth cap iterative deepening stops at.
func (l Limits) MaxDepth() int {
	if l.Depth > 0 && l.Depth < MaxSearchDepth {
		return l.Depth
	}
	return MaxSearchDepth
}
