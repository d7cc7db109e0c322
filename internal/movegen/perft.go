// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package movegen

import (
	"github.com/cormorant-chess/core/internal/position"
	. "github.com/cormorant-chess/core/internal/types"
)

// Perft counts the number of leaf positions reachable from p in exactly
// depth plies, walking pseudo-legal moves and discarding illegal ones via
// make/unmake rather than pre-filtering, the same way search does. It is
// the standard move-generator correctness check: any mismatch against a
// known node count pinpoints a move generation or make/unmake bug.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	PseudoLegal(p, GenAll, &list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		legal, undo := p.MakeMove(m)
		if legal {
			nodes += Perft(p, depth-1)
		}
		p.UnmakeMove(m, undo)
	}
	return nodes
}
