// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/cormorant-chess/core/internal/types"
)

func newTestHandler(input string) (*Handler, *bytes.Buffer) {
	out := &bytes.Buffer{}
	h := NewHandler(strings.NewReader(input), out)
	return h, out
}

func TestUciHandshake(t *testing.T) {
	h, out := newTestHandler("")
	quit := h.Dispatch("uci")
	assert.False(t, quit)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "id name "+EngineName, lines[0])
	assert.Equal(t, "id author "+EngineAuthor, lines[1])
	assert.Equal(t, "uciok", lines[2])
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h, out := newTestHandler("")
	h.Dispatch("isready")
	assert.Equal(t, "readyok\n", out.String())
}

func TestQuitStopsLoop(t *testing.T) {
	h, _ := newTestHandler("")
	assert.True(t, h.Dispatch("quit"))
}

func TestPositionStartposThenMoves(t *testing.T) {
	h, _ := newTestHandler("")
	h.Dispatch("position startpos moves e2e4 e7e5")
	assert.Equal(t, E6, h.pos.EnPassant())
}

func TestPositionFenLiteral(t *testing.T) {
	h, _ := newTestHandler("")
	h.Dispatch("position fen 8/8/8/4k3/8/8/8/4K2R w K - 0 1")
	assert.Equal(t, "8/8/8/4k3/8/8/8/4K2R w K - 0 1", h.pos.FEN())
}

func TestUnrecognizedCommandIsIgnored(t *testing.T) {
	h, out := newTestHandler("")
	quit := h.Dispatch("banana")
	assert.False(t, quit)
	assert.Empty(t, out.String())
}

func TestGoDepthProducesBestmove(t *testing.T) {
	h, out := newTestHandler("")
	h.Dispatch("position startpos")
	h.Dispatch("go depth 2")
	assert.Contains(t, out.String(), "bestmove")
}

func TestEvalCommandPrintsScore(t *testing.T) {
	h, out := newTestHandler("")
	h.Dispatch("eval")
	assert.Contains(t, out.String(), "Eval:")
}
