// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package uci implements the engine's half of the UCI protocol: a
// synchronous read-eval loop over stdin that parses "position" and "go"
// commands, drives one search.Engine, and writes "info"/"bestmove" lines
// back out.
package uci

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cormorant-chess/core/internal/eval"
	"github.com/cormorant-chess/core/internal/logx"
	"github.com/cormorant-chess/core/internal/movegen"
	"github.com/cormorant-chess/core/internal/position"
	"github.com/cormorant-chess/core/internal/search"
	"github.com/cormorant-chess/core/internal/tt"
	"github.com/cormorant-chess/core/internal/types"
)

// EngineName and EngineAuthor answer the "uci" handshake.
const (
	EngineName   = "Cormorant"
	EngineAuthor = "The Cormorant Authors"
)

var log *logging.Logger
var out = message.NewPrinter(language.English)

func init() {
	log = logx.Get("uci")
}

var whitespace = regexp.MustCompile(`\s+`)

// Handler owns one engine session: the current position, the search
// engine (and its shared transposition table), and the I/O streams. A
// Handler is used for exactly one process's lifetime; pass a different
// reader and writer to NewHandler to redirect it for testing (search
// output stays bound to the writer given there).
type Handler struct {
	In  *bufio.Scanner
	Out io.Writer

	pos    *position.Position
	engine *search.Engine
}

// NewHandler creates a Handler reading r and writing responses to w,
// starting from the standard opening position.
func NewHandler(r io.Reader, w io.Writer) *Handler {
	h := &Handler{
		In:     bufio.NewScanner(r),
		Out:    w,
		pos:    position.New(),
		engine: search.NewEngine(tt.New()),
	}
	h.engine.Info = w
	return h
}

// Loop reads one command per line until "quit" is received or the input
// stream ends.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.Dispatch(h.In.Text()) {
			return
		}
	}
}

// Dispatch handles a single line of input, returning true if it was
// "quit" and the loop should stop. Commands outside the recognized set
// are ignored silently, matching the protocol's tolerance for unknown
// input.
func (h *Handler) Dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := whitespace.Split(line, -1)

	switch tokens[0] {
	case "uci":
		h.send("id name " + EngineName)
		h.send("id author " + EngineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame", "new":
		h.pos = position.New()
		h.engine.NewGame()
	case "position":
		h.handlePosition(tokens)
	case "go":
		h.handleGo(tokens)
	case "eval":
		h.send(out.Sprintf("Eval: %d", eval.Evaluate(h.pos)))
	case "stop":
		h.engine.Stop()
	case "quit":
		h.engine.Stop()
		return true
	default:
		log.Debugf("ignoring unrecognized command: %s", line)
	}
	return false
}

func (h *Handler) handlePosition(tokens []string) {
	if len(tokens) < 2 {
		return
	}

	var fen string
	i := 1
	switch tokens[1] {
	case "startpos":
		fen = position.StartFen
		i = 2
	case "fen":
		var b strings.Builder
		i = 2
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		return
	}

	p, err := position.FromFEN(fen)
	if err != nil {
		log.Warningf("position: malformed FEN %q: %v", fen, err)
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		for _, uciMove := range tokens[i+1:] {
			m := movegen.FromUCI(h.pos, uciMove)
			if m == types.MoveNone {
				log.Warningf("position: unparseable move in moves list: %s", uciMove)
				return
			}
			legal, undo := h.pos.MakeMove(m)
			if !legal {
				h.pos.UnmakeMove(m, undo)
				log.Warningf("position: illegal move in moves list: %s", uciMove)
				return
			}
		}
	}
}

func (h *Handler) handleGo(tokens []string) {
	limits := search.Limits{}

	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
		case "depth":
			i++
			if i < len(tokens) {
				limits.Depth, _ = strconv.Atoi(tokens[i])
			}
		case "movetime":
			i++
			if i < len(tokens) {
				limits.MoveTime = parseMillis(tokens[i])
			}
		case "wtime":
			i++
			if i < len(tokens) {
				limits.WhiteTime = parseMillis(tokens[i])
			}
		case "btime":
			i++
			if i < len(tokens) {
				limits.BlackTime = parseMillis(tokens[i])
			}
		case "winc":
			i++
			if i < len(tokens) {
				limits.WhiteInc = parseMillis(tokens[i])
			}
		case "binc":
			i++
			if i < len(tokens) {
				limits.BlackInc = parseMillis(tokens[i])
			}
		case "movestogo":
			i++
			if i < len(tokens) {
				limits.MovesToGo, _ = strconv.Atoi(tokens[i])
			}
		}
	}

	h.engine.Search(h.pos, limits)
}

func parseMillis(s string) time.Duration {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}

func (h *Handler) send(s string) {
	io.WriteString(h.Out, s+"\n")
}
