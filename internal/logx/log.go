// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package logx is a thin helper over "github.com/op/go-logging" that
// keeps every package's logger construction down to one line, with a
// module-level name and a shared process-wide level.
package logx

import (
	"log"
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s} %{level:-7.7s} %{message}`,
)

var level = logging.NOTICE

// SetLevel changes the level every future (and already constructed)
// logger backend logs at. The cmd/cormorant entry point calls this once
// at startup from the loaded configuration.
func SetLevel(l logging.Level) {
	level = l
	logging.SetLevel(level, "")
}

// Get returns a named logger writing to stderr (stdout is reserved for
// the UCI protocol stream), configured with the shared format and level.
// Every logger writes through the shared default backend, so loggers
// picked up before SetLevel runs still observe a later level change.
func Get(name string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted).SetLevel(level, "")
	return logging.MustGetLogger(name)
}
