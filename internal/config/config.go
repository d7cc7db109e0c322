// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package config reads the engine's optional TOML configuration file
// and exposes the handful of settings that aren't part of the UCI
// protocol itself: log verbosity, chiefly. A missing or unreadable
// file is not an error, since every setting has a usable default.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"github.com/cormorant-chess/core/internal/util"
)

// ConfFile is the path Setup reads from, resolved relative to the
// working directory, the executable, or the user's home directory.
var ConfFile = "./cormorant.toml"

// Settings holds the values decoded from ConfFile, overlaid on the
// defaults below.
var Settings = conf{
	Log: logConfiguration{Level: "notice"},
}

var initialized = false

type conf struct {
	Log logConfiguration
}

type logConfiguration struct {
	// Level is a github.com/op/go-logging level name: critical, error,
	// warning, notice, info or debug.
	Level string
}

// Setup decodes ConfFile into Settings, leaving defaults in place for
// anything the file doesn't mention or if the file can't be found. It
// does not apply the log level itself; LogLevel converts the setting for
// the caller to pass to logx.SetLevel. Safe to call more than once; only
// the first call has an effect.
func Setup() {
	if initialized {
		return
	}
	initialized = true

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Printf("config: %s not found, using defaults", ConfFile)
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Printf("config: failed to decode %s: %v", path, err)
	}
}

// LogLevel parses Settings.Log.Level into a go-logging Level, falling
// back to logging.NOTICE for an empty or unrecognized name.
func LogLevel() logging.Level {
	lvl, err := logging.LogLevel(Settings.Log.Level)
	if err != nil {
		return logging.NOTICE
	}
	return lvl
}
