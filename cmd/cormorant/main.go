// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Command cormorant starts the engine's UCI loop over stdin/stdout.
package main

import (
	"flag"
	"os"

	"github.com/pkg/profile"

	"github.com/cormorant-chess/core/internal/config"
	"github.com/cormorant-chess/core/internal/logx"
	"github.com/cormorant-chess/core/internal/uci"
)

func main() {
	configFile := flag.String("config", "./cormorant.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level, overriding the config file\n(critical|error|warning|notice|info|debug)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.Level = *logLvl
	}
	logx.SetLevel(config.LogLevel())

	uci.NewHandler(os.Stdin, os.Stdout).Loop()
}
