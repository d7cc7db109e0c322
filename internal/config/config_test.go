// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package config

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestSetupFallsBackToDefaultsWithoutFile(t *testing.T) {
	ConfFile = "./nonexistent-cormorant.toml"
	initialized = false

	Setup()
	assert.Equal(t, "notice", Settings.Log.Level)
}

func TestLogLevelParsesRecognizedName(t *testing.T) {
	Settings.Log.Level = "debug"
	assert.Equal(t, logging.DEBUG, LogLevel())
}

func TestLogLevelFallsBackOnUnrecognizedName(t *testing.T) {
	Settings.Log.Level = "not-a-level"
	assert.Equal(t, logging.NOTICE, LogLevel())
}
