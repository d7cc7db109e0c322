// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMax64(t *testing.T) {
	assert.Equal(t, int64(-3), Max64(-5, -3))
	assert.Equal(t, int64(5), Max64(5, -3))
}

func TestNps(t *testing.T) {
	assert.Equal(t, uint64(2_000_000), Nps(2_000_000, time.Second))
	assert.Equal(t, uint64(4_000_000), Nps(1_000_000, 250*time.Millisecond))
}
