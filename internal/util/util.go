// Cormorant - a UCI-speaking chess engine written in Go.
//
// Copyright (c) 2026 The Cormorant Authors. Licensed under the MIT License;
// see the LICENSE file at the repository root for the full text.

// Package util collects small generic helpers shared by more than one
// package, so they aren't reimplemented ad hoc at each call site.
package util

import "time"

// Max64 returns the bigger of the given 64-bit integers.
func Max64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}

// Nps calculates nodes per second from a node count and a duration,
// tolerating a zero duration by treating it as one nanosecond.
func Nps(nodes uint64, duration time.Duration) uint64 {
	ns := duration.Nanoseconds()
	if ns <= 0 {
		ns = 1
	}
	return uint64(int64(nodes) * time.Second.Nanoseconds() / ns)
}
