// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import (
	"expvar"
	"testing"

	"github.com/golang/glog"
)

// TestGetExpvar fetches the expvar metric `name`, and returns the expvar.
// Callers are responsible for type assertions on the returned value.
func TestGetExpvar(tb testing.TB, name string) expvar.Var {
	tb.Helper()
	v := expvar.Get(name)
	glog.Infof("Var %q is %v", name, v)
	return v
}

func getInt(tb testing.TB, name string) int64 {
	tb.Helper()
	v, ok := TestGetExpvar(tb, name).(*expvar.Int)
	if !ok {
		tb.Fatalf("expvar %q is not an *expvar.Int", name)
	}
	return v.Value()
}

// ExpectExpvarDelta returns a deferrable function which checks that the
// expvar Int with name has changed by want since ExpectExpvarDelta was
// called.
func ExpectExpvarDelta(tb testing.TB, name string, want int64) func() {
	tb.Helper()
	start := getInt(tb, name)
	return func() {
		tb.Helper()
		now := getInt(tb, name)
		if now-start != want {
			tb.Errorf("%s delta: got %d - %d = %d, want %d", name, now, start, now-start, want)
		}
	}
}
