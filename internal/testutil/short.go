// Copyright 2020 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import (
	"testing"
)

// SkipIfShort skips the test in -short mode, noting why.
func SkipIfShort(tb testing.TB, why string) {
	tb.Helper()
	if testing.Short() {
		tb.Skipf("skipping test in -short mode: %s", why)
	}
}
