// Copyright 2018 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff returns a human-readable report of the differences between a and b,
// or the empty string if they are equal.
func Diff(a, b interface{}, opts ...cmp.Option) string {
	return cmp.Diff(a, b, opts...)
}

// ExpectNoDiff reports a test error with the diff if want and got differ.
// It returns true if they are equal.
func ExpectNoDiff(tb testing.TB, want, got interface{}, opts ...cmp.Option) bool {
	tb.Helper()
	if diff := Diff(want, got, opts...); diff != "" {
		tb.Errorf("unexpected diff, -want +got:\n%s", diff)
		return false
	}
	return true
}

// EquateEmpty treats nil and empty slices as equal.
func EquateEmpty() cmp.Option {
	return cmpopts.EquateEmpty()
}
