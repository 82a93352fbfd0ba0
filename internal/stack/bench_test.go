// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package stack_test

import (
	"testing"

	"github.com/google/lists/internal/stack"
)

func BenchmarkPushPop(b *testing.B) {
	s := stack.New()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		s.Pop()
	}
}

func BenchmarkRelease(b *testing.B) {
	s := stack.New()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 10000; j++ {
			s.Push(j)
		}
		b.StartTimer()
		s.Release()
	}
}
