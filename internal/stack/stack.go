// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package stack implements a singly-linked LIFO stack of integers.
//
// Every mutation moves a link out of its slot and leaves an empty link
// behind, so no node is ever reachable from two places. Go has no
// destructors: holders of long chains should call Release, which unlinks
// the chain one node at a time.
package stack

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// link is a chain slot: nil is empty, otherwise it owns the node.
type link *node

type node struct {
	value int
	next  link
}

// take returns the link held in l and leaves l empty.
func take(l *link) link {
	t := *l
	*l = nil
	return t
}

// Stack is a LIFO stack of ints. The zero value is an empty stack ready for
// use. A Stack must not be used by more than one goroutine at a time.
type Stack struct {
	head link
	size int

	name             string
	drainLogInterval int
}

// New returns an empty Stack configured by opts.
func New(opts ...Option) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		opt.apply(s)
	}
	glog.V(1).Infof("new stack %q", s.name)
	return s
}

// Push puts value on top of the stack.
func (s *Stack) Push(value int) {
	n := &node{value: value, next: take(&s.head)}
	s.head = n
	s.size++
	pushTotal.Add(1)
	glog.V(2).Infof("stack %q: push %d, len %d", s.name, value, s.size)
}

// Pop removes the top value and returns it. The boolean is false if the
// stack was empty.
func (s *Stack) Pop() (int, bool) {
	n := take(&s.head)
	if n == nil {
		popEmptyTotal.Add(1)
		glog.V(2).Infof("stack %q: pop on empty stack", s.name)
		return 0, false
	}
	s.head = take(&n.next)
	s.size--
	popTotal.Add(1)
	glog.V(2).Infof("stack %q: pop %d, len %d", s.name, n.value, s.size)
	return n.value, true
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, bool) {
	if s.head == nil {
		return 0, false
	}
	return s.head.value, true
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return s.size
}

// Empty reports whether the stack holds no values.
func (s *Stack) Empty() bool {
	return s.size == 0
}

// Release unlinks every node, one at a time, and leaves the stack empty.
// Each node has its next link cleared before it is dropped, so no node keeps
// the rest of the chain alive. The stack may be reused afterwards.
func (s *Stack) Release() {
	cur := take(&s.head)
	s.size = 0
	var n int
	for cur != nil {
		cur = take(&cur.next)
		n++
		if s.drainLogInterval > 0 && n%s.drainLogInterval == 0 {
			glog.V(2).Infof("stack %q: released %d nodes so far", s.name, n)
		}
	}
	releaseNodesTotal.Add(int64(n))
	glog.V(1).Infof("stack %q: released %d nodes", s.name, n)
}

// String renders the stack top first, for debugging.
func (s *Stack) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stack%q[", s.name)
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", n.value)
	}
	b.WriteByte(']')
	return b.String()
}
