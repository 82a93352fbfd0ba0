// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package stack

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	// ErrCycle is the cause of a Check failure when the chain loops back on itself.
	ErrCycle = errors.New("chain contains a cycle")
	// ErrLength is the cause of a Check failure when the chain length does
	// not match the recorded length.
	ErrLength = errors.New("chain length mismatch")
)

// Check walks the chain and verifies it is acyclic and that its length
// matches Len. Use errors.Cause to compare the result against ErrCycle or
// ErrLength.
func (s *Stack) Check() (err error) {
	defer func() {
		if err != nil {
			glog.Warningf("stack %q: %s", s.name, err)
		}
	}()
	slow, fast := s.head, s.head
	count := 0
	for fast != nil {
		count++
		fast = fast.next
		if fast == nil {
			break
		}
		count++
		fast = fast.next
		slow = slow.next
		if fast == slow {
			return errors.Wrapf(ErrCycle, "after %d nodes", count)
		}
	}
	if count != s.size {
		return errors.Wrapf(ErrLength, "counted %d nodes, recorded %d", count, s.size)
	}
	return nil
}
