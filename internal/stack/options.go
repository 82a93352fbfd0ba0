// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package stack

// Option configures a Stack.
type Option interface {
	apply(*Stack)
}

// Name labels the Stack in log messages and in its String form.
type Name string

func (opt Name) apply(s *Stack) {
	s.name = string(opt)
}

// DrainLogInterval makes Release log progress at verbosity 2 every n nodes.
// Zero or less disables progress logging.
type DrainLogInterval int

func (opt DrainLogInterval) apply(s *Stack) {
	s.drainLogInterval = int(opt)
}
