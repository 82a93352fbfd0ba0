// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package stack

import (
	"expvar"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// pushTotal counts values pushed onto any stack.
	pushTotal = expvar.NewInt("stack_push_total")
	// popTotal counts values popped from any stack.
	popTotal = expvar.NewInt("stack_pop_total")
	// popEmptyTotal counts pops that found the stack empty.
	popEmptyTotal = expvar.NewInt("stack_pop_empty_total")
	// releaseNodesTotal counts nodes unlinked by Release.
	releaseNodesTotal = expvar.NewInt("stack_release_nodes_total")
)

// NewCollector returns a prometheus.Collector exporting the stack expvar
// counters.
func NewCollector() prometheus.Collector {
	return prometheus.NewExpvarCollector(map[string]*prometheus.Desc{
		"stack_push_total":          prometheus.NewDesc("stack_push_total", "number of values pushed onto stacks", nil, nil),
		"stack_pop_total":           prometheus.NewDesc("stack_pop_total", "number of values popped from stacks", nil, nil),
		"stack_pop_empty_total":     prometheus.NewDesc("stack_pop_empty_total", "number of pops on an empty stack", nil, nil),
		"stack_release_nodes_total": prometheus.NewDesc("stack_release_nodes_total", "number of nodes unlinked by Release", nil, nil),
	})
}
