//go:build js && wasm

package scheduler

import "github.com/vortexkit/vortex/dom"

var defaultScheduler *Scheduler

// Default returns the process-wide Scheduler singleton, created once on
// first use and wired to the real browser tick primitives (spec §9: "global
// singleton scheduler... created once, never destroyed").
func Default() *Scheduler {
	if defaultScheduler == nil {
		defaultScheduler = New(dom.NewRealTicker())
	}
	return defaultScheduler
}
