//go:build !(js && wasm)

package scheduler

// inertTicker never fires on its own; it exists so Default() links and
// behaves predictably outside a js/wasm build, where there is no real
// browser event loop to drive it. Tests should construct their own
// Scheduler with New(ticker) over a deterministic fake ticker instead of
// relying on this one.
type inertTicker struct{}

func (inertTicker) RequestFrame(func(float64)) {}
func (inertTicker) ArmMicrotask(func())        {}
func (inertTicker) ArmMacrotask(func())        {}

var defaultScheduler *Scheduler

// Default returns the process-wide Scheduler singleton. Outside a js/wasm
// build it is wired to an inert ticker: it will accept scheduling calls but
// never fire on its own, since there is no host event loop to drive it.
func Default() *Scheduler {
	if defaultScheduler == nil {
		defaultScheduler = New(inertTicker{})
	}
	return defaultScheduler
}
