package dom

// Ticker is the capability record the scheduler drives its three clock
// sources through: an animation-frame request, and one-shot arm functions
// for the fastest same-turn (microtask) and post-turn (macrotask) callback
// mechanisms the host provides. Injecting this lets the scheduler's frame
// execution algorithm be exercised deterministically in tests (see
// spec §9, "inject via a small capability record").
type Ticker interface {
	// RequestFrame arms cb to run on the next animation frame. now is a
	// monotonically increasing millisecond timestamp supplied by the host.
	RequestFrame(cb func(now float64))

	// ArmMicrotask arms cb to run once, before the next macrotask or frame.
	ArmMicrotask(cb func())

	// ArmMacrotask arms cb to run once, after the current turn.
	ArmMacrotask(cb func())
}
