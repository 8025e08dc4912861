package fakedom

import "github.com/vortexkit/vortex/dom"

// Ticker is a deterministic dom.Ticker double: nothing fires until the test
// explicitly drains it, so scheduler tests can assert ordering precisely
// instead of racing real timers.
type Ticker struct {
	frameCBs []func(now float64)
	microCBs []func()
	macroCBs []func()
}

// NewTicker returns an idle fake Ticker.
func NewTicker() *Ticker { return &Ticker{} }

func (t *Ticker) RequestFrame(cb func(now float64)) { t.frameCBs = append(t.frameCBs, cb) }
func (t *Ticker) ArmMicrotask(cb func())            { t.microCBs = append(t.microCBs, cb) }
func (t *Ticker) ArmMacrotask(cb func())             { t.macroCBs = append(t.macroCBs, cb) }

// FramePending reports whether a frame has been requested but not yet fired.
func (t *Ticker) FramePending() bool { return len(t.frameCBs) > 0 }

// FireFrame runs the oldest pending frame callback with the given timestamp.
func (t *Ticker) FireFrame(now float64) {
	if len(t.frameCBs) == 0 {
		return
	}
	cb := t.frameCBs[0]
	t.frameCBs = t.frameCBs[1:]
	cb(now)
}

// DrainMicrotasks runs every armed microtask, including ones armed by a
// microtask that is itself draining (matching real queue-microtask
// semantics: new microtasks queued during drain run before control returns).
func (t *Ticker) DrainMicrotasks() {
	for len(t.microCBs) > 0 {
		cbs := t.microCBs
		t.microCBs = nil
		for _, cb := range cbs {
			cb()
		}
	}
}

// FireMacrotask runs the oldest pending macrotask callback.
func (t *Ticker) FireMacrotask() {
	if len(t.macroCBs) == 0 {
		return
	}
	cb := t.macroCBs[0]
	t.macroCBs = t.macroCBs[1:]
	cb()
}

var _ dom.Ticker = (*Ticker)(nil)
