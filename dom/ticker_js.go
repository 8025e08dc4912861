//go:build js && wasm

package dom

import "syscall/js"

// realTicker drives the three clock sources described in spec §4.2:
// requestAnimationFrame for frames, a MutationObserver toggling a throwaway
// text node for microtasks (cheaper than a resolved Promise in most
// engines and avoids allocating a new Promise per tick), and a
// window.postMessage loopback for macrotasks (cheaper than setTimeout(0)
// and not subject to the 4ms clamp repeated timeouts get throttled to).
type realTicker struct {
	textNode   js.Value
	toggle     bool
	microCBs   []func()
	macroToken string
	macroCBs   []func()
}

// NewRealTicker builds the browser-backed Ticker. It registers a
// MutationObserver and a "message" listener once; callers never see those
// plumbing details, only ArmMicrotask/ArmMacrotask/RequestFrame.
func NewRealTicker() Ticker {
	t := &realTicker{
		textNode:   js.Global().Get("document").Call("createTextNode", ""),
		macroToken: "vortex-macrotask-tick",
	}

	observer := js.Global().Get("MutationObserver").New(js.FuncOf(func(this js.Value, args []js.Value) any {
		cbs := t.microCBs
		t.microCBs = nil
		for _, cb := range cbs {
			cb()
		}
		return nil
	}))
	observer.Call("observe", t.textNode, map[string]any{"characterData": true})

	js.Global().Call("addEventListener", "message", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		event := args[0]
		if event.Get("source") != js.Global() {
			return nil
		}
		if event.Get("data").String() != t.macroToken {
			return nil
		}
		cbs := t.macroCBs
		t.macroCBs = nil
		for _, cb := range cbs {
			cb()
		}
		return nil
	}))

	return t
}

func (t *realTicker) ArmMicrotask(cb func()) {
	t.microCBs = append(t.microCBs, cb)
	if t.toggle {
		t.textNode.Set("data", "")
	} else {
		t.textNode.Set("data", "x")
	}
	t.toggle = !t.toggle
}

func (t *realTicker) ArmMacrotask(cb func()) {
	t.macroCBs = append(t.macroCBs, cb)
	js.Global().Call("postMessage", t.macroToken, "*")
}

func (t *realTicker) RequestFrame(cb func(now float64)) {
	js.Global().Call("requestAnimationFrame", js.FuncOf(func(this js.Value, args []js.Value) any {
		now := 0.0
		if len(args) > 0 {
			now = args[0].Float()
		}
		cb(now)
		return nil
	}))
}
