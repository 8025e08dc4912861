//go:build js && wasm

package router

import "syscall/js"

// browserHistory drives navigation through window.history.pushState and
// listens for popstate (back/forward) to keep Router in sync with the
// address bar.
type browserHistory struct {
	listeners []func(string)
}

// NewBrowserHistory returns a History backed by the real History API.
func NewBrowserHistory() History {
	h := &browserHistory{}
	js.Global().Get("window").Call("addEventListener", "popstate", js.FuncOf(func(this js.Value, args []js.Value) any {
		h.notify(h.Path())
		return nil
	}))
	return h
}

func (h *browserHistory) Path() string {
	return js.Global().Get("location").Get("pathname").String()
}

func (h *browserHistory) Push(path string) {
	js.Global().Get("window").Get("history").Call("pushState", js.Null(), "", path)
	h.notify(path)
}

func (h *browserHistory) OnChange(cb func(path string)) (remove func()) {
	h.listeners = append(h.listeners, cb)
	idx := len(h.listeners) - 1
	return func() { h.listeners[idx] = nil }
}

func (h *browserHistory) notify(path string) {
	for _, cb := range h.listeners {
		if cb != nil {
			cb(path)
		}
	}
}
