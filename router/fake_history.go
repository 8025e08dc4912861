package router

// FakeHistory is a deterministic History double for tests: navigation only
// happens when Push or Back is called explicitly, mirroring the rest of
// this module's fake-over-real-clock-source testing approach (dom.Ticker,
// fakedom).
type FakeHistory struct {
	path      string
	stack     []string
	listeners []func(string)
}

// NewFakeHistory returns a FakeHistory starting at path.
func NewFakeHistory(path string) *FakeHistory {
	return &FakeHistory{path: path, stack: []string{path}}
}

func (h *FakeHistory) Path() string { return h.path }

func (h *FakeHistory) Push(path string) {
	h.path = path
	h.stack = append(h.stack, path)
	h.notify()
}

// Back pops the history stack, simulating the browser's back button.
func (h *FakeHistory) Back() {
	if len(h.stack) < 2 {
		return
	}
	h.stack = h.stack[:len(h.stack)-1]
	h.path = h.stack[len(h.stack)-1]
	h.notify()
}

func (h *FakeHistory) OnChange(cb func(path string)) (remove func()) {
	h.listeners = append(h.listeners, cb)
	idx := len(h.listeners) - 1
	return func() { h.listeners[idx] = nil }
}

func (h *FakeHistory) notify() {
	for _, cb := range h.listeners {
		if cb != nil {
			cb(h.path)
		}
	}
}

var _ History = (*FakeHistory)(nil)
