package router

// History is the navigation capability a Router drives, injected the same
// way dom.Ticker is injected into the scheduler (spec §9's "inject via a
// small capability record" applied again here): the router's matching and
// dispatch logic never touches a browser global directly, so it runs
// against a fake double in tests and against the real History API under
// js,wasm.
type History interface {
	// Path returns the current path, e.g. "/users/42".
	Path() string
	// Push navigates to path, updating the address bar without a full page
	// load, and arms any registered OnChange listeners.
	Push(path string)
	// OnChange registers cb to run whenever the path changes, including
	// changes from the browser's own back/forward navigation. Returns a
	// function that unregisters cb.
	OnChange(cb func(path string)) (remove func())
}
