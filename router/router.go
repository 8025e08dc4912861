// Package router matches the current path against a small route table and
// drives a callback on navigation — the concrete collaborator that shows
// the core's component/vnode hooks are sufficient to build routing on top
// of, not a general-purpose routing policy engine.
package router

import "fmt"

// Handler runs when its route matches the current path; params holds the
// route's named segments (and its wildcard capture, if any).
type Handler func(params map[string]string)

type route struct {
	pattern *pattern
	handler Handler
}

// Router matches History's current path against a list of routes
// registered in order, calling the first one that matches.
type Router struct {
	history  History
	routes   []route
	notFound func(path string)
	unsub    func()
}

// New creates a Router driven by history. Call Start to begin dispatching.
func New(history History) *Router {
	return &Router{history: history}
}

// Handle registers pattern (e.g. "/users/:id") with handler, tried in
// registration order against every incoming path.
func (r *Router) Handle(path string, handler Handler) *Router {
	p, err := compilePattern(path)
	if err != nil {
		panic(fmt.Sprintf("router: %v", err))
	}
	r.routes = append(r.routes, route{pattern: p, handler: handler})
	return r
}

// NotFound sets the handler run when no route matches.
func (r *Router) NotFound(handler func(path string)) *Router {
	r.notFound = handler
	return r
}

// Start dispatches the current path and subscribes to future navigation.
func (r *Router) Start() {
	r.unsub = r.history.OnChange(r.dispatch)
	r.dispatch(r.history.Path())
}

// Stop unsubscribes from History; Start must be called again to resume.
func (r *Router) Stop() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

// Navigate pushes path onto History, which in turn triggers dispatch.
func (r *Router) Navigate(path string) {
	r.history.Push(path)
}

func (r *Router) dispatch(path string) {
	for _, rt := range r.routes {
		if params, ok := rt.pattern.match(path); ok {
			rt.handler(params)
			return
		}
	}
	if r.notFound != nil {
		r.notFound(path)
	}
}
