package vnode

import "github.com/vortexkit/vortex/dom"

// Descriptor is the vtable a Component-variant VNode carries (spec
// §3.1/§6). package component's Descriptor implements this by constructing
// a *component.Component; vnode never imports component — it only ever
// sees a live component instance through ComponentHost, so the two
// packages don't form a cycle.
type Descriptor interface {
	// Create builds a brand-new component instance for a freshly-created
	// VNode. parent is the enclosing component, or nil when the VNode sits
	// at the root of an Inject/Mount call. doc is passed through so the
	// component can build its own rendered subtree.
	Create(data, children any, parent ComponentHost, doc dom.Document) ComponentHost

	// Mount adopts an existing DOM element as a component's root instead of
	// creating one, for hydrating pre-rendered markup (spec §6's mount
	// operation).
	Mount(data, children any, parent ComponentHost, element dom.Element) ComponentHost

	// Equal reports whether two descriptors denote the same component type,
	// the condition create/sync checks before reusing vs. replacing a
	// Component-variant VNode's instance.
	Equal(other Descriptor) bool
}

// ComponentHost is the reconciler's view of a live component instance: just
// enough to splice it into the DOM tree and keep it in sync.
type ComponentHost interface {
	Element() dom.Element
	Depth() int
	SetData(data any)
	SetChildren(children any)
	Update()
	Dispose(keepAlive bool)
}
