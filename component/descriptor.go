// Package component implements the stateful host described in spec §3.2:
// a Descriptor builder that declares how a component type is created and
// rendered, and a Component type that carries the per-instance lifecycle
// (Created/Mounting/Attached/Detached/Disposed), satisfies
// scheduler.Component and invalidator.Invalidatable, and implements
// vnode.Descriptor/vnode.ComponentHost so the reconciler can drive it
// without importing this package.
package component

import (
	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/invalidator"
	"github.com/vortexkit/vortex/scheduler"
	"github.com/vortexkit/vortex/vnode"
)

// Descriptor is the builder application code uses to declare a component
// type once, the way the teacher's FunctionalComponent/StatefulComponentBase
// pairing declares render behavior, generalized here to a single explicit
// vtable instead of embedding.
type Descriptor struct {
	tag           string
	svg           bool
	canvas        bool
	enableBackRef bool
	maxRecycled   int

	initFn             func(c *Component)
	renderFn           func(c *Component) *vnode.VNode
	attachedFn         func(c *Component)
	detachedFn         func(c *Component)
	disposedFn         func(c *Component)
	newPropsReceivedFn func(c *Component, oldData, newData any) bool

	scheduler *scheduler.Scheduler // defaults to scheduler.Default() when nil

	free []*Component // recycled instances, capped at maxRecycled
}

// UsingScheduler overrides the scheduler instance components of this type
// are driven by — tests wire an isolated *scheduler.Scheduler here instead
// of the process-wide Default().
func (d *Descriptor) UsingScheduler(s *scheduler.Scheduler) *Descriptor {
	d.scheduler = s
	return d
}

// NewDescriptor declares a component type whose root element is tag.
func NewDescriptor(tag string) *Descriptor {
	return &Descriptor{tag: tag}
}

// SVG marks the component's root element as living in the SVG namespace.
func (d *Descriptor) SVG() *Descriptor { d.svg = true; return d }

// Canvas records that the component draws onto a canvas. The flag is only
// stored: the root element's tag still comes from NewDescriptor, and child
// reconciliation runs as it does for any other component.
func (d *Descriptor) Canvas() *Descriptor { d.canvas = true; return d }

// EnableBackRef stores a reference back to the Component on its root
// element's "__vortex__" property, so a captured DOM event can recover the
// owning component without a closure over it.
func (d *Descriptor) EnableBackRef() *Descriptor { d.enableBackRef = true; return d }

// EnableComponentRecycling caps a free-list of up to max disposed
// instances, reused by a later Create instead of allocating (spec §3.2's
// "component recycling free-lists").
func (d *Descriptor) EnableComponentRecycling(max int) *Descriptor {
	d.maxRecycled = max
	return d
}

// Init registers a callback run once, right after a Component is allocated
// and before its first render.
func (d *Descriptor) Init(fn func(c *Component)) *Descriptor { d.initFn = fn; return d }

// Render registers the function that builds this component's content: a
// VNode subtree appended beneath (and kept in sync under) the component's
// own root element, the one named by NewDescriptor's tag. It is the one
// required callback.
func (d *Descriptor) Render(fn func(c *Component) *vnode.VNode) *Descriptor {
	d.renderFn = fn
	return d
}

// Attached registers a callback run when the component transitions into
// the Attached state (spec §3.2's lifecycle).
func (d *Descriptor) Attached(fn func(c *Component)) *Descriptor { d.attachedFn = fn; return d }

// Detached registers a callback run when the component transitions into
// the Detached state.
func (d *Descriptor) Detached(fn func(c *Component)) *Descriptor { d.detachedFn = fn; return d }

// Disposed registers a callback run once, right before a Component is torn
// down (or returned to the free-list).
func (d *Descriptor) Disposed(fn func(c *Component)) *Descriptor { d.disposedFn = fn; return d }

// NewPropsReceived registers a callback run when a live instance receives
// new data across a sync. Its bool return decides whether that alone
// should mark the component dirty; with no callback registered, every
// SetData marks dirty unconditionally.
func (d *Descriptor) NewPropsReceived(fn func(c *Component, oldData, newData any) bool) *Descriptor {
	d.newPropsReceivedFn = fn
	return d
}

// Equal implements vnode.Descriptor: two VNodes are compatible across a
// sync only when they carry the exact same Descriptor value.
func (d *Descriptor) Equal(other vnode.Descriptor) bool {
	o, ok := other.(*Descriptor)
	return ok && o == d
}

// Create implements vnode.Descriptor.
func (d *Descriptor) Create(data, children any, parent vnode.ComponentHost, doc dom.Document) vnode.ComponentHost {
	c := d.allocate(parent)
	c.data = data
	c.children = children
	c.doc = doc
	c.el = createRootElement(d, doc)
	if d.enableBackRef {
		c.el.SetProperty("__vortex__", c)
	}
	if d.initFn != nil {
		d.initFn(c)
	}
	c.state = stateMounting
	c.renderInto()
	c.state = stateDetached
	return c
}

// Mount implements vnode.Descriptor: adopts element as the component's own
// root instead of building a fresh one.
func (d *Descriptor) Mount(data, children any, parent vnode.ComponentHost, element dom.Element) vnode.ComponentHost {
	c := d.allocate(parent)
	c.data = data
	c.children = children
	c.el = element
	if d.enableBackRef {
		c.el.SetProperty("__vortex__", c)
	}
	if d.initFn != nil {
		d.initFn(c)
	}
	c.state = stateMounting
	if d.renderFn != nil {
		root := d.renderFn(c)
		if root != nil {
			if first := element.FirstChild(); first != nil {
				if err := vnode.Mount(root, first, c); err == nil {
					c.root = root
				}
			}
		}
	}
	c.state = stateDetached
	return c
}

func (d *Descriptor) allocate(parent vnode.ComponentHost) *Component {
	var c *Component
	if n := len(d.free); n > 0 {
		c = d.free[n-1]
		d.free = d.free[:n-1]
		c.reset()
	} else {
		c = &Component{}
	}
	c.descriptor = d
	c.parent = parent
	if parent != nil {
		c.depth = parent.Depth() + 1
	}
	sched := d.scheduler
	if sched == nil {
		sched = scheduler.Default()
	}
	c.sched = sched
	c.inv = invalidator.New(sched)
	return c
}

func (d *Descriptor) release(c *Component) {
	if d.maxRecycled > 0 && len(d.free) < d.maxRecycled {
		d.free = append(d.free, c)
	}
}

func createRootElement(d *Descriptor, doc dom.Document) dom.Element {
	if d.svg {
		return doc.CreateElementNS(dom.NSSVG, d.tag)
	}
	return doc.CreateElement(d.tag)
}
