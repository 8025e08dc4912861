package component

import (
	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/invalidator"
	"github.com/vortexkit/vortex/scheduler"
	"github.com/vortexkit/vortex/vnode"
)

// lifecycleState is spec §3.2's Created -> Mounting -> Attached <-> Detached
// -> Disposed state machine.
type lifecycleState uint8

const (
	stateCreated lifecycleState = iota
	stateMounting
	stateAttached
	stateDetached
	stateDisposed
)

// Component is a stateful host bound to a DOM element: it owns a root
// VNode subtree, consumes invalidations, and is driven by the scheduler as
// a depth-ordered write task (spec §3.2). It satisfies scheduler.Component,
// invalidator.Invalidatable, vnode.ComponentHost and (via Descriptor)
// vnode.Descriptor's construction contract.
type Component struct {
	descriptor *Descriptor
	sched      *scheduler.Scheduler
	inv        *invalidator.Invalidator

	parent vnode.ComponentHost
	depth  int

	doc  dom.Document
	el   dom.Element
	root *vnode.VNode

	data     any
	children any

	state             lifecycleState
	dirty             bool
	updatingEachFrame bool
	keepAlive         bool

	ownedSubs []*invalidator.Subscription
}

// Data returns the component's current data payload, as set by the
// descriptor's Create/Mount or by a later sync's SetData.
func (c *Component) Data() any { return c.data }

// Children returns the current children payload a parent passed down.
func (c *Component) Children() any { return c.children }

// Invalidator exposes the component's own broadcast point, so descendant
// state can subscribe to this component's invalidation (spec §3.3).
func (c *Component) Invalidator() *invalidator.Invalidator { return c.inv }

// Scheduler returns the scheduler instance this component is driven by.
func (c *Component) Scheduler() *scheduler.Scheduler { return c.sched }

// Subscribe registers a permanent subscription owned by this component:
// it is canceled automatically when the component is disposed.
func (c *Component) Subscribe(target *invalidator.Invalidator) {
	c.ownedSubs = append(c.ownedSubs, target.Subscribe(c))
}

// --- scheduler.Component -------------------------------------------------

// Depth implements scheduler.Component and vnode.ComponentHost.
func (c *Component) Depth() int { return c.depth }

// MarkDirty implements scheduler.Component: flags the component so the
// next Update() actually re-renders instead of short-circuiting.
func (c *Component) MarkDirty() { c.dirty = true }

// UpdatingEachFrame implements scheduler.Component.
func (c *Component) UpdatingEachFrame() bool { return c.updatingEachFrame }

// StartUpdateEachFrame registers the component for per-frame autonomous
// updates (e.g. an animation), independent of invalidation (spec §4.2).
func (c *Component) StartUpdateEachFrame() {
	c.updatingEachFrame = true
	c.sched.StartUpdateComponentEachFrame(c)
}

// StopUpdateEachFrame cancels a previous StartUpdateEachFrame; the
// scheduler drops the component from its per-frame list on its next pass.
func (c *Component) StopUpdateEachFrame() { c.updatingEachFrame = false }

// --- invalidator.Invalidatable --------------------------------------------

// Invalidate implements invalidator.Invalidatable: marks the component
// dirty and schedules a depth-ordered write through ScheduleUpdate: into the
// frame being run when called during a tick, otherwise into the next frame.
func (c *Component) Invalidate() {
	if c.state == stateDisposed {
		return
	}
	c.dirty = true
	c.sched.ScheduleUpdate(c)
}

// --- vnode.ComponentHost ---------------------------------------------------

// Element implements vnode.ComponentHost.
func (c *Component) Element() dom.Element { return c.el }

// SetData implements vnode.ComponentHost: installs newData, notifies
// NewPropsReceived, and marks the component dirty so the next Update
// actually re-renders, unless NewPropsReceived returns false (without a
// NewPropsReceived callback the component is always marked dirty).
func (c *Component) SetData(newData any) {
	old := c.data
	c.data = newData
	dirty := true
	if c.descriptor.newPropsReceivedFn != nil {
		dirty = c.descriptor.newPropsReceivedFn(c, old, newData)
	}
	c.dirty = c.dirty || dirty
}

// SetChildren implements vnode.ComponentHost.
func (c *Component) SetChildren(children any) { c.children = children }

// Update implements both scheduler.Component and vnode.ComponentHost: a
// no-op unless the component is dirty, in which case it re-renders and
// syncs its root subtree in place.
func (c *Component) Update() {
	if !c.dirty || c.state == stateDisposed {
		return
	}
	c.dirty = false
	c.renderInto()
}

func (c *Component) renderInto() {
	if c.descriptor.renderFn == nil {
		return
	}
	newRoot := c.descriptor.renderFn(c)
	if newRoot == nil {
		return
	}
	if c.root == nil {
		node := vnode.Create(newRoot, c, c.doc)
		c.el.AppendChild(node)
		c.root = newRoot
		return
	}
	vnode.Sync(c.root, newRoot, c, c.doc)
	c.root = newRoot
}

// Dispose implements vnode.ComponentHost: tears down the rendered subtree
// and returns the instance to its descriptor's free-list, unless keepAlive
// asks to merely detach it for later reattachment (spec §3.2).
func (c *Component) Dispose(keepAlive bool) {
	if c.state == stateDisposed {
		return
	}
	if keepAlive {
		c.detach()
		return
	}
	c.detach()
	if c.descriptor.disposedFn != nil {
		c.descriptor.disposedFn(c)
	}
	if c.root != nil {
		vnode.Dispose(c.root, false)
	}
	for _, s := range c.ownedSubs {
		s.Cancel()
	}
	c.ownedSubs = nil
	c.state = stateDisposed
	c.descriptor.release(c)
}

func (c *Component) detach() {
	if c.state != stateAttached {
		return
	}
	c.updatingEachFrame = false
	if c.descriptor.detachedFn != nil {
		c.descriptor.detachedFn(c)
	}
	c.state = stateDetached
}

// Attach transitions the component into the Attached state, running its
// Attached callback. Called once the component's element is actually
// spliced into a live document (spec §3.2).
func (c *Component) Attach() {
	if c.state == stateAttached || c.state == stateDisposed {
		return
	}
	c.state = stateAttached
	if c.descriptor.attachedFn != nil {
		c.descriptor.attachedFn(c)
	}
}

// reset clears per-instance state before a recycled Component is reused,
// leaving its allocation (and any internal slice capacity) intact.
func (c *Component) reset() {
	c.parent = nil
	c.depth = 0
	c.doc = nil
	c.el = nil
	c.root = nil
	c.data = nil
	c.children = nil
	c.state = stateCreated
	c.dirty = false
	c.updatingEachFrame = false
	c.keepAlive = false
	c.ownedSubs = nil
}

var _ scheduler.Component = (*Component)(nil)
var _ invalidator.Invalidatable = (*Component)(nil)
var _ vnode.ComponentHost = (*Component)(nil)
