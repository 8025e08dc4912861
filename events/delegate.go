// Package events implements delegated DOM event dispatch: one real listener
// per event type attached at a root element, fanning out to whichever
// registered node is nearest the event's target, instead of one real
// listener per handler.
package events

import "github.com/vortexkit/vortex/dom"

// Handler reacts to an event bubbling through a Delegator.
type Handler func(dom.Event)

// Delegator owns a root element and, for every event type it's asked to
// watch, exactly one real addEventListener call — matching the teacher's
// `createDelegatedEventHandler` approach of a single root listener instead
// of one per interactive element, generalized from the teacher's one-event
// special case to any event type on first use.
type Delegator struct {
	root     dom.Element
	handlers map[string]map[dom.Node]Handler
	removers map[string]func()
}

// NewDelegator returns a Delegator watching events at root.
func NewDelegator(root dom.Element) *Delegator {
	return &Delegator{
		root:     root,
		handlers: map[string]map[dom.Node]Handler{},
		removers: map[string]func(){},
	}
}

// On registers h to run when an event of eventType bubbles up to node
// (or past it, toward root) without a closer handler already having
// stopped propagation. Returns a function that unregisters h.
func (d *Delegator) On(node dom.Node, eventType string, h Handler) (remove func()) {
	nodes, ok := d.handlers[eventType]
	if !ok {
		nodes = map[dom.Node]Handler{}
		d.handlers[eventType] = nodes
		d.removers[eventType] = d.root.AddEventListener(eventType, func(ev dom.Event) {
			d.dispatch(eventType, ev)
		})
	}
	nodes[node] = h
	return func() { delete(nodes, node) }
}

// Close removes every real listener this Delegator attached to root.
func (d *Delegator) Close() {
	for _, remove := range d.removers {
		remove()
	}
	d.handlers = map[string]map[dom.Node]Handler{}
	d.removers = map[string]func(){}
}

// dispatch walks from ev.Target() up through ParentNode, invoking the
// handler registered on the first matching ancestor (or the target itself),
// then continues bubbling to any further-registered ancestors exactly like
// a real un-delegated listener would — unless a handler calls
// ev.StopPropagation(), which this wraps to also halt the walk.
func (d *Delegator) dispatch(eventType string, ev dom.Event) {
	nodes := d.handlers[eventType]
	if len(nodes) == 0 {
		return
	}
	stopped := false
	tracked := stopTrackingEvent{Event: ev, stopped: &stopped}

	for n := ev.Target(); n != nil; n = n.ParentNode() {
		if h, ok := nodes[n]; ok {
			h(tracked)
			if stopped {
				return
			}
		}
		if n == dom.Node(d.root) {
			return
		}
	}
}

type stopTrackingEvent struct {
	dom.Event
	stopped *bool
}

func (e stopTrackingEvent) StopPropagation() {
	*e.stopped = true
	e.Event.StopPropagation()
}
