package vnode

import "github.com/vortexkit/vortex/dom"

// ManagedContainer lets a component delegate its own children's DOM
// placement instead of letting the reconciler insert/remove/move them
// directly (spec §3.1's "managed-container" modifier; grounded on the
// render-then-delegate split the teacher's animation helper used for
// enter/leave transitions). A VNode built with WithManagedContainer() routes
// every child-list mutation through this interface.
type ManagedContainer interface {
	CreateChild(vnode *VNode, ctx ComponentHost) dom.Node
	InsertChild(child dom.Node, before dom.Node)
	MoveChild(child dom.Node, before dom.Node)
	RemoveChild(child dom.Node)
	ReplaceChild(newChild, oldChild dom.Node)
}
