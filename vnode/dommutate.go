package vnode

import "github.com/vortexkit/vortex/dom"

// insertChild places node immediately before "before" (or at the end if
// before is nil), routing through a ManagedContainer when the parent VNode
// carries one instead of mutating the DOM tree directly (spec §3.1).
func insertChild(parent dom.Element, container ManagedContainer, node dom.Node, before dom.Node) {
	if container != nil {
		container.InsertChild(node, before)
		return
	}
	if before == nil {
		parent.AppendChild(node)
		return
	}
	parent.InsertBefore(node, before)
}

func removeChild(parent dom.Element, container ManagedContainer, v *VNode) {
	if container != nil {
		container.RemoveChild(v.ref)
	} else {
		parent.RemoveChild(v.ref)
	}
	Dispose(v, false)
}

func moveChild(parent dom.Element, container ManagedContainer, node dom.Node, before dom.Node) {
	if container != nil {
		container.MoveChild(node, before)
		return
	}
	if before == nil {
		parent.AppendChild(node)
		return
	}
	parent.InsertBefore(node, before)
}

// anchorAfter returns the DOM node that idx+1 in new_ has already been
// placed at, or nil if idx is the last slot (append at the end). Because
// every insertion and reordering pass of the keyed algorithm walks new_
// back-to-front, every
// slot to the right of idx already has its ref populated at its final
// position by the time anchorAfter is asked about idx.
func anchorAfter(new_ []*VNode, idx int) dom.Node {
	if idx+1 < len(new_) {
		return new_[idx+1].ref
	}
	return nil
}
