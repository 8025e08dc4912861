package vnode

import "github.com/vortexkit/vortex/dom"

// syncUnkeyedChildren implements spec §4.1.2: children are compared
// positionally with no identity tracking, so the only moves a sync can
// produce are a shrink or grow at the tail.
func syncUnkeyedChildren(old, new_ []*VNode, parent dom.Element, container ManagedContainer, ctx ComponentHost, doc dom.Document) {
	common := len(old)
	if len(new_) < common {
		common = len(new_)
	}
	for i := 0; i < common; i++ {
		Sync(old[i], new_[i], ctx, doc)
	}

	switch {
	case len(new_) > len(old):
		for i := len(old); i < len(new_); i++ {
			node := Create(new_[i], ctx, doc)
			insertChild(parent, container, node, nil)
		}
	case len(old) > len(new_):
		for i := len(new_); i < len(old); i++ {
			removeChild(parent, container, old[i])
		}
	}
}
