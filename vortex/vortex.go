// Package vortex exposes the two public entry points application code
// calls to get a VNode tree onto the page: Inject, which builds a fresh
// subtree under an existing container element, and Mount, which hydrates
// markup that's already there (spec §6).
package vortex

import (
	"fmt"

	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/vnode"
)

// Handle is the live binding Inject/Mount return: the container element and
// the VNode tree currently reflecting its contents, kept in sync by later
// calls to Update.
type Handle struct {
	container dom.Element
	root      *vnode.VNode
	doc       dom.Document
}

// Inject creates root's subtree from scratch and appends it to container,
// which must be empty — any existing children are left untouched and will
// sit alongside the injected tree, since Inject never clears a container
// itself (spec §6: injection only ever adds).
func Inject(root *vnode.VNode, container dom.Element, doc dom.Document) *Handle {
	node := vnode.Create(root, nil, doc)
	container.AppendChild(node)
	return &Handle{container: container, root: root, doc: doc}
}

// Mount adopts container's existing DOM children as root's subtree instead
// of creating new nodes, per spec §6's hydration path. Mount returns an
// error when the markup runs out of nodes or a node is of the wrong kind
// (element or text); tag names and text content are not compared.
func Mount(root *vnode.VNode, container dom.Element, doc dom.Document) (*Handle, error) {
	first := container.FirstChild()
	if first == nil {
		return nil, fmt.Errorf("vortex: Mount found no existing markup under the container element")
	}
	if err := vnode.Mount(root, first, nil); err != nil {
		return nil, fmt.Errorf("vortex: %w", err)
	}
	return &Handle{container: container, root: root, doc: doc}, nil
}

// Update reconciles h's tree against newRoot and adopts newRoot as the
// live tree, per spec §4.1's sync operation. Call this from application
// code that owns its top-level VNode outside of any Component (most apps
// should prefer wrapping their whole UI in one root Component instead,
// which invalidates and re-renders itself through the scheduler).
func (h *Handle) Update(newRoot *vnode.VNode) {
	vnode.Sync(h.root, newRoot, nil, h.doc)
	h.root = newRoot
}

// Root returns the VNode tree currently reflecting the container's
// contents.
func (h *Handle) Root() *vnode.VNode { return h.root }

// Container returns the element Inject/Mount was bound to.
func (h *Handle) Container() dom.Element { return h.container }

// Dispose tears down h's tree: every Component instance it contains is
// disposed and its DOM nodes are removed from container.
func (h *Handle) Dispose() {
	vnode.Dispose(h.root, false)
	for c := h.container.FirstChild(); c != nil; {
		next := c.NextSibling()
		h.container.RemoveChild(c)
		c = next
	}
}
