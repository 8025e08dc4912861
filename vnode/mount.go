package vnode

import (
	"fmt"

	"github.com/vortexkit/vortex/dom"
)

// Mount adopts existing DOM markup rooted at node as v's subtree, binding
// v.ref (and descendants' refs) without creating any new nodes — the
// hydration path for pre-rendered markup (spec §6).
func Mount(v *VNode, node dom.Node, ctx ComponentHost) error {
	switch v.flags.Variant() {
	case FlagText:
		t, ok := node.(dom.Text)
		if !ok {
			return fmt.Errorf("vnode: mount expected a text node, got %T", node)
		}
		v.ref = t
		return nil

	case FlagElement:
		el, ok := node.(dom.Element)
		if !ok {
			return fmt.Errorf("vnode: mount expected element <%s>, got %T", v.tag, node)
		}
		v.ref = el
		return mountChildren(v, el, ctx)

	case FlagComponent:
		el, ok := node.(dom.Element)
		if !ok {
			return fmt.Errorf("vnode: mount expected an element to host a component, got %T", node)
		}
		host := v.descriptor.Mount(v.data, v.children, ctx, el)
		v.cref = host
		v.ref = el
		return nil

	case FlagRoot:
		el, ok := node.(dom.Element)
		if !ok {
			return fmt.Errorf("vnode: mount expected an element as the injection root, got %T", node)
		}
		v.ref = el
		return mountChildren(v, el, ctx)
	}
	return fmt.Errorf("vnode: mount called on VNode with unknown variant flags %v", v.flags)
}

// mountChildren walks v's children against el's actual DOM children in
// order. Two adjacent Text-variant VNodes serialize with a placeholder
// comment between them in pre-rendered markup — otherwise the two would
// parse back as a single merged text node — so a Comment encountered
// between children is skipped rather than mounted against.
func mountChildren(v *VNode, el dom.Element, ctx ComponentHost) error {
	if v.childrenText != "" {
		return nil
	}
	child := el.FirstChild()
	for _, cv := range v.children {
		for {
			if child == nil {
				return fmt.Errorf("vnode: mount ran out of DOM children under <%s>", v.tag)
			}
			if child.Kind() != dom.KindComment {
				break
			}
			cv.flags |= FlagCommentPlaceholder
			child = child.NextSibling()
		}
		if err := Mount(cv, child, ctx); err != nil {
			return err
		}
		child = child.NextSibling()
	}
	return nil
}
