// Package vnode implements the virtual-DOM data model, the builder surface
// application code calls, and the reconciler: create/render/sync/mount/
// dispose dispatched against the dom capability interfaces (spec §3.1,
// §4.1, §6).
package vnode

import "github.com/vortexkit/vortex/dom"

// VNode is the single node type for every variant (spec §9: "one struct,
// flags field selects behavior" rather than an interface hierarchy — this
// keeps sync() a flat dispatch instead of a type switch over subtypes).
type VNode struct {
	flags Flags

	tag string // element tag name, or descriptor type name for diagnostics

	key any // nil when unkeyed

	// Element/Text payload.
	text string

	attrs      map[string]string
	props      map[string]any
	style      map[string]string
	cssText    string
	className  string // precomputed, cached class string
	classes    []string

	children     []*VNode
	childrenText string // set instead of children for single-text-child shortcut

	// Component payload.
	descriptor Descriptor
	data       any

	managedContainer ManagedContainer

	// Mutable reconciliation state, populated by create/mount and read by
	// sync; zero value means "not yet instantiated".
	ref  dom.Node        // the DOM node (Text/Element variants) or the component's root element (Root)
	cref ComponentHost   // populated for Component variant
}

// Flags exposes the variant/modifier bitfield, read by the reconciler.
func (v *VNode) Flags() Flags { return v.flags }

// Ref returns the DOM node this VNode instantiated to, or nil if it hasn't
// been created/mounted yet.
func (v *VNode) Ref() dom.Node { return v.ref }

// CRef returns the live component instance for a Component-variant VNode,
// or nil otherwise.
func (v *VNode) CRef() ComponentHost { return v.cref }

// Key returns the diffing key, or nil if this VNode is unkeyed.
func (v *VNode) Key() any { return v.key }

// --- Builder constructors -------------------------------------------------

// Text builds a Text-variant VNode.
func Text(text string) *VNode {
	return &VNode{flags: FlagText, text: text}
}

// Element builds an HTML Element-variant VNode for the given tag.
func Element(tag string) *VNode {
	return &VNode{flags: FlagElement, tag: tag}
}

// SVGElement builds an Element-variant VNode in the SVG namespace.
func SVGElement(tag string) *VNode {
	return &VNode{flags: FlagElement | FlagSVG, tag: tag}
}

// ComponentNode builds a Component-variant VNode bound to descriptor, with
// the given initial data (spec §3.1, §6).
func ComponentNode(descriptor Descriptor, data any) *VNode {
	return &VNode{flags: FlagComponent, descriptor: descriptor, data: data}
}

// Root builds a Root-variant VNode: the synthetic wrapper Inject/Mount use
// to adopt an already-existing DOM element as the top of a tree (spec §6).
func Root() *VNode {
	return &VNode{flags: FlagRoot}
}

// --- Chained builder methods ---------------------------------------------

// WithKey assigns the diffing key used by the keyed child-list algorithm
// (spec §4.1.3). The key is only consulted when the parent list uses
// TrackByKeyChildren; nothing, in DebugMode or otherwise, rejects a keyed
// child under a parent that does not.
func (v *VNode) WithKey(key any) *VNode {
	v.key = key
	return v
}

// Attrs sets the static attribute map, synced with SetAttribute/RemoveAttribute
// (spec §4.1.1's static shape: the key set is expected to stay the same
// across syncs; values are compared key by key).
func (v *VNode) Attrs(attrs map[string]string) *VNode {
	v.attrs = attrs
	return v
}

// Props sets the static property map, synced via SetProperty.
func (v *VNode) Props(props map[string]any) *VNode {
	v.props = props
	return v
}

// DynamicShapeAttrs marks this VNode's attrs/props maps as dynamically
// shaped: the key set may differ between two syncs, so sync must diff both
// directions (added/changed/removed) instead of assuming a fixed key set
// (spec §4.1.1).
func (v *VNode) DynamicShapeAttrs() *VNode {
	v.flags |= FlagDynamicShapeAttrs
	return v
}

// Style sets the per-property inline style map.
func (v *VNode) Style(style map[string]string) *VNode {
	v.style = style
	return v
}

// CSSText sets the inline style as a single CSS text blob instead of a
// per-property map; mutually exclusive with Style (spec §4.1.1).
func (v *VNode) CSSText(css string) *VNode {
	v.cssText = css
	return v
}

// ClassName sets the class attribute as a single precomputed string.
func (v *VNode) ClassName(name string) *VNode {
	v.className = name
	return v
}

// Classes sets the class attribute as a list of tokens, diffed with the
// O(n+m) class-list algorithm against the previous VNode's token list
// (spec §4.1.1) instead of being replaced wholesale.
func (v *VNode) Classes(classes ...string) *VNode {
	v.classes = classes
	return v
}

// Type sets an <input>-family element's "type" attribute and, for
// "checkbox" and "radio", a matching input flag. Sync does not read those
// flags: "checked" and "value" are synced like any other attribute or
// property.
func (v *VNode) Type(inputType string) *VNode {
	switch inputType {
	case "checkbox":
		v.flags |= FlagInputCheckbox
	case "radio":
		v.flags |= FlagInputRadio
	}
	if v.attrs == nil {
		v.attrs = map[string]string{}
	}
	v.attrs["type"] = inputType
	return v
}

// Children sets an unkeyed child list.
func (v *VNode) Children(children ...*VNode) *VNode {
	v.children = children
	return v
}

// Child is shorthand for Children(single).
func (v *VNode) Child(child *VNode) *VNode {
	v.children = []*VNode{child}
	return v
}

// ChildrenText sets a single text-content child as a plain string, the fast
// path spec §4.1.2 calls out for the common "one text child" case — synced
// with SetTextContent instead of a child-node diff.
func (v *VNode) ChildrenText(text string) *VNode {
	v.childrenText = text
	v.children = nil
	return v
}

// TrackByKeyChildren marks this VNode's children as keyed: every child must
// carry a WithKey, and child-list sync runs the LIS-based keyed algorithm
// (spec §4.1.3) instead of the positional unkeyed diff.
func (v *VNode) TrackByKeyChildren(children ...*VNode) *VNode {
	v.flags |= FlagTrackByKey
	v.children = children
	return v
}

// WithManagedContainer delegates this VNode's child-list DOM mutations to c
// instead of the reconciler performing them directly (spec §3.1).
func (v *VNode) WithManagedContainer(c ManagedContainer) *VNode {
	v.flags |= FlagManagedContainer
	v.managedContainer = c
	return v
}

// KeepAlive marks a Component-variant VNode so that disposing an ancestor
// detaches rather than disposes it, letting the instance be reattached
// later (spec §3.2's component lifecycle, "keep-alive").
func (v *VNode) KeepAlive() *VNode {
	v.flags |= FlagKeepAlive
	return v
}

// BindOnce marks a VNode whose ref, once populated by create/mount, is
// never touched by a later sync — used for subtrees owned by code outside
// the reconciler (spec §3.1).
func (v *VNode) BindOnce() *VNode {
	v.flags |= FlagBindOnce
	return v
}

// DisableChildrenShapeError suppresses the DebugMode panic that otherwise
// fires when a VNode's children alternate between ChildrenText and
// Children across syncs (spec §7's debug-mode misuse checks).
func (v *VNode) DisableChildrenShapeError() *VNode {
	v.flags |= FlagDisableChildrenShapeError
	return v
}
