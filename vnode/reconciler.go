package vnode

import "github.com/vortexkit/vortex/dom"

// Create instantiates v's entire subtree against doc and returns the root
// DOM node, per spec §4.1/§6. ctx is the enclosing component, used as the
// `parent` passed to a Component-variant VNode's descriptor — nil at the
// top of an Inject call.
func Create(v *VNode, ctx ComponentHost, doc dom.Document) dom.Node {
	switch v.flags.Variant() {
	case FlagText:
		t := doc.CreateTextNode(v.text)
		v.ref = t
		return t

	case FlagElement:
		el := createElement(v, doc)
		createAttrs(el, v.attrs)
		createProps(el, v.props)
		createStyle(el, v)
		createClass(el, v)
		createChildren(v, el, ctx, doc)
		v.ref = el
		return el

	case FlagComponent:
		host := v.descriptor.Create(v.data, v.children, ctx, doc)
		v.cref = host
		v.ref = host.Element()
		return host.Element()

	case FlagRoot:
		debugPanic("vnode: Create called on a Root-variant VNode; use Mount against an existing element instead")
		return nil
	}
	debugPanic("vnode: Create called on VNode with unknown variant flags %v", v.flags)
	return nil
}

func createElement(v *VNode, doc dom.Document) dom.Element {
	if v.flags.Has(FlagSVG) {
		return doc.CreateElementNS(dom.NSSVG, v.tag)
	}
	return doc.CreateElement(v.tag)
}

func createChildren(v *VNode, el dom.Element, ctx ComponentHost, doc dom.Document) {
	if v.childrenText != "" {
		el.SetTextContent(v.childrenText)
		return
	}
	managed := v.flags.Has(FlagManagedContainer)
	for _, c := range v.children {
		if managed {
			node := v.managedContainer.CreateChild(c, ctx)
			v.managedContainer.InsertChild(node, nil)
			continue
		}
		el.AppendChild(Create(c, ctx, doc))
	}
}

// compatible reports whether old can be synced in place into new's shape,
// per spec §4.1.4's state machine: same variant, and for Element the same
// tag/namespace, for Component the same descriptor type.
func compatible(old, new_ *VNode) bool {
	if old.flags.Variant() != new_.flags.Variant() {
		return false
	}
	switch new_.flags.Variant() {
	case FlagElement:
		return old.tag == new_.tag && old.flags.Has(FlagSVG) == new_.flags.Has(FlagSVG)
	case FlagComponent:
		return old.descriptor.Equal(new_.descriptor)
	}
	return true
}

// Sync reconciles old (already instantiated) against new_ and returns the
// resulting DOM node — either old's ref reused in place, or a brand-new
// node when old and new_ turn out incompatible (spec §4.1.4: an
// incompatible sync disposes the old subtree and creates the new one from
// scratch rather than attempting a partial patch).
func Sync(old, new_ *VNode, ctx ComponentHost, doc dom.Document) dom.Node {
	if old.flags.Has(FlagBindOnce) {
		new_.ref = old.ref
		new_.cref = old.cref
		return old.ref
	}

	if !compatible(old, new_) {
		fresh := Create(new_, ctx, doc)
		replaceNode(old.ref, fresh)
		Dispose(old, false)
		return fresh
	}

	switch new_.flags.Variant() {
	case FlagText:
		t := old.ref.(dom.Text)
		if old.text != new_.text {
			t.SetData(new_.text)
		}
		new_.ref = t
		return t

	case FlagElement:
		el := old.ref.(dom.Element)
		syncAttrs(el, old.attrs, new_.attrs, new_.flags.Has(FlagDynamicShapeAttrs))
		syncProps(el, old.props, new_.props, new_.flags.Has(FlagDynamicShapeAttrs))
		syncStyle(el, old, new_)
		syncClass(el, old, new_)
		syncChildren(old, new_, el, ctx, doc)
		new_.ref = el
		return el

	case FlagComponent:
		host := old.cref
		new_.cref = host
		new_.ref = host.Element()
		host.SetData(new_.data)
		host.SetChildren(new_.children)
		host.Update()
		return new_.ref
	}
	debugPanic("vnode: Sync called on VNode with unknown variant flags %v", new_.flags)
	return old.ref
}

func replaceNode(old, fresh dom.Node) {
	if old == nil {
		return
	}
	parent := old.ParentNode()
	if parent == nil {
		return
	}
	parent.ReplaceChild(fresh, old)
}

// syncChildren dispatches to the keyed or unkeyed child-list algorithm,
// handling the ChildrenText shortcut and the mixed-shape debug check (spec
// §4.1.2/§4.1.3/§7).
func syncChildren(old, new_ *VNode, el dom.Element, ctx ComponentHost, doc dom.Document) {
	newHasText := new_.childrenText != ""
	oldHasText := old.childrenText != ""

	if newHasText || oldHasText {
		if !new_.flags.Has(FlagDisableChildrenShapeError) {
			debugAssert(len(new_.children) == 0 && len(old.children) == 0 || newHasText == oldHasText,
				"vnode: children shape changed between text content and a child list across syncs")
		}
		if new_.childrenText != old.childrenText {
			el.SetTextContent(new_.childrenText)
		}
		return
	}

	if new_.flags.Has(FlagTrackByKey) {
		syncKeyedChildren(old.children, new_.children, el, resolveContainer(old.managedContainer, new_), ctx, doc)
		return
	}
	syncUnkeyedChildren(old.children, new_.children, el, resolveContainer(old.managedContainer, new_), ctx, doc)
}

// resolveContainer picks the ManagedContainer that should mediate this
// sync: new_'s own if set, else the one inherited from old (a
// managed-container VNode keeps the same delegate across syncs).
func resolveContainer(oldContainer ManagedContainer, new_ *VNode) ManagedContainer {
	if new_.flags.Has(FlagManagedContainer) {
		return new_.managedContainer
	}
	return oldContainer
}

// Dispose tears down v's subtree: Component instances are disposed (unless
// keepAlive, or v itself carries KeepAlive), and DOM nodes are simply dropped along with their whole subtree by
// the caller removing the root node — Dispose only needs to recurse into
// Component hosts, since removing an Element/Text node removes its
// descendants with it.
func Dispose(v *VNode, keepAlive bool) {
	switch v.flags.Variant() {
	case FlagComponent:
		if v.cref != nil {
			v.cref.Dispose(keepAlive || v.flags.Has(FlagKeepAlive))
		}
	case FlagElement, FlagRoot:
		for _, c := range v.children {
			Dispose(c, false)
		}
	}
}
