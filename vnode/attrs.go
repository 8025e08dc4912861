package vnode

import "github.com/vortexkit/vortex/dom"

// syncAttrs applies old -> new on el, per spec §4.1.1.
//
// Static shape (the common case): both maps are assumed to carry the same
// key set across every sync of a given call site. The static branch does
// the same walk as the dynamic one (set what is new or differs, remove what
// was dropped); a key set that changes under static shape is handled that
// way too and is not reported, in DebugMode or otherwise.
//
// Dynamic shape (flagged with DynamicShapeAttrs): the key set itself may
// change between syncs (e.g. attrs built from a map that varies in
// membership), so sync walks both maps: set what's in new and differs (or
// is new), remove what's in old but absent from new.
func syncAttrs(el dom.Element, oldAttrs, newAttrs map[string]string, dynamic bool) {
	if dynamic {
		for k, v := range newAttrs {
			if ov, ok := oldAttrs[k]; !ok || ov != v {
				setAttr(el, k, v)
			}
		}
		for k := range oldAttrs {
			if _, ok := newAttrs[k]; !ok {
				removeAttr(el, k)
			}
		}
		return
	}

	for k, v := range newAttrs {
		if ov, ok := oldAttrs[k]; !ok || ov != v {
			setAttr(el, k, v)
		}
	}
	for k := range oldAttrs {
		if _, ok := newAttrs[k]; !ok {
			removeAttr(el, k)
		}
	}
}

func createAttrs(el dom.Element, attrs map[string]string) {
	for k, v := range attrs {
		setAttr(el, k, v)
	}
}

func setAttr(el dom.Element, name, value string) {
	if ns, namespaced := attrNamespace(name); namespaced {
		el.SetAttributeNS(ns, name, value)
		return
	}
	el.SetAttribute(name, value)
}

func removeAttr(el dom.Element, name string) {
	if ns, namespaced := attrNamespace(name); namespaced {
		el.RemoveAttributeNS(ns, name)
		return
	}
	el.RemoveAttribute(name)
}

// syncProps mirrors syncAttrs for the property map, comparing with == since
// property values are arbitrary Go values rather than strings.
func syncProps(el dom.Element, oldProps, newProps map[string]any, dynamic bool) {
	for k, v := range newProps {
		if ov, ok := oldProps[k]; !ok || ov != v {
			el.SetProperty(k, v)
		}
	}
	if dynamic {
		for k := range oldProps {
			if _, ok := newProps[k]; !ok {
				el.SetProperty(k, nil)
			}
		}
	}
}

func createProps(el dom.Element, props map[string]any) {
	for k, v := range props {
		el.SetProperty(k, v)
	}
}
