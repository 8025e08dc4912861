package vnode

import "github.com/vortexkit/vortex/dom"

// syncClass applies old -> new class state. A VNode carries either a
// precomputed className string or a token list, never both (spec §4.1.1).
// The className path is a single string compare + SetAttribute; the token
// list path runs an O(n+m) set diff via ClassList.Add/Remove instead of
// tearing down and rebuilding the whole attribute.
func syncClass(el dom.Element, old, new_ *VNode) {
	if new_.classes == nil && old.classes == nil {
		if new_.className != old.className {
			el.SetAttribute("class", new_.className)
		}
		return
	}

	cl := el.ClassList()
	oldSet := make(map[string]bool, len(old.classes))
	for _, c := range old.classes {
		oldSet[c] = true
	}
	newSet := make(map[string]bool, len(new_.classes))
	for _, c := range new_.classes {
		newSet[c] = true
	}
	for _, c := range new_.classes {
		if !oldSet[c] {
			cl.Add(c)
		}
	}
	for _, c := range old.classes {
		if !newSet[c] {
			cl.Remove(c)
		}
	}
}

func createClass(el dom.Element, v *VNode) {
	if v.classes != nil {
		cl := el.ClassList()
		for _, c := range v.classes {
			cl.Add(c)
		}
		return
	}
	if v.className != "" {
		el.SetAttribute("class", v.className)
	}
}
