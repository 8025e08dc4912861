package vnode

import "github.com/vortexkit/vortex/dom"

// syncStyle applies old -> new inline style. CSSText and the per-property
// map are mutually exclusive per VNode (spec §4.1.1): a CSSText blob always
// wins and is compared/set wholesale (cheap string equality beats diffing
// an opaque blob), while the per-property map diffs key-by-key like attrs.
func syncStyle(el dom.Element, old, new_ *VNode) {
	if new_.cssText != "" || old.cssText != "" {
		if new_.cssText != old.cssText {
			el.Style().SetCSSText(new_.cssText)
		}
		return
	}
	for k, v := range new_.style {
		if ov, ok := old.style[k]; !ok || ov != v {
			el.Style().SetProperty(k, v)
		}
	}
	for k := range old.style {
		if _, ok := new_.style[k]; !ok {
			el.Style().RemoveProperty(k)
		}
	}
}

func createStyle(el dom.Element, v *VNode) {
	if v.cssText != "" {
		el.Style().SetCSSText(v.cssText)
		return
	}
	for k, val := range v.style {
		el.Style().SetProperty(k, val)
	}
}
