package vnode

import "github.com/vortexkit/vortex/dom"

// namespacedAttrs is the attribute namespace sentinel table spec §6 and
// §4.1.1 call for: the fixed set of xlink:/xml:-prefixed attribute names
// that must go through SetAttributeNS/RemoveAttributeNS rather than the
// plain (non-namespaced) attribute calls, because SVG documents resolve
// them against the XLink or XML namespace instead of the element's own.
var namespacedAttrs = map[string]string{
	"xlink:href":       dom.NSXLink,
	"xlink:type":       dom.NSXLink,
	"xlink:role":       dom.NSXLink,
	"xlink:arcrole":    dom.NSXLink,
	"xlink:title":      dom.NSXLink,
	"xlink:show":       dom.NSXLink,
	"xlink:actuate":    dom.NSXLink,
	"xml:base":         dom.NSXML,
	"xml:lang":         dom.NSXML,
}

// attrNamespace returns the namespace URI a given attribute name must be
// set/removed under, and whether it needs one at all.
func attrNamespace(name string) (ns string, namespaced bool) {
	ns, namespaced = namespacedAttrs[name]
	return ns, namespaced
}
