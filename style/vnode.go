package style

import "github.com/vortexkit/vortex/vnode"

// Apply registers s with the global precompiler and stamps v with its
// generated class name, wiring the CSS-in-Go builder into the VNode
// builder surface — a Sheet's later Flush writes out whatever's been
// Applied so far.
func (s *Style) Apply(v *vnode.VNode) *vnode.VNode {
	s.Precompile()
	return v.ClassName(s.GetClassName())
}
