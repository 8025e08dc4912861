package vnode

import "fmt"

// DebugMode gates the programmer-misuse panics spec §7/§8 describes: Create
// on a Root-variant VNode, an unknown variant, and a children shape that
// switches between text content and a child list across syncs. A sync
// across incompatible variants replaces the node instead of panicking, and
// duplicate keys are not checked. Production builds should leave it false:
// the checks
// walk structures that are already being walked for the real sync, so
// leaving them on costs real CPU for no benefit once a tree is known-good.
var DebugMode = false

func debugPanic(format string, args ...any) {
	if !DebugMode {
		return
	}
	panic(fmt.Sprintf(format, args...))
}

// debugAssert panics with msg if cond is false and DebugMode is on.
func debugAssert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	debugPanic(format, args...)
}
