package vnode

// Flags is the discriminated-record tag spec §3.1/§9 calls for: the low
// bits pick the variant, the rest are independent modifier bits. The
// reconciler always dispatches on this field — never on Go type
// assertions or subtype polymorphism (spec §9).
type Flags uint32

const (
	// Variant bits (mutually exclusive; mask with variantMask).
	FlagText Flags = 1 << iota
	FlagElement
	FlagComponent
	FlagRoot

	// Modifier bits, any combination of which may accompany a variant.
	FlagSVG                // element lives in the SVG namespace
	FlagTrackByKey          // children are diffed by the keyed algorithm
	FlagKeepAlive           // disposing an ancestor must not dispose this component
	FlagBindOnce            // sync short-circuits once ref is populated
	FlagManagedContainer    // child-list mutations delegate to a ManagedContainer
	FlagCommentPlaceholder  // this text node was separated by a placeholder comment when mounted
	FlagDynamicShapeAttrs   // attrs/props sync uses the dynamic (either-side-may-differ) shape
	FlagDisableChildrenShapeError // suppress the debug-mode mixed string/list children panic

	// Input-element subtype bits, for the handful of <input> types whose
	// "value"/"checked" property sync needs special handling.
	FlagInputCheckbox
	FlagInputRadio
)

const variantMask = FlagText | FlagElement | FlagComponent | FlagRoot

// Has reports whether f contains every bit in mask.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Variant returns just the variant-selecting bits of f.
func (f Flags) Variant() Flags { return f & variantMask }
