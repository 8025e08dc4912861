package containermanager

import "time"

// PropertyStep animates a single numeric style property from From to To
// over the owning Transition's Duration, formatting the interpolated value
// with Unit appended (e.g. "px", "deg", or "" for unitless properties like
// opacity).
type PropertyStep struct {
	Property string
	From, To float64
	Unit     string
}

// Transition describes a set of style properties to animate in lockstep,
// built fluently the way the teacher's AnimationBuilder composed a single
// animation from chained calls.
type Transition struct {
	Duration time.Duration
	Easing   EasingFunc
	Steps    []PropertyStep
}

// NewTransition starts a transition of the given duration, eased linearly
// until WithEasing overrides it.
func NewTransition(duration time.Duration) *Transition {
	return &Transition{Duration: duration, Easing: Linear}
}

// WithEasing sets the easing function applied to progress before it's used
// to interpolate every property step.
func (t *Transition) WithEasing(fn EasingFunc) *Transition {
	t.Easing = fn
	return t
}

// Animate adds a property step running from `from` to `to`, formatted with
// unit.
func (t *Transition) Animate(property string, from, to float64, unit string) *Transition {
	t.Steps = append(t.Steps, PropertyStep{Property: property, From: from, To: to, Unit: unit})
	return t
}

// FadeIn is a shorthand for the common opacity-0-to-1 enter case.
func (t *Transition) FadeIn() *Transition { return t.Animate("opacity", 0, 1, "") }

// FadeOut is a shorthand for the common opacity-1-to-0 leave case.
func (t *Transition) FadeOut() *Transition { return t.Animate("opacity", 1, 0, "") }

// SlideUp animates a translateY from distance px to 0.
func (t *Transition) SlideUp(distance float64) *Transition {
	return t.Animate("translateY", distance, 0, "px")
}

// apply computes every step's interpolated, eased value at progress p (in
// [0, 1]) and returns the transform/opacity declarations to set.
func (t *Transition) apply(p float64) (transforms []string, opacity (*float64)) {
	eased := t.Easing(p)
	for _, s := range t.Steps {
		v := s.From + (s.To-s.From)*eased
		switch s.Property {
		case "opacity":
			ov := v
			opacity = &ov
		case "translateY":
			transforms = append(transforms, formatTransform("translateY", v, s.Unit))
		case "translateX":
			transforms = append(transforms, formatTransform("translateX", v, s.Unit))
		case "scale":
			transforms = append(transforms, formatTransform("scale", v, s.Unit))
		case "rotate":
			transforms = append(transforms, formatTransform("rotate", v, s.Unit))
		}
	}
	return transforms, opacity
}
