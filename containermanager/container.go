package containermanager

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/vnode"
)

// Container is a vnode.ManagedContainer that plays an enter transition when
// a child is inserted and a leave transition before a child is actually
// removed from the DOM, instead of applying either mutation immediately.
// It's grounded on the teacher's animation engine (pkg/animation/engine.go):
// the same per-frame property-interpolation loop, driven here through
// dom.Ticker rather than a direct syscall/js requestAnimationFrame call, so
// it runs against fakedom in tests exactly as it would in a browser.
type Container struct {
	parent dom.Element
	doc    dom.Document
	ticker dom.Ticker

	enter *Transition
	leave *Transition

	runs    map[dom.Node]*run
	playing bool
}

type run struct {
	el         dom.Element
	transition *Transition
	startMs    float64
	onDone     func()
}

// New creates a Container that inserts/removes children of parent, creating
// fresh nodes via doc and driving transitions off ticker's animation frames.
func New(parent dom.Element, doc dom.Document, ticker dom.Ticker) *Container {
	return &Container{parent: parent, doc: doc, ticker: ticker, runs: map[dom.Node]*run{}}
}

// WithEnter sets the transition played when a child is inserted.
func (c *Container) WithEnter(t *Transition) *Container {
	c.enter = t
	return c
}

// WithLeave sets the transition played before a child is removed.
func (c *Container) WithLeave(t *Transition) *Container {
	c.leave = t
	return c
}

// CreateChild instantiates v's subtree and, if an enter transition is
// configured, stamps its element with the transition's progress-zero style
// so there's no flash of the resting state before the first frame runs.
func (c *Container) CreateChild(v *vnode.VNode, ctx vnode.ComponentHost) dom.Node {
	node := vnode.Create(v, ctx, c.doc)
	if el, ok := node.(dom.Element); ok && c.enter != nil {
		applyProgress(el, c.enter, 0)
	}
	return node
}

// InsertChild places child into the real DOM and, if an enter transition is
// configured, starts it.
func (c *Container) InsertChild(child dom.Node, before dom.Node) {
	if before == nil {
		c.parent.AppendChild(child)
	} else {
		c.parent.InsertBefore(child, before)
	}
	if el, ok := child.(dom.Element); ok && c.enter != nil {
		c.start(el, c.enter, nil)
	}
}

// MoveChild repositions an already-present child with no transition — a
// reorder isn't an enter or a leave.
func (c *Container) MoveChild(child dom.Node, before dom.Node) {
	if before == nil {
		c.parent.AppendChild(child)
		return
	}
	c.parent.InsertBefore(child, before)
}

// RemoveChild plays the leave transition (if any) before actually detaching
// child; with no leave transition configured it removes immediately.
func (c *Container) RemoveChild(child dom.Node) {
	el, ok := child.(dom.Element)
	if !ok || c.leave == nil {
		c.parent.RemoveChild(child)
		return
	}
	c.start(el, c.leave, func() { c.parent.RemoveChild(child) })
}

// ReplaceChild swaps oldChild for newChild immediately; incompatible-sync
// replacement isn't itself transitioned, only insertion and removal are.
func (c *Container) ReplaceChild(newChild, oldChild dom.Node) {
	c.parent.ReplaceChild(newChild, oldChild)
}

func (c *Container) start(el dom.Element, t *Transition, onDone func()) {
	r := &run{el: el, transition: t, onDone: onDone}
	c.runs[el] = r
	c.requestFrame(func(now float64) {
		r.startMs = now
		c.step(r, now)
	})
}

func (c *Container) requestFrame(cb func(now float64)) {
	c.playing = true
	c.ticker.RequestFrame(cb)
}

func (c *Container) step(r *run, now float64) {
	elapsed := now - r.startMs
	total := float64(r.transition.Duration.Milliseconds())
	progress := 1.0
	if total > 0 {
		progress = elapsed / total
	}
	if progress > 1 {
		progress = 1
	}
	applyProgress(r.el, r.transition, progress)

	if progress >= 1 {
		delete(c.runs, r.el)
		if r.onDone != nil {
			r.onDone()
		}
		return
	}
	c.ticker.RequestFrame(func(next float64) { c.step(r, next) })
}

func applyProgress(el dom.Element, t *Transition, progress float64) {
	transforms, opacity := t.apply(progress)
	style := el.Style()
	if opacity != nil {
		style.SetProperty("opacity", strconv.FormatFloat(*opacity, 'f', 6, 64))
	}
	if len(transforms) > 0 {
		style.SetProperty("transform", strings.Join(transforms, " "))
	}
}

func formatTransform(fn string, v float64, unit string) string {
	return fmt.Sprintf("%s(%s%s)", fn, strconv.FormatFloat(v, 'f', 4, 64), unit)
}

var _ vnode.ManagedContainer = (*Container)(nil)
