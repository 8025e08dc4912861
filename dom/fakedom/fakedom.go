// Package fakedom is a pure-Go implementation of the dom capability
// interfaces. It backs every reconciler test (spec §8's invariants are all
// checked by comparing fakedom.Element.InnerHTML output) and is the default
// Document on any host that isn't a js/wasm build.
package fakedom

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/vortexkit/vortex/dom"
)

// Document is a pure-Go dom.Document.
type Document struct{}

// NewDocument returns a fresh fake document. Every node it creates is
// detached until explicitly appended somewhere.
func NewDocument() *Document { return &Document{} }

func (Document) CreateElement(tag string) dom.Element {
	e := &Element{tag: tag, attrs: map[string]string{}, props: map[string]any{}, style: &StyleDecl{}}
	e.self = e
	return e
}

func (Document) CreateElementNS(ns, tag string) dom.Element {
	e := &Element{tag: tag, ns: ns, attrs: map[string]string{}, props: map[string]any{}, style: &StyleDecl{}}
	e.self = e
	return e
}

func (Document) CreateTextNode(text string) dom.Text {
	t := &TextNode{data: text}
	t.self = t
	return t
}

func (Document) CreateComment(text string) dom.Comment {
	c := &CommentNode{data: text}
	c.self = c
	return c
}

// GetElementByID always misses: fakedom has no page markup of its own, so
// tests build containers directly via CreateElement instead of looking
// them up by id.
func (Document) GetElementByID(id string) (dom.Element, bool) { return nil, false }

// node is embedded by every concrete fake node and implements the shared
// parent/sibling/child bookkeeping.
type node struct {
	parent   *Element
	children []dom.Node
	self     dom.Node
}

func (n *node) ParentNode() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) NextSibling() dom.Node {
	if n.parent == nil {
		return nil
	}
	sibs := n.parent.children
	for i, c := range sibs {
		if c == n.self {
			if i+1 < len(sibs) {
				return sibs[i+1]
			}
			return nil
		}
	}
	return nil
}

func (n *node) FirstChild() dom.Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func setParent(child dom.Node, p *Element) {
	switch c := child.(type) {
	case *Element:
		c.parent = p
	case *TextNode:
		c.parent = p
	case *CommentNode:
		c.parent = p
	}
}

func (n *node) AppendChild(child dom.Node) {
	n.detachFromCurrentParent(child)
	n.children = append(n.children, child)
	setParent(child, n.self.(*Element))
}

func (n *node) InsertBefore(child, before dom.Node) {
	n.detachFromCurrentParent(child)
	if before == nil {
		n.children = append(n.children, child)
		setParent(child, n.self.(*Element))
		return
	}
	idx := n.indexOf(before)
	if idx < 0 {
		n.children = append(n.children, child)
	} else {
		n.children = append(n.children[:idx], append([]dom.Node{child}, n.children[idx:]...)...)
	}
	setParent(child, n.self.(*Element))
}

func (n *node) RemoveChild(child dom.Node) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	setParent(child, nil)
}

func (n *node) ReplaceChild(newChild, oldChild dom.Node) {
	idx := n.indexOf(oldChild)
	if idx < 0 {
		n.AppendChild(newChild)
		return
	}
	n.detachFromCurrentParent(newChild)
	idx = n.indexOf(oldChild)
	setParent(oldChild, nil)
	n.children[idx] = newChild
	setParent(newChild, n.self.(*Element))
}

func (n *node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n.self)
	}
}

func (n *node) indexOf(target dom.Node) int {
	for i, c := range n.children {
		if c == target {
			return i
		}
	}
	return -1
}

func (n *node) detachFromCurrentParent(child dom.Node) {
	var cur *Element
	switch c := child.(type) {
	case *Element:
		cur = c.parent
	case *TextNode:
		cur = c.parent
	case *CommentNode:
		cur = c.parent
	}
	if cur != nil {
		cur.RemoveChild(child)
	}
}

// Element is a fake DOM element.
type Element struct {
	node
	tag       string
	ns        string
	attrs     map[string]string
	attrOrder []string
	props     map[string]any
	style     *StyleDecl
	classList *ClassListDecl
	text      string
	listeners map[string][]func(dom.Event)
}

func (e *Element) Kind() dom.Kind { return dom.KindElement }
func (e *Element) Tag() string    { return e.tag }

func (e *Element) SetAttribute(name, value string) {
	if _, exists := e.attrs[name]; !exists {
		e.attrOrder = append(e.attrOrder, name)
	}
	e.attrs[name] = value
}

func (e *Element) RemoveAttribute(name string) {
	if _, exists := e.attrs[name]; !exists {
		return
	}
	delete(e.attrs, name)
	for i, n := range e.attrOrder {
		if n == name {
			e.attrOrder = append(e.attrOrder[:i], e.attrOrder[i+1:]...)
			break
		}
	}
}

func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttributeNS(ns, name, value string) { e.SetAttribute(name, value) }
func (e *Element) RemoveAttributeNS(ns, name string)     { e.RemoveAttribute(name) }

func (e *Element) SetProperty(name string, value any) { e.props[name] = value }

func (e *Element) GetProperty(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

func (e *Element) Style() dom.Style {
	if e.style == nil {
		e.style = &StyleDecl{}
	}
	return e.style
}

func (e *Element) ClassList() dom.ClassList {
	if e.classList == nil {
		e.classList = &ClassListDecl{}
	}
	return e.classList
}

func (e *Element) SetTextContent(text string) {
	e.children = nil
	e.text = text
}

func (e *Element) AddEventListener(event string, handler func(dom.Event)) func() {
	if e.listeners == nil {
		e.listeners = map[string][]func(dom.Event){}
	}
	e.listeners[event] = append(e.listeners[event], handler)
	idx := len(e.listeners[event]) - 1
	return func() {
		lst := e.listeners[event]
		e.listeners[event] = append(lst[:idx], lst[idx+1:]...)
	}
}

// Dispatch synchronously invokes every listener registered for event,
// wrapping it as a dom.Event. Test helper only.
func (e *Element) Dispatch(event string, evt dom.Event) {
	for _, h := range e.listeners[event] {
		h(evt)
	}
}

// InnerHTML renders the element's children as an HTML string, used to check
// the reconciler's "identical to a fresh render" invariant (spec §8.1).
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, c := range e.children {
		writeNode(&b, c)
	}
	if e.text != "" {
		b.WriteString(html.EscapeString(e.text))
	}
	return b.String()
}

// OuterHTML renders the element itself, attributes included.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	writeNode(&b, e)
	return b.String()
}

func writeNode(b *strings.Builder, n dom.Node) {
	switch t := n.(type) {
	case *Element:
		fmt.Fprintf(b, "<%s", t.tag)
		if cl := t.classList; cl != nil && cl.String() != "" {
			if _, has := t.attrs["class"]; !has {
				fmt.Fprintf(b, ` class="%s"`, html.EscapeString(cl.String()))
			}
		}
		names := append([]string(nil), t.attrOrder...)
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(b, ` %s="%s"`, name, html.EscapeString(t.attrs[name]))
		}
		if t.style != nil && t.style.CSSText() != "" {
			fmt.Fprintf(b, ` style="%s"`, html.EscapeString(t.style.CSSText()))
		}
		b.WriteString(">")
		b.WriteString(t.InnerHTML())
		fmt.Fprintf(b, "</%s>", t.tag)
	case *TextNode:
		b.WriteString(html.EscapeString(t.data))
	case *CommentNode:
		fmt.Fprintf(b, "<!--%s-->", t.data)
	}
}

// TextNode is a fake DOM text node.
type TextNode struct {
	node
	data string
}

func (t *TextNode) Kind() dom.Kind   { return dom.KindText }
func (t *TextNode) Data() string     { return t.data }
func (t *TextNode) SetData(d string) { t.data = d }

// CommentNode is a fake DOM comment node.
type CommentNode struct {
	node
	data string
}

func (c *CommentNode) Kind() dom.Kind { return dom.KindComment }
func (c *CommentNode) Data() string   { return c.data }

// StyleDecl is a fake inline style declaration preserving insertion order.
type StyleDecl struct {
	order []string
	props map[string]string
	text  string
}

func (s *StyleDecl) SetProperty(name, value string) {
	if s.props == nil {
		s.props = map[string]string{}
	}
	if _, exists := s.props[name]; !exists {
		s.order = append(s.order, name)
	}
	s.props[name] = value
	s.text = ""
}

func (s *StyleDecl) RemoveProperty(name string) {
	if _, exists := s.props[name]; !exists {
		return
	}
	delete(s.props, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.text = ""
}

func (s *StyleDecl) SetCSSText(text string) {
	s.text = text
	s.props = nil
	s.order = nil
}

func (s *StyleDecl) CSSText() string {
	if s.text != "" {
		return s.text
	}
	var b strings.Builder
	for _, name := range s.order {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s: %s;", name, s.props[name])
	}
	return b.String()
}

// ClassListDecl is a fake classList token set preserving insertion order.
type ClassListDecl struct {
	order []string
	set   map[string]bool
}

func (c *ClassListDecl) Add(class string) {
	if c.set == nil {
		c.set = map[string]bool{}
	}
	if !c.set[class] {
		c.set[class] = true
		c.order = append(c.order, class)
	}
}

func (c *ClassListDecl) Remove(class string) {
	if !c.set[class] {
		return
	}
	delete(c.set, class)
	for i, n := range c.order {
		if n == class {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *ClassListDecl) Contains(class string) bool { return c.set[class] }

func (c *ClassListDecl) String() string { return strings.Join(c.order, " ") }

// fakeEvent is a minimal dom.Event double for dispatching synthetic events
// in tests.
type fakeEvent struct {
	typ           string
	target        dom.Node
	prevented     bool
	stopped       bool
}

// NewEvent builds a dom.Event double for tests to dispatch through
// Element.Dispatch.
func NewEvent(typ string, target dom.Node) dom.Event {
	return &fakeEvent{typ: typ, target: target}
}

func (e *fakeEvent) Type() string     { return e.typ }
func (e *fakeEvent) Target() dom.Node { return e.target }
func (e *fakeEvent) PreventDefault()  { e.prevented = true }
func (e *fakeEvent) StopPropagation() { e.stopped = true }
