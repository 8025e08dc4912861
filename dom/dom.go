// Package dom defines the narrow DOM capability the reconciler programs
// against. Nothing outside this package (and its two backends, fakedom and
// the js,wasm build) is allowed to know whether a Node is a real browser
// element or a test double.
package dom

// Kind tags the concrete shape of a Node.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindComment
)

// Node is the common surface every DOM node shape implements.
type Node interface {
	Kind() Kind
	ParentNode() Node
	NextSibling() Node
	FirstChild() Node
	AppendChild(child Node)
	InsertBefore(child, before Node)
	RemoveChild(child Node)
	ReplaceChild(newChild, oldChild Node)
	Remove()
}

// Style is the inline style declaration of an Element.
type Style interface {
	SetProperty(name, value string)
	RemoveProperty(name string)
	SetCSSText(text string)
	CSSText() string
}

// ClassList is the token list backing an Element's class attribute.
type ClassList interface {
	Add(class string)
	Remove(class string)
	Contains(class string) bool
	String() string
}

// Event is the subset of a DOM event the core's delegated-handler hook needs.
type Event interface {
	Type() string
	Target() Node
	PreventDefault()
	StopPropagation()
}

// Element is a DOM element node: it carries attributes, properties, style,
// classes, children and event listeners.
type Element interface {
	Node
	Tag() string
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	GetAttribute(name string) (string, bool)
	SetAttributeNS(ns, name, value string)
	RemoveAttributeNS(ns, name string)
	SetProperty(name string, value any)
	GetProperty(name string) (any, bool)
	Style() Style
	ClassList() ClassList
	SetTextContent(text string)
	AddEventListener(event string, handler func(Event)) (remove func())
	InnerHTML() string
}

// Text is a DOM text node.
type Text interface {
	Node
	Data() string
	SetData(data string)
}

// Comment is a DOM comment node, used as a separator between adjacent text
// nodes in pre-rendered markup (see the mount protocol in vnode).
type Comment interface {
	Node
	Data() string
}

// Document creates new, unattached nodes. It is the only capability the
// reconciler needs to construct fresh DOM.
type Document interface {
	CreateElement(tag string) Element
	CreateElementNS(ns, tag string) Element
	CreateTextNode(text string) Text
	CreateComment(text string) Comment
	// GetElementByID looks up an element already present in the document,
	// e.g. the mount point a host page ships with. ok is false if nothing
	// with that id exists.
	GetElementByID(id string) (el Element, ok bool)
}

// Namespace URIs for the two non-HTML namespaces the reconciler recognizes
// (see the attribute namespace sentinel table, spec §6).
const (
	NSSVG   = "http://www.w3.org/2000/svg"
	NSXLink = "http://www.w3.org/1999/xlink"
	NSXML   = "http://www.w3.org/XML/1998/namespace"
)
