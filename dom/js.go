//go:build js && wasm

package dom

import "syscall/js"

// jsDocument is the real Document backed by the browser's global document.
type jsDocument struct {
	doc js.Value
}

// RealDocument returns a Document backed by the host browser's document.
func RealDocument() Document {
	return jsDocument{doc: js.Global().Get("document")}
}

func (d jsDocument) CreateElement(tag string) Element {
	return &jsElement{v: d.doc.Call("createElement", tag)}
}

func (d jsDocument) CreateElementNS(ns, tag string) Element {
	return &jsElement{v: d.doc.Call("createElementNS", ns, tag)}
}

func (d jsDocument) CreateTextNode(text string) Text {
	return &jsText{v: d.doc.Call("createTextNode", text)}
}

func (d jsDocument) CreateComment(text string) Comment {
	return &jsComment{v: d.doc.Call("createComment", text)}
}

// GetElementByID looks up an existing element already present in the page
// markup (typically the mount point an index.html ships with), returning
// false if no element with that id exists.
func (d jsDocument) GetElementByID(id string) (Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &jsElement{v: v}, true
}

// jsNode is embedded by every concrete wrapper and implements the Node
// methods shared by elements, text and comments.
type jsNode struct{ v js.Value }

func wrapNode(v js.Value) Node {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	switch v.Get("nodeType").Int() {
	case 1:
		return &jsElement{v: v}
	case 3:
		return &jsText{v: v}
	case 8:
		return &jsComment{v: v}
	default:
		return &jsElement{v: v}
	}
}

func (n jsNode) ParentNode() Node  { return wrapNode(n.v.Get("parentNode")) }
func (n jsNode) NextSibling() Node { return wrapNode(n.v.Get("nextSibling")) }
func (n jsNode) FirstChild() Node  { return wrapNode(n.v.Get("firstChild")) }

func (n jsNode) AppendChild(child Node) {
	n.v.Call("appendChild", unwrap(child))
}

func (n jsNode) InsertBefore(child, before Node) {
	if before == nil {
		n.v.Call("appendChild", unwrap(child))
		return
	}
	n.v.Call("insertBefore", unwrap(child), unwrap(before))
}

func (n jsNode) RemoveChild(child Node) {
	n.v.Call("removeChild", unwrap(child))
}

func (n jsNode) ReplaceChild(newChild, oldChild Node) {
	n.v.Call("replaceChild", unwrap(newChild), unwrap(oldChild))
}

func (n jsNode) Remove() {
	parent := n.v.Get("parentNode")
	if parent.Truthy() {
		parent.Call("removeChild", n.v)
	}
}

func unwrap(n Node) js.Value {
	switch t := n.(type) {
	case *jsElement:
		return t.v
	case *jsText:
		return t.v
	case *jsComment:
		return t.v
	default:
		return js.Null()
	}
}

type jsElement struct{ jsNode }

func (e *jsElement) Kind() Kind  { return KindElement }
func (e *jsElement) Tag() string { return e.v.Get("tagName").String() }

func (e *jsElement) SetAttribute(name, value string)   { e.v.Call("setAttribute", name, value) }
func (e *jsElement) RemoveAttribute(name string)        { e.v.Call("removeAttribute", name) }
func (e *jsElement) SetAttributeNS(ns, name, value string) {
	e.v.Call("setAttributeNS", ns, name, value)
}
func (e *jsElement) RemoveAttributeNS(ns, name string) { e.v.Call("removeAttributeNS", ns, name) }

func (e *jsElement) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (e *jsElement) SetProperty(name string, value any) { e.v.Set(name, value) }

func (e *jsElement) GetProperty(name string) (any, bool) {
	v := e.v.Get(name)
	if v.IsUndefined() {
		return nil, false
	}
	return v, true
}

func (e *jsElement) Style() Style         { return jsStyle{v: e.v.Get("style")} }
func (e *jsElement) ClassList() ClassList { return jsClassList{v: e.v.Get("classList"), el: e.v} }

func (e *jsElement) SetTextContent(text string) { e.v.Set("textContent", text) }

func (e *jsElement) AddEventListener(event string, handler func(Event)) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(jsEvent{v: args[0]})
		}
		return nil
	})
	e.v.Call("addEventListener", event, fn)
	return func() {
		e.v.Call("removeEventListener", event, fn)
		fn.Release()
	}
}

func (e *jsElement) InnerHTML() string { return e.v.Get("innerHTML").String() }

type jsText struct{ jsNode }

func (t *jsText) Kind() Kind       { return KindText }
func (t *jsText) Data() string     { return t.v.Get("data").String() }
func (t *jsText) SetData(d string) { t.v.Set("data", d) }

type jsComment struct{ jsNode }

func (c *jsComment) Kind() Kind   { return KindComment }
func (c *jsComment) Data() string { return c.v.Get("data").String() }

type jsStyle struct{ v js.Value }

func (s jsStyle) SetProperty(name, value string) { s.v.Call("setProperty", name, value) }
func (s jsStyle) RemoveProperty(name string)      { s.v.Call("removeProperty", name) }
func (s jsStyle) SetCSSText(text string)          { s.v.Set("cssText", text) }
func (s jsStyle) CSSText() string                 { return s.v.Get("cssText").String() }

type jsClassList struct {
	v  js.Value
	el js.Value
}

func (c jsClassList) Add(class string)    { c.v.Call("add", class) }
func (c jsClassList) Remove(class string) { c.v.Call("remove", class) }
func (c jsClassList) Contains(class string) bool {
	return c.v.Call("contains", class).Bool()
}
func (c jsClassList) String() string { return c.el.Get("className").String() }

type jsEvent struct{ v js.Value }

func (e jsEvent) Type() string          { return e.v.Get("type").String() }
func (e jsEvent) Target() Node          { return wrapNode(e.v.Get("target")) }
func (e jsEvent) PreventDefault()       { e.v.Call("preventDefault") }
func (e jsEvent) StopPropagation()      { e.v.Call("stopPropagation") }
