package style

import (
	"strings"

	"github.com/vortexkit/vortex/dom"
)

// Sheet owns a single <style> element and keeps its text content in sync
// with whatever styles have been precompiled so far. It is the runtime
// counterpart of the precompilation engine: precompile decides what CSS to
// generate and caches it, Sheet is what actually gets it onto the page.
type Sheet struct {
	el      dom.Element
	text    strings.Builder
	flushed map[string]bool
}

// NewSheet creates a <style> element via doc and appends it under parent
// (typically the document's <head>).
func NewSheet(doc dom.Document, parent dom.Element) *Sheet {
	el := doc.CreateElement("style")
	parent.AppendChild(el)
	return &Sheet{el: el, flushed: map[string]bool{}}
}

// Flush runs precompilation and appends the CSS for every style not yet
// written to this sheet. Safe to call repeatedly (e.g. once per frame,
// from an after-task) — already-flushed styles are skipped.
func (sh *Sheet) Flush() {
	RunPrecompilation()
	dirty := false
	for _, s := range globalPrecompiler.styles {
		cn := s.GetClassName()
		if sh.flushed[cn] {
			continue
		}
		sh.flushed[cn] = true
		sh.text.WriteString(s.ToCSS())
		dirty = true
	}
	if dirty {
		sh.el.SetTextContent(sh.text.String())
	}
}

// Element returns the underlying <style> element.
func (sh *Sheet) Element() dom.Element { return sh.el }
