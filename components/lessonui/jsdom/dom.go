//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

// Document is a lessonui.Surface over the page's global document.
type Document struct {
	doc js.Value
}

var (
	_ lessonui.Surface       = Document{}
	_ lessonui.ContentLoader = Document{}
)

// Global returns the surface for window.document.
func Global() Document {
	return Document{doc: js.Global().Get("document")}
}

// ElementByID wraps document.getElementById.
func (d Document) ElementByID(id string) (lessonui.Element, bool) {
	return wrap(d.doc.Call("getElementById", id))
}

// FirstWithAttribute wraps document.querySelector('[name]').
func (d Document) FirstWithAttribute(name string) (lessonui.Element, bool) {
	return wrap(d.doc.Call("querySelector", "["+name+"]"))
}

// OnContentLoaded registers fn for DOMContentLoaded. When the document has already
// finished parsing the listener would never fire, so fn runs on the next tick instead.
func (d Document) OnContentLoaded(fn func()) {
	var listener js.Func
	listener = js.FuncOf(func(js.Value, []js.Value) any {
		listener.Release()
		fn()
		return nil
	})
	if d.doc.Get("readyState").String() == "loading" {
		d.doc.Call("addEventListener", "DOMContentLoaded", listener, map[string]any{"once": true})
		return
	}
	js.Global().Call("setTimeout", listener, 0)
}

// Element wraps a DOM element.
type Element struct {
	el js.Value
}

func wrap(v js.Value) (lessonui.Element, bool) {
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return Element{el: v}, true
}

// Attribute wraps getAttribute.
func (e Element) Attribute(name string) (string, bool) {
	v := e.el.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// StyleProperty reads element.style[key].
func (e Element) StyleProperty(name string) string {
	v := e.el.Get("style").Get(styleKey(name))
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

// SetStyleProperty writes element.style[key].
func (e Element) SetStyleProperty(name, value string) {
	e.el.Get("style").Set(styleKey(name), value)
}

// SetText writes innerText.
func (e Element) SetText(text string) {
	e.el.Set("innerText", text)
}
