package lessonui

import "errors"

// ErrElementNotFound is returned when an action targets an element id the page does not have.
var ErrElementNotFound = errors.New("lessonui: element not found")

// Surface is the slice of a rendered page the component reads and writes.
// Implementations exist for a parsed HTML document (htmlsurface) and for the
// browser DOM (jsdom).
type Surface interface {
	ElementByID(id string) (Element, bool)
	// FirstWithAttribute returns the first element in document order carrying name.
	FirstWithAttribute(name string) (Element, bool)
}

// Element is a single node on a Surface.
type Element interface {
	Attribute(name string) (string, bool)
	// StyleProperty returns the inline style value, or "" when unset.
	StyleProperty(name string) string
	SetStyleProperty(name, value string)
	// SetText replaces the element's children with plain text.
	SetText(text string)
}

// ContentLoader signals when the page content has finished loading.
type ContentLoader interface {
	OnContentLoaded(fn func())
}

// ContentLoaderFunc adapts a function to ContentLoader.
type ContentLoaderFunc func(fn func())

// OnContentLoaded calls f.
func (f ContentLoaderFunc) OnContentLoaded(fn func()) {
	f(fn)
}
