package htmlsurface

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-lessonui/components/lessonui"
)

// Document is a headless lessonui.Surface over a parsed HTML page.
type Document struct {
	doc *goquery.Document

	mu        sync.Mutex
	loaded    bool
	callbacks []func()
}

var (
	_ lessonui.Surface       = (*Document)(nil)
	_ lessonui.ContentLoader = (*Document)(nil)
)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("htmlsurface: parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Open parses the HTML file at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("htmlsurface: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// ElementByID returns the first element whose id attribute equals id.
func (d *Document) ElementByID(id string) (lessonui.Element, bool) {
	sel := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}

// FirstWithAttribute returns the first element in document order carrying name.
func (d *Document) FirstWithAttribute(name string) (lessonui.Element, bool) {
	sel := d.doc.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, ok := s.Attr(name)
		return ok
	}).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}

// OnContentLoaded queues fn until FinishLoading. Registrations made after loading
// has finished never fire, matching a browser's DOMContentLoaded.
func (d *Document) OnContentLoaded(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		return
	}
	d.callbacks = append(d.callbacks, fn)
}

// FinishLoading fires the queued content-loaded callbacks. Only the first call has any effect.
func (d *Document) FinishLoading() {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		return
	}
	d.loaded = true
	callbacks := d.callbacks
	d.callbacks = nil
	d.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// HTML renders the document including any mutations.
func (d *Document) HTML() (string, error) {
	html, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return "", fmt.Errorf("htmlsurface: render document: %w", err)
	}
	return html, nil
}
