package htmlsurface

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element wraps a single goquery selection.
type Element struct {
	sel *goquery.Selection
}

// Attribute returns the attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	return e.sel.Attr(name)
}

// StyleProperty reads a declaration from the inline style attribute. Keyword values
// come back lowercased and without their !important priority, as element.style reports them.
func (e *Element) StyleProperty(name string) string {
	style, _ := e.sel.Attr("style")
	for _, decl := range parseStyle(style) {
		if decl.name == strings.ToLower(name) {
			return decl.value
		}
	}
	return ""
}

// SetStyleProperty rewrites one declaration of the inline style attribute, keeping
// the others in place. Like assigning element.style[name], it drops any !important
// priority on that declaration.
func (e *Element) SetStyleProperty(name, value string) {
	name = strings.ToLower(name)
	style, _ := e.sel.Attr("style")
	decls := parseStyle(style)
	replaced := false
	for i := range decls {
		if decls[i].name == name {
			decls[i].value = value
			decls[i].important = false
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, declaration{name: name, value: value})
	}
	e.sel.SetAttr("style", formatStyle(decls))
}

// SetText replaces the children with a text node.
func (e *Element) SetText(text string) {
	e.sel.SetText(text)
}

// Text returns the combined text content.
func (e *Element) Text() string {
	return e.sel.Text()
}

type declaration struct {
	name      string
	value     string
	important bool
}

const importantSuffix = "!important"

func parseStyle(style string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		value = strings.TrimSpace(value)
		important := false
		if n := len(value) - len(importantSuffix); n >= 0 && strings.EqualFold(value[n:], importantSuffix) {
			value = strings.TrimSpace(value[:n])
			important = true
		}
		decls = append(decls, declaration{name: name, value: normalizeValue(value), important: important})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		if decl.value == "" {
			continue
		}
		part := decl.name + ": " + decl.value
		if decl.important {
			part += " " + importantSuffix
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// normalizeValue lowercases keyword values. Quoted strings and functional notations
// such as url(...) keep their case.
func normalizeValue(value string) string {
	if strings.ContainsAny(value, "\"'(") {
		return value
	}
	return strings.ToLower(value)
}
