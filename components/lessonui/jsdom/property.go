// Package jsdom binds the lesson page component to the browser DOM through syscall/js.
package jsdom

import (
	"strings"

	"github.com/ettle/strcase"
)

// styleKey maps a CSS property name to its CSSStyleDeclaration key
// ("background-color" -> "backgroundColor"). Custom properties are left untouched.
func styleKey(property string) string {
	property = strings.TrimSpace(property)
	if strings.HasPrefix(property, "--") {
		return property
	}
	return strcase.ToCamel(strings.ToLower(property))
}
