package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// yamlLoader resolves flag values from a YAML mapping keyed by flag name. Keys may use
// dashes or underscores (log-level, log_level). Nested mappings are looked up by
// command name first, so
//
//	endpoint: https://lessons.example.com
//	quiz:
//	  lesson: "12"
//
// applies lesson only to the quiz command.
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("lessonctl: parse config: %w", err)
	}
	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if scoped, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookupFlag(scoped, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookupFlag(values, flag.Name); ok {
			if _, nested := v.(map[string]any); nested {
				return nil, nil
			}
			return v, nil
		}
		return nil, nil
	}), nil
}

func lookupFlag(values map[string]any, name string) (any, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if v, ok := values[key]; ok {
			return v, true
		}
	}
	return nil, false
}
