package queries

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-lessonui/components/lessonui"
)

// ErrUnknownFeature is returned for keys outside the catalog.
var ErrUnknownFeature = errors.New("queries: unknown feature")

// FeatureLookupInput selects catalog entries. An empty Key lists the whole catalog.
type FeatureLookupInput struct {
	Key string
}

// FeatureQuery reads the feature catalog.
type FeatureQuery struct{}

// NewFeatureQuery builds the query.
func NewFeatureQuery() *FeatureQuery {
	return &FeatureQuery{}
}

var _ gocommand.Querier[FeatureLookupInput, []lessonui.FeatureEntry] = (*FeatureQuery)(nil)

// Query returns the entry for input.Key, or every entry in key order when Key is empty.
func (q *FeatureQuery) Query(_ context.Context, input FeatureLookupInput) ([]lessonui.FeatureEntry, error) {
	if input.Key != "" {
		entry, ok := lessonui.LookupFeature(input.Key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, input.Key)
		}
		return []lessonui.FeatureEntry{entry}, nil
	}
	keys := lessonui.FeatureKeys()
	entries := make([]lessonui.FeatureEntry, 0, len(keys))
	for _, key := range keys {
		entry, _ := lessonui.LookupFeature(key)
		entries = append(entries, entry)
	}
	return entries, nil
}
