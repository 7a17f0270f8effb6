package queries

import (
	"context"
	"errors"
	"testing"
)

func TestFeatureQueryListsCatalog(t *testing.T) {
	query := NewFeatureQuery()
	entries, err := query.Query(context.Background(), FeatureLookupInput{})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"experience", "languages", "progress"}
	for i, entry := range entries {
		if entry.Key != want[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, want[i], entry.Key)
		}
	}
}

func TestFeatureQuerySingleKey(t *testing.T) {
	query := NewFeatureQuery()
	entries, err := query.Query(context.Background(), FeatureLookupInput{Key: "progress"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "📈 Personalized Progress" {
		t.Fatalf("unexpected entries: %#v", entries)
	}
}

func TestFeatureQueryUnknownKey(t *testing.T) {
	query := NewFeatureQuery()
	_, err := query.Query(context.Background(), FeatureLookupInput{Key: "pricing"})
	if !errors.Is(err, ErrUnknownFeature) {
		t.Fatalf("expected ErrUnknownFeature, got %v", err)
	}
}
