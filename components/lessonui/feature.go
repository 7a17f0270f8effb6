package lessonui

import "slices"

// Element ids the feature card writes to.
const (
	FeatureTitleID       = "feature-title"
	FeatureDescriptionID = "feature-description"
	FeatureDetailsID     = "feature-details"
)

// FeatureEntry is one card in the feature catalog.
type FeatureEntry struct {
	Key         string `json:"key" yaml:"key"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

var featureCatalog = map[string]FeatureEntry{
	"languages": {
		Key:         "languages",
		Title:       "🌎 Global Languages",
		Description: "From Spanish to Korean, explore 120+ lessons built by experts.",
	},
	"experience": {
		Key:         "experience",
		Title:       "🎧 Immersive Experience",
		Description: "Listen, speak, and practice with interactive quizzes and exercises.",
	},
	"progress": {
		Key:         "progress",
		Title:       "📈 Personalized Progress",
		Description: "Track your learning journey and reach your fluency goals faster.",
	},
}

// LookupFeature returns the catalog entry for key.
func LookupFeature(key string) (FeatureEntry, bool) {
	entry, ok := featureCatalog[key]
	return entry, ok
}

// FeatureKeys lists the catalog keys in sorted order.
func FeatureKeys() []string {
	keys := make([]string, 0, len(featureCatalog))
	for key := range featureCatalog {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// FeatureCardPresenter fills the feature card slots from the catalog.
type FeatureCardPresenter struct {
	surface Surface
}

// NewFeatureCardPresenter wires the presenter to a page surface.
func NewFeatureCardPresenter(surface Surface) *FeatureCardPresenter {
	return &FeatureCardPresenter{surface: surface}
}

// Show writes the entry for key into the card and reveals it. Unknown keys and pages
// missing any of the three slots are left untouched; the return value reports whether
// the card was updated.
func (p *FeatureCardPresenter) Show(key string) bool {
	entry, ok := LookupFeature(key)
	if !ok {
		return false
	}
	title, okTitle := p.surface.ElementByID(FeatureTitleID)
	desc, okDesc := p.surface.ElementByID(FeatureDescriptionID)
	container, okContainer := p.surface.ElementByID(FeatureDetailsID)
	if !okTitle || !okDesc || !okContainer {
		return false
	}
	title.SetText(entry.Title)
	desc.SetText(entry.Description)
	container.SetStyleProperty(displayProperty, displayBlock)
	return true
}
