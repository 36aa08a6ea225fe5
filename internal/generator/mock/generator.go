// Package mock provides a deterministic template-based generator backend for
// running the pipeline without model credentials. Every method is a pure
// function of its inputs, so repeated execution under at-least-once task
// delivery yields byte-identical output.
package mock

import (
	"context"
	"fmt"

	"github.com/zyan8808/video-analysis-temporal/internal/generator"
	"github.com/zyan8808/video-analysis-temporal/internal/language"
)

// transcriptTemplates renders a translated transcript per target language.
var transcriptTemplates = map[language.Language]string{
	language.Spanish:    "Transcripción traducida (ES) del video %s: %s",
	language.Japanese:   "ビデオ%sの翻訳済み文字起こし（JA）: %s",
	language.Portuguese: "Transcrição traduzida (PT) do vídeo %s: %s",
}

// summaryTemplates renders a translated summary section body per target language.
var summaryTemplates = map[language.Language]string{
	language.Spanish:    "Texto traducido (ES): %s",
	language.Japanese:   "翻訳済みテキスト（JA）: %s",
	language.Portuguese: "Texto traduzido (PT): %s",
}

// Generator implements generator.Generator with fixed templates and a
// transcript catalog.
type Generator struct {
	catalog map[string]string
}

// New creates a mock generator over the built-in transcript catalog.
func New() *Generator {
	return &Generator{catalog: defaultCatalog}
}

// NewWithCatalog creates a mock generator whose catalog is the built-in one
// overlaid with entries from the YAML file at path.
func NewWithCatalog(path string) (*Generator, error) {
	catalog, err := loadCatalog(path)
	if err != nil {
		return nil, err
	}
	return &Generator{catalog: catalog}, nil
}

// Name identifies the backend.
func (g *Generator) Name() string { return "mock" }

// Transcript looks up the fixed English transcript for an item.
func (g *Generator) Transcript(_ context.Context, itemID string) (string, error) {
	text, ok := g.catalog[itemID]
	if !ok {
		return "", fmt.Errorf("%w: %q", generator.ErrUnknownItem, itemID)
	}
	return text, nil
}

// Summarize derives a fixed-shape summary draft from the transcript. The
// draft always parses: one overview sentence, three takeaways, two actions.
func (g *Generator) Summarize(_ context.Context, itemID, _ string) (generator.Draft, error) {
	return generator.Draft{
		Overview: fmt.Sprintf("The video %s presents product updates and next steps.", itemID),
		KeyTakeaways: []string{
			"Recent progress was highlighted.",
			"The team is aligned on current priorities.",
			"Upcoming milestones were reviewed.",
		},
		ActionItems: []string{
			"Schedule a follow-up review.",
			"Share notes with stakeholders.",
		},
	}, nil
}

// Translate renders text through the fixed per-language template for the
// requested kind.
func (g *Generator) Translate(_ context.Context, req generator.Request) (string, error) {
	templates := summaryTemplates
	if req.Kind == generator.KindTranscript {
		templates = transcriptTemplates
	}

	tmpl, ok := templates[req.Target]
	if !ok {
		return "", fmt.Errorf("%w: %q", language.ErrUnsupported, req.Target)
	}

	if req.Kind == generator.KindTranscript {
		return fmt.Sprintf(tmpl, req.ItemID, req.Text), nil
	}
	return fmt.Sprintf(tmpl, req.Text), nil
}
