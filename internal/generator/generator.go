// Package generator defines the interface for content generation backends
// (mock, Gemini, etc.) that the pipeline activities delegate to.
package generator

import (
	"context"
	"errors"

	"github.com/zyan8808/video-analysis-temporal/internal/language"
)

// ErrUnknownItem is returned by Transcript when the item ID is not known to
// the backing lookup.
var ErrUnknownItem = errors.New("unknown item")

// TextKind tells a backend what kind of text it is translating. Backends may
// use different templates or prompts per kind.
type TextKind string

const (
	KindTranscript TextKind = "transcript"
	KindSummary    TextKind = "summary"
)

// Draft is a backend's raw summary output before the activity layer validates
// its shape. Ordering of KeyTakeaways and ActionItems is preserved as produced.
type Draft struct {
	Overview     string
	KeyTakeaways []string
	ActionItems  []string
}

// Request describes one translation call.
type Request struct {
	ItemID string
	Text   string
	Kind   TextKind
	Source language.Language
	Target language.Language
}

// Generator is the capability interface every content backend implements.
// Implementations must be safe for concurrent use and deterministic enough
// that repeating a call after a lost completion report is harmless.
type Generator interface {
	// Transcript returns the source-language transcript text for an item,
	// or ErrUnknownItem.
	Transcript(ctx context.Context, itemID string) (string, error)

	// Summarize drafts an overview, key takeaways, and action items for a
	// transcript, in the transcript's language.
	Summarize(ctx context.Context, itemID, transcriptText string) (Draft, error)

	// Translate renders a piece of text into the target language.
	Translate(ctx context.Context, req Request) (string, error)

	// Name identifies the backend for provenance tags.
	Name() string
}
