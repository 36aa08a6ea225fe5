// Package pipeline contains the video processing workflow definition and the
// activity units it orchestrates.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/zyan8808/video-analysis-temporal/internal/generator"
	"github.com/zyan8808/video-analysis-temporal/internal/language"
	"github.com/zyan8808/video-analysis-temporal/internal/models"
	"github.com/zyan8808/video-analysis-temporal/internal/observability/logging"
	"github.com/zyan8808/video-analysis-temporal/internal/observability/metrics"
)

// Summary shape bounds enforced on backend drafts.
const (
	minTakeaways = 3
	maxTakeaways = 5
	minActions   = 2
	maxActions   = 4
)

// Activities bundles the four pipeline activities around one generator
// backend, selected at worker startup. Each method is stateless per call;
// nothing is shared across item IDs beyond the backend itself.
type Activities struct {
	gen     generator.Generator
	metrics *metrics.Metrics
}

// NewActivities creates the activity bundle for a backend.
func NewActivities(gen generator.Generator) *Activities {
	return &Activities{gen: gen, metrics: metrics.DefaultMetrics}
}

// TranslateTranscriptInput carries the arguments of one transcript translation.
type TranslateTranscriptInput struct {
	Transcript     models.Transcript `json:"transcript"`
	TargetLanguage string            `json:"targetLanguage"`
}

// TranslateSummaryInput carries the arguments of one summary translation.
type TranslateSummaryInput struct {
	Summary        models.Summary `json:"summary"`
	TargetLanguage string         `json:"targetLanguage"`
}

// ExtractTranscript looks up the source-language transcript for a work item.
// Unknown items fail with a non-retryable NotFound.
func (a *Activities) ExtractTranscript(ctx context.Context, item models.WorkItem) (*models.Transcript, error) {
	start := time.Now()
	log := logging.WithItem(item.ItemID, item.TargetLanguage)

	text, err := a.gen.Transcript(ctx, item.ItemID)
	a.metrics.RecordActivity("ExtractTranscript", err, time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, generator.ErrUnknownItem) {
			a.metrics.RecordActivityError("ExtractTranscript", ErrTypeNotFound)
			return nil, temporal.NewNonRetryableApplicationError(
				fmt.Sprintf("no transcript source for item %q", item.ItemID), ErrTypeNotFound, err)
		}
		log.Error().Err(err).Msg("Transcript extraction failed")
		return nil, fmt.Errorf("extract transcript: %w", err)
	}

	log.Debug().Int("chars", len(text)).Msg("Transcript extracted")
	return &models.Transcript{
		ItemID:   item.ItemID,
		Language: item.SourceLanguage,
		Text:     text,
		Source:   a.gen.Name(),
	}, nil
}

// SummarizeTranscript drafts a structured summary in the transcript's
// language and validates its shape. Drafts outside the required shape fail
// with a non-retryable MalformedOutput.
func (a *Activities) SummarizeTranscript(ctx context.Context, t models.Transcript) (*models.Summary, error) {
	start := time.Now()
	log := logging.WithItem(t.ItemID, "")

	draft, err := a.gen.Summarize(ctx, t.ItemID, t.Text)
	a.metrics.RecordActivity("SummarizeTranscript", err, time.Since(start).Seconds())
	if err != nil {
		log.Error().Err(err).Msg("Summary generation failed")
		return nil, fmt.Errorf("summarize transcript: %w", err)
	}

	if err := validateDraft(draft); err != nil {
		a.metrics.RecordActivityError("SummarizeTranscript", ErrTypeMalformedOutput)
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("summary draft for item %q: %v", t.ItemID, err), ErrTypeMalformedOutput, err)
	}

	return &models.Summary{
		ItemID:       t.ItemID,
		Language:     t.Language,
		Overview:     draft.Overview,
		KeyTakeaways: draft.KeyTakeaways,
		ActionItems:  draft.ActionItems,
	}, nil
}

// TranslateTranscript renders a transcript into the target language. Targets
// outside the supported set fail with a non-retryable UnsupportedLanguage.
func (a *Activities) TranslateTranscript(ctx context.Context, in TranslateTranscriptInput) (*models.TranslatedTranscript, error) {
	start := time.Now()

	target, err := language.ParseTarget(in.TargetLanguage)
	if err != nil {
		a.metrics.RecordActivityError("TranslateTranscript", ErrTypeUnsupportedLanguage)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeUnsupportedLanguage, err)
	}

	text, err := a.gen.Translate(ctx, generator.Request{
		ItemID: in.Transcript.ItemID,
		Text:   in.Transcript.Text,
		Kind:   generator.KindTranscript,
		Source: language.Language(in.Transcript.Language),
		Target: target,
	})
	a.metrics.RecordActivity("TranslateTranscript", err, time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("translate transcript: %w", err)
	}

	a.metrics.RecordTranslation(target.String())
	return &models.TranslatedTranscript{
		ItemID:         in.Transcript.ItemID,
		Language:       target.String(),
		Text:           text,
		SourceLanguage: in.Transcript.Language,
	}, nil
}

// TranslateSummary renders a summary into the target language as three
// sections with localized headings: overview, key takeaways, action items.
func (a *Activities) TranslateSummary(ctx context.Context, in TranslateSummaryInput) (*models.TranslatedSummary, error) {
	start := time.Now()

	target, err := language.ParseTarget(in.TargetLanguage)
	if err != nil {
		a.metrics.RecordActivityError("TranslateSummary", ErrTypeUnsupportedLanguage)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeUnsupportedLanguage, err)
	}

	h, ok := target.Headings()
	if !ok {
		// ParseTarget guarantees a heading table; this guards the invariant.
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("no heading table for %q", target), ErrTypeUnsupportedLanguage, language.ErrUnsupported)
	}

	bodies := []struct {
		heading string
		text    string
	}{
		{h.Overview, in.Summary.Overview},
		{h.KeyTakeaways, strings.Join(in.Summary.KeyTakeaways, " ")},
		{h.ActionItems, strings.Join(in.Summary.ActionItems, " ")},
	}

	sections := make([]models.SummarySection, 0, len(bodies))
	for _, b := range bodies {
		translated, err := a.gen.Translate(ctx, generator.Request{
			ItemID: in.Summary.ItemID,
			Text:   b.text,
			Kind:   generator.KindSummary,
			Source: language.Language(in.Summary.Language),
			Target: target,
		})
		if err != nil {
			a.metrics.RecordActivity("TranslateSummary", err, time.Since(start).Seconds())
			return nil, fmt.Errorf("translate summary section %q: %w", b.heading, err)
		}
		sections = append(sections, models.SummarySection{Heading: b.heading, Text: translated})
	}

	a.metrics.RecordActivity("TranslateSummary", nil, time.Since(start).Seconds())
	a.metrics.RecordTranslation(target.String())
	return &models.TranslatedSummary{
		ItemID:   in.Summary.ItemID,
		Language: target.String(),
		Sections: sections,
	}, nil
}

// validateDraft checks a backend draft against the required summary shape.
func validateDraft(d generator.Draft) error {
	if strings.TrimSpace(d.Overview) == "" {
		return fmt.Errorf("missing overview")
	}
	if n := len(d.KeyTakeaways); n < minTakeaways || n > maxTakeaways {
		return fmt.Errorf("got %d key takeaways, want %d-%d", n, minTakeaways, maxTakeaways)
	}
	if n := len(d.ActionItems); n < minActions || n > maxActions {
		return fmt.Errorf("got %d action items, want %d-%d", n, minActions, maxActions)
	}
	return nil
}
