// Package gemini provides a Gemini-backed generator for summary drafting and
// translation. Extraction stays a catalog lookup (speech-to-text is outside
// this service); only summarization and translation go through the model.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/zyan8808/video-analysis-temporal/internal/generator"
)

const summaryPrompt = `Summarize the following transcript in its own language.
Respond with plain text lines in exactly this format, nothing else:

OVERVIEW: <one sentence>
TAKEAWAY: <key takeaway>           (between 3 and 5 TAKEAWAY lines)
ACTION: <action item>              (between 2 and 4 ACTION lines)

Transcript:
---
%s
---`

const translatePrompt = `Translate the following %s text from %s to %s.
Respond with the translated text only, no preamble.

---
%s
---`

// Generator implements generator.Generator using the Gemini API.
type Generator struct {
	client     *genai.Client
	model      string
	transcript TranscriptLookup
}

// TranscriptLookup resolves item IDs to source transcripts. The mock
// generator's catalog satisfies this.
type TranscriptLookup interface {
	Transcript(ctx context.Context, itemID string) (string, error)
}

// New creates a Gemini generator.
// Requires a Gemini API key; model defaults to gemini-2.5-flash when empty.
func New(ctx context.Context, apiKey, model string, transcripts TranscriptLookup) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Generator{client: client, model: model, transcript: transcripts}, nil
}

// Name identifies the backend.
func (g *Generator) Name() string { return "gemini" }

// Transcript delegates to the catalog lookup.
func (g *Generator) Transcript(ctx context.Context, itemID string) (string, error) {
	return g.transcript.Transcript(ctx, itemID)
}

// Summarize asks the model for a structured draft and parses it. A response
// that does not follow the line format comes back as a partially filled (or
// empty) draft; shape validation is the activity layer's job.
func (g *Generator) Summarize(ctx context.Context, _, transcriptText string) (generator.Draft, error) {
	text, err := g.generate(ctx, fmt.Sprintf(summaryPrompt, transcriptText))
	if err != nil {
		return generator.Draft{}, err
	}
	return parseDraft(text), nil
}

// Translate asks the model to render text into the target language.
func (g *Generator) Translate(ctx context.Context, req generator.Request) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, req.Kind, req.Source, req.Target, req.Text)
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate runs one completion and concatenates the text parts.
func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// parseDraft extracts OVERVIEW/TAKEAWAY/ACTION lines from a model response.
func parseDraft(text string) generator.Draft {
	var d generator.Draft
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "OVERVIEW:"):
			d.Overview = strings.TrimSpace(strings.TrimPrefix(line, "OVERVIEW:"))
		case strings.HasPrefix(line, "TAKEAWAY:"):
			d.KeyTakeaways = append(d.KeyTakeaways, strings.TrimSpace(strings.TrimPrefix(line, "TAKEAWAY:")))
		case strings.HasPrefix(line, "ACTION:"):
			d.ActionItems = append(d.ActionItems, strings.TrimSpace(strings.TrimPrefix(line, "ACTION:")))
		}
	}
	return d
}
