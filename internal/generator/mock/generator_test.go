package mock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zyan8808/video-analysis-temporal/internal/generator"
	"github.com/zyan8808/video-analysis-temporal/internal/language"
)

func TestTranscript_KnownItem(t *testing.T) {
	g := New()

	text, err := g.Transcript(context.Background(), "demo-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "This is a mock English transcript for video demo-001. It covers product updates and next steps."
	if text != want {
		t.Errorf("transcript = %q, want %q", text, want)
	}
}

func TestTranscript_Deterministic(t *testing.T) {
	g := New()
	ctx := context.Background()

	for itemID := range defaultCatalog {
		first, err := g.Transcript(ctx, itemID)
		if err != nil {
			t.Fatalf("first extraction for %q: %v", itemID, err)
		}
		second, err := g.Transcript(ctx, itemID)
		if err != nil {
			t.Fatalf("second extraction for %q: %v", itemID, err)
		}
		if first != second {
			t.Errorf("repeated extraction for %q not byte-identical", itemID)
		}
	}
}

func TestTranscript_UnknownItem(t *testing.T) {
	g := New()

	_, err := g.Transcript(context.Background(), "no-such-item")
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
	if !errors.Is(err, generator.ErrUnknownItem) {
		t.Errorf("error = %v, want ErrUnknownItem", err)
	}
}

func TestNewWithCatalog_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `items:
  demo-001: "Overridden transcript for demo-001."
  extra-item: "A transcript only the file knows about."
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := NewWithCatalog(path)
	if err != nil {
		t.Fatalf("NewWithCatalog: %v", err)
	}
	ctx := context.Background()

	text, err := g.Transcript(ctx, "demo-001")
	if err != nil {
		t.Fatalf("overridden item: %v", err)
	}
	if text != "Overridden transcript for demo-001." {
		t.Errorf("file entry did not win over default: %q", text)
	}

	if _, err := g.Transcript(ctx, "extra-item"); err != nil {
		t.Errorf("file-only item should resolve: %v", err)
	}

	// Defaults not mentioned in the file stay available.
	if _, err := g.Transcript(ctx, "onboarding-101"); err != nil {
		t.Errorf("default item should survive overlay: %v", err)
	}
}

func TestNewWithCatalog_MissingFile(t *testing.T) {
	if _, err := NewWithCatalog(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestSummarize_Shape(t *testing.T) {
	g := New()

	draft, err := g.Summarize(context.Background(), "demo-001", "whatever text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(draft.Overview, "demo-001") {
		t.Errorf("overview should mention the item: %q", draft.Overview)
	}
	if n := len(draft.KeyTakeaways); n < 3 || n > 5 {
		t.Errorf("got %d takeaways, want 3-5", n)
	}
	if n := len(draft.ActionItems); n < 2 || n > 4 {
		t.Errorf("got %d action items, want 2-4", n)
	}
}

func TestTranslate_TranscriptTemplates(t *testing.T) {
	g := New()
	ctx := context.Background()

	tests := []struct {
		target language.Language
		want   string
	}{
		{language.Spanish, "Transcripción traducida (ES) del video demo-001: hello"},
		{language.Japanese, "ビデオdemo-001の翻訳済み文字起こし（JA）: hello"},
		{language.Portuguese, "Transcrição traduzida (PT) do vídeo demo-001: hello"},
	}

	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			got, err := g.Translate(ctx, generator.Request{
				ItemID: "demo-001",
				Text:   "hello",
				Kind:   generator.KindTranscript,
				Source: language.English,
				Target: tt.target,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("translate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslate_SummaryKindUsesSummaryTemplate(t *testing.T) {
	g := New()

	got, err := g.Translate(context.Background(), generator.Request{
		ItemID: "demo-001",
		Text:   "hello",
		Kind:   generator.KindSummary,
		Source: language.English,
		Target: language.Spanish,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Texto traducido (ES): hello" {
		t.Errorf("translate = %q", got)
	}
}

func TestTranslate_UnsupportedTarget(t *testing.T) {
	g := New()

	_, err := g.Translate(context.Background(), generator.Request{
		ItemID: "demo-001",
		Text:   "hello",
		Kind:   generator.KindTranscript,
		Source: language.English,
		Target: language.English,
	})
	if err == nil {
		t.Fatal("expected error for unsupported target")
	}
	if !errors.Is(err, language.ErrUnsupported) {
		t.Errorf("error = %v, want ErrUnsupported", err)
	}
}
