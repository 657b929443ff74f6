package postprocessors

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// mockExtractor returns predefined paragraphs.
type mockExtractor struct {
	paragraphs []string
	got        string
}

func (m *mockExtractor) Extract(content string) []string {
	m.got = content
	return m.paragraphs
}

// mockSelector keeps the first n paragraphs.
type mockSelector struct {
	n int
}

func (m *mockSelector) Name() string {
	return "mock"
}

func (m *mockSelector) Select(paragraphs []string) []string {
	if len(paragraphs) > m.n {
		return paragraphs[:m.n]
	}
	return paragraphs
}

// mockPhrases upper-cases the passage.
type mockPhrases struct{}

func (mockPhrases) Phrase(passage string) string {
	return strings.ToUpper(passage)
}

func TestPipeline_Process(t *testing.T) {
	extractor := &mockExtractor{paragraphs: []string{"one", "two", "three"}}
	p := NewPipeline(extractor, &mockSelector{n: 2}, mockPhrases{})

	got, err := p.Process(context.Background(), domain.Chapter{Name: "01-intro.md", Content: "raw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if extractor.got != "raw" {
		t.Errorf("expected extractor to receive chapter content, got %q", extractor.got)
	}
	if got.Chapter != "01-intro.md" {
		t.Errorf("expected chapter name 01-intro.md, got %q", got.Chapter)
	}
	if got.ParagraphCount != 3 {
		t.Errorf("expected 3 paragraphs, got %d", got.ParagraphCount)
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got.Candidates))
	}
	if got.Candidates[1].Passage != "two" || got.Candidates[1].SearchPhrase != "TWO" {
		t.Errorf("unexpected candidate: %+v", got.Candidates[1])
	}
}

func TestPipeline_Process_NoProse(t *testing.T) {
	p := NewPipeline(&mockExtractor{}, &mockSelector{n: 5}, mockPhrases{})

	got, err := p.Process(context.Background(), domain.Chapter{Name: "empty.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ParagraphCount != 0 || len(got.Candidates) != 0 {
		t.Errorf("expected empty extraction, got %+v", got)
	}
	if got.Candidates == nil {
		t.Error("expected non-nil candidates slice")
	}
}

func TestPipeline_Process_MissingStage(t *testing.T) {
	p := NewPipeline(nil, &mockSelector{n: 1}, mockPhrases{})

	if _, err := p.Process(context.Background(), domain.Chapter{}); err == nil {
		t.Error("expected error for missing stage")
	}
}

func TestPipeline_Process_Cancelled(t *testing.T) {
	p := NewPipeline(&mockExtractor{}, &mockSelector{n: 1}, mockPhrases{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, domain.Chapter{Name: "a.md"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewDefaultPipeline(t *testing.T) {
	settings := domain.DefaultAppSettings()
	p := NewDefaultPipeline(settings.Check, settings.Extraction)

	content := strings.Join([]string{
		"# Chapter One",
		"",
		"The old harbour master kept a ledger of every vessel that crossed the bar. " +
			"He wrote in a cramped hand with a worn pencil. " +
			"Nobody else was allowed to read it until the winter he retired.",
		"",
		"```",
		"code that should never be read as prose even if it is long enough to count",
		"```",
		"",
		"Too short to count.",
	}, "\n")

	got, err := p.Process(context.Background(), domain.Chapter{Name: "01.md", Content: content})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ParagraphCount != 1 {
		t.Fatalf("expected 1 prose paragraph, got %d", got.ParagraphCount)
	}
	if len(got.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got.Candidates))
	}
	want := "He wrote in a cramped hand with a worn pencil."
	if got.Candidates[0].SearchPhrase != want {
		t.Errorf("expected phrase %q, got %q", want, got.Candidates[0].SearchPhrase)
	}
}
