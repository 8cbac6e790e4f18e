package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/barrabusiness/lead_management_system/backend/models"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.prompt = userPrompt
	return f.text, f.err
}

func testDetails() PropertyDetails {
	return PropertyDetails{
		Type:      models.TypePenthouse,
		Region:    "Jardim Oceânico",
		CondoName: "Alfa Barra",
		Bedrooms:  4,
		Area:      220,
	}
}

func TestDescribeWithoutGeneratorUsesFallback(t *testing.T) {
	writer := NewWriter(nil)
	if got := writer.Describe(context.Background(), testDetails()); got != Fallback {
		t.Fatalf("Describe() = %q, want fallback", got)
	}
}

func TestDescribeDegradesToFallbackOnError(t *testing.T) {
	writer := NewWriter(&fakeGenerator{err: errors.New("boom")})
	if got := writer.Describe(context.Background(), testDetails()); got != Fallback {
		t.Fatalf("Describe() = %q, want fallback", got)
	}
}

func TestDescribeHandlesEmptyResult(t *testing.T) {
	writer := NewWriter(&fakeGenerator{text: "  \n"})
	if got := writer.Describe(context.Background(), testDetails()); got != emptyResult {
		t.Fatalf("Describe() = %q, want %q", got, emptyResult)
	}
}

func TestDescribeBuildsPromptFromDetails(t *testing.T) {
	gen := &fakeGenerator{text: "Uma cobertura exclusiva."}
	writer := NewWriter(gen)

	got := writer.Describe(context.Background(), testDetails())
	if got != "Uma cobertura exclusiva." {
		t.Fatalf("Describe() = %q", got)
	}
	for _, want := range []string{"Cobertura", "Alfa Barra", "Jardim Oceânico", "Quartos: 4", "220m²"} {
		if !strings.Contains(gen.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gen.prompt)
		}
	}
}
