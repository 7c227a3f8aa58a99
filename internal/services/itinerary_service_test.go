package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tripforge/internal/selection"
	"tripforge/pkg/utils"
)

type fakeGenerator struct {
	calls   int
	prompts []string
	text    string
	err     error
}

func (f *fakeGenerator) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func seededService(t *testing.T, generator *fakeGenerator, items ...selection.Item) (ItineraryServiceInterface, SessionRef) {
	t.Helper()
	selectionService := NewSelectionService(newFakeSelectionRepo())
	ref := SessionRef{Key: "device-7"}
	for _, item := range items {
		if _, err := selectionService.Toggle(context.Background(), ref, item); err != nil {
			t.Fatalf("seeding selection: %v", err)
		}
	}
	return NewItineraryService(selectionService, generator), ref
}

func TestGenerateRejectedWithoutPlaces(t *testing.T) {
	generator := &fakeGenerator{text: "ignored"}
	service, ref := seededService(t, generator,
		selection.Item{Title: "Taj Hotel", Category: selection.CategoryHotel},
	)

	_, err := service.Generate(context.Background(), ref)
	if !errors.Is(err, utils.ErrNoPlacesSelected) {
		t.Fatalf("expected ErrNoPlacesSelected, got %v", err)
	}
	if generator.calls != 0 {
		t.Fatalf("generator must not be called on validation failure, got %d calls", generator.calls)
	}
}

func TestGenerateReturnsItinerary(t *testing.T) {
	generator := &fakeGenerator{text: "## Day 1\nVisit the Red Fort."}
	service, ref := seededService(t, generator,
		selection.Item{Title: "AI202", Category: selection.CategoryFlight},
		selection.Item{Title: "Red Fort", Category: selection.CategoryPlace},
	)

	got, err := service.Generate(context.Background(), ref)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Itinerary != generator.text {
		t.Fatalf("itinerary text not passed through: %q", got.Itinerary)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected the selection snapshot in the response, got %+v", got.Items)
	}

	prompt := generator.prompts[0]
	for _, want := range []string{"AI202", "Red Fort", "day-by-day"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateSurfacesGeneratorFailure(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("model overloaded")}
	service, ref := seededService(t, generator,
		selection.Item{Title: "India Gate", Category: selection.CategoryPlace},
	)

	_, err := service.Generate(context.Background(), ref)
	if !errors.Is(err, utils.ErrItineraryFailed) {
		t.Fatalf("expected ErrItineraryFailed, got %v", err)
	}
}

func TestPromptCarriesTripMetadataAndOrder(t *testing.T) {
	info, err := selection.NewTravelInfoItem(selection.TravelInfoDetails{
		Origin:      "Delhi",
		Destination: "Jaipur",
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-12",
		Guests:      2,
	})
	if err != nil {
		t.Fatalf("travel info: %v", err)
	}

	items := []selection.Item{
		info,
		{Title: "Taj Hotel", Category: selection.CategoryHotel},
		{Title: "Hawa Mahal", Category: selection.CategoryPlace},
	}

	prompt, err := BuildItineraryPrompt(items)
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}

	if !strings.Contains(prompt, "Plan exactly 3 days") {
		t.Fatalf("prompt missing day count:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2 guest(s)") {
		t.Fatalf("prompt missing guest count:\n%s", prompt)
	}
	hotel := strings.Index(prompt, "Taj Hotel")
	place := strings.Index(prompt, "Hawa Mahal")
	if hotel < 0 || place < 0 || hotel > place {
		t.Fatalf("items not serialized in stored order:\n%s", prompt)
	}
}
