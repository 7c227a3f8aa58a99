package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"tripforge/internal/selection"
)

func TestSelectionPayloadRoundTrip(t *testing.T) {
	items := []selection.Item{
		{Title: "Jaipur", Category: selection.CategoryTravelInfo, Details: json.RawMessage(`{"origin":"Delhi","destination":"Jaipur","guests":2}`)},
		{Title: "AI202", Category: selection.CategoryFlight, Details: json.RawMessage(`{"airline":"Air India","price":129.5}`)},
		{Title: "Red Fort", Category: selection.CategoryPlace},
	}

	payload, err := encodeItems(items)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}

	got := decodeItems(payload)
	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i].Title != items[i].Title || got[i].Category != items[i].Category {
			t.Fatalf("item %d changed: %+v", i, got[i])
		}
		if string(got[i].Details) != string(items[i].Details) {
			t.Fatalf("item %d details changed: %s", i, got[i].Details)
		}
	}
}

func TestDecodeItemsTreatsGarbageAsEmpty(t *testing.T) {
	for _, payload := range []string{"", "not json", `{"items":`} {
		if got := decodeItems(payload); len(got) != 0 {
			t.Fatalf("payload %q decoded to %v, want empty", payload, got)
		}
	}
}

func TestMemoryRepositorySaveThenLoad(t *testing.T) {
	repo := NewSelectionMemoryRepository()
	ctx := context.Background()

	items := []selection.Item{
		{Title: "Taj Hotel", Category: selection.CategoryHotel, Details: json.RawMessage(`{"rating":4.7}`)},
		{Title: "India Gate", Category: selection.CategoryPlace},
	}

	if err := repo.Save(ctx, "traveller@example.com", items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "traveller@example.com")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Taj Hotel" || got[1].Title != "India Gate" {
		t.Fatalf("round trip lost data: %+v", got)
	}

	got, err = repo.Load(ctx, "nobody@example.com")
	if err != nil || len(got) != 0 {
		t.Fatalf("unknown key should load empty, got %v (%v)", got, err)
	}
}
