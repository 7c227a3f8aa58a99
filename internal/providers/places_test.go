package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripforge/internal/models/request_models"
)

func TestPlacesSearchChainsTextAndNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "textsearch"):
			w.Write([]byte(`{"results":[{"geometry":{"location":{"lat":26.9124,"lng":75.7873}}}]}`))
		case strings.Contains(r.URL.Path, "nearbysearch"):
			if loc := r.URL.Query().Get("location"); !strings.HasPrefix(loc, "26.9124") {
				t.Errorf("nearby search missing geocoded location, got %q", loc)
			}
			w.Write([]byte(`{"results":[
				{"name":"Hawa Mahal","vicinity":"Badi Choupad","rating":4.5,
				 "photos":[{"photo_reference":"ref123"}]},
				{"name":"Amber Fort","vicinity":"Devisinghpura","rating":4.6}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewPlacesClient(Config{BaseURL: server.URL, APIKey: "test"}, server.Client())
	got, err := client.Search(context.Background(), request_models.TripQuery{Destination: "Jaipur"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Name != "Hawa Mahal" || got[0].Rating != 4.5 {
		t.Fatalf("first candidate wrong: %+v", got[0])
	}
	if !strings.Contains(got[0].PhotoURL, "ref123") {
		t.Fatalf("photo url not assembled: %q", got[0].PhotoURL)
	}
	if got[1].PhotoURL != "" {
		t.Fatalf("candidate without photos should have empty url, got %q", got[1].PhotoURL)
	}
}

func TestPlacesSearchEmptyGeocodeYieldsNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewPlacesClient(Config{BaseURL: server.URL, APIKey: "test"}, server.Client())
	got, err := client.Search(context.Background(), request_models.TripQuery{Destination: "Nowhere"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}
