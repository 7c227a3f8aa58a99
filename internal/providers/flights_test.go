package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripforge/internal/models/request_models"
)

func TestFlightsSearchDecodesCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("engine"); got != "google_flights" {
			t.Errorf("unexpected engine %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"best_flights": [{
				"flights": [{
					"airline": "Air India",
					"flight_number": "AI202",
					"departure_airport": {"name": "Indira Gandhi Intl", "time": "2026-01-10 06:30"},
					"arrival_airport": {"name": "Jaipur Intl", "time": "2026-01-10 07:45"}
				}],
				"total_duration": 75,
				"price": 129.5
			}],
			"other_flights": [{
				"flights": [
					{"airline": "IndiGo", "flight_number": "6E101",
					 "departure_airport": {"name": "Indira Gandhi Intl", "time": "2026-01-10 09:00"},
					 "arrival_airport": {"name": "Udaipur", "time": "2026-01-10 10:10"}},
					{"airline": "IndiGo", "flight_number": "6E102",
					 "departure_airport": {"name": "Udaipur", "time": "2026-01-10 11:00"},
					 "arrival_airport": {"name": "Jaipur Intl", "time": "2026-01-10 11:50"}}
				],
				"total_duration": 170,
				"price": 99
			}]
		}`))
	}))
	defer server.Close()

	client := NewFlightsClient(Config{BaseURL: server.URL, APIKey: "test"}, server.Client())
	got, err := client.Search(context.Background(), request_models.TripQuery{
		Origin:      "DEL",
		Destination: "JAI",
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-14",
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].FlightNumber != "AI202" || got[0].Airline != "Air India" {
		t.Fatalf("first candidate wrong: %+v", got[0])
	}
	if got[0].Duration != "1h 15m" {
		t.Fatalf("duration formatting wrong: %q", got[0].Duration)
	}
	if got[1].Stops != 1 {
		t.Fatalf("expected 1 stop on connecting flight, got %d", got[1].Stops)
	}
}

func TestFlightsSearchFailsOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewFlightsClient(Config{BaseURL: server.URL, APIKey: "test"}, server.Client())
	if _, err := client.Search(context.Background(), request_models.TripQuery{Destination: "JAI"}); err == nil {
		t.Fatal("expected error from failing upstream")
	}
}
