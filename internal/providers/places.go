package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

type PlacesClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewPlacesClient(cfg Config, httpClient *http.Client) *PlacesClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	return &PlacesClient{cfg: cfg, httpClient: httpClient}
}

func NewPlacesClientFromEnv() *PlacesClient {
	baseURL := os.Getenv("GOMAPS_DOMAIN")
	if baseURL == "" {
		baseURL = "https://maps.gomaps.pro/maps/api/place"
	}
	return NewPlacesClient(Config{BaseURL: baseURL, APIKey: os.Getenv("GOMAPS_API_KEY")}, nil)
}

type textSearchResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type nearbySearchResponse struct {
	Results []struct {
		Name     string  `json:"name"`
		Vicinity string  `json:"vicinity"`
		Rating   float64 `json:"rating"`
		Photos   []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// Search geocodes the destination city with a text search, then fetches
// tourist attractions around it. The place name is the natural key the UI
// toggles with.
func (c *PlacesClient) Search(ctx context.Context, q request_models.TripQuery) ([]response_models.PlaceCandidate, error) {
	textParams := url.Values{}
	textParams.Set("query", q.Destination)
	textParams.Set("key", c.cfg.APIKey)

	var text textSearchResponse
	if err := getJSON(ctx, c.httpClient, c.cfg.BaseURL+"/textsearch/json", textParams, &text); err != nil {
		return nil, err
	}
	if len(text.Results) == 0 {
		return nil, nil
	}

	location := text.Results[0].Geometry.Location
	nearbyParams := url.Values{}
	nearbyParams.Set("location", fmt.Sprintf("%f,%f", location.Lat, location.Lng))
	nearbyParams.Set("radius", "500000")
	nearbyParams.Set("type", "tourist_attraction")
	nearbyParams.Set("keyword", "monument")
	nearbyParams.Set("key", c.cfg.APIKey)

	var nearby nearbySearchResponse
	if err := getJSON(ctx, c.httpClient, c.cfg.BaseURL+"/nearbysearch/json", nearbyParams, &nearby); err != nil {
		return nil, err
	}

	candidates := make([]response_models.PlaceCandidate, 0, len(nearby.Results))
	for _, place := range nearby.Results {
		if place.Name == "" {
			continue
		}
		candidate := response_models.PlaceCandidate{
			Name:     place.Name,
			Vicinity: place.Vicinity,
			Rating:   place.Rating,
		}
		if len(place.Photos) > 0 && place.Photos[0].PhotoReference != "" {
			candidate.PhotoURL = fmt.Sprintf("%s/photo?maxwidth=400&photoreference=%s&key=%s",
				c.cfg.BaseURL, place.Photos[0].PhotoReference, c.cfg.APIKey)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
