package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

type HotelsClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewHotelsClient(cfg Config, httpClient *http.Client) *HotelsClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	return &HotelsClient{cfg: cfg, httpClient: httpClient}
}

func NewHotelsClientFromEnv() *HotelsClient {
	return NewHotelsClient(serpConfigFromEnv(), nil)
}

type hotelsResponse struct {
	Properties []struct {
		Name          string  `json:"name"`
		OverallRating float64 `json:"overall_rating"`
		RatePerNight  struct {
			ExtractedLowest float64 `json:"extracted_lowest"`
		} `json:"rate_per_night"`
	} `json:"properties"`
}

// Search fetches lodging candidates for the destination city. The hotel
// name is the natural key the UI toggles with.
func (c *HotelsClient) Search(ctx context.Context, q request_models.TripQuery) ([]response_models.HotelCandidate, error) {
	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", q.Destination)
	params.Set("check_in_date", q.StartDate)
	params.Set("check_out_date", q.EndDate)
	params.Set("adults", strconv.Itoa(q.Guests))
	params.Set("currency", "INR")
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("api_key", c.cfg.APIKey)

	var decoded hotelsResponse
	if err := getJSON(ctx, c.httpClient, c.cfg.BaseURL, params, &decoded); err != nil {
		return nil, err
	}

	candidates := make([]response_models.HotelCandidate, 0, len(decoded.Properties))
	for _, property := range decoded.Properties {
		if property.Name == "" {
			continue
		}
		candidates = append(candidates, response_models.HotelCandidate{
			Name:     property.Name,
			Rating:   property.OverallRating,
			Price:    property.RatePerNight.ExtractedLowest,
			Currency: "INR",
			Location: q.Destination,
		})
	}
	return candidates, nil
}
