package providers

import (
	"context"
	"net/http"
	"net/url"
	"os"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

type FlightsClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewFlightsClient(cfg Config, httpClient *http.Client) *FlightsClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	return &FlightsClient{cfg: cfg, httpClient: httpClient}
}

func NewFlightsClientFromEnv() *FlightsClient {
	return NewFlightsClient(serpConfigFromEnv(), nil)
}

func serpConfigFromEnv() Config {
	baseURL := os.Getenv("SERP_API_DOMAIN")
	if baseURL == "" {
		baseURL = "https://serpapi.com/search.json"
	}
	return Config{BaseURL: baseURL, APIKey: os.Getenv("SERP_API_KEY")}
}

type flightsResponse struct {
	BestFlights  []flightOption `json:"best_flights"`
	OtherFlights []flightOption `json:"other_flights"`
}

type flightOption struct {
	Flights []struct {
		Airline          string `json:"airline"`
		FlightNumber     string `json:"flight_number"`
		Duration         int    `json:"duration"`
		DepartureAirport struct {
			Name string `json:"name"`
			Time string `json:"time"`
		} `json:"departure_airport"`
		ArrivalAirport struct {
			Name string `json:"name"`
			Time string `json:"time"`
		} `json:"arrival_airport"`
	} `json:"flights"`
	TotalDuration int     `json:"total_duration"`
	Price         float64 `json:"price"`
}

// Search fetches flight candidates for the trip. The flight number of the
// first leg is the natural key the UI toggles with.
func (c *FlightsClient) Search(ctx context.Context, q request_models.TripQuery) ([]response_models.FlightCandidate, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", q.Origin)
	params.Set("arrival_id", q.Destination)
	params.Set("outbound_date", q.StartDate)
	params.Set("return_date", q.EndDate)
	params.Set("currency", "INR")
	params.Set("api_key", c.cfg.APIKey)

	var decoded flightsResponse
	if err := getJSON(ctx, c.httpClient, c.cfg.BaseURL, params, &decoded); err != nil {
		return nil, err
	}

	options := append(decoded.BestFlights, decoded.OtherFlights...)
	candidates := make([]response_models.FlightCandidate, 0, len(options))
	for _, option := range options {
		if len(option.Flights) == 0 {
			continue
		}
		leg := option.Flights[0]
		candidates = append(candidates, response_models.FlightCandidate{
			FlightNumber:     leg.FlightNumber,
			Airline:          leg.Airline,
			DepartureAirport: leg.DepartureAirport.Name,
			DepartureTime:    leg.DepartureAirport.Time,
			ArrivalAirport:   leg.ArrivalAirport.Name,
			ArrivalTime:      leg.ArrivalAirport.Time,
			Duration:         formatMinutes(option.TotalDuration),
			Stops:            len(option.Flights) - 1,
			Price:            option.Price,
			Currency:         "INR",
		})
	}
	return candidates, nil
}
