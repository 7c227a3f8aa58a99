package providers

import (
	"context"
	"net/http"
	"net/url"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
)

type TrainsClient struct {
	cfg        Config
	httpClient *http.Client
}

func NewTrainsClient(cfg Config, httpClient *http.Client) *TrainsClient {
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	return &TrainsClient{cfg: cfg, httpClient: httpClient}
}

func NewTrainsClientFromEnv() *TrainsClient {
	return NewTrainsClient(serpConfigFromEnv(), nil)
}

type trainStop struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type trainsResponse struct {
	Directions []struct {
		Trips []struct {
			Title             string      `json:"title"`
			StartStop         trainStop   `json:"start_stop"`
			EndStop           trainStop   `json:"end_stop"`
			FormattedDuration string      `json:"formatted_duration"`
			Stops             []trainStop `json:"stops"`
		} `json:"trips"`
	} `json:"directions"`
}

// Search fetches rail connections between origin and destination using the
// transit directions engine (travel_mode=3). The trip title is the natural
// key the UI toggles with.
func (c *TrainsClient) Search(ctx context.Context, q request_models.TripQuery) ([]response_models.TrainCandidate, error) {
	params := url.Values{}
	params.Set("engine", "google_maps_directions")
	params.Set("start_addr", q.Origin)
	params.Set("end_addr", q.Destination)
	params.Set("travel_mode", "3")
	params.Set("api_key", c.cfg.APIKey)

	var decoded trainsResponse
	if err := getJSON(ctx, c.httpClient, c.cfg.BaseURL, params, &decoded); err != nil {
		return nil, err
	}

	var candidates []response_models.TrainCandidate
	for _, direction := range decoded.Directions {
		for _, trip := range direction.Trips {
			if trip.Title == "" {
				continue
			}
			stops := make([]response_models.TrainStop, 0, len(trip.Stops))
			for _, stop := range trip.Stops {
				stops = append(stops, response_models.TrainStop{Name: stop.Name, Time: stop.Time})
			}
			candidates = append(candidates, response_models.TrainCandidate{
				Title:    trip.Title,
				Start:    response_models.TrainStop{Name: trip.StartStop.Name, Time: trip.StartStop.Time},
				End:      response_models.TrainStop{Name: trip.EndStop.Name, Time: trip.EndStop.Time},
				Duration: trip.FormattedDuration,
				Stops:    stops,
			})
		}
	}
	return candidates, nil
}
