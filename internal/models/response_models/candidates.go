package response_models

// Candidate shapes returned by the search endpoints. Each carries the
// natural key the UI toggles with and a Selected flag reflecting current
// membership in the session's selection set.

type FlightCandidate struct {
	FlightNumber     string  `json:"flight_number"`
	Airline          string  `json:"airline"`
	DepartureAirport string  `json:"departure_airport"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalAirport   string  `json:"arrival_airport"`
	ArrivalTime      string  `json:"arrival_time"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
	Price            float64 `json:"price,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	Selected         bool    `json:"selected"`
}

type HotelCandidate struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Location string  `json:"location,omitempty"`
	Selected bool    `json:"selected"`
}

type TrainStop struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type TrainCandidate struct {
	Title    string      `json:"title"`
	Start    TrainStop   `json:"start_stop"`
	End      TrainStop   `json:"end_stop"`
	Duration string      `json:"formatted_duration"`
	Stops    []TrainStop `json:"stops,omitempty"`
	Selected bool        `json:"selected"`
}

type PlaceCandidate struct {
	Name     string  `json:"name"`
	Vicinity string  `json:"vicinity,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	PhotoURL string  `json:"photo_url,omitempty"`
	Selected bool    `json:"selected"`
}
