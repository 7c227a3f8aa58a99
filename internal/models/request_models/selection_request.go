package request_models

import "encoding/json"

// SeedSessionRequest carries the trip-search parameters from the
// build-your-own-package form. Dates use the 2006-01-02 layout.
type SeedSessionRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Guests      int    `json:"guests" binding:"required,min=1"`
}

// ToggleRequest flips membership of one candidate in the session's
// selection set. Details is passed through opaquely.
type ToggleRequest struct {
	Title    string          `json:"title" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Details  json.RawMessage `json:"details"`
}
