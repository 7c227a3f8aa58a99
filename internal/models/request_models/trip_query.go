package request_models

// TripQuery parameterizes the external search providers. Fields bind from
// query parameters; each provider reads the subset it needs.
type TripQuery struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination" binding:"required"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Guests      int    `form:"guests,default=2"`
}
