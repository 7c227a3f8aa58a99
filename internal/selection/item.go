package selection

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryFlight     Category = "flight"
	CategoryHotel      Category = "hotel"
	CategoryPlace      Category = "place"
	CategoryTrain      Category = "train"
	CategoryTravelInfo Category = "travel_info"
)

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFlight:
		return CategoryFlight, nil
	case CategoryHotel:
		return CategoryHotel, nil
	case CategoryPlace:
		return CategoryPlace, nil
	case CategoryTrain:
		return CategoryTrain, nil
	case CategoryTravelInfo:
		return CategoryTravelInfo, nil
	default:
		return "", fmt.Errorf("unknown selection category: %q", s)
	}
}

// Item is one selectable thing: a flight, hotel, train, place, or the
// seeded travel-info entry. Details carries the category-specific payload
// and is never interpreted by the store itself.
type Item struct {
	Title    string          `json:"title"`
	Category Category        `json:"category"`
	Details  json.RawMessage `json:"details,omitempty"`
}

// Same reports identity: two items are the same selection when both
// title and category match. Details never participate.
func (i Item) Same(other Item) bool {
	return i.Title == other.Title && i.Category == other.Category
}

// TravelInfoDetails is the payload of the travel_info item seeded at
// session start. Dates use the 2006-01-02 layout.
type TravelInfoDetails struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Guests      int    `json:"guests"`
}

const dateLayout = "2006-01-02"

// DayCount returns the inclusive number of trip days, or 0 when the dates
// are missing or unparsable.
func (d TravelInfoDetails) DayCount() int {
	start, err1 := time.Parse(dateLayout, d.StartDate)
	end, err2 := time.Parse(dateLayout, d.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// NewTravelInfoItem builds the seed item for a planning session. The
// destination doubles as the title so identity stays (title, category).
func NewTravelInfoItem(details TravelInfoDetails) (Item, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Title:    details.Destination,
		Category: CategoryTravelInfo,
		Details:  raw,
	}, nil
}

// TravelInfoOf extracts the seeded travel-info payload from items, if one
// is present and parsable.
func TravelInfoOf(items []Item) (TravelInfoDetails, bool) {
	for _, item := range items {
		if item.Category != CategoryTravelInfo {
			continue
		}
		var details TravelInfoDetails
		if err := json.Unmarshal(item.Details, &details); err != nil {
			return TravelInfoDetails{}, false
		}
		return details, true
	}
	return TravelInfoDetails{}, false
}
