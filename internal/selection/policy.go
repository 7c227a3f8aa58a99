package selection

// Mode is the exclusivity rule applied to a category.
type Mode int

const (
	// SingleSelect keeps at most one item of the category; choosing a new
	// one evicts the previous one.
	SingleSelect Mode = iota
	// MultiSelect keeps any number of distinct items of the category.
	MultiSelect
)

// Policy maps each category to its exclusivity mode. Keeping the rule in a
// table means product changes (for example merging flight and train into
// one shared transport slot) stay one-line edits.
type Policy map[Category]Mode

// DefaultPolicy: places are multi-select, everything else holds a single
// slot. Flight and train are deliberately independent slots.
func DefaultPolicy() Policy {
	return Policy{
		CategoryFlight:     SingleSelect,
		CategoryHotel:      SingleSelect,
		CategoryPlace:      MultiSelect,
		CategoryTrain:      SingleSelect,
		CategoryTravelInfo: SingleSelect,
	}
}

// ModeOf returns the mode for c, defaulting to SingleSelect for categories
// the table does not name.
func (p Policy) ModeOf(c Category) Mode {
	if mode, ok := p[c]; ok {
		return mode
	}
	return SingleSelect
}
