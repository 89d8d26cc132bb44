// README: Itinerary data model; field names follow the generation schema.
package itinerary

// Location is the primary city/country of a trip. Immutable once generated.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Activity is one entry in a day's schedule. Time is a free-text slot label
// compared case-insensitively against morning/afternoon/evening by the route
// sequencer. Address is required by the schema but may still come back empty;
// such activities are excluded from sequencing.
type Activity struct {
	Time          string `json:"time"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimated_cost"`
	Address       string `json:"address"`
	Details       string `json:"details,omitempty"`
}

// DiningOption is a restaurant recommendation.
type DiningOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address,omitempty"`
}

// Dining holds the two required meal slots for a day.
type Dining struct {
	Lunch  DiningOption `json:"lunch"`
	Dinner DiningOption `json:"dinner"`
}

// DayPlan is one day of a trip. Day values are trusted to be unique and
// increasing in generation order; they are never renumbered here.
type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Summary    string     `json:"summary"`
	Activities []Activity `json:"activities"`
	Dining     Dining     `json:"dining"`
}

// Plan is a generated itinerary before the caller assigns an identity.
// The generator intentionally never produces an ID.
type Plan struct {
	TripTitle          string    `json:"tripTitle"`
	TotalEstimatedCost string    `json:"totalEstimatedCost"`
	Location           Location  `json:"location"`
	Days               []DayPlan `json:"days"`
}

// Itinerary is a Plan plus the caller-assigned ID used for persistence.
type Itinerary struct {
	ID string `json:"id"`
	Plan
}
