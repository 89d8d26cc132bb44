// README: Deterministic day-route sequencing (no external calls).
package route

import (
	"strings"

	"wayfarer/internal/modules/itinerary"
)

// Stop is one ordered waypoint of a day's route.
type Stop struct {
	// Label is the dining option's name for meals, the description for
	// activities.
	Label string `json:"label"`
	// Address is the mapping-ready address the ordering was built on.
	Address string `json:"address"`
}

// SequenceDay turns one day's activities and dining into an ordered stop
// list: morning activities, lunch, afternoon activities, dinner, evening
// activities. Within a bucket the generated order is preserved. Entries
// without an address are excluded; activities whose time label is not
// morning/afternoon/evening (case-insensitive) are dropped entirely from
// this pass rather than appended. Pure and deterministic; no data yields an
// empty sequence.
func SequenceDay(day itinerary.DayPlan) []Stop {
	var morning, afternoon, evening []Stop
	for _, a := range day.Activities {
		if a.Address == "" {
			continue
		}
		stop := Stop{Label: a.Description, Address: a.Address}
		switch strings.ToLower(a.Time) {
		case "morning":
			morning = append(morning, stop)
		case "afternoon":
			afternoon = append(afternoon, stop)
		case "evening":
			evening = append(evening, stop)
		}
	}

	ordered := make([]Stop, 0, len(morning)+len(afternoon)+len(evening)+2)
	ordered = append(ordered, morning...)
	if l := day.Dining.Lunch; l.Address != "" {
		ordered = append(ordered, Stop{Label: l.Name, Address: l.Address})
	}
	ordered = append(ordered, afternoon...)
	if d := day.Dining.Dinner; d.Address != "" {
		ordered = append(ordered, Stop{Label: d.Name, Address: d.Address})
	}
	ordered = append(ordered, evening...)
	return ordered
}
