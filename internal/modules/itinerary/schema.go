package itinerary

import "github.com/google/generative-ai-go/genai"

// planSchema constrains itinerary generation to the Plan shape. The model is
// told the shape up front, but responses are still parsed defensively.
var planSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"tripTitle": {
			Type:        genai.TypeString,
			Description: "A creative and catchy title for the trip. e.g. '3-Day Parisian Adventure'",
		},
		"totalEstimatedCost": {
			Type:        genai.TypeString,
			Description: "A string summarizing the total estimated cost for the trip, factoring in the user's budget and specified currency. e.g. 'Approximately 950 EUR'",
		},
		"location": {
			Type:        genai.TypeObject,
			Description: "The primary location of the trip.",
			Properties: map[string]*genai.Schema{
				"city":    {Type: genai.TypeString, Description: "The main city of the trip."},
				"country": {Type: genai.TypeString, Description: "The country of the trip."},
			},
			Required: []string{"city", "country"},
		},
		"days": {
			Type:        genai.TypeArray,
			Description: "An array of daily plans.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":     {Type: genai.TypeInteger, Description: "The day number (e.g., 1, 2, 3)."},
					"theme":   {Type: genai.TypeString, Description: "A short, engaging theme for the day. e.g., 'Art & History Exploration'"},
					"summary": {Type: genai.TypeString, Description: "A brief one-sentence summary of the day's activities."},
					"activities": {
						Type:        genai.TypeArray,
						Description: "A list of activities for the day.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"time":           {Type: genai.TypeString, Description: "Time of day (e.g., Morning, Afternoon, Evening)."},
								"description":    {Type: genai.TypeString, Description: "A concise description of the activity."},
								"estimated_cost": {Type: genai.TypeString, Description: "Estimated cost for this activity in the specified currency. e.g., '€20' or 'Free'"},
								"details":        {Type: genai.TypeString, Description: "Optional: A brief detail, like an address or booking tip."},
								"address":        {Type: genai.TypeString, Description: "The full, real-world address of the activity location for mapping purposes."},
							},
							Required: []string{"time", "description", "estimated_cost", "address"},
						},
					},
					"dining": {
						Type:        genai.TypeObject,
						Description: "Dining recommendations for the day.",
						Properties: map[string]*genai.Schema{
							"lunch":  diningOptionSchema("Name of the restaurant or cafe for lunch.", "A brief description of the lunch spot."),
							"dinner": diningOptionSchema("Name of the restaurant for dinner.", "A brief description of the dinner spot."),
						},
						Required: []string{"lunch", "dinner"},
					},
				},
				Required: []string{"day", "theme", "summary", "activities", "dining"},
			},
		},
	},
	Required: []string{"tripTitle", "totalEstimatedCost", "days", "location"},
}

func diningOptionSchema(nameDesc, descDesc string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString, Description: nameDesc},
			"description": {Type: genai.TypeString, Description: descDesc},
			"address":     {Type: genai.TypeString, Description: "The full, real-world address of the restaurant for mapping purposes."},
		},
		Required: []string{"name", "description", "address"},
	}
}
