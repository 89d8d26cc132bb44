package hotel

import "github.com/google/generative-ai-go/genai"

var hotelListSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "A list of hotel recommendations.",
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            {Type: genai.TypeString, Description: "The name of the hotel."},
			"description":     {Type: genai.TypeString, Description: "A brief, one or two sentence description of the hotel and what makes it a good choice for its category."},
			"estimated_price": {Type: genai.TypeString, Description: "The estimated price per night in the specified currency. e.g. '€150 - €200'"},
			"address":         {Type: genai.TypeString, Description: "The full, real-world address of the hotel for mapping purposes."},
		},
		Required: []string{"name", "description", "estimated_price", "address"},
	},
}
