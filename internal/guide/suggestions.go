// Package guide serves the static destination lookup tables the planner
// decorates trips with: popular activity suggestions, a phrasebook, and
// emergency information. Everything here is an in-process table — real
// travel APIs are out of scope — so lookups are pure and never fail.
package guide

import (
	"fmt"
	"strings"
)

// Suggestion is one suggested activity for a destination. Title is a plain
// activity string suitable for adding to a day plan as-is.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Popular     bool   `json:"popular,omitempty"`
}

// curatedSuggestions holds hand-picked activities for well-known
// destinations, keyed by canonical city name.
var curatedSuggestions = map[string][]Suggestion{
	"Paris": {
		{Title: "Visit the Eiffel Tower", Description: "Climb to the top of the iconic Eiffel Tower for panoramic views of the city.", Category: "Sightseeing", Duration: "3 hours", Popular: true},
		{Title: "Louvre Museum Tour", Description: "Explore world-famous artworks including the Mona Lisa.", Category: "Culture", Duration: "4 hours", Popular: true},
		{Title: "Seine River Cruise", Description: "Take a romantic boat ride along the Seine River.", Category: "Sightseeing", Duration: "1 hour"},
		{Title: "French Cooking Class", Description: "Learn to make classic French dishes with a professional chef.", Category: "Food & Drink", Duration: "3 hours", Popular: true},
		{Title: "Shopping at Champs-Élysées", Description: "Explore luxury boutiques and shops on this famous avenue.", Category: "Shopping", Duration: "4 hours"},
		{Title: "Visit Montmartre", Description: "Explore the artistic neighborhood and visit Sacré-Cœur Basilica.", Category: "Culture", Duration: "3 hours"},
		{Title: "Wine Tasting Experience", Description: "Sample fine French wines with expert sommeliers.", Category: "Food & Drink", Duration: "2 hours"},
		{Title: "Palace of Versailles Day Trip", Description: "Visit the magnificent royal palace and its gardens.", Category: "Sightseeing", Duration: "Full day"},
	},
	"Tokyo": {
		{Title: "Explore Shibuya Crossing", Description: "Experience the world's busiest pedestrian crossing.", Category: "Sightseeing", Duration: "1 hour", Popular: true},
		{Title: "Sushi Making Class", Description: "Learn to make authentic Japanese sushi with local chefs.", Category: "Food & Drink", Duration: "2 hours", Popular: true},
		{Title: "Senso-ji Temple Visit", Description: "Visit Tokyo's oldest Buddhist temple.", Category: "Culture", Duration: "2 hours"},
		{Title: "Anime Shopping in Akihabara", Description: "Explore the electronics and anime district.", Category: "Shopping", Duration: "3 hours"},
		{Title: "Meiji Shrine Visit", Description: "Explore the peaceful forested shrine in the heart of Tokyo.", Category: "Culture", Duration: "2 hours"},
		{Title: "Tokyo Skytree", Description: "Visit one of the world's tallest towers for breathtaking views.", Category: "Sightseeing", Duration: "2 hours"},
	},
	"New York": {
		{Title: "Visit Times Square", Description: "Experience the bright lights and energy of this iconic location.", Category: "Sightseeing", Duration: "2 hours", Popular: true},
		{Title: "Empire State Building", Description: "Take in panoramic views from this famous skyscraper.", Category: "Sightseeing", Duration: "2 hours"},
		{Title: "Central Park Bike Tour", Description: "Cycle through Manhattan's urban oasis.", Category: "Adventure", Duration: "3 hours", Popular: true},
		{Title: "Broadway Show", Description: "Watch a world-class theatrical performance.", Category: "Culture", Duration: "3 hours"},
	},
}

// SuggestionsFor returns suggested activities for a destination. Known
// destinations match case-insensitively against the curated table; any
// other destination gets a templated generic list, so the result is never
// empty.
func SuggestionsFor(destination string) []Suggestion {
	for city, suggestions := range curatedSuggestions {
		if strings.EqualFold(city, destination) {
			return suggestions
		}
	}
	return genericSuggestions(destination)
}

// genericSuggestions templates a plausible activity list for a destination
// outside the curated table.
func genericSuggestions(destination string) []Suggestion {
	return []Suggestion{
		{Title: fmt.Sprintf("Explore %s City Center", destination), Description: fmt.Sprintf("Discover the heart of %s and its main attractions.", destination), Category: "Sightseeing", Duration: "3 hours", Popular: true},
		{Title: "Local Food Tour", Description: fmt.Sprintf("Taste the best local cuisine %s has to offer.", destination), Category: "Food & Drink", Duration: "4 hours", Popular: true},
		{Title: "Cultural Experience", Description: fmt.Sprintf("Immerse yourself in %s's rich cultural heritage.", destination), Category: "Culture", Duration: "2 hours"},
		{Title: "Shopping District Tour", Description: fmt.Sprintf("Explore the best shopping areas in %s.", destination), Category: "Shopping", Duration: "3 hours"},
		{Title: "Historical Landmarks Tour", Description: fmt.Sprintf("Visit important historical sites in %s.", destination), Category: "Culture", Duration: "3 hours"},
		{Title: "Scenic Photography Tour", Description: fmt.Sprintf("Capture the most photogenic spots in %s.", destination), Category: "Sightseeing", Duration: "3 hours"},
	}
}
