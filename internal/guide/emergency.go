package guide

import "fmt"

// EmergencyContact is one emergency service and its phone number.
type EmergencyContact struct {
	Service     string `json:"service"`
	Number      string `json:"number"`
	Description string `json:"description,omitempty"`
}

// EmbassyInfo points at a foreign embassy in the destination country.
type EmbassyInfo struct {
	Country string `json:"country"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// EmergencyInfo bundles everything the emergency widget shows for a
// destination country.
type EmergencyInfo struct {
	Country          string             `json:"country"`
	EmergencyNumbers []EmergencyContact `json:"emergency_numbers"`
	EmbassyInfo      []EmbassyInfo      `json:"embassy_info,omitempty"`
	TravelAdvisory   string             `json:"travel_advisory,omitempty"`
}

// emergencyData holds curated emergency information per country.
var emergencyData = map[string]EmergencyInfo{
	"France": {
		Country: "France",
		EmergencyNumbers: []EmergencyContact{
			{Service: "General Emergency", Number: "112", Description: "European emergency number"},
			{Service: "Police", Number: "17"},
			{Service: "Ambulance", Number: "15"},
			{Service: "Fire", Number: "18"},
		},
		EmbassyInfo: []EmbassyInfo{
			{Country: "United States", Address: "2 Avenue Gabriel, 75008 Paris, France", Phone: "+33 1 43 12 22 22", Website: "https://fr.usembassy.gov/embassy-consulates/paris/"},
			{Country: "United Kingdom", Address: "35 Rue du Faubourg Saint-Honoré, 75008 Paris, France", Phone: "+33 1 44 51 31 00", Website: "https://www.gov.uk/world/organisations/british-embassy-paris"},
		},
		TravelAdvisory: "Exercise normal precautions in France.",
	},
	"Italy": {
		Country: "Italy",
		EmergencyNumbers: []EmergencyContact{
			{Service: "General Emergency", Number: "112", Description: "European emergency number"},
			{Service: "Police", Number: "113"},
			{Service: "Ambulance", Number: "118"},
			{Service: "Fire", Number: "115"},
		},
		EmbassyInfo: []EmbassyInfo{
			{Country: "United States", Address: "Via Vittorio Veneto 121, 00187 Roma, Italy", Phone: "+39 06 46741", Website: "https://it.usembassy.gov/"},
		},
		TravelAdvisory: "Exercise normal precautions in Italy.",
	},
	"Japan": {
		Country: "Japan",
		EmergencyNumbers: []EmergencyContact{
			{Service: "Police", Number: "110"},
			{Service: "Ambulance/Fire", Number: "119"},
		},
		EmbassyInfo: []EmbassyInfo{
			{Country: "United States", Address: "1-10-5 Akasaka, Minato-ku, Tokyo 107-8420, Japan", Phone: "+81 3-3224-5000", Website: "https://jp.usembassy.gov/"},
		},
		TravelAdvisory: "Exercise normal precautions in Japan.",
	},
}

// EmergencyInfoFor returns emergency information for a destination,
// resolving cities to countries first. Countries outside the curated table
// get a generic entry pointing the traveller at local resources, so the
// widget always has something to show.
func EmergencyInfoFor(destination string) EmergencyInfo {
	country := countryFor(destination)
	if info, ok := emergencyData[country]; ok {
		return info
	}

	return EmergencyInfo{
		Country: country,
		EmergencyNumbers: []EmergencyContact{
			{Service: "General Emergency", Number: "112", Description: "International emergency number (many countries)"},
			{Service: "Police", Number: "-- Search online for local police --"},
			{Service: "Ambulance", Number: "-- Search online for local ambulance --"},
			{Service: "Fire", Number: "-- Search online for local fire department --"},
		},
		TravelAdvisory: fmt.Sprintf("Check your government's travel advisory for %s.", country),
	}
}
