package guide

// Phrasebook is the phrase list served for a destination, along with the
// language it should be translated into. Translation itself happens
// client-side against an external service; the backend only resolves the
// destination to a language.
type Phrasebook struct {
	Destination  string   `json:"destination"`
	Country      string   `json:"country,omitempty"`
	Language     string   `json:"language,omitempty"`
	LanguageCode string   `json:"language_code,omitempty"`
	Phrases      []string `json:"phrases"`
}

// commonTravelPhrases are phrases useful in any language, in the order the
// phrasebook presents them.
var commonTravelPhrases = []string{
	"Hello",
	"Goodbye",
	"Please",
	"Thank you",
	"Yes",
	"No",
	"Excuse me",
	"Do you speak English?",
	"I don't understand",
	"How much?",
	"Where is the bathroom?",
	"Help",
	"I need a doctor",
	"How do I get to...?",
	"One ticket please",
	"Delicious",
	"I'm vegetarian",
	"The bill, please",
	"Good morning",
	"Good evening",
}

// languageCodes maps a country to the ISO 639-1 code of its primary language.
var languageCodes = map[string]struct {
	name string
	code string
}{
	"France":      {"French", "fr"},
	"Italy":       {"Italian", "it"},
	"Spain":       {"Spanish", "es"},
	"Japan":       {"Japanese", "ja"},
	"Germany":     {"German", "de"},
	"Thailand":    {"Thai", "th"},
	"China":       {"Chinese", "zh"},
	"Portugal":    {"Portuguese", "pt"},
	"Netherlands": {"Dutch", "nl"},
	"Sweden":      {"Swedish", "sv"},
	"Greece":      {"Greek", "el"},
	"Russia":      {"Russian", "ru"},
	"Korea":       {"Korean", "ko"},
	"Turkey":      {"Turkish", "tr"},
	"Poland":      {"Polish", "pl"},
	"Vietnam":     {"Vietnamese", "vi"},
	"Indonesia":   {"Indonesian", "id"},
}

// cityToCountry maps well-known destination cities to their country for
// language and emergency lookups.
var cityToCountry = map[string]string{
	"Paris":      "France",
	"Nice":       "France",
	"Lyon":       "France",
	"Rome":       "Italy",
	"Milan":      "Italy",
	"Venice":     "Italy",
	"Florence":   "Italy",
	"Barcelona":  "Spain",
	"Madrid":     "Spain",
	"Seville":    "Spain",
	"Tokyo":      "Japan",
	"Kyoto":      "Japan",
	"Osaka":      "Japan",
	"Berlin":     "Germany",
	"Munich":     "Germany",
	"Frankfurt":  "Germany",
	"Bangkok":    "Thailand",
	"Phuket":     "Thailand",
	"Chiang Mai": "Thailand",
	"Beijing":    "China",
	"Shanghai":   "China",
	"Lisbon":     "Portugal",
	"Porto":      "Portugal",
	"Amsterdam":  "Netherlands",
	"Stockholm":  "Sweden",
	"Athens":     "Greece",
	"Moscow":     "Russia",
	"Seoul":      "Korea",
	"Istanbul":   "Turkey",
	"Warsaw":     "Poland",
	"Hanoi":      "Vietnam",
	"Bali":       "Indonesia",
}

// countryFor resolves a destination to a country: via the city table when
// the destination is a known city, else treating the destination itself as
// a country name.
func countryFor(destination string) string {
	if country, ok := cityToCountry[destination]; ok {
		return country
	}
	return destination
}

// PhrasebookFor returns the travel phrasebook for a destination. The
// language fields are empty when the destination resolves to no known
// language — the phrase list is still returned, since the phrases are
// useful untranslated.
func PhrasebookFor(destination string) Phrasebook {
	pb := Phrasebook{
		Destination: destination,
		Phrases:     commonTravelPhrases,
	}

	country := countryFor(destination)
	if lang, ok := languageCodes[country]; ok {
		pb.Country = country
		pb.Language = lang.name
		pb.LanguageCode = lang.code
	}
	return pb
}
