package activity

import (
	"regexp"
	"strings"
)

// cityLandmarks is the static gazetteer of well-known landmarks per
// destination, used for location inference. Iteration order is fixed so
// inference is deterministic: first matching landmark wins.
var cityLandmarks = []struct {
	city      string
	landmarks []string
}{
	{"Paris", []string{
		"Eiffel Tower", "Louvre", "Notre Dame", "Arc de Triomphe", "Montmartre",
		"Champs-Élysées", "Seine", "Sacré-Cœur", "Panthéon", "Musée d'Orsay",
		"Versailles", "Tuileries", "Pompidou", "Luxembourg Gardens",
	}},
	{"London", []string{
		"Big Ben", "Tower of London", "Buckingham Palace", "London Eye", "British Museum",
		"Westminster Abbey", "Hyde Park", "St. Paul's Cathedral", "Trafalgar Square",
		"Piccadilly Circus", "Covent Garden", "Tate Modern", "Thames",
	}},
	{"New York", []string{
		"Times Square", "Central Park", "Empire State Building", "Statue of Liberty",
		"Brooklyn Bridge", "Broadway", "Fifth Avenue", "Museum of Modern Art", "MoMA",
		"Grand Central", "Rockefeller Center", "Wall Street", "High Line",
	}},
	{"Tokyo", []string{
		"Tokyo Tower", "Shibuya", "Shinjuku", "Ginza", "Akihabara", "Imperial Palace",
		"Meiji Shrine", "Harajuku", "Asakusa", "Senso-ji", "Ueno Park", "Tokyo Skytree",
	}},
	{"Rome", []string{
		"Colosseum", "Vatican", "Trevi Fountain", "Pantheon", "Spanish Steps",
		"Roman Forum", "St. Peter's Basilica", "Sistine Chapel", "Piazza Navona",
	}},
}

// verbPhraseRe matches activity phrasings like "Visit the Eiffel Tower" or
// "Exploring Montmartre". Bare prepositions are deliberately absent from
// the verb list — "Relax at the hotel pool" is not a location hint.
var verbPhraseRe = regexp.MustCompile(
	`(?i)\b(?:visit(?:ing)?|go(?:ing)? to|explor(?:e|ing)|see(?:ing)?|tour(?:ing)?|walk(?:ing)?(?: around)?)\s+(?:the\s+)?([\w\s'-]+)`)

// inClauseRe matches a trailing "in <place>" qualifier, which names the
// city rather than the spot itself and is dropped from the capture.
var inClauseRe = regexp.MustCompile(`(?i)\s+in\s+[\w\s]+$`)

// landmarkNouns are generic nouns that usually name a visitable place.
var landmarkNouns = []string{
	"museum", "park", "tower", "palace", "castle", "cathedral", "temple",
	"garden", "square", "market", "bridge", "monument", "statue",
}

// nounPhraseRes maps each landmark noun to a pattern capturing the phrase
// around it, built once at package init.
var nounPhraseRes = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(landmarkNouns))
	for _, noun := range landmarkNouns {
		m[noun] = regexp.MustCompile(`(?i)([\w\s'-]+` + noun + `[\w\s'-]*)`)
	}
	return m
}()

// InferLocation guesses a location from plain activity text, for display
// and map purposes only. It tries, in order: a gazetteer landmark
// substring, a verb phrase ("Visit the ..."), and a generic landmark noun
// ("... museum ..."). First match wins. The result is approximate — a UI
// hint, not a geocode — and callers must never persist it into the
// activity string.
func InferLocation(text string) (string, bool) {
	lower := strings.ToLower(text)

	for _, entry := range cityLandmarks {
		for _, landmark := range entry.landmarks {
			if strings.Contains(lower, strings.ToLower(landmark)) {
				return landmark, true
			}
		}
	}

	if m := verbPhraseRe.FindStringSubmatch(text); m != nil {
		phrase := strings.TrimSpace(inClauseRe.ReplaceAllString(m[1], ""))
		if len(phrase) > 3 {
			return phrase, true
		}
	}

	for _, noun := range landmarkNouns {
		if !strings.Contains(lower, noun) {
			continue
		}
		if m := nounPhraseRes[noun].FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}

	return "", false
}
