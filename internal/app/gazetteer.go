package app

import (
	"strings"

	"huduma_finder/internal/domain"
)

// GazetteerEntry maps a canonical place key (plus aliases) to
// coordinates. Matching is case-insensitive substring containment, so
// "I'm in kariakoo right now" resolves the same as "Kariakoo".
type GazetteerEntry struct {
	Key      string
	Aliases  []string
	Location domain.Location
}

// Gazetteer is an ordered, immutable lookup table of known places.
// Order matters: the first matching entry wins, which keeps resolution
// deterministic when aliases overlap.
type Gazetteer struct {
	entries []GazetteerEntry
}

func NewGazetteer(entries []GazetteerEntry) *Gazetteer {
	return &Gazetteer{entries: entries}
}

// Lookup scans entries in declaration order and returns the first one
// whose key (with or without spaces) or any alias is contained in the
// normalized input.
func (g *Gazetteer) Lookup(text string) (domain.Location, bool) {
	norm := strings.ToLower(strings.TrimSpace(text))
	if norm == "" {
		return domain.Location{}, false
	}
	for _, e := range g.entries {
		if strings.Contains(norm, e.Key) ||
			strings.Contains(norm, strings.ReplaceAll(e.Key, " ", "")) {
			return e.Location, true
		}
		for _, a := range e.Aliases {
			if strings.Contains(norm, a) {
				return e.Location, true
			}
		}
	}
	return domain.Location{}, false
}

func place(lat, lon float64, name, landmark string) domain.Location {
	return domain.Location{Latitude: lat, Longitude: lon, Name: name, Landmark: landmark}
}

// DefaultGazetteer covers Tanzania's major cities, Dar es Salaam
// districts and well-known landmarks. Cities come first so that, e.g.,
// "dar es salaam" resolves to the city rather than one of its areas.
func DefaultGazetteer() *Gazetteer {
	return NewGazetteer([]GazetteerEntry{
		// Major cities
		{Key: "dar es salaam", Aliases: []string{"dar city"}, Location: place(-6.7924, 39.2083, "Dar Es Salaam", "Dar Es Salaam")},
		{Key: "dodoma", Location: place(-6.1730, 35.7419, "Dodoma", "Dodoma")},
		{Key: "mwanza", Location: place(-2.5167, 32.9000, "Mwanza", "Mwanza")},
		{Key: "arusha", Location: place(-3.3667, 36.6833, "Arusha", "Arusha")},
		{Key: "mbeya", Location: place(-8.9000, 33.4500, "Mbeya", "Mbeya")},
		{Key: "morogoro", Location: place(-6.8167, 37.6667, "Morogoro", "Morogoro")},
		{Key: "tanga", Location: place(-5.0667, 39.1000, "Tanga", "Tanga")},
		{Key: "kigoma", Location: place(-4.8833, 29.6333, "Kigoma", "Kigoma")},
		{Key: "tabora", Location: place(-5.0167, 32.8000, "Tabora", "Tabora")},
		{Key: "iringa", Location: place(-7.7667, 35.7000, "Iringa", "Iringa")},
		{Key: "singida", Location: place(-4.8167, 34.7500, "Singida", "Singida")},
		{Key: "musoma", Location: place(-1.5000, 33.8000, "Musoma", "Musoma")},
		{Key: "songea", Location: place(-10.6833, 35.6500, "Songea", "Songea")},
		{Key: "mpanda", Location: place(-6.3667, 31.0500, "Mpanda", "Mpanda")},

		// Dar es Salaam districts and areas
		{Key: "kinondoni", Location: place(-6.7667, 39.1667, "Kinondoni", "Dar es Salaam - Kinondoni")},
		{Key: "ilala", Location: place(-6.8167, 39.1833, "Ilala", "Dar es Salaam - Ilala")},
		{Key: "temeke", Location: place(-6.8667, 39.2500, "Temeke", "Dar es Salaam - Temeke")},
		{Key: "ubungo", Location: place(-6.7833, 39.2333, "Ubungo", "Dar es Salaam - Ubungo")},
		{Key: "kigamboni", Location: place(-6.8333, 39.3167, "Kigamboni", "Dar es Salaam - Kigamboni")},
		{Key: "masaki", Location: place(-6.7333, 39.2833, "Masaki", "Dar es Salaam - Masaki")},
		{Key: "mikocheni", Location: place(-6.7667, 39.2333, "Mikocheni", "Dar es Salaam - Mikocheni")},
		{Key: "mlimani city", Aliases: []string{"mlimani"}, Location: place(-6.7667, 39.2167, "Mlimani City", "Dar es Salaam - Mlimani City")},
		{Key: "posta", Location: place(-6.8167, 39.2833, "Posta", "Dar es Salaam - Posta")},
		{Key: "jamhuri", Location: place(-6.8000, 39.2833, "Jamhuri", "Dar es Salaam - Jamhuri")},
		{Key: "mnazi mmoja", Location: place(-6.8167, 39.2833, "Mnazi Mmoja", "Dar es Salaam - Mnazi Mmoja")},
		{Key: "kariakoo", Aliases: []string{"kariakoo market"}, Location: place(-6.8167, 39.2667, "Kariakoo", "Dar es Salaam - Kariakoo")},
		{Key: "uhuru road", Location: place(-6.8167, 39.2833, "Uhuru Road", "Dar es Salaam - Uhuru Road")},
		{Key: "samora avenue", Location: place(-6.8167, 39.2833, "Samora Avenue", "Dar es Salaam - Samora Avenue")},
		{Key: "kilimanjaro avenue", Location: place(-6.8167, 39.2833, "Kilimanjaro Avenue", "Dar es Salaam - Kilimanjaro Avenue")},
		{Key: "azikiwe street", Location: place(-6.8167, 39.2833, "Azikiwe Street", "Dar es Salaam - Azikiwe Street")},

		// Landmarks
		{Key: "julius nyerere international airport", Aliases: []string{"nyerere airport", "dar airport", "airport"}, Location: place(-6.8781, 39.2026, "Julius Nyerere International Airport", "Julius Nyerere International Airport")},
		{Key: "port of dar es salaam", Aliases: []string{"the port", "harbour"}, Location: place(-6.8167, 39.2833, "Port Of Dar Es Salaam", "Port Of Dar Es Salaam")},
		{Key: "national museum", Location: place(-6.1667, 39.2167, "National Museum", "National Museum")},
		{Key: "state house", Location: place(-6.8000, 39.2833, "State House", "State House")},
		{Key: "uhuru monument", Location: place(-6.8167, 39.2833, "Uhuru Monument", "Uhuru Monument")},
		{Key: "slipway", Location: place(-6.8167, 39.2833, "Slipway", "Slipway")},
		{Key: "garden avenue", Location: place(-6.8167, 39.2833, "Garden Avenue", "Garden Avenue")},
	})
}

// DefaultLocation is where resolution lands when both the gazetteer and
// the geocoder come up empty: Dar es Salaam city centre. The dialogue
// must always progress, so resolution never fails.
func DefaultLocation() domain.Location {
	return domain.Location{
		Latitude:  -6.7924,
		Longitude: 39.2083,
		Name:      "Dar es Salaam",
		Landmark:  "Central Business District",
	}
}
