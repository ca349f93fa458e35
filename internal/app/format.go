package app

import (
	"fmt"
	"strings"

	"huduma_finder/internal/domain"
)

// Formatter renders providers and prompts into user-facing text. It is
// a thin layer over the data model: no state, no decisions beyond
// presentation.
type Formatter struct {
	bands    BudgetBands
	pageSize int
}

func NewFormatter(bands BudgetBands, pageSize int) *Formatter {
	if pageSize <= 0 {
		pageSize = 3
	}
	return &Formatter{bands: bands, pageSize: pageSize}
}

const welcomeText = `👋 Hi! I'm your location-based service finder.

I can help you find nearby service providers like auto repair shops, medical clinics, hair salons, restaurants, and more.

To get started, could you share your current location?
You can tell me:
• Your town/city name
• A nearby landmark
• Or GPS coordinates (latitude, longitude)

What's your location?`

const serviceMenuText = `• Auto repair
• Medical clinic
• Hair salon
• Restaurant
• Plumbing
• Electrical
• Cleaning
• Tutoring
• Other (please specify)`

const noResultsText = `Sorry, I couldn't find any providers for that service in your area.

Would you like to:
1. Try a different service type
2. Search in a different location
3. Or let me know what you're looking for specifically?`

const resultsFooterText = `Would you like to:
• Compare options (type "compare")
• Get more details about a specific option (type the number)
• See more results (type "more")
• Start a new search (type "new")

What would you like to do?`

const resultsHelpText = `Please choose:
• "compare" to compare options
• "more" to see additional results
• A number (1, 2, 3, etc.) for more details about that option
• "new" to start a new search`

const detailsHelpText = `Please choose:
• "call" to call the provider
• "directions" to get directions
• "compare" to compare with other options
• "back" to return to results
• "new" for a new search`

const invalidOptionText = `Invalid option number. Please choose a valid number from the list.`

const compareHelpText = `Please type a valid option number or "back" to return.`

func (f *Formatter) Welcome() string { return welcomeText }

func (f *Formatter) LocationConfirm(loc domain.Location) string {
	return fmt.Sprintf(`✅ Got it! I understand you're near %s.

What service are you looking for? Here are some options:
%s

What service do you need?`, loc.Name, serviceMenuText)
}

func (f *Formatter) BudgetPrompt(service string) string {
	return fmt.Sprintf(`Great! You're looking for %s services.

What's your budget range? (optional - you can say "no preference")
• Low-cost: Under $%.0f
• Mid-range: $%.0f-$%.0f
• Premium: Over $%.0f

Or tell me your maximum budget (e.g., "up to $100")`,
		strings.ReplaceAll(service, "_", " "),
		f.bands.LowMax, f.bands.LowMax, f.bands.MidMax, f.bands.MidMax)
}

func (f *Formatter) NoResults() string { return noResultsText }

func (f *Formatter) InvalidOption() string { return invalidOptionText }

func (f *Formatter) ResultsHelp() string { return resultsHelpText }

func (f *Formatter) DetailsHelp() string { return detailsHelpText }

func (f *Formatter) CompareHelp() string { return compareHelpText }

var accessibilityNotes = map[domain.Accessibility]string{
	domain.AccessWalking:         "🚶 Walking distance",
	domain.AccessPublicTransport: "🚇 Public transport accessible",
	domain.AccessVehicle:         "🚗 Vehicle required",
}

func accessibilityNote(a domain.Accessibility) string {
	if n, ok := accessibilityNotes[a]; ok {
		return n
	}
	return "🚗 Vehicle required"
}

func accessibilityGuide(a domain.Accessibility, distanceKm float64) string {
	switch a {
	case domain.AccessWalking:
		return fmt.Sprintf("This location is within walking distance (%.1f km).", distanceKm)
	case domain.AccessPublicTransport:
		return fmt.Sprintf("Public transportation is recommended to reach this location (%.1f km away).", distanceKm)
	default:
		return fmt.Sprintf("A vehicle is required to reach this destination (%.1f km away).", distanceKm)
	}
}

func (f *Formatter) providerCard(p domain.Provider, origin domain.Location) string {
	d := domain.DistanceKm(origin, p.Location)
	return fmt.Sprintf(`🏢 %s
💰 Price: $%.0f-$%.0f (%s)
📏 Distance: %.1f km from your location
📍 Location: %s (near %s)
%s
⭐ Rating: %.1f/5
🕒 Hours: %s
📞 Contact: %s
📝 %s

`,
		p.Name,
		p.PriceRange.Min, p.PriceRange.Max, f.bands.Categorize(p.PriceRange),
		d,
		p.Location.Name, p.Location.Landmark,
		accessibilityNote(p.Accessibility),
		p.Rating,
		p.OperatingHours,
		p.ContactInfo,
		p.Description)
}

// Results renders the first page of results plus the interaction menu.
func (f *Formatter) Results(results []domain.Provider, origin domain.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d option(s) near you:\n\n", len(results))

	top := results
	if len(top) > f.pageSize {
		top = top[:f.pageSize]
	}
	for i, p := range top {
		fmt.Fprintf(&b, "%d. %s", i+1, f.providerCard(p, origin))
	}
	if rest := len(results) - f.pageSize; rest > 0 {
		fmt.Fprintf(&b, "...and %d more options.\n\n", rest)
	}
	b.WriteString(resultsFooterText)
	return b.String()
}

// MoreResults renders the second page (options pageSize+1 .. 2*pageSize),
// keeping the absolute numbering so numeric selection stays unambiguous.
func (f *Formatter) MoreResults(results []domain.Provider, origin domain.Location) string {
	if len(results) <= f.pageSize {
		return `No more results to show. Type "compare" to compare options or "new" for a new search.`
	}

	var b strings.Builder
	b.WriteString("Here are more options:\n\n")
	end := 2 * f.pageSize
	if end > len(results) {
		end = len(results)
	}
	for i := f.pageSize; i < end; i++ {
		fmt.Fprintf(&b, "%d. %s", i+1, f.providerCard(results[i], origin))
	}
	b.WriteString("\nType a number for more details, \"compare\" to compare, or \"new\" for a new search.")
	return b.String()
}

// Comparison renders an up-to-three-way side-by-side summary.
func (f *Formatter) Comparison(results []domain.Provider, origin domain.Location) string {
	var b strings.Builder
	b.WriteString("📊 Comparing Options:\n\n")

	top := results
	if len(top) > 3 {
		top = top[:3]
	}
	for i, p := range top {
		d := domain.DistanceKm(origin, p.Location)
		fmt.Fprintf(&b, `Option %d: %s
• Price: $%.0f-$%.0f (%s)
• Distance: %.1f km
• Rating: %.1f/5 ⭐
• Accessibility: %s

`,
			i+1, p.Name,
			p.PriceRange.Min, p.PriceRange.Max, f.bands.Categorize(p.PriceRange),
			d,
			p.Rating,
			accessibilityTitle(p.Accessibility))
	}
	b.WriteString(`Which option interests you most? (type the number)
Or type "back" to return to results.`)
	return b.String()
}

// Detail renders the full card for a selected provider.
func (f *Formatter) Detail(p domain.Provider, origin domain.Location) string {
	d := domain.DistanceKm(origin, p.Location)
	return fmt.Sprintf(`📋 Detailed Information:

🏢 %s
💰 Price Range: $%.0f-$%.0f (%s)
⭐ Rating: %.1f/5
📍 Exact Location: %s, near %s
📏 Distance: %.1f km from your location
🚶 Accessibility: %s
🕒 Operating Hours: %s
📞 Contact: %s
📝 Description: %s

Would you like to:
• Call them now (type "call")
• Get directions (type "directions")
• Compare with other options (type "compare")
• Start a new search (type "new")

What would you like to do?`,
		p.Name,
		p.PriceRange.Min, p.PriceRange.Max, f.bands.Categorize(p.PriceRange),
		p.Rating,
		p.Location.Name, p.Location.Landmark,
		d,
		accessibilityGuide(p.Accessibility, d),
		p.OperatingHours,
		p.ContactInfo,
		p.Description)
}

func (f *Formatter) Call(p domain.Provider) string {
	return fmt.Sprintf(`📞 Calling %s at %s...

Type "back" to return to details or "new" for a new search.`, p.Name, p.ContactInfo)
}

func (f *Formatter) Directions(p domain.Provider, origin domain.Location) string {
	d := domain.DistanceKm(origin, p.Location)
	mapsLink := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%f,%f",
		p.Location.Latitude, p.Location.Longitude)
	return fmt.Sprintf(`🗺️ Directions to %s:

📍 Location: %s, near %s
📏 Distance: %.1f km from your location
🚶 Accessibility: %s

🗺️ Google Maps Link:
%s

Type "back" to return to details or "new" for a new search.`,
		p.Name,
		p.Location.Name, p.Location.Landmark,
		d,
		accessibilityTitle(p.Accessibility),
		mapsLink)
}

func accessibilityTitle(a domain.Accessibility) string {
	parts := strings.Split(string(a), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
