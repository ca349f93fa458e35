package app

import "strings"

// serviceKeywords maps a canonical service type to the phrases users
// say for it. The slice is ordered: when two services share a keyword
// the one declared first wins, so matching stays deterministic.
type serviceKeywords struct {
	Service  string
	Keywords []string
}

// ServiceMatcher resolves free text to a canonical service type.
type ServiceMatcher struct {
	table []serviceKeywords
}

func NewServiceMatcher(table []serviceKeywords) *ServiceMatcher {
	return &ServiceMatcher{table: table}
}

func DefaultServiceMatcher() *ServiceMatcher {
	return NewServiceMatcher([]serviceKeywords{
		{Service: "auto_repair", Keywords: []string{"auto", "car", "repair", "mechanic", "vehicle", "automotive"}},
		{Service: "medical", Keywords: []string{"medical", "clinic", "doctor", "health", "healthcare", "hospital"}},
		{Service: "hair_salon", Keywords: []string{"hair", "salon", "cut", "style", "barber", "beauty"}},
		{Service: "restaurant", Keywords: []string{"restaurant", "food", "eat", "dining", "cafe", "diner"}},
		{Service: "plumbing", Keywords: []string{"plumbing", "plumber", "pipes", "water", "leak"}},
		{Service: "electrical", Keywords: []string{"electrical", "electrician", "wiring", "power", "lights"}},
		{Service: "cleaning", Keywords: []string{"cleaning", "cleaner", "maid", "housekeeping"}},
		{Service: "tutoring", Keywords: []string{"tutoring", "tutor", "teaching", "lessons", "education"}},
	})
}

// Match returns the first service whose keyword list has a substring
// hit in the input. When nothing matches it falls back to the
// normalized raw text so unknown services still flow through search.
func (m *ServiceMatcher) Match(text string) string {
	norm := strings.ToLower(strings.TrimSpace(text))
	for _, row := range m.table {
		for _, kw := range row.Keywords {
			if strings.Contains(norm, kw) {
				return row.Service
			}
		}
	}
	return strings.ReplaceAll(norm, " ", "_")
}
