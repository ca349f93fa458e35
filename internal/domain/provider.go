package domain

// Accessibility describes how a user is expected to reach a provider.
type Accessibility string

const (
	AccessWalking         Accessibility = "walking"
	AccessPublicTransport Accessibility = "public_transport"
	AccessVehicle         Accessibility = "vehicle"
)

// AccessibilityFor derives an accessibility label from distance alone.
// It is a labeling heuristic for backends that carry no accessibility
// tag of their own, never a filter.
func AccessibilityFor(distanceKm float64) Accessibility {
	switch {
	case distanceKm <= 1.0:
		return AccessWalking
	case distanceKm <= 5.0:
		return AccessPublicTransport
	default:
		return AccessVehicle
	}
}

// PriceRange is a closed price interval with Min <= Max.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Overlaps reports whether the two intervals intersect. The check is
// inclusive at both boundaries: a provider priced exactly at a budget
// edge still qualifies.
func (p PriceRange) Overlaps(budget PriceRange) bool {
	return p.Max >= budget.Min && p.Min <= budget.Max
}

// Mid returns the interval midpoint, used for budget categorization.
func (p PriceRange) Mid() float64 { return (p.Min + p.Max) / 2 }

// BudgetBand is the display-only budget category of a price range.
type BudgetBand string

const (
	BandLowCost  BudgetBand = "low-cost"
	BandMidRange BudgetBand = "mid-range"
	BandPremium  BudgetBand = "premium"
)

// Provider is a service provider candidate produced by a provider
// source per query. It is read-only within the engine and has no
// lifecycle of its own.
type Provider struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	ServiceType   string        `json:"service_type"`
	Location      Location      `json:"location"`
	PriceRange    PriceRange    `json:"price_range"`
	Rating        float64       `json:"rating"`
	Description   string        `json:"description,omitempty"`
	Accessibility Accessibility `json:"accessibility"`
	ContactInfo   string        `json:"contact_info,omitempty"`
	OperatingHours string       `json:"operating_hours,omitempty"`
}
