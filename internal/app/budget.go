package app

import (
	"regexp"
	"strconv"
	"strings"

	"huduma_finder/internal/domain"
)

// BudgetBands holds the configurable budget boundaries. LowMax and
// MidMax double as categorization thresholds and as the edges of the
// fixed bands the parser hands out.
type BudgetBands struct {
	LowMax     float64
	MidMax     float64
	PremiumCap float64
}

func DefaultBudgetBands() BudgetBands {
	return BudgetBands{LowMax: 50, MidMax: 150, PremiumCap: 1000}
}

// Categorize buckets a price range by its midpoint. Display-only: the
// budget overlap filter never looks at bands.
func (b BudgetBands) Categorize(p domain.PriceRange) domain.BudgetBand {
	switch mid := p.Mid(); {
	case mid <= b.LowMax:
		return domain.BandLowCost
	case mid <= b.MidMax:
		return domain.BandMidRange
	default:
		return domain.BandPremium
	}
}

func (b BudgetBands) low() domain.PriceRange     { return domain.PriceRange{Min: 0, Max: b.LowMax} }
func (b BudgetBands) mid() domain.PriceRange     { return domain.PriceRange{Min: b.LowMax, Max: b.MidMax} }
func (b BudgetBands) premium() domain.PriceRange { return domain.PriceRange{Min: b.MidMax, Max: b.PremiumCap} }

var firstInteger = regexp.MustCompile(`\d+`)

// ParseBudget interprets a budget phrase. nil means "no preference".
// This is a best-effort heuristic, not a grammar: ambiguous phrasing
// silently degrades to no preference rather than erroring.
func (b BudgetBands) ParseBudget(text string) *domain.PriceRange {
	msg := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(msg, "no preference"),
		strings.Contains(msg, "any"),
		strings.Contains(msg, "doesn't matter"),
		strings.Contains(msg, "doesnt matter"):
		return nil
	case strings.Contains(msg, "low"),
		strings.Contains(msg, "under"),
		strings.Contains(msg, "cheap"):
		r := b.low()
		return &r
	case strings.Contains(msg, "mid"), strings.Contains(msg, "medium"):
		r := b.mid()
		return &r
	case strings.Contains(msg, "premium"), strings.Contains(msg, "expensive"):
		r := b.premium()
		return &r
	}

	// Fall back to the first integer token as an upper bound.
	if m := firstInteger.FindString(msg); m != "" {
		if max, err := strconv.ParseFloat(m, 64); err == nil {
			return &domain.PriceRange{Min: 0, Max: max}
		}
	}
	return nil
}
