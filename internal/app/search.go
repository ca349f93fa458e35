package app

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"huduma_finder/internal/domain"
)

// SearchConfig carries the tunables of the candidate search.
type SearchConfig struct {
	DefaultRadiusKm float64
	BroadenFactor   float64 // broadened retry radius multiplier
	MaxCandidates   int
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{DefaultRadiusKm: 10, BroadenFactor: 2.0, MaxCandidates: 20}
}

// SearchService turns (service type, origin, budget) into a distance-
// sorted, budget-filtered provider list. Its single collaborator is a
// ProviderSource; any collaborator failure is treated as zero
// candidates, never surfaced to the caller.
type SearchService struct {
	source domain.ProviderSource
	cfg    SearchConfig
}

func NewSearchService(source domain.ProviderSource, cfg SearchConfig) *SearchService {
	if cfg.DefaultRadiusKm <= 0 {
		cfg.DefaultRadiusKm = 10
	}
	if cfg.BroadenFactor <= 1 {
		cfg.BroadenFactor = 2.0
	}
	return &SearchService{source: source, cfg: cfg}
}

// Search runs one filtered query; when that yields nothing it re-issues
// exactly one broadened, budget-free query and returns that result
// as-is. radiusKm <= 0 selects the configured default radius.
func (s *SearchService) Search(ctx context.Context, serviceType string, origin domain.Location, radiusKm float64, budget *domain.PriceRange) []domain.Provider {
	if radiusKm <= 0 {
		radiusKm = s.cfg.DefaultRadiusKm
	}

	results := s.query(ctx, serviceType, origin, radiusKm, budget)
	if len(results) > 0 {
		return results
	}

	broadened := radiusKm * s.cfg.BroadenFactor
	log.Debug().
		Str("service", serviceType).
		Float64("radius_km", broadened).
		Msg("empty result set, broadening search")
	return s.query(ctx, serviceType, origin, broadened, nil)
}

func (s *SearchService) query(ctx context.Context, serviceType string, origin domain.Location, radiusKm float64, budget *domain.PriceRange) []domain.Provider {
	candidates, err := s.source.FindProviders(ctx, serviceType, origin, radiusKm)
	if err != nil {
		log.Warn().Err(err).Str("service", serviceType).Msg("provider source failed, treating as empty")
		return nil
	}

	// The source's own radius may be approximate; re-check distances.
	kept := candidates[:0:0]
	for _, p := range candidates {
		if domain.DistanceKm(origin, p.Location) > radiusKm {
			continue
		}
		if budget != nil && !p.PriceRange.Overlaps(*budget) {
			continue
		}
		kept = append(kept, p)
	}

	// Ascending by distance; stable so the source's order breaks ties.
	sort.SliceStable(kept, func(i, j int) bool {
		return domain.DistanceKm(origin, kept[i].Location) < domain.DistanceKm(origin, kept[j].Location)
	})

	if s.cfg.MaxCandidates > 0 && len(kept) > s.cfg.MaxCandidates {
		kept = kept[:s.cfg.MaxCandidates]
	}
	return kept
}
