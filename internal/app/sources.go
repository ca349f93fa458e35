package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"huduma_finder/internal/domain"
)

// ChainedSource queries the live POI source first and falls back to the
// curated directory when the live source errors or returns nothing. The
// search engine still sees exactly one collaborator. Either leg may be
// nil.
type ChainedSource struct {
	live      domain.ProviderSource
	directory domain.ProviderDirectory
}

func NewChainedSource(live domain.ProviderSource, directory domain.ProviderDirectory) *ChainedSource {
	return &ChainedSource{live: live, directory: directory}
}

func (c *ChainedSource) FindProviders(ctx context.Context, serviceType string, origin domain.Location, radiusKm float64) ([]domain.Provider, error) {
	if c.live != nil {
		ps, err := c.live.FindProviders(ctx, serviceType, origin, radiusKm)
		if err != nil {
			log.Warn().Err(err).Str("service", serviceType).Msg("live provider source failed, trying directory")
		} else if len(ps) > 0 {
			return ps, nil
		}
	}

	if c.directory == nil {
		return nil, nil
	}
	ps, err := c.directory.FindProviders(ctx, serviceType, origin, radiusKm)
	if err != nil {
		log.Warn().Err(err).Str("service", serviceType).Msg("provider directory failed")
		return nil, nil
	}
	if len(ps) == 0 {
		// Best-effort: remember what users looked for and did not find.
		_ = c.directory.LogMiss(ctx, serviceType, "no candidates")
	}
	return ps, nil
}
