package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"huduma_finder/internal/domain"
)

// Resolver turns noisy location text into coordinates. Resolution is a
// total function: gazetteer first, then the external geocoder, then a
// fixed default. The conversation never dead-ends on a place the
// resolver does not know.
type Resolver struct {
	gazetteer *Gazetteer
	geocoder  domain.Geocoder
	cache     domain.Cache // optional; nil disables caching
	fallback  domain.Location
	cacheTTL  int
}

func NewResolver(g *Gazetteer, geo domain.Geocoder, cache domain.Cache, cacheTTLSec int) *Resolver {
	return &Resolver{
		gazetteer: g,
		geocoder:  geo,
		cache:     cache,
		fallback:  DefaultLocation(),
		cacheTTL:  cacheTTLSec,
	}
}

// Resolve returns the best location for the given text. It never
// returns an error; a resolution miss lands on the default location.
func (r *Resolver) Resolve(ctx context.Context, text string) domain.Location {
	norm := strings.ToLower(strings.TrimSpace(text))

	if loc, ok := r.gazetteer.Lookup(norm); ok {
		return loc
	}

	if loc, ok := r.geocodeCached(ctx, norm); ok {
		return loc
	}

	log.Debug().Str("text", norm).Msg("location resolution miss, using default")
	return r.fallback
}

// geocodeCached consults the cache by exact normalized text before
// calling the external geocoder. Caching is best-effort; cache errors
// are ignored and failures are never cached.
func (r *Resolver) geocodeCached(ctx context.Context, norm string) (domain.Location, bool) {
	if r.geocoder == nil || norm == "" {
		return domain.Location{}, false
	}

	key := "geocode:" + norm
	if r.cache != nil {
		var loc domain.Location
		if ok, _ := r.cache.Get(ctx, key, &loc); ok {
			return loc, true
		}
	}

	loc, err := r.geocoder.Geocode(ctx, norm)
	if err != nil {
		log.Warn().Err(err).Str("text", norm).Msg("geocode failed")
		return domain.Location{}, false
	}
	if loc == nil {
		return domain.Location{}, false
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, key, *loc, r.cacheTTL)
	}
	return *loc, true
}

// ReverseResolve maps GPS-shared coordinates to a display name, or ""
// when the geocoder has nothing. Failures are swallowed.
func (r *Resolver) ReverseResolve(ctx context.Context, lat, lon float64) string {
	if r.geocoder == nil {
		return ""
	}
	name, err := r.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("reverse geocode failed")
		return ""
	}
	return name
}
