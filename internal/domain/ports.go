package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by lookups that came up empty.
var ErrNotFound = errors.New("not found")

// Geocoder resolves free text to coordinates and back. Implementations
// may fail; callers treat any failure as "no result".
type Geocoder interface {
	Geocode(ctx context.Context, text string) (*Location, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// ProviderSource produces candidate providers for a service type near
// an origin. The radius is advisory: the search engine re-checks
// distances itself. Implementations may fail; the engine treats any
// failure as zero candidates.
type ProviderSource interface {
	FindProviders(ctx context.Context, serviceType string, origin Location, radiusKm float64) ([]Provider, error)
}

// ProviderDirectory is a writable curated provider store. It doubles as
// a ProviderSource (the fallback behind the live POI source) and keeps
// a log of searches that found nothing.
type ProviderDirectory interface {
	ProviderSource
	UpsertProvider(ctx context.Context, p Provider) error
	LogMiss(ctx context.Context, serviceType, reason string) error
}

// Cache is a best-effort JSON blob cache.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SessionStore keeps one Session per conversation identity. Get returns
// (zero, false, nil) when no session exists yet.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Put(ctx context.Context, id string, s Session) error
}
