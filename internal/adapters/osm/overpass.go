package osm

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"huduma_finder/internal/domain"
)

// OverpassConfig carries the tunables for the Overpass POI source.
type OverpassConfig struct {
	BaseURL    string
	UserAgent  string
	RPS        int
	TZSPerUSD  float64
	MaxResults int
}

// Overpass finds service providers by querying OpenStreetMap elements
// inside a bounding box around the caller's location. Elements without
// a name tag are dropped; OSM rarely carries pricing, so each provider
// gets a per-service estimate instead.
type Overpass struct {
	core    *httpCore
	base    string
	tzsRate float64
	max     int
	log     zerolog.Logger
}

func NewOverpass(cfg OverpassConfig, log zerolog.Logger) *Overpass {
	if cfg.TZSPerUSD <= 0 {
		cfg.TZSPerUSD = 2300
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 20
	}
	return &Overpass{
		core:    newHTTPCore("overpass", cfg.UserAgent, cfg.RPS),
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		tzsRate: cfg.TZSPerUSD,
		max:     cfg.MaxResults,
		log:     log.With().Str("component", "overpass").Logger(),
	}
}

// overpassSelectors maps a service type to the OSM tag filters that
// identify it. Order matters only for readability of the query.
var overpassSelectors = map[string][]string{
	"restaurant":  {`["amenity"="restaurant"]`, `["amenity"="fast_food"]`, `["amenity"="cafe"]`},
	"medical":     {`["amenity"="hospital"]`, `["amenity"="clinic"]`, `["amenity"="doctors"]`, `["amenity"="pharmacy"]`},
	"auto_repair": {`["shop"="car_repair"]`, `["shop"="tyres"]`, `["amenity"="fuel"]`},
	"hair_salon":  {`["shop"="hairdresser"]`, `["shop"="beauty"]`},
	"plumbing":    {`["craft"="plumber"]`, `["shop"="hardware"]`},
	"electrical":  {`["craft"="electrician"]`, `["shop"="electronics"]`},
	"cleaning":    {`["shop"="laundry"]`, `["shop"="dry_cleaning"]`},
	"tutoring":    {`["amenity"="school"]`, `["amenity"="library"]`},
}

// tzsEstimates holds typical price ranges per service in Tanzanian
// shillings. They are converted to USD at the configured rate because
// OSM elements carry no price data of their own.
var tzsEstimates = map[string]domain.PriceRange{
	"restaurant":  {Min: 11500, Max: 57500},
	"medical":     {Min: 23000, Max: 230000},
	"auto_repair": {Min: 46000, Max: 460000},
	"hair_salon":  {Min: 11500, Max: 115000},
	"plumbing":    {Min: 23000, Max: 184000},
	"electrical":  {Min: 23000, Max: 184000},
	"cleaning":    {Min: 11500, Max: 92000},
	"tutoring":    {Min: 11500, Max: 69000},
}

var defaultEstimateTZS = domain.PriceRange{Min: 23000, Max: 230000}

func (o *Overpass) FindProviders(ctx context.Context, serviceType string, origin domain.Location, radiusKm float64) ([]domain.Provider, error) {
	selectors, ok := overpassSelectors[serviceType]
	if !ok {
		// Unknown service types fall through to the next source.
		return nil, nil
	}
	if radiusKm <= 0 {
		radiusKm = 10
	}

	query := buildQuery(selectors, origin, radiusKm)
	form := url.Values{}
	form.Set("data", query)

	var resp overpassResponse
	if err := o.core.getJSON(ctx, "interpreter", o.base+"/api/interpreter", form, &resp); err != nil {
		return nil, fmt.Errorf("overpass query: %w", err)
	}

	price := o.estimateUSD(serviceType)
	seen := make(map[string]struct{}, len(resp.Elements))
	var out []domain.Provider
	for _, el := range resp.Elements {
		p, ok := o.toProvider(el, serviceType, origin, radiusKm, price)
		if !ok {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
		if len(out) >= o.max {
			break
		}
	}

	o.log.Debug().Str("service", serviceType).Int("elements", len(resp.Elements)).Int("kept", len(out)).Msg("overpass results")
	return out, nil
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (o *Overpass) toProvider(el overpassElement, serviceType string, origin domain.Location, radiusKm float64, price domain.PriceRange) (domain.Provider, bool) {
	name := strings.TrimSpace(el.Tags["name"])
	if name == "" {
		return domain.Provider{}, false
	}

	lat, lon := el.Lat, el.Lon
	if el.Center != nil {
		lat, lon = el.Center.Lat, el.Center.Lon
	}
	if lat == 0 && lon == 0 {
		return domain.Provider{}, false
	}

	loc := domain.Location{Latitude: lat, Longitude: lon, Name: name}
	d := domain.DistanceKm(origin, loc)
	if d > radiusKm {
		// Bounding-box corners reach past the radius; trim them here.
		return domain.Provider{}, false
	}

	contact := el.Tags["phone"]
	if contact == "" {
		contact = el.Tags["contact:phone"]
	}

	return domain.Provider{
		ID:             fmt.Sprintf("osm_%s_%d", el.Type, el.ID),
		Name:           name,
		ServiceType:    serviceType,
		Location:       loc,
		PriceRange:     price,
		Rating:         4.0,
		Description:    describe(el.Tags, serviceType),
		Accessibility:  domain.AccessibilityFor(d),
		ContactInfo:    contact,
		OperatingHours: el.Tags["opening_hours"],
	}, true
}

// estimateUSD converts the per-service TZS estimate to whole USD.
func (o *Overpass) estimateUSD(serviceType string) domain.PriceRange {
	tzs, ok := tzsEstimates[serviceType]
	if !ok {
		tzs = defaultEstimateTZS
	}
	return domain.PriceRange{
		Min: math.Round(tzs.Min / o.tzsRate),
		Max: math.Round(tzs.Max / o.tzsRate),
	}
}

func describe(tags map[string]string, serviceType string) string {
	if c := tags["cuisine"]; c != "" {
		return strings.ReplaceAll(c, ";", ", ") + " " + strings.ReplaceAll(serviceType, "_", " ")
	}
	if d := tags["description"]; d != "" {
		return d
	}
	return strings.ReplaceAll(serviceType, "_", " ")
}

// buildQuery assembles an Overpass QL query covering nodes, ways and
// relations for every selector, with "out center" so areas come back
// with a usable coordinate.
func buildQuery(selectors []string, origin domain.Location, radiusKm float64) string {
	s, w, n, e := boundingBox(origin, radiusKm)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, sel := range selectors {
		for _, typ := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&b, "  %s%s(%.6f,%.6f,%.6f,%.6f);\n", typ, sel, s, w, n, e)
		}
	}
	b.WriteString(");\nout center;")
	return b.String()
}

// boundingBox returns (south, west, north, east) for a square of
// roughly radiusKm half-width around the origin.
func boundingBox(origin domain.Location, radiusKm float64) (s, w, n, e float64) {
	dLat := radiusKm / 110.574
	dLon := radiusKm / (111.320 * math.Cos(origin.Latitude*math.Pi/180))
	return origin.Latitude - dLat, origin.Longitude - dLon,
		origin.Latitude + dLat, origin.Longitude + dLon
}
