package osm

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"huduma_finder/internal/domain"
)

// Nominatim geocodes free-form text against a Nominatim server. A
// regional bias suffix is appended to queries that do not already
// mention the region, which keeps ambiguous street names anchored to
// the service area.
type Nominatim struct {
	core *httpCore
	base string
	bias string
	log  zerolog.Logger
}

func NewNominatim(baseURL, userAgent, bias string, rps int, log zerolog.Logger) *Nominatim {
	return &Nominatim{
		core: newHTTPCore("nominatim", userAgent, rps),
		base: strings.TrimRight(baseURL, "/"),
		bias: bias,
		log:  log.With().Str("component", "nominatim").Logger(),
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (n *Nominatim) Geocode(ctx context.Context, text string) (*domain.Location, error) {
	q := strings.TrimSpace(text)
	if q == "" {
		return nil, domain.ErrNotFound
	}
	low := strings.ToLower(q)
	if n.bias != "" && !strings.Contains(low, "tanzania") && !strings.Contains(low, "dar es salaam") {
		q = q + ", " + n.bias
	}

	v := url.Values{}
	v.Set("q", q)
	v.Set("format", "json")
	v.Set("limit", "1")

	var places []nominatimPlace
	if err := n.core.getJSON(ctx, "search", n.base+"/search?"+v.Encode(), nil, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, domain.ErrNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, err
	}

	loc := &domain.Location{
		Latitude:  lat,
		Longitude: lon,
		Name:      titleCase(text),
		Landmark:  firstSegment(places[0].DisplayName),
	}
	n.log.Debug().Str("query", text).Float64("lat", lat).Float64("lon", lon).Msg("geocoded")
	return loc, nil
}

func (n *Nominatim) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	v := url.Values{}
	v.Set("format", "json")
	v.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	v.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))

	var place nominatimPlace
	if err := n.core.getJSON(ctx, "reverse", n.base+"/reverse?"+v.Encode(), nil, &place); err != nil {
		return "", err
	}
	if place.DisplayName == "" {
		return "", domain.ErrNotFound
	}
	return place.DisplayName, nil
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// firstSegment takes the leading comma-separated part of a Nominatim
// display name, which is usually the most specific label.
func firstSegment(displayName string) string {
	if i := strings.IndexByte(displayName, ','); i >= 0 {
		return strings.TrimSpace(displayName[:i])
	}
	return strings.TrimSpace(displayName)
}
