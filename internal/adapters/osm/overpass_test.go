package osm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"huduma_finder/internal/domain"
)

var dar = domain.Location{Latitude: -6.7924, Longitude: 39.2083, Name: "Dar es Salaam"}

const overpassFixture = `{
  "elements": [
    {"type": "node", "id": 101, "lat": -6.8000, "lon": 39.2100,
     "tags": {"name": "Mamboz Corner BBQ", "amenity": "restaurant", "cuisine": "barbecue;african",
              "contact:phone": "+255 700 000 001", "opening_hours": "Mo-Su 17:00-23:00"}},
    {"type": "node", "id": 102, "lat": -6.8010, "lon": 39.2110,
     "tags": {"amenity": "restaurant"}},
    {"type": "way", "id": 103, "center": {"lat": -6.7950, "lon": 39.2150},
     "tags": {"name": "Harbour View Cafe", "amenity": "cafe", "phone": "+255 700 000 002"}},
    {"type": "node", "id": 104, "lat": -7.2000, "lon": 39.2083,
     "tags": {"name": "Too Far Grill", "amenity": "restaurant"}}
  ]
}`

func newTestOverpass(t *testing.T, handler http.HandlerFunc) *Overpass {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOverpass(OverpassConfig{
		BaseURL:    srv.URL,
		UserAgent:  "test-agent",
		RPS:        100,
		TZSPerUSD:  2300,
		MaxResults: 20,
	}, zerolog.Nop())
}

func TestFindProviders_ParsesElements(t *testing.T) {
	var gotQuery string
	o := newTestOverpass(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotQuery = r.PostFormValue("data")
		w.Write([]byte(overpassFixture))
	})

	got, err := o.FindProviders(context.Background(), "restaurant", dar, 10)
	if err != nil {
		t.Fatalf("FindProviders: %v", err)
	}

	// Unnamed node 102 and out-of-radius node 104 are dropped.
	if len(got) != 2 {
		t.Fatalf("expected 2 providers, got %d: %+v", len(got), got)
	}

	bbq := got[0]
	if bbq.ID != "osm_node_101" || bbq.Name != "Mamboz Corner BBQ" {
		t.Fatalf("unexpected first provider: %+v", bbq)
	}
	if bbq.ContactInfo != "+255 700 000 001" {
		t.Fatalf("expected contact:phone fallback, got %q", bbq.ContactInfo)
	}
	if bbq.OperatingHours != "Mo-Su 17:00-23:00" {
		t.Fatalf("expected opening hours, got %q", bbq.OperatingHours)
	}
	if bbq.Accessibility != domain.AccessWalking {
		t.Fatalf("a sub-km provider should be walkable, got %s", bbq.Accessibility)
	}
	if !strings.Contains(bbq.Description, "barbecue, african") {
		t.Fatalf("expected cuisine in description, got %q", bbq.Description)
	}

	// TZS 11500-57500 at 2300/USD.
	if bbq.PriceRange.Min != 5 || bbq.PriceRange.Max != 25 {
		t.Fatalf("unexpected price estimate: %+v", bbq.PriceRange)
	}

	cafe := got[1]
	if cafe.ID != "osm_way_103" {
		t.Fatalf("way must resolve through its center, got %+v", cafe)
	}
	if cafe.ContactInfo != "+255 700 000 002" {
		t.Fatalf("expected phone tag, got %q", cafe.ContactInfo)
	}

	for _, typ := range []string{"node", "way", "relation"} {
		if !strings.Contains(gotQuery, typ+`["amenity"="restaurant"]`) {
			t.Fatalf("query missing %s selector:\n%s", typ, gotQuery)
		}
	}
	if !strings.Contains(gotQuery, "out center;") {
		t.Fatalf("query must request centers:\n%s", gotQuery)
	}
}

func TestFindProviders_UnknownServiceSkipsRemoteCall(t *testing.T) {
	o := newTestOverpass(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no HTTP call expected for an unmapped service")
	})

	got, err := o.FindProviders(context.Background(), "sushi_place", dar, 10)
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", got, err)
	}
}

func TestFindProviders_CapsResults(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"elements":[`)
	for i := 0; i < 30; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"type":"node","id":` + strconv.Itoa(i) + `,"lat":-6.7930,"lon":39.2090,"tags":{"name":"Shop ` + strconv.Itoa(i) + `"}}`)
	}
	b.WriteString(`]}`)
	body := b.String()

	o := newTestOverpass(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	got, err := o.FindProviders(context.Background(), "restaurant", dar, 10)
	if err != nil {
		t.Fatalf("FindProviders: %v", err)
	}
	if len(got) != 20 {
		t.Fatalf("expected results capped at 20, got %d", len(got))
	}
}
