package osm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"huduma_finder/internal/domain"
)

func TestGeocode_AppendsRegionBias(t *testing.T) {
	var gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-6.7588","lon":"39.2764","display_name":"Masaki, Kinondoni, Dar es Salaam, Tanzania"}]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "test-agent", "Dar es Salaam, Tanzania", 100, zerolog.Nop())
	loc, err := n.Geocode(context.Background(), "masaki peninsula")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if gotQ != "masaki peninsula, Dar es Salaam, Tanzania" {
		t.Fatalf("expected biased query, got %q", gotQ)
	}
	if loc.Latitude != -6.7588 || loc.Longitude != 39.2764 {
		t.Fatalf("unexpected coordinates: %+v", loc)
	}
	if loc.Name != "Masaki Peninsula" {
		t.Fatalf("expected title-cased name, got %q", loc.Name)
	}
	if loc.Landmark != "Masaki" {
		t.Fatalf("expected leading display-name segment, got %q", loc.Landmark)
	}
}

func TestGeocode_SkipsBiasWhenRegionMentioned(t *testing.T) {
	var gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Write([]byte(`[{"lat":"-6.8","lon":"39.28","display_name":"Kariakoo"}]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "test-agent", "Dar es Salaam, Tanzania", 100, zerolog.Nop())
	if _, err := n.Geocode(context.Background(), "Kariakoo, Dar es Salaam"); err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if gotQ != "Kariakoo, Dar es Salaam" {
		t.Fatalf("bias must not be stacked on a regional query, got %q", gotQ)
	}
}

func TestGeocode_EmptyResultIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "test-agent", "", 100, zerolog.Nop())
	if _, err := n.Geocode(context.Background(), "atlantis"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeocode_RetriesTransientFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"lat":"-6.8","lon":"39.28","display_name":"Posta"}]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "test-agent", "", 100, zerolog.Nop())
	loc, err := n.Geocode(context.Background(), "posta")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if hits != 2 {
		t.Fatalf("expected 2 attempts, got %d", hits)
	}
	if loc.Landmark != "Posta" {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"display_name":"Samora Avenue, Ilala, Dar es Salaam"}`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "test-agent", "", 100, zerolog.Nop())
	name, err := n.ReverseGeocode(context.Background(), -6.8162, 39.2894)
	if err != nil {
		t.Fatalf("ReverseGeocode: %v", err)
	}
	if name != "Samora Avenue, Ilala, Dar es Salaam" {
		t.Fatalf("unexpected name %q", name)
	}
}
