package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpserver "huduma_finder/internal/adapters/http_server"
	"huduma_finder/internal/app"
	"huduma_finder/internal/domain"
)

type memSessions struct{ m map[string]domain.Session }

func (s *memSessions) Get(_ context.Context, id string) (domain.Session, bool, error) {
	sess, ok := s.m[id]
	return sess, ok, nil
}

func (s *memSessions) Put(_ context.Context, id string, sess domain.Session) error {
	if s.m == nil {
		s.m = map[string]domain.Session{}
	}
	s.m[id] = sess
	return nil
}

type staticSource struct{ providers []domain.Provider }

func (s *staticSource) FindProviders(_ context.Context, _ string, _ domain.Location, _ float64) ([]domain.Provider, error) {
	return s.providers, nil
}

func newChatServer(t *testing.T, providers []domain.Provider) (*httptest.Server, *memSessions) {
	t.Helper()
	bands := app.DefaultBudgetBands()
	engine := app.NewEngine(
		app.NewResolver(app.DefaultGazetteer(), nil, nil, 900),
		app.NewSearchService(&staticSource{providers: providers}, app.SearchConfig{DefaultRadiusKm: 10, BroadenFactor: 2, MaxCandidates: 20}),
		app.DefaultServiceMatcher(),
		app.NewFormatter(bands, 3),
		bands,
	)

	store := &memSessions{}
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Engine: engine, Sessions: store})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts, store
}

func postChat(t *testing.T, url, sessionID, message string) (int, map[string]string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"session_id": sessionID, "message": message})
	resp, err := http.Post(url+"/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/chat: %v", err)
	}
	defer resp.Body.Close()
	var out map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestChat_FullConversationOverHTTP(t *testing.T) {
	loc := domain.Location{Latitude: -6.758, Longitude: 39.277, Name: "Masaki Grill"}
	ts, store := newChatServer(t, []domain.Provider{
		{ID: "p1", Name: "Masaki Grill", ServiceType: "restaurant", Location: loc,
			PriceRange: domain.PriceRange{Min: 10, Max: 40}, Rating: 4.2},
	})

	steps := []struct {
		message   string
		wantState string
	}{
		{"hi", string(domain.StateAskLocation)},
		{"Masaki", string(domain.StateAskService)},
		{"restaurant", string(domain.StateAskBudget)},
		{"no preference", string(domain.StateShowResults)},
	}
	for _, step := range steps {
		code, out := postChat(t, ts.URL, "user-1", step.message)
		if code != http.StatusOK {
			t.Fatalf("message %q: status %d", step.message, code)
		}
		if out["state"] != step.wantState {
			t.Fatalf("message %q: state %q, want %q", step.message, out["state"], step.wantState)
		}
	}

	sess := store.m["user-1"]
	if len(sess.SearchResults) != 1 || sess.SearchResults[0].ID != "p1" {
		t.Fatalf("persisted session missing results: %+v", sess)
	}

	code, out := postChat(t, ts.URL, "user-1", "1")
	if code != http.StatusOK || out["state"] != string(domain.StateMoreDetails) {
		t.Fatalf("selection: status %d state %q", code, out["state"])
	}
	if !strings.Contains(out["reply"], "Masaki Grill") {
		t.Fatalf("expected detail card, got %q", out["reply"])
	}
}

func TestChat_SessionsAreIsolated(t *testing.T) {
	ts, _ := newChatServer(t, nil)

	if _, out := postChat(t, ts.URL, "a", "hi"); out["state"] != string(domain.StateAskLocation) {
		t.Fatalf("session a: %q", out["state"])
	}
	// A fresh session id starts from the welcome flow, unaffected by a.
	if _, out := postChat(t, ts.URL, "b", "hello"); out["state"] != string(domain.StateAskLocation) {
		t.Fatalf("session b: %q", out["state"])
	}
	if _, out := postChat(t, ts.URL, "a", "Kariakoo"); out["state"] != string(domain.StateAskService) {
		t.Fatalf("session a second turn: %q", out["state"])
	}
}

func TestChat_RejectsMissingSessionID(t *testing.T) {
	ts, _ := newChatServer(t, nil)

	body := bytes.NewReader([]byte(`{"message":"hi"}`))
	resp, err := http.Post(ts.URL+"/v1/chat", "application/json", body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected problem+json, got %q", ct)
	}
}

func TestChat_RejectsMalformedBody(t *testing.T) {
	ts, _ := newChatServer(t, nil)

	resp, err := http.Post(ts.URL+"/v1/chat", "application/json", strings.NewReader("{oops"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts, _ := newChatServer(t, nil)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
