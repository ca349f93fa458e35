package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"huduma_finder/internal/domain"
)

// Engine is the conversation state machine. Process is value-in /
// value-out: given the same session and input it produces the same
// output (modulo live collaborator nondeterminism, which is confined
// to the search engine). The engine holds no per-conversation state of
// its own, so one Engine serves any number of sessions.
type Engine struct {
	resolver *Resolver
	search   *SearchService
	matcher  *ServiceMatcher
	format   *Formatter
	bands    BudgetBands

	rules map[domain.ChatState][]rule
}

// rule pairs an input predicate with its handler. Rules are evaluated
// in declaration order; the first match wins, which keeps the matching
// policy auditable per state.
type rule struct {
	match func(msg string) bool
	run   func(ctx context.Context, s *domain.Session, msg string) string
}

func NewEngine(resolver *Resolver, search *SearchService, matcher *ServiceMatcher, format *Formatter, bands BudgetBands) *Engine {
	e := &Engine{
		resolver: resolver,
		search:   search,
		matcher:  matcher,
		format:   format,
		bands:    bands,
	}
	e.rules = map[domain.ChatState][]rule{
		domain.StateWelcome: {
			{match: any, run: e.handleWelcome},
		},
		domain.StateAskLocation: {
			{match: any, run: e.handleLocation},
		},
		domain.StateAskService: {
			{match: any, run: e.handleService},
		},
		domain.StateAskBudget: {
			{match: any, run: e.handleBudget},
		},
		domain.StateShowResults: {
			{match: exact("compare", "comparison"), run: e.handleCompare},
			{match: exact("more"), run: e.handleMore},
			{match: exact("new"), run: e.handleNew},
			{match: integer, run: e.handleSelect},
			{match: any, run: e.handleResultsHelp},
		},
		domain.StateCompareOptions: {
			{match: exact("back"), run: e.handleBackToResults},
			{match: integer, run: e.handleSelect},
			{match: any, run: e.handleCompareHelp},
		},
		domain.StateMoreDetails:   e.detailRules(),
		domain.StateConfirmChoice: e.detailRules(),
	}
	return e
}

// detailRules is shared verbatim between GET_MORE_DETAILS and
// CONFIRM_CHOICE; the two states behave identically.
func (e *Engine) detailRules() []rule {
	return []rule{
		{match: exact("call"), run: e.handleCall},
		{match: exact("directions"), run: e.handleDirections},
		{match: exact("compare", "back"), run: e.handleBackToResults},
		{match: exact("new"), run: e.handleNew},
		{match: any, run: e.handleDetailsHelp},
	}
}

// Process advances the conversation by one inbound message and returns
// the updated session together with the reply text. It never fails: all
// error paths degrade to guidance or a restart.
func (e *Engine) Process(ctx context.Context, session domain.Session, raw string) (domain.Session, string) {
	msg := strings.ToLower(strings.TrimSpace(raw))

	rules, ok := e.rules[session.State]
	if !ok {
		// Unknown state: only reachable via a malformed restored
		// session. Restart rather than dead-end.
		log.Warn().Str("state", string(session.State)).Msg("unknown chat state, restarting")
		session.Reset()
		reply := "I'm sorry, I didn't understand that. Let me start over.\n\n" +
			e.handleWelcome(ctx, &session, msg)
		return session, reply
	}

	for _, r := range rules {
		if r.match(msg) {
			return session, r.run(ctx, &session, msg)
		}
	}
	// Unreachable as long as every state ends with a catch-all rule.
	return session, e.format.ResultsHelp()
}

// ---- predicates ----

func any(string) bool { return true }

func exact(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if msg == w {
				return true
			}
		}
		return false
	}
}

func integer(msg string) bool {
	if msg == "" {
		return false
	}
	for _, r := range msg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ---- handlers ----

func (e *Engine) handleWelcome(_ context.Context, s *domain.Session, _ string) string {
	s.State = domain.StateAskLocation
	return e.format.Welcome()
}

func (e *Engine) handleLocation(ctx context.Context, s *domain.Session, msg string) string {
	loc := e.resolver.Resolve(ctx, msg)
	s.UserLocation = &loc
	s.State = domain.StateAskService
	return e.format.LocationConfirm(loc)
}

func (e *Engine) handleService(_ context.Context, s *domain.Session, msg string) string {
	s.SelectedService = e.matcher.Match(msg)
	s.State = domain.StateAskBudget
	return e.format.BudgetPrompt(s.SelectedService)
}

func (e *Engine) handleBudget(ctx context.Context, s *domain.Session, msg string) string {
	s.BudgetRange = e.bands.ParseBudget(msg)

	origin := DefaultLocation()
	if s.UserLocation != nil {
		origin = *s.UserLocation
	}
	s.SearchResults = e.search.Search(ctx, s.SelectedService, origin, 0, s.BudgetRange)
	s.State = domain.StateShowResults

	if len(s.SearchResults) == 0 {
		return e.format.NoResults()
	}
	return e.format.Results(s.SearchResults, origin)
}

func (e *Engine) handleCompare(_ context.Context, s *domain.Session, _ string) string {
	origin := e.origin(s)
	if len(s.SearchResults) < 2 {
		// Nothing to put side by side; re-render what we have.
		return "I need at least 2 options to compare. Here are the available options instead.\n\n" +
			e.renderResults(s, origin)
	}
	s.State = domain.StateCompareOptions
	return e.format.Comparison(s.SearchResults, origin)
}

func (e *Engine) handleMore(_ context.Context, s *domain.Session, _ string) string {
	return e.format.MoreResults(s.SearchResults, e.origin(s))
}

func (e *Engine) handleNew(_ context.Context, s *domain.Session, _ string) string {
	s.Reset()
	return e.format.Welcome()
}

func (e *Engine) handleSelect(_ context.Context, s *domain.Session, msg string) string {
	k, err := strconv.Atoi(msg)
	if err != nil || k < 1 || k > len(s.SearchResults) {
		return e.format.InvalidOption()
	}
	picked := s.SearchResults[k-1]
	s.CurrentSelection = []domain.Provider{picked}
	s.State = domain.StateMoreDetails
	return e.format.Detail(picked, e.origin(s))
}

func (e *Engine) handleBackToResults(_ context.Context, s *domain.Session, _ string) string {
	s.State = domain.StateShowResults
	return e.renderResults(s, e.origin(s))
}

func (e *Engine) handleCall(_ context.Context, s *domain.Session, _ string) string {
	p, ok := e.selected(s)
	if !ok {
		s.State = domain.StateShowResults
		return e.renderResults(s, e.origin(s))
	}
	return e.format.Call(p)
}

func (e *Engine) handleDirections(_ context.Context, s *domain.Session, _ string) string {
	p, ok := e.selected(s)
	if !ok {
		s.State = domain.StateShowResults
		return e.renderResults(s, e.origin(s))
	}
	return e.format.Directions(p, e.origin(s))
}

func (e *Engine) handleResultsHelp(_ context.Context, _ *domain.Session, _ string) string {
	return e.format.ResultsHelp()
}

func (e *Engine) handleCompareHelp(_ context.Context, _ *domain.Session, _ string) string {
	return e.format.CompareHelp()
}

func (e *Engine) handleDetailsHelp(_ context.Context, _ *domain.Session, _ string) string {
	return e.format.DetailsHelp()
}

// ---- helpers ----

func (e *Engine) origin(s *domain.Session) domain.Location {
	if s.UserLocation != nil {
		return *s.UserLocation
	}
	return DefaultLocation()
}

func (e *Engine) renderResults(s *domain.Session, origin domain.Location) string {
	if len(s.SearchResults) == 0 {
		return e.format.NoResults()
	}
	return e.format.Results(s.SearchResults, origin)
}

func (e *Engine) selected(s *domain.Session) (domain.Provider, bool) {
	if len(s.CurrentSelection) == 0 {
		return domain.Provider{}, false
	}
	return s.CurrentSelection[0], true
}
