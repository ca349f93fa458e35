package domain

// ChatState is the current step of a conversation.
type ChatState string

const (
	StateWelcome        ChatState = "welcome"
	StateAskLocation    ChatState = "ask_location"
	StateAskService     ChatState = "ask_service"
	StateAskBudget      ChatState = "ask_budget"
	StateShowResults    ChatState = "show_results"
	StateCompareOptions ChatState = "compare_options"
	StateMoreDetails    ChatState = "get_more_details"
	StateConfirmChoice  ChatState = "confirm_choice"
)

// Session is the per-conversation state carried across messages. It is
// a plain value: the engine takes a Session in and hands a new one
// back, so the host can persist, shard, or restore it freely. The host
// must not let two in-flight calls share the same session.
type Session struct {
	State           ChatState   `json:"state"`
	UserLocation    *Location   `json:"user_location,omitempty"`
	SelectedService string      `json:"selected_service,omitempty"`
	BudgetRange     *PriceRange `json:"budget_range,omitempty"`
	SearchResults   []Provider  `json:"search_results,omitempty"`
	CurrentSelection []Provider `json:"current_selection,omitempty"`
}

// NewSession returns the initial session for a first-contact user.
func NewSession() Session { return Session{State: StateWelcome} }

// Reset clears all conversation progress and returns to WELCOME.
func (s *Session) Reset() { *s = NewSession() }
