package models

// Intent is the classified purpose of a chatbot query.
type Intent string

const (
	IntentCapacidad Intent = "capacidad"
	IntentOcupacion Intent = "ocupacion"
	IntentLibres    Intent = "libres"
	IntentAyuda     Intent = "ayuda"
	IntentNone      Intent = "none"
)

// AllowedIntents are the intents an external NLU result may carry; anything
// else is discarded.
var AllowedIntents = map[Intent]bool{
	IntentCapacidad: true,
	IntentOcupacion: true,
	IntentLibres:    true,
	IntentAyuda:     true,
}

// DialogueContext is the carryover state for elliptical follow-up queries.
// It is owned by the conversation caller: passed in and returned on every
// turn, never stored by the engine.
type DialogueContext struct {
	LastDate   string `json:"last_date,omitempty"` // YYYY-MM-DD
	LastSpace  *Space `json:"last_space,omitempty"`
	LastIntent Intent `json:"last_intent,omitempty"`
}

// QueryFilters narrow a free-space listing.
type QueryFilters struct {
	Type        SpaceType `json:"type,omitempty"`
	Floor       Floor     `json:"floor,omitempty"`
	MinCapacity int       `json:"min_capacity,omitempty"`
}

// ResolvedQuery is the single normalized output of either resolution path
// (external NLU or rule-based), decoupling the orchestrator from the source.
type ResolvedQuery struct {
	Intent          Intent       `json:"intent"`
	Date            string       `json:"date,omitempty"` // YYYY-MM-DD, empty when unresolved
	Space           *Space       `json:"space,omitempty"`
	Filters         QueryFilters `json:"filters"`
	Confidence      float64      `json:"confidence"`
	SecondaryIntent Intent       `json:"secondary_intent,omitempty"`
}

// ChatChip is a quick-reply suggestion attached to clarification responses.
type ChatChip struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChatResponseKind distinguishes final answers from clarification prompts.
type ChatResponseKind string

const (
	ChatAnswer  ChatResponseKind = "answer"
	ChatClarify ChatResponseKind = "clarify"
)

// ChatResponse is one chatbot turn: the reply text, structured data for the
// UI, and the updated dialogue context the caller must pass back next turn.
type ChatResponse struct {
	Answer  string           `json:"answer"`
	Kind    ChatResponseKind `json:"type"`
	Chips   []ChatChip       `json:"chips,omitempty"`
	Data    any              `json:"data"`
	Context DialogueContext  `json:"context"`
}

// OccupancyData is the structured payload for occupancy answers.
type OccupancyData struct {
	Classes      []BusyInterval `json:"classes"`
	Reservations []BusyInterval `json:"reservations"`
	All          []BusyInterval `json:"all"`
	FreeBlocks   []TimeInterval `json:"free_blocks"`
	Summary      string         `json:"summary"`
}

// FreeSpacesData is the structured payload for free-space listings.
type FreeSpacesData struct {
	FreeSpaces  []Space `json:"free_spaces"`
	Total       int     `json:"total"`
	Page        int     `json:"page"`
	PageSize    int     `json:"page_size"`
	AskSpecific bool    `json:"ask_specific"`
}
