package router

// Reason identifies which rule produced a Decision.
type Reason string

const (
	// ReasonExplicitOverride means an operator directive named the model.
	ReasonExplicitOverride Reason = "explicit_override"
	// ReasonSensitiveKeyword means a sensitive-topic keyword matched.
	ReasonSensitiveKeyword Reason = "sensitive_keyword"
	// ReasonTechnicalKeyword means a technical keyword matched.
	ReasonTechnicalKeyword Reason = "technical_keyword"
	// ReasonDefault means no rule matched and the default model was used.
	ReasonDefault Reason = "default"
)

// ModelProfile describes one hosted model endpoint. Profiles are
// immutable after registration.
type ModelProfile struct {
	// ID is the canonical identifier, e.g. "kimi", "claude".
	ID string
	// Name is the human-readable endpoint name.
	Name string
	// BestFor lists topic tags the endpoint is recommended for.
	BestFor []string
	// AvoidFor lists topic tags the endpoint should not be used for.
	AvoidFor []string
	// ComplianceNotes carries free-text data-residency and content-policy
	// caveats for the endpoint.
	ComplianceNotes string
}

// Rule maps one keyword pattern to a target model ID. Rules are
// evaluated in list order; the first match wins.
type Rule struct {
	Keyword string
	Target  string
}

// Decision is the outcome of a single Select call. It is a pure value:
// identical inputs against the same configuration produce identical
// Decisions.
type Decision struct {
	// ModelID is the chosen endpoint.
	ModelID string `json:"model_id"`
	// Reason identifies the rule class that produced the choice.
	Reason Reason `json:"reason"`
	// Match is the keyword or directive fragment that triggered the
	// choice. Empty when Reason is ReasonDefault.
	Match string `json:"match,omitempty"`
	// Explanation is a human-readable rationale for the choice.
	Explanation string `json:"explanation"`
}

// DecisionObserver receives routing outcomes for instrumentation.
// Implementations must be safe for concurrent use.
type DecisionObserver interface {
	// ObserveDecision records one completed routing decision.
	ObserveDecision(modelID string, reason Reason)
	// ObserveUnknownDirective records a directive that named no
	// configured model.
	ObserveUnknownDirective()
}
