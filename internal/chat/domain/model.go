package domain

// Step is the stage of a session's order journey. The flow is a one-shot
// guided funnel: IDLE -> AGREEMENT -> NOTIFYING_ADMIN -> PAYMENT ->
// GENERATING -> COMPLETE, with GENERATING falling back to IDLE on failure.
type Step string

const (
	StepIdle Step = "IDLE"
	// StepGatheringInfo is declared but not reachable today; intake is a
	// single free-text accumulation. Kept so the funnel can grow sub-steps
	// without a wire change.
	StepGatheringInfo  Step = "GATHERING_INFO"
	StepAgreement      Step = "AGREEMENT"
	StepNotifyingAdmin Step = "NOTIFYING_ADMIN"
	StepPayment        Step = "PAYMENT"
	StepGenerating     Step = "GENERATING"
	StepComplete       Step = "COMPLETE"
)

// Role of a chat turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Source is a citation attached to a grounded assistant reply.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// ChatMessage is one turn of the customer-facing conversation. Messages are
// transient session state, never persisted to the store.
type ChatMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Sources []Source `json:"sources,omitempty"`
}
