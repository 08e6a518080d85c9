package creation

type Status string

const (
	StatusValidating Status = "VALIDATING"
	StatusReserving  Status = "RESERVING"
	StatusGenerating Status = "GENERATING"
	StatusSafety     Status = "SAFETY"
	StatusDone       Status = "DONE"
	StatusFailed     Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}

// Decision is the ALLOW/BLOCK contract shared by prompt moderation and image safety.
type Decision string

const (
	DecisionAllow Decision = "ALLOW"
	DecisionBlock Decision = "BLOCK"
)

func (d Decision) IsAllowed() bool {
	return d == DecisionAllow
}

// Failure codes persisted on FAILED requests.
const (
	FailureEmptyPrompt      = "EMPTY_PROMPT"
	FailureSafetyBlocked    = "SAFETY_BLOCKED"
	FailureProviderRejected = "PROVIDER_REJECTED"
	FailureRetriesExhausted = "RETRIES_EXHAUSTED"
	FailureQueueUnavailable = "QUEUE_UNAVAILABLE"
)

// Verdict is an ALLOW/BLOCK answer from moderation or image safety.
type Verdict struct {
	Decision Decision
	Reason   string
}

// Moderation is the prompt check result; TranslatedPrompt feeds the image model.
type Moderation struct {
	Verdict
	TranslatedPrompt string
}
