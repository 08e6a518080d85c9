package reservation

type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCancelled, StatusExpired, StatusFailed:
		return true
	default:
		return false
	}
}

// HoldsQuota reports whether the reservation still counts against the ledger.
func (s Status) HoldsQuota() bool {
	return s == StatusReserved || s == StatusConfirmed
}

// Transition is a guarded status change. Releases gives the quota back to the ledger.
type Transition struct {
	Name     string
	From     []Status
	To       Status
	Releases bool
}

var (
	Confirm = Transition{
		Name: "confirm",
		From: []Status{StatusReserved},
		To:   StatusConfirmed,
	}
	Cancel = Transition{
		Name:     "cancel",
		From:     []Status{StatusReserved},
		To:       StatusCancelled,
		Releases: true,
	}
	Reclaim = Transition{
		Name:     "reclaim",
		From:     []Status{StatusReserved},
		To:       StatusExpired,
		Releases: true,
	}
	MarkFailed = Transition{
		Name:     "mark_failed",
		From:     []Status{StatusReserved, StatusConfirmed},
		To:       StatusFailed,
		Releases: true,
	}
)

func (t Transition) Accepts(s Status) bool {
	for _, from := range t.From {
		if from == s {
			return true
		}
	}
	return false
}

func (t Transition) FromStrings() []string {
	out := make([]string, len(t.From))
	for i, s := range t.From {
		out[i] = string(s)
	}
	return out
}
