package cashdrop

// =============================================================================
// STATUS - Single source of truth for a record's lifecycle position
// =============================================================================
//
//   (new) ── save draft ──▶ drafted ── submit ──▶ submitted
//   (new) ── submit ─────────────────────────▶ submitted
//   drafted ── delete ──▶ (gone, drawer draft too)
//   drafted | submitted ── ignore ──▶ ignored                  terminal
//   submitted ── reconcile ──▶ reconciled ── unreconcile ──▶ submitted
//   reconciled ── bank drop ──▶ bank_dropped                    terminal

type Status string

const (
	StatusDrafted     Status = "drafted"
	StatusSubmitted   Status = "submitted"
	StatusIgnored     Status = "ignored"
	StatusReconciled  Status = "reconciled"
	StatusBankDropped Status = "bank_dropped"
)

var transitions = map[Status][]Status{
	StatusDrafted:     {StatusDrafted, StatusSubmitted, StatusIgnored},
	StatusSubmitted:   {StatusIgnored, StatusReconciled},
	StatusReconciled:  {StatusSubmitted, StatusBankDropped},
	StatusIgnored:     nil,
	StatusBankDropped: nil,
}

// SubmittedStatuses are the statuses that occupy a workstation/shift/date
// slot and count toward the daily cap.
var SubmittedStatuses = []Status{StatusSubmitted, StatusReconciled, StatusBankDropped}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// IsSubmitted reports whether s is submitted or any later non-ignored state.
func (s Status) IsSubmitted() bool {
	for _, v := range SubmittedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// ValidDrawerStatus reports whether s is one a Drawer may hold.
func ValidDrawerStatus(s Status) bool {
	return s == StatusDrafted || s == StatusSubmitted || s == StatusIgnored
}

func transitionError(id string, from, to Status) error {
	return &ConflictError{
		Reason:  ConflictInvalidTransition,
		Message: "cash drop " + id + " cannot move from " + string(from) + " to " + string(to),
	}
}
