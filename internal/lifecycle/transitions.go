package lifecycle

import (
	"fmt"

	"fisco/internal/domain"
)

// transitions enumerates the only legal status moves:
// draft → pending → authorized → {cancelled | rejected}. No state may be
// skipped. Invalidation is a property of a number range, not of an issued
// instance, and is handled by ValidateNumberVoid.
var transitions = map[domain.DocumentStatus][]domain.DocumentStatus{
	domain.StatusDraft:      {domain.StatusPending},
	domain.StatusPending:    {domain.StatusAuthorized},
	domain.StatusAuthorized: {domain.StatusCancelled, domain.StatusRejected},
}

// Terminal reports whether no transition leaves the given status.
func Terminal(s domain.DocumentStatus) bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to domain.DocumentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition checks a single status move and reports a specific
// error when it is illegal.
func (v *Validator) ValidateTransition(from, to domain.DocumentStatus) domain.ValidationResult {
	r := domain.NewReport()
	if !CanTransition(from, to) {
		if Terminal(from) {
			r.Error(fmt.Sprintf("status %q is terminal; no further transitions are allowed", from))
		} else {
			r.Error(fmt.Sprintf("illegal status transition %q -> %q", from, to))
		}
	}
	return r.Result()
}
