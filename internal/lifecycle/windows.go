package lifecycle

import (
	"fmt"
	"time"

	"fisco/internal/domain"
)

// WindowStatus describes where a document stands inside a legal time window.
// RemainingHours decreases monotonically toward zero and stays at zero once
// the window has expired.
type WindowStatus struct {
	Allowed        bool    `json:"allowed"`
	WindowHours    float64 `json:"window_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	Message        string  `json:"message"`
}

// CancellationWindow reports whether a cancellation (or, for a manifest,
// closure) request still falls inside the kind's legal window: 24 hours for
// goods invoices and manifests, 168 hours for transport documents.
func (v *Validator) CancellationWindow(kind domain.DocumentKind, issuedAt time.Time) WindowStatus {
	rule, ok := kindRules[kind]
	if !ok {
		panic(fmt.Sprintf("lifecycle: unknown document kind %q", kind))
	}

	window := rule.cancelWindow
	elapsed := v.now().Sub(issuedAt)
	remaining := window - elapsed
	if remaining < 0 {
		remaining = 0
	}

	st := WindowStatus{
		Allowed:        remaining > 0,
		WindowHours:    window.Hours(),
		RemainingHours: remaining.Hours(),
	}
	if st.Allowed {
		st.Message = fmt.Sprintf("%.0f hours remaining in the %.0f-hour cancellation window", st.RemainingHours, st.WindowHours)
	} else {
		st.Message = fmt.Sprintf("the %.0f-hour cancellation window has expired", st.WindowHours)
	}
	return st
}

// ValidateCancellation checks that a document may be cancelled now: it must
// be in a cancellable status and inside its window. A justification shorter
// than 15 characters is rejected, matching the fiscal authority's minimum.
func (v *Validator) ValidateCancellation(doc *domain.DocumentRecord, justification string) domain.ValidationResult {
	if doc == nil {
		panic("lifecycle: nil document")
	}
	r := domain.NewReport()

	if !CanTransition(doc.Status, domain.StatusCancelled) {
		r.Error(fmt.Sprintf("document in status %q cannot be cancelled", doc.Status))
	}
	if st := v.CancellationWindow(doc.Kind, doc.IssuedAt); !st.Allowed {
		r.Error(st.Message)
	}
	if len([]rune(justification)) < minJustification {
		r.Error(fmt.Sprintf("justification must have at least %d characters, got %d", minJustification, len([]rune(justification))))
	}
	return r.Result()
}
