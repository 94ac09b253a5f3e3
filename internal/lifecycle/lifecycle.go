// Package lifecycle enforces which document status transitions are legal,
// the legally mandated time windows for post-issuance events, and the
// totals reconciliation between a cargo manifest and its linked documents.
// Every check accumulates all applicable errors and warnings in one pass so
// callers can render a complete list instead of one problem at a time.
package lifecycle

import (
	"time"

	"fisco/internal/domain"
)

// kindRule holds the per-kind variation points: the cancellation window and
// the fields a document of that kind must carry. Kept in a table rather than
// branched inline so adding a kind touches one place.
type kindRule struct {
	cancelWindow time.Duration
}

var kindRules = map[domain.DocumentKind]kindRule{
	domain.KindNFe:  {cancelWindow: 24 * time.Hour},
	domain.KindCTe:  {cancelWindow: 168 * time.Hour}, // 7 days
	domain.KindMDFe: {cancelWindow: 24 * time.Hour},
}

// Validator evaluates lifecycle rules against an injected clock so tests can
// pin "now". It holds no other state and is safe for concurrent use.
type Validator struct {
	now func() time.Time
}

// New returns a Validator on the system clock.
func New() *Validator {
	return &Validator{now: time.Now}
}

// NewWithClock returns a Validator using the supplied clock.
func NewWithClock(now func() time.Time) *Validator {
	if now == nil {
		panic("lifecycle: nil clock")
	}
	return &Validator{now: now}
}
