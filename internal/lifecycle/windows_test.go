package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fisco/internal/domain"
	"fisco/internal/lifecycle"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() *lifecycle.Validator {
	return lifecycle.NewWithClock(func() time.Time { return testNow })
}

func TestCancellationWindow(t *testing.T) {
	v := fixedClock()
	issued30hAgo := testNow.Add(-30 * time.Hour)

	t.Run("cte_open_after_30h", func(t *testing.T) {
		st := v.CancellationWindow(domain.KindCTe, issued30hAgo)
		assert.True(t, st.Allowed)
		assert.InDelta(t, 138.0, st.RemainingHours, 0.01)
		assert.Contains(t, st.Message, "hours remaining")
	})

	t.Run("nfe_expired_after_30h", func(t *testing.T) {
		st := v.CancellationWindow(domain.KindNFe, issued30hAgo)
		assert.False(t, st.Allowed)
		assert.Zero(t, st.RemainingHours)
		assert.Contains(t, st.Message, "expired")
	})

	t.Run("mdfe_shares_24h_window", func(t *testing.T) {
		st := v.CancellationWindow(domain.KindMDFe, testNow.Add(-23*time.Hour))
		assert.True(t, st.Allowed)
		assert.InDelta(t, 1.0, st.RemainingHours, 0.01)

		st = v.CancellationWindow(domain.KindMDFe, issued30hAgo)
		assert.False(t, st.Allowed)
	})

	t.Run("remaining_never_negative", func(t *testing.T) {
		st := v.CancellationWindow(domain.KindNFe, testNow.Add(-1000*time.Hour))
		assert.Zero(t, st.RemainingHours)
	})

	t.Run("unknown_kind_panics", func(t *testing.T) {
		assert.Panics(t, func() { v.CancellationWindow(domain.DocumentKind("fax"), testNow) })
	})
}

func TestValidateCancellation(t *testing.T) {
	v := fixedClock()
	doc := func(kind domain.DocumentKind, status domain.DocumentStatus, age time.Duration) *domain.DocumentRecord {
		return &domain.DocumentRecord{Kind: kind, Status: status, IssuedAt: testNow.Add(-age)}
	}
	justification := "issued with the wrong recipient data"

	t.Run("authorized_inside_window", func(t *testing.T) {
		res := v.ValidateCancellation(doc(domain.KindNFe, domain.StatusAuthorized, 2*time.Hour), justification)
		assert.True(t, res.Valid)
	})

	t.Run("outside_window", func(t *testing.T) {
		res := v.ValidateCancellation(doc(domain.KindNFe, domain.StatusAuthorized, 30*time.Hour), justification)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "expired")
	})

	t.Run("wrong_status", func(t *testing.T) {
		res := v.ValidateCancellation(doc(domain.KindNFe, domain.StatusDraft, time.Hour), justification)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "cannot be cancelled")
	})

	t.Run("short_justification_accumulates", func(t *testing.T) {
		res := v.ValidateCancellation(doc(domain.KindNFe, domain.StatusDraft, 30*time.Hour), "too short")
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 3) // status, window and justification all reported
	})

	t.Run("nil_document_panics", func(t *testing.T) {
		assert.Panics(t, func() { v.ValidateCancellation(nil, justification) })
	})
}
