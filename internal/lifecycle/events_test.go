package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fisco/internal/domain"
	"fisco/internal/lifecycle"
)

func authorizedDoc() *domain.DocumentRecord {
	return &domain.DocumentRecord{Kind: domain.KindNFe, Status: domain.StatusAuthorized, IssuedAt: testNow}
}

func TestValidateCorrection(t *testing.T) {
	v := fixedClock()

	t.Run("allow_listed_fields", func(t *testing.T) {
		res := v.ValidateCorrection(authorizedDoc(), []string{"delivery_address", "additional_info"})
		assert.True(t, res.Valid)
	})

	t.Run("tax_id_not_correctable", func(t *testing.T) {
		res := v.ValidateCorrection(authorizedDoc(), []string{"buyer_tax_id"})
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], `"buyer_tax_id" is not eligible for correction`)
	})

	t.Run("each_ineligible_field_reported", func(t *testing.T) {
		res := v.ValidateCorrection(authorizedDoc(), []string{"total_value", "issuer_tax_id", "product_notes"})
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2)
	})

	t.Run("no_fields", func(t *testing.T) {
		res := v.ValidateCorrection(authorizedDoc(), nil)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "no fields")
	})

	t.Run("unauthorized_document", func(t *testing.T) {
		doc := authorizedDoc()
		doc.Status = domain.StatusPending
		res := v.ValidateCorrection(doc, []string{"product_notes"})
		assert.False(t, res.Valid)
	})
}

func TestCorrectableFields(t *testing.T) {
	fields := lifecycle.CorrectableFields()
	assert.ElementsMatch(t, []string{
		"delivery_address", "buyer_contact", "buyer_trade_name", "product_notes", "additional_info",
	}, fields)
}

func TestValidateNumberVoid(t *testing.T) {
	v := fixedClock()
	valid := lifecycle.NumberVoidRequest{
		Series:        1,
		StartNumber:   100,
		EndNumber:     120,
		Justification: "numbering skipped by emission failure",
	}

	t.Run("valid_request", func(t *testing.T) {
		res := v.ValidateNumberVoid(valid)
		assert.True(t, res.Valid)
	})

	t.Run("series_zero_is_valid", func(t *testing.T) {
		req := valid
		req.Series = 0
		assert.True(t, v.ValidateNumberVoid(req).Valid)
	})

	t.Run("negative_series", func(t *testing.T) {
		req := valid
		req.Series = -1
		res := v.ValidateNumberVoid(req)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "series")
	})

	t.Run("start_greater_than_end", func(t *testing.T) {
		req := valid
		req.StartNumber, req.EndNumber = 120, 100
		res := v.ValidateNumberVoid(req)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "start number 120 is greater than end number 100")
	})

	t.Run("short_justification", func(t *testing.T) {
		req := valid
		req.Justification = "0123456789" // 10 chars
		res := v.ValidateNumberVoid(req)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "justification too short")
	})

	t.Run("violations_reported_together", func(t *testing.T) {
		req := valid
		req.StartNumber, req.EndNumber = 120, 100
		req.Justification = "0123456789"
		res := v.ValidateNumberVoid(req)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2)
	})

	t.Run("nonpositive_numbers", func(t *testing.T) {
		req := valid
		req.StartNumber, req.EndNumber = 0, -5
		res := v.ValidateNumberVoid(req)
		assert.False(t, res.Valid)
		// start and end each get their own error; the ordering check is
		// skipped when either bound is nonpositive.
		assert.Len(t, res.Errors, 2)
	})
}
