package lifecycle

import (
	"fmt"

	"fisco/internal/domain"
)

// minJustification is the fiscal authority's minimum justification length
// for cancellation and numbering-voidance events.
const minJustification = 15

// correctableFields is the allow-list of fields a correction letter may
// amend: delivery address, the buyer's secondary data (never the tax ID
// itself), complementary product notes and free-text additional info.
var correctableFields = map[string]bool{
	"delivery_address": true,
	"buyer_contact":    true,
	"buyer_trade_name": true,
	"product_notes":    true,
	"additional_info":  true,
}

// CorrectableFields returns the allow-listed field names in no fixed order.
func CorrectableFields() []string {
	out := make([]string, 0, len(correctableFields))
	for f := range correctableFields {
		out = append(out, f)
	}
	return out
}

// ValidateCorrection checks a correction-letter request: the document must
// be authorized and every targeted field must be on the allow-list. Each
// ineligible field yields its own error.
func (v *Validator) ValidateCorrection(doc *domain.DocumentRecord, fields []string) domain.ValidationResult {
	if doc == nil {
		panic("lifecycle: nil document")
	}
	r := domain.NewReport()

	if doc.Status != domain.StatusAuthorized {
		r.Error(fmt.Sprintf("correction letters apply to authorized documents only, status is %q", doc.Status))
	}
	if len(fields) == 0 {
		r.Error("correction letter targets no fields")
	}
	for _, f := range fields {
		if !correctableFields[f] {
			r.Error(fmt.Sprintf("field %q is not eligible for correction", f))
		}
	}
	return r.Result()
}

// NumberVoidRequest asks to retire a contiguous range of unused document
// numbers within a series.
type NumberVoidRequest struct {
	Series        int    `json:"series"`
	StartNumber   int    `json:"start_number"`
	EndNumber     int    `json:"end_number"`
	Justification string `json:"justification"`
}

// ValidateNumberVoid checks a numbering-voidance request. Every violated
// condition produces its own error; they are reported together, not
// first-only.
func (v *Validator) ValidateNumberVoid(req NumberVoidRequest) domain.ValidationResult {
	r := domain.NewReport()

	if req.Series < 0 {
		r.Error(fmt.Sprintf("series must be zero or positive, got %d", req.Series))
	}
	if req.StartNumber <= 0 {
		r.Error(fmt.Sprintf("start number must be positive, got %d", req.StartNumber))
	}
	if req.EndNumber <= 0 {
		r.Error(fmt.Sprintf("end number must be positive, got %d", req.EndNumber))
	}
	if req.StartNumber > 0 && req.EndNumber > 0 && req.StartNumber > req.EndNumber {
		r.Error(fmt.Sprintf("start number %d is greater than end number %d", req.StartNumber, req.EndNumber))
	}
	if n := len([]rune(req.Justification)); n < minJustification {
		r.Error(fmt.Sprintf("justification too short: %d characters, minimum is %d", n, minJustification))
	}
	return r.Result()
}
