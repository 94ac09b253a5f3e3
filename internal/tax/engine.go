// Package tax computes the per-kind tax amounts and grand total of a fiscal
// document. All money math is done in fixed-point decimal, never binary
// floating point, with amounts rounded half-up to 2 places.
package tax

import (
	"github.com/shopspring/decimal"

	"fisco/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Pair is an optional (base, rate-percent) input for one tax kind. A nil
// Pair means the tax was not supplied: its entry is omitted from the
// breakdown rather than reported as zero, a distinction reconciliation and
// display both rely on.
type Pair struct {
	Base decimal.Decimal `json:"base"`
	Rate decimal.Decimal `json:"rate"`
}

// Input carries the supplied base/rate pairs for one document.
type Input struct {
	ICMS *Pair `json:"icms,omitempty"`
	ISS  *Pair `json:"iss,omitempty"`
	CBS  *Pair `json:"cbs,omitempty"`
	IBS  *Pair `json:"ibs,omitempty"`
	ISel *Pair `json:"isel,omitempty"`
}

// legacyByKind maps each document kind to the legacy tax it carries: goods
// invoices and cargo manifests circulate merchandise (ICMS), transport
// documents charge a freight service (ISS). The forward-regime taxes
// (CBS, IBS, ISel) apply to every kind.
var legacyByKind = map[domain.DocumentKind]domain.TaxKind{
	domain.KindNFe:  domain.TaxICMS,
	domain.KindMDFe: domain.TaxICMS,
	domain.KindCTe:  domain.TaxISS,
}

// Amount computes round-half-up(base × ratePercent / 100, 2).
func Amount(base, ratePercent decimal.Decimal) decimal.Decimal {
	return base.Mul(ratePercent).Div(hundred).Round(2)
}

// Compute assembles the tax breakdown for a document of the given kind.
// Pairs for a legacy tax the kind does not carry are ignored; absent pairs
// yield absent entries. There are no error conditions: zero inputs simply
// contribute a zero amount, and range checks on the inputs belong to the
// lifecycle validator, not here.
func Compute(kind domain.DocumentKind, in Input) domain.TaxBreakdown {
	var b domain.TaxBreakdown
	legacy := legacyByKind[kind]

	if legacy == domain.TaxICMS {
		b.ICMS = entry(in.ICMS)
	}
	if legacy == domain.TaxISS {
		b.ISS = entry(in.ISS)
	}

	// Forward-regime taxes are optional and advisory on every kind; a
	// supplied pair signals a jurisdiction opting in to the new regime early.
	b.CBS = entry(in.CBS)
	b.IBS = entry(in.IBS)
	b.ISel = entry(in.ISel)
	return b
}

func entry(p *Pair) *domain.TaxAmount {
	if p == nil {
		return nil
	}
	return &domain.TaxAmount{
		Base:   p.Base,
		Rate:   p.Rate,
		Amount: Amount(p.Base, p.Rate),
	}
}

// DocumentTotal is the document's base service/merchandise value plus every
// tax amount present in the breakdown.
func DocumentTotal(baseValue decimal.Decimal, b domain.TaxBreakdown) decimal.Decimal {
	total := baseValue
	for _, a := range b.Amounts() {
		total = total.Add(a.Amount)
	}
	return total
}
