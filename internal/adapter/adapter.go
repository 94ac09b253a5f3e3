package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fisco/internal/domain"
	"fisco/internal/identifier"
	"fisco/internal/lifecycle"
	"fisco/internal/port"
	"fisco/internal/tax"
)

// EnteredDocument is the free-form representation coming off a form:
// categorical values as human strings, identifiers possibly punctuated,
// quantities and prices as decimals.
type EnteredDocument struct {
	Kind          string           `json:"kind"`
	IssuedAt      time.Time        `json:"issued_at"`
	Operation     string           `json:"operation"`
	Purpose       string           `json:"purpose"`
	Presence      string           `json:"presence"`
	FinalConsumer string           `json:"final_consumer"`
	BuyerName     string           `json:"buyer_name"`
	BuyerTaxID    string           `json:"buyer_tax_id"`
	DeliveryCity  string           `json:"delivery_city"`
	DeliveryState string           `json:"delivery_state"`
	DeliveryCEP   string           `json:"delivery_cep"`
	Lines         []EnteredLine    `json:"lines"`
	Taxes         tax.Input        `json:"taxes"`

	// Manifest-only fields.
	TransportMode   string                  `json:"transport_mode,omitempty"`
	TotalValue      *decimal.Decimal        `json:"total_value,omitempty"`
	TotalWeight     *decimal.Decimal        `json:"total_weight,omitempty"`
	VehicleCapacity *decimal.Decimal        `json:"vehicle_capacity_kg,omitempty"`
	DistanceKM      *decimal.Decimal        `json:"distance_km,omitempty"`
	GaugedWeight    *decimal.Decimal        `json:"gauged_weight_kg,omitempty"`
	Linked          []domain.LinkedDocument `json:"linked_documents,omitempty"`
}

// EnteredLine is one free-form line item.
type EnteredLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total is the line's merchandise value, rounded to 2 places.
func (l *EnteredLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Round(2)
}

// AssembledDocument is the coded, downstream-ready payload.
type AssembledDocument struct {
	Kind              domain.DocumentKind  `json:"kind"`
	IssuedAt          time.Time            `json:"issued_at"`
	OperationCode     int                  `json:"operation_code"`
	PurposeCode       int                  `json:"purpose_code"`
	PresenceCode      int                  `json:"presence_code"`
	FinalConsumerCode int                  `json:"final_consumer_code"`
	Issuer            domain.IssuerProfile `json:"issuer"`
	BuyerName         string               `json:"buyer_name"`
	BuyerCPF          string               `json:"buyer_cpf,omitempty"`
	BuyerCNPJ         string               `json:"buyer_cnpj,omitempty"`
	MunicipalityCode  string               `json:"municipality_code"`
	DeliveryCEP       string               `json:"delivery_cep,omitempty"`
	Subtotal          decimal.Decimal      `json:"subtotal"`
	Taxes             domain.TaxBreakdown  `json:"taxes"`
	GrandTotal        decimal.Decimal      `json:"grand_total"`
}

// Adapter maps entered values into coded fields and composes the identifier,
// tax and lifecycle checks into one validation pass.
type Adapter struct {
	municipalities *MunicipalityTable
	issuer         port.IssuerProfileProvider
	lifecycle      *lifecycle.Validator
}

// New builds an Adapter. All collaborators are required.
func New(municipalities *MunicipalityTable, issuer port.IssuerProfileProvider, lc *lifecycle.Validator) *Adapter {
	if municipalities == nil || issuer == nil || lc == nil {
		panic("adapter: nil collaborator")
	}
	return &Adapter{municipalities: municipalities, issuer: issuer, lifecycle: lc}
}

// Municipalities exposes the injected table so callers can register entries.
func (a *Adapter) Municipalities() *MunicipalityTable {
	return a.municipalities
}

// Subtotal sums the line totals. It is the merchandise subtotal only; tax
// amounts come from the tax engine, not from here.
func Subtotal(lines []EnteredLine) decimal.Decimal {
	sum := decimal.Zero
	for i := range lines {
		sum = sum.Add(lines[i].Total())
	}
	return sum
}

// Assemble translates an entered document into its coded payload, computing
// taxes and running every applicable validation. Business findings land in
// the ValidationResult; the returned error is reserved for the privileged
// failure path (issuer profile missing) and for malformed calls.
func (a *Adapter) Assemble(ctx context.Context, in *EnteredDocument) (*AssembledDocument, domain.ValidationResult, error) {
	if in == nil {
		panic("adapter: nil entered document")
	}

	kind := domain.DocumentKind(normalize(in.Kind))
	if !kind.Valid() {
		return nil, domain.ValidationResult{}, fmt.Errorf("assembling document: %w: %q", domain.ErrUnknownDocumentKind, in.Kind)
	}

	// The issuing identity must come from configuration. Substituting a
	// placeholder here would produce a document carrying the wrong legal
	// identity, so this path fails loudly.
	profile, err := a.issuer.Profile(ctx)
	if err != nil {
		return nil, domain.ValidationResult{}, fmt.Errorf("loading issuer profile: %w", err)
	}

	r := domain.NewReport()

	out := &AssembledDocument{
		Kind:              kind,
		IssuedAt:          in.IssuedAt,
		OperationCode:     OperationCode(in.Operation),
		PurposeCode:       PurposeCode(in.Purpose),
		PresenceCode:      PresenceCode(in.Presence),
		FinalConsumerCode: FinalConsumerCode(in.FinalConsumer),
		Issuer:            *profile,
		BuyerName:         in.BuyerName,
		MunicipalityCode:  a.municipalities.Resolve(in.DeliveryCity, in.DeliveryState),
	}

	if !identifier.ValidCNPJ(profile.TaxID) {
		r.Error("issuer tax ID fails the check-digit verification")
	}

	a.routeBuyerTaxID(in.BuyerTaxID, out, r)

	if in.DeliveryCEP != "" {
		if identifier.ValidCEP(in.DeliveryCEP) {
			out.DeliveryCEP = identifier.Digits(in.DeliveryCEP)
		} else {
			r.Error("delivery postal code must have exactly 8 digits")
		}
	}

	out.Subtotal = Subtotal(in.Lines)
	out.Taxes = tax.Compute(kind, in.Taxes)
	out.GrandTotal = tax.DocumentTotal(out.Subtotal, out.Taxes)

	if kind == domain.KindMDFe {
		r.Merge(a.lifecycle.ReconcileManifest(manifestRecord(in)))
	}

	return out, r.Result(), nil
}

// routeBuyerTaxID classifies the entered tax ID by stripped digit length
// (11 → person, 14 → organization) and routes it to the matching field.
func (a *Adapter) routeBuyerTaxID(raw string, out *AssembledDocument, r *domain.Report) {
	digits := identifier.Digits(raw)
	switch len(digits) {
	case 0:
		// Buyer tax ID is optional for final-consumer operations.
	case 11:
		if identifier.ValidCPF(digits) {
			out.BuyerCPF = digits
		} else {
			r.Error("buyer CPF fails the check-digit verification")
		}
	case 14:
		if identifier.ValidCNPJ(digits) {
			out.BuyerCNPJ = digits
		} else {
			r.Error("buyer CNPJ fails the check-digit verification")
		}
	default:
		r.Error(fmt.Sprintf("buyer tax ID must have 11 or 14 digits, got %d", len(digits)))
	}
}

// manifestRecord projects the entered manifest fields onto a DocumentRecord
// for reconciliation.
func manifestRecord(in *EnteredDocument) *domain.DocumentRecord {
	doc := &domain.DocumentRecord{
		Kind:            domain.KindMDFe,
		Status:          domain.StatusPending,
		IssuedAt:        in.IssuedAt,
		Mode:            domain.TransportMode(normalize(in.TransportMode)),
		VehicleCapacity: in.VehicleCapacity,
		DistanceKM:      in.DistanceKM,
		GaugedWeight:    in.GaugedWeight,
		Linked:          in.Linked,
	}
	if in.TotalValue != nil {
		doc.TotalValue = *in.TotalValue
	}
	if in.TotalWeight != nil {
		doc.TotalWeight = *in.TotalWeight
	}
	return doc
}
