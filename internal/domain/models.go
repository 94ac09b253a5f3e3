package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentRecord is the kind-tagged fiscal document submitted for validation.
// Records are built fresh for each validation pass and discarded once the
// result is consumed; nothing in this package persists them.
type DocumentRecord struct {
	ID          uuid.UUID        `json:"id"`
	Kind        DocumentKind     `json:"kind"`
	Status      DocumentStatus   `json:"status"`
	IssuedAt    time.Time        `json:"issued_at"`
	TotalValue  decimal.Decimal  `json:"total_value"`
	TotalWeight decimal.Decimal  `json:"total_weight"`
	Taxes       TaxBreakdown     `json:"taxes"`
	Linked      []LinkedDocument `json:"linked_documents,omitempty"`

	// Transport metadata, meaningful for cte/mdfe only.
	Mode            TransportMode    `json:"transport_mode,omitempty"`
	VehicleCapacity *decimal.Decimal `json:"vehicle_capacity_kg,omitempty"`
	DistanceKM      *decimal.Decimal `json:"distance_km,omitempty"`
	GaugedWeight    *decimal.Decimal `json:"gauged_weight_kg,omitempty"`
}

// LinkedDocument is a manifest's reference to one of its component documents.
type LinkedDocument struct {
	Kind      LinkedKind      `json:"kind"`
	AccessKey string          `json:"access_key"`
	Value     decimal.Decimal `json:"value"`
	Weight    decimal.Decimal `json:"weight"`
	IssuedAt  time.Time       `json:"issued_at"`
}

// TaxAmount is one computed tax figure. Base and rate are echoed back so a
// caller can display how the amount was derived.
type TaxAmount struct {
	Base   decimal.Decimal `json:"base"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// TaxBreakdown holds one optional amount per tax kind. A nil entry means the
// base/rate pair was not supplied, which is distinct from an entry of zero.
type TaxBreakdown struct {
	ICMS *TaxAmount `json:"icms,omitempty"`
	ISS  *TaxAmount `json:"iss,omitempty"`
	CBS  *TaxAmount `json:"cbs,omitempty"`
	IBS  *TaxAmount `json:"ibs,omitempty"`
	ISel *TaxAmount `json:"isel,omitempty"`
}

// Get returns the entry for a tax kind, or nil when absent.
func (b *TaxBreakdown) Get(kind TaxKind) *TaxAmount {
	switch kind {
	case TaxICMS:
		return b.ICMS
	case TaxISS:
		return b.ISS
	case TaxCBS:
		return b.CBS
	case TaxIBS:
		return b.IBS
	case TaxISel:
		return b.ISel
	}
	return nil
}

// Amounts returns the present entries keyed by kind, in a fixed order.
func (b *TaxBreakdown) Amounts() []TaxAmount {
	var out []TaxAmount
	for _, e := range []*TaxAmount{b.ICMS, b.ISS, b.CBS, b.IBS, b.ISel} {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// IssuerProfile is the process-wide configured identity of the issuing
// organization, supplied by a port.IssuerProfileProvider.
type IssuerProfile struct {
	Name      string  `json:"name"`
	TaxID     string  `json:"tax_id"` // CNPJ, digits only
	Address   Address `json:"address"`
	TaxRegime string  `json:"tax_regime"` // e.g. "simples", "normal"
}

// Address is the registered address of the issuer or a document party.
type Address struct {
	Street           string `json:"street"`
	Number           string `json:"number"`
	District         string `json:"district"`
	City             string `json:"city"`
	State            string `json:"state"`
	PostalCode       string `json:"postal_code"`
	MunicipalityCode string `json:"municipality_code"`
}
