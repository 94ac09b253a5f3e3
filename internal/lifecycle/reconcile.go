package lifecycle

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fisco/internal/domain"
	"fisco/internal/identifier"
)

// reconcileTolerance is the maximum absolute difference accepted between a
// manifest's declared totals and the sum over its linked documents.
var reconcileTolerance = decimal.RequireFromString("0.01")

// maxLinkageGap is the largest allowed span between the earliest linked
// document and the manifest itself.
const maxLinkageGap = 7 * 24 * time.Hour

// ReconcileManifest cross-checks a cargo manifest against its linked
// documents: declared value and weight totals within tolerance, access keys
// structurally valid, linkage timestamps coherent, plus the advisory checks
// (vehicle over-capacity, modal-specific data) that warn without blocking.
func (v *Validator) ReconcileManifest(doc *domain.DocumentRecord) domain.ValidationResult {
	if doc == nil {
		panic("lifecycle: nil document")
	}
	r := domain.NewReport()

	if doc.Kind != domain.KindMDFe {
		r.Error(fmt.Sprintf("reconciliation applies to cargo manifests, got kind %q", doc.Kind))
		return r.Result()
	}
	if len(doc.Linked) == 0 {
		r.Error("manifest links no documents")
		return r.Result()
	}

	var sumValue, sumWeight decimal.Decimal
	earliest := doc.Linked[0].IssuedAt
	for i := range doc.Linked {
		ld := &doc.Linked[i]
		sumValue = sumValue.Add(ld.Value)
		sumWeight = sumWeight.Add(ld.Weight)

		if !identifier.ValidAccessKey(ld.AccessKey) {
			r.Error(fmt.Sprintf("linked document %d has an invalid access key", i))
		}
		if ld.IssuedAt.After(doc.IssuedAt) {
			r.Error(fmt.Sprintf("linked document %d was issued after the manifest (%s > %s)",
				i, ld.IssuedAt.Format(time.RFC3339), doc.IssuedAt.Format(time.RFC3339)))
		}
		if ld.IssuedAt.Before(earliest) {
			earliest = ld.IssuedAt
		}
	}

	if gap := doc.IssuedAt.Sub(earliest); gap > maxLinkageGap {
		r.Error(fmt.Sprintf("earliest linked document predates the manifest by %.0f hours, maximum is %.0f",
			gap.Hours(), maxLinkageGap.Hours()))
	}

	if diff := sumValue.Sub(doc.TotalValue).Abs(); diff.GreaterThan(reconcileTolerance) {
		r.Error(fmt.Sprintf("declared total value %s does not match linked documents sum %s",
			doc.TotalValue.StringFixed(2), sumValue.StringFixed(2)))
	}
	if diff := sumWeight.Sub(doc.TotalWeight).Abs(); diff.GreaterThan(reconcileTolerance) {
		r.Error(fmt.Sprintf("declared total weight %s does not match linked documents sum %s",
			doc.TotalWeight.StringFixed(2), sumWeight.StringFixed(2)))
	}

	// Over-capacity is operationally significant but not fiscally invalid.
	if doc.VehicleCapacity != nil && doc.TotalWeight.GreaterThan(*doc.VehicleCapacity) {
		r.Warning(fmt.Sprintf("total weight %s exceeds vehicle capacity %s",
			doc.TotalWeight.StringFixed(2), doc.VehicleCapacity.StringFixed(2)))
	}

	switch doc.Mode {
	case domain.ModeRoad:
		if doc.DistanceKM == nil {
			r.Warning("road transport without a declared route distance")
		}
	case domain.ModeAir:
		if doc.GaugedWeight == nil {
			r.Warning("air transport without a gauged weight")
		}
	}

	return r.Result()
}
