package domain

// DocumentKind identifies the three electronic fiscal document models.
type DocumentKind string

const (
	KindNFe  DocumentKind = "nfe"  // goods invoice (NF-e, modelo 55)
	KindCTe  DocumentKind = "cte"  // freight transport document (CT-e, modelo 57)
	KindMDFe DocumentKind = "mdfe" // cargo manifest aggregate (MDF-e, modelo 58)
)

// Valid reports whether k is one of the three known document kinds.
func (k DocumentKind) Valid() bool {
	return k == KindNFe || k == KindCTe || k == KindMDFe
}

// DocumentStatus represents the lifecycle state of a fiscal document.
type DocumentStatus string

const (
	StatusDraft       DocumentStatus = "draft"
	StatusPending     DocumentStatus = "pending"
	StatusAuthorized  DocumentStatus = "authorized"
	StatusCancelled   DocumentStatus = "cancelled"
	StatusRejected    DocumentStatus = "rejected"
	StatusInvalidated DocumentStatus = "invalidated"
)

// TaxKind identifies one of the computable tax figures on a document.
// ICMS and ISS are the legacy taxes; CBS, IBS and ISel belong to the
// phased-in forward regime and are optional on every document kind.
type TaxKind string

const (
	TaxICMS TaxKind = "icms" // goods circulation tax
	TaxISS  TaxKind = "iss"  // transport/service tax
	TaxCBS  TaxKind = "cbs"  // federal contribution on goods and services
	TaxIBS  TaxKind = "ibs"  // shared goods-and-services tax
	TaxISel TaxKind = "isel" // selective tax
)

// TransportMode is the modal of a transport document or manifest.
type TransportMode string

const (
	ModeRoad  TransportMode = "road"
	ModeAir   TransportMode = "air"
	ModeWater TransportMode = "water"
	ModeRail  TransportMode = "rail"
)

// LinkedKind is the sub-kind of a document referenced by a manifest.
type LinkedKind string

const (
	LinkedNFe LinkedKind = "nfe"
	LinkedCTe LinkedKind = "cte"
)
