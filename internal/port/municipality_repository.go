package port

import "context"

// MunicipalityEntry is one row of the national municipality registry.
type MunicipalityEntry struct {
	Code  string `db:"code" json:"code"` // 7-digit IBGE code
	City  string `db:"city" json:"city"`
	State string `db:"state" json:"state"` // 2-letter UF
}

// MunicipalityRepository loads the municipality reference table.
type MunicipalityRepository interface {
	LoadAll(ctx context.Context) ([]MunicipalityEntry, error)
}
