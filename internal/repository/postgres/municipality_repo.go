package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fisco/internal/port"
)

type municipalityRepo struct {
	db *sqlx.DB
}

// NewMunicipalityRepo creates a PostgreSQL-backed MunicipalityRepository.
func NewMunicipalityRepo(db *sqlx.DB) port.MunicipalityRepository {
	return &municipalityRepo{db: db}
}

func (r *municipalityRepo) LoadAll(ctx context.Context) ([]port.MunicipalityEntry, error) {
	var entries []port.MunicipalityEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT code, city, state
		 FROM municipalities
		 ORDER BY state, city`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
