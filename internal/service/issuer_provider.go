package service

import (
	"context"
	"fmt"

	"fisco/internal/config"
	"fisco/internal/domain"
	"fisco/internal/port"
)

// configIssuerProvider serves the issuing organization's profile from the
// process configuration.
type configIssuerProvider struct {
	cfg config.IssuerConfig
}

// NewConfigIssuerProvider returns a port.IssuerProfileProvider backed by the
// Issuer section of the configuration. A missing tax ID means the process
// was started without a legal identity, which every caller must treat as
// fatal for document assembly.
func NewConfigIssuerProvider(cfg config.IssuerConfig) port.IssuerProfileProvider {
	return &configIssuerProvider{cfg: cfg}
}

func (p *configIssuerProvider) Profile(_ context.Context) (*domain.IssuerProfile, error) {
	if p.cfg.TaxID == "" {
		return nil, fmt.Errorf("issuer provider: %w", domain.ErrIssuerNotConfigured)
	}
	return &domain.IssuerProfile{
		Name:      p.cfg.Name,
		TaxID:     p.cfg.TaxID,
		TaxRegime: p.cfg.TaxRegime,
		Address: domain.Address{
			Street:           p.cfg.Street,
			Number:           p.cfg.Number,
			District:         p.cfg.District,
			City:             p.cfg.City,
			State:            p.cfg.State,
			PostalCode:       p.cfg.PostalCode,
			MunicipalityCode: p.cfg.MunicipalityCode,
		},
	}, nil
}
