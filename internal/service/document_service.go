package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"fisco/internal/adapter"
	"fisco/internal/domain"
	"fisco/internal/lifecycle"
	"fisco/internal/port"
	"fisco/internal/tax"
)

// DocumentService exposes the fiscal rule engine to the transport layer:
// document assembly/validation, tax computation and lifecycle event checks.
type DocumentService interface {
	ValidateDocument(ctx context.Context, in *adapter.EnteredDocument) (*adapter.AssembledDocument, domain.ValidationResult, error)
	ComputeTaxes(kind string, baseValue decimal.Decimal, in tax.Input) (domain.TaxBreakdown, decimal.Decimal, error)
	CheckTransition(from, to domain.DocumentStatus) domain.ValidationResult
	CheckCancellation(doc *domain.DocumentRecord, justification string) domain.ValidationResult
	CancellationWindow(kind string, issuedAt time.Time) (lifecycle.WindowStatus, error)
	CheckCorrection(doc *domain.DocumentRecord, fields []string) domain.ValidationResult
	CheckNumberVoid(req lifecycle.NumberVoidRequest) domain.ValidationResult
	ReconcileManifest(doc *domain.DocumentRecord) domain.ValidationResult
	RegisterMunicipality(entry port.MunicipalityEntry) error
}

type documentService struct {
	adapter   *adapter.Adapter
	lifecycle *lifecycle.Validator
}

// NewDocumentService wires the rule engine components.
func NewDocumentService(a *adapter.Adapter, lc *lifecycle.Validator) DocumentService {
	return &documentService{adapter: a, lifecycle: lc}
}

func (s *documentService) ValidateDocument(ctx context.Context, in *adapter.EnteredDocument) (*adapter.AssembledDocument, domain.ValidationResult, error) {
	out, res, err := s.adapter.Assemble(ctx, in)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	log.Printf("service.DocumentService: %s document validated — valid=%t errors=%d warnings=%d",
		out.Kind, res.Valid, len(res.Errors), len(res.Warnings))
	return out, res, nil
}

func (s *documentService) ComputeTaxes(kind string, baseValue decimal.Decimal, in tax.Input) (domain.TaxBreakdown, decimal.Decimal, error) {
	k := domain.DocumentKind(kind)
	if !k.Valid() {
		return domain.TaxBreakdown{}, decimal.Zero, fmt.Errorf("computing taxes: %w: %q", domain.ErrUnknownDocumentKind, kind)
	}
	breakdown := tax.Compute(k, in)
	return breakdown, tax.DocumentTotal(baseValue, breakdown), nil
}

func (s *documentService) CheckTransition(from, to domain.DocumentStatus) domain.ValidationResult {
	return s.lifecycle.ValidateTransition(from, to)
}

func (s *documentService) CheckCancellation(doc *domain.DocumentRecord, justification string) domain.ValidationResult {
	return s.lifecycle.ValidateCancellation(doc, justification)
}

func (s *documentService) CancellationWindow(kind string, issuedAt time.Time) (lifecycle.WindowStatus, error) {
	k := domain.DocumentKind(kind)
	if !k.Valid() {
		return lifecycle.WindowStatus{}, fmt.Errorf("cancellation window: %w: %q", domain.ErrUnknownDocumentKind, kind)
	}
	return s.lifecycle.CancellationWindow(k, issuedAt), nil
}

func (s *documentService) CheckCorrection(doc *domain.DocumentRecord, fields []string) domain.ValidationResult {
	return s.lifecycle.ValidateCorrection(doc, fields)
}

func (s *documentService) CheckNumberVoid(req lifecycle.NumberVoidRequest) domain.ValidationResult {
	return s.lifecycle.ValidateNumberVoid(req)
}

func (s *documentService) ReconcileManifest(doc *domain.DocumentRecord) domain.ValidationResult {
	return s.lifecycle.ReconcileManifest(doc)
}

func (s *documentService) RegisterMunicipality(entry port.MunicipalityEntry) error {
	if err := s.adapter.Municipalities().Register(entry); err != nil {
		return err
	}
	log.Printf("service.DocumentService: municipality %s/%s registered as %s", entry.City, entry.State, entry.Code)
	return nil
}
