package domain

import "errors"

var (
	ErrIssuerNotConfigured  = errors.New("issuer profile not configured")
	ErrUnknownDocumentKind  = errors.New("unknown document kind")
	ErrUnknownIdentifier    = errors.New("unknown identifier kind")
	ErrMunicipalityNotFound = errors.New("municipality not found")
	ErrDuplicateEntry       = errors.New("entry already registered")
	ErrNotFound             = errors.New("resource not found")
)
