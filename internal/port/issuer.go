package port

import (
	"context"

	"fisco/internal/domain"
)

// IssuerProfileProvider supplies the process-wide configured identity of the
// issuing organization. Implementations return
// domain.ErrIssuerNotConfigured when no profile is available; callers must
// treat that as fatal for the validation pass, never substitute placeholder
// data on a document headed for the fiscal authority.
type IssuerProfileProvider interface {
	Profile(ctx context.Context) (*domain.IssuerProfile, error)
}
