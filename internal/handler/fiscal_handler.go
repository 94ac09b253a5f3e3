package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fisco/internal/adapter"
	"fisco/internal/domain"
	"fisco/internal/lifecycle"
	"fisco/internal/service"
	"fisco/internal/tax"
)

// FiscalHandler handles document validation, tax computation, and lifecycle
// event endpoints.
type FiscalHandler struct {
	documentService service.DocumentService
}

// NewFiscalHandler creates a new FiscalHandler.
func NewFiscalHandler(documentService service.DocumentService) *FiscalHandler {
	return &FiscalHandler{documentService: documentService}
}

// ValidateDocument handles POST /api/v1/documents/validate
func (h *FiscalHandler) ValidateDocument(c *gin.Context) {
	var req adapter.EnteredDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed document payload")
		return
	}

	doc, result, err := h.documentService.ValidateDocument(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"document": doc, "validation": result})
}

// ComputeTaxes handles POST /api/v1/taxes/compute
func (h *FiscalHandler) ComputeTaxes(c *gin.Context) {
	var req struct {
		Kind      string          `json:"kind" binding:"required"`
		BaseValue decimal.Decimal `json:"base_value"`
		Taxes     tax.Input       `json:"taxes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind is required")
		return
	}

	breakdown, total, err := h.documentService.ComputeTaxes(req.Kind, req.BaseValue, req.Taxes)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"taxes": breakdown, "document_total": total})
}

// CheckTransition handles POST /api/v1/lifecycle/transitions/check
func (h *FiscalHandler) CheckTransition(c *gin.Context) {
	var req struct {
		From domain.DocumentStatus `json:"from" binding:"required"`
		To   domain.DocumentStatus `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from and to statuses are required")
		return
	}

	RespondOK(c, h.documentService.CheckTransition(req.From, req.To))
}

// CancellationWindow handles GET /api/v1/lifecycle/cancellation/window
func (h *FiscalHandler) CancellationWindow(c *gin.Context) {
	kind := c.Query("kind")
	issuedAt, err := time.Parse(time.RFC3339, c.Query("issued_at"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "issued_at must be an RFC 3339 timestamp")
		return
	}

	status, err := h.documentService.CancellationWindow(kind, issuedAt)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, status)
}

// CheckCancellation handles POST /api/v1/lifecycle/cancellation/check
func (h *FiscalHandler) CheckCancellation(c *gin.Context) {
	var req struct {
		Document      domain.DocumentRecord `json:"document"`
		Justification string                `json:"justification"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed cancellation payload")
		return
	}
	if !req.Document.Kind.Valid() {
		HandleError(c, domain.ErrUnknownDocumentKind)
		return
	}

	RespondOK(c, h.documentService.CheckCancellation(&req.Document, req.Justification))
}

// CorrectableFields handles GET /api/v1/lifecycle/corrections/fields
func (h *FiscalHandler) CorrectableFields(c *gin.Context) {
	RespondOK(c, gin.H{"fields": lifecycle.CorrectableFields()})
}

// CheckCorrection handles POST /api/v1/lifecycle/corrections/check
func (h *FiscalHandler) CheckCorrection(c *gin.Context) {
	var req struct {
		Document domain.DocumentRecord `json:"document"`
		Fields   []string              `json:"fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed correction payload")
		return
	}

	RespondOK(c, h.documentService.CheckCorrection(&req.Document, req.Fields))
}

// CheckNumberVoid handles POST /api/v1/lifecycle/number-voids/check
func (h *FiscalHandler) CheckNumberVoid(c *gin.Context) {
	var req lifecycle.NumberVoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed number void payload")
		return
	}

	RespondOK(c, h.documentService.CheckNumberVoid(req))
}

// ReconcileManifest handles POST /api/v1/manifests/reconcile
func (h *FiscalHandler) ReconcileManifest(c *gin.Context) {
	var req domain.DocumentRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed manifest payload")
		return
	}

	RespondOK(c, h.documentService.ReconcileManifest(&req))
}
