package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fisco/internal/adapter"
	"fisco/internal/domain"
	"fisco/internal/port"
	"fisco/internal/service"
)

// MunicipalityHandler handles municipality reference table endpoints.
type MunicipalityHandler struct {
	documentService service.DocumentService
	table           *adapter.MunicipalityTable
}

// NewMunicipalityHandler creates a new MunicipalityHandler.
func NewMunicipalityHandler(documentService service.DocumentService, table *adapter.MunicipalityTable) *MunicipalityHandler {
	return &MunicipalityHandler{documentService: documentService, table: table}
}

// Register handles POST /api/v1/municipalities
func (h *MunicipalityHandler) Register(c *gin.Context) {
	var req port.MunicipalityEntry
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" || req.City == "" || req.State == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "code, city, and state are required")
		return
	}

	if err := h.documentService.RegisterMunicipality(req); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, req)
}

// Lookup handles GET /api/v1/municipalities/lookup
func (h *MunicipalityHandler) Lookup(c *gin.Context) {
	city := c.Query("city")
	state := c.Query("state")
	if city == "" || state == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "city and state query parameters are required")
		return
	}

	code, ok := h.table.Lookup(city, state)
	if !ok {
		HandleError(c, domain.ErrMunicipalityNotFound)
		return
	}

	RespondOK(c, gin.H{"city": city, "state": state, "code": code})
}
