package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fisco/internal/domain"
	"fisco/internal/identifier"
)

var identifierKinds = map[identifier.Kind]bool{
	identifier.CPF:       true,
	identifier.CNPJ:      true,
	identifier.CEP:       true,
	identifier.AccessKey: true,
}

// IdentifierHandler handles identifier validation and formatting endpoints.
type IdentifierHandler struct{}

// NewIdentifierHandler creates a new IdentifierHandler.
func NewIdentifierHandler() *IdentifierHandler {
	return &IdentifierHandler{}
}

// Validate handles POST /api/v1/identifiers/validate
func (h *IdentifierHandler) Validate(c *gin.Context) {
	var req struct {
		Kind  identifier.Kind `json:"kind" binding:"required"`
		Value string          `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind and value are required")
		return
	}
	if !identifierKinds[req.Kind] {
		HandleError(c, domain.ErrUnknownIdentifier)
		return
	}

	valid := identifier.Valid(req.Kind, req.Value)
	resp := gin.H{"kind": req.Kind, "valid": valid}
	if valid {
		resp["formatted"] = identifier.Format(req.Kind, req.Value)
	}
	RespondOK(c, resp)
}

// Format handles POST /api/v1/identifiers/format
//
// Formatting tolerates partial input so frontends can mask as the user
// types; it never implies the value passed validation.
func (h *IdentifierHandler) Format(c *gin.Context) {
	var req struct {
		Kind  identifier.Kind `json:"kind" binding:"required"`
		Value string          `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind is required")
		return
	}
	if !identifierKinds[req.Kind] {
		HandleError(c, domain.ErrUnknownIdentifier)
		return
	}

	RespondOK(c, gin.H{"kind": req.Kind, "formatted": identifier.Format(req.Kind, req.Value)})
}
