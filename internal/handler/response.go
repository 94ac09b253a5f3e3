package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fisco/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrMunicipalityNotFound):
		return http.StatusNotFound, "MUNICIPALITY_NOT_FOUND", "municipality not found for city/state"
	case errors.Is(err, domain.ErrDuplicateEntry):
		return http.StatusConflict, "DUPLICATE_ENTRY", "entry already registered"
	case errors.Is(err, domain.ErrUnknownDocumentKind):
		return http.StatusBadRequest, "UNKNOWN_DOCUMENT_KIND", "document kind must be 'nfe', 'cte', or 'mdfe'"
	case errors.Is(err, domain.ErrUnknownIdentifier):
		return http.StatusBadRequest, "UNKNOWN_IDENTIFIER_KIND", "identifier kind must be 'cpf', 'cnpj', 'cep', or 'access_key'"
	case errors.Is(err, domain.ErrIssuerNotConfigured):
		return http.StatusServiceUnavailable, "ISSUER_NOT_CONFIGURED", "issuer profile is not configured on this server"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
