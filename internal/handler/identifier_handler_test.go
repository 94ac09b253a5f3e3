package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fisco/internal/handler"
)

func TestIdentifierHandler_Validate(t *testing.T) {
	h := handler.NewIdentifierHandler()

	t.Run("valid cpf", func(t *testing.T) {
		w := postJSON(t, h.Validate, "/api/v1/identifiers/validate",
			map[string]string{"kind": "cpf", "value": "529.982.247-25"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Valid     bool   `json:"valid"`
				Formatted string `json:"formatted"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Valid)
		assert.Equal(t, "529.982.247-25", resp.Data.Formatted)
	})

	t.Run("invalid cnpj check digit", func(t *testing.T) {
		w := postJSON(t, h.Validate, "/api/v1/identifiers/validate",
			map[string]string{"kind": "cnpj", "value": "11222333000182"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Valid bool `json:"valid"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.Valid)
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := postJSON(t, h.Validate, "/api/v1/identifiers/validate",
			map[string]string{"kind": "rg", "value": "123456"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp handler.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "UNKNOWN_IDENTIFIER_KIND", resp.Error.Code)
	})

	t.Run("missing value", func(t *testing.T) {
		w := postJSON(t, h.Validate, "/api/v1/identifiers/validate",
			map[string]string{"kind": "cpf"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdentifierHandler_Format(t *testing.T) {
	h := handler.NewIdentifierHandler()

	t.Run("partial cpf masked as typed", func(t *testing.T) {
		w := postJSON(t, h.Format, "/api/v1/identifiers/format",
			map[string]string{"kind": "cpf", "value": "5299822"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Formatted string `json:"formatted"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "529.982.2", resp.Data.Formatted)
	})

	t.Run("access key grouped", func(t *testing.T) {
		w := postJSON(t, h.Format, "/api/v1/identifiers/format",
			map[string]string{"kind": "access_key", "value": "35250111222333000181550010000012341123456786"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Formatted string `json:"formatted"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "3525 0111 2223 3300 0181 5500 1000 0012 3411 2345 6786", resp.Data.Formatted)
	})
}
