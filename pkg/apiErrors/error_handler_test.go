package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{"Configuração inválida", ErrInvalidConfig, http.StatusUnprocessableEntity},
		{"Recurso ausente", ErrResourceNotFound, http.StatusNotFound},
		{"Token ausente", ErrMissingToken, http.StatusUnauthorized},
		{"Código desconhecido", "XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "falhou", []string{"a"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "falhou", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidConfig).Code)

	apiErr := FromError(errors.New("quebrou"), ErrInvalidConfig)
	assert.Equal(t, APIError{Code: ErrInvalidConfig, Message: "quebrou"}, apiErr)
}
