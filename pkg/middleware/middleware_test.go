package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/authenticating"
	"github.com/yuuki-courage/aads/pkg/log"
)

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(claims.Role))
	})
}

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()

	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})
	token, err := auth.IssueToken("ops", authenticating.RoleOperator, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "Healthcheck público", path: "/healthcheck", wantStatus: http.StatusTeapot},
		{name: "Sem cabeçalho", path: "/v1/analyze", wantStatus: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/analyze", header: token, wantStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/analyze", header: "Bearer x.y.z", wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/analyze", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: authenticating.RoleOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_Desligado(t *testing.T) {
	auth := authenticating.NewService(&config.Config{})
	rec := httptest.NewRecorder()

	AuthMiddleware(auth)(claimsEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, authenticating.RoleAdmin, rec.Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Sem claims", wantStatus: http.StatusUnauthorized},
		{name: "Perfil permitido", claims: &domain.Claims{Role: authenticating.RoleOperator}, wantStatus: http.StatusOK},
		{name: "Perfil negado", claims: &domain.Claims{Role: authenticating.RoleViewer}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/bulk/generate", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOrOperator()(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors("http://localhost:3000")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha")
	})
	handler := LogPanicMiddleware()(LoggingMiddleware()(panicking))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
