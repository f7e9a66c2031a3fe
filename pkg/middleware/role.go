package middleware

import (
	"net/http"
	"slices"

	"github.com/yuuki-courage/aads/internal/usecases/authenticating"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos perfis
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				log.ForContext(r.Context()).Warnf("Acesso negado para %s, perfil=%s", claims.Subject, claims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleAdmin)
}

// AdminOrOperator libera as rotas que geram planilhas de alterações
func AdminOrOperator() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleAdmin, authenticating.RoleOperator)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleAdmin, authenticating.RoleOperator, authenticating.RoleViewer)
}
