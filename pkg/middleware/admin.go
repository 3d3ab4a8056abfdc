package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// adminTokenHeader é o cabeçalho com o token operacional das rotas de cron
const adminTokenHeader = "X-Admin-Token"

// AdminToken restringe a rota a requisições que apresentem o token
// operacional configurado. Sem token configurado a rota fica bloqueada.
func AdminToken(authConfig config.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authConfig.AdminToken == "" {
				logrus.Warning("Rota operacional acessada sem token administrativo configurado")
				apiErrors.WriteError(w, apiErrors.ErrTenantForbidden, "Rotas operacionais estão desabilitadas", nil)
				return
			}

			provided := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(authConfig.AdminToken)) != 1 {
				logrus.Warningf("Tentativa de acesso operacional negada em %s", r.URL.Path)
				apiErrors.WriteError(w, apiErrors.ErrTenantForbidden, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
