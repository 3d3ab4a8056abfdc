package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/pkg/errors"
)

type contextKey string

const (
	// ContextKeyTenant guarda as claims do tenant autenticado na requisição
	ContextKeyTenant contextKey = "tenant"
)

// publicPaths são rotas servidas sem token
var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// TenantAuthMiddleware valida o JWT HS256 emitido pelo serviço de identidade
// e coloca as claims do tenant no contexto da requisição. A API não emite
// tokens nem gerencia usuários.
func TenantAuthMiddleware(authConfig config.Auth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Cabeçalho Authorization ausente", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims := &domain.TenantClaims{}
			_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
				return []byte(authConfig.Secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			if claims.TenantID == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token sem identificação de tenant", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyTenant, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
