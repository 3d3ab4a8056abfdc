package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// requestTenant extrai as claims do tenant colocadas no contexto pelo
// middleware de autenticação
func requestTenant(r *http.Request) (*domain.TenantClaims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyTenant).(*domain.TenantClaims)
	return claims, ok
}

// mustTenant responde 401 quando a requisição chegou sem claims; rotas de
// artefatos nunca são públicas
func mustTenant(w http.ResponseWriter, r *http.Request) (*domain.TenantClaims, bool) {
	claims, ok := requestTenant(r)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Tenant não autenticado", nil)
		return nil, false
	}
	return claims, true
}
