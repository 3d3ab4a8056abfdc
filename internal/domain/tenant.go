package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TenantStatus representa o estado de um tenant na plataforma
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

// Tenant é a conta organizacional que delimita o isolamento de dados
type Tenant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Status       TenantStatus `json:"status"`
	BaseCurrency Currency     `json:"base_currency"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}

// TenantClaims são as claims do token emitido pelo serviço de identidade.
// A API apenas valida o token; emissão e gestão de usuários ficam fora daqui.
type TenantClaims struct {
	TenantID string `json:"tenant_id"`
	OrgName  string `json:"org_name,omitempty"`
	jwt.RegisteredClaims
}
