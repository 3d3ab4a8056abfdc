package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação (1000-1999)
	ErrMissingToken    = "AUTH_001" // Token de autenticação ausente
	ErrInvalidToken    = "AUTH_002" // Token inválido
	ErrExpiredToken    = "AUTH_003" // Token expirado
	ErrTenantForbidden = "AUTH_004" // Tenant sem permissão para o recurso

	// Erros de validação (2000-2999)
	ErrInvalidRequest = "VAL_001" // Requisição inválida ou restrição violada
	ErrMalformedID    = "VAL_002" // Identificador de artefato malformado
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de recurso (3000-3999)
	ErrArtifactNotFound = "RES_001" // Artefato não encontrado no tenant

	// Erros de dados históricos (4000-4999)
	ErrInsufficientHistory = "DAT_001" // Histórico insuficiente para o cálculo

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:        http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrTenantForbidden:     http.StatusForbidden,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMalformedID:         http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrArtifactNotFound:    http.StatusNotFound,
	ErrInsufficientHistory: http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
