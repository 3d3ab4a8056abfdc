package projecting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cenários de runway
var (
	// Erros de validação
	ErrInvalidRequest    = errors.New("invalid scenario request")
	ErrMalformedID       = errors.New("malformed scenario ID")
	ErrScenarioNotFound  = errors.New("scenario not found")
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrCurrencyMismatch  = errors.New("bank accounts in mixed currencies")
	ErrSimulationAborted = errors.New("simulation aborted")

	// Erros de banco de dados
	ErrFetchTenant     = errors.New("error fetching tenant from database")
	ErrFetchFinancials = errors.New("error fetching financial history")
	ErrFetchScenarios  = errors.New("error fetching scenarios from database")
	ErrPersistScenario = errors.New("error persisting scenario")
)

// ScenarioError é um erro com contexto adicional para cenários de runway
type ScenarioError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ScenarioID string // ID do cenário envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ScenarioError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// NewScenarioError cria um novo ScenarioError
func NewScenarioError(err error, code string, details string) *ScenarioError {
	return &ScenarioError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewScenarioErrorWithID cria um novo ScenarioError com ID do cenário
func NewScenarioErrorWithID(err error, code string, scenarioID string, details string) *ScenarioError {
	return &ScenarioError{
		Err:        err,
		Code:       code,
		ScenarioID: scenarioID,
		Details:    details,
	}
}
