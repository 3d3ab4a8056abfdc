package cohorting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de coortes de receita
var (
	// Erros de validação
	ErrInvalidRequest = errors.New("invalid cohort request")
	ErrMalformedID    = errors.New("malformed cohort ID")
	ErrCohortNotFound = errors.New("cohort not found")
	ErrTenantNotFound = errors.New("tenant not found")

	// Erros de dados
	ErrInsufficientHistory = errors.New("insufficient cohort history")

	// Erros internos
	ErrBuildProjection = errors.New("error building cohort projection")

	// Erros de banco de dados
	ErrFetchTenant   = errors.New("error fetching tenant from database")
	ErrFetchCohorts  = errors.New("error fetching cohorts from database")
	ErrPersistCohort = errors.New("error persisting cohort")
)

// CohortError é um erro com contexto adicional para coortes
type CohortError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	CohortID string // ID da coorte envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CohortError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CohortError) Unwrap() error {
	return e.Err
}

// NewCohortError cria um novo CohortError
func NewCohortError(err error, code string, details string) *CohortError {
	return &CohortError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewCohortErrorWithID cria um novo CohortError com ID da coorte
func NewCohortErrorWithID(err error, code string, cohortID string, details string) *CohortError {
	return &CohortError{
		Err:      err,
		Code:     code,
		CohortID: cohortID,
		Details:  details,
	}
}
