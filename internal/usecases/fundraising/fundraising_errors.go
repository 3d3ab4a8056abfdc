package fundraising

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de predições de captação
var (
	// Erros de validação
	ErrInvalidRequest     = errors.New("invalid prediction request")
	ErrMalformedID        = errors.New("malformed prediction ID")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrCurrencyMismatch   = errors.New("bank accounts in mixed currencies")

	// Erros internos
	ErrBuildPrediction = errors.New("error building prediction")

	// Erros de integração
	ErrMarketSignal = errors.New("error fetching market conditions")

	// Erros de banco de dados
	ErrFetchTenant       = errors.New("error fetching tenant from database")
	ErrFetchFinancials   = errors.New("error fetching financial history")
	ErrFetchSnapshots    = errors.New("error fetching KPI snapshots")
	ErrFetchPredictions  = errors.New("error fetching predictions from database")
	ErrPersistPrediction = errors.New("error persisting prediction")
)

// PredictionError é um erro com contexto adicional para predições
type PredictionError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	PredictionID string // ID da predição envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PredictionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PredictionError) Unwrap() error {
	return e.Err
}

// NewPredictionError cria um novo PredictionError
func NewPredictionError(err error, code string, details string) *PredictionError {
	return &PredictionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewPredictionErrorWithID cria um novo PredictionError com ID da predição
func NewPredictionErrorWithID(err error, code string, predictionID string, details string) *PredictionError {
	return &PredictionError{
		Err:          err,
		Code:         code,
		PredictionID: predictionID,
		Details:      details,
	}
}
