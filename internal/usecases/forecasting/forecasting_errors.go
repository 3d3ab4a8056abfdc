package forecasting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de previsões de fluxo de caixa
var (
	// Erros de validação
	ErrInvalidRequest   = errors.New("invalid forecast request")
	ErrMalformedID      = errors.New("malformed forecast ID")
	ErrForecastNotFound = errors.New("forecast not found")
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrCurrencyMismatch = errors.New("bank accounts in mixed currencies")

	// Erros internos
	ErrBuildForecast = errors.New("error building forecast")

	// Erros de banco de dados
	ErrFetchTenant     = errors.New("error fetching tenant from database")
	ErrFetchFinancials = errors.New("error fetching financial history")
	ErrFetchForecasts  = errors.New("error fetching forecasts from database")
	ErrPersistForecast = errors.New("error persisting forecast")
)

// ForecastError é um erro com contexto adicional para previsões
type ForecastError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ForecastID string // ID da previsão envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError cria um novo ForecastError
func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewForecastErrorWithID cria um novo ForecastError com ID da previsão
func NewForecastErrorWithID(err error, code string, forecastID string, details string) *ForecastError {
	return &ForecastError{
		Err:        err,
		Code:       code,
		ForecastID: forecastID,
		Details:    details,
	}
}
