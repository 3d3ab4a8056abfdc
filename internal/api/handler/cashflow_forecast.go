package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/internal/usecases/forecasting"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// CreateCashflowForecast deriva a previsão semanal de fluxo de caixa e a
// persiste como a previsão ativa do tenant
func CreateCashflowForecast(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		var request *domain.CreateForecastRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("forecasts: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("horizon_months", request.HorizonMonths).Info("forecasts: creating cashflow forecast")

		forecast, err := service.CreateCashflowForecast(r.Context(), claims.TenantID, request)
		if err != nil {
			logger.WithError(err).Error("forecasts: failed to create cashflow forecast")
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(forecast); err != nil {
			logger.WithError(err).Error("forecasts: failed to encode response")
		}
	})
}

func ListCashflowForecasts(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		forecasts, err := service.ListCashflowForecasts(claims.TenantID)
		if err != nil {
			logger.WithError(err).Error("forecasts: failed to list cashflow forecasts")
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(forecasts); err != nil {
			logger.WithError(err).Error("forecasts: failed to encode response")
		}
	})
}

func GetCashflowForecast(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		forecastID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		forecast, err := service.GetCashflowForecast(claims.TenantID, forecastID)
		if err != nil {
			logger.WithField("forecast_id", forecastID).WithError(err).Warn("forecasts: failed to get cashflow forecast")
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(forecast); err != nil {
			logger.WithError(err).Error("forecasts: failed to encode response")
		}
	})
}

func DeleteCashflowForecast(service forecasting.ForecastService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		forecastID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCashflowForecast(claims.TenantID, forecastID); err != nil {
			logger.WithField("forecast_id", forecastID).WithError(err).Warn("forecasts: failed to delete cashflow forecast")
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":     "Previsão removida com sucesso",
			"forecast_id": forecastID,
		}); err != nil {
			logger.WithError(err).Error("forecasts: failed to encode response")
		}
	})
}

func handleForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if errors.As(err, &forecastErr) {
		var details any
		if forecastErr.ForecastID != "" {
			details = map[string]any{"forecast_id": forecastErr.ForecastID}
		}
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar previsão de fluxo de caixa", nil)
}
