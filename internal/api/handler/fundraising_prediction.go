package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/internal/usecases/fundraising"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// CreateFundraisingPrediction calcula o score de prontidão de captação do
// tenant e persiste a predição congelada
func CreateFundraisingPrediction(service fundraising.PredictionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		var request *domain.CreatePredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("fundraising: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("round_type", request.RoundType).Info("fundraising: creating prediction")

		prediction, err := service.CreateFundraisingPrediction(r.Context(), claims.TenantID, request)
		if err != nil {
			logger.WithError(err).Error("fundraising: failed to create prediction")
			handlePredictionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(prediction); err != nil {
			logger.WithError(err).Error("fundraising: failed to encode response")
		}
	})
}

func ListFundraisingPredictions(service fundraising.PredictionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		predictions, err := service.ListFundraisingPredictions(claims.TenantID)
		if err != nil {
			logger.WithError(err).Error("fundraising: failed to list predictions")
			handlePredictionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(predictions); err != nil {
			logger.WithError(err).Error("fundraising: failed to encode response")
		}
	})
}

func GetFundraisingPrediction(service fundraising.PredictionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		predictionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		prediction, err := service.GetFundraisingPrediction(claims.TenantID, predictionID)
		if err != nil {
			logger.WithField("prediction_id", predictionID).WithError(err).Warn("fundraising: failed to get prediction")
			handlePredictionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(prediction); err != nil {
			logger.WithError(err).Error("fundraising: failed to encode response")
		}
	})
}

func DeleteFundraisingPrediction(service fundraising.PredictionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		predictionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteFundraisingPrediction(claims.TenantID, predictionID); err != nil {
			logger.WithField("prediction_id", predictionID).WithError(err).Warn("fundraising: failed to delete prediction")
			handlePredictionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":       "Predição removida com sucesso",
			"prediction_id": predictionID,
		}); err != nil {
			logger.WithError(err).Error("fundraising: failed to encode response")
		}
	})
}

func handlePredictionError(w http.ResponseWriter, err error) {
	var predictionErr *fundraising.PredictionError
	if errors.As(err, &predictionErr) {
		var details any
		if predictionErr.PredictionID != "" {
			details = map[string]any{"prediction_id": predictionErr.PredictionID}
		}
		apiErrors.WriteError(w, predictionErr.Code, predictionErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar predição de captação", nil)
}
