package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/internal/usecases/cohorting"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// CreateRevenueCohort registra uma coorte de receita com seu histórico
// inicial de métricas
func CreateRevenueCohort(service cohorting.CohortService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		var request *domain.CreateCohortRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("cohorts: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("cohort_name", request.Name).Info("cohorts: creating revenue cohort")

		cohort, err := service.CreateRevenueCohort(r.Context(), claims.TenantID, request)
		if err != nil {
			logger.WithError(err).Error("cohorts: failed to create revenue cohort")
			handleCohortError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(cohort); err != nil {
			logger.WithError(err).Error("cohorts: failed to encode response")
		}
	})
}

func ListRevenueCohorts(service cohorting.CohortService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		cohorts, err := service.ListRevenueCohorts(claims.TenantID)
		if err != nil {
			logger.WithError(err).Error("cohorts: failed to list revenue cohorts")
			handleCohortError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cohorts); err != nil {
			logger.WithError(err).Error("cohorts: failed to encode response")
		}
	})
}

func GetRevenueCohort(service cohorting.CohortService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		cohortID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		cohort, err := service.GetRevenueCohort(claims.TenantID, cohortID)
		if err != nil {
			logger.WithField("cohort_id", cohortID).WithError(err).Warn("cohorts: failed to get revenue cohort")
			handleCohortError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cohort); err != nil {
			logger.WithError(err).Error("cohorts: failed to encode response")
		}
	})
}

// UpdateCohortMetrics substitui o histórico observado da coorte; projeções
// anteriores são descartadas até a próxima geração
func UpdateCohortMetrics(service cohorting.CohortService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		cohortID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request *domain.UpdateCohortMetricsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("cohorts: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"cohort_id": cohortID,
			"periods":   len(request.Metrics),
		}).Info("cohorts: updating cohort metrics")

		cohort, err := service.UpdateCohortMetrics(r.Context(), claims.TenantID, cohortID, request)
		if err != nil {
			logger.WithField("cohort_id", cohortID).WithError(err).Error("cohorts: failed to update cohort metrics")
			handleCohortError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cohort); err != nil {
			logger.WithError(err).Error("cohorts: failed to encode response")
		}
	})
}

// GenerateCohortProjections ajusta o modelo de retenção e materializa
// projeções e indicadores derivados na coorte
func GenerateCohortProjections(service cohorting.CohortService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		cohortID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		logger.WithField("cohort_id", cohortID).Info("cohorts: generating cohort projections")

		cohort, err := service.GenerateCohortProjections(r.Context(), claims.TenantID, cohortID)
		if err != nil {
			logger.WithField("cohort_id", cohortID).WithError(err).Error("cohorts: failed to generate cohort projections")
			handleCohortError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cohort); err != nil {
			logger.WithError(err).Error("cohorts: failed to encode response")
		}
	})
}

func DeleteRevenueCohort(service cohorting.CohortService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		cohortID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteRevenueCohort(claims.TenantID, cohortID); err != nil {
			logger.WithField("cohort_id", cohortID).WithError(err).Warn("cohorts: failed to delete revenue cohort")
			handleCohortError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":   "Coorte removida com sucesso",
			"cohort_id": cohortID,
		}); err != nil {
			logger.WithError(err).Error("cohorts: failed to encode response")
		}
	})
}

func handleCohortError(w http.ResponseWriter, err error) {
	var cohortErr *cohorting.CohortError
	if errors.As(err, &cohortErr) {
		var details any
		if cohortErr.CohortID != "" {
			details = map[string]any{"cohort_id": cohortErr.CohortID}
		}
		apiErrors.WriteError(w, cohortErr.Code, cohortErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar coorte de receita", nil)
}
