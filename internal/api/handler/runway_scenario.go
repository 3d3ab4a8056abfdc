package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/internal/domain"
	"github.com/horizonhq/horizon-api/internal/usecases/projecting"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/horizonhq/horizon-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// CreateRunwayScenario congela a posição financeira do tenant, roda a
// projeção determinística e o Monte Carlo e persiste o cenário resultante
func CreateRunwayScenario(service projecting.ScenarioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		var request *domain.CreateScenarioRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("scenarios: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("scenario_name", request.Name).Info("scenarios: creating runway scenario")

		scenario, err := service.CreateRunwayScenario(r.Context(), claims.TenantID, request)
		if err != nil {
			logger.WithError(err).Error("scenarios: failed to create runway scenario")
			handleScenarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(scenario); err != nil {
			logger.WithError(err).Error("scenarios: failed to encode response")
		}
	})
}

func ListRunwayScenarios(service projecting.ScenarioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		scenarios, err := service.ListRunwayScenarios(claims.TenantID)
		if err != nil {
			logger.WithError(err).Error("scenarios: failed to list runway scenarios")
			handleScenarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(scenarios); err != nil {
			logger.WithError(err).Error("scenarios: failed to encode response")
		}
	})
}

// CompareRunwayScenarios responde o comparativo dos cenários ativos mais
// recentes do tenant
func CompareRunwayScenarios(service projecting.ScenarioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		comparison, err := service.CompareRunwayScenarios(claims.TenantID)
		if err != nil {
			logger.WithError(err).Error("scenarios: failed to compare runway scenarios")
			handleScenarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logger.WithError(err).Error("scenarios: failed to encode response")
		}
	})
}

func GetRunwayScenario(service projecting.ScenarioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		scenarioID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		scenario, err := service.GetRunwayScenario(claims.TenantID, scenarioID)
		if err != nil {
			logger.WithField("scenario_id", scenarioID).WithError(err).Warn("scenarios: failed to get runway scenario")
			handleScenarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(scenario); err != nil {
			logger.WithError(err).Error("scenarios: failed to encode response")
		}
	})
}

func DeleteRunwayScenario(service projecting.ScenarioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := mustTenant(w, r)
		if !ok {
			return
		}
		logger := log.ForTenant(r.Context(), claims.TenantID)

		scenarioID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteRunwayScenario(claims.TenantID, scenarioID); err != nil {
			logger.WithField("scenario_id", scenarioID).WithError(err).Warn("scenarios: failed to delete runway scenario")
			handleScenarioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":     "Cenário removido com sucesso",
			"scenario_id": scenarioID,
		}); err != nil {
			logger.WithError(err).Error("scenarios: failed to encode response")
		}
	})
}

// handleScenarioError traduz erros do caso de uso para o envelope da API
func handleScenarioError(w http.ResponseWriter, err error) {
	var scenarioErr *projecting.ScenarioError
	if errors.As(err, &scenarioErr) {
		var details any
		if scenarioErr.ScenarioID != "" {
			details = map[string]any{"scenario_id": scenarioErr.ScenarioID}
		}
		apiErrors.WriteError(w, scenarioErr.Code, scenarioErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar cenário de runway", nil)
}
