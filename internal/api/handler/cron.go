package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/internal/scheduler"
	"github.com/horizonhq/horizon-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job aceitos pela execução manual
const (
	CronJobTypeRunwayRefresh = "runway-refresh"
	CronJobTypeAnomalyScan   = "anomaly-scan"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os agendadores expostos para disparo manual
type CronJobServices struct {
	RunwayRefreshService *scheduler.RunwayRefreshService
	AnomalyScanService   *scheduler.AnomalyScanService
}

// RunCronJob dispara manualmente um agendador específico. A rota é protegida
// pelo token operacional.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		logrus.WithField("cron_type", cronType).Info("cron: manual trigger requested")

		switch cronType {
		case CronJobTypeRunwayRefresh:
			if services.RunwayRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de recálculo de runway não disponível", nil)
				return
			}
			services.RunwayRefreshService.TriggerManualSync()

		case CronJobTypeAnomalyScan:
			if services.AnomalyScanService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de varredura de anomalias não disponível", nil)
				return
			}
			services.AnomalyScanService.TriggerManualSync()

		case CronJobTypeAll:
			if services.RunwayRefreshService != nil {
				services.RunwayRefreshService.TriggerManualSync()
			}
			if services.AnomalyScanService != nil {
				services.AnomalyScanService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: runway-refresh, anomaly-scan, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}); err != nil {
			logrus.WithError(err).Error("cron: failed to encode response")
		}
	}
}

// GetCronStatus retorna o estado atual dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"runway-refresh": services.RunwayRefreshService.GetStatus(),
			"anomaly-scan":   services.AnomalyScanService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: failed to encode response")
		}
	}
}
