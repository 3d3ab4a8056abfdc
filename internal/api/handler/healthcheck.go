package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

// healthcheckPingTimeout limita quanto tempo o ping ao banco pode segurar a
// resposta de liveness
const healthcheckPingTimeout = 2 * time.Second

// HealthcheckHandler responde o estado do processo e da conexão com o banco
func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckPingTimeout)
		defer cancel()

		status := http.StatusOK
		databaseStatus := "ok"

		if err := conn.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: database ping failed")
			status = http.StatusServiceUnavailable
			databaseStatus = "unavailable"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"status":   http.StatusText(status),
			"database": databaseStatus,
			"time":     time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			logrus.WithError(err).Warn("healthcheck: error responding to liveness probe")
		}
	})
}
