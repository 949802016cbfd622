package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"venuebook/utils"
)

func HealthHandler(w http.ResponseWriter, r *http.Request, db utils.Pinger) {
	if err := utils.Ping(r.Context(), db); err != nil {
		log.WithError(err).Error("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
