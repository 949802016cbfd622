package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"venuebook/utils"
)

const internalError = "Internal server error"

type message struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("error encoding response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, message{Message: msg})
}

// serverError logs err and answers with the generic 500 body.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	log.WithFields(log.Fields{
		"path":       r.URL.Path,
		"request_id": w.Header().Get(requestIDHeader),
	}).WithError(err).Error(msg)
	writeMessage(w, http.StatusInternalServerError, internalError)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.WithError(err).Debug("invalid request body")
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// pathID reads the {id} wildcard, answering 400 when it is not a row id.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		log.WithError(err).Debug("invalid id")
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
