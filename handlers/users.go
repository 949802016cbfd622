package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"venuebook/utils"
)

func UsersHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	users, err := utils.ListUsers(r.Context(), db)
	if err != nil {
		serverError(w, r, "error fetching users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func UpdateUserHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := utils.UpdateUser(r.Context(), db, id, req.Username, req.Password); err != nil {
		serverError(w, r, "error updating user", err)
		return
	}

	log.WithField("id", id).Info("User updated successfully")
	writeMessage(w, http.StatusOK, "User updated successfully")
}

func DeleteUserHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := utils.DeleteUser(r.Context(), db, id); err != nil {
		serverError(w, r, "error deleting user", err)
		return
	}

	log.WithField("id", id).Info("User deleted successfully")
	writeMessage(w, http.StatusOK, "User deleted successfully")
}
