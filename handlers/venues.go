package handlers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"venuebook/models"
	"venuebook/utils"
)

type venueRequest struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Contact   string `json:"contact"`
	OwnerName string `json:"ownerName"`
}

func (v venueRequest) venue() models.Venue {
	return models.Venue{Name: v.Name, City: v.City, Contact: v.Contact, OwnerName: v.OwnerName}
}

type cityResponse struct {
	City string `json:"city"`
}

func AddVenueHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	var req venueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := utils.AddVenue(r.Context(), db, req.venue()); err != nil {
		serverError(w, r, "error adding venue", err)
		return
	}

	log.WithFields(log.Fields{"name": req.Name, "city": req.City}).Info("Venue added successfully")
	writeMessage(w, http.StatusOK, "Venue added successfully")
}

// VenuesHandler lists venues, filtered by the optional city query parameter.
func VenuesHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	venues, err := utils.GetVenues(r.Context(), db, r.URL.Query().Get("city"))
	if err != nil {
		serverError(w, r, "error fetching venues", err)
		return
	}
	writeJSON(w, http.StatusOK, venues)
}

func CitiesHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	cities, err := utils.GetCities(r.Context(), db)
	if err != nil {
		serverError(w, r, "error fetching cities", err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

func VenueCityHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	city, err := utils.GetVenueCity(r.Context(), db, id)
	if errors.Is(err, utils.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Venue not found")
		return
	}
	if err != nil {
		serverError(w, r, "error fetching venue", err)
		return
	}
	writeJSON(w, http.StatusOK, cityResponse{City: city})
}

func UpdateVenueHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req venueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := utils.UpdateVenue(r.Context(), db, id, req.venue()); err != nil {
		serverError(w, r, "error updating venue", err)
		return
	}
	writeMessage(w, http.StatusOK, "Venue updated successfully")
}

func DeleteVenueHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := utils.DeleteVenue(r.Context(), db, id); err != nil {
		serverError(w, r, "error deleting venue", err)
		return
	}
	writeMessage(w, http.StatusOK, "Venue deleted successfully")
}
