package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"venuebook/models"
	"venuebook/utils"
)

type updateBookingRequest struct {
	City  string `json:"city"`
	Venue string `json:"venue"`
	Date  string `json:"date"`
}

// SubmitBookingHandler stores the booking form as submitted.
func SubmitBookingHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	var booking models.Booking
	if !decodeJSON(w, r, &booking) {
		return
	}

	if err := utils.SubmitBooking(r.Context(), db, booking); err != nil {
		serverError(w, r, "error inserting booking", err)
		return
	}

	log.WithField("venue", booking.Venue).Info("Form data submitted successfully")
	writeMessage(w, http.StatusOK, "Form data submitted successfully")
}

func BookingsHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	bookings, err := utils.GetBookings(r.Context(), db)
	if err != nil {
		serverError(w, r, "error fetching bookings", err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// UpdateBookingHandler answers 200 whether or not the id exists.
func UpdateBookingHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := utils.UpdateBooking(r.Context(), db, id, req.City, req.Venue, req.Date); err != nil {
		serverError(w, r, "error updating booking", err)
		return
	}
	writeMessage(w, http.StatusOK, "Booking updated successfully")
}

func DeleteBookingHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := utils.DeleteBooking(r.Context(), db, id); err != nil {
		serverError(w, r, "error deleting booking", err)
		return
	}
	writeMessage(w, http.StatusOK, "Booking deleted successfully")
}
