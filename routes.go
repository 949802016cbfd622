package main

import (
	"net/http"
	"time"

	"venuebook/handlers"
	"venuebook/utils"
)

type database interface {
	utils.DB
	utils.Pinger
}

type app struct {
	db                database
	otpStore          utils.OTPStore
	mailer            utils.Mailer
	otpTTL            time.Duration
	tokens            handlers.TokenConfig
	requireAdminToken bool
}

// admin wraps handlers for the admin paths, which are open unless a token
// is required by configuration.
func (a *app) admin(h http.HandlerFunc) http.HandlerFunc {
	if !a.requireAdminToken {
		return h
	}
	return handlers.RequireToken(a.tokens.Secret, h)
}

func (a *app) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		handlers.HealthHandler(w, r, a.db)
	})

	// auth & otp
	mux.HandleFunc("POST /sendotp", func(w http.ResponseWriter, r *http.Request) {
		handlers.SendOTPHandler(w, r, a.otpStore, a.mailer, a.otpTTL)
	})
	mux.HandleFunc("POST /verify", func(w http.ResponseWriter, r *http.Request) {
		handlers.VerifyOTPHandler(w, r, a.otpStore)
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		handlers.RegisterUserHandler(w, r, a.db)
	})
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		handlers.LoginHandler(w, r, a.db, a.tokens)
	})

	// bookings
	mux.HandleFunc("POST /submit", func(w http.ResponseWriter, r *http.Request) {
		handlers.SubmitBookingHandler(w, r, a.db)
	})
	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		handlers.BookingsHandler(w, r, a.db)
	})
	mux.HandleFunc("PUT /bookings/{id}", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdateBookingHandler(w, r, a.db)
	}))
	mux.HandleFunc("DELETE /bookings/{id}", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteBookingHandler(w, r, a.db)
	}))

	// users (admin)
	mux.HandleFunc("GET /users", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.UsersHandler(w, r, a.db)
	}))
	mux.HandleFunc("PUT /users/{id}", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdateUserHandler(w, r, a.db)
	}))
	mux.HandleFunc("DELETE /users/{id}", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteUserHandler(w, r, a.db)
	}))

	// venues
	mux.HandleFunc("POST /venues", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.AddVenueHandler(w, r, a.db)
	}))
	mux.HandleFunc("GET /venues", func(w http.ResponseWriter, r *http.Request) {
		handlers.VenuesHandler(w, r, a.db)
	})
	mux.HandleFunc("GET /cities", func(w http.ResponseWriter, r *http.Request) {
		handlers.CitiesHandler(w, r, a.db)
	})
	mux.HandleFunc("GET /venue/{id}", func(w http.ResponseWriter, r *http.Request) {
		handlers.VenueCityHandler(w, r, a.db)
	})
	mux.HandleFunc("PUT /venues/{id}", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdateVenueHandler(w, r, a.db)
	}))
	mux.HandleFunc("DELETE /venues/{id}", a.admin(func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteVenueHandler(w, r, a.db)
	}))

	return handlers.LogRequests(handlers.CORS(mux))
}
