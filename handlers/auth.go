package handlers

import (
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"venuebook/utils"
)

type sendOTPRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// TokenConfig controls access tokens handed out on login. An empty Secret
// disables them.
type TokenConfig struct {
	Secret   []byte
	Validity time.Duration
}

func SendOTPHandler(w http.ResponseWriter, r *http.Request, store utils.OTPStore, mailer utils.Mailer, ttl time.Duration) {
	var req sendOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		log.WithField("email", req.Email).Debug("invalid email")
		writeMessage(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	if err := utils.IssueOTP(r.Context(), store, mailer, req.Email, ttl); err != nil {
		serverError(w, r, "error sending otp", err)
		return
	}

	writeMessage(w, http.StatusOK, "OTP sent successfully")
}

func VerifyOTPHandler(w http.ResponseWriter, r *http.Request, store utils.OTPStore) {
	var req verifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := utils.VerifyOTP(r.Context(), store, req.Email, req.OTP)
	switch {
	case err == nil:
		log.WithField("email", req.Email).Info("Email OTP verified successfully")
		writeMessage(w, http.StatusOK, "Email OTP verified successfully")
	case errors.Is(err, utils.ErrOTPNotFound):
		writeMessage(w, http.StatusBadRequest, "OTP not found in session")
	case errors.Is(err, utils.ErrOTPMismatch):
		writeMessage(w, http.StatusBadRequest, "Invalid OTP")
	default:
		serverError(w, r, "error verifying otp", err)
	}
}

func RegisterUserHandler(w http.ResponseWriter, r *http.Request, db utils.DB) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := utils.AddUser(r.Context(), db, req.Username, req.Password); err != nil {
		serverError(w, r, "error registering user", err)
		return
	}

	log.WithField("username", req.Username).Info("User registered successfully")
	writeMessage(w, http.StatusOK, "User registered successfully. Please verify your email.")
}

func LoginHandler(w http.ResponseWriter, r *http.Request, db utils.DB, tokens TokenConfig) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := utils.LoginUser(r.Context(), db, req.Username, req.Password)
	switch {
	case errors.Is(err, utils.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, utils.ErrUnauthorized):
		log.WithField("username", req.Username).Info("password verification failed")
		writeMessage(w, http.StatusUnauthorized, "Incorrect password")
		return
	case err != nil:
		serverError(w, r, "error logging in", err)
		return
	}

	resp := loginResponse{Message: "Login successful"}
	if len(tokens.Secret) > 0 {
		resp.Token, err = utils.GenerateToken(user.ID, tokens.Secret, tokens.Validity)
		if err != nil {
			serverError(w, r, "error generating token", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
