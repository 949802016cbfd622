package models

import "time"

// OTPSession is a pending email verification code
type OTPSession struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is no longer valid at now.
func (s OTPSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
