package models

type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"password"`
	Email        string `db:"email" json:"-"`
	OTP          string `db:"otp" json:"-"`
	OTPVerified  bool   `db:"otp_verified" json:"-"`
}
