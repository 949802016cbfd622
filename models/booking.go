package models

// Booking keeps storage column names in db tags; the json tags are the
// external names clients submit and read.
type Booking struct {
	ID                int64   `db:"id" json:"id"`
	City              string  `db:"city" json:"city"`
	Venue             string  `db:"venue" json:"venue"`
	Date              string  `db:"date" json:"date"`
	Email             string  `db:"email" json:"email"`
	OTP               string  `db:"otp" json:"otp"`
	AmountPaid        Amount  `db:"amount_paid" json:"amountPaid"`
	TransactionNumber string  `db:"transaction_number" json:"transactionNumber"`
}
