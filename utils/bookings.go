package utils

import (
	"context"
	"fmt"

	"venuebook/models"
)

// SubmitBooking stores b as given. City, venue and otp are not checked
// against venues or pending codes.
func SubmitBooking(ctx context.Context, db DB, b models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `INSERT INTO venue_bookings (city, venue, date, email, otp, amount_paid, transaction_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := db.Exec(ctx, stmt, b.City, b.Venue, b.Date, b.Email, b.OTP, float64(b.AmountPaid), b.TransactionNumber)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func GetBookings(ctx context.Context, db DB) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `SELECT id, city, venue, date, email, otp, amount_paid, transaction_number
		FROM venue_bookings ORDER BY id;`
	rows, err := db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b := models.Booking{}
		var amount float64
		err = rows.Scan(&b.ID, &b.City, &b.Venue, &b.Date, &b.Email, &b.OTP, &amount, &b.TransactionNumber)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.AmountPaid = models.Amount(amount)
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBooking overwrites city, venue and date. Missing ids are not an
// error.
func UpdateBooking(ctx context.Context, db DB, id int64, city, venue, date string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE venue_bookings SET city = $1, venue = $2, date = $3 WHERE id = $4;"
	if _, err := db.Exec(ctx, stmt, city, venue, date, id); err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

func DeleteBooking(ctx context.Context, db DB, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := db.Exec(ctx, "DELETE FROM venue_bookings WHERE id = $1;", id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
