package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"venuebook/models"
)

func AddVenue(ctx context.Context, db DB, v models.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "INSERT INTO venues (name, city, contact, owner_name) VALUES ($1, $2, $3, $4);"
	if _, err := db.Exec(ctx, stmt, v.Name, v.City, v.Contact, v.OwnerName); err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

// GetVenues lists venues, restricted to city when it is not empty.
func GetVenues(ctx context.Context, db DB, city string) ([]models.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT id, name, city, contact, owner_name FROM venues"
	args := []any{}
	if city != "" {
		stmt += " WHERE city = $1"
		args = append(args, city)
	}
	stmt += " ORDER BY id;"

	rows, err := db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		v := models.Venue{}
		if err = rows.Scan(&v.ID, &v.Name, &v.City, &v.Contact, &v.OwnerName); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

func GetCities(ctx context.Context, db DB) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.Query(ctx, "SELECT DISTINCT city FROM venues ORDER BY city;")
	if err != nil {
		return nil, fmt.Errorf("select cities: %w", err)
	}
	defer rows.Close()

	cities := []string{}
	for rows.Next() {
		var city string
		if err = rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, city)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cities: %w", err)
	}
	return cities, nil
}

func GetVenueCity(ctx context.Context, db DB, id int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var city string
	err := db.QueryRow(ctx, "SELECT city FROM venues WHERE id = $1;", id).Scan(&city)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("select venue city: %w", err)
	}
	return city, nil
}

func UpdateVenue(ctx context.Context, db DB, id int64, v models.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE venues SET name = $1, city = $2, contact = $3, owner_name = $4 WHERE id = $5;"
	if _, err := db.Exec(ctx, stmt, v.Name, v.City, v.Contact, v.OwnerName, id); err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}

func DeleteVenue(ctx context.Context, db DB, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := db.Exec(ctx, "DELETE FROM venues WHERE id = $1;", id); err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}
