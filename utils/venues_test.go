package utils_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/models"
	"venuebook/utils"
)

var venueColumns = []string{"id", "name", "city", "contact", "owner_name"}

func TestAddVenue(t *testing.T) {
	mock := newMockPool(t)
	v := models.Venue{Name: "Grand Hall", City: "Pune", Contact: "555-0100", OwnerName: "R. Shah"}

	mock.ExpectExec(`INSERT INTO venues \(name, city, contact, owner_name\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(v.Name, v.City, v.Contact, v.OwnerName).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, utils.AddVenue(context.Background(), mock, v))
}

func TestGetVenues_AllCities(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`^SELECT id, name, city, contact, owner_name FROM venues ORDER BY id;$`).
		WillReturnRows(pgxmock.NewRows(venueColumns).
			AddRow(int64(1), "Grand Hall", "Pune", "555-0100", "R. Shah").
			AddRow(int64(2), "Lake View", "Delhi", "555-0101", "A. Rao"))

	venues, err := utils.GetVenues(context.Background(), mock, "")
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, models.Venue{ID: 1, Name: "Grand Hall", City: "Pune", Contact: "555-0100", OwnerName: "R. Shah"}, venues[0])
	assert.Equal(t, "Delhi", venues[1].City)
}

func TestGetVenues_FilterByCity(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`^SELECT id, name, city, contact, owner_name FROM venues WHERE city = \$1 ORDER BY id;$`).
		WithArgs("Pune").
		WillReturnRows(pgxmock.NewRows(venueColumns).
			AddRow(int64(1), "Grand Hall", "Pune", "555-0100", "R. Shah"))

	venues, err := utils.GetVenues(context.Background(), mock, "Pune")
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Pune", venues[0].City)
}

func TestGetVenues_UnknownCityIsEmpty(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`FROM venues WHERE city = \$1`).
		WithArgs("Atlantis").
		WillReturnRows(pgxmock.NewRows(venueColumns))

	venues, err := utils.GetVenues(context.Background(), mock, "Atlantis")
	require.NoError(t, err)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestGetCities(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT DISTINCT city FROM venues ORDER BY city`).
		WillReturnRows(pgxmock.NewRows([]string{"city"}).AddRow("Delhi").AddRow("Pune"))

	cities, err := utils.GetCities(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, []string{"Delhi", "Pune"}, cities)
}

func TestGetCities_DBError(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT DISTINCT city`).WillReturnError(errors.New("db down"))

	_, err := utils.GetCities(context.Background(), mock)
	assert.ErrorContains(t, err, "select cities")
}

func TestGetVenueCity(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT city FROM venues WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"city"}).AddRow("Pune"))

	city, err := utils.GetVenueCity(context.Background(), mock, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pune", city)
}

func TestGetVenueCity_NotFound(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT city FROM venues WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := utils.GetVenueCity(context.Background(), mock, 99)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUpdateVenue(t *testing.T) {
	mock := newMockPool(t)
	v := models.Venue{Name: "New Hall", City: "Goa", Contact: "555-0199", OwnerName: "M. Dias"}

	mock.ExpectExec(`UPDATE venues SET name = \$1, city = \$2, contact = \$3, owner_name = \$4 WHERE id = \$5`).
		WithArgs(v.Name, v.City, v.Contact, v.OwnerName, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, utils.UpdateVenue(context.Background(), mock, 2, v))
}

func TestDeleteVenue(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, utils.DeleteVenue(context.Background(), mock, 2))
}
