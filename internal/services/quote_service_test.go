package services

import (
	"testing"

	"flightdesk/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteKeepsBaggageAndMealIDNamespacesSeparate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectFarePriceColumn(mock)
	mock.ExpectQuery("FROM fare_packages").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "name", "class_type", "price"}).
			AddRow(3, 12, "Hemat", "economy", "1000000"))
	// Kedua tabel mulai dari sequence sendiri: id 5 ada di bagasi dan makanan.
	mock.ExpectQuery("FROM baggage_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "weight_kg", "price"}).
			AddRow(5, 12, "outbound", "20kg", 20, "150000"))
	mock.ExpectQuery("FROM meal_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "price"}).
			AddRow(5, 12, "outbound", "nasi goreng", "50000"))

	svc := QuoteService{CatalogRepo: repositories.CatalogRepo{DB: db}}

	it := draftFixture(t)
	it.Passengers[0].Outbound.BaggageID = 5

	b, err := svc.Quote(it)
	require.NoError(t, err)

	assert.Equal(t, int64(150_000), b.BaggageOutbound, "baggage must price from the baggage catalog")
	assert.Equal(t, int64(0), b.MealOutbound, "no meal selected")
	assert.Equal(t, int64(1_150_000), b.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteDetailedAlignsTotalsWithRoster(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectFarePriceColumn(mock)
	mock.ExpectQuery("FROM fare_packages").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "name", "class_type", "price"}).
			AddRow(3, 12, "Hemat", "economy", "1000000"))
	mock.ExpectQuery("FROM baggage_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "weight_kg", "price"}).
			AddRow(10, 12, "outbound", "20kg", 20, "150000"))
	mock.ExpectQuery("FROM meal_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "price"}).
			AddRow(7, 12, "outbound", "nasi goreng", "40000"))

	svc := QuoteService{CatalogRepo: repositories.CatalogRepo{DB: db}}

	it := draftFixture(t)
	it.Passengers[0].Outbound.Meals = map[int64]int{7: 2}

	b, perPax, err := svc.QuoteDetailed(it)
	require.NoError(t, err)
	require.Len(t, perPax, 1)

	assert.Equal(t, int64(230_000), perPax[0].Outbound)
	assert.Equal(t, int64(0), perPax[0].Return)
	assert.Equal(t, b.AncillaryTotal(), perPax[0].Outbound, "single passenger carries all ancillaries")
	require.NoError(t, mock.ExpectationsWereMet())
}
