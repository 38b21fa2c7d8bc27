package services

import (
	"testing"

	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/draft"
	"flightdesk/internal/pricing"
	"flightdesk/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectFarePriceColumn(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.columns").WithArgs("fare_packages", "price").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("price"))
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)

	svc := BookingService{
		BookingRepo: repositories.BookingRepo{DB: db},
		PaymentRepo: repositories.PaymentRepo{DB: db},
		RefRepo:     repositories.ReferenceRepo{DB: db},
		QuoteSvc:    QuoteService{CatalogRepo: repositories.CatalogRepo{DB: db}},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func draftFixture(t *testing.T) draft.Itinerary {
	t.Helper()
	count, err := pricing.NewPassengerCount(1, 0, 0)
	require.NoError(t, err)
	return draft.Itinerary{
		TripType:         "one_way",
		OutboundFlightID: 12,
		FarePackageID:    3,
		Count:            count,
		Passengers: []draft.DraftPassenger{
			{Type: "adult", Name: "Budi", Outbound: draft.DraftSelection{BaggageID: 10}},
		},
		ContactName:  "Budi",
		ContactPhone: "0800",
	}
}

func TestCreateFromDraftComputesAmountsServerSide(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	expectFarePriceColumn(mock)
	mock.ExpectQuery("FROM fare_packages").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "name", "class_type", "price"}).
			AddRow(3, 12, "Hemat", "economy", "1.000.000"))
	mock.ExpectQuery("FROM baggage_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "weight_kg", "price"}).
			AddRow(10, 12, "outbound", "20kg", 20, "150000.00"))
	mock.ExpectQuery("FROM meal_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "price"}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO booking_passengers").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	b, err := svc.CreateFromDraft(7, draftFixture(t))
	require.NoError(t, err)

	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, string(domain.PaymentUnpaid), b.PaymentStatus)
	assert.Equal(t, int64(1_000_000), b.Amounts.Base)
	assert.Equal(t, int64(150_000), b.Amounts.Baggage)
	assert.Equal(t, int64(1_150_000), b.Amounts.Final)
	assert.Len(t, b.Reference, 6)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFromDraftAppliesPromoDiscount(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	expectFarePriceColumn(mock)
	mock.ExpectQuery("FROM fare_packages").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "name", "class_type", "price"}).
			AddRow(3, 12, "Hemat", "economy", "1000000"))
	mock.ExpectQuery("FROM baggage_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "weight_kg", "price"}))
	mock.ExpectQuery("FROM meal_options").
		WillReturnRows(sqlmock.NewRows([]string{"id", "flight_id", "leg", "label", "price"}))
	mock.ExpectQuery("FROM promotions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "description", "percent", "flat_amount", "valid_from", "valid_until", "active"}).
			AddRow(1, "HEMAT10", "diskon 10%", 10, 0, "", "", true))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(43, 1))
	mock.ExpectExec("INSERT INTO booking_passengers").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	it := draftFixture(t)
	it.Passengers[0].Outbound.BaggageID = 0
	it.PromoCode = "hemat10"

	b, err := svc.CreateFromDraft(7, it)
	require.NoError(t, err)

	assert.Equal(t, int64(100_000), b.Amounts.Discount)
	assert.Equal(t, int64(900_000), b.Amounts.Final)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFromDraftPersistsPassengerAncillaries(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

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

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(44, 1))
	// Baris roster menyimpan total ancillary per leg: bagasi 150.000 + 2 makanan 40.000.
	mock.ExpectExec("INSERT INTO booking_passengers").
		WithArgs(int64(44), "adult", "Budi", int64(10), int64(0), int64(230_000), int64(0)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	it := draftFixture(t)
	it.Passengers[0].Outbound.Meals = map[int64]int{7: 2}

	b, err := svc.CreateFromDraft(7, it)
	require.NoError(t, err)

	require.Len(t, b.Passengers, 1)
	assert.Equal(t, int64(230_000), b.Passengers[0].AncillaryOutbound)
	assert.Equal(t, int64(0), b.Passengers[0].AncillaryReturn)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFromDraftRejectsIncompleteDraft(t *testing.T) {
	svc, _, done := newBookingService(t)
	defer done()

	it := draftFixture(t)
	it.FarePackageID = 0

	_, err := svc.CreateFromDraft(7, it)
	assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
}

func TestNewReferenceShapeAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		ref := NewReference()
		require.Len(t, ref, 6)
		for _, c := range ref {
			assert.Contains(t, referenceAlphabet, string(c))
		}
		seen[ref] = true
	}
	// 200 draws dari ruang 32^6: tabrakan praktis mustahil.
	assert.Greater(t, len(seen), 195)
}

func promoFixture(percent int, flat int64) models.Promotion {
	return models.Promotion{ID: 1, Code: "X", Percent: percent, FlatAmount: flat, Active: true}
}

func TestDiscountForNeverExceedsTotal(t *testing.T) {
	promo := promoFixture(0, 2_000_000)
	assert.Equal(t, int64(1_000_000), discountFor(promo, 1_000_000))

	promo = promoFixture(150, 0)
	d := discountFor(promo, 1_000_000)
	assert.LessOrEqual(t, d, int64(1_000_000))
}
