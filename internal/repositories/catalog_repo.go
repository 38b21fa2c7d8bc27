package repositories

import (
	"database/sql"
	"errors"

	intconfig "flightdesk/internal/config"
	intdb "flightdesk/internal/db"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/pricing"
)

// CatalogRepo reads flights, fare packages and ancillary options. Prices live
// in the DB as strings in mixed historical formats plus a legacy price_k
// column in thousands; everything is normalized to whole Rupiah right here so
// the aggregator only ever sees clean int64 amounts.
type CatalogRepo struct {
	DB *sql.DB
}

func (r CatalogRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// priceSelect prefers the price column; old rows only carry price_k.
func (r CatalogRepo) priceSelect(table string) (string, bool) {
	db := r.db()
	if intdb.HasColumn(db, table, "price") {
		return "COALESCE(price, '')", false
	}
	return "COALESCE(price_k, 0)", true
}

func (r CatalogRepo) GetFlight(id int64) (models.Flight, error) {
	if id <= 0 {
		return models.Flight{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	var f models.Flight
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(flight_number,''),
		       COALESCE(airline_id,0),
		       COALESCE(aircraft_id,0),
		       COALESCE(origin_code,''),
		       COALESCE(dest_code,''),
		       COALESCE(departure_time,''),
		       COALESCE(arrival_time,''),
		       COALESCE(seats_total,0),
		       COALESCE(seats_left,0)
		FROM flights
		WHERE id=? LIMIT 1`, id).Scan(
		&f.ID, &f.FlightNumber, &f.AirlineID, &f.AircraftID,
		&f.OriginCode, &f.DestCode, &f.DepartureTime, &f.ArrivalTime,
		&f.SeatsTotal, &f.SeatsLeft,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flight{}, domain.NotFoundError{Resource: "flight"}
		}
		return models.Flight{}, domain.InternalError{Err: err}
	}
	return f, nil
}

// GetFarePackage loads one fare package with its price normalized.
func (r CatalogRepo) GetFarePackage(id int64) (models.FarePackage, error) {
	if id <= 0 {
		return models.FarePackage{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}

	priceExpr, inThousands := r.priceSelect("fare_packages")

	var (
		fp       models.FarePackage
		rawPrice string
		rawK     int64
	)
	var err error
	if inThousands {
		err = r.db().QueryRow(`
			SELECT id, COALESCE(flight_id,0), COALESCE(name,''), COALESCE(class_type,''), `+priceExpr+`
			FROM fare_packages WHERE id=? LIMIT 1`, id).Scan(
			&fp.ID, &fp.FlightID, &fp.Name, &fp.ClassType, &rawK)
	} else {
		err = r.db().QueryRow(`
			SELECT id, COALESCE(flight_id,0), COALESCE(name,''), COALESCE(class_type,''), `+priceExpr+`
			FROM fare_packages WHERE id=? LIMIT 1`, id).Scan(
			&fp.ID, &fp.FlightID, &fp.Name, &fp.ClassType, &rawPrice)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FarePackage{}, domain.NotFoundError{Resource: "fare package"}
		}
		return models.FarePackage{}, domain.InternalError{Err: err}
	}

	if inThousands {
		fp.PricePerAdultSeat = pricing.FromThousands(rawK)
	} else {
		fp.PricePerAdultSeat = pricing.ParseCatalogAmountOrZero(rawPrice)
	}
	return fp, nil
}

// ListFarePackages returns fare packages of one flight.
func (r CatalogRepo) ListFarePackages(flightID int64) ([]models.FarePackage, error) {
	if flightID <= 0 {
		return nil, domain.ValidationError{Field: "flight_id", Msg: "id tidak valid"}
	}
	priceExpr, inThousands := r.priceSelect("fare_packages")

	rows, err := r.db().Query(`
		SELECT id, COALESCE(flight_id,0), COALESCE(name,''), COALESCE(class_type,''), `+priceExpr+`
		FROM fare_packages WHERE flight_id=? ORDER BY id`, flightID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.FarePackage{}
	for rows.Next() {
		var fp models.FarePackage
		if inThousands {
			var rawK int64
			if err := rows.Scan(&fp.ID, &fp.FlightID, &fp.Name, &fp.ClassType, &rawK); err != nil {
				return nil, domain.InternalError{Err: err}
			}
			fp.PricePerAdultSeat = pricing.FromThousands(rawK)
		} else {
			var raw string
			if err := rows.Scan(&fp.ID, &fp.FlightID, &fp.Name, &fp.ClassType, &raw); err != nil {
				return nil, domain.InternalError{Err: err}
			}
			fp.PricePerAdultSeat = pricing.ParseCatalogAmountOrZero(raw)
		}
		out = append(out, fp)
	}
	return out, rows.Err()
}

// ListBaggage returns baggage options for one flight and leg.
func (r CatalogRepo) ListBaggage(flightID int64, leg string) ([]models.BaggageOption, error) {
	if flightID <= 0 {
		return nil, domain.ValidationError{Field: "flight_id", Msg: "id tidak valid"}
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(flight_id,0), COALESCE(leg,''), COALESCE(label,''),
		       COALESCE(weight_kg,0), COALESCE(price,'')
		FROM baggage_options
		WHERE flight_id=? AND leg=?
		ORDER BY weight_kg`, flightID, leg)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.BaggageOption{}
	for rows.Next() {
		var (
			o   models.BaggageOption
			raw string
		)
		if err := rows.Scan(&o.ID, &o.FlightID, &o.Leg, &o.Label, &o.WeightKg, &raw); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		o.Price = pricing.ParseCatalogAmountOrZero(raw)
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListMeals returns meal options for one flight and leg.
func (r CatalogRepo) ListMeals(flightID int64, leg string) ([]models.MealOption, error) {
	if flightID <= 0 {
		return nil, domain.ValidationError{Field: "flight_id", Msg: "id tidak valid"}
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(flight_id,0), COALESCE(leg,''), COALESCE(label,''), COALESCE(price,'')
		FROM meal_options
		WHERE flight_id=? AND leg=?
		ORDER BY id`, flightID, leg)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.MealOption{}
	for rows.Next() {
		var (
			o   models.MealOption
			raw string
		)
		if err := rows.Scan(&o.ID, &o.FlightID, &o.Leg, &o.Label, &raw); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		o.Price = pricing.ParseCatalogAmountOrZero(raw)
		out = append(out, o)
	}
	return out, rows.Err()
}
