package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "flightdesk/internal/config"
	intdb "flightdesk/internal/db"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id,
	COALESCE(reference, ''),
	COALESCE(user_id, 0),
	COALESCE(trip_type, ''),
	COALESCE(outbound_flight, ''),
	COALESCE(return_flight, ''),
	COALESCE(fare_class, ''),
	COALESCE(status, ''),
	COALESCE(payment_status, ''),
	COALESCE(base_amount, 0),
	COALESCE(baggage_amount, 0),
	COALESCE(meal_amount, 0),
	COALESCE(discount_amount, 0),
	COALESCE(tax_amount, 0),
	COALESCE(final_amount, 0),
	COALESCE(contact_name, ''),
	COALESCE(contact_phone, ''),
	COALESCE(contact_email, ''),
	COALESCE(cancellation_reason, ''),
	COALESCE(promo_code, ''),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserID,
		&b.TripType,
		&b.OutboundFlight,
		&b.ReturnFlight,
		&b.FareClass,
		&b.Status,
		&b.PaymentStatus,
		&b.Amounts.Base,
		&b.Amounts.Baggage,
		&b.Amounts.Meal,
		&b.Amounts.Discount,
		&b.Amounts.Tax,
		&b.Amounts.Final,
		&b.ContactName,
		&b.ContactPhone,
		&b.ContactEmail,
		&b.CancellationReason,
		&b.PromoCode,
		&b.CreatedAt,
	)
	return b, err
}

// GetByID fetches one booking row without its passengers.
func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// GetByReference fetches by PNR.
func (r BookingRepo) GetByReference(ref string) (models.Booking, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return models.Booking{}, domain.ValidationError{Field: "reference", Msg: "kode booking kosong"}
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE reference=? LIMIT 1`, ref)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// List returns bookings for the back office, newest first.
func (r BookingRepo) List(filter models.BookingFilter, page domain.Pagination) ([]models.Booking, error) {
	where := []string{"1=1"}
	args := []any{}

	if filter.Status != "" {
		where = append(where, "status=?")
		args = append(args, filter.Status)
	}
	if filter.PaymentStatus != "" {
		where = append(where, "payment_status=?")
		args = append(args, filter.PaymentStatus)
	}
	if filter.Reference != "" {
		where = append(where, "reference=?")
		args = append(args, strings.ToUpper(strings.TrimSpace(filter.Reference)))
	}
	if filter.UserID > 0 {
		where = append(where, "user_id=?")
		args = append(args, filter.UserID)
	}

	limit := page.PageSize
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if page.Page > 1 {
		offset = (page.Page - 1) * limit
	}
	args = append(args, limit, offset)

	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings WHERE `+
		strings.Join(where, " AND ")+` ORDER BY id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts the booking and its passengers in one transaction. Amounts
// are the server-computed breakdown; the client never supplies them.
func (r BookingRepo) Create(b models.Booking) (int64, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings
			(reference, user_id, trip_type, outbound_flight, return_flight, fare_class,
			 status, payment_status,
			 base_amount, baggage_amount, meal_amount, discount_amount, tax_amount, final_amount,
			 contact_name, contact_phone, contact_email, promo_code, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,NOW())`,
		b.Reference, b.UserID, b.TripType, b.OutboundFlight, intdb.NullIfEmpty(b.ReturnFlight), b.FareClass,
		b.Status, b.PaymentStatus,
		b.Amounts.Base, b.Amounts.Baggage, b.Amounts.Meal, b.Amounts.Discount, b.Amounts.Tax, b.Amounts.Final,
		b.ContactName, b.ContactPhone, b.ContactEmail, intdb.NullIfEmpty(b.PromoCode),
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	for _, p := range b.Passengers {
		if _, err := tx.Exec(`
			INSERT INTO booking_passengers
				(booking_id, type, name, baggage_outbound_id, baggage_return_id,
				 ancillary_outbound, ancillary_return)
			VALUES (?,?,?,?,?,?,?)`,
			id, p.Type, strings.TrimSpace(p.Name),
			p.BaggageOutboundID, p.BaggageReturnID,
			p.AncillaryOutbound, p.AncillaryReturn,
		); err != nil {
			return 0, domain.InternalError{Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// UpdateStatusIf applies one lifecycle transition with an optimistic status
// precondition. Status and payment_status move in the same statement; zero
// affected rows means another actor won the race and the caller gets a
// conflict naming the authoritative state.
func (r BookingRepo) UpdateStatusIf(id int64, tr domain.Transition, reason *string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}

	sets := []string{"status=?"}
	args := []any{string(tr.To)}
	if tr.Payment != nil {
		sets = append(sets, "payment_status=?")
		args = append(args, string(*tr.Payment))
	}
	if reason != nil {
		sets = append(sets, "cancellation_reason=?")
		args = append(args, strings.TrimSpace(*reason))
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id, string(tr.From))

	res, err := r.db().Exec(`UPDATE bookings SET `+strings.Join(sets, ", ")+
		` WHERE id=? AND status=?`, args...)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		current, getErr := r.GetByID(id)
		if getErr != nil {
			return getErr
		}
		return domain.ConflictError{
			Resource: "booking",
			Msg:      "status saat ini " + current.Status,
		}
	}
	return nil
}

// ListPassengers returns the seat roster of a booking.
func (r BookingRepo) ListPassengers(bookingID int64) ([]models.BookingPassenger, error) {
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(booking_id,0),
		       COALESCE(type,''),
		       COALESCE(name,''),
		       COALESCE(baggage_outbound_id,0),
		       COALESCE(baggage_return_id,0),
		       COALESCE(ancillary_outbound,0),
		       COALESCE(ancillary_return,0)
		FROM booking_passengers
		WHERE booking_id=?
		ORDER BY id`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.BookingPassenger{}
	for rows.Next() {
		var p models.BookingPassenger
		if err := rows.Scan(
			&p.ID, &p.BookingID, &p.Type, &p.Name,
			&p.BaggageOutboundID, &p.BaggageReturnID,
			&p.AncillaryOutbound, &p.AncillaryReturn,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPassenger fetches one roster entry (for e-ticket rendering).
func (r BookingRepo) GetPassenger(passengerID int64) (models.BookingPassenger, error) {
	if passengerID <= 0 {
		return models.BookingPassenger{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	var p models.BookingPassenger
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(booking_id,0),
		       COALESCE(type,''),
		       COALESCE(name,''),
		       COALESCE(baggage_outbound_id,0),
		       COALESCE(baggage_return_id,0),
		       COALESCE(ancillary_outbound,0),
		       COALESCE(ancillary_return,0)
		FROM booking_passengers
		WHERE id=? LIMIT 1`, passengerID).Scan(
		&p.ID, &p.BookingID, &p.Type, &p.Name,
		&p.BaggageOutboundID, &p.BaggageReturnID,
		&p.AncillaryOutbound, &p.AncillaryReturn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingPassenger{}, domain.NotFoundError{Resource: "passenger"}
		}
		return models.BookingPassenger{}, domain.InternalError{Err: err}
	}
	return p, nil
}
