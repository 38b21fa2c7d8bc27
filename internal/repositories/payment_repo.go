package repositories

import (
	"database/sql"
	"strings"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
)

type PaymentRepo struct {
	DB *sql.DB
}

func (r PaymentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Add records one payment row. The idempotency key is unique so a retried
// confirmation never books the money twice.
func (r PaymentRepo) Add(p models.Payment) (int64, error) {
	if p.BookingID <= 0 {
		return 0, domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}
	res, err := r.db().Exec(`
		INSERT INTO payments
			(booking_id, idempotency_key, method, amount, status, proof_file, notes, created_at)
		VALUES (?,?,?,?,?,?,?,NOW())`,
		p.BookingID,
		p.IdempotencyKey,
		strings.TrimSpace(p.Method),
		p.Amount,
		p.Status,
		p.ProofFile,
		strings.TrimSpace(p.Notes),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "payment", Msg: "pembayaran sudah tercatat"}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// ListByBooking returns payments newest first.
func (r PaymentRepo) ListByBooking(bookingID int64) ([]models.Payment, error) {
	if bookingID <= 0 {
		return nil, domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(booking_id,0),
		       COALESCE(idempotency_key,''),
		       COALESCE(method,''),
		       COALESCE(amount,0),
		       COALESCE(status,''),
		       COALESCE(proof_file,''),
		       COALESCE(notes,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM payments
		WHERE booking_id=?
		ORDER BY id DESC`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.ID, &p.BookingID, &p.IdempotencyKey, &p.Method,
			&p.Amount, &p.Status, &p.ProofFile, &p.Notes, &p.CreatedAt,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	// MySQL error 1062; string match keeps the repo driver-agnostic in tests.
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "Error 1062")
}
