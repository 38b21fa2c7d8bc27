package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/utils"
)

// ReferenceRepo serves the back-office master data: airports, airlines,
// aircraft and promotions.
type ReferenceRepo struct {
	DB *sql.DB
}

func (r ReferenceRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// --- airports ---

func (r ReferenceRepo) ListAirports() ([]models.Airport, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(code,''), COALESCE(name,''), COALESCE(city,'')
		FROM airports ORDER BY code`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ReferenceRepo) SaveAirport(a models.Airport) (int64, error) {
	a.Code = utils.NormalizeCode(a.Code)
	if a.Code == "" || a.Name == "" {
		return 0, domain.ValidationError{Field: "airport", Msg: "code dan name wajib"}
	}
	if a.ID > 0 {
		_, err := r.db().Exec(`UPDATE airports SET code=?, name=?, city=? WHERE id=?`,
			a.Code, strings.TrimSpace(a.Name), strings.TrimSpace(a.City), a.ID)
		if err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return a.ID, nil
	}
	res, err := r.db().Exec(`INSERT INTO airports (code, name, city) VALUES (?,?,?)`,
		a.Code, strings.TrimSpace(a.Name), strings.TrimSpace(a.City))
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "airport", Msg: "code sudah terdaftar"}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r ReferenceRepo) DeleteAirport(id int64) error {
	return r.deleteByID("airports", id)
}

// --- airlines ---

func (r ReferenceRepo) ListAirlines() ([]models.Airline, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(code,''), COALESCE(name,'') FROM airlines ORDER BY code`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Airline{}
	for rows.Next() {
		var a models.Airline
		if err := rows.Scan(&a.ID, &a.Code, &a.Name); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ReferenceRepo) SaveAirline(a models.Airline) (int64, error) {
	a.Code = utils.NormalizeCode(a.Code)
	if a.Code == "" || a.Name == "" {
		return 0, domain.ValidationError{Field: "airline", Msg: "code dan name wajib"}
	}
	if a.ID > 0 {
		if _, err := r.db().Exec(`UPDATE airlines SET code=?, name=? WHERE id=?`,
			a.Code, strings.TrimSpace(a.Name), a.ID); err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return a.ID, nil
	}
	res, err := r.db().Exec(`INSERT INTO airlines (code, name) VALUES (?,?)`,
		a.Code, strings.TrimSpace(a.Name))
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "airline", Msg: "code sudah terdaftar"}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r ReferenceRepo) DeleteAirline(id int64) error {
	return r.deleteByID("airlines", id)
}

// --- aircraft ---

func (r ReferenceRepo) ListAircraft() ([]models.Aircraft, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(airline_id,0), COALESCE(model,''), COALESCE(seats,0)
		FROM aircraft ORDER BY id`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Aircraft{}
	for rows.Next() {
		var a models.Aircraft
		if err := rows.Scan(&a.ID, &a.AirlineID, &a.Model, &a.Seats); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ReferenceRepo) SaveAircraft(a models.Aircraft) (int64, error) {
	if strings.TrimSpace(a.Model) == "" {
		return 0, domain.ValidationError{Field: "model", Msg: "model wajib"}
	}
	if a.ID > 0 {
		if _, err := r.db().Exec(`UPDATE aircraft SET airline_id=?, model=?, seats=? WHERE id=?`,
			a.AirlineID, strings.TrimSpace(a.Model), a.Seats, a.ID); err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return a.ID, nil
	}
	res, err := r.db().Exec(`INSERT INTO aircraft (airline_id, model, seats) VALUES (?,?,?)`,
		a.AirlineID, strings.TrimSpace(a.Model), a.Seats)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r ReferenceRepo) DeleteAircraft(id int64) error {
	return r.deleteByID("aircraft", id)
}

// --- promotions ---

func (r ReferenceRepo) ListPromotions() ([]models.Promotion, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(code,''), COALESCE(description,''),
		       COALESCE(percent,0), COALESCE(flat_amount,0),
		       COALESCE(valid_from,''), COALESCE(valid_until,''), COALESCE(active,0)
		FROM promotions ORDER BY id DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Promotion{}
	for rows.Next() {
		var p models.Promotion
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.Percent,
			&p.FlatAmount, &p.ValidFrom, &p.ValidUntil, &p.Active); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetActivePromotion resolves a promo code; inactive or unknown codes return
// NotFoundError, which booking creation treats as "no discount".
func (r ReferenceRepo) GetActivePromotion(code string) (models.Promotion, error) {
	code = utils.NormalizeCode(code)
	if code == "" {
		return models.Promotion{}, domain.NotFoundError{Resource: "promotion"}
	}
	var p models.Promotion
	err := r.db().QueryRow(`
		SELECT id, COALESCE(code,''), COALESCE(description,''),
		       COALESCE(percent,0), COALESCE(flat_amount,0),
		       COALESCE(valid_from,''), COALESCE(valid_until,''), COALESCE(active,0)
		FROM promotions
		WHERE code=? AND active=1
		  AND (valid_from='' OR valid_from<=CURDATE())
		  AND (valid_until='' OR valid_until>=CURDATE())
		LIMIT 1`, code).Scan(
		&p.ID, &p.Code, &p.Description, &p.Percent,
		&p.FlatAmount, &p.ValidFrom, &p.ValidUntil, &p.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Promotion{}, domain.NotFoundError{Resource: "promotion"}
		}
		return models.Promotion{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r ReferenceRepo) SavePromotion(p models.Promotion) (int64, error) {
	p.Code = utils.NormalizeCode(p.Code)
	if p.Code == "" {
		return 0, domain.ValidationError{Field: "code", Msg: "code wajib"}
	}
	if p.Percent < 0 || p.Percent > 100 {
		return 0, domain.ValidationError{Field: "percent", Msg: "persen harus 0-100"}
	}
	if p.FlatAmount < 0 {
		return 0, domain.ValidationError{Field: "flat_amount", Msg: "nominal tidak valid"}
	}
	if p.ValidFrom != "" {
		if _, err := utils.ParseDate(p.ValidFrom); err != nil {
			return 0, domain.ValidationError{Field: "valid_from", Msg: "format tanggal harus YYYY-MM-DD"}
		}
	}
	if p.ValidUntil != "" {
		if _, err := utils.ParseDate(p.ValidUntil); err != nil {
			return 0, domain.ValidationError{Field: "valid_until", Msg: "format tanggal harus YYYY-MM-DD"}
		}
	}
	if p.ID > 0 {
		if _, err := r.db().Exec(`
			UPDATE promotions SET code=?, description=?, percent=?, flat_amount=?,
			       valid_from=?, valid_until=?, active=? WHERE id=?`,
			p.Code, p.Description, p.Percent, p.FlatAmount,
			p.ValidFrom, p.ValidUntil, p.Active, p.ID); err != nil {
			return 0, domain.InternalError{Err: err}
		}
		return p.ID, nil
	}
	res, err := r.db().Exec(`
		INSERT INTO promotions (code, description, percent, flat_amount, valid_from, valid_until, active)
		VALUES (?,?,?,?,?,?,?)`,
		p.Code, p.Description, p.Percent, p.FlatAmount, p.ValidFrom, p.ValidUntil, p.Active)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "promotion", Msg: "code sudah terdaftar"}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r ReferenceRepo) DeletePromotion(id int64) error {
	return r.deleteByID("promotions", id)
}

func (r ReferenceRepo) deleteByID(table string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	res, err := r.db().Exec(`DELETE FROM `+table+` WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: strings.TrimSuffix(table, "s")}
	}
	return nil
}
