package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepo) GetByEmail(email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email kosong"}
	}
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(email,''), COALESCE(phone,''),
		       COALESCE(role,'customer'), COALESCE(status,'active'), COALESCE(password_hash,'')
		FROM users WHERE email=? LIMIT 1`, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepo) Create(u models.User) (int64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || u.PasswordHash == "" {
		return 0, domain.ValidationError{Field: "user", Msg: "email dan password wajib"}
	}
	if u.Role == "" {
		u.Role = "customer"
	}
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, role, status, password_hash, created_at)
		VALUES (?,?,?,?,?,?,NOW())`,
		strings.TrimSpace(u.Name), u.Email, strings.TrimSpace(u.Phone),
		u.Role, "active", u.PasswordHash)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "user", Msg: "email sudah terdaftar"}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}
