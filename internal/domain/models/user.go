package models

// User mirrors the users table; PasswordHash never leaves the repo layer.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"` // customer / admin
	Status       string `json:"status"`
	PasswordHash string `json:"-"`
}
