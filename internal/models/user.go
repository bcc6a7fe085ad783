package models

import "time"

// UserDB represents a user record in the database.
// PasswordHash never leaves the repository/service boundary.
type UserDB struct {
	Username     string    `db:"username"`      // Primary key
	PasswordHash string    `db:"password_hash"` // Bcrypt hash, never serialized
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Phone        string    `db:"phone"`
	JoinAt       time.Time `db:"join_at"`       // Set once at registration
	LastLoginAt  time.Time `db:"last_login_at"` // Advanced on every successful login
}

// PublicUser holds the profile fields safe to return to any caller.
type PublicUser struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
}

// Public strips a stored user down to its public profile fields.
func (u *UserDB) Public() PublicUser {
	return PublicUser{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}
