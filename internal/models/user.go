package models

import "time"

// User represents a catalog user. Users are seeded out of band and only read by login.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:text;not null"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"` // never serialized
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}

// PublicUser is the profile returned to clients.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the credential from the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// LoginInput represents the request body for login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse pairs the logged in user with a session token.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// Session is the authenticated caller attached to a request.
type Session struct {
	UserID  int64
	Email   string
	TokenID string
}
