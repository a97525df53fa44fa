package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated identity. A record is created either through
// password registration or through the first verified Google sign-in; a
// password-registered record can later be linked to a Google subject in place.
type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Email         string    `json:"email" gorm:"type:varchar(255) COLLATE utf8mb4_bin;uniqueIndex;not null"` // binary collation: email is unique case-sensitively, as stored
	Age           int       `json:"age,omitempty"`
	Country       string    `json:"country,omitempty" gorm:"size:100"`
	Gender        string    `json:"gender,omitempty" gorm:"size:20"`
	PasswordHash  string    `json:"-" gorm:"size:255"` // empty for Google-only accounts
	Role          string    `json:"role" gorm:"size:50;default:'user'"`
	GoogleID      *string   `json:"-" gorm:"uniqueIndex;size:255"` // nullable so the unique index skips unlinked rows
	IsGoogleAuth  bool      `json:"is_google_auth" gorm:"default:false"`
	Picture       string    `json:"picture,omitempty" gorm:"size:512"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the projection returned to clients alongside a token.
type PublicUser struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Picture string    `json:"picture,omitempty"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Picture: u.Picture,
	}
}
