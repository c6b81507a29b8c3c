package model

import (
	"time"

	"gorm.io/gorm"

	"carzone/internal/auth"
)

// User represents a registered account. Emails are stored lowercased and kept
// unique by the database.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         auth.Role      `json:"role" gorm:"size:16;not null;default:user"`
	Address      string         `json:"address,omitempty" gorm:"size:255"`
	PhoneNumber  string         `json:"phone_number,omitempty" gorm:"size:32"`
	Avatar       string         `json:"avatar,omitempty" gorm:"size:512"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
