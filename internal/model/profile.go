package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the base record for every principal, regardless of role.
// Role is assigned at signup and never changes for the life of the account.
type Profile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName      string    `gorm:"column:full_name" json:"full_name"`
	Role          Role      `gorm:"type:varchar(20)" json:"role"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
