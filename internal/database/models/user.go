package models

import (
	"time"
)

// User is the local record for an identity-provider account
type User struct {
	BaseModel
	ExternalID string     `json:"external_id" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Email      string     `json:"email" gorm:"size:255;index" validate:"omitempty,email,max=255"`
	Name       string     `json:"name" gorm:"size:200" validate:"max=200"`
	Phone      string     `json:"phone" gorm:"size:30"`
	Role       Role       `json:"role" gorm:"type:varchar(20);not null;default:'GUARD'" validate:"required"`
	ArchivedAt *time.Time `json:"archived_at,omitempty" gorm:"index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsArchived reports whether the user has been soft-deleted
func (u *User) IsArchived() bool {
	return u.ArchivedAt != nil
}
