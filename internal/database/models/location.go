package models

import (
	"gorm.io/datatypes"
)

// Location is a post on the marina where guards can be stationed
type Location struct {
	BaseModel
	Name        string         `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string         `json:"description" gorm:"type:text"`
	Address     string         `json:"address" gorm:"size:255"`
	MaxCapacity *int           `json:"max_capacity,omitempty" validate:"omitempty,min=1"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:true"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
