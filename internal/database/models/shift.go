package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RecurringShiftPattern is a weekly template expanded into concrete shifts.
// StartTime and EndTime are "HH:MM" times of day; DaysOfWeek holds 0 (Sunday) .. 6 (Saturday).
type RecurringShiftPattern struct {
	BaseModel
	Name       string        `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	LocationID uuid.UUID     `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartTime  string        `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime    string        `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	DaysOfWeek pq.Int64Array `json:"days_of_week" gorm:"type:integer[];not null"`
	StartDate  time.Time     `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    *time.Time    `json:"end_date,omitempty" gorm:"type:date"`
	IsActive   bool          `json:"is_active" gorm:"not null;default:true"`
	CreatedBy  *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`

	Location    *Location                 `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Assignments []RecurringUserAssignment `json:"assignments,omitempty" gorm:"foreignKey:PatternID"`
}

// TableName returns the table name for RecurringShiftPattern
func (RecurringShiftPattern) TableName() string {
	return "recurring_shift_patterns"
}

// HasDay reports whether the weekday is part of the pattern
func (p *RecurringShiftPattern) HasDay(day time.Weekday) bool {
	for _, d := range p.DaysOfWeek {
		if d == int64(day) {
			return true
		}
	}
	return false
}

// RecurringUserAssignment is template-level crew for a pattern
type RecurringUserAssignment struct {
	BaseModel
	PatternID uuid.UUID `json:"pattern_id" gorm:"type:uuid;not null;uniqueIndex:ux_recurring_assignment"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:ux_recurring_assignment"`
	Role      string    `json:"role" gorm:"size:50"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for RecurringUserAssignment
func (RecurringUserAssignment) TableName() string {
	return "recurring_user_assignments"
}

// Shift is a single concrete work period at a location
type Shift struct {
	BaseModel
	Name               string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	StartTime          time.Time  `json:"start_time" gorm:"not null;index" validate:"required"`
	EndTime            time.Time  `json:"end_time" gorm:"not null" validate:"required"`
	LocationID         uuid.UUID  `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	RecurringPatternID *uuid.UUID `json:"recurring_pattern_id,omitempty" gorm:"type:uuid"`

	Location    *Location         `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Assignments []ShiftAssignment `json:"assignments,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// ShiftAssignment binds one user to a shift, optionally with a sub-role label
type ShiftAssignment struct {
	BaseModel
	ShiftID uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:ux_shift_assignment"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:ux_shift_assignment"`
	Role    string    `json:"role" gorm:"size:50"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
