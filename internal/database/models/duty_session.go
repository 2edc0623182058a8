package models

import (
	"time"

	"github.com/google/uuid"
)

// DutyState is the derived on/off duty state of a user
type DutyState string

const (
	DutyStateOffDuty          DutyState = "OFF_DUTY"
	DutyStateOnDuty           DutyState = "ON_DUTY"
	DutyStateOnDutyAtLocation DutyState = "ON_DUTY_AT_LOCATION"
)

// DutySession is one continuous on-duty interval for one user.
// A nil ClockOutTime means the session is open; a nil LocationID means roaming.
type DutySession struct {
	BaseModel
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	LocationID   *uuid.UUID `json:"location_id,omitempty" gorm:"type:uuid;index"`
	ShiftID      *uuid.UUID `json:"shift_id,omitempty" gorm:"type:uuid;index"`
	ClockInTime  time.Time  `json:"clock_in_time" gorm:"not null"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	StartMileage *int       `json:"start_mileage,omitempty"`
	EndMileage   *int       `json:"end_mileage,omitempty"`
	Notes        string     `json:"notes" gorm:"type:text"`

	// Relationships
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName returns the table name for DutySession
func (DutySession) TableName() string {
	return "duty_sessions"
}

// IsOpen reports whether the session has not been clocked out
func (d *DutySession) IsOpen() bool {
	return d.ClockOutTime == nil
}

// State derives the duty state from the session
func (d *DutySession) State() DutyState {
	switch {
	case d == nil || !d.IsOpen():
		return DutyStateOffDuty
	case d.LocationID == nil:
		return DutyStateOnDuty
	default:
		return DutyStateOnDutyAtLocation
	}
}

// LocationCheckIn is a point-in-time observation by a roaming supervisor
type LocationCheckIn struct {
	BaseModel
	DutySessionID uuid.UUID `json:"duty_session_id" gorm:"type:uuid;not null;index" validate:"required"`
	LocationID    uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	CheckInTime   time.Time `json:"check_in_time" gorm:"not null"`
	Notes         string    `json:"notes" gorm:"type:text"`

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName returns the table name for LocationCheckIn
func (LocationCheckIn) TableName() string {
	return "location_check_ins"
}

// EquipmentCheckout records gear (radio, keys, vehicle) held during a duty session
type EquipmentCheckout struct {
	BaseModel
	DutySessionID uuid.UUID  `json:"duty_session_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ItemName      string     `json:"item_name" gorm:"not null;size:100" validate:"required,max=100"`
	SerialNumber  string     `json:"serial_number" gorm:"size:100"`
	CheckedOutAt  time.Time  `json:"checked_out_at" gorm:"not null"`
	ReturnedAt    *time.Time `json:"returned_at,omitempty"`
}

// TableName returns the table name for EquipmentCheckout
func (EquipmentCheckout) TableName() string {
	return "equipment_checkouts"
}
