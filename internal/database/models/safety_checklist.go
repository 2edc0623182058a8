package models

import (
	"time"

	"github.com/google/uuid"
)

// SafetyChecklistItem is a template line guards must confirm when coming on duty.
// A nil LocationID applies the item to every location.
type SafetyChecklistItem struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:150" validate:"required,max=150"`
	Description string     `json:"description" gorm:"type:text"`
	LocationID  *uuid.UUID `json:"location_id,omitempty" gorm:"type:uuid;index"`
	SortOrder   int        `json:"sort_order" gorm:"not null;default:0"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for SafetyChecklistItem
func (SafetyChecklistItem) TableName() string {
	return "safety_checklist_items"
}

// SafetyChecklistResponse is one completed checklist for a duty session
type SafetyChecklistResponse struct {
	BaseModel
	DutySessionID uuid.UUID `json:"duty_session_id" gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	LocationID    uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index"`
	CompletedAt   time.Time `json:"completed_at" gorm:"not null"`

	ItemChecks []SafetyChecklistItemCheck `json:"item_checks,omitempty" gorm:"foreignKey:ResponseID"`
}

// TableName returns the table name for SafetyChecklistResponse
func (SafetyChecklistResponse) TableName() string {
	return "safety_checklist_responses"
}

// SafetyChecklistItemCheck is the per-item answer within a response
type SafetyChecklistItemCheck struct {
	BaseModel
	ResponseID uuid.UUID `json:"response_id" gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `json:"item_id" gorm:"type:uuid;not null"`
	ItemName   string    `json:"item_name" gorm:"size:150"`
	Checked    bool      `json:"checked" gorm:"not null"`
	Notes      string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for SafetyChecklistItemCheck
func (SafetyChecklistItemCheck) TableName() string {
	return "safety_checklist_item_checks"
}
