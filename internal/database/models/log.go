package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Log is a journal entry (patrol, incident, checklist, ...) written at a location
type Log struct {
	BaseModel
	Type        LogType        `json:"type" gorm:"type:varchar(30);not null;index" validate:"required"`
	Title       string         `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string         `json:"description" gorm:"type:text"`
	LocationID  uuid.UUID      `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	ShiftID     *uuid.UUID     `json:"shift_id,omitempty" gorm:"type:uuid;index"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Severity    *LogSeverity   `json:"severity,omitempty" gorm:"type:varchar(20)"`
	Status      LogStatus      `json:"status" gorm:"type:varchar(20);not null;default:'OPEN'"`
	VideoURLs   pq.StringArray `json:"video_urls" gorm:"type:text[]"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	ReviewedBy  *uuid.UUID     `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedAt  *time.Time     `json:"reviewed_at,omitempty"`
	ReviewNotes string         `json:"review_notes" gorm:"type:text"`
	ArchivedAt  *time.Time     `json:"archived_at,omitempty" gorm:"index"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName returns the table name for Log
func (Log) TableName() string {
	return "logs"
}

// IsArchived reports whether the log has been soft-deleted
func (l *Log) IsArchived() bool {
	return l.ArchivedAt != nil
}

// IsReviewed reports whether a supervisor has reviewed the log
func (l *Log) IsReviewed() bool {
	return l.ReviewedBy != nil
}
