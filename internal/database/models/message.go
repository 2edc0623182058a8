package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct note between two users
type Message struct {
	BaseModel
	SenderID    uuid.UUID  `json:"sender_id" gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `json:"recipient_id" gorm:"type:uuid;not null;index"`
	Subject     string     `json:"subject" gorm:"size:200"`
	Body        string     `json:"body" gorm:"type:text;not null"`
	ReadAt      *time.Time `json:"read_at,omitempty"`

	Sender *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
