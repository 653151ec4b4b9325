package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityTimeIn           = "time_in"
	ActivityTimeOut          = "time_out"
	ActivitySessionCreated   = "session_created"
	ActivitySessionUpdated   = "session_updated"
	ActivitySessionCancelled = "session_cancelled"
	ActivitySessionCompleted = "session_completed"
)

// ActivityLog is append-only; rows are never updated or deleted.
type ActivityLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"not null;index" json:"user_id"`
	UserType     string     `gorm:"size:20;not null" json:"user_type"`
	SessionID    *uuid.UUID `gorm:"index" json:"session_id"`
	ActivityType string     `gorm:"size:30;not null" json:"activity_type"`
	Description  string     `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
