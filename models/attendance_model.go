package models

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendancePending AttendanceStatus = "pending"
)

type AttendanceRecord struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID        `gorm:"not null;uniqueIndex:idx_session_student_attendance" json:"session_id"`
	StudentID uuid.UUID        `gorm:"not null;uniqueIndex:idx_session_student_attendance" json:"student_id"`
	Status    AttendanceStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	MarkedAt  *time.Time       `json:"marked_at"`
	MarkedBy  *uuid.UUID       `json:"marked_by"`

	Session TrainingSession `gorm:"foreignkey:SessionID" json:"session,omitempty"`
	Student Student         `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
