package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentCode string    `gorm:"size:10;not null;unique" json:"student_code"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	Phone       *string   `gorm:"size:30" json:"phone"`
	Email       *string   `gorm:"size:255" json:"email"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`

	BranchID    uuid.UUID `gorm:"not null" json:"branch_id"`
	PackageType *string   `gorm:"size:100" json:"package_type"`

	TotalSessions     int `gorm:"not null;default:0" json:"total_sessions"`
	RemainingSessions int `gorm:"not null;default:0" json:"remaining_sessions"`

	GuardianName  *string `gorm:"size:255" json:"guardian_name"`
	GuardianPhone *string `gorm:"size:30" json:"guardian_phone"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	Notes             *string `gorm:"type:text" json:"notes"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	Branch Branch `gorm:"foreignkey:BranchID" json:"branch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
