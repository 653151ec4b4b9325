package models

import (
	"time"

	"github.com/google/uuid"
)

type Branch struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:255;not null;unique" json:"name"`
	Address      string    `gorm:"size:255" json:"address"`
	City         string    `gorm:"size:100" json:"city"`
	ContactPhone string    `gorm:"size:30" json:"contact_phone"`
	ContactEmail string    `gorm:"size:255" json:"contact_email"`

	Students []Student         `gorm:"foreignkey:BranchID" json:"students,omitempty"`
	Sessions []TrainingSession `gorm:"foreignkey:BranchID" json:"sessions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
