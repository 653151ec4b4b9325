package models

import (
	"time"

	"github.com/google/uuid"
)

type Package struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:255;not null;unique" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	SessionCount int       `gorm:"not null" json:"session_count"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
