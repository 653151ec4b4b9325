package models

import (
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Phone     *string   `gorm:"size:30" json:"phone"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	RoleTitle string    `gorm:"size:100;not null;default:'coach'" json:"role_title"`

	PackageType *string `gorm:"size:100" json:"package_type"`

	// AuthID links the coach to a login identity. A coach without one
	// cannot clock in or out.
	AuthID *uuid.UUID `gorm:"unique" json:"auth_id"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	User *User `gorm:"foreignkey:AuthID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Coach) FullName() string {
	return c.FirstName + " " + c.LastName
}
