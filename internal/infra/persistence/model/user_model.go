// Package model contains the GORM persistence models mirroring the
// PostgreSQL schema. Mapping to and from domain entities happens in the
// postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// gen_random_uuid().
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	FirstName          string    `gorm:"type:varchar(100)"`
	LastName           string    `gorm:"type:varchar(100)"`
	PhoneNumber        string    `gorm:"type:varchar(32)"`
	WhatsappNumber     string    `gorm:"type:varchar(32)"`
	ProfilePicture     string    `gorm:"type:text"`
	ShopLink           string    `gorm:"type:text"`
	ProfileLink        string    `gorm:"type:text"`
	Role               string    `gorm:"type:varchar(16);not null;default:user"`
	Status             string    `gorm:"type:varchar(16);not null;default:active"`
	StatusUpdateReason string    `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	BusinessProfile *BusinessProfileModel `gorm:"foreignKey:OwnerID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
