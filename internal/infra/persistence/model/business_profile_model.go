package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel mirrors the 'business_profiles' table. OwnerID
// references users.id; each user owns at most one profile.
type BusinessProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName       string    `gorm:"type:varchar(255);not null"`
	Slug               string    `gorm:"type:varchar(255);uniqueIndex"`
	Description        string    `gorm:"type:text"`
	Address            string    `gorm:"type:text"`
	CoverImage         string    `gorm:"type:text"`
	ProfileImage       string    `gorm:"type:text"`
	BusinessPhone      string    `gorm:"type:varchar(32)"`
	WhatsappNumber     string    `gorm:"type:varchar(32)"`
	BusinessEmail      string    `gorm:"type:varchar(255)"`
	Status             string    `gorm:"type:varchar(32);not null;default:pending_verification;index"`
	StatusUpdateReason string    `gorm:"type:text"`
	TotalProducts      int       `gorm:"not null;default:0"`
	Rating             float64   `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
