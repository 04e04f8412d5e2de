package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductModel mirrors the 'products' table. ProductOwnerID references
// business_profiles.id, not the user account.
type ProductModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductOwnerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Description    string         `gorm:"type:text"`
	Price          float64        `gorm:"not null"`
	Condition      string         `gorm:"type:varchar(32)"`
	CategoryID     *uuid.UUID     `gorm:"type:uuid;index"`
	Images         pq.StringArray `gorm:"type:text[]"`
	Tags           pq.StringArray `gorm:"type:text[]"`
	Status         string         `gorm:"type:varchar(16);not null;default:pending;index"`
	ViewsCount     int            `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Vendor *BusinessProfileModel `gorm:"foreignKey:ProductOwnerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ContactViewModel mirrors the 'product_contact_views' analytics table.
type ContactViewModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID            uuid.UUID `gorm:"type:uuid;not null"`
	BusinessProfileID uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactViewModel) TableName() string {
	return "product_contact_views"
}
