package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. The tree is encoded solely
// through ParentCategoryID; children are derived by query.
type CategoryModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Slug             string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description      string     `gorm:"type:text"`
	Icon             string     `gorm:"type:text"`
	Image            string     `gorm:"type:text"`
	ParentCategoryID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(16);not null;default:active;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Parent *CategoryModel `gorm:"foreignKey:ParentCategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
