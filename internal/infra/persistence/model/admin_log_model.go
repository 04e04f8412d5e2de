package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AdminLogModel mirrors the append-only 'admin_logs' table.
type AdminLogModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Action     string          `gorm:"type:varchar(64);not null;index"`
	TargetID   string          `gorm:"type:varchar(64)"`
	TargetType string          `gorm:"type:varchar(32)"`
	Details    json.RawMessage `gorm:"type:jsonb"`
	CreatedAt  time.Time       `gorm:"index"`

	Admin *UserModel `gorm:"foreignKey:AdminID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminLogModel) TableName() string {
	return "admin_logs"
}
