package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin actions recorded in the activity log.
const (
	ActionUpdateUserStatus     = "UPDATE_USER_STATUS"
	ActionUpdateBusinessStatus = "UPDATE_BUSINESS_ACCOUNT_STATUS"
	ActionCreateCategory       = "CREATE_CATEGORY"
	ActionUpdateCategory       = "UPDATE_CATEGORY"
	ActionDeleteCategory       = "DELETE_CATEGORY"
)

// Target types referenced by admin log entries.
const (
	TargetTypeUser            = "user"
	TargetTypeBusinessProfile = "business_profile"
	TargetTypeCategory        = "category"
	TargetTypeProduct         = "product"
)

// AdminLog is an append-only record of an admin action. Entries are never
// updated or deleted by this layer.
type AdminLog struct {
	ID         uuid.UUID
	AdminID    uuid.UUID
	Action     string
	TargetID   string
	TargetType string
	Details    map[string]any
	// AdminEmail is populated on reads that join the acting admin account.
	AdminEmail string
	CreatedAt  time.Time
}

// ActivitySummary aggregates log entries by action and by day.
type ActivitySummary struct {
	ActionCounts []ActionCount
	Timeline     []DailyCount
}

// ActionCount is the number of log entries for one action type.
type ActionCount struct {
	Action string
	Count  int
}

// DailyCount is the number of log entries recorded on one calendar day.
type DailyCount struct {
	Day   time.Time
	Count int
}
