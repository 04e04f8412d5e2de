// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account record. Role and status are independent axes:
// suspending a vendor does not remove their vendor role by itself; role
// changes only happen as a side effect of business profile transitions.
type User struct {
	ID                 uuid.UUID
	Email              string
	FirstName          string
	LastName           string
	PhoneNumber        string
	WhatsappNumber     string
	ProfilePicture     string
	ShopLink           string
	ProfileLink        string
	Role               Role
	Status             UserStatus
	StatusUpdateReason string
	// BusinessProfile is the storefront owned by this user, nil when the
	// account has never onboarded as a vendor.
	BusinessProfile *BusinessProfile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusDeleted   UserStatus = "deleted"
)

// IsValid checks if the UserStatus is a known value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusDeleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}
