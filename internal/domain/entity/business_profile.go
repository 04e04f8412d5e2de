package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is a vendor's storefront record. Exactly one user owns a
// profile; the profile's status gates the owner's vendor role.
//
// BusinessPhone, WhatsappNumber and BusinessEmail are private contact
// fields: they must never appear in responses to unauthenticated viewers.
type BusinessProfile struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	BusinessName       string
	Slug               string
	Description        string
	Address            string
	CoverImage         string
	ProfileImage       string
	BusinessPhone      string
	WhatsappNumber     string
	BusinessEmail      string
	Status             BusinessStatus
	StatusUpdateReason string
	TotalProducts      int
	Rating             float64
	// Owner is populated on admin listings that join the owning account.
	Owner     *User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessStatus is the verification lifecycle state of a storefront.
type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "pending_verification"
	BusinessStatusActive    BusinessStatus = "active"
	BusinessStatusRejected  BusinessStatus = "rejected"
	BusinessStatusSuspended BusinessStatus = "suspended"
)

// IsValid checks if the BusinessStatus is a known value.
func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusActive, BusinessStatusRejected, BusinessStatusSuspended:
		return true
	default:
		return false
	}
}

// String returns the string representation of the BusinessStatus.
func (s BusinessStatus) String() string {
	return string(s)
}
