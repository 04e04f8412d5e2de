package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a listing owned by a business profile. A product created while
// the owning profile is still pending verification starts in ProductStatusPending
// and only becomes publicly visible once activated.
type Product struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // business profile ID, not the user ID
	Name        string
	Description string
	Price       float64
	Condition   string
	CategoryID  *uuid.UUID
	Images      []string
	Tags        []string
	Status      ProductStatus
	ViewsCount  int
	// Vendor is the owning storefront, populated on listing/detail reads.
	Vendor    *BusinessProfile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductStatus is the lifecycle state of a listing.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDeleted  ProductStatus = "deleted"
)

// IsValid checks if the ProductStatus is a known value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusPending, ProductStatusInactive, ProductStatusDeleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// ProductSort enumerates the supported listing sort orders.
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortPopular   ProductSort = "popular"
)

// ContactView is the analytics event recorded when an authenticated user
// reveals a vendor's private contact details for a product.
type ContactView struct {
	ID                uuid.UUID
	ProductID         uuid.UUID
	UserID            uuid.UUID
	BusinessProfileID uuid.UUID
	CreatedAt         time.Time
}
