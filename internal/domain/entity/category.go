package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is a node in the self-referential category tree. Children are
// derived by querying for rows whose ParentCategoryID points at this node;
// there is no denormalized child list to keep in sync.
type Category struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	Description      string
	Icon             string
	Image            string
	ParentCategoryID *uuid.UUID
	Status           CategoryStatus
	// Parents is the chain of ancestors (direct parent first) and Children
	// the direct descendants. Both are populated only by the traversal reads.
	Parents   []*Category
	Children  []*Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryStatus is the soft-delete state of a category.
type CategoryStatus string

const (
	CategoryStatusActive  CategoryStatus = "active"
	CategoryStatusDeleted CategoryStatus = "deleted"
)

// String returns the string representation of the CategoryStatus.
func (s CategoryStatus) String() string {
	return string(s)
}

var slugStripper = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a category name.
func Slugify(name string) string {
	slug := slugStripper.ReplaceAllString(strings.ToLower(name), "-")

	return strings.Trim(slug, "-")
}
