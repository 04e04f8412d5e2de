package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

// View models shape entities for JSON responses. Contact fields (email,
// phone, whatsapp, address) are presentation-gated: they only appear when
// the viewer is authenticated.

// UserView is the response shape of an account.
type UserView struct {
	ID             uuid.UUID            `json:"id"`
	Email          string               `json:"email,omitempty"`
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	PhoneNumber    string               `json:"phoneNumber,omitempty"`
	WhatsappNumber string               `json:"whatsappNumber,omitempty"`
	ProfilePicture string               `json:"profilePicture,omitempty"`
	ShopLink       string               `json:"shopLink,omitempty"`
	ProfileLink    string               `json:"profileLink,omitempty"`
	Role           entity.Role          `json:"role"`
	Status         entity.UserStatus    `json:"status"`
	BusinessProfile *BusinessProfileView `json:"businessProfile,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// BusinessProfileView is the response shape of a storefront.
type BusinessProfileView struct {
	ID                 uuid.UUID             `json:"id"`
	OwnerID            uuid.UUID             `json:"ownerId"`
	BusinessName       string                `json:"businessName"`
	Slug               string                `json:"slug"`
	Description        string                `json:"description,omitempty"`
	Address            string                `json:"address,omitempty"`
	CoverImage         string                `json:"coverImage,omitempty"`
	ProfileImage       string                `json:"profileImage,omitempty"`
	BusinessPhone      string                `json:"businessPhone,omitempty"`
	WhatsappNumber     string                `json:"whatsappNumber,omitempty"`
	BusinessEmail      string                `json:"businessEmail,omitempty"`
	Status             entity.BusinessStatus `json:"status"`
	StatusUpdateReason string                `json:"statusUpdateReason,omitempty"`
	TotalProducts      int                   `json:"totalProducts"`
	Rating             float64               `json:"rating"`
	Owner              *UserView             `json:"owner,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// VendorPreview is the storefront summary embedded in product responses.
// It never carries contact fields; the address appears only for
// authenticated viewers.
type VendorPreview struct {
	ID           uuid.UUID             `json:"id"`
	BusinessName string                `json:"businessName"`
	Slug         string                `json:"slug"`
	ProfileImage string                `json:"profileImage,omitempty"`
	Address      string                `json:"address,omitempty"`
	Status       entity.BusinessStatus `json:"status"`
	Rating       float64               `json:"rating"`
}

// ProductView is the response shape of a listing.
type ProductView struct {
	ID          uuid.UUID            `json:"id"`
	OwnerID     uuid.UUID            `json:"ownerId"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Price       float64              `json:"price"`
	Condition   string               `json:"condition,omitempty"`
	CategoryID  *uuid.UUID           `json:"categoryId,omitempty"`
	Images      []string             `json:"images"`
	Tags        []string             `json:"tags"`
	Status      entity.ProductStatus `json:"status"`
	ViewsCount  int                  `json:"viewsCount"`
	Vendor      *VendorPreview       `json:"vendor,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// CategoryView is the response shape of a category node.
type CategoryView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description,omitempty"`
	Icon             string          `json:"icon,omitempty"`
	Image            string          `json:"image,omitempty"`
	ParentCategoryID *uuid.UUID      `json:"parentCategoryId,omitempty"`
	Status           entity.CategoryStatus `json:"status"`
	Parents          []*CategoryView `json:"parentCategories,omitempty"`
	Children         []*CategoryView `json:"childCategories,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// AdminLogView is the response shape of an activity log entry.
type AdminLogView struct {
	ID         uuid.UUID      `json:"id"`
	AdminID    uuid.UUID      `json:"adminId"`
	AdminEmail string         `json:"adminEmail,omitempty"`
	Action     string         `json:"action"`
	TargetID   string         `json:"targetId,omitempty"`
	TargetType string         `json:"targetType,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ListEnvelope pairs one page of rows with its pagination metadata.
type ListEnvelope struct {
	Items      any                 `json:"items"`
	Pagination repository.PageInfo `json:"pagination"`
}

func newUserView(user *entity.User, withContact bool) *UserView {
	if user == nil {
		return nil
	}

	view := &UserView{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePicture,
		ShopLink:       user.ShopLink,
		ProfileLink:    user.ProfileLink,
		Role:           user.Role,
		Status:         user.Status,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	if withContact {
		view.Email = user.Email
		view.PhoneNumber = user.PhoneNumber
		view.WhatsappNumber = user.WhatsappNumber
	}
	if user.BusinessProfile != nil {
		view.BusinessProfile = newBusinessProfileView(user.BusinessProfile, withContact)
	}

	return view
}

func newUserViews(users []*entity.User, withContact bool) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user, withContact))
	}

	return views
}

func newBusinessProfileView(profile *entity.BusinessProfile, withContact bool) *BusinessProfileView {
	if profile == nil {
		return nil
	}

	view := &BusinessProfileView{
		ID:                 profile.ID,
		OwnerID:            profile.OwnerID,
		BusinessName:       profile.BusinessName,
		Slug:               profile.Slug,
		Description:        profile.Description,
		CoverImage:         profile.CoverImage,
		ProfileImage:       profile.ProfileImage,
		Status:             profile.Status,
		StatusUpdateReason: profile.StatusUpdateReason,
		TotalProducts:      profile.TotalProducts,
		Rating:             profile.Rating,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
	if withContact {
		view.Address = profile.Address
		view.BusinessPhone = profile.BusinessPhone
		view.WhatsappNumber = profile.WhatsappNumber
		view.BusinessEmail = profile.BusinessEmail
	}
	if profile.Owner != nil {
		view.Owner = newUserView(profile.Owner, withContact)
	}

	return view
}

func newBusinessProfileViews(profiles []*entity.BusinessProfile, withContact bool) []*BusinessProfileView {
	views := make([]*BusinessProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newBusinessProfileView(profile, withContact))
	}

	return views
}

func newVendorPreview(profile *entity.BusinessProfile, withAddress bool) *VendorPreview {
	if profile == nil {
		return nil
	}

	preview := &VendorPreview{
		ID:           profile.ID,
		BusinessName: profile.BusinessName,
		Slug:         profile.Slug,
		ProfileImage: profile.ProfileImage,
		Status:       profile.Status,
		Rating:       profile.Rating,
	}
	if withAddress {
		preview.Address = profile.Address
	}

	return preview
}

func newProductView(product *entity.Product, withAddress bool) *ProductView {
	if product == nil {
		return nil
	}

	return &ProductView{
		ID:          product.ID,
		OwnerID:     product.OwnerID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Condition:   product.Condition,
		CategoryID:  product.CategoryID,
		Images:      product.Images,
		Tags:        product.Tags,
		Status:      product.Status,
		ViewsCount:  product.ViewsCount,
		Vendor:      newVendorPreview(product.Vendor, withAddress),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product, withAddress bool) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product, withAddress))
	}

	return views
}

func newCategoryView(category *entity.Category) *CategoryView {
	if category == nil {
		return nil
	}

	view := &CategoryView{
		ID:               category.ID,
		Name:             category.Name,
		Slug:             category.Slug,
		Description:      category.Description,
		Icon:             category.Icon,
		Image:            category.Image,
		ParentCategoryID: category.ParentCategoryID,
		Status:           category.Status,
		CreatedAt:        category.CreatedAt,
		UpdatedAt:        category.UpdatedAt,
	}
	for _, parent := range category.Parents {
		view.Parents = append(view.Parents, newCategoryView(parent))
	}
	for _, child := range category.Children {
		view.Children = append(view.Children, newCategoryView(child))
	}

	return view
}

func newCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}

	return views
}

func newAdminLogView(log *entity.AdminLog) *AdminLogView {
	if log == nil {
		return nil
	}

	return &AdminLogView{
		ID:         log.ID,
		AdminID:    log.AdminID,
		AdminEmail: log.AdminEmail,
		Action:     log.Action,
		TargetID:   log.TargetID,
		TargetType: log.TargetType,
		Details:    log.Details,
		CreatedAt:  log.CreatedAt,
	}
}

func newAdminLogViews(logs []*entity.AdminLog) []*AdminLogView {
	views := make([]*AdminLogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, newAdminLogView(log))
	}

	return views
}

// RoleStatusCountView is one cell of the user breakdown on the dashboard.
type RoleStatusCountView struct {
	Role   entity.Role       `json:"role"`
	Status entity.UserStatus `json:"status"`
	Count  int               `json:"count"`
}

// StatusCountView is one cell of a per-status breakdown on the dashboard.
type StatusCountView struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardStatsView is the admin overview payload.
type DashboardStatsView struct {
	Users            []RoleStatusCountView `json:"users"`
	BusinessProfiles []StatusCountView     `json:"businessProfiles"`
	Products         []StatusCountView     `json:"products"`
}

func newDashboardStatsView(stats *usecase.DashboardStats) *DashboardStatsView {
	if stats == nil {
		return nil
	}

	view := &DashboardStatsView{
		Users:            make([]RoleStatusCountView, 0, len(stats.Users)),
		BusinessProfiles: make([]StatusCountView, 0, len(stats.BusinessProfiles)),
		Products:         make([]StatusCountView, 0, len(stats.Products)),
	}
	for _, row := range stats.Users {
		view.Users = append(view.Users, RoleStatusCountView{Role: row.Role, Status: row.Status, Count: row.Count})
	}
	for _, row := range stats.BusinessProfiles {
		view.BusinessProfiles = append(view.BusinessProfiles, StatusCountView{Status: string(row.Status), Count: row.Count})
	}
	for _, row := range stats.Products {
		view.Products = append(view.Products, StatusCountView{Status: string(row.Status), Count: row.Count})
	}

	return view
}

// ActivitySummaryView aggregates log entries by action and by day.
type ActivitySummaryView struct {
	ActionCounts []ActionCountView `json:"actionCounts"`
	Timeline     []DailyCountView  `json:"timeline"`
}

// ActionCountView is the number of log entries for one action type.
type ActionCountView struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// DailyCountView is the number of log entries recorded on one calendar day.
type DailyCountView struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

func newActivitySummaryView(summary *entity.ActivitySummary) *ActivitySummaryView {
	if summary == nil {
		return nil
	}

	view := &ActivitySummaryView{
		ActionCounts: make([]ActionCountView, 0, len(summary.ActionCounts)),
		Timeline:     make([]DailyCountView, 0, len(summary.Timeline)),
	}
	for _, row := range summary.ActionCounts {
		view.ActionCounts = append(view.ActionCounts, ActionCountView{Action: row.Action, Count: row.Count})
	}
	for _, row := range summary.Timeline {
		view.Timeline = append(view.Timeline, DailyCountView{Day: row.Day, Count: row.Count})
	}

	return view
}
