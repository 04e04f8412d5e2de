package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBusinessProfileInput defines the data required to onboard a storefront.
type CreateBusinessProfileInput struct {
	BusinessName   string `validate:"required,max=255"`
	BusinessEmail  string `validate:"omitempty,email"`
	BusinessPhone  string `validate:"omitempty,max=32"`
	WhatsappNumber string `validate:"omitempty,max=32"`
	Description    string `validate:"omitempty,max=5000"`
	Address        string `validate:"omitempty,max=1000"`
	CoverImage     string `validate:"omitempty,max=2048"`
	ProfileImage   string `validate:"omitempty,max=2048"`
}

// UpdateBusinessProfileInput is the partial update for a storefront. Nil
// fields are left untouched; at least one field must be set.
type UpdateBusinessProfileInput struct {
	BusinessName   *string `validate:"omitempty,max=255"`
	BusinessEmail  *string `validate:"omitempty,email"`
	BusinessPhone  *string `validate:"omitempty,max=32"`
	WhatsappNumber *string `validate:"omitempty,max=32"`
	CoverImage     *string `validate:"omitempty,max=2048"`
	ProfileImage   *string `validate:"omitempty,max=2048"`
	Address        *string `validate:"omitempty,max=1000"`
	Description    *string `validate:"omitempty,max=5000"`
}

// Fields maps the set fields onto their column names.
func (input *UpdateBusinessProfileInput) Fields() map[string]any {
	fields := make(map[string]any)
	setField(fields, "business_name", input.BusinessName)
	setField(fields, "business_email", input.BusinessEmail)
	setField(fields, "business_phone", input.BusinessPhone)
	setField(fields, "whatsapp_number", input.WhatsappNumber)
	setField(fields, "cover_image", input.CoverImage)
	setField(fields, "profile_image", input.ProfileImage)
	setField(fields, "address", input.Address)
	setField(fields, "description", input.Description)

	return fields
}

// BusinessUsecase defines storefront-related business operations.
type BusinessUsecase interface {
	// Create onboards a storefront in pending_verification state. At most
	// one storefront exists per account.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateBusinessProfileInput) (*entity.BusinessProfile, error)

	// Update applies a whitelisted partial update. Only the owner or an
	// admin actor may mutate a storefront.
	Update(ctx context.Context, actorID uuid.UUID, profileID uuid.UUID, input *UpdateBusinessProfileInput) (*entity.BusinessProfile, error)
}
