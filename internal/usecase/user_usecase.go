package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput is the partial update for the caller's own account. Nil
// fields are left untouched; at least one field must be set.
type UpdateUserInput struct {
	FirstName      *string `validate:"omitempty,max=100"`
	LastName       *string `validate:"omitempty,max=100"`
	ProfilePicture *string `validate:"omitempty,max=2048"`
	PhoneNumber    *string `validate:"omitempty,max=32"`
	WhatsappNumber *string `validate:"omitempty,max=32"`
	ShopLink       *string `validate:"omitempty,max=2048"`
	ProfileLink    *string `validate:"omitempty,max=2048"`
}

// Fields maps the set fields onto their column names.
func (input *UpdateUserInput) Fields() map[string]any {
	fields := make(map[string]any)
	setField(fields, "first_name", input.FirstName)
	setField(fields, "last_name", input.LastName)
	setField(fields, "profile_picture", input.ProfilePicture)
	setField(fields, "phone_number", input.PhoneNumber)
	setField(fields, "whatsapp_number", input.WhatsappNumber)
	setField(fields, "shop_link", input.ShopLink)
	setField(fields, "profile_link", input.ProfileLink)

	return fields
}

func setField(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

// UserUsecase defines account-related business operations.
type UserUsecase interface {
	// GetMe returns the caller's account joined with their business profile.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetByID returns another account for public display. Contact redaction
	// is a presentation concern handled in the delivery layer.
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateMe applies a whitelisted partial update to the caller's account.
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteMe soft-deletes the caller's account and revokes its sessions.
	DeleteMe(ctx context.Context, userID uuid.UUID) error
}
