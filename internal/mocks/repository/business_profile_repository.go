package repository

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBusinessProfileRepository is a mock of repository.BusinessProfileRepository.
type MockBusinessProfileRepository struct {
	mock.Mock
}

// NewMockBusinessProfileRepository creates a mock bound to the test's lifecycle.
func NewMockBusinessProfileRepository(t *testing.T) *MockBusinessProfileRepository {
	m := &MockBusinessProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBusinessProfileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockBusinessProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) List(ctx context.Context, filter repository.BusinessListFilter, page repository.Pagination) ([]*entity.BusinessProfile, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.BusinessProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockBusinessProfileRepository) CountByStatus(ctx context.Context) ([]repository.StatusCount[entity.BusinessStatus], error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]repository.StatusCount[entity.BusinessStatus]), args.Error(1)
}
