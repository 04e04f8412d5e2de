package repository

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAdminLogRepository is a mock of repository.AdminLogRepository.
type MockAdminLogRepository struct {
	mock.Mock
}

// NewMockAdminLogRepository creates a mock bound to the test's lifecycle.
func NewMockAdminLogRepository(t *testing.T) *MockAdminLogRepository {
	m := &MockAdminLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminLogRepository) Create(ctx context.Context, log *entity.AdminLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}

func (m *MockAdminLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.AdminLog), args.Error(1)
}

func (m *MockAdminLogRepository) List(ctx context.Context, filter repository.AdminLogFilter, page repository.Pagination) ([]*entity.AdminLog, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.AdminLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminLogRepository) ListRecent(ctx context.Context, since time.Time, action string, limit int) ([]*entity.AdminLog, error) {
	args := m.Called(ctx, since, action, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.AdminLog), args.Error(1)
}

func (m *MockAdminLogRepository) Summarize(ctx context.Context, start, end *time.Time) (*entity.ActivitySummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ActivitySummary), args.Error(1)
}
