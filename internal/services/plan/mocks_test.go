package plan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreatePlan(ctx context.Context, p models.MembershipPlan) error {
	return m.Called(ctx, p).Error(0)
}

func (m *RepoMock) GetPlans(ctx context.Context) ([]*models.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MembershipPlan), args.Error(1)
}

func (m *RepoMock) GetPlanByID(ctx context.Context, id uuid.UUID) (*models.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MembershipPlan), args.Error(1)
}

func (m *RepoMock) UpdatePlan(ctx context.Context, p models.MembershipPlan) error {
	return m.Called(ctx, p).Error(0)
}

func (m *RepoMock) SetPlanForDeletion(ctx context.Context, id uuid.UUID, forDeletion bool) error {
	return m.Called(ctx, id, forDeletion).Error(0)
}

func (m *RepoMock) HasActiveMemberships(ctx context.Context, planID uuid.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, planID, now)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) DeletePlan(ctx context.Context, id uuid.UUID, now time.Time) error {
	return m.Called(ctx, id, now).Error(0)
}

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, keys ...string) error {
	args := make([]any, 0, len(keys)+1)
	args = append(args, ctx)
	for _, k := range keys {
		args = append(args, k)
	}
	return m.Called(args...).Error(0)
}
