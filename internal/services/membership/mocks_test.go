package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetMemberships(ctx context.Context) ([]*models.Membership, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Membership), args.Error(1)
}

func (m *RepoMock) GetMembershipByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}

func (m *RepoMock) RenewMembership(ctx context.Context, ms models.Membership, now time.Time) error {
	return m.Called(ctx, ms, now).Error(0)
}

func (m *RepoMock) SetFeePaid(ctx context.Context, id uuid.UUID, paid bool) error {
	return m.Called(ctx, id, paid).Error(0)
}

func (m *RepoMock) ExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ExpiringMembership), args.Error(1)
}

type MemberRepoMock struct{ mock.Mock }

func (m *MemberRepoMock) GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

type PlansMock struct{ mock.Mock }

func (m *PlansMock) GetByID(ctx context.Context, id uuid.UUID) (*models.PlanView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlanView), args.Error(1)
}
