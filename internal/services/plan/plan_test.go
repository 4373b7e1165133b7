package plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/cache"
	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(r *RepoMock, a *AdminRepoMock, c Cache) *Service {
	s := NewService(r, a, c, sl.Discard(), time.Hour)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		wantErr    error
	}{
		{
			name: "not found",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetPlanByID", mock.Anything, id).Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "not marked for deletion",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetPlanByID", mock.Anything, id).Return(&models.MembershipPlan{ID: id}, nil).Once()
			},
			wantErr: models.ErrPlanNotMarkedForDeletion,
		},
		{
			name: "has active memberships",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetPlanByID", mock.Anything, id).Return(&models.MembershipPlan{ID: id, ForDeletion: true}, nil).Once()
				r.On("HasActiveMemberships", mock.Anything, id, fixedNow).Return(true, nil).Once()
			},
			wantErr: models.ErrPlanHasActiveMemberships,
		},
		{
			name: "guarded delete loses a race",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetPlanByID", mock.Anything, id).Return(&models.MembershipPlan{ID: id, ForDeletion: true}, nil).Once()
				r.On("HasActiveMemberships", mock.Anything, id, fixedNow).Return(false, nil).Once()
				r.On("DeletePlan", mock.Anything, id, fixedNow).Return(models.ErrPlanHasActiveMemberships).Once()
			},
			wantErr: models.ErrPlanHasActiveMemberships,
		},
		{
			name: "deleted",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetPlanByID", mock.Anything, id).Return(&models.MembershipPlan{ID: id, ForDeletion: true}, nil).Once()
				r.On("HasActiveMemberships", mock.Anything, id, fixedNow).Return(false, nil).Once()
				r.On("DeletePlan", mock.Anything, id, fixedNow).Return(nil).Once()
				c.On("Invalidate", mock.Anything, planKey(id), allPlansKey).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
			tt.setupMocks(r, c)

			err := newTestService(r, a, c).Delete(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			r.AssertExpectations(t)
			c.AssertExpectations(t)
		})
	}
}

func TestService_SetAndResetForDeletion(t *testing.T) {
	id := uuid.New()
	r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
	r.On("SetPlanForDeletion", mock.Anything, id, true).Return(nil).Twice()
	r.On("SetPlanForDeletion", mock.Anything, id, false).Return(nil).Once()
	c.On("Invalidate", mock.Anything, planKey(id), allPlansKey).Return(nil)

	s := newTestService(r, a, c)
	require.NoError(t, s.SetForDeletion(context.Background(), id))
	require.NoError(t, s.SetForDeletion(context.Background(), id))
	require.NoError(t, s.ResetForDeletion(context.Background(), id))

	r.AssertExpectations(t)
}

func TestService_SetForDeletion_NotFound(t *testing.T) {
	id := uuid.New()
	r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
	r.On("SetPlanForDeletion", mock.Anything, id, true).Return(models.ErrNotFound).Once()

	err := newTestService(r, a, c).SetForDeletion(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
	c.AssertNotCalled(t, "Invalidate")
}

func TestService_Create_RecordsAdmin(t *testing.T) {
	adminID := uuid.New()
	r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
	r.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p models.MembershipPlan) bool {
		return p.Name == "Gold" && p.Price == 30 && p.AdminID != nil && *p.AdminID == adminID && !p.ForDeletion
	})).Return(nil).Once()
	c.On("Invalidate", mock.Anything, allPlansKey).Return(nil).Once()
	a.On("GetAdminByID", mock.Anything, adminID).Return(&models.Admin{ID: adminID, Name: "Anna"}, nil).Once()

	v, err := newTestService(r, a, c).Create(context.Background(),
		models.PlanCreateRequest{Name: "Gold", Description: "All zones", Price: 30}, adminID)
	require.NoError(t, err)
	assert.Equal(t, "Gold", v.Name)
	require.NotNil(t, v.Admin)
	assert.Equal(t, "Anna", v.Admin.Name)
	r.AssertExpectations(t)
}

func TestService_Create_DuplicateName(t *testing.T) {
	r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
	r.On("CreatePlan", mock.Anything, mock.Anything).Return(models.ErrAlreadyExists).Once()

	_, err := newTestService(r, a, c).Create(context.Background(),
		models.PlanCreateRequest{Name: "Gold", Description: "x", Price: 30}, uuid.New())
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestService_Update_KeepsUnsetFields(t *testing.T) {
	id, adminID := uuid.New(), uuid.New()
	stored := &models.MembershipPlan{ID: id, Name: "Gold", Description: "All zones", Price: 30}

	r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
	r.On("GetPlanByID", mock.Anything, id).Return(stored, nil).Once()
	r.On("UpdatePlan", mock.Anything, mock.MatchedBy(func(p models.MembershipPlan) bool {
		return p.Name == "Platinum" && p.Description == "All zones" && p.Price == 30 && *p.AdminID == adminID
	})).Return(nil).Once()
	c.On("Invalidate", mock.Anything, planKey(id), allPlansKey).Return(nil).Once()
	a.On("GetAdminByID", mock.Anything, adminID).Return(nil, models.ErrNotFound).Once()

	v, err := newTestService(r, a, c).Update(context.Background(), id, models.PlanUpdateRequest{Name: "Platinum"}, adminID)
	require.NoError(t, err)
	assert.Equal(t, "Platinum", v.Name)
	assert.Nil(t, v.Admin)
	assert.Nil(t, v.AdminID)
	r.AssertExpectations(t)
}

func TestService_GetAll_UsesRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisCache, err := cache.InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)

	adminID := uuid.New()
	plans := []*models.MembershipPlan{
		{ID: uuid.New(), Name: "Gold", Price: 30, AdminID: &adminID},
		{ID: uuid.New(), Name: "Silver", Price: 20, AdminID: &adminID},
	}

	r, a := new(RepoMock), new(AdminRepoMock)
	r.On("GetPlans", mock.Anything).Return(plans, nil).Once()
	a.On("GetAdminByID", mock.Anything, adminID).Return(&models.Admin{ID: adminID, Name: "Anna"}, nil).Twice()

	s := newTestService(r, a, redisCache)

	first, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, mr.Exists(allPlansKey))
	ttl := mr.TTL(allPlansKey)
	assert.Equal(t, time.Hour, ttl)

	// администратор запрашивается один раз на вызов GetAll
	r.AssertExpectations(t)
	a.AssertExpectations(t)
}

func TestService_GetByID_CacheFailureFallsBack(t *testing.T) {
	id := uuid.New()
	stored := &models.MembershipPlan{ID: id, Name: "Gold", Price: 30}

	r, a, c := new(RepoMock), new(AdminRepoMock), new(CacheMock)
	c.On("Get", mock.Anything, planKey(id), mock.Anything).Return(false, errors.New("redis down")).Once()
	c.On("Set", mock.Anything, planKey(id), stored, time.Hour).Return(errors.New("redis down")).Once()
	r.On("GetPlanByID", mock.Anything, id).Return(stored, nil).Once()

	v, err := newTestService(r, a, c).GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, v.ID)
	assert.Nil(t, v.Admin)
	c.AssertExpectations(t)
}
