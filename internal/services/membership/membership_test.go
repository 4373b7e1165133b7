package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

var fixedNow = time.Date(2025, 1, 31, 9, 30, 0, 0, time.UTC)

func newTestService(r *RepoMock, mr *MemberRepoMock, p *PlansMock) *Service {
	s := NewService(r, mr, p, sl.Discard())
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestService_Create(t *testing.T) {
	planID := uuid.New()

	tests := []struct {
		name     string
		duration pricing.Duration
		wantTo   time.Time
		wantFee  float64
	}{
		{name: "one month clamps to february end", duration: pricing.OneMonth, wantTo: time.Date(2025, 2, 28, 9, 30, 0, 0, time.UTC), wantFee: 30},
		{name: "six months", duration: pricing.SixMonths, wantTo: time.Date(2025, 7, 31, 9, 30, 0, 0, time.UTC), wantFee: 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := new(PlansMock)
			p.On("GetByID", mock.Anything, planID).Return(&models.PlanView{ID: planID, Price: 30}, nil).Once()

			m, err := newTestService(new(RepoMock), new(MemberRepoMock), p).Create(context.Background(), planID, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, fixedNow, m.From)
			assert.Equal(t, tt.wantTo, m.To)
			assert.Equal(t, tt.wantFee, m.Fee)
			assert.False(t, m.IsFeePaid)
			require.NotNil(t, m.PlanID)
			assert.Equal(t, planID, *m.PlanID)
		})
	}
}

func TestService_Create_Errors(t *testing.T) {
	planID := uuid.New()

	p := new(PlansMock)
	p.On("GetByID", mock.Anything, planID).Return(nil, models.ErrNotFound).Once()
	_, err := newTestService(new(RepoMock), new(MemberRepoMock), p).Create(context.Background(), planID, pricing.OneMonth)
	assert.ErrorIs(t, err, models.ErrNotFound)

	p = new(PlansMock)
	p.On("GetByID", mock.Anything, planID).Return(&models.PlanView{ID: planID, Price: 30}, nil).Once()
	_, err = newTestService(new(RepoMock), new(MemberRepoMock), p).Create(context.Background(), planID, pricing.Duration(2))
	assert.ErrorIs(t, err, pricing.ErrUnknownDuration)
}

func TestService_Renew(t *testing.T) {
	id := uuid.New()
	planID := uuid.New()
	req := models.MembershipUpdateRequest{Duration: pricing.OneYear, PlanID: planID}
	price, months := 50.0, 12
	wantFee := price * float64(months) * pricing.OneYear.Discount()

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, p *PlansMock)
		wantErr    error
	}{
		{
			name: "membership not found",
			setupMocks: func(r *RepoMock, _ *PlansMock) {
				r.On("GetMembershipByID", mock.Anything, id).Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "still active is checked before plan",
			setupMocks: func(r *RepoMock, _ *PlansMock) {
				r.On("GetMembershipByID", mock.Anything, id).
					Return(&models.Membership{ID: id, To: fixedNow.Add(time.Second)}, nil).Once()
			},
			wantErr: models.ErrMembershipStillActive,
		},
		{
			name: "plan not found",
			setupMocks: func(r *RepoMock, p *PlansMock) {
				r.On("GetMembershipByID", mock.Anything, id).Return(&models.Membership{ID: id, To: fixedNow}, nil).Once()
				p.On("GetByID", mock.Anything, planID).Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "concurrent renewal wins",
			setupMocks: func(r *RepoMock, p *PlansMock) {
				r.On("GetMembershipByID", mock.Anything, id).Return(&models.Membership{ID: id, To: fixedNow.AddDate(0, -1, 0)}, nil).Once()
				p.On("GetByID", mock.Anything, planID).Return(&models.PlanView{ID: planID, Price: 50}, nil).Once()
				r.On("RenewMembership", mock.Anything, mock.Anything, fixedNow).Return(models.ErrMembershipStillActive).Once()
			},
			wantErr: models.ErrMembershipStillActive,
		},
		{
			name: "expired exactly now is renewed",
			setupMocks: func(r *RepoMock, p *PlansMock) {
				r.On("GetMembershipByID", mock.Anything, id).
					Return(&models.Membership{ID: id, To: fixedNow, IsFeePaid: true}, nil).Once()
				p.On("GetByID", mock.Anything, planID).Return(&models.PlanView{ID: planID, Price: price}, nil).Once()
				r.On("RenewMembership", mock.Anything, mock.MatchedBy(func(m models.Membership) bool {
					return m.ID == id &&
						m.From.Equal(fixedNow) &&
						m.To.Equal(time.Date(2026, 1, 31, 9, 30, 0, 0, time.UTC)) &&
						m.Fee == wantFee &&
						!m.IsFeePaid &&
						*m.PlanID == planID
				}), fixedNow).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, p := new(RepoMock), new(PlansMock)
			tt.setupMocks(r, p)

			v, err := newTestService(r, new(MemberRepoMock), p).Renew(context.Background(), id, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, v)
			} else {
				require.NoError(t, err)
				assert.Equal(t, pricing.OneYear, v.Duration)
				require.NotNil(t, v.Plan)
				assert.Equal(t, planID, v.Plan.ID)
			}
			r.AssertExpectations(t)
			p.AssertExpectations(t)
		})
	}
}

// Продление никогда не проходит, пока срок абонемента не истёк.
func TestService_Renew_NeverWhileActive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		left := time.Duration(rapid.Int64Range(1, int64(400*24*time.Hour)).Draw(rt, "left"))
		id := uuid.New()

		r, p := new(RepoMock), new(PlansMock)
		r.On("GetMembershipByID", mock.Anything, id).Return(&models.Membership{ID: id, To: fixedNow.Add(left)}, nil)

		_, err := newTestService(r, new(MemberRepoMock), p).Renew(context.Background(), id,
			models.MembershipUpdateRequest{Duration: pricing.OneMonth, PlanID: uuid.New()})
		if !assert.ErrorIs(rt, err, models.ErrMembershipStillActive) {
			rt.FailNow()
		}
		r.AssertNotCalled(rt, "RenewMembership", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_RenewOwn(t *testing.T) {
	memberID, membershipID, planID := uuid.New(), uuid.New(), uuid.New()

	r, mr, p := new(RepoMock), new(MemberRepoMock), new(PlansMock)
	mr.On("GetMemberByID", mock.Anything, memberID).Return(&models.Member{ID: memberID, MembershipID: membershipID}, nil).Once()
	r.On("GetMembershipByID", mock.Anything, membershipID).Return(&models.Membership{ID: membershipID, To: fixedNow.Add(time.Hour)}, nil).Once()

	_, err := newTestService(r, mr, p).RenewOwn(context.Background(), memberID,
		models.MembershipUpdateRequest{Duration: pricing.OneMonth, PlanID: planID})
	assert.ErrorIs(t, err, models.ErrMembershipStillActive)

	mr.On("GetMemberByID", mock.Anything, mock.Anything).Return(nil, models.ErrNotFound).Once()
	_, err = newTestService(r, mr, p).RenewOwn(context.Background(), uuid.New(),
		models.MembershipUpdateRequest{Duration: pricing.OneMonth, PlanID: planID})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestService_GetAll_EmbedsPlansOnce(t *testing.T) {
	planID := uuid.New()
	list := []*models.Membership{
		{ID: uuid.New(), PlanID: &planID},
		{ID: uuid.New(), PlanID: &planID},
		{ID: uuid.New()},
	}

	r, p := new(RepoMock), new(PlansMock)
	r.On("GetMemberships", mock.Anything).Return(list, nil).Once()
	p.On("GetByID", mock.Anything, planID).Return(&models.PlanView{ID: planID, Name: "Gold"}, nil).Once()

	views, err := newTestService(r, new(MemberRepoMock), p).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Gold", views[0].Plan.Name)
	assert.Equal(t, "Gold", views[1].Plan.Name)
	assert.Nil(t, views[2].Plan)
	p.AssertExpectations(t)
}

func TestService_GetByID_DeletedPlan(t *testing.T) {
	id, planID := uuid.New(), uuid.New()
	r, p := new(RepoMock), new(PlansMock)
	r.On("GetMembershipByID", mock.Anything, id).Return(&models.Membership{ID: id, PlanID: &planID}, nil).Once()
	p.On("GetByID", mock.Anything, planID).Return(nil, models.ErrNotFound).Once()

	v, err := newTestService(r, new(MemberRepoMock), p).GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, v.Plan)
}

func TestService_MarkFeePaid(t *testing.T) {
	id := uuid.New()
	r := new(RepoMock)
	r.On("SetFeePaid", mock.Anything, id, true).Return(nil).Once()
	r.On("SetFeePaid", mock.Anything, mock.Anything, true).Return(models.ErrNotFound).Once()

	s := newTestService(r, new(MemberRepoMock), new(PlansMock))
	require.NoError(t, s.MarkFeePaid(context.Background(), id))
	assert.ErrorIs(t, s.MarkFeePaid(context.Background(), uuid.New()), models.ErrNotFound)
}

func TestService_ExpiringBetween(t *testing.T) {
	r := new(RepoMock)
	want := []*models.ExpiringMembership{{Email: "a@b.c"}}
	to := fixedNow.Add(24 * time.Hour)
	r.On("ExpiringBetween", mock.Anything, fixedNow, to).Return(want, nil).Once()
	r.On("ExpiringBetween", mock.Anything, to, to.Add(time.Hour)).Return(nil, errors.New("db error")).Once()

	s := newTestService(r, new(MemberRepoMock), new(PlansMock))
	got, err := s.ExpiringBetween(context.Background(), fixedNow, to)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.ExpiringBetween(context.Background(), to, to.Add(time.Hour))
	assert.ErrorContains(t, err, "membership.ExpiringBetween")
}
