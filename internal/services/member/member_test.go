package member

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) RegisterMember(ctx context.Context, member models.Member, membership models.Membership) error {
	return m.Called(ctx, member, membership).Error(0)
}

func (m *RepoMock) GetMembers(ctx context.Context) ([]*models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

func (m *RepoMock) getOne(args mock.Arguments) (*models.Member, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *RepoMock) GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return m.getOne(m.Called(ctx, id))
}

func (m *RepoMock) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	return m.getOne(m.Called(ctx, email))
}

func (m *RepoMock) GetMemberByMembershipID(ctx context.Context, membershipID uuid.UUID) (*models.Member, error) {
	return m.getOne(m.Called(ctx, membershipID))
}

func (m *RepoMock) UpdateMember(ctx context.Context, member models.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *RepoMock) UpdateMemberPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *RepoMock) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MembershipsMock struct{ mock.Mock }

func (m *MembershipsMock) Create(ctx context.Context, planID uuid.UUID, d pricing.Duration) (*models.Membership, error) {
	args := m.Called(ctx, planID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}

func (m *MembershipsMock) GetByID(ctx context.Context, id uuid.UUID) (*models.MembershipView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MembershipView), args.Error(1)
}

func registerRequest(planID uuid.UUID) models.MemberCreateRequest {
	return models.MemberCreateRequest{
		Name:     "John",
		Surname:  "Doe",
		Email:    "john@example.com",
		Phone:    "+10000000000",
		Password: "Secret_123",
		Membership: models.MembershipCreateRequest{
			Duration: pricing.ThreeMonths,
			PlanID:   planID,
		},
	}
}

func TestService_Register(t *testing.T) {
	planID := uuid.New()
	now := time.Now()
	ms := &models.Membership{
		ID:       uuid.New(),
		From:     now,
		To:       pricing.AddMonths(now, 3),
		Duration: pricing.ThreeMonths,
		Fee:      81,
		PlanID:   &planID,
	}

	r, mss := new(RepoMock), new(MembershipsMock)
	mss.On("Create", mock.Anything, planID, pricing.ThreeMonths).Return(ms, nil).Once()
	r.On("RegisterMember", mock.Anything, mock.MatchedBy(func(m models.Member) bool {
		return m.Email == "john@example.com" &&
			m.MembershipID == ms.ID &&
			password.CompareHash(m.PasswordHash, "Secret_123") == nil
	}), *ms).Return(nil).Once()

	v, err := NewService(r, mss, sl.Discard()).Register(context.Background(), registerRequest(planID))
	require.NoError(t, err)
	assert.Equal(t, ms.ID, v.MembershipID)
	require.NotNil(t, v.Membership)
	assert.Equal(t, 81.0, v.Membership.Fee)
	r.AssertExpectations(t)
}

func TestService_Register_Errors(t *testing.T) {
	planID := uuid.New()

	t.Run("unknown plan", func(t *testing.T) {
		r, mss := new(RepoMock), new(MembershipsMock)
		mss.On("Create", mock.Anything, planID, pricing.ThreeMonths).Return(nil, models.ErrNotFound).Once()

		_, err := NewService(r, mss, sl.Discard()).Register(context.Background(), registerRequest(planID))
		assert.ErrorIs(t, err, models.ErrNotFound)
		r.AssertNotCalled(t, "RegisterMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("email in use", func(t *testing.T) {
		r, mss := new(RepoMock), new(MembershipsMock)
		mss.On("Create", mock.Anything, planID, pricing.ThreeMonths).Return(&models.Membership{ID: uuid.New()}, nil).Once()
		r.On("RegisterMember", mock.Anything, mock.Anything, mock.Anything).Return(models.ErrEmailAlreadyInUse).Once()

		_, err := NewService(r, mss, sl.Discard()).Register(context.Background(), registerRequest(planID))
		assert.ErrorIs(t, err, models.ErrEmailAlreadyInUse)
	})
}

func TestService_GetByID_EmbedsMembership(t *testing.T) {
	id, membershipID := uuid.New(), uuid.New()
	r, mss := new(RepoMock), new(MembershipsMock)
	r.On("GetMemberByID", mock.Anything, id).Return(&models.Member{ID: id, MembershipID: membershipID}, nil).Once()
	mss.On("GetByID", mock.Anything, membershipID).Return(&models.MembershipView{ID: membershipID, Fee: 30}, nil).Once()

	v, err := NewService(r, mss, sl.Discard()).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, v.Membership)
	assert.Equal(t, membershipID, v.Membership.ID)
}

func TestService_Lookups_NotFound(t *testing.T) {
	r, mss := new(RepoMock), new(MembershipsMock)
	r.On("GetMemberByEmail", mock.Anything, "ghost@example.com").Return(nil, models.ErrNotFound).Once()
	r.On("GetMemberByMembershipID", mock.Anything, mock.Anything).Return(nil, models.ErrNotFound).Once()

	s := NewService(r, mss, sl.Discard())
	_, err := s.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetByMembershipID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestService_Update_KeepsPhoneWhenEmpty(t *testing.T) {
	id := uuid.New()
	r := new(RepoMock)
	r.On("GetMemberByID", mock.Anything, id).Return(&models.Member{ID: id, Name: "John", Phone: "+1000000"}, nil).Once()
	r.On("UpdateMember", mock.Anything, mock.MatchedBy(func(m models.Member) bool {
		return m.Name == "Johnny" && m.Phone == "+1000000" && m.Email == "johnny@example.com"
	})).Return(nil).Once()

	v, err := NewService(r, new(MembershipsMock), sl.Discard()).Update(context.Background(), id,
		models.MemberUpdateRequest{Name: "Johnny", Surname: "Doe", Email: "johnny@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", v.Name)
	r.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()
	r := new(RepoMock)
	r.On("DeleteMember", mock.Anything, id).Return(nil).Once()
	r.On("DeleteMember", mock.Anything, mock.Anything).Return(models.ErrNotFound).Once()

	s := NewService(r, new(MembershipsMock), sl.Discard())
	require.NoError(t, s.Delete(context.Background(), id))
	assert.ErrorIs(t, s.Delete(context.Background(), uuid.New()), models.ErrNotFound)
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	id := uuid.New()
	hash, err := password.GetHash("Current_1")
	require.NoError(t, err)

	r := new(RepoMock)
	r.On("GetMemberByID", mock.Anything, id).Return(&models.Member{ID: id, PasswordHash: hash}, nil).Once()

	err = NewService(r, new(MembershipsMock), sl.Discard()).ChangePassword(context.Background(), id,
		models.PasswordUpdateRequest{CurrentPassword: "nope", NewPassword: "Brand_new1", ConfirmNewPassword: "Brand_new1"})
	assert.ErrorIs(t, err, models.ErrWrongPassword)
	r.AssertNotCalled(t, "UpdateMemberPassword", mock.Anything, mock.Anything, mock.Anything)
}
