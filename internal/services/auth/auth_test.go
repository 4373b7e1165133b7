package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MemberRepoMock struct{ mock.Mock }

func (m *MemberRepoMock) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func newMaker() *jwt.MakerImpl {
	return jwt.NewJWTMaker("0123456789abcdef0123456789abcdef", "gym", "gym-clients", time.Hour)
}

func TestService_Login(t *testing.T) {
	hash, err := password.GetHash("Secret_123")
	require.NoError(t, err)
	adminID, memberID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(a *AdminRepoMock, m *MemberRepoMock)
		wantRole   string
		wantID     uuid.UUID
		wantErr    error
	}{
		{
			name:     "admin",
			email:    "boss@gym.local",
			password: "Secret_123",
			setupMocks: func(a *AdminRepoMock, _ *MemberRepoMock) {
				a.On("GetAdminByEmail", mock.Anything, "boss@gym.local").Return(&models.Admin{ID: adminID, PasswordHash: hash}, nil).Once()
			},
			wantRole: models.RoleAdmin,
			wantID:   adminID,
		},
		{
			name:     "member",
			email:    "john@example.com",
			password: "Secret_123",
			setupMocks: func(a *AdminRepoMock, m *MemberRepoMock) {
				a.On("GetAdminByEmail", mock.Anything, "john@example.com").Return(nil, models.ErrNotFound).Once()
				m.On("GetMemberByEmail", mock.Anything, "john@example.com").Return(&models.Member{ID: memberID, PasswordHash: hash}, nil).Once()
			},
			wantRole: models.RoleMember,
			wantID:   memberID,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "Secret_123",
			setupMocks: func(a *AdminRepoMock, m *MemberRepoMock) {
				a.On("GetAdminByEmail", mock.Anything, mock.Anything).Return(nil, models.ErrNotFound).Once()
				m.On("GetMemberByEmail", mock.Anything, mock.Anything).Return(nil, models.ErrNotFound).Once()
			},
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "boss@gym.local",
			password: "Wrong_123",
			setupMocks: func(a *AdminRepoMock, _ *MemberRepoMock) {
				a.On("GetAdminByEmail", mock.Anything, mock.Anything).Return(&models.Admin{ID: adminID, PasswordHash: hash}, nil).Once()
			},
			wantErr: models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := new(AdminRepoMock), new(MemberRepoMock)
			tt.setupMocks(a, m)
			maker := newMaker()
			s := NewService(a, m, maker, sl.Discard())

			resp, err := s.Login(context.Background(), models.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, resp.Role)

			principal, err := s.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, principal.ID)
			assert.Equal(t, tt.email, principal.Email)
			assert.Equal(t, tt.wantRole, principal.Role)
		})
	}
}

func TestService_Login_StorageError(t *testing.T) {
	a, m := new(AdminRepoMock), new(MemberRepoMock)
	a.On("GetAdminByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := NewService(a, m, newMaker(), sl.Discard()).Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "p"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
	m.AssertNotCalled(t, "GetMemberByEmail", mock.Anything, mock.Anything)
}

func TestService_ValidateToken(t *testing.T) {
	maker := newMaker()
	s := NewService(new(AdminRepoMock), new(MemberRepoMock), maker, sl.Discard())

	badRole, err := maker.GenerateToken(uuid.New(), "x@y.z", "Superuser")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "garbage"},
		{name: "unknown role", token: badRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := s.ValidateToken(tt.token)
			assert.ErrorIs(t, err, models.ErrUnauthorized)
			assert.Nil(t, p)
		})
	}
}
