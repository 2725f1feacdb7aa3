package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(ctx context.Context, discordID string) (bool, error) {
	args := m.Called(ctx, discordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) AddAdmin(ctx context.Context, discordID, grantedBy string) error {
	return m.Called(ctx, discordID, grantedBy).Error(0)
}

func (m *MockAdminRepository) RemoveAdmin(ctx context.Context, discordID string) error {
	return m.Called(ctx, discordID).Error(0)
}

func (m *MockAdminRepository) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Admin), args.Error(1)
}

const (
	adminID = "111111111111111111"
	otherID = "222222222222222222"
)

func TestSeed_SkipsInvalidIDs(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("AddAdmin", mock.Anything, adminID, SeedGrantor).Return(nil).Once()
	repo.On("AddAdmin", mock.Anything, otherID, SeedGrantor).Return(nil).Once()

	n, err := NewService(repo).Seed(context.Background(), []string{adminID, "not-an-id", otherID, "123"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	repo.AssertExpectations(t)
}

func TestSeed_StopsOnRepositoryError(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("AddAdmin", mock.Anything, adminID, SeedGrantor).Return(errors.New("locked"))

	n, err := NewService(repo).Seed(context.Background(), []string{adminID, otherID})
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.Equal(t, 0, n)
}

func TestRevoke(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		by        string
		setupMock func(*MockAdminRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			target: otherID,
			by:     adminID,
			setupMock: func(m *MockAdminRepository) {
				m.On("RemoveAdmin", mock.Anything, otherID).Return(nil)
			},
		},
		{
			name:      "Self revoke rejected",
			target:    adminID,
			by:        adminID,
			setupMock: func(m *MockAdminRepository) {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:      "Invalid id",
			target:    "abc",
			by:        adminID,
			setupMock: func(m *MockAdminRepository) {},
			wantErr:   domain.ErrInvalidDiscordID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminRepository)
			tt.setupMock(repo)
			err := NewService(repo).Revoke(context.Background(), tt.target, tt.by)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestIsAdmin_EmptyIDShortCircuits(t *testing.T) {
	repo := new(MockAdminRepository)
	ok, err := NewService(repo).IsAdmin(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}
