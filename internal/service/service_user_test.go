package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/cache"
	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/mock"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/internal/validators"
	"github.com/MKhiriev/go-copper-beam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository, *cache.LRU[string, models.User]) {
	t.Helper()

	repo := mock.NewMockUserRepository(gomock.NewController(t))
	userCache := cache.NewLRU[string, models.User](UserCacheSize, UserCacheTTL)
	validator := validators.NewRequestValidator(crypto.NewKeyService())

	return NewUserService(repo, userCache, validator, config.App{ServerVersion: 1}, logger.Nop()), repo, userCache
}

func TestGetUser_ServesFromCache(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	user := models.User{ID: "u-1", Address: "addr"}

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(user, nil).Times(1)

	first, err := svc.GetUser(context.Background(), "u-1", false)
	require.NoError(t, err)
	second, err := svc.GetUser(context.Background(), "u-1", false)
	require.NoError(t, err)

	assert.Equal(t, user, first)
	assert.Equal(t, user, second)
}

func TestGetUser_ForceBypassesCache(t *testing.T) {
	svc, repo, userCache := newTestUserService(t)
	userCache.Set(context.Background(), "u-1", models.User{ID: "u-1", Balance: 1})

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1", Balance: 2}, nil)

	got, err := svc.GetUser(context.Background(), "u-1", true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Balance)

	cached, ok := userCache.Get(context.Background(), "u-1")
	require.True(t, ok)
	assert.Equal(t, 2.0, cached.Balance)
}

func TestGetUser_NotFoundIsNotCached(t *testing.T) {
	svc, repo, userCache := newTestUserService(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), "u-1", false)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	assert.Zero(t, userCache.Len())
}

func TestGetUserByAddress_AlwaysReadsStorage(t *testing.T) {
	svc, repo, userCache := newTestUserService(t)
	user := models.User{ID: "u-1", Address: "addr"}

	repo.EXPECT().FindUserByAddress(gomock.Any(), "addr").Return(user, nil).Times(2)

	for range 2 {
		got, err := svc.GetUserByAddress(context.Background(), "addr")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
	}

	cached, ok := userCache.Get(context.Background(), "u-1")
	require.True(t, ok)
	assert.Equal(t, "addr", cached.Address)
}

func deleteRequest(t *testing.T, key crypto.KeyInfo, userID string) models.RestRequest {
	t.Helper()
	return signDetails(t, models.DeleteUserDetails{
		Signable: models.Signable{Address: key.Address, Timestamp: time.Now().UnixMilli()},
		UserID:   userID,
	}, key.PrivateKeyPEM)
}

func TestDeleteUser(t *testing.T) {
	key := newKey(t)
	admin := models.User{ID: "admin-1", Address: key.Address, PublicKey: key.PublicKeyPEM, Admin: true}
	boom := errors.New("deadlock detected")

	tests := []struct {
		name    string
		caller  models.User
		target  string
		expect  func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:   "admin deletes user",
			caller: admin,
			target: "u-9",
			expect: func(repo *mock.MockUserRepository) {
				repo.EXPECT().DeleteUser(gomock.Any(), "u-9").Return(nil)
			},
		},
		{
			name:    "caller is not admin",
			caller:  models.User{ID: "u-2", Address: key.Address, PublicKey: key.PublicKeyPEM},
			target:  "u-9",
			wantErr: ErrNotAdmin,
		},
		{
			name:    "no target",
			caller:  admin,
			wantErr: ErrInvalidDeleteDetails,
		},
		{
			name:   "unknown target",
			caller: admin,
			target: "u-9",
			expect: func(repo *mock.MockUserRepository) {
				repo.EXPECT().DeleteUser(gomock.Any(), "u-9").Return(store.ErrNoUserWasFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:   "storage failure",
			caller: admin,
			target: "u-9",
			expect: func(repo *mock.MockUserRepository) {
				repo.EXPECT().DeleteUser(gomock.Any(), "u-9").Return(boom)
			},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, userCache := newTestUserService(t)
			userCache.Set(context.Background(), "u-9", models.User{ID: "u-9"})

			repo.EXPECT().FindUserByAddress(gomock.Any(), key.Address).Return(tt.caller, nil)
			repo.EXPECT().UpdateLastUserContact(gomock.Any(), tt.caller.ID, gomock.Any()).Return(nil)
			if tt.expect != nil {
				tt.expect(repo)
			}

			resp, err := svc.DeleteUser(context.Background(), deleteRequest(t, key, tt.target))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, cached := userCache.Get(context.Background(), "u-9")
				assert.True(t, cached)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u-9", resp.ID)
			assert.Equal(t, 1, resp.ServerVersion)
			_, cached := userCache.Get(context.Background(), "u-9")
			assert.False(t, cached)
		})
	}
}

func TestDeleteUser_UnknownCaller(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	key := newKey(t)

	repo.EXPECT().FindUserByAddress(gomock.Any(), key.Address).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.DeleteUser(context.Background(), deleteRequest(t, key, "u-9"))
	assert.ErrorIs(t, err, validators.ErrUnknownUser)
}

func TestDeleteUser_SignatureFromAnotherKey(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	key := newKey(t)
	other := newKey(t)
	caller := models.User{ID: "admin-1", Address: key.Address, PublicKey: other.PublicKeyPEM, Admin: true}

	repo.EXPECT().FindUserByAddress(gomock.Any(), key.Address).Return(caller, nil)

	_, err := svc.DeleteUser(context.Background(), deleteRequest(t, key, "u-9"))
	assert.ErrorIs(t, err, validators.ErrInvalidSignature)
}

func TestDeleteUser_ResolvesTargetThroughCache(t *testing.T) {
	key := newKey(t)
	admin := models.User{ID: "admin-1", Address: key.Address, PublicKey: key.PublicKeyPEM, Admin: true}

	tests := []struct {
		name    string
		expect  func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name: "uncached target is read from storage",
			expect: func(repo *mock.MockUserRepository) {
				gomock.InOrder(
					repo.EXPECT().FindUserByID(gomock.Any(), "u-9").Return(models.User{ID: "u-9"}, nil),
					repo.EXPECT().DeleteUser(gomock.Any(), "u-9").Return(nil),
				)
			},
		},
		{
			name: "unknown target is rejected before deleting",
			expect: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), "u-9").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, userCache := newTestUserService(t)

			repo.EXPECT().FindUserByAddress(gomock.Any(), key.Address).Return(admin, nil)
			repo.EXPECT().UpdateLastUserContact(gomock.Any(), admin.ID, gomock.Any()).Return(nil)
			tt.expect(repo)

			_, err := svc.DeleteUser(context.Background(), deleteRequest(t, key, "u-9"))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, cached := userCache.Get(context.Background(), "u-9")
			assert.False(t, cached)
		})
	}
}
