// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/mock"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/utils"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, validators.NewEntityValidator(), utils.NewPasswordHasher(bcrypt.MinCost), logger.Nop())
	return svc, repo
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleUser, u.Role)
			assert.Equal(t, models.StatusUnderReview, u.Status)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))
			u.ID = 10
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, "juan", "juan@anda.com.uy", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
}

func TestUserService_RegisterUser_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), "juan", "juan@", "pw")

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, models.InvalidEmailMessage, ve.Message)
}

func TestUserService_RegisterUser_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), "juan", "juan@anda.com.uy", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

// countingHasher records how many passwords were hashed.
type countingHasher struct {
	calls int
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.calls++
	return "hashed:" + password, nil
}

func TestUserService_RegisterUser_InvalidInputSkipsHashing(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
	}{
		{name: "malformed email", userName: "juan", email: "juan@anda"},
		{name: "user name too long", userName: strings.Repeat("j", 51), email: "juan@anda.com.uy"},
		{name: "empty user name", userName: "", email: "juan@anda.com.uy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hasher := &countingHasher{}
			svc := NewUserService(mock.NewMockUserRepository(ctrl), validators.NewEntityValidator(), hasher, logger.Nop())

			_, err := svc.RegisterUser(context.Background(), tt.userName, tt.email, "pw")

			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Zero(t, hasher.calls)
		})
	}
}

func TestUserService_RegisterUser_HashesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := &countingHasher{}
	svc := NewUserService(repo, validators.NewEntityValidator(), hasher, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) { return u, nil },
	)

	user, err := svc.RegisterUser(ctx, "juan", "juan@anda.com.uy", "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, hasher.calls)
	assert.Equal(t, "hashed:pw", user.PasswordHash)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, "juan", "juan@anda.com.uy", "pw")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_ApproveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("under review is activated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestUserSvc(t, ctrl)

		pending := models.User{ID: 1, Status: models.StatusUnderReview}
		gomock.InOrder(
			repo.EXPECT().FindUserByID(ctx, int64(1)).Return(pending, nil),
			repo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, u models.User) (models.User, error) {
					assert.Equal(t, models.StatusActive, u.Status)
					return u, nil
				},
			),
		)

		user, err := svc.ApproveUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, user.Status)
	})

	t.Run("already active is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestUserSvc(t, ctrl)

		repo.EXPECT().FindUserByID(ctx, int64(2)).Return(models.User{ID: 2, Status: models.StatusActive}, nil)

		user, err := svc.ApproveUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, user.Status)
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestUserSvc(t, ctrl)

		repo.EXPECT().FindUserByID(ctx, int64(3)).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.ApproveUser(ctx, 3)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserService_ChangeEmail(t *testing.T) {
	ctx := context.Background()
	existing := models.User{ID: 1, UserName: "juan", Email: "juan@anda.com.uy", PasswordHash: "h", Role: models.RoleUser, Status: models.StatusActive}

	t.Run("valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestUserSvc(t, ctrl)

		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(existing, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) { return u, nil },
		)

		user, err := svc.ChangeEmail(ctx, 1, "juan.perez@anda.com.uy")
		require.NoError(t, err)
		assert.Equal(t, "juan.perez@anda.com.uy", user.Email)
	})

	t.Run("invalid is rejected before update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestUserSvc(t, ctrl)

		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(existing, nil)

		_, err := svc.ChangeEmail(ctx, 1, "juan perez@anda")
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestUserSvc(t, ctrl)

		repo.EXPECT().FindUserByID(ctx, int64(1)).Return(existing, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.ChangeEmail(ctx, 1, "otro@anda.com.uy")
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestUserService_GetUserWithProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserWithProfile(ctx, int64(4)).Return(models.User{}, errors.New("boom"))

	_, err := svc.GetUserWithProfile(ctx, 4)
	assert.Error(t, err)
}
