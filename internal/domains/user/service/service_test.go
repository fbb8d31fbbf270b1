package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared/access"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const (
	userID        = "3c9e2a71-6b4d-4f0e-9a1c-5d8b7e2f4a10"
	otherUserID   = "8a1d4c2e-0f6b-4b3a-9e7d-1c5f2a8b6d34"
	adminUserID   = "e4b7c1d9-2a8f-4c6e-b0d3-9f5a7e1c3b28"
	missingUserID = "00000000-0000-4000-8000-000000000000"
)

func stringPtr(s string) *string {
	return &s
}

func adminContext(id string) context.Context {
	return access.WithActor(context.Background(), access.Actor{ID: id, Email: "admin@f5hotel.com", Role: constant.RoleAdmin})
}

func setup(t *testing.T) (*mocks.MockUser, *cacheMocks.MockRedisCache, service.User) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, otelMocks.NewOtel())

	return mockRepo, mockCache, svc
}

func TestUserService_Create(t *testing.T) {
	mockRepo, _, svc := setup(t)

	req := dto.CreateUserRequest{
		Username:      "juancruz",
		Email:         "juan@example.com",
		Password:      "supersecret",
		FirstName:     "Juan",
		LastName:      "Dela Cruz",
		DateOfBirth:   "1995-04-12",
		ContactNumber: "09170000000",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "created with default role",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, constant.RoleUser, user.Role)
						assert.NotEqual(t, "supersecret", user.Password)
						assert.NotEmpty(t, user.ID)
						return nil
					})
			},
		},
		{
			name: "email taken",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "username taken",
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
					mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
				)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "juancruz", res.Username)
			assert.Equal(t, "1995-04-12", res.DateOfBirth)
			assert.False(t, res.IsAdmin)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	t.Run("cache miss then found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), "user:get:"+userID, gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: userID, Username: "ana", Role: constant.RoleAdmin}, nil)

		res, err := svc.Get(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "ana", res.Username)
		assert.True(t, res.IsAdmin)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), missingUserID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.User, error) {
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)
			return []model.User{{ID: otherUserID}, {ID: userID}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{SortBy: "password"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, otherUserID, res.Users[0].ID)
}

func TestUserService_Update(t *testing.T) {
	mockRepo, _, svc := setup(t)

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:     "empty request",
			req:      dto.UpdateUserRequest{},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{FirstName: stringPtr("Ana")},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "username taken by another user",
			req:  dto.UpdateUserRequest{Username: stringPtr("taken")},
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
					mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
				)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "updated",
			req:  dto.UpdateUserRequest{FirstName: stringPtr("Ana"), Role: stringPtr(constant.RoleAdmin)},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "Ana", fields[model.FieldFirstName])
						assert.Equal(t, constant.RoleAdmin, fields[model.FieldRole])
						assert.NotContains(t, fields, model.FieldPassword)
						assert.Equal(t, adminUserID, fields[constant.FieldModifiedBy])
						return nil
					})
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: userID, FirstName: "Ana", Role: constant.RoleAdmin}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			res, err := svc.Update(adminContext(adminUserID), tt.req, userID)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ana", res.FirstName)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	mockRepo, _, svc := setup(t)

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantCode  int
	}{
		{
			name:     "cannot delete self",
			ctx:      adminContext(adminUserID),
			id:       adminUserID,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "anonymous",
			ctx:      context.Background(),
			id:       userID,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "not found",
			ctx:  adminContext(adminUserID),
			id:   userID,
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "deleted",
			ctx:  adminContext(adminUserID),
			id:   userID,
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			err := svc.Delete(tt.ctx, tt.id)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_MalformedID(t *testing.T) {
	// any repository or cache read fails the test through the mock controller
	_, _, svc := setup(t)
	ctx := adminContext(adminUserID)

	for _, id := range []string{"not-a-uuid", "42", constant.Empty} {
		_, err := svc.Get(ctx, id)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err), "get %q", id)

		_, err = svc.Update(ctx, dto.UpdateUserRequest{FirstName: stringPtr("Ana")}, id)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err), "update %q", id)

		err = svc.Delete(ctx, id)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err), "delete %q", id)
	}
}
