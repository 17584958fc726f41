package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/infras/otel/mocks"
	userMocks "venue/internal/domains/user/mocks"
	"venue/internal/domains/user/model"
	"venue/internal/domains/user/model/dto"
	"venue/internal/domains/user/service"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestUserService_Create(t *testing.T) {
	kitchen := constant.RoleKitchen

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
		wantRole  string
	}{
		{
			name: "creates user with role",
			req:  dto.CreateUserRequest{Email: "Chef@Example.com", Password: "kitchen-pass", Role: &kitchen},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), dto.ByEmail("chef@example.com")).Return(false, nil)
				repo.EXPECT().CreateWithRole(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User, role *model.UserRole) error {
						assert.Equal(t, "chef@example.com", user.Email)
						assert.NotEqual(t, "kitchen-pass", user.Password)
						require.NotNil(t, role)
						assert.Equal(t, user.ID, role.UserID)

						return nil
					})
			},
			wantRole: constant.RoleKitchen,
		},
		{
			name: "creates user without role",
			req:  dto.CreateUserRequest{Email: "viewer@example.com", Password: "viewer-pass"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateWithRole(gomock.Any(), gomock.Any(), (*model.UserRole)(nil)).Return(nil)
			},
			wantRole: constant.RoleNone,
		},
		{
			name: "duplicate email",
			req:  dto.CreateUserRequest{Email: "chef@example.com", Password: "kitchen-pass"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "storage failure",
			req:  dto.CreateUserRequest{Email: "chef@example.com", Password: "kitchen-pass"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().CreateWithRole(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tt.setupMock(repo)

			res, err := service.New(repo, mocks.NewOtel()).Create(adminContext(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, res.Role)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	existing := model.User{ID: "user-1", Email: "chef@example.com"}
	none := constant.RoleNone
	admin := constant.RoleAdmin
	newEmail := "Head.Chef@example.com"

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateUserRequest{},
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{Role: &admin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "revoke role",
			req:  dto.UpdateUserRequest{Role: &none},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
				repo.EXPECT().UpdateWithRole(gomock.Any(), gomock.Any(), "user-1", (*model.UserRole)(nil)).Return(nil)
			},
		},
		{
			name: "change email only",
			req:  dto.UpdateUserRequest{Email: &newEmail},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
				repo.EXPECT().Exist(gomock.Any(), dto.ByEmail(newEmail)).Return(false, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						email, ok := fields[model.FieldEmail].(*string)
						require.True(t, ok)
						assert.Equal(t, "head.chef@example.com", *email)

						return nil
					})
			},
		},
		{
			name: "email taken",
			req:  dto.UpdateUserRequest{Email: &newEmail},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			tt.setupMock(repo)

			err := service.New(repo, mocks.NewOtel()).Update(adminContext(), tt.req, "user-1")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("cannot delete own account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)

		err := service.New(repo, mocks.NewOtel()).Delete(adminContext(), "admin-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := service.New(repo, mocks.NewOtel()).Delete(adminContext(), "user-2")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("deletes other user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, service.New(repo, mocks.NewOtel()).Delete(adminContext(), "user-2"))
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	admin := constant.RoleAdmin

	repo.EXPECT().GetAllWithRole(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.UserWithRole, error) {
			assert.Equal(t, "users.email ASC", params.Order)

			return []model.UserWithRole{
				{User: model.User{ID: "u1", Email: "a@example.com"}, Role: &admin},
				{User: model.User{ID: "u2", Email: "b@example.com"}},
			}, nil
		})

	res, err := service.New(repo, mocks.NewOtel()).GetAll(adminContext(), gDto.QueryParams{}, gDto.FilterGroup{})

	require.NoError(t, err)
	require.Len(t, res.Users, 2)
	assert.Equal(t, constant.RoleAdmin, res.Users[0].Role)
	assert.Equal(t, constant.RoleNone, res.Users[1].Role)
}
