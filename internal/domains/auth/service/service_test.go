package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/infras/jwt"
	jwtMocks "venue/infras/jwt/mocks"
	"venue/infras/otel/mocks"
	"venue/internal/domains/auth/model/dto"
	"venue/internal/domains/auth/service"
	userMocks "venue/internal/domains/user/mocks"
	userModel "venue/internal/domains/user/model"
	userDto "venue/internal/domains/user/model/dto"
	"venue/shared/constant"
	"venue/shared/failure"
)

// passwordHash is the bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func TestAuthService_Login(t *testing.T) {
	validUser := userModel.User{
		ID:       "user-id-123",
		Email:    "chef@example.com",
		Password: passwordHash,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "Chef@Example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), userDto.ByEmail("chef@example.com")).Return(validUser, nil)
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), validUser.ID, validUser.Email).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "chef@example.com", Password: "wrong-password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "storage failure",
			req:  dto.LoginRequest{Email: "chef@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtService)

			res, err := service.New(repo, mocks.NewOtel(), jwtService).Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		jwtService := jwtMocks.NewMockJWT(ctrl)

		jwtService.EXPECT().ValidateToken(gomock.Any(), "stale", jwt.RefreshToken).Return(nil, jwt.ErrExpiredToken)

		_, err := service.New(repo, mocks.NewOtel(), jwtService).
			RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("deleted user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		jwtService := jwtMocks.NewMockJWT(ctrl)

		jwtService.EXPECT().ValidateToken(gomock.Any(), "refresh", jwt.RefreshToken).
			Return(&jwt.Claims{UserID: "user-1", Email: "chef@example.com"}, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := service.New(repo, mocks.NewOtel(), jwtService).
			RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("issues a new pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)
		jwtService := jwtMocks.NewMockJWT(ctrl)

		jwtService.EXPECT().ValidateToken(gomock.Any(), "refresh", jwt.RefreshToken).
			Return(&jwt.Claims{UserID: "user-1", Email: "old@example.com"}, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-1", Email: "new@example.com"}, nil)
		jwtService.EXPECT().GenerateTokenPair(gomock.Any(), "user-1", "new@example.com").
			Return(&jwt.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		res, err := service.New(repo, mocks.NewOtel(), jwtService).
			RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "a2", res.AccessToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-1", Password: passwordHash}, nil)

		err := service.New(repo, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl)).ChangePassword(context.Background(),
			dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"}, "user-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("updates hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMocks.NewMockUser(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-1", Password: passwordHash}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				hash, ok := fields[userModel.FieldPassword].(string)
				require.True(t, ok)
				assert.NotEqual(t, "new-password", hash)

				return nil
			})

		err := service.New(repo, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl)).ChangePassword(context.Background(),
			dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"}, "user-1")

		assert.NoError(t, err)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
		wantRole  string
		wantCode  int
	}{
		{
			name: "admin",
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "user-1", Email: "a@example.com"}, nil)
				repo.EXPECT().Role(gomock.Any(), "user-1").Return(constant.RoleAdmin, nil)
			},
			wantRole: constant.RoleAdmin,
		},
		{
			name: "no role granted",
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "user-1"}, nil)
				repo.EXPECT().Role(gomock.Any(), "user-1").Return(constant.Empty, nil)
			},
			wantRole: constant.RoleNone,
		},
		{
			name: "role lookup failure degrades to none",
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "user-1"}, nil)
				repo.EXPECT().Role(gomock.Any(), "user-1").Return(constant.Empty, errors.New("timeout"))
			},
			wantRole: constant.RoleNone,
		},
		{
			name: "unexpected stored role degrades to none",
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "user-1"}, nil)
				repo.EXPECT().Role(gomock.Any(), "user-1").Return("owner", nil)
			},
			wantRole: constant.RoleNone,
		},
		{
			name: "invalid token",
			setupMock: func(_ *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				jwtService.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := userMocks.NewMockUser(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtService)

			identity, err := service.New(repo, mocks.NewOtel(), jwtService).Authenticate(context.Background(), "token")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", identity.UserID)
			assert.Equal(t, tt.wantRole, identity.Role)
		})
	}
}
