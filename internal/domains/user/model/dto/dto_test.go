package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/internal/domains/user/model"
	"venue/internal/domains/user/model/dto"
	"venue/shared/constant"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := dto.CreateUserRequest{Email: "  Chef@Example.com ", Password: "secret-pass"}

	user := req.ToModel("admin-1", "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "chef@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, "admin-1", user.CreatedBy)
}

func TestNewRole(t *testing.T) {
	kitchen := constant.RoleKitchen
	none := constant.RoleNone

	assert.Nil(t, dto.NewRole("u1", nil, "admin-1"))
	assert.Nil(t, dto.NewRole("u1", &none, "admin-1"))

	role := dto.NewRole("u1", &kitchen, "admin-1")
	require.NotNil(t, role)
	assert.Equal(t, "u1", role.UserID)
	assert.Equal(t, constant.RoleKitchen, role.Role)
}

func TestUserResponse_FromModel(t *testing.T) {
	admin := constant.RoleAdmin

	var withRole dto.UserResponse
	withRole.FromModel(model.UserWithRole{User: model.User{ID: "u1", Email: "a@example.com"}, Role: &admin})
	assert.Equal(t, constant.RoleAdmin, withRole.Role)

	var withoutRole dto.UserResponse
	withoutRole.FromModel(model.UserWithRole{User: model.User{ID: "u2"}})
	assert.Equal(t, constant.RoleNone, withoutRole.Role)
}
