package dto

import (
	"strings"

	"github.com/google/uuid"

	"venue/internal/domains/user/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

type CreateUserRequest struct {
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin kitchen none"`
}

func (r *CreateUserRequest) ToModel(username, hashedPassword string) model.User {
	now := timezone.Now()

	return model.User{
		ID:       uuid.NewString(),
		Email:    NormalizeEmail(r.Email),
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// RoleModel returns nil when the request grants no staff role.
func (r *CreateUserRequest) RoleModel(userID, username string) *model.UserRole {
	return NewRole(userID, r.Role, username)
}

// ByEmail matches a user by normalized email. Emails are stored lower case.
func ByEmail(email string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldEmail, NormalizeEmail(email)))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UpdateUserRequest struct {
	Email *string `db:"email" json:"email" validate:"omitempty,email,max=255"`
	Role  *string `json:"role"             validate:"omitempty,oneof=admin kitchen none"`
}

// NewRole builds a role row, or nil for an absent or "none" role.
func NewRole(userID string, role *string, username string) *model.UserRole {
	if role == nil || *role == constant.RoleNone || *role == constant.Empty {
		return nil
	}

	now := timezone.Now()

	return &model.UserRole{
		ID:     uuid.NewString(),
		UserID: userID,
		Role:   *role,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.UserWithRole) {
	r.ID = user.ID
	r.Email = user.Email
	r.Role = constant.RoleNone

	if user.Role != nil {
		r.Role = *user.Role
	}

	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func (r *GetUsersResponse) FromModels(users []model.UserWithRole) {
	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}
