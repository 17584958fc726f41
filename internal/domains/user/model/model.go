package model

import "venue/shared/model"

const (
	TableName      = "users"
	RoleTableName  = "user_roles"
	EntityName     = "user"
	RoleEntityName = "user_role"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "user_id"
	FieldRole     = "role"
)

type User struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	model.Metadata
}

// UserRole grants at most one staff role per user.
type UserRole struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Role   string `db:"role"`
	model.Metadata
}

// UserWithRole is a user joined with its optional role.
type UserWithRole struct {
	User
	Role *string `db:"role" table:"user_roles"`
}

func (UserWithRole) GetJoinQuery() string {
	return "LEFT JOIN user_roles ON user_roles.user_id = users.id"
}
