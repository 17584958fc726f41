package model

import (
	"time"

	"github.com/jmoiron/sqlx/types"

	"venue/shared/model"
)

const (
	TableName           = "app_settings"
	RecipientTableName  = "notification_recipients"
	EntityName          = "setting"
	RecipientEntityName = "notification_recipient"

	FieldKey        = "key"
	FieldValue      = "value"
	FieldID         = "id"
	FieldEmail      = "email"
	FieldPurpose    = "purpose"
	FieldEnabled    = "enabled"
	FieldModifiedAt = "modified_at"
)

// AppSetting is a global key/value pair. Settings keep no history, so only
// the last writer is recorded.
type AppSetting struct {
	Key        string         `db:"key"`
	Value      types.JSONText `db:"value"`
	ModifiedAt time.Time      `db:"modified_at"`
	ModifiedBy string         `db:"modified_by"`
}

type NotificationRecipient struct {
	ID      string `db:"id"`
	Email   string `db:"email"`
	Purpose string `db:"purpose"`
	Enabled bool   `db:"enabled"`
	model.Metadata
}
