package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"venue/internal/domains/setting/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	gModel "venue/shared/model"
	"venue/shared/timezone"
)

type SettingRequest struct {
	Key   string          `json:"key"   validate:"required,max=100"`
	Value json.RawMessage `json:"value" validate:"required"                swaggertype:"object"`
}

type SaveSettingsRequest struct {
	Settings []SettingRequest `json:"settings" validate:"required,min=1,dive"`
}

// ToModels keeps the last value of a key repeated within one request.
func (r *SaveSettingsRequest) ToModels(username string) []model.AppSetting {
	now := timezone.Now()
	index := make(map[string]int, len(r.Settings))
	settings := make([]model.AppSetting, 0, len(r.Settings))

	for _, setting := range r.Settings {
		key := strings.TrimSpace(setting.Key)
		row := model.AppSetting{
			Key:        key,
			Value:      types.JSONText(setting.Value),
			ModifiedAt: now,
			ModifiedBy: username,
		}

		if i, ok := index[key]; ok {
			settings[i] = row

			continue
		}

		index[key] = len(settings)
		settings = append(settings, row)
	}

	return settings
}

type SettingResponse struct {
	Key        string          `json:"key"`
	Value      json.RawMessage `json:"value"       swaggertype:"object"`
	ModifiedAt string          `json:"modified_at"`
	ModifiedBy string          `json:"modified_by"`
}

type GetSettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
}

func (r *GetSettingsResponse) FromModels(settings []model.AppSetting) {
	r.Settings = make([]SettingResponse, len(settings))
	for i, setting := range settings {
		r.Settings[i] = SettingResponse{
			Key:        setting.Key,
			Value:      json.RawMessage(setting.Value),
			ModifiedAt: timezone.Format(setting.ModifiedAt, constant.DateFormat),
			ModifiedBy: setting.ModifiedBy,
		}
	}
}

type CreateRecipientRequest struct {
	Email   string `json:"email"   validate:"required,email,max=255"`
	Purpose string `json:"purpose" validate:"required,oneof=NEW_INQUIRY MENU_SUBMITTED"`
	Enabled *bool  `json:"enabled"`
}

func (r *CreateRecipientRequest) ToModel(username string) model.NotificationRecipient {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	now := timezone.Now()

	return model.NotificationRecipient{
		ID:      uuid.NewString(),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Purpose: r.Purpose,
		Enabled: enabled,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateRecipientRequest struct {
	Email   *string `db:"email"   json:"email"   validate:"omitempty,email,max=255"`
	Purpose *string `db:"purpose" json:"purpose" validate:"omitempty,oneof=NEW_INQUIRY MENU_SUBMITTED"`
	Enabled *bool   `db:"enabled" json:"enabled"`
}

func (r *UpdateRecipientRequest) IsEmpty() bool {
	return r.Email == nil && r.Purpose == nil && r.Enabled == nil
}

// ByEmailPurpose matches the unique (email, purpose) pair.
func ByEmailPurpose(email, purpose string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.RecipientTableName, model.FieldEmail, strings.ToLower(strings.TrimSpace(email))),
		gDto.Eq(model.RecipientTableName, model.FieldPurpose, purpose),
	)
}

// EnabledFor matches the enabled recipients of a purpose.
func EnabledFor(purpose string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.RecipientTableName, model.FieldPurpose, purpose),
		gDto.Eq(model.RecipientTableName, model.FieldEnabled, true),
	)
}

type RecipientResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	Enabled bool   `json:"enabled"`
	gDto.Metadata
}

func (r *RecipientResponse) FromModel(recipient model.NotificationRecipient) {
	r.ID = recipient.ID
	r.Email = recipient.Email
	r.Purpose = recipient.Purpose
	r.Enabled = recipient.Enabled
	r.Metadata.FromModel(recipient.Metadata)
}

type GetRecipientsResponse struct {
	Recipients []RecipientResponse `json:"recipients"`
}

func (r *GetRecipientsResponse) FromModels(recipients []model.NotificationRecipient) {
	r.Recipients = make([]RecipientResponse, len(recipients))
	for i, recipient := range recipients {
		r.Recipients[i].FromModel(recipient)
	}
}
