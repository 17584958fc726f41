package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	"venue/internal/domains/setting/model"
	"venue/internal/domains/setting/model/dto"
	"venue/internal/domains/setting/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const (
	cacheGetSettings   = "setting:gets"
	cacheGetRecipients = "setting:recipients"

	errRecipientNotFound = "notification recipient not found"
	errRecipientExists   = "recipient already registered for this purpose"
)

type Setting interface {
	GetAll(ctx context.Context) (dto.GetSettingsResponse, error)
	Save(ctx context.Context, req dto.SaveSettingsRequest) (dto.GetSettingsResponse, error)
	GetRecipients(ctx context.Context, purpose string) (dto.GetRecipientsResponse, error)
	CreateRecipient(ctx context.Context, req dto.CreateRecipientRequest) (dto.RecipientResponse, error)
	UpdateRecipient(ctx context.Context, req dto.UpdateRecipientRequest, id string) error
	DeleteRecipient(ctx context.Context, id string) error
	// EnabledEmails returns the staff distribution list for a purpose. It
	// falls back to the configured address and never fails.
	EnabledEmails(ctx context.Context, purpose string) []string
}

type serviceImpl struct {
	repo          repository.Setting
	recipientRepo repository.Recipient
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Setting, recipientRepo repository.Recipient, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:          repo,
		recipientRepo: recipientRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetSettings, "all")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for settings")

		return res, nil
	}

	settings, err := s.repo.GetAll(ctx, gDto.QueryParams{Order: model.TableName + "." + model.FieldKey + " ASC"}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModels(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveSettingsRequest) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings := req.ToModels(username)
	for _, setting := range settings {
		if setting.Key == constant.Empty {
			return res, failure.ValidationField("settings", "setting key cannot be blank")
		}
	}

	if err = s.repo.Upsert(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return res, fmt.Errorf("failed to save settings: %w", err)
	}

	// cleared before the re-read below
	shared.InvalidateCaches(ctx, s.cache, cacheGetSettings)

	return s.GetAll(ctx)
}

func (s *serviceImpl) GetRecipients(ctx context.Context, purpose string) (res dto.GetRecipientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.GetRecipients")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{}
	if purpose != constant.Empty {
		filter.Add(gDto.Eq(model.RecipientTableName, model.FieldPurpose, purpose))
	}

	params := gDto.QueryParams{Order: fmt.Sprintf("%[1]s.%[2]s ASC, %[1]s.%[3]s ASC",
		model.RecipientTableName, model.FieldPurpose, model.FieldEmail)}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetRecipients, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for recipients")

		return res, nil
	}

	recipients, err := s.recipientRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recipients")

		return res, fmt.Errorf("failed to get recipients: %w", err)
	}

	res.FromModels(recipients)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recipients to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateRecipient(ctx context.Context, req dto.CreateRecipientRequest) (res dto.RecipientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.CreateRecipient")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.recipientRepo.Exist(ctx, dto.ByEmailPurpose(req.Email, req.Purpose))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if recipient exists")

		return res, fmt.Errorf("failed to check if recipient exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(errRecipientExists)
	}

	recipient := req.ToModel(username)

	if err = s.recipientRepo.Insert(ctx, recipient); err != nil {
		log.Error().Err(err).Msg("failed to create recipient")

		return res, fmt.Errorf("failed to create recipient: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetRecipients)

	res.FromModel(recipient)

	return res, nil
}

func (s *serviceImpl) UpdateRecipient(ctx context.Context, req dto.UpdateRecipientRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.UpdateRecipient")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.RecipientTableName)

	current, err := s.recipientRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recipient")

		return fmt.Errorf("failed to get recipient: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound(errRecipientNotFound)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email
	}

	email, purpose := current.Email, current.Purpose
	if req.Email != nil {
		email = *req.Email
	}

	if req.Purpose != nil {
		purpose = *req.Purpose
	}

	if email != current.Email || purpose != current.Purpose {
		exists, err := s.recipientRepo.Exist(ctx, dto.ByEmailPurpose(email, purpose))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if recipient exists")

			return fmt.Errorf("failed to check if recipient exists: %w", err)
		}

		if exists {
			return failure.Conflict(errRecipientExists)
		}
	}

	if err = s.recipientRepo.Update(ctx, shared.TransformFields(req, username), filter); err != nil {
		log.Error().Err(err).Msg("failed to update recipient")

		return fmt.Errorf("failed to update recipient: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetRecipients)

	return nil
}

func (s *serviceImpl) DeleteRecipient(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.DeleteRecipient")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.RecipientTableName)

	exists, err := s.recipientRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if recipient exists")

		return fmt.Errorf("failed to check if recipient exists: %w", err)
	}

	if !exists {
		return failure.NotFound(errRecipientNotFound)
	}

	if err = s.recipientRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete recipient")

		return fmt.Errorf("failed to delete recipient: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetRecipients)

	return nil
}

func (s *serviceImpl) EnabledEmails(ctx context.Context, purpose string) []string {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.EnabledEmails")
	defer scope.End()

	recipients, err := s.recipientRepo.GetAll(ctx, gDto.QueryParams{}, dto.EnabledFor(purpose), model.FieldEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("purpose", purpose).Msg("failed to read notification recipients, using fallback")
	}

	seen := make(map[string]struct{}, len(recipients))
	emails := make([]string, 0, len(recipients))

	for _, recipient := range recipients {
		email := strings.ToLower(strings.TrimSpace(recipient.Email))
		if _, ok := seen[email]; ok || email == constant.Empty {
			continue
		}

		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	if len(emails) == 0 && s.cfg.Notification.FallbackEmail != constant.Empty {
		emails = append(emails, s.cfg.Notification.FallbackEmail)
	}

	return emails
}
