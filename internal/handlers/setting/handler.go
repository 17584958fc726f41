package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/setting/model"
	"venue/internal/domains/setting/model/dto"
	"venue/internal/domains/setting/service"
	"venue/shared/constant"
	"venue/shared/validator"
	"venue/transport/http/response"
)

type Handler struct {
	service service.Setting
	otel    otel.Otel
}

func New(service service.Setting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Post("/", handler.SaveSettings)

		routerGroup.Route("/recipients", func(recipients chi.Router) {
			recipients.Get("/", handler.GetRecipients)
			recipients.Post("/", handler.CreateRecipient)
			recipients.Patch("/{id}", handler.UpdateRecipient)
			recipients.Delete("/{id}", handler.DeleteRecipient)
		})
	})
}

// GetSettings lists every application setting.
// @Summary Get settings
// @Description List application settings ordered by key.
// @Tags Setting
// @Produce json
// @Success 200 {object} response.Data[dto.GetSettingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SaveSettings upserts settings.
// @Summary Save settings
// @Description Upsert all supplied settings in one transaction and return the full list.
// @Tags Setting
// @Accept json
// @Produce json
// @Param request body dto.SaveSettingsRequest true "Settings"
// @Success 200 {object} response.Data[dto.GetSettingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [post]
// @Security BearerAuth
func (handler *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveSettings")
	defer scope.End()

	req := dto.SaveSettingsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings saved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRecipients lists notification recipients.
// @Summary Get notification recipients
// @Tags Setting
// @Produce json
// @Param purpose query string false "Filter by purpose" Enums(NEW_INQUIRY, MENU_SUBMITTED)
// @Success 200 {object} response.Data[dto.GetRecipientsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/settings/recipients [get]
// @Security BearerAuth
func (handler *Handler) GetRecipients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecipients")
	defer scope.End()

	res, err := handler.service.GetRecipients(ctx, r.URL.Query().Get(model.FieldPurpose))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recipients")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRecipient adds a notification recipient.
// @Summary Create notification recipient
// @Tags Setting
// @Accept json
// @Produce json
// @Param request body dto.CreateRecipientRequest true "Recipient"
// @Success 201 {object} response.Data[dto.RecipientResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/recipients [post]
// @Security BearerAuth
func (handler *Handler) CreateRecipient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRecipient")
	defer scope.End()

	req := dto.CreateRecipientRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateRecipient(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create recipient")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateRecipient updates a notification recipient.
// @Summary Update notification recipient
// @Tags Setting
// @Accept json
// @Produce json
// @Param id path string true "Recipient ID"
// @Param request body dto.UpdateRecipientRequest true "Recipient"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/recipients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRecipient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRecipient")
	defer scope.End()

	req := dto.UpdateRecipientRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRecipient(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update recipient")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Recipient updated successfully")
}

// DeleteRecipient removes a notification recipient.
// @Summary Delete notification recipient
// @Tags Setting
// @Produce json
// @Param id path string true "Recipient ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/recipients/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRecipient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRecipient")
	defer scope.End()

	if err := handler.service.DeleteRecipient(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete recipient")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Recipient deleted successfully")
}
