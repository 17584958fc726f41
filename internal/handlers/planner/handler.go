package planner

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/planner/model/dto"
	"venue/internal/domains/planner/service"
	"venue/shared/constant"
	"venue/shared/validator"
	"venue/transport/http/response"
)

type Handler struct {
	service service.Planner
	otel    otel.Otel
}

func New(service service.Planner, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/menu/public/{token}", handler.GetPublicMenu)
	router.Post("/menu/save", handler.Save)
}

// GetPublicMenu returns the customer's menu behind a menu token.
// @Summary Get customer menu
// @Description Offered items grouped by category with the booking's current selections.
// @Tags Planner
// @Produce json
// @Param token path string true "Menu token"
// @Success 200 {object} response.Data[dto.PublicMenuResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu/public/{token} [get]
func (handler *Handler) GetPublicMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicMenu")
	defer scope.End()

	res, err := handler.service.GetPublicMenu(ctx, chi.URLParam(r, constant.RequestParamToken))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public menu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Save replaces the customer's selections.
// @Summary Save customer menu
// @Description Replaces every selection of the booking. submit=true also marks the menu submitted.
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body dto.SaveMenuRequest true "Selections"
// @Success 200 {object} response.Data[dto.SaveMenuResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu/save [post]
func (handler *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveMenu")
	defer scope.End()

	req := dto.SaveMenuRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save menu")

		response.WithError(w, err)

		return
	}

	if res.SubmittedAt != nil {
		scope.AddEvent("Menu submitted")
	}

	response.WithJSON(w, http.StatusOK, res)
}
