package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/booking/model/dto"
	"venue/internal/domains/booking/service"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/validator"
	"venue/transport/http/response"
)

const confirmValue = "true"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/inquiry", handler.CreateInquiry)
	router.Get("/calendar", handler.GetCalendar)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Get("/{id}/intake", handler.GetIntake)
		routerGroup.Patch("/{id}/intake", handler.UpdateIntake)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)

		routerGroup.Route("/{id}/menu", func(menu chi.Router) {
			menu.Get("/", handler.GetMenu)
			menu.Post("/", handler.OpenMenu)
			menu.Patch("/", handler.SetMenuTemplate)
			menu.Delete("/", handler.LockMenu)
			menu.Post("/sheet", handler.PrepSheet)
		})
	})
}

// CreateInquiry handles the public inquiry form.
// @Summary Submit an inquiry
// @Description Create a booking inquiry from the public form. Either eventDate or startDate and endDate must be given.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.InquiryRequest true "Inquiry"
// @Success 201 {object} response.Data[dto.InquiryResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/inquiry [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.InquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateInquiry(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry created for booking " + res.BookingID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCalendar lists booked date ranges.
// @Summary Availability calendar
// @Description Booked ranges of all bookings that are not cancelled. No customer data is returned.
// @Tags Inquiry
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param to query string false "Last day (YYYY-MM-DD), defaults to 90 days after from"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.Calendar(ctx, query.Get(constant.RequestParamFrom), query.Get(constant.RequestParamTo))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookings lists bookings, newest first.
// @Summary List bookings
// @Description Free text search over event type, customer name and status. At most 200 rows.
// @Tags Booking
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, r.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBooking returns a booking summary.
// @Summary Get booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetIntake returns the full intake record.
// @Summary Get booking intake
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.IntakeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/intake [get]
// @Security BearerAuth
func (handler *Handler) GetIntake(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetIntake")
	defer scope.End()

	res, err := handler.service.GetIntake(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get intake")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateIntake patches intake fields.
// @Summary Update booking intake
// @Description Only the supplied fields change. An empty string clears an optional field.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateIntakeRequest true "Intake fields"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/intake [patch]
// @Security BearerAuth
func (handler *Handler) UpdateIntake(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateIntake")
	defer scope.End()

	req := dto.UpdateIntakeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateIntake(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update intake")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Intake updated successfully")
}

// UpdateStatus sets a free-form status label.
// @Summary Annotate booking status
// @Description Menu gate statuses can not be set here, and bookings inside the menu gate can not be relabelled.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Status updated successfully")
}

// GetMenu returns the staff view of a booking's menu.
// @Summary Get booking menu
// @Tags Booking Menu
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.AdminMenuResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/menu [get]
// @Security BearerAuth
func (handler *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	res, err := handler.service.GetMenu(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking menu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// OpenMenu opens menu planning for the customer.
// @Summary Open booking menu
// @Description Moves the booking to MENU_OPEN and returns the menu token. Opening again keeps the token.
// @Tags Booking Menu
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.OpenMenuResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/menu [post]
// @Security BearerAuth
func (handler *Handler) OpenMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenMenu")
	defer scope.End()

	res, err := handler.service.OpenMenu(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open menu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetMenuTemplate chooses the template offered to the customer.
// @Summary Set booking menu template
// @Description A null or empty template_id offers every active item.
// @Tags Booking Menu
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SetTemplateRequest true "Template"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/menu [patch]
// @Security BearerAuth
func (handler *Handler) SetMenuTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetMenuTemplate")
	defer scope.End()

	req := dto.SetTemplateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetMenuTemplate(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set menu template")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu template updated successfully")
}

// LockMenu locks the menu. Locking can not be undone.
// @Summary Lock booking menu
// @Tags Booking Menu
// @Produce json
// @Param id path string true "Booking ID"
// @Param confirm query string true "Must be true"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/menu [delete]
// @Security BearerAuth
func (handler *Handler) LockMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LockMenu")
	defer scope.End()

	if r.URL.Query().Get(constant.RequestParamConfirm) != confirmValue {
		err := failure.ValidationField(constant.RequestParamConfirm, "confirm=true is required to lock the menu")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.LockMenu(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to lock menu")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu locked successfully")
}

// PrepSheet publishes the kitchen prep sheet.
// @Summary Generate kitchen prep sheet
// @Description Renders the booking's selections as CSV, uploads it and returns its URL.
// @Tags Booking Menu
// @Produce json
// @Param id path string true "Booking ID"
// @Success 201 {object} response.Data[dto.PrepSheetResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/menu/sheet [post]
// @Security BearerAuth
func (handler *Handler) PrepSheet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PrepSheet")
	defer scope.End()

	res, err := handler.service.PrepSheet(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate prep sheet")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
