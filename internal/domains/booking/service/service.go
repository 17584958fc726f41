package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	"venue/infras/s3"
	"venue/internal/domains/booking/model"
	"venue/internal/domains/booking/model/dto"
	"venue/internal/domains/booking/repository"
	menuModel "venue/internal/domains/menu/model"
	menuRepository "venue/internal/domains/menu/repository"
	notificationDto "venue/internal/domains/notification/model/dto"
	notification "venue/internal/domains/notification/service"
	plannerDto "venue/internal/domains/planner/model/dto"
	plannerRepository "venue/internal/domains/planner/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/timezone"
	"venue/shared/token"
)

const (
	prepSheetDirectory = "menu-sheets"
	defaultCalendarDays = 90

	errBookingNotFound  = "booking not found"
	errMenuNotOpen      = "menu is not open"
	errStatusGated      = "status cannot change while the menu is open or locked"
	errTemplateNotFound = "menu template not found"
	errUpdateEmpty      = "update request cannot be empty"
)

var prepSheetHeader = []string{"Category", "Item", "Session", "Qty", "Instructions"}

type Booking interface {
	// CreateInquiry stores a public inquiry and notifies the customer and staff.
	CreateInquiry(ctx context.Context, req dto.InquiryRequest) (dto.InquiryResponse, error)
	// Calendar lists booked ranges without customer data. Empty bounds default
	// to today and the following 90 days.
	Calendar(ctx context.Context, from, to string) (dto.CalendarResponse, error)
	GetAll(ctx context.Context, query string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetIntake(ctx context.Context, id string) (dto.IntakeResponse, error)
	UpdateIntake(ctx context.Context, req dto.UpdateIntakeRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	GetMenu(ctx context.Context, id string) (dto.AdminMenuResponse, error)
	OpenMenu(ctx context.Context, id string) (dto.OpenMenuResponse, error)
	LockMenu(ctx context.Context, id string) error
	SetMenuTemplate(ctx context.Context, req dto.SetTemplateRequest, id string) error
	// PrepSheet uploads the selections as CSV and returns where to fetch it.
	PrepSheet(ctx context.Context, id string) (dto.PrepSheetResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	selectionRepo plannerRepository.Selection
	templateRepo  menuRepository.Template
	notifier      notification.Notification
	s3            s3.S3
	cfg           *config.Config
	otel          otel.Otel
}

func New(repo repository.Booking, selectionRepo plannerRepository.Selection, templateRepo menuRepository.Template,
	notifier notification.Notification, s3 s3.S3, cfg *config.Config, otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		selectionRepo: selectionRepo,
		templateRepo:  templateRepo,
		notifier:      notifier,
		s3:            s3,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) CreateInquiry(ctx context.Context, req dto.InquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateInquiry")
	defer scope.End()
	defer scope.TraceIfError(&err)

	start, end, err := req.Normalize()
	if err != nil {
		return res, err
	}

	customerToken, err := token.Generate()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate customer token")

		return res, fmt.Errorf("failed to generate customer token: %w", err)
	}

	booking := req.ToModel(customerToken, start)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create inquiry")

		return res, fmt.Errorf("failed to create inquiry: %w", err)
	}

	// the inquiry stands even when the range cannot be recorded
	if rangeErr := s.repo.Update(ctx, dto.RangeFields(start, end), shared.FilterByID(booking.ID, model.FieldID, model.TableName)); rangeErr != nil {
		log.Error().Err(rangeErr).Str("booking_id", booking.ID).Msg("failed to set requested range")
	}

	s.notifier.InquiryReceived(ctx, notificationDto.InquiryPayload{
		BookingID:   booking.ID,
		Token:       customerToken,
		Name:        booking.CustomerName,
		Email:       booking.CustomerEmail,
		Phone:       booking.CustomerPhone,
		EventType:   booking.EventType,
		StartDate:   timezone.FormatDate(&start),
		EndDate:     timezone.FormatDate(&end),
		Description: strings.TrimSpace(req.Description),
	})

	res.BookingID = booking.ID
	res.Token = customerToken

	return res, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, from, to string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Calendar")
	defer scope.End()
	defer scope.TraceIfError(&err)

	fromDate, toDate, err := calendarWindow(from, to)
	if err != nil {
		return res, err
	}

	ranges, err := s.repo.Calendar(ctx, fromDate, toDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar")

		return res, fmt.Errorf("failed to get calendar: %w", err)
	}

	res.FromModels(fromDate, toDate, ranges)

	return res, nil
}

func calendarWindow(from, to string) (fromDate, toDate time.Time, err error) {
	if from = strings.TrimSpace(from); from == constant.Empty {
		fromDate = timezone.Today()
	} else if fromDate, err = timezone.ParseDate(from); err != nil {
		return fromDate, toDate, failure.ValidationField(constant.RequestParamFrom, "from must be a YYYY-MM-DD date")
	}

	if to = strings.TrimSpace(to); to == constant.Empty {
		toDate = fromDate.AddDate(0, 0, defaultCalendarDays)
	} else if toDate, err = timezone.ParseDate(to); err != nil {
		return fromDate, toDate, failure.ValidationField(constant.RequestParamTo, "to must be a YYYY-MM-DD date")
	}

	if toDate.Before(fromDate) {
		return fromDate, toDate, failure.ValidationField(constant.RequestParamTo, "to must be on or after from")
	}

	if toDate.Sub(fromDate) > constant.MaxCalendarDays*24*time.Hour {
		return fromDate, toDate, failure.ValidationField(constant.RequestParamTo,
			fmt.Sprintf("window cannot exceed %d days", constant.MaxCalendarDays))
	}

	return fromDate, toDate, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, query string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{}

	if query = strings.TrimSpace(query); query != constant.Empty {
		search := gDto.Or()

		for _, field := range []string{model.FieldEventType, model.FieldCustomerName, model.FieldStatus} {
			match := gDto.Like(model.TableName, field, query)
			match.ArgName = "q_" + field

			search.Add(match)
		}

		filter.Add(search)
	}

	params := gDto.QueryParams{
		Order: model.TableName + "." + model.FieldCreatedAt + " DESC",
		Limit: constant.MaxBookingListRows,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetIntake(ctx context.Context, id string) (res dto.IntakeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetIntake")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateIntake(ctx context.Context, req dto.UpdateIntakeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateIntake")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString(errUpdateEmpty)
	}

	start, end, err := req.ParseDates()
	if err != nil {
		return err
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = dto.ValidateRange(dto.MergedRange(current, start, end)); err != nil {
		return err
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, req.ToUpdateFields(username, start, end), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update intake")

		return fmt.Errorf("failed to update intake: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	status := req.Label()

	if status == constant.Empty {
		return failure.ValidationField(model.FieldStatus, "status is required")
	}

	if model.IsMenuGated(status) {
		return failure.ValidationField(model.FieldStatus, "status is set by opening or locking the menu")
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.SetStatus(ctx, id, status, username); err != nil {
		return s.mapError(err, id, "failed to update status")
	}

	return nil
}

func (s *serviceImpl) GetMenu(ctx context.Context, id string) (res dto.AdminMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMenu")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	templates, err := s.templateRepo.GetAll(ctx, gDto.QueryParams{Order: menuModel.TemplateTableName + "." + menuModel.FieldName + " ASC"},
		gDto.FilterGroup{}, menuModel.FieldID, menuModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu templates")

		return res, fmt.Errorf("failed to get menu templates: %w", err)
	}

	selections, err := s.selectionRepo.Selections(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get menu selections")

		return res, fmt.Errorf("failed to get menu selections: %w", err)
	}

	res.Booking.FromModel(booking)
	res.Status = booking.Status
	res.MenuTemplateID = booking.MenuTemplateID
	res.MenuToken = booking.MenuCustomerToken
	res.Locked = booking.Status == constant.BookingStatusMenuLocked
	res.Submitted = booking.MenuSubmittedAt != nil
	res.SubmittedAt = plannerDto.FormatTimestamp(booking.MenuSubmittedAt)
	res.Selections = plannerDto.SelectionLines(selections)

	if booking.MenuCustomerToken != nil {
		menuURL := s.menuURL(*booking.MenuCustomerToken)
		res.MenuURL = &menuURL
	}

	res.Templates = make([]dto.TemplateOption, len(templates))
	for i, template := range templates {
		res.Templates[i] = dto.TemplateOption{ID: template.ID, Name: template.Name}
	}

	return res, nil
}

func (s *serviceImpl) OpenMenu(ctx context.Context, id string) (res dto.OpenMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.OpenMenu")
	defer scope.End()
	defer scope.TraceIfError(&err)

	menuToken, err := token.Generate()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate menu token")

		return res, fmt.Errorf("failed to generate menu token: %w", err)
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	menuToken, err = s.repo.OpenMenu(ctx, id, menuToken, username)
	if err != nil {
		return res, s.mapError(err, id, "failed to open menu")
	}

	res.Token = menuToken
	res.MenuURL = s.menuURL(menuToken)

	return res, nil
}

func (s *serviceImpl) LockMenu(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.LockMenu")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.LockMenu(ctx, id, username); err != nil {
		return s.mapError(err, id, "failed to lock menu")
	}

	return nil
}

func (s *serviceImpl) SetMenuTemplate(ctx context.Context, req dto.SetTemplateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetMenuTemplate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	templateID := req.Normalized()

	if templateID != nil {
		exists, err := s.templateRepo.Exist(ctx, shared.FilterByID(*templateID, menuModel.FieldID, menuModel.TemplateTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if menu template exists")

			return fmt.Errorf("failed to check if menu template exists: %w", err)
		}

		if !exists {
			return failure.ValidationField("template_id", errTemplateNotFound)
		}
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.SetTemplate(ctx, id, templateID, username); err != nil {
		return s.mapError(err, id, "failed to set menu template")
	}

	return nil
}

func (s *serviceImpl) PrepSheet(ctx context.Context, id string) (res dto.PrepSheetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.PrepSheet")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	selections, err := s.selectionRepo.Selections(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get menu selections")

		return res, fmt.Errorf("failed to get menu selections: %w", err)
	}

	sheet, err := renderPrepSheet(plannerDto.SelectionLines(selections))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to render prep sheet")

		return res, fmt.Errorf("failed to render prep sheet: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s.csv", booking.ID, timezone.Now().Format("20060102150405"))

	url, err := s.s3.Upload(ctx, prepSheetDirectory, fileName, constant.ContentTypeCSV, sheet)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to upload prep sheet")

		return res, fmt.Errorf("failed to upload prep sheet: %w", err)
	}

	res.URL = url

	return res, nil
}

func renderPrepSheet(lines []plannerDto.SelectionLineResponse) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(prepSheetHeader); err != nil {
		return nil, err //nolint:wrapcheck
	}

	for _, line := range lines {
		var session, instructions string

		if line.Session != nil {
			session = *line.Session
		}

		if line.Instructions != nil {
			instructions = *line.Instructions
		}

		if err := writer.Write([]string{line.CategoryName, line.ItemName, session, strconv.Itoa(line.Qty), instructions}); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	writer.Flush()

	return buf.Bytes(), writer.Error() //nolint:wrapcheck
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(errBookingNotFound)
	}

	return booking, nil
}

// mapError turns the lifecycle guard errors into client errors.
func (s *serviceImpl) mapError(err error, id, msg string) error {
	switch {
	case errors.Is(err, model.ErrBookingNotFound):
		return failure.NotFound(errBookingNotFound)
	case errors.Is(err, model.ErrMenuLocked):
		return failure.Conflict(constant.ResponseErrorMenuLocked)
	case errors.Is(err, model.ErrMenuNotOpen):
		return failure.Conflict(errMenuNotOpen)
	case errors.Is(err, model.ErrStatusGated):
		return failure.Conflict(errStatusGated)
	}

	log.Error().Err(err).Str("booking_id", id).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}

func (s *serviceImpl) menuURL(menuToken string) string {
	return strings.TrimSuffix(s.cfg.App.PublicBaseURL, "/") + "/menu/" + menuToken
}
