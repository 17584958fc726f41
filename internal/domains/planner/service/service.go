package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	bookingModel "venue/internal/domains/booking/model"
	menuModel "venue/internal/domains/menu/model"
	notificationDto "venue/internal/domains/notification/model/dto"
	notification "venue/internal/domains/notification/service"
	"venue/internal/domains/planner/model"
	"venue/internal/domains/planner/model/dto"
	"venue/internal/domains/planner/repository"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/timezone"
)

const (
	errItemNotOffered    = "item is not offered on this menu"
	errDuplicateItem     = "item is already selected for this session"
	fieldItemsMenuItemID = "items[%d].menu_item_id"
	fieldItemsSession    = "items[%d].session"
)

// Planner serves the customer facing menu behind a menu token.
type Planner interface {
	GetPublicMenu(ctx context.Context, token string) (dto.PublicMenuResponse, error)
	// Save replaces the booking's selections. Submitting stamps the submission
	// time and notifies the customer and staff.
	Save(ctx context.Context, req dto.SaveMenuRequest) (dto.SaveMenuResponse, error)
}

type serviceImpl struct {
	repo     repository.Selection
	notifier notification.Notification
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Selection, notifier notification.Notification, cfg *config.Config, otel otel.Otel) Planner {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) GetPublicMenu(ctx context.Context, token string) (res dto.PublicMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".planner.GetPublicMenu")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.resolve(ctx, token)
	if err != nil {
		return res, err
	}

	items, err := s.repo.OfferedItems(ctx, booking.MenuTemplateID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offered menu items")

		return res, fmt.Errorf("failed to get offered menu items: %w", err)
	}

	selections, err := s.repo.Selections(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu selections")

		return res, fmt.Errorf("failed to get menu selections: %w", err)
	}

	res.FromModels(booking, items, selections)

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveMenuRequest) (res dto.SaveMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".planner.Save")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.resolve(ctx, req.Token)
	if err != nil {
		return res, err
	}

	if booking.Status != constant.BookingStatusMenuOpen {
		return res, failure.Conflict(constant.ResponseErrorMenuLocked)
	}

	offered, err := s.repo.OfferedItems(ctx, booking.MenuTemplateID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offered menu items")

		return res, fmt.Errorf("failed to get offered menu items: %w", err)
	}

	selections := req.ToModels()

	if err = validateSelections(selections, offered); err != nil {
		return res, err
	}

	submittedAt, err := s.repo.ReplaceSelections(ctx, req.Token, selections, req.Submit)
	if errors.Is(err, bookingModel.ErrBookingNotFound) {
		return res, failure.Unauthorized(constant.ResponseErrorNotAuthorized)
	}

	if errors.Is(err, bookingModel.ErrMenuLocked) {
		return res, failure.Conflict(constant.ResponseErrorMenuLocked)
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to save menu selections")

		return res, fmt.Errorf("failed to save menu selections: %w", err)
	}

	res.Saved = len(selections)
	res.SubmittedAt = dto.FormatTimestamp(submittedAt)

	if submittedAt != nil {
		s.notifier.MenuSubmitted(ctx, s.submittedPayload(booking, req.Token, selections, offered, *res.SubmittedAt))
	}

	return res, nil
}

// resolve maps every unusable token to the same generic 401.
func (s *serviceImpl) resolve(ctx context.Context, token string) (bookingModel.Booking, error) {
	token = strings.TrimSpace(token)
	if token == constant.Empty {
		return bookingModel.Booking{}, failure.Unauthorized(constant.ResponseErrorNotAuthorized)
	}

	booking, err := s.repo.ResolveToken(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve menu token")

		return booking, fmt.Errorf("failed to resolve menu token: %w", err)
	}

	if booking.ID == constant.Empty || !bookingModel.IsMenuGated(booking.Status) {
		return bookingModel.Booking{}, failure.Unauthorized(constant.ResponseErrorNotAuthorized)
	}

	return booking, nil
}

func validateSelections(selections []model.Selection, offered []menuModel.ItemWithCategory) error {
	offeredIDs := make(map[string]struct{}, len(offered))
	for _, item := range offered {
		offeredIDs[item.ID] = struct{}{}
	}

	fields := map[string]string{}
	seen := make(map[string]struct{}, len(selections))

	for i, selection := range selections {
		if _, ok := offeredIDs[selection.MenuItemID]; !ok {
			fields[fmt.Sprintf(fieldItemsMenuItemID, i)] = errItemNotOffered

			continue
		}

		key := selection.SessionKey()
		if _, ok := seen[key]; ok {
			fields[fmt.Sprintf(fieldItemsSession, i)] = errDuplicateItem

			continue
		}

		seen[key] = struct{}{}
	}

	if len(fields) > 0 {
		return failure.Validation(fields)
	}

	return nil
}

func (s *serviceImpl) submittedPayload(booking bookingModel.Booking, token string, selections []model.Selection,
	offered []menuModel.ItemWithCategory, submittedAt string,
) notificationDto.MenuSubmittedPayload {
	items := make(map[string]menuModel.ItemWithCategory, len(offered))
	for _, item := range offered {
		items[item.ID] = item
	}

	lines := make([]notificationDto.MenuItemLine, 0, len(selections))

	for _, selection := range selections {
		item := items[selection.MenuItemID]
		line := notificationDto.MenuItemLine{Name: item.Name, Qty: selection.Qty}

		if item.CategoryName != nil {
			line.Category = *item.CategoryName
		}

		if selection.Session != nil {
			line.Session = *selection.Session
		}

		if selection.Instructions != nil {
			line.Instructions = *selection.Instructions
		}

		lines = append(lines, line)
	}

	return notificationDto.MenuSubmittedPayload{
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		EventType:     booking.EventType,
		StartDate:     timezone.FormatDate(booking.StartDate()),
		EndDate:       timezone.FormatDate(booking.EndDate()),
		SubmittedAt:   submittedAt,
		MenuURL:       strings.TrimSuffix(s.cfg.App.PublicBaseURL, "/") + "/menu/" + token,
		Items:         lines,
	}
}
