package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Event=MockEventService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	"venue/internal/domains/event/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/timezone"
)

const (
	errEventNotFound = "event not found"
	errUpdateEmpty   = "update request cannot be empty"

	argWindowStart = "window_start"
	argWindowEnd   = "window_end"
)

type Event interface {
	// Feed returns the public calendar events overlapping [start, end).
	Feed(ctx context.Context, start, end string) (dto.FeedResponse, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Event
	otel otel.Otel
}

func New(repo repository.Event, otel otel.Otel) Event {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Feed(ctx context.Context, start, end string) (res dto.FeedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Feed")
	defer scope.End()
	defer scope.TraceIfError(&err)

	startAt, endAt, err := feedWindow(start, end)
	if err != nil {
		return res, err
	}

	windowStart := gDto.Gt(model.TableName, model.FieldEndAt, startAt)
	windowStart.ArgName = argWindowStart

	windowEnd := gDto.Lt(model.TableName, model.FieldStartAt, endAt)
	windowEnd.ArgName = argWindowEnd

	filter := gDto.And(
		gDto.Filter{Table: model.TableName, Field: model.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.StatusCancelled},
		windowStart,
		windowEnd,
	)

	events, err := s.repo.GetAll(ctx, gDto.QueryParams{Order: model.DefaultOrder}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event feed")

		return res, fmt.Errorf("failed to get event feed: %w", err)
	}

	res.FromModels(startAt, endAt, timezone.Now(), events)

	return res, nil
}

func feedWindow(start, end string) (startAt, endAt time.Time, err error) {
	fields := map[string]string{}

	if strings.TrimSpace(start) == constant.Empty {
		fields[constant.RequestParamStart] = "start is required"
	} else if parsed, ok := dto.ParseInstant(start); ok {
		startAt = parsed
	} else {
		fields[constant.RequestParamStart] = "start must be an RFC 3339 timestamp or YYYY-MM-DD date"
	}

	if strings.TrimSpace(end) == constant.Empty {
		fields[constant.RequestParamEnd] = "end is required"
	} else if parsed, ok := dto.ParseInstant(end); ok {
		endAt = parsed
	} else {
		fields[constant.RequestParamEnd] = "end must be an RFC 3339 timestamp or YYYY-MM-DD date"
	}

	if len(fields) > 0 {
		return startAt, endAt, failure.Validation(fields)
	}

	if !endAt.After(startAt) {
		return startAt, endAt, failure.ValidationField(constant.RequestParamEnd, "end must be after start")
	}

	if endAt.Sub(startAt) > constant.MaxCalendarDays*24*time.Hour {
		return startAt, endAt, failure.ValidationField(constant.RequestParamEnd,
			fmt.Sprintf("window cannot exceed %d days", constant.MaxCalendarDays))
	}

	return startAt, endAt, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	event, err := req.ToModel(user)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.SortBy == constant.Empty {
		req.Order = model.DefaultOrder
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	events, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(events, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	event, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString(errUpdateEmpty)
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.ToUpdateFields(current, user)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("event_id", id).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("event_id", id).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Event, error) {
	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("event_id", id).Msg("failed to get event")

		return event, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return event, failure.NotFound(errEventNotFound) // nolint:wrapcheck
	}

	return event, nil
}
