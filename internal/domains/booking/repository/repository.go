package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/booking/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

const (
	openMenuQuery = `UPDATE bookings
SET status = 'MENU_OPEN',
	menu_customer_token = COALESCE(menu_customer_token, $2),
	modified_at = $3,
	modified_by = $4
WHERE id = $1 AND status <> 'MENU_LOCKED'
RETURNING menu_customer_token`

	lockMenuQuery = `UPDATE bookings
SET status = 'MENU_LOCKED', modified_at = $2, modified_by = $3
WHERE id = $1 AND status = 'MENU_OPEN'`

	setTemplateQuery = `UPDATE bookings
SET menu_template_id = $2, modified_at = $3, modified_by = $4
WHERE id = $1 AND status <> 'MENU_LOCKED'`

	setStatusQuery = `UPDATE bookings
SET status = $2, modified_at = $3, modified_by = $4
WHERE id = $1 AND status NOT IN ('MENU_OPEN', 'MENU_LOCKED')`

	statusQuery = `SELECT status FROM bookings WHERE id = $1`

	calendarQuery = `SELECT
	COALESCE(requested_start_date, event_date) AS start_date,
	COALESCE(requested_end_date, requested_start_date, event_date) AS end_date
FROM bookings
WHERE status <> 'CANCELLED'
	AND COALESCE(requested_start_date, event_date) IS NOT NULL
	AND COALESCE(requested_start_date, event_date) <= $2
	AND COALESCE(requested_end_date, requested_start_date, event_date) >= $1
ORDER BY start_date ASC`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	// OpenMenu moves the booking to MENU_OPEN and returns its menu token,
	// keeping an existing token. Locked bookings are rejected with ErrMenuLocked.
	OpenMenu(ctx context.Context, id, token, username string) (string, error)
	// LockMenu moves an open menu to MENU_LOCKED. Locking a locked menu is a no-op.
	LockMenu(ctx context.Context, id, username string) error
	SetTemplate(ctx context.Context, id string, templateID *string, username string) error
	// SetStatus writes a free-form status unless the booking is inside the menu gate.
	SetStatus(ctx context.Context, id, status, username string) error
	Calendar(ctx context.Context, from, to time.Time) ([]model.CalendarRange, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) OpenMenu(ctx context.Context, id, token, username string) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.OpenMenu")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, openMenuQuery)

	var menuToken string

	err := r.db.Write.QueryRowxContext(ctx, openMenuQuery, id, token, time.Now(), username).Scan(&menuToken)
	if errors.Is(err, sql.ErrNoRows) {
		return constant.Empty, r.gateError(ctx, id, model.ErrMenuLocked)
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to open menu: %w", err)
	}

	return menuToken, nil
}

func (r *repositoryImpl) LockMenu(ctx context.Context, id, username string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockMenu")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockMenuQuery)

	affected, err := r.exec(ctx, lockMenuQuery, id, time.Now(), username)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock menu: %w", err)
	}

	if affected > 0 {
		return nil
	}

	status, err := r.status(ctx, id)
	if err != nil {
		return err
	}

	if status == constant.BookingStatusMenuLocked {
		return nil
	}

	return model.ErrMenuNotOpen
}

func (r *repositoryImpl) SetTemplate(ctx context.Context, id string, templateID *string, username string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SetTemplate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, setTemplateQuery)

	affected, err := r.exec(ctx, setTemplateQuery, id, templateID, time.Now(), username)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set menu template: %w", err)
	}

	if affected > 0 {
		return nil
	}

	return r.gateError(ctx, id, model.ErrMenuLocked)
}

func (r *repositoryImpl) SetStatus(ctx context.Context, id, status, username string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SetStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, setStatusQuery)

	affected, err := r.exec(ctx, setStatusQuery, id, status, time.Now(), username)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set status: %w", err)
	}

	if affected > 0 {
		return nil
	}

	return r.gateError(ctx, id, model.ErrStatusGated)
}

func (r *repositoryImpl) Calendar(ctx context.Context, from, to time.Time) ([]model.CalendarRange, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Calendar")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, calendarQuery)

	var ranges []model.CalendarRange

	if err := r.db.Read.SelectContext(ctx, &ranges, calendarQuery, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	return ranges, nil
}

func (r *repositoryImpl) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.db.Write.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return result.RowsAffected() //nolint:wrapcheck
}

// gateError explains a conditional update that matched no row: either the
// booking does not exist or its status failed the guard.
func (r *repositoryImpl) gateError(ctx context.Context, id string, guardErr error) error {
	if _, err := r.status(ctx, id); err != nil {
		return err
	}

	return guardErr
}

func (r *repositoryImpl) status(ctx context.Context, id string) (string, error) {
	var status string

	err := r.db.Write.GetContext(ctx, &status, statusQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return constant.Empty, model.ErrBookingNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return constant.Empty, fmt.Errorf("failed to get booking status: %w", err)
	}

	return status, nil
}
