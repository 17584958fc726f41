package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"venue/infras/otel"
	"venue/infras/postgres"
	bookingModel "venue/internal/domains/booking/model"
	menuModel "venue/internal/domains/menu/model"
	"venue/internal/domains/planner/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

const (
	lockByTokenQuery = `SELECT id, status FROM bookings WHERE menu_customer_token = $1 FOR UPDATE`
	submitMenuQuery  = `UPDATE bookings SET menu_submitted_at = $2, modified_at = $2 WHERE id = $1`

	// category sort order, then name, uncategorized last
	menuOrder = "menu_items.category_id IS NULL ASC, menu_categories.sort_order ASC NULLS LAST, " +
		"menu_categories.name ASC, menu_items.name ASC"
)

type Selection interface {
	// ResolveToken returns the booking owning a menu token, or a zero booking.
	ResolveToken(ctx context.Context, token string) (bookingModel.Booking, error)
	// OfferedItems returns the template's items, or every active item when templateID is nil.
	OfferedItems(ctx context.Context, templateID *string) ([]menuModel.ItemWithCategory, error)
	Selections(ctx context.Context, bookingID string) ([]model.SelectionDetail, error)
	// ReplaceSelections locks the booking by token and swaps its whole selection
	// set. It returns ErrBookingNotFound for an unknown token and ErrMenuLocked
	// unless the menu is open. When submit is set the submission time is returned.
	ReplaceSelections(ctx context.Context, token string, selections []model.Selection, submit bool) (*time.Time, error)
}

type repositoryImpl struct {
	selections    gRepo.Repository[model.Selection]
	details       gRepo.Repository[model.SelectionDetail]
	bookings      gRepo.Repository[bookingModel.Booking]
	items         gRepo.Repository[menuModel.ItemWithCategory]
	templateItems gRepo.Repository[menuModel.TemplateItem]
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Selection {
	return &repositoryImpl{
		selections:    gRepo.NewRepository[model.Selection](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:       gRepo.NewRepository[model.SelectionDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		bookings:      gRepo.NewRepository[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, bookingModel.FieldID, db, otel),
		items:         gRepo.NewRepository[menuModel.ItemWithCategory](menuModel.ItemEntityName, menuModel.ItemTableName, menuModel.FieldID, db, otel),
		templateItems: gRepo.NewRepository[menuModel.TemplateItem](menuModel.TemplateItemEntityName, menuModel.TemplateItemTableName, menuModel.FieldTemplateID, db, otel),
		db:            db,
		otel:          otel,
	}
}

func (r *repositoryImpl) ResolveToken(ctx context.Context, token string) (bookingModel.Booking, error) {
	return r.bookings.Get(ctx, shared.FilterByID(token, bookingModel.FieldMenuCustomerToken, bookingModel.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) OfferedItems(ctx context.Context, templateID *string) ([]menuModel.ItemWithCategory, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".planner.OfferedItems")
	defer scope.End()

	filter := gDto.And(gDto.Eq(menuModel.ItemTableName, menuModel.FieldActive, true))

	if templateID != nil {
		members, err := r.templateItems.GetAll(ctx, gDto.QueryParams{},
			shared.FilterByID(*templateID, menuModel.FieldTemplateID, menuModel.TemplateItemTableName), menuModel.FieldMenuItemID)
		if err != nil {
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to get template items: %w", err)
		}

		if len(members) == 0 {
			return []menuModel.ItemWithCategory{}, nil
		}

		ids := make([]string, len(members))
		for i, member := range members {
			ids[i] = member.MenuItemID
		}

		filter = gDto.And(gDto.In(menuModel.ItemTableName, menuModel.FieldID, ids))
	}

	items, err := r.items.GetAll(ctx, gDto.QueryParams{Order: menuOrder}, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get offered items: %w", err)
	}

	return items, nil
}

func (r *repositoryImpl) Selections(ctx context.Context, bookingID string) ([]model.SelectionDetail, error) {
	params := gDto.QueryParams{Order: menuOrder + ", menu_selections.session ASC NULLS FIRST"}

	return r.details.GetAll(ctx, params, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ReplaceSelections(ctx context.Context, token string, selections []model.Selection, submit bool) (*time.Time, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".planner.ReplaceSelections")
	defer scope.End()

	var submittedAt *time.Time

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var booking struct {
			ID     string `db:"id"`
			Status string `db:"status"`
		}

		err := tx.GetContext(ctx, &booking, lockByTokenQuery, token)
		if errors.Is(err, sql.ErrNoRows) {
			return bookingModel.ErrBookingNotFound
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return err //nolint:wrapcheck
		}

		if booking.Status != constant.BookingStatusMenuOpen {
			return bookingModel.ErrMenuLocked
		}

		if err = r.selections.DeleteTx(ctx, tx, shared.FilterByID(booking.ID, model.FieldBookingID, model.TableName)); err != nil {
			return err
		}

		for i := range selections {
			selections[i].BookingID = booking.ID
		}

		if err = r.selections.InsertBulkTx(ctx, tx, selections); err != nil {
			return err
		}

		if !submit {
			return nil
		}

		now := time.Now()

		if _, err = tx.ExecContext(ctx, submitMenuQuery, booking.ID, now); err != nil {
			logger.ErrorWithStack(err)

			return err //nolint:wrapcheck
		}

		submittedAt = &now

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to replace menu selections: %w", err)
	}

	return submittedAt, nil
}
