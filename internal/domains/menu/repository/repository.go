package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/menu/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

const (
	uncategorizeItemsQuery = `UPDATE menu_items SET category_id = NULL, modified_at = NOW() WHERE category_id = $1`
	itemInUseQuery         = `SELECT EXISTS(SELECT 1 FROM menu_selections WHERE menu_item_id = $1)`
)

type Category interface {
	Insert(ctx context.Context, model model.Category) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Category, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	// Delete removes the category and moves its items to uncategorized in one transaction.
	Delete(ctx context.Context, id string) error
}

type Item interface {
	Insert(ctx context.Context, model model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Item, error)
	GetAllWithCategory(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ItemWithCategory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// InUse reports whether any booking has selected the item.
	InUse(ctx context.Context, id string) (bool, error)
}

type Template interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Template, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Template, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// Items returns membership rows ordered by position. An empty templateIDs returns every row.
	Items(ctx context.Context, templateIDs ...string) ([]model.TemplateItem, error)
	CreateWithItems(ctx context.Context, template model.Template, items []model.TemplateItem) error
	// UpdateWithItems applies req to the template and, when items is non-nil,
	// replaces its membership.
	UpdateWithItems(ctx context.Context, req map[string]any, id string, items []model.TemplateItem) error
}

type categoryImpl struct {
	gRepo.Repository[model.Category]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCategory(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryImpl{
		Repository: gRepo.NewRepository[model.Category](model.CategoryEntityName, model.CategoryTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *categoryImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".menu.category.Delete")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, uncategorizeItemsQuery)

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, uncategorizeItemsQuery, id); err != nil {
			logger.ErrorWithStack(err)

			return err //nolint:wrapcheck
		}

		return r.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.CategoryTableName))
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete menu category: %w", err)
	}

	return nil
}

type itemImpl struct {
	gRepo.Repository[model.Item]
	withCategory gRepo.Repository[model.ItemWithCategory]
	db           *postgres.Connection
	otel         otel.Otel
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemImpl{
		Repository:   gRepo.NewRepository[model.Item](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
		withCategory: gRepo.NewRepository[model.ItemWithCategory](model.ItemEntityName, model.ItemTableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

func (r *itemImpl) GetAllWithCategory(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ItemWithCategory, error) {
	return r.withCategory.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *itemImpl) InUse(ctx context.Context, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".menu.item.InUse")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, itemInUseQuery)

	var inUse bool

	if err := r.db.Read.GetContext(ctx, &inUse, itemInUseQuery, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check menu item usage: %w", err)
	}

	return inUse, nil
}

type templateImpl struct {
	gRepo.Repository[model.Template]
	items gRepo.Repository[model.TemplateItem]
	db    *postgres.Connection
	otel  otel.Otel
}

func NewTemplate(db *postgres.Connection, otel otel.Otel) Template {
	return &templateImpl{
		Repository: gRepo.NewRepository[model.Template](model.TemplateEntityName, model.TemplateTableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.TemplateItem](model.TemplateItemEntityName, model.TemplateItemTableName, model.FieldTemplateID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *templateImpl) Items(ctx context.Context, templateIDs ...string) ([]model.TemplateItem, error) {
	filter := gDto.FilterGroup{}
	if len(templateIDs) > 0 {
		filter.Add(gDto.In(model.TemplateItemTableName, model.FieldTemplateID, templateIDs))
	}

	params := gDto.QueryParams{Order: fmt.Sprintf("%[1]s.%[2]s ASC, %[1]s.%[3]s ASC",
		model.TemplateItemTableName, model.FieldTemplateID, model.FieldPosition)}

	return r.items.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *templateImpl) CreateWithItems(ctx context.Context, template model.Template, items []model.TemplateItem) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".menu.template.CreateWithItems")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, template); err != nil {
			return err
		}

		return r.items.InsertBulkTx(ctx, tx, items)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to create menu template: %w", err)
	}

	return nil
}

func (r *templateImpl) UpdateWithItems(ctx context.Context, req map[string]any, id string, items []model.TemplateItem) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".menu.template.UpdateWithItems")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, req, shared.FilterByID(id, model.FieldID, model.TemplateTableName)); err != nil {
			return err
		}

		if items == nil {
			return nil
		}

		if err := r.items.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldTemplateID, model.TemplateItemTableName)); err != nil {
			return err
		}

		return r.items.InsertBulkTx(ctx, tx, items)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update menu template: %w", err)
	}

	return nil
}
