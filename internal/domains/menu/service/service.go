package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	"venue/internal/domains/menu/model"
	"venue/internal/domains/menu/model/dto"
	"venue/internal/domains/menu/repository"
	"venue/shared"
	"venue/shared/cache"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

const (
	cacheGetCategories = "menu:categories"
	cacheGetItems      = "menu:items"
	cacheGetTemplates  = "menu:templates"

	errCategoryNotFound = "menu category not found"
	errItemNotFound     = "menu item not found"
	errTemplateNotFound = "menu template not found"
	errItemInUse        = "menu item has selections, deactivate it instead"
	errUpdateEmpty      = "update request cannot be empty"
)

type Menu interface {
	GetCategories(ctx context.Context) (dto.GetCategoriesResponse, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	// DeleteCategory moves the category's items to uncategorized.
	DeleteCategory(ctx context.Context, id string) error

	GetItems(ctx context.Context, categoryID string) (dto.GetItemsResponse, error)
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) error
	// DeleteItem refuses items that any booking has selected.
	DeleteItem(ctx context.Context, id string) error

	GetTemplates(ctx context.Context) (dto.GetTemplatesResponse, error)
	GetTemplate(ctx context.Context, id string) (dto.TemplateResponse, error)
	CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest) (dto.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, req dto.UpdateTemplateRequest, id string) error
	DeleteTemplate(ctx context.Context, id string) error
}

type serviceImpl struct {
	categoryRepo repository.Category
	itemRepo     repository.Item
	templateRepo repository.Template
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(categoryRepo repository.Category, itemRepo repository.Item, templateRepo repository.Template,
	cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
) Menu {
	return &serviceImpl{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		templateRepo: templateRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetCategories(ctx context.Context) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetCategories")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetCategories, "all")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for menu categories")

		return res, nil
	}

	params := gDto.QueryParams{Order: fmt.Sprintf("%[1]s.%[2]s ASC NULLS LAST, %[1]s.%[3]s ASC",
		model.CategoryTableName, model.FieldSortOrder, model.FieldName)}

	categories, err := s.categoryRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu categories")

		return res, fmt.Errorf("failed to get menu categories: %w", err)
	}

	res.FromModels(categories)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	category := req.ToModel(username)

	if err = s.categoryRepo.Insert(ctx, category); err != nil {
		log.Error().Err(err).Msg("failed to create menu category")

		return res, fmt.Errorf("failed to create menu category: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetCategories)

	res.FromModel(category)

	return res, nil
}

func (s *serviceImpl) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.UpdateCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString(errUpdateEmpty)
	}

	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	if err = s.mustExist(ctx, s.categoryRepo.Exist, filter, errCategoryNotFound); err != nil {
		return err
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.categoryRepo.Update(ctx, shared.TransformFields(req, username), filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu category")

		return fmt.Errorf("failed to update menu category: %w", err)
	}

	s.invalidate(ctx, cacheGetCategories, cacheGetItems)

	return nil
}

func (s *serviceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	if err = s.mustExist(ctx, s.categoryRepo.Exist, filter, errCategoryNotFound); err != nil {
		return err
	}

	if err = s.categoryRepo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete menu category")

		return fmt.Errorf("failed to delete menu category: %w", err)
	}

	s.invalidate(ctx, cacheGetCategories, cacheGetItems)

	return nil
}

func (s *serviceImpl) GetItems(ctx context.Context, categoryID string) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetItems")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{}
	if categoryID != constant.Empty {
		filter = shared.FilterByID(categoryID, model.FieldCategoryID, model.ItemTableName)
	}

	params := gDto.QueryParams{Order: fmt.Sprintf("%[1]s.%[3]s ASC NULLS LAST, %[1]s.%[4]s ASC NULLS LAST, %[2]s.%[4]s ASC",
		model.CategoryTableName, model.ItemTableName, model.FieldSortOrder, model.FieldName)}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetItems, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for menu items")

		return res, nil
	}

	items, err := s.itemRepo.GetAllWithCategory(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(items)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.CreateItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item := req.ToModel(username)

	if err = s.checkCategory(ctx, item.CategoryID); err != nil {
		return res, err
	}

	if err = s.itemRepo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return res, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.invalidate(ctx, cacheGetItems)

	res.FromModel(model.ItemWithCategory{Item: item})

	return res, nil
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString(errUpdateEmpty)
	}

	filter := shared.FilterByID(id, model.FieldID, model.ItemTableName)

	if err = s.mustExist(ctx, s.itemRepo.Exist, filter, errItemNotFound); err != nil {
		return err
	}

	if req.CategoryID != nil && *req.CategoryID != constant.Empty {
		if err = s.checkCategory(ctx, req.CategoryID); err != nil {
			return err
		}
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.itemRepo.Update(ctx, req.ToUpdateFields(username), filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return fmt.Errorf("failed to update menu item: %w", err)
	}

	s.invalidate(ctx, cacheGetItems)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.ItemTableName)

	if err = s.mustExist(ctx, s.itemRepo.Exist, filter, errItemNotFound); err != nil {
		return err
	}

	inUse, err := s.itemRepo.InUse(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check menu item usage")

		return fmt.Errorf("failed to check menu item usage: %w", err)
	}

	if inUse {
		return failure.Conflict(errItemInUse)
	}

	if err = s.itemRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.invalidate(ctx, cacheGetItems, cacheGetTemplates)

	return nil
}

func (s *serviceImpl) GetTemplates(ctx context.Context) (res dto.GetTemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetTemplates")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetTemplates, "all")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for menu templates")

		return res, nil
	}

	templates, err := s.templateRepo.GetAll(ctx, gDto.QueryParams{Order: model.TemplateTableName + "." + model.FieldName + " ASC"}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu templates")

		return res, fmt.Errorf("failed to get menu templates: %w", err)
	}

	items, err := s.templateRepo.Items(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu template items")

		return res, fmt.Errorf("failed to get menu template items: %w", err)
	}

	res.FromModels(templates, items)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetTemplate(ctx context.Context, id string) (res dto.TemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.GetTemplate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	template, err := s.templateRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TemplateTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu template")

		return res, fmt.Errorf("failed to get menu template: %w", err)
	}

	if template.ID == constant.Empty {
		return res, failure.NotFound(errTemplateNotFound)
	}

	items, err := s.templateRepo.Items(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu template items")

		return res, fmt.Errorf("failed to get menu template items: %w", err)
	}

	res.FromModel(template, items)

	return res, nil
}

func (s *serviceImpl) CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest) (res dto.TemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.CreateTemplate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	template := req.ToModel(username)
	items := dto.TemplateItems(template.ID, req.ItemIDs)

	if err = s.checkItems(ctx, items); err != nil {
		return res, err
	}

	if err = s.templateRepo.CreateWithItems(ctx, template, items); err != nil {
		log.Error().Err(err).Msg("failed to create menu template")

		return res, fmt.Errorf("failed to create menu template: %w", err)
	}

	s.invalidate(ctx, cacheGetTemplates)

	res.FromModel(template, items)

	return res, nil
}

func (s *serviceImpl) UpdateTemplate(ctx context.Context, req dto.UpdateTemplateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.UpdateTemplate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString(errUpdateEmpty)
	}

	if err = s.mustExist(ctx, s.templateRepo.Exist, shared.FilterByID(id, model.FieldID, model.TemplateTableName), errTemplateNotFound); err != nil {
		return err
	}

	var items []model.TemplateItem

	if req.ItemIDs != nil {
		items = dto.TemplateItems(id, *req.ItemIDs)

		if err = s.checkItems(ctx, items); err != nil {
			return err
		}
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.templateRepo.UpdateWithItems(ctx, req.ToUpdateFields(username), id, items); err != nil {
		log.Error().Err(err).Msg("failed to update menu template")

		return fmt.Errorf("failed to update menu template: %w", err)
	}

	s.invalidate(ctx, cacheGetTemplates)

	return nil
}

func (s *serviceImpl) DeleteTemplate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.DeleteTemplate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TemplateTableName)

	if err = s.mustExist(ctx, s.templateRepo.Exist, filter, errTemplateNotFound); err != nil {
		return err
	}

	// bookings pointing at the template fall back to all active items (ON DELETE SET NULL)
	if err = s.templateRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu template")

		return fmt.Errorf("failed to delete menu template: %w", err)
	}

	s.invalidate(ctx, cacheGetTemplates)

	return nil
}

func (s *serviceImpl) mustExist(ctx context.Context, exist func(context.Context, gDto.FilterGroup) (bool, error),
	filter gDto.FilterGroup, notFound string,
) error {
	exists, err := exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", notFound).Msg("failed to check existence")

		return fmt.Errorf("failed to check existence: %w", err)
	}

	if !exists {
		return failure.NotFound(notFound)
	}

	return nil
}

func (s *serviceImpl) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}

	exists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(*categoryID, model.FieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu category exists")

		return fmt.Errorf("failed to check if menu category exists: %w", err)
	}

	if !exists {
		return failure.ValidationField(model.FieldCategoryID, errCategoryNotFound)
	}

	return nil
}

// checkItems rejects membership that names an unknown menu item.
func (s *serviceImpl) checkItems(ctx context.Context, items []model.TemplateItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.MenuItemID
	}

	count, err := s.itemRepo.Count(ctx, gDto.And(gDto.In(model.ItemTableName, model.FieldID, ids)))
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return fmt.Errorf("failed to count menu items: %w", err)
	}

	if count != len(ids) {
		return failure.ValidationField("menu_item_ids", "unknown menu item")
	}

	return nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save menu cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	c := context.WithoutCancel(ctx)

	for _, prefix := range prefixes {
		go shared.InvalidateCaches(c, s.cache, prefix)
	}
}
