package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMenuCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMenuCategoryRepository creates a new GORM-based MenuCategoryRepository implementation
func NewGormMenuCategoryRepository(db *gorm.DB, logger logger.Logger) (menu.MenuCategoryRepository, error) {
	return &gormMenuCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMenuCategoryRepository) Create(ctx context.Context, category *menu.MenuCategory) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MenuCategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create menu category: %w", err)
	}

	r.logger.Info("Created menu category with id ", category.ID)
	return nil
}

func (r *gormMenuCategoryRepository) GetByID(ctx context.Context, categoryID string) (*menu.MenuCategory, error) {
	var model models.MenuCategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu category with ID %s not found", categoryID)
		}
		return nil, fmt.Errorf("failed to fetch menu category: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMenuCategoryRepository) ListByRestaurant(ctx context.Context, restaurantID string, includeInactive bool) ([]*menu.MenuCategory, error) {
	var modelList []*models.MenuCategoryModel
	dbQuery := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if !includeInactive {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}

	if err := dbQuery.Order("display_order asc, name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch menu categories: %w", err)
	}

	domainList := make([]*menu.MenuCategory, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormMenuCategoryRepository) UpdateByID(ctx context.Context, category *menu.MenuCategory) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MenuCategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update menu category: %w", err)
	}

	r.logger.Info("Updated menu category with id ", category.ID)
	return nil
}

func (r *gormMenuCategoryRepository) DeleteByID(ctx context.Context, categoryID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", categoryID).Delete(&models.MenuCategoryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete menu category: %w", err)
	}

	r.logger.Info("Deleted menu category with id ", categoryID)
	return nil
}

type gormMenuItemRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMenuItemRepository creates a new GORM-based MenuItemRepository implementation
func NewGormMenuItemRepository(db *gorm.DB, logger logger.Logger) (menu.MenuItemRepository, error) {
	return &gormMenuItemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMenuItemRepository) Create(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MenuItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Info("Created menu item with id ", item.ID)
	return nil
}

func (r *gormMenuItemRepository) GetByID(ctx context.Context, itemID string) (*menu.MenuItem, error) {
	var model models.MenuItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item with ID %s not found", itemID)
		}
		return nil, fmt.Errorf("failed to fetch menu item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMenuItemRepository) List(ctx context.Context, restaurantID string, query *menu.MenuItemQuery) ([]*menu.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.MenuItemModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.MenuItemModel{}).
		Where("restaurant_id = ?", restaurantID)

	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.OnlyAvailable {
		dbQuery = dbQuery.Where("is_available = ?", true)
	}
	if query.OnlyFeatured {
		dbQuery = dbQuery.Where("is_featured = ?", true)
	}
	if query.Station != "" {
		dbQuery = dbQuery.Where("preparation_station = ?", query.Station)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}

	domainList := make([]*menu.MenuItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormMenuItemRepository) UpdateByID(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MenuItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	r.logger.Info("Updated menu item with id ", item.ID)
	return nil
}

func (r *gormMenuItemRepository) DeleteByID(ctx context.Context, itemID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.MenuItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	r.logger.Info("Deleted menu item with id ", itemID)
	return nil
}

type gormModifierRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormModifierRepository creates a new GORM-based ModifierRepository implementation
func NewGormModifierRepository(db *gorm.DB, logger logger.Logger) (menu.ModifierRepository, error) {
	return &gormModifierRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormModifierRepository) CreateGroup(ctx context.Context, group *menu.ModifierGroup) error {
	if err := group.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ModifierGroupModel{}
	model.FromDomain(group)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create modifier group: %w", err)
	}

	r.logger.Info("Created modifier group with id ", group.ID)
	return nil
}

func (r *gormModifierRepository) GetGroupByID(ctx context.Context, groupID string) (*menu.ModifierGroup, error) {
	var model models.ModifierGroupModel
	if err := r.db.WithContext(ctx).Where("id = ?", groupID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("modifier group with ID %s not found", groupID)
		}
		return nil, fmt.Errorf("failed to fetch modifier group: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormModifierRepository) ListGroupsByRestaurant(ctx context.Context, restaurantID string) ([]*menu.ModifierGroup, error) {
	var modelList []*models.ModifierGroupModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("display_order asc, name asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch modifier groups: %w", err)
	}

	domainList := make([]*menu.ModifierGroup, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormModifierRepository) CreateModifier(ctx context.Context, modifier *menu.Modifier) error {
	if err := modifier.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ModifierModel{}
	model.FromDomain(modifier)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create modifier: %w", err)
	}

	r.logger.Info("Created modifier with id ", modifier.ID)
	return nil
}

func (r *gormModifierRepository) GetModifierByID(ctx context.Context, modifierID string) (*menu.Modifier, error) {
	var model models.ModifierModel
	if err := r.db.WithContext(ctx).Where("id = ?", modifierID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("modifier with ID %s not found", modifierID)
		}
		return nil, fmt.Errorf("failed to fetch modifier: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormModifierRepository) ListModifiersByGroup(ctx context.Context, groupID string) ([]*menu.Modifier, error) {
	var modelList []*models.ModifierModel
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("display_order asc, name asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch modifiers: %w", err)
	}

	domainList := make([]*menu.Modifier, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormModifierRepository) LinkItemGroup(ctx context.Context, itemID, groupID string) error {
	link := &models.MenuItemModifierGroupModel{
		MenuItemID:      itemID,
		ModifierGroupID: groupID,
	}

	// FirstOrCreate keeps linking idempotent.
	if err := r.db.WithContext(ctx).
		Where("menu_item_id = ? AND modifier_group_id = ?", itemID, groupID).
		FirstOrCreate(link).Error; err != nil {
		return fmt.Errorf("failed to link modifier group: %w", err)
	}

	return nil
}

func (r *gormModifierRepository) ListGroupsByItem(ctx context.Context, itemID string) ([]*menu.ModifierGroup, error) {
	var modelList []*models.ModifierGroupModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN menu_item_modifier_groups ON menu_item_modifier_groups.modifier_group_id = modifier_groups.id").
		Where("menu_item_modifier_groups.menu_item_id = ?", itemID).
		Order("modifier_groups.display_order asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch item modifier groups: %w", err)
	}

	domainList := make([]*menu.ModifierGroup, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
