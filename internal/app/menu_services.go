package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
)

// menuService implements the MenuService interface for menu management
type menuService struct {
	categoryRepo menu.MenuCategoryRepository
	itemRepo     menu.MenuItemRepository
	modifierRepo menu.ModifierRepository
	mediaStore   menu.MediaStore
	logger       logger.Logger
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(
	categoryRepo menu.MenuCategoryRepository,
	itemRepo menu.MenuItemRepository,
	modifierRepo menu.ModifierRepository,
	mediaStore menu.MediaStore,
	logger logger.Logger,
) (menu.MenuService, error) {
	return &menuService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		modifierRepo: modifierRepo,
		mediaStore:   mediaStore,
		logger:       logger,
	}, nil
}

func (s *menuService) CreateCategory(ctx context.Context, category *menu.MenuCategory) (*menu.MenuCategory, error) {
	category.ID = uuid.NewString()
	category.IsActive = true
	category.CreatedAt = time.Now().UTC()

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *menuService) ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]*menu.MenuCategory, error) {
	return s.categoryRepo.ListByRestaurant(ctx, restaurantID, includeInactive)
}

func (s *menuService) UpdateCategory(ctx context.Context, category *menu.MenuCategory) (*menu.MenuCategory, error) {
	existing, err := s.categoryRepo.GetByID(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if existing.RestaurantID != category.RestaurantID {
		return nil, fmt.Errorf("menu category with ID %s not found", category.ID)
	}

	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateByID(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *menuService) DeleteCategory(ctx context.Context, restaurantID, categoryID string) error {
	existing, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if existing.RestaurantID != restaurantID {
		return fmt.Errorf("menu category with ID %s not found", categoryID)
	}
	return s.categoryRepo.DeleteByID(ctx, categoryID)
}

func (s *menuService) CreateItem(ctx context.Context, item *menu.MenuItem) (*menu.MenuItem, error) {
	if item.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *item.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("category does not exist: %w", err)
		}
		if category.RestaurantID != item.RestaurantID {
			return nil, fmt.Errorf("category belongs to a different restaurant")
		}
	}

	item.ID = uuid.NewString()
	if item.PreparationStation == "" {
		item.PreparationStation = menu.StationKitchen
	}
	item.CreatedAt = time.Now().UTC()

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) GetItem(ctx context.Context, restaurantID, itemID string) (*menu.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restaurantID {
		return nil, fmt.Errorf("menu item with ID %s not found", itemID)
	}
	return item, nil
}

func (s *menuService) ListItems(ctx context.Context, restaurantID string, query *menu.MenuItemQuery) ([]*menu.MenuItem, error) {
	if query == nil {
		query = menu.NewMenuItemQuery()
	}
	return s.itemRepo.List(ctx, restaurantID, query)
}

func (s *menuService) UpdateItem(ctx context.Context, item *menu.MenuItem) (*menu.MenuItem, error) {
	existing, err := s.GetItem(ctx, item.RestaurantID, item.ID)
	if err != nil {
		return nil, err
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.UpdateByID(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, restaurantID, itemID string) error {
	item, err := s.GetItem(ctx, restaurantID, itemID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" && s.mediaStore != nil {
		// The stored object is removed best effort.
		if err := s.mediaStore.Delete(ctx, imageObjectKey(restaurantID, itemID, item.ImageURL)); err != nil {
			s.logger.Warn("Failed to delete item image: ", err)
		}
	}

	return s.itemRepo.DeleteByID(ctx, itemID)
}

func (s *menuService) UploadItemImage(ctx context.Context, restaurantID, itemID string, file *multipart.FileHeader) (*menu.MenuItem, error) {
	if s.mediaStore == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}

	item, err := s.GetItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	objectKey := fmt.Sprintf("menu-items/%s/%s%s", restaurantID, itemID, ext)
	url, err := s.mediaStore.Upload(ctx, objectKey, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload item image: %w", err)
	}

	item.ImageURL = url
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.UpdateByID(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to record item image: %w", err)
	}
	return item, nil
}

func (s *menuService) CreateModifierGroup(ctx context.Context, group *menu.ModifierGroup) (*menu.ModifierGroup, error) {
	group.ID = uuid.NewString()
	group.IsActive = true
	if group.SelectionType == "" {
		group.SelectionType = menu.SelectionSingle
	}
	if group.MaxSelections == 0 {
		group.MaxSelections = 1
	}
	group.CreatedAt = time.Now().UTC()

	if err := s.modifierRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create modifier group: %w", err)
	}
	return group, nil
}

func (s *menuService) ListModifierGroups(ctx context.Context, restaurantID string) ([]*menu.ModifierGroup, error) {
	return s.modifierRepo.ListGroupsByRestaurant(ctx, restaurantID)
}

func (s *menuService) CreateModifier(ctx context.Context, modifier *menu.Modifier) (*menu.Modifier, error) {
	if _, err := s.modifierRepo.GetGroupByID(ctx, modifier.GroupID); err != nil {
		return nil, fmt.Errorf("modifier group does not exist: %w", err)
	}

	modifier.ID = uuid.NewString()
	modifier.IsAvailable = true
	modifier.CreatedAt = time.Now().UTC()

	if err := s.modifierRepo.CreateModifier(ctx, modifier); err != nil {
		return nil, fmt.Errorf("failed to create modifier: %w", err)
	}
	return modifier, nil
}

func (s *menuService) ListModifiers(ctx context.Context, groupID string) ([]*menu.Modifier, error) {
	return s.modifierRepo.ListModifiersByGroup(ctx, groupID)
}

func (s *menuService) LinkModifierGroup(ctx context.Context, restaurantID, itemID, groupID string) error {
	if _, err := s.GetItem(ctx, restaurantID, itemID); err != nil {
		return err
	}

	group, err := s.modifierRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.RestaurantID != restaurantID {
		return fmt.Errorf("modifier group with ID %s not found", groupID)
	}

	return s.modifierRepo.LinkItemGroup(ctx, itemID, groupID)
}

func (s *menuService) ItemModifierGroups(ctx context.Context, restaurantID, itemID string) ([]*menu.ModifierGroup, error) {
	if _, err := s.GetItem(ctx, restaurantID, itemID); err != nil {
		return nil, err
	}
	return s.modifierRepo.ListGroupsByItem(ctx, itemID)
}

func (s *menuService) AdjustStock(ctx context.Context, restaurantID, itemID string, delta int) (*menu.MenuItem, error) {
	item, err := s.GetItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if !item.TrackStock {
		return nil, fmt.Errorf("menu item %s does not track stock", itemID)
	}

	quantity := item.StockQuantity + delta
	if quantity < 0 {
		return nil, fmt.Errorf("stock adjustment would drop quantity below zero")
	}

	item.StockQuantity = quantity
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.UpdateByID(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return item, nil
}

func imageObjectKey(restaurantID, itemID, imageURL string) string {
	return fmt.Sprintf("menu-items/%s/%s%s", restaurantID, itemID, strings.ToLower(filepath.Ext(imageURL)))
}
