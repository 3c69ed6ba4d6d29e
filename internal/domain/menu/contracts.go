package menu

import (
	"context"
	"mime/multipart"
)

// MenuService manages a restaurant's menu.
type MenuService interface {
	// Categories
	CreateCategory(ctx context.Context, category *MenuCategory) (*MenuCategory, error)
	ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]*MenuCategory, error)
	UpdateCategory(ctx context.Context, category *MenuCategory) (*MenuCategory, error)
	DeleteCategory(ctx context.Context, restaurantID, categoryID string) error

	// Items
	CreateItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	GetItem(ctx context.Context, restaurantID, itemID string) (*MenuItem, error)
	ListItems(ctx context.Context, restaurantID string, query *MenuItemQuery) ([]*MenuItem, error)
	UpdateItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	DeleteItem(ctx context.Context, restaurantID, itemID string) error

	// UploadItemImage stores the uploaded image in the media store and
	// records its URL on the item.
	UploadItemImage(ctx context.Context, restaurantID, itemID string, file *multipart.FileHeader) (*MenuItem, error)

	// Modifier groups and modifiers
	CreateModifierGroup(ctx context.Context, group *ModifierGroup) (*ModifierGroup, error)
	ListModifierGroups(ctx context.Context, restaurantID string) ([]*ModifierGroup, error)
	CreateModifier(ctx context.Context, modifier *Modifier) (*Modifier, error)
	ListModifiers(ctx context.Context, groupID string) ([]*Modifier, error)
	LinkModifierGroup(ctx context.Context, restaurantID, itemID, groupID string) error
	ItemModifierGroups(ctx context.Context, restaurantID, itemID string) ([]*ModifierGroup, error)

	// AdjustStock applies a stock delta to an inventory-tracked item.
	AdjustStock(ctx context.Context, restaurantID, itemID string, delta int) (*MenuItem, error)
}

// MenuCategoryRepository defines the interface for MenuCategory-related operations
type MenuCategoryRepository interface {
	Create(ctx context.Context, category *MenuCategory) error
	GetByID(ctx context.Context, categoryID string) (*MenuCategory, error)
	ListByRestaurant(ctx context.Context, restaurantID string, includeInactive bool) ([]*MenuCategory, error)
	UpdateByID(ctx context.Context, category *MenuCategory) error
	DeleteByID(ctx context.Context, categoryID string) error
}

// MenuItemRepository defines the interface for MenuItem-related operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	GetByID(ctx context.Context, itemID string) (*MenuItem, error)
	List(ctx context.Context, restaurantID string, query *MenuItemQuery) ([]*MenuItem, error)
	UpdateByID(ctx context.Context, item *MenuItem) error
	DeleteByID(ctx context.Context, itemID string) error
}

// ModifierRepository defines the interface for modifier-related operations
type ModifierRepository interface {
	CreateGroup(ctx context.Context, group *ModifierGroup) error
	GetGroupByID(ctx context.Context, groupID string) (*ModifierGroup, error)
	ListGroupsByRestaurant(ctx context.Context, restaurantID string) ([]*ModifierGroup, error)
	CreateModifier(ctx context.Context, modifier *Modifier) error
	GetModifierByID(ctx context.Context, modifierID string) (*Modifier, error)
	ListModifiersByGroup(ctx context.Context, groupID string) ([]*Modifier, error)
	LinkItemGroup(ctx context.Context, itemID, groupID string) error
	ListGroupsByItem(ctx context.Context, itemID string) ([]*ModifierGroup, error)
}

// MediaStore is an interface for interacting with object storage for
// uploaded media.
type MediaStore interface {
	// Upload stores the file under the given object key and returns the
	// public URL.
	Upload(ctx context.Context, objectKey string, file *multipart.FileHeader) (string, error)

	// Delete removes an object by key.
	Delete(ctx context.Context, objectKey string) error
}
