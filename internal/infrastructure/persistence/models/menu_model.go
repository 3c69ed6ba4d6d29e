package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/shopspring/decimal"
)

// MenuCategoryModel is the GORM database model for menu categories
type MenuCategoryModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	RestaurantID string `gorm:"not null;index;type:uuid"`
	Name         string `gorm:"not null;type:varchar(100)"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"type:varchar(500)"`
	DisplayOrder int    `gorm:"index"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (MenuCategoryModel) TableName() string {
	return "menu_categories"
}

// ToDomain converts GORM model to domain entity
func (m *MenuCategoryModel) ToDomain() *menu.MenuCategory {
	return &menu.MenuCategory{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MenuCategoryModel) FromDomain(c *menu.MenuCategory) {
	m.ID = c.ID
	m.RestaurantID = c.RestaurantID
	m.Name = c.Name
	m.Description = c.Description
	m.ImageURL = c.ImageURL
	m.DisplayOrder = c.DisplayOrder
	m.IsActive = c.IsActive
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// MenuItemModel is the GORM database model for menu items
type MenuItemModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	RestaurantID string          `gorm:"not null;index;type:uuid"`
	CategoryID   *string         `gorm:"index;type:uuid"`
	Name         string          `gorm:"not null;type:varchar(200)"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	ImageURL     string          `gorm:"type:varchar(500)"`
	IsAvailable  bool            `gorm:"not null;default:true;index"`
	IsFeatured   bool
	DisplayOrder int

	PreparationMinutes int
	PreparationStation string `gorm:"not null;type:varchar(10);default:kitchen"`

	Calories      *int
	Allergens     string `gorm:"type:text"`
	IsVegetarian  bool
	IsVegan       bool
	IsGlutenFree  bool
	IsSpicy       bool
	SpicyLevel    int
	TrackStock    bool
	StockQuantity int

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToDomain converts GORM model to domain entity
func (m *MenuItemModel) ToDomain() *menu.MenuItem {
	return &menu.MenuItem{
		ID:                 m.ID,
		RestaurantID:       m.RestaurantID,
		CategoryID:         m.CategoryID,
		Name:               m.Name,
		Description:        m.Description,
		Price:              m.Price,
		ImageURL:           m.ImageURL,
		IsAvailable:        m.IsAvailable,
		IsFeatured:         m.IsFeatured,
		DisplayOrder:       m.DisplayOrder,
		PreparationMinutes: m.PreparationMinutes,
		PreparationStation: m.PreparationStation,
		Calories:           m.Calories,
		Allergens:          fromJSONStrings(m.Allergens),
		IsVegetarian:       m.IsVegetarian,
		IsVegan:            m.IsVegan,
		IsGlutenFree:       m.IsGlutenFree,
		IsSpicy:            m.IsSpicy,
		SpicyLevel:         m.SpicyLevel,
		TrackStock:         m.TrackStock,
		StockQuantity:      m.StockQuantity,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MenuItemModel) FromDomain(i *menu.MenuItem) {
	m.ID = i.ID
	m.RestaurantID = i.RestaurantID
	m.CategoryID = i.CategoryID
	m.Name = i.Name
	m.Description = i.Description
	m.Price = i.Price
	m.ImageURL = i.ImageURL
	m.IsAvailable = i.IsAvailable
	m.IsFeatured = i.IsFeatured
	m.DisplayOrder = i.DisplayOrder
	m.PreparationMinutes = i.PreparationMinutes
	m.PreparationStation = i.PreparationStation
	m.Calories = i.Calories
	m.Allergens = toJSON(i.Allergens)
	m.IsVegetarian = i.IsVegetarian
	m.IsVegan = i.IsVegan
	m.IsGlutenFree = i.IsGlutenFree
	m.IsSpicy = i.IsSpicy
	m.SpicyLevel = i.SpicyLevel
	m.TrackStock = i.TrackStock
	m.StockQuantity = i.StockQuantity
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}

// ModifierGroupModel is the GORM database model for modifier groups
type ModifierGroupModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	RestaurantID  string `gorm:"not null;index;type:uuid"`
	Name          string `gorm:"not null;type:varchar(100)"`
	Description   string `gorm:"type:text"`
	SelectionType string `gorm:"not null;type:varchar(10);default:single"`
	MinSelections int
	MaxSelections int `gorm:"not null;default:1"`
	IsRequired    bool
	DisplayOrder  int
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ModifierGroupModel) TableName() string {
	return "modifier_groups"
}

// ToDomain converts GORM model to domain entity
func (m *ModifierGroupModel) ToDomain() *menu.ModifierGroup {
	return &menu.ModifierGroup{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		Name:          m.Name,
		Description:   m.Description,
		SelectionType: m.SelectionType,
		MinSelections: m.MinSelections,
		MaxSelections: m.MaxSelections,
		IsRequired:    m.IsRequired,
		DisplayOrder:  m.DisplayOrder,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ModifierGroupModel) FromDomain(g *menu.ModifierGroup) {
	m.ID = g.ID
	m.RestaurantID = g.RestaurantID
	m.Name = g.Name
	m.Description = g.Description
	m.SelectionType = g.SelectionType
	m.MinSelections = g.MinSelections
	m.MaxSelections = g.MaxSelections
	m.IsRequired = g.IsRequired
	m.DisplayOrder = g.DisplayOrder
	m.IsActive = g.IsActive
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
}

// ModifierModel is the GORM database model for modifiers
type ModifierModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	GroupID         string          `gorm:"not null;index;type:uuid"`
	Name            string          `gorm:"not null;type:varchar(100)"`
	PriceAdjustment decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsAvailable     bool            `gorm:"not null;default:true"`
	IsDefault       bool
	DisplayOrder    int
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (ModifierModel) TableName() string {
	return "modifiers"
}

// ToDomain converts GORM model to domain entity
func (m *ModifierModel) ToDomain() *menu.Modifier {
	return &menu.Modifier{
		ID:              m.ID,
		GroupID:         m.GroupID,
		Name:            m.Name,
		PriceAdjustment: m.PriceAdjustment,
		IsAvailable:     m.IsAvailable,
		IsDefault:       m.IsDefault,
		DisplayOrder:    m.DisplayOrder,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ModifierModel) FromDomain(mod *menu.Modifier) {
	m.ID = mod.ID
	m.GroupID = mod.GroupID
	m.Name = mod.Name
	m.PriceAdjustment = mod.PriceAdjustment
	m.IsAvailable = mod.IsAvailable
	m.IsDefault = mod.IsDefault
	m.DisplayOrder = mod.DisplayOrder
	m.CreatedAt = mod.CreatedAt
	m.UpdatedAt = mod.UpdatedAt
}

// MenuItemModifierGroupModel links a menu item to a modifier group
type MenuItemModifierGroupModel struct {
	MenuItemID      string `gorm:"primaryKey;type:uuid"`
	ModifierGroupID string `gorm:"primaryKey;type:uuid"`
}

// TableName specifies the table name for GORM
func (MenuItemModifierGroupModel) TableName() string {
	return "menu_item_modifier_groups"
}
