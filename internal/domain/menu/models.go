package menu

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Preparation station constants
const (
	StationKitchen = "kitchen"
	StationBar     = "bar"
	StationBoth    = "both"
)

// Modifier group selection type constants
const (
	SelectionSingle   = "single"
	SelectionMultiple = "multiple"
)

// KnownAllergens lists the allergen codes accepted on menu items.
var KnownAllergens = []string{
	"gluten", "dairy", "eggs", "fish", "shellfish",
	"tree_nuts", "peanuts", "soy", "sesame",
}

// MenuCategory groups items on the menu (e.g. Appetizers, Desserts).
type MenuCategory struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	Name         string `validate:"required,min=1,max=100"`
	Description  string
	ImageURL     string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating MenuCategory struct
func (c *MenuCategory) Validate() error {
	return validateStruct(c)
}

// MenuItem is a sellable dish or drink.
type MenuItem struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	CategoryID   *string
	Name         string `validate:"required,min=1,max=200"`
	Description  string
	Price        decimal.Decimal
	ImageURL     string
	IsAvailable  bool
	IsFeatured   bool
	DisplayOrder int

	PreparationMinutes int    `validate:"omitempty,min=0"`
	PreparationStation string `validate:"required,oneof=kitchen bar both"`

	Calories      *int
	Allergens     []string
	IsVegetarian  bool
	IsVegan       bool
	IsGlutenFree  bool
	IsSpicy       bool
	SpicyLevel    int `validate:"min=0,max=5"`
	TrackStock    bool
	StockQuantity int `validate:"omitempty,min=0"`

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating MenuItem struct
func (i *MenuItem) Validate() error {
	if i.Price.IsNegative() {
		return fmt.Errorf("validation failed: price must not be negative")
	}
	for _, allergen := range i.Allergens {
		if !isKnownAllergen(allergen) {
			return fmt.Errorf("validation failed: unknown allergen %q", allergen)
		}
	}
	return validateStruct(i)
}

// InStock reports whether the item can be ordered. Items without
// inventory tracking are always in stock.
func (i *MenuItem) InStock() bool {
	if !i.TrackStock {
		return true
	}
	return i.StockQuantity > 0
}

// DietaryTags returns the dietary labels shown next to the item.
func (i *MenuItem) DietaryTags() []string {
	var tags []string
	if i.IsVegetarian {
		tags = append(tags, "vegetarian")
	}
	if i.IsVegan {
		tags = append(tags, "vegan")
	}
	if i.IsGlutenFree {
		tags = append(tags, "gluten_free")
	}
	if i.IsSpicy {
		tags = append(tags, "spicy")
	}
	return tags
}

// ModifierGroup is a set of options customizing an item (e.g. Size).
type ModifierGroup struct {
	ID            string `validate:"required,uuid4"`
	RestaurantID  string `validate:"required,uuid4"`
	Name          string `validate:"required,min=1,max=100"`
	Description   string
	SelectionType string `validate:"required,oneof=single multiple"`
	MinSelections int    `validate:"min=0"`
	MaxSelections int    `validate:"min=1"`
	IsRequired    bool
	DisplayOrder  int
	IsActive      bool
	CreatedAt     time.Time `validate:"required"`
	UpdatedAt     time.Time
}

// Validate for validating ModifierGroup struct
func (g *ModifierGroup) Validate() error {
	if g.MinSelections > g.MaxSelections {
		return fmt.Errorf("validation failed: min selections %d exceeds max %d", g.MinSelections, g.MaxSelections)
	}
	return validateStruct(g)
}

// Modifier is one selectable option within a group.
type Modifier struct {
	ID              string `validate:"required,uuid4"`
	GroupID         string `validate:"required,uuid4"`
	Name            string `validate:"required,min=1,max=100"`
	PriceAdjustment decimal.Decimal
	IsAvailable     bool
	IsDefault       bool
	DisplayOrder    int
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time
}

// Validate for validating Modifier struct
func (m *Modifier) Validate() error {
	return validateStruct(m)
}

// MenuItemQuery is a filter for listing menu items.
type MenuItemQuery struct {
	CategoryID    string
	OnlyAvailable bool
	OnlyFeatured  bool
	Station       string `validate:"omitempty,oneof=kitchen bar both"`

	Limit     int    `validate:"omitempty,min=1,max=200"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=display_order name price created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewMenuItemQuery creates a MenuItemQuery with defaults.
func NewMenuItemQuery() *MenuItemQuery {
	return &MenuItemQuery{
		Limit:     100,
		SortBy:    "display_order",
		SortOrder: "asc",
	}
}

// Validate for validating MenuItemQuery struct
func (q *MenuItemQuery) Validate() error {
	return validateStruct(q)
}

func isKnownAllergen(code string) bool {
	for _, known := range KnownAllergens {
		if known == code {
			return true
		}
	}
	return false
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
