//go:build unit
// +build unit

package menu

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validItem() *MenuItem {
	return &MenuItem{
		ID:                 uuid.NewString(),
		RestaurantID:       uuid.NewString(),
		Name:               "Adjarian Khachapuri",
		Price:              decimal.NewFromInt(18),
		IsAvailable:        true,
		PreparationStation: StationKitchen,
		CreatedAt:          time.Now().UTC(),
	}
}

func TestMenuItem_Validate(t *testing.T) {
	item := validItem()
	assert.Nil(t, item.Validate())

	item.Price = decimal.NewFromInt(-1)
	err := item.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "price must not be negative")
}

func TestMenuItem_Validate_UnknownAllergen(t *testing.T) {
	item := validItem()
	item.Allergens = []string{"dairy", "kryptonite"}

	err := item.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "kryptonite")
}

func TestMenuItem_InStock(t *testing.T) {
	item := validItem()
	assert.True(t, item.InStock(), "untracked items are always in stock")

	item.TrackStock = true
	item.StockQuantity = 0
	assert.False(t, item.InStock())

	item.StockQuantity = 3
	assert.True(t, item.InStock())
}

func TestMenuItem_DietaryTags(t *testing.T) {
	item := validItem()
	assert.Empty(t, item.DietaryTags())

	item.IsVegan = true
	item.IsGlutenFree = true
	tags := item.DietaryTags()
	assert.Contains(t, tags, "vegan")
	assert.Contains(t, tags, "gluten_free")
	assert.NotContains(t, tags, "vegetarian")
}

func TestMenuCategory_Validate(t *testing.T) {
	category := &MenuCategory{
		ID:           uuid.NewString(),
		RestaurantID: uuid.NewString(),
		Name:         "Khinkali",
		CreatedAt:    time.Now().UTC(),
	}
	assert.Nil(t, category.Validate())

	category.Name = ""
	err := category.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
}

func TestModifier_Validate(t *testing.T) {
	modifier := &Modifier{
		ID:              uuid.NewString(),
		GroupID:         uuid.NewString(),
		Name:            "Extra cheese",
		PriceAdjustment: decimal.NewFromInt(3),
		CreatedAt:       time.Now().UTC(),
	}
	assert.Nil(t, modifier.Validate())
}
