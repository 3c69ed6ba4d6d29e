//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuHandler_CreateCategory_Success(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	category := &menu.MenuCategory{ID: "category-123", Name: "Khinkali", IsActive: true}
	mockMenuService.On("CreateCategory", mock.Anything, mock.Anything).Return(category, nil)

	body := bytes.NewBufferString(`{"name":"Khinkali"}`)
	req, _ := http.NewRequest("POST", "/menu/categories", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.CreateCategory(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "category-123")
	mockMenuService.AssertExpectations(t)
}

func TestMenuHandler_ListItems_Success(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	item := &menu.MenuItem{ID: "item-123", Name: "Khachapuri", Price: decimal.NewFromInt(18), IsAvailable: true}
	mockMenuService.On("ListItems", mock.Anything, "restaurant-123", mock.Anything).
		Return([]*menu.MenuItem{item}, nil)

	req, _ := http.NewRequest("GET", "/menu/items?available=true&limit=20", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.ListItems(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Khachapuri")
	mockMenuService.AssertExpectations(t)
}

func TestMenuHandler_ListItems_ValidationError(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	req, _ := http.NewRequest("GET", "/menu/items?sortOrder=invalid", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.ListItems(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenuHandler_GetItem_NotFound_Error(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	mockMenuService.On("GetItem", mock.Anything, "restaurant-123", "missing").
		Return(nil, errors.New("not found"))

	req, _ := http.NewRequest("GET", "/menu/items/missing", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetItem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMenuService.AssertExpectations(t)
}

func TestMenuHandler_AdjustStock_Success(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	item := &menu.MenuItem{ID: "item-123", Name: "Khachapuri", TrackStock: true, StockQuantity: 7}
	mockMenuService.On("AdjustStock", mock.Anything, "restaurant-123", "item-123", -3).Return(item, nil)

	body := bytes.NewBufferString(`{"delta":-3}`)
	req, _ := http.NewRequest("POST", "/menu/items/item-123/stock", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "item-123"}}

	handler.AdjustStock(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stock_quantity":7`)
	mockMenuService.AssertExpectations(t)
}

func TestMenuHandler_AdjustStock_Untracked_Error(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	mockMenuService.On("AdjustStock", mock.Anything, "restaurant-123", "item-123", 5).
		Return(nil, errors.New("menu item item-123 does not track stock"))

	body := bytes.NewBufferString(`{"delta":5}`)
	req, _ := http.NewRequest("POST", "/menu/items/item-123/stock", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "item-123"}}

	handler.AdjustStock(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not track stock")
	mockMenuService.AssertExpectations(t)
}

func TestMenuHandler_LinkModifierGroup_Success(t *testing.T) {
	mockMenuService := new(MockMenuService)
	handler := NewMenuHandler(mockMenuService)

	mockMenuService.On("LinkModifierGroup", mock.Anything, "restaurant-123", "item-123", "group-456").Return(nil)

	req, _ := http.NewRequest("POST", "/menu/items/item-123/modifier-groups/group-456", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{
		gin.Param{Key: "id", Value: "item-123"},
		gin.Param{Key: "groupId", Value: "group-456"},
	}

	handler.LinkModifierGroup(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockMenuService.AssertExpectations(t)
}
