//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testRestaurantContext(w *httptest.ResponseRecorder) (*gin.Context, *tenants.Restaurant) {
	restaurant := &tenants.Restaurant{ID: "restaurant-123", Name: "Old Tbilisi", Slug: "old-tbilisi", IsActive: true}
	c, _ := gin.CreateTestContext(w)
	c.Set(ctxRestaurantKey, restaurant)
	return c, restaurant
}

func TestOrderHandler_Place_Success(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	order := &orders.Order{ID: "order-123", OrderNumber: "ORD-250101-0001", Status: orders.StatusPending}
	mockOrderService.On("Place", mock.Anything, mock.Anything).Return(order, nil)

	body := bytes.NewBufferString(`{"order_type":"takeaway","items":[{"menu_item_id":"item-123","quantity":2}]}`)
	req, _ := http.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Place(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ORD-250101-0001")
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_Place_InvalidBody_Error(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	req, _ := http.NewRequest("POST", "/orders", bytes.NewBufferString(`{"order_type":"takeaway"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Place(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestOrderHandler_Place_RejectedByService_Error(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	mockOrderService.On("Place", mock.Anything, mock.Anything).
		Return(nil, errors.New("menu item with ID item-123 is not available"))

	body := bytes.NewBufferString(`{"order_type":"dine_in","items":[{"menu_item_id":"item-123","quantity":1}]}`)
	req, _ := http.NewRequest("POST", "/orders", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Place(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_GetByID_Success(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	order := &orders.Order{ID: "order-123", OrderNumber: "ORD-250101-0001"}
	mockOrderService.On("GetByID", mock.Anything, "restaurant-123", "order-123").Return(order, nil)

	req, _ := http.NewRequest("GET", "/orders/order-123", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "order-123"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order-123")
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_GetByID_NotFound_Error(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	mockOrderService.On("GetByID", mock.Anything, "restaurant-123", "missing").
		Return(nil, errors.New("not found"))

	req, _ := http.NewRequest("GET", "/orders/missing", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_List_Success(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	order := &orders.Order{ID: "order-123", Status: orders.StatusPreparing}
	mockOrderService.On("List", mock.Anything, "restaurant-123", mock.Anything).
		Return([]*orders.Order{order}, nil)

	req, _ := http.NewRequest("GET", "/orders?status=preparing&limit=10", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order-123")
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_Transition_IllegalTransition_Error(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	mockOrderService.On("Transition", mock.Anything, "restaurant-123", "order-123", "served", mock.Anything, "").
		Return(nil, errors.New("cannot transition order from pending to served"))

	body := bytes.NewBufferString(`{"status":"served"}`)
	req, _ := http.NewRequest("POST", "/orders/order-123/transition", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "order-123"}}

	handler.Transition(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "cannot transition")
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_Cancel_Success(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	order := &orders.Order{ID: "order-123", Status: orders.StatusCancelled}
	mockOrderService.On("Cancel", mock.Anything, "restaurant-123", "order-123", mock.Anything, "changed my mind").
		Return(order, nil)

	body := bytes.NewBufferString(`{"reason":"changed my mind"}`)
	req, _ := http.NewRequest("POST", "/orders/order-123/cancel", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "order-123"}}

	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orders.StatusCancelled)
	mockOrderService.AssertExpectations(t)
}

func TestOrderHandler_History_Success(t *testing.T) {
	mockOrderService := new(MockOrderService)
	handler := NewOrderHandler(mockOrderService)

	change := &orders.StatusChange{ID: "change-123", ToStatus: orders.StatusConfirmed}
	mockOrderService.On("History", mock.Anything, "restaurant-123", "order-123").
		Return([]*orders.StatusChange{change}, nil)

	req, _ := http.NewRequest("GET", "/orders/order-123/history", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "order-123"}}

	handler.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orders.StatusConfirmed)
	mockOrderService.AssertExpectations(t)
}
