//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestMiddleware() (*Middleware, *MockRestaurantService, *MockStaffService, *MockTokenIssuer) {
	mockRestaurantService := new(MockRestaurantService)
	mockStaffService := new(MockStaffService)
	mockTokenIssuer := new(MockTokenIssuer)
	m := NewMiddleware(mockRestaurantService, mockStaffService, mockTokenIssuer, "dine.ge")
	return m, mockRestaurantService, mockStaffService, mockTokenIssuer
}

func TestMiddleware_ResolveTenant_Header_Success(t *testing.T) {
	m, mockRestaurantService, _, _ := newTestMiddleware()

	restaurant := &tenants.Restaurant{ID: "restaurant-123", Slug: "old-tbilisi", IsActive: true}
	mockRestaurantService.On("GetBySlug", mock.Anything, "old-tbilisi").Return(restaurant, nil)

	req, _ := http.NewRequest("GET", "/restaurant", nil)
	req.Header.Set("X-Restaurant", "old-tbilisi")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.ResolveTenant()(c)

	resolved := currentRestaurant(c)
	assert.NotNil(t, resolved)
	assert.Equal(t, "restaurant-123", resolved.ID)
	mockRestaurantService.AssertExpectations(t)
}

func TestMiddleware_ResolveTenant_Subdomain_Success(t *testing.T) {
	m, mockRestaurantService, _, _ := newTestMiddleware()

	restaurant := &tenants.Restaurant{ID: "restaurant-123", Slug: "old-tbilisi", IsActive: true}
	mockRestaurantService.On("GetBySlug", mock.Anything, "old-tbilisi").Return(restaurant, nil)

	req, _ := http.NewRequest("GET", "/restaurant", nil)
	req.Host = "old-tbilisi.dine.ge:8080"

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.ResolveTenant()(c)

	resolved := currentRestaurant(c)
	assert.NotNil(t, resolved)
	mockRestaurantService.AssertExpectations(t)
}

func TestMiddleware_ResolveTenant_ReservedSubdomain_Error(t *testing.T) {
	m, _, _, _ := newTestMiddleware()

	req, _ := http.NewRequest("GET", "/restaurant", nil)
	req.Host = "www.dine.ge"

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.ResolveTenant()(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "restaurant not found")
}

func TestMiddleware_ResolveTenant_UnknownSlug_Error(t *testing.T) {
	m, mockRestaurantService, _, _ := newTestMiddleware()

	mockRestaurantService.On("GetBySlug", mock.Anything, "ghost").Return(nil, errors.New("not found"))

	req, _ := http.NewRequest("GET", "/restaurant", nil)
	req.Header.Set("X-Restaurant", "ghost")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.ResolveTenant()(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRestaurantService.AssertExpectations(t)
}

func TestMiddleware_RequireAuth_ValidToken_Success(t *testing.T) {
	m, _, _, mockTokenIssuer := newTestMiddleware()

	mockTokenIssuer.On("VerifyAccess", "valid-token").Return("user-123", nil)

	req, _ := http.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.RequireAuth()(c)

	userID, ok := currentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "user-123", userID)
	mockTokenIssuer.AssertExpectations(t)
}

func TestMiddleware_RequireAuth_MissingToken_Error(t *testing.T) {
	m, _, _, _ := newTestMiddleware()

	req, _ := http.NewRequest("GET", "/auth/me", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.RequireAuth()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestMiddleware_OptionalAuth_InvalidToken_Passes(t *testing.T) {
	m, _, _, mockTokenIssuer := newTestMiddleware()

	mockTokenIssuer.On("VerifyAccess", "bad-token").Return("", errors.New("invalid"))

	req, _ := http.NewRequest("POST", "/orders", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	m.OptionalAuth()(c)

	_, ok := currentUserID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusOK, w.Code)
	mockTokenIssuer.AssertExpectations(t)
}

func TestMiddleware_RequirePermission_Allowed(t *testing.T) {
	m, _, mockStaffService, _ := newTestMiddleware()

	mockStaffService.On("HasPermission", mock.Anything, "restaurant-123", "user-123", "orders", "update").
		Return(true, nil)

	req, _ := http.NewRequest("POST", "/orders/order-123/transition", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(ctxRestaurantKey, &tenants.Restaurant{ID: "restaurant-123"})
	c.Set(ctxUserIDKey, "user-123")

	m.RequirePermission("orders", "update")(c)

	assert.False(t, c.IsAborted())
	mockStaffService.AssertExpectations(t)
}

func TestMiddleware_RequirePermission_Denied(t *testing.T) {
	m, _, mockStaffService, _ := newTestMiddleware()

	mockStaffService.On("HasPermission", mock.Anything, "restaurant-123", "user-123", "payments", "refund").
		Return(false, nil)

	req, _ := http.NewRequest("POST", "/payments/payment-123/refund", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(ctxRestaurantKey, &tenants.Restaurant{ID: "restaurant-123"})
	c.Set(ctxUserIDKey, "user-123")

	m.RequirePermission("payments", "refund")(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "permission denied")
	mockStaffService.AssertExpectations(t)
}

func TestMiddleware_RequirePermission_Anonymous_Error(t *testing.T) {
	m, _, _, _ := newTestMiddleware()

	req, _ := http.NewRequest("GET", "/audit", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(ctxRestaurantKey, &tenants.Restaurant{ID: "restaurant-123"})

	m.RequirePermission("audit", "view")(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
