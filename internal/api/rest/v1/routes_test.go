//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockAccountService := new(MockAccountService)
	mockRestaurantService := new(MockRestaurantService)
	mockStaffService := new(MockStaffService)
	mockMenuService := new(MockMenuService)
	mockTableService := new(MockTableService)
	mockOrderService := new(MockOrderService)
	mockReservationService := new(MockReservationService)
	mockPaymentService := new(MockPaymentService)
	mockFavoriteService := new(MockFavoriteService)
	mockAuditService := new(MockAuditService)
	mockTokenIssuer := new(MockTokenIssuer)

	restaurant := &tenants.Restaurant{ID: "restaurant-123", Slug: "old-tbilisi", IsActive: true}
	mockRestaurantService.On("GetBySlug", mock.Anything, "old-tbilisi").Return(restaurant, nil)
	mockRestaurantService.On("List", mock.Anything, mock.Anything).Return([]*tenants.Restaurant{restaurant}, nil)
	mockMenuService.On("ListCategories", mock.Anything, "restaurant-123", false).Return(nil, nil)

	r := gin.New()
	middleware := NewMiddleware(mockRestaurantService, mockStaffService, mockTokenIssuer, "dine.ge")
	SetupRoutes(r, middleware, nil, nil,
		mockAccountService, mockRestaurantService, mockStaffService,
		mockMenuService, mockTableService, mockOrderService,
		mockReservationService, mockPaymentService, mockFavoriteService, mockAuditService)

	t.Run("GET /api/v1/ready", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/ready", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /api/v1/restaurants", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/restaurants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "old-tbilisi")
	})

	t.Run("tenant resolution from header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/menu/categories", nil)
		req.Header.Set("X-Restaurant", "old-tbilisi")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tenant route without tenant is rejected", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/menu/categories", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "restaurant not found")
	})

	t.Run("staff route requires authentication", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/orders", nil)
		req.Header.Set("X-Restaurant", "old-tbilisi")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user route requires authentication", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/v1/me/favorites/restaurants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
