//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// testTenantRouter serves requests through real route registrations so
// path parameter names are exercised the way production resolves them.
func testTenantRouter(register func(tenant *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tenant := r.Group(BasePath, func(ctx *gin.Context) {
		ctx.Set(ctxRestaurantKey, &tenants.Restaurant{ID: "restaurant-123", Name: "Old Tbilisi", Slug: "old-tbilisi", IsActive: true})
	})
	register(tenant)
	return r
}

func TestReservationHandler_Book_Success(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	reservation := &reservations.Reservation{
		ID:               "reservation-123",
		GuestName:        "Nino",
		GuestPhone:       "+995555123456",
		Date:             time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:        time.Date(0, 1, 1, 19, 0, 0, 0, time.UTC),
		PartySize:        4,
		Status:           reservations.StatusConfirmed,
		ConfirmationCode: "AB12CD34",
	}
	mockReservationService.On("Book", mock.Anything, mock.Anything).Return(reservation, nil)

	body := bytes.NewBufferString(`{"guest_name":"Nino","guest_phone":"+995555123456","date":"2026-09-01","start_time":"19:00","party_size":4}`)
	req, _ := http.NewRequest("POST", "/reservations", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Book(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "AB12CD34")
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Book_BadDate_Error(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	body := bytes.NewBufferString(`{"guest_name":"Nino","guest_phone":"+995555123456","date":"01-09-2026","start_time":"19:00","party_size":4}`)
	req, _ := http.NewRequest("POST", "/reservations", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Book(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestReservationHandler_Availability_Success(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	slots := []*reservations.Slot{
		{Start: time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC), Available: true},
		{Start: time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC), Available: false},
	}
	mockReservationService.On("Availability", mock.Anything, "restaurant-123", mock.Anything, 4).Return(slots, nil)

	req, _ := http.NewRequest("GET", "/reservations/availability?date=2026-09-01&partySize=4", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Availability(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "19:00")
	assert.Contains(t, w.Body.String(), "19:30")
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Availability_MissingDate_Error(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	req, _ := http.NewRequest("GET", "/reservations/availability", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Availability(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationHandler_Lookup_Success(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	reservation := &reservations.Reservation{ID: "reservation-123", ConfirmationCode: "AB12CD34"}
	mockReservationService.On("Lookup", mock.Anything, "restaurant-123", "AB12CD34").Return(reservation, nil)

	r := testTenantRouter(func(tenant *gin.RouterGroup) {
		tenant.GET("/reservations/lookup/:code", handler.Lookup)
	})

	req, _ := http.NewRequest("GET", "/api/v1/reservations/lookup/AB12CD34", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reservation-123")
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_CancelByGuest_ResolvesCode(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	reservation := &reservations.Reservation{ID: "reservation-123", ConfirmationCode: "AB12CD34"}
	cancelled := &reservations.Reservation{ID: "reservation-123", ConfirmationCode: "AB12CD34", Status: reservations.StatusCancelled}
	mockReservationService.On("Lookup", mock.Anything, "restaurant-123", "AB12CD34").Return(reservation, nil)
	mockReservationService.On("Cancel", mock.Anything, "restaurant-123", "reservation-123", mock.Anything, "", true).
		Return(cancelled, nil)

	r := testTenantRouter(func(tenant *gin.RouterGroup) {
		tenant.POST("/reservations/lookup/:code/cancel", handler.CancelByGuest)
	})

	req, _ := http.NewRequest("POST", "/api/v1/reservations/lookup/AB12CD34/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), reservations.StatusCancelled)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_CancelByGuest_UnknownCode(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	mockReservationService.On("Lookup", mock.Anything, "restaurant-123", "ZZ99ZZ99").
		Return(nil, errors.New("reservation with code ZZ99ZZ99 not found"))

	r := testTenantRouter(func(tenant *gin.RouterGroup) {
		tenant.POST("/reservations/lookup/:code/cancel", handler.CancelByGuest)
	})

	req, _ := http.NewRequest("POST", "/api/v1/reservations/lookup/ZZ99ZZ99/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockReservationService.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_CancelByGuest_EnforcesDeadline(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	reservation := &reservations.Reservation{ID: "reservation-123", ConfirmationCode: "AB12CD34"}
	mockReservationService.On("Lookup", mock.Anything, "restaurant-123", "AB12CD34").Return(reservation, nil)
	mockReservationService.On("Cancel", mock.Anything, "restaurant-123", "reservation-123", mock.Anything, "", true).
		Return(nil, errors.New("cancellation deadline has passed"))

	r := testTenantRouter(func(tenant *gin.RouterGroup) {
		tenant.POST("/reservations/lookup/:code/cancel", handler.CancelByGuest)
	})

	req, _ := http.NewRequest("POST", "/api/v1/reservations/lookup/AB12CD34/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "deadline")
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Cancel_StaffSkipsDeadline(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	reservation := &reservations.Reservation{ID: "reservation-123", Status: reservations.StatusCancelled}
	mockReservationService.On("Cancel", mock.Anything, "restaurant-123", "reservation-123", mock.Anything, "kitchen closed", false).
		Return(reservation, nil)

	r := testTenantRouter(func(tenant *gin.RouterGroup) {
		tenant.POST("/reservations/:id/cancel", handler.Cancel)
	})

	body := bytes.NewBufferString(`{"reason":"kitchen closed"}`)
	req, _ := http.NewRequest("POST", "/api/v1/reservations/reservation-123/cancel", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), reservations.StatusCancelled)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Transition_Success(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	reservation := &reservations.Reservation{ID: "reservation-123", Status: reservations.StatusConfirmed}
	mockReservationService.On("Transition", mock.Anything, "restaurant-123", "reservation-123", "confirmed", mock.Anything, "").
		Return(reservation, nil)

	body := bytes.NewBufferString(`{"status":"confirmed"}`)
	req, _ := http.NewRequest("POST", "/reservations/reservation-123/transition", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "reservation-123"}}

	handler.Transition(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Stats_Success(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, nil)

	stats := &reservations.Stats{Total: 12, Confirmed: 8, Cancelled: 2}
	mockReservationService.On("Stats", mock.Anything, "restaurant-123", mock.Anything).Return(stats, nil)

	req, _ := http.NewRequest("GET", "/reservations/stats?date=2026-09-01", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":12`)
	mockReservationService.AssertExpectations(t)
}
