//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTableHandler_CreateTable_Success(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	table := &tables.Table{ID: "table-123", Number: "12", Capacity: 4, Status: tables.TableAvailable}
	mockTableService.On("CreateTable", mock.Anything, mock.Anything).Return(table, nil)

	body := bytes.NewBufferString(`{"number":"12","capacity":4}`)
	req, _ := http.NewRequest("POST", "/tables", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.CreateTable(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "table-123")
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_CreateTable_DuplicateNumber_Error(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	mockTableService.On("CreateTable", mock.Anything, mock.Anything).
		Return(nil, errors.New("table number 12 already exists"))

	body := bytes.NewBufferString(`{"number":"12","capacity":4}`)
	req, _ := http.NewRequest("POST", "/tables", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.CreateTable(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_SetTableStatus_Success(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	table := &tables.Table{ID: "table-123", Number: "12", Status: tables.TableReserved}
	mockTableService.On("SetTableStatus", mock.Anything, "restaurant-123", "table-123", tables.TableReserved).
		Return(table, nil)

	body := bytes.NewBufferString(`{"status":"reserved"}`)
	req, _ := http.NewRequest("POST", "/tables/table-123/status", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "table-123"}}

	handler.SetTableStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tables.TableReserved)
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_Scan_NewSession_Success(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	result := &tables.ScanResult{
		Table:   &tables.Table{ID: "table-123", Number: "12", Status: tables.TableOccupied},
		Session: &tables.TableSession{ID: "session-123", TableID: "table-123", InviteCode: "INV12345", GuestCount: 1, Status: tables.SessionActive},
		Guest:   &tables.SessionGuest{ID: "guest-123", SessionID: "session-123", GuestName: "Nino", IsHost: true},
		Created: true,
	}
	mockTableService.On("Scan", mock.Anything, "qr-code-123", (*string)(nil), "Nino").Return(result, nil)

	body := bytes.NewBufferString(`{"guest_name":"Nino"}`)
	req, _ := http.NewRequest("POST", "/scan/qr-code-123", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "code", Value: "qr-code-123"}}

	handler.Scan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"session_created":true`)
	assert.Contains(t, w.Body.String(), "INV12345")
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_Scan_UnknownCode_Error(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	mockTableService.On("Scan", mock.Anything, "stale-code", (*string)(nil), "").
		Return(nil, errors.New("QR code is not active"))

	req, _ := http.NewRequest("POST", "/scan/stale-code", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "code", Value: "stale-code"}}

	handler.Scan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_JoinSession_Success(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	result := &tables.ScanResult{
		Table:   &tables.Table{ID: "table-123", Number: "12"},
		Session: &tables.TableSession{ID: "session-123", TableID: "table-123", InviteCode: "INV12345", GuestCount: 2},
		Guest:   &tables.SessionGuest{ID: "guest-456", SessionID: "session-123", GuestName: "Giorgi"},
	}
	mockTableService.On("JoinByInviteCode", mock.Anything, "INV12345", (*string)(nil), "Giorgi").Return(result, nil)

	body := bytes.NewBufferString(`{"invite_code":"INV12345","guest_name":"Giorgi"}`)
	req, _ := http.NewRequest("POST", "/sessions/join", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.JoinSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guest-456")
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_JoinSession_MissingInviteCode_Error(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	body := bytes.NewBufferString(`{"guest_name":"Giorgi"}`)
	req, _ := http.NewRequest("POST", "/sessions/join", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.JoinSession(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestTableHandler_CloseSession_Success(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	mockTableService.On("CloseSession", mock.Anything, "restaurant-123", "session-123").Return(nil)

	req, _ := http.NewRequest("POST", "/sessions/session-123/close", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "session-123"}}

	handler.CloseSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockTableService.AssertExpectations(t)
}

func TestTableHandler_LeaveSession_NotFound_Error(t *testing.T) {
	mockTableService := new(MockTableService)
	handler := NewTableHandler(mockTableService)

	mockTableService.On("LeaveSession", mock.Anything, "session-123", "guest-999").
		Return(errors.New("guest with ID guest-999 not found"))

	req, _ := http.NewRequest("POST", "/sessions/session-123/guests/guest-999/leave", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{
		gin.Param{Key: "id", Value: "session-123"},
		gin.Param{Key: "guestId", Value: "guest-999"},
	}

	handler.LeaveSession(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockTableService.AssertExpectations(t)
}
