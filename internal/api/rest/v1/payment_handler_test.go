//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentHandler_Record_Success(t *testing.T) {
	mockPaymentService := new(MockPaymentService)
	handler := NewPaymentHandler(mockPaymentService)

	payment := &payments.Payment{
		ID:      "payment-123",
		OrderID: "order-123",
		Amount:  decimal.NewFromInt(50),
		Method:  payments.MethodCard,
		Status:  payments.StatusPending,
	}
	mockPaymentService.On("Record", mock.Anything, mock.Anything).Return(payment, nil)

	body := bytes.NewBufferString(`{"order_id":"order-123","amount":"50","method":"card"}`)
	req, _ := http.NewRequest("POST", "/payments", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "payment-123")
	mockPaymentService.AssertExpectations(t)
}

func TestPaymentHandler_Record_Overpayment_Error(t *testing.T) {
	mockPaymentService := new(MockPaymentService)
	handler := NewPaymentHandler(mockPaymentService)

	mockPaymentService.On("Record", mock.Anything, mock.Anything).
		Return(nil, errors.New("payment exceeds the remaining order balance"))

	body := bytes.NewBufferString(`{"order_id":"order-123","amount":"500","method":"card"}`)
	req, _ := http.NewRequest("POST", "/payments", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req

	handler.Record(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "remaining order balance")
	mockPaymentService.AssertExpectations(t)
}

func TestPaymentHandler_Complete_Success(t *testing.T) {
	mockPaymentService := new(MockPaymentService)
	handler := NewPaymentHandler(mockPaymentService)

	payment := &payments.Payment{ID: "payment-123", Status: payments.StatusCompleted, ReceiptNumber: "RCP-260823-payment1"}
	mockPaymentService.On("Complete", mock.Anything, "restaurant-123", "payment-123", "ext-789").Return(payment, nil)

	body := bytes.NewBufferString(`{"external_payment_id":"ext-789"}`)
	req, _ := http.NewRequest("POST", "/payments/payment-123/complete", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "payment-123"}}

	handler.Complete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RCP-")
	mockPaymentService.AssertExpectations(t)
}

func TestPaymentHandler_Complete_AlreadySettled_Error(t *testing.T) {
	mockPaymentService := new(MockPaymentService)
	handler := NewPaymentHandler(mockPaymentService)

	mockPaymentService.On("Complete", mock.Anything, "restaurant-123", "payment-123", "").
		Return(nil, errors.New("payment is not pending"))

	req, _ := http.NewRequest("POST", "/payments/payment-123/complete", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "payment-123"}}

	handler.Complete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockPaymentService.AssertExpectations(t)
}

func TestPaymentHandler_Refund_Success(t *testing.T) {
	mockPaymentService := new(MockPaymentService)
	handler := NewPaymentHandler(mockPaymentService)

	refund := &payments.Refund{ID: "refund-123", PaymentID: "payment-123", Amount: decimal.NewFromInt(20)}
	mockPaymentService.On("Refund", mock.Anything, "restaurant-123", "payment-123", mock.Anything, "cold dish", mock.Anything).
		Return(refund, nil)

	body := bytes.NewBufferString(`{"amount":"20","reason":"cold dish"}`)
	req, _ := http.NewRequest("POST", "/payments/payment-123/refund", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "payment-123"}}

	handler.Refund(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "refund-123")
	mockPaymentService.AssertExpectations(t)
}

func TestPaymentHandler_ListByOrder_Success(t *testing.T) {
	mockPaymentService := new(MockPaymentService)
	handler := NewPaymentHandler(mockPaymentService)

	payment := &payments.Payment{ID: "payment-123", OrderID: "order-123"}
	mockPaymentService.On("ListByOrder", mock.Anything, "restaurant-123", "order-123").
		Return([]*payments.Payment{payment}, nil)

	req, _ := http.NewRequest("GET", "/orders/order-123/payments", nil)

	w := httptest.NewRecorder()
	c, _ := testRestaurantContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "order-123"}}

	handler.ListByOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "payment-123")
	mockPaymentService.AssertExpectations(t)
}
