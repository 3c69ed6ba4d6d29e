package v1

import (
	"fmt"
	"net/http"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// PaymentHandler defines the interface for handling payment operations
type PaymentHandler interface {
	Record(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Complete(ctx *gin.Context)
	Fail(ctx *gin.Context)
	Refund(ctx *gin.Context)
	ListByOrder(ctx *gin.Context)
}

type paymentHandler struct {
	paymentService payments.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService payments.PaymentService) PaymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// Record creates a pending payment against an order
func (handler *paymentHandler) Record(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	payment, err := handler.paymentService.Record(ctx, &payments.Payment{
		OrderID:      request.OrderID,
		RestaurantID: restaurant.ID,
		CustomerID:   currentUserIDPtr(ctx),
		Amount:       request.Amount,
		TipAmount:    request.TipAmount,
		Method:       request.Method,
		Currency:     request.Currency,
		Notes:        request.Notes,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not record payment: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// GetByID fetches a payment by ID
func (handler *paymentHandler) GetByID(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	paymentID := ctx.Param("id")

	payment, err := handler.paymentService.GetByID(ctx, restaurant.ID, paymentID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("payment with id %s not found", paymentID)})
		return
	}

	ctx.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Complete marks a payment as settled
func (handler *paymentHandler) Complete(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	paymentID := ctx.Param("id")

	var request CompletePaymentRequest
	_ = ctx.ShouldBindJSON(&request)

	payment, err := handler.paymentService.Complete(ctx, restaurant.ID, paymentID, request.ExternalPaymentID)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Fail marks a payment as failed
func (handler *paymentHandler) Fail(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	paymentID := ctx.Param("id")

	var request FailPaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	payment, err := handler.paymentService.Fail(ctx, restaurant.ID, paymentID, request.Reason)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Refund returns part or all of a completed payment
func (handler *paymentHandler) Refund(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	paymentID := ctx.Param("id")

	var request RefundRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	refund, err := handler.paymentService.Refund(ctx, restaurant.ID, paymentID, request.Amount, request.Reason, currentUserIDPtr(ctx))
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toRefundResponse(refund))
}

// ListByOrder fetches the payments made against an order
func (handler *paymentHandler) ListByOrder(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	orderID := ctx.Param("id")

	paymentList, err := handler.paymentService.ListByOrder(ctx, restaurant.ID, orderID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("order with id %s not found", orderID)})
		return
	}

	listResponse := []PaymentResponse{}
	for _, payment := range paymentList {
		listResponse = append(listResponse, toPaymentResponse(payment))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
