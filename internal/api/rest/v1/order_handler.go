package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// OrderHandler defines the interface for handling order operations
type OrderHandler interface {
	Place(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	Transition(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	History(ctx *gin.Context)
}

type orderHandler struct {
	orderService orders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

// Place creates an order with menu-priced line items
func (handler *orderHandler) Place(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	items := make([]*orders.NewOrderItem, 0, len(request.Items))
	for _, line := range request.Items {
		items = append(items, &orders.NewOrderItem{
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			ModifierIDs:         line.ModifierIDs,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	order, err := handler.orderService.Place(ctx, &orders.NewOrder{
		RestaurantID:    restaurant.ID,
		TableID:         request.TableID,
		SessionID:       request.SessionID,
		CustomerID:      currentUserIDPtr(ctx),
		OrderType:       request.OrderType,
		CustomerName:    request.CustomerName,
		CustomerPhone:   request.CustomerPhone,
		CustomerEmail:   request.CustomerEmail,
		CustomerNotes:   request.CustomerNotes,
		DeliveryAddress: request.DeliveryAddress,
		Items:           items,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not place order: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toOrderResponse(order))
}

// GetByID fetches an order by ID
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	orderID := ctx.Param("id")

	order, err := handler.orderService.GetByID(ctx, restaurant.ID, orderID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("order with id %s not found", orderID)})
		return
	}

	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// List fetches orders optionally with query parameters
func (handler *orderHandler) List(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	query := orders.NewOrderQuery()
	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if orderType := ctx.Query("type"); len(orderType) > 0 {
		query.OrderType = orderType
	}
	if tableID := ctx.Query("tableId"); len(tableID) > 0 {
		query.TableID = tableID
	}
	if since := ctx.Query("since"); len(since) > 0 {
		parsed, err := time.Parse(time.RFC3339, since)
		if err == nil {
			query.Since = parsed
		}
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	orderList, err := handler.orderService.List(ctx, restaurant.ID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []OrderResponse{}
	for _, order := range orderList {
		listResponse = append(listResponse, toOrderResponse(order))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Transition moves an order to a target status
func (handler *orderHandler) Transition(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	orderID := ctx.Param("id")

	var request OrderTransitionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	order, err := handler.orderService.Transition(ctx, restaurant.ID, orderID, request.Status, currentUserIDPtr(ctx), request.Notes)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// Cancel cancels an order with a reason
func (handler *orderHandler) Cancel(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	orderID := ctx.Param("id")

	var request CancelRequest
	_ = ctx.ShouldBindJSON(&request)

	order, err := handler.orderService.Cancel(ctx, restaurant.ID, orderID, currentUserIDPtr(ctx), request.Reason)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// History fetches the status changes of an order, newest first
func (handler *orderHandler) History(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	orderID := ctx.Param("id")

	changes, err := handler.orderService.History(ctx, restaurant.ID, orderID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("order with id %s not found", orderID)})
		return
	}

	listResponse := []StatusChangeResponse{}
	for _, change := range changes {
		listResponse = append(listResponse, toStatusChangeResponse(change))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
