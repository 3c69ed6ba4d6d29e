//go:build unit
// +build unit

package orders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_CanTransitionTo(t *testing.T) {
	order := &Order{Status: StatusPending}

	assert.True(t, order.CanTransitionTo(StatusConfirmed))
	assert.False(t, order.CanTransitionTo(StatusReady))
	assert.False(t, order.CanTransitionTo(StatusCompleted))

	order.Status = StatusServed
	assert.True(t, order.CanTransitionTo(StatusCompleted))
	assert.False(t, order.CanTransitionTo(StatusPending))
}

func TestOrder_CanCancel(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		order := &Order{Status: status}
		assert.True(t, order.CanCancel(), "expected %s order to be cancellable", status)
		assert.True(t, order.CanTransitionTo(StatusCancelled))
	}

	for _, status := range []string{StatusServed, StatusCompleted, StatusCancelled} {
		order := &Order{Status: status}
		assert.False(t, order.CanCancel(), "expected %s order to be final", status)
	}
}

func TestOrder_RecalculateTotals(t *testing.T) {
	order := &Order{
		Items: []*OrderItem{
			{TotalPrice: decimal.NewFromInt(30), Status: ItemPending},
			{TotalPrice: decimal.NewFromInt(20), Status: ItemPending},
			{TotalPrice: decimal.NewFromInt(99), Status: ItemCancelled},
		},
	}

	order.RecalculateTotals(decimal.NewFromInt(18), decimal.NewFromInt(10))

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(50)), "subtotal was %s", order.Subtotal)
	assert.True(t, order.TaxAmount.Equal(decimal.NewFromInt(9)), "tax was %s", order.TaxAmount)
	assert.True(t, order.ServiceCharge.Equal(decimal.NewFromInt(5)), "service charge was %s", order.ServiceCharge)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(64)), "total was %s", order.Total)
}

func TestOrderItem_RecalculateTotal_WithModifiers(t *testing.T) {
	item := &OrderItem{
		UnitPrice: decimal.NewFromInt(10),
		Quantity:  3,
		Modifiers: []*OrderItemModifier{
			{PriceAdjustment: decimal.NewFromInt(2)},
			{PriceAdjustment: decimal.NewFromInt(-1)},
		},
	}

	item.RecalculateTotal()

	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(33)), "total was %s", item.TotalPrice)
}

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "ORD-260823-0042", FormatOrderNumber(day, 42))
	assert.Equal(t, "ORD-260823-0001", FormatOrderNumber(day, 1))
}

func TestOrder_Validate(t *testing.T) {
	order := &Order{
		ID:           uuid.NewString(),
		OrderNumber:  "ORD-260823-0001",
		RestaurantID: uuid.NewString(),
		OrderType:    TypeDineIn,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	assert.Nil(t, order.Validate())

	order.OrderType = "room_service"
	err := order.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: OrderType, Tag: oneof")
}

func TestOrderQuery_Validate(t *testing.T) {
	query := NewOrderQuery()
	assert.Nil(t, query.Validate())

	query.Status = "teleported"
	assert.NotNil(t, query.Validate())
}
