//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bootstrapRestaurant registers an owner, a restaurant and one menu
// item, returning everything the order tests need.
func bootstrapRestaurant(t *testing.T, services *TestServices) (restaurantID string, item *menu.MenuItem) {
	t.Helper()
	ctx := context.Background()

	owner, err := services.AccountService.Register(ctx, &accounts.Registration{
		Email:    "owner@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	restaurant, err := services.RestaurantService.Register(ctx, owner.ID, "Old Tbilisi", "old-tbilisi")
	require.NoError(t, err)

	item, err = services.MenuService.CreateItem(ctx, &menu.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         "Adjarian Khachapuri",
		Price:        decimal.NewFromInt(18),
		IsAvailable:  true,
	})
	require.NoError(t, err)

	return restaurant.ID, item
}

func TestOrderService_Place_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	order, err := services.OrderService.Place(ctx, &orders.NewOrder{
		RestaurantID: restaurantID,
		OrderType:    orders.TypeDineIn,
		CustomerName: "Nino",
		Items: []*orders.NewOrderItem{
			{MenuItemID: item.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, orders.StatusPending, order.Status)
	assert.Regexp(t, `^ORD-\d{6}-\d{4}$`, order.OrderNumber)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Adjarian Khachapuri", order.Items[0].ItemName)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(36)))
}

func TestOrderService_Place_UnknownItem_Error(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, _ := bootstrapRestaurant(t, services)
	ctx := context.Background()

	_, err := services.OrderService.Place(ctx, &orders.NewOrder{
		RestaurantID: restaurantID,
		OrderType:    orders.TypeTakeaway,
		Items: []*orders.NewOrderItem{
			{MenuItemID: "00000000-0000-4000-8000-000000000000", Quantity: 1},
		},
	})
	assert.Error(t, err)
}

func TestOrderService_Transition_FullLifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	order, err := services.OrderService.Place(ctx, &orders.NewOrder{
		RestaurantID: restaurantID,
		OrderType:    orders.TypeDineIn,
		Items:        []*orders.NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, target := range []string{
		orders.StatusConfirmed, orders.StatusPreparing,
		orders.StatusReady, orders.StatusServed, orders.StatusCompleted,
	} {
		order, err = services.OrderService.Transition(ctx, restaurantID, order.ID, target, nil, "")
		require.NoError(t, err)
		assert.Equal(t, target, order.Status)
	}

	history, err := services.OrderService.History(ctx, restaurantID, order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestOrderService_Transition_Illegal_Error(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	order, err := services.OrderService.Place(ctx, &orders.NewOrder{
		RestaurantID: restaurantID,
		OrderType:    orders.TypeDineIn,
		Items:        []*orders.NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = services.OrderService.Transition(ctx, restaurantID, order.ID, orders.StatusReady, nil, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot move")
}

func TestOrderService_Cancel_AfterServed_Error(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	order, err := services.OrderService.Place(ctx, &orders.NewOrder{
		RestaurantID: restaurantID,
		OrderType:    orders.TypeDineIn,
		Items:        []*orders.NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, target := range []string{orders.StatusConfirmed, orders.StatusPreparing, orders.StatusReady, orders.StatusServed} {
		order, err = services.OrderService.Transition(ctx, restaurantID, order.ID, target, nil, "")
		require.NoError(t, err)
	}

	_, err = services.OrderService.Cancel(ctx, restaurantID, order.ID, nil, "changed my mind")
	assert.Error(t, err)
}

func TestPaymentService_RecordCompleteRefund(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	order, err := services.OrderService.Place(ctx, &orders.NewOrder{
		RestaurantID: restaurantID,
		OrderType:    orders.TypeDineIn,
		Items:        []*orders.NewOrderItem{{MenuItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	payment, err := services.PaymentService.Record(ctx, &payments.Payment{
		RestaurantID: restaurantID,
		OrderID:      order.ID,
		Amount:       order.Total,
		Method:       payments.MethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, payments.StatusPending, payment.Status)

	completed, err := services.PaymentService.Complete(ctx, restaurantID, payment.ID, "ext-12345")
	require.NoError(t, err)
	assert.Equal(t, payments.StatusCompleted, completed.Status)
	assert.NotEmpty(t, completed.ReceiptNumber)

	refund, err := services.PaymentService.Refund(ctx, restaurantID, payment.ID, decimal.NewFromInt(5), "cold dish", nil)
	require.NoError(t, err)
	assert.True(t, refund.Amount.Equal(decimal.NewFromInt(5)))

	// Overpaying the remaining balance is rejected.
	_, err = services.PaymentService.Record(ctx, &payments.Payment{
		RestaurantID: restaurantID,
		OrderID:      order.ID,
		Amount:       decimal.NewFromInt(1),
		Method:       payments.MethodCash,
	})
	assert.Error(t, err)
}
