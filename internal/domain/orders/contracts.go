package orders

import (
	"context"
	"time"
)

// NewOrderItem describes one requested line when placing an order.
// Prices are resolved server-side from the menu.
type NewOrderItem struct {
	MenuItemID          string `validate:"required,uuid4"`
	Quantity            int    `validate:"required,min=1"`
	ModifierIDs         []string
	SpecialInstructions string
}

// NewOrder describes an order being placed.
type NewOrder struct {
	RestaurantID string `validate:"required,uuid4"`
	TableID      *string
	SessionID    *string
	CustomerID   *string

	OrderType string `validate:"required,oneof=dine_in takeaway delivery"`

	CustomerName    string `validate:"omitempty,max=200"`
	CustomerPhone   string `validate:"omitempty,max=20"`
	CustomerEmail   string `validate:"omitempty,email"`
	CustomerNotes   string
	DeliveryAddress string

	Items []*NewOrderItem `validate:"required,min=1,dive"`
}

// OrderService defines order lifecycle operations.
type OrderService interface {
	// Place creates an order, snapshotting names and prices from the
	// menu and computing totals from the restaurant's rates.
	Place(ctx context.Context, newOrder *NewOrder) (*Order, error)

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, restaurantID, orderID string) (*Order, error)

	// List retrieves orders for a restaurant considering a query
	// filter when set.
	List(ctx context.Context, restaurantID string, query *OrderQuery) ([]*Order, error)

	// Transition moves the order to the target status, recording the
	// change in the status history. Illegal transitions are rejected.
	Transition(ctx context.Context, restaurantID, orderID, target string, changedBy *string, notes string) (*Order, error)

	// Cancel cancels the order with a reason.
	Cancel(ctx context.Context, restaurantID, orderID string, cancelledBy *string, reason string) (*Order, error)

	// History returns the status changes of an order, newest first.
	History(ctx context.Context, restaurantID, orderID string) ([]*StatusChange, error)
}

// OrderRepository defines the interface for Order-related operations
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, restaurantID string, query *OrderQuery) ([]*Order, error)
	UpdateByID(ctx context.Context, order *Order) error

	// CountSince counts the restaurant's orders created at or after
	// the given instant. Used for daily order numbering.
	CountSince(ctx context.Context, restaurantID string, since time.Time) (int64, error)

	// Status history
	AddStatusChange(ctx context.Context, change *StatusChange) error
	ListStatusChanges(ctx context.Context, orderID string) ([]*StatusChange, error)
}
