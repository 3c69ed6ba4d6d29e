package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Order status constants
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusServed    = "served"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order type constants
const (
	TypeDineIn   = "dine_in"
	TypeTakeaway = "takeaway"
	TypeDelivery = "delivery"
)

// statusTransitions defines the allowed forward moves of an order.
// Cancellation is handled separately.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed},
	StatusConfirmed: {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusServed},
	StatusServed:    {StatusCompleted},
}

// Order is a customer order with priced line items.
type Order struct {
	ID           string `validate:"required,uuid4"`
	OrderNumber  string `validate:"required,max=20"`
	RestaurantID string `validate:"required,uuid4"`
	TableID      *string
	SessionID    *string
	CustomerID   *string

	OrderType string `validate:"required,oneof=dine_in takeaway delivery"`
	Status    string `validate:"required,oneof=pending confirmed preparing ready served completed cancelled"`

	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	ServiceCharge  decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal

	CustomerName    string `validate:"omitempty,max=200"`
	CustomerPhone   string `validate:"omitempty,max=20"`
	CustomerEmail   string `validate:"omitempty,email"`
	CustomerNotes   string
	DeliveryAddress string

	EstimatedReadyAt   *time.Time
	ConfirmedAt        *time.Time
	PreparedAt         *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string

	HandledByID *string

	Items []*OrderItem

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	return validateStruct(o)
}

// IsEditable reports whether items can still be added or changed.
func (o *Order) IsEditable() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}

// CanCancel reports whether the order may still be cancelled.
func (o *Order) CanCancel() bool {
	switch o.Status {
	case StatusCompleted, StatusCancelled, StatusServed:
		return false
	}
	return true
}

// CanTransitionTo reports whether the order may move to the target
// status. Cancellation is governed by CanCancel.
func (o *Order) CanTransitionTo(target string) bool {
	if target == StatusCancelled {
		return o.CanCancel()
	}
	for _, allowed := range statusTransitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// RecalculateTotals recomputes subtotal and total from the line items
// using the restaurant's tax and service-charge percentages.
func (o *Order) RecalculateTotals(taxRate, serviceRate decimal.Decimal) {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		if item.Status != ItemCancelled {
			subtotal = subtotal.Add(item.TotalPrice)
		}
	}
	hundred := decimal.NewFromInt(100)
	o.Subtotal = subtotal
	o.TaxAmount = subtotal.Mul(taxRate).Div(hundred).Round(2)
	o.ServiceCharge = subtotal.Mul(serviceRate).Div(hundred).Round(2)
	o.Total = o.Subtotal.Add(o.TaxAmount).Add(o.ServiceCharge).Sub(o.DiscountAmount)
}

// Order item status constants
const (
	ItemPending   = "pending"
	ItemPreparing = "preparing"
	ItemReady     = "ready"
	ItemServed    = "served"
	ItemCancelled = "cancelled"
)

// OrderItem is one line of an order. Name and price are snapshots
// taken when the item was added, so later menu edits do not change
// past orders.
type OrderItem struct {
	ID         string `validate:"required,uuid4"`
	OrderID    string `validate:"required,uuid4"`
	MenuItemID *string

	ItemName        string `validate:"required,max=200"`
	ItemDescription string
	UnitPrice       decimal.Decimal
	Quantity        int `validate:"required,min=1"`
	TotalPrice      decimal.Decimal

	Status             string `validate:"required,oneof=pending preparing ready served cancelled"`
	PreparationStation string `validate:"required,oneof=kitchen bar both"`

	SpecialInstructions string

	Modifiers []*OrderItemModifier

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating OrderItem struct
func (i *OrderItem) Validate() error {
	if i.UnitPrice.IsNegative() {
		return fmt.Errorf("validation failed: unit price must not be negative")
	}
	return validateStruct(i)
}

// RecalculateTotal recomputes the line total including modifiers.
func (i *OrderItem) RecalculateTotal() {
	adjustments := decimal.Zero
	for _, m := range i.Modifiers {
		adjustments = adjustments.Add(m.PriceAdjustment)
	}
	i.TotalPrice = i.UnitPrice.Add(adjustments).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderItemModifier is a modifier snapshot applied to a line item.
type OrderItemModifier struct {
	ID              string `validate:"required,uuid4"`
	OrderItemID     string `validate:"required,uuid4"`
	ModifierID      *string
	ModifierName    string `validate:"required,max=100"`
	PriceAdjustment decimal.Decimal
	CreatedAt       time.Time `validate:"required"`
}

// Validate for validating OrderItemModifier struct
func (m *OrderItemModifier) Validate() error {
	return validateStruct(m)
}

// StatusChange records one status transition of an order.
type StatusChange struct {
	ID          string `validate:"required,uuid4"`
	OrderID     string `validate:"required,uuid4"`
	FromStatus  string
	ToStatus    string `validate:"required"`
	ChangedByID *string
	Notes       string
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating StatusChange struct
func (c *StatusChange) Validate() error {
	return validateStruct(c)
}

// OrderQuery is a filter for listing orders.
type OrderQuery struct {
	Status     string `validate:"omitempty,oneof=pending confirmed preparing ready served completed cancelled"`
	OrderType  string `validate:"omitempty,oneof=dine_in takeaway delivery"`
	TableID    string
	CustomerID string
	Since      time.Time

	Limit     int    `validate:"omitempty,min=1,max=200"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=created_at total status"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewOrderQuery creates an OrderQuery with defaults.
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{
		Limit:     50,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate for validating OrderQuery struct
func (q *OrderQuery) Validate() error {
	return validateStruct(q)
}

// FormatOrderNumber builds the human-readable order number, e.g.
// ORD-240817-0042: date prefix plus a per-restaurant daily sequence.
func FormatOrderNumber(day time.Time, sequence int) string {
	return fmt.Sprintf("ORD-%s-%04d", day.Format("060102"), sequence)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
