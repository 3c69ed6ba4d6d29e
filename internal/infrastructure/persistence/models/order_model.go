package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM database model for orders
type OrderModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	OrderNumber  string  `gorm:"not null;index:idx_orders_restaurant_number,unique;type:varchar(20)"`
	RestaurantID string  `gorm:"not null;index:idx_orders_restaurant_number,unique;index;type:uuid"`
	TableID      *string `gorm:"index;type:uuid"`
	SessionID    *string `gorm:"index;type:uuid"`
	CustomerID   *string `gorm:"index;type:uuid"`

	OrderType string `gorm:"not null;type:varchar(10);default:dine_in"`
	Status    string `gorm:"not null;type:varchar(20);default:pending;index"`

	Subtotal       decimal.Decimal `gorm:"type:numeric(10,2)"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(10,2)"`
	ServiceCharge  decimal.Decimal `gorm:"type:numeric(10,2)"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(10,2)"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2)"`

	CustomerName    string `gorm:"type:varchar(200)"`
	CustomerPhone   string `gorm:"type:varchar(20)"`
	CustomerEmail   string `gorm:"type:varchar(255)"`
	CustomerNotes   string `gorm:"type:text"`
	DeliveryAddress string `gorm:"type:text"`

	EstimatedReadyAt   *time.Time
	ConfirmedAt        *time.Time
	PreparedAt         *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string `gorm:"type:text"`

	HandledByID *string `gorm:"type:uuid"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	order := &orders.Order{
		ID:                 m.ID,
		OrderNumber:        m.OrderNumber,
		RestaurantID:       m.RestaurantID,
		TableID:            m.TableID,
		SessionID:          m.SessionID,
		CustomerID:         m.CustomerID,
		OrderType:          m.OrderType,
		Status:             m.Status,
		Subtotal:           m.Subtotal,
		TaxAmount:          m.TaxAmount,
		ServiceCharge:      m.ServiceCharge,
		DiscountAmount:     m.DiscountAmount,
		Total:              m.Total,
		CustomerName:       m.CustomerName,
		CustomerPhone:      m.CustomerPhone,
		CustomerEmail:      m.CustomerEmail,
		CustomerNotes:      m.CustomerNotes,
		DeliveryAddress:    m.DeliveryAddress,
		EstimatedReadyAt:   m.EstimatedReadyAt,
		ConfirmedAt:        m.ConfirmedAt,
		PreparedAt:         m.PreparedAt,
		CompletedAt:        m.CompletedAt,
		CancelledAt:        m.CancelledAt,
		CancellationReason: m.CancellationReason,
		HandledByID:        m.HandledByID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	for i := range m.Items {
		order.Items = append(order.Items, m.Items[i].ToDomain())
	}
	return order
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.OrderNumber = o.OrderNumber
	m.RestaurantID = o.RestaurantID
	m.TableID = o.TableID
	m.SessionID = o.SessionID
	m.CustomerID = o.CustomerID
	m.OrderType = o.OrderType
	m.Status = o.Status
	m.Subtotal = o.Subtotal
	m.TaxAmount = o.TaxAmount
	m.ServiceCharge = o.ServiceCharge
	m.DiscountAmount = o.DiscountAmount
	m.Total = o.Total
	m.CustomerName = o.CustomerName
	m.CustomerPhone = o.CustomerPhone
	m.CustomerEmail = o.CustomerEmail
	m.CustomerNotes = o.CustomerNotes
	m.DeliveryAddress = o.DeliveryAddress
	m.EstimatedReadyAt = o.EstimatedReadyAt
	m.ConfirmedAt = o.ConfirmedAt
	m.PreparedAt = o.PreparedAt
	m.CompletedAt = o.CompletedAt
	m.CancelledAt = o.CancelledAt
	m.CancellationReason = o.CancellationReason
	m.HandledByID = o.HandledByID
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.Items = nil
	for _, item := range o.Items {
		var itemModel OrderItemModel
		itemModel.FromDomain(item)
		m.Items = append(m.Items, itemModel)
	}
}

// OrderItemModel is the GORM database model for order line items
type OrderItemModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	OrderID    string  `gorm:"not null;index;type:uuid"`
	MenuItemID *string `gorm:"type:uuid"`

	ItemName        string          `gorm:"not null;type:varchar(200)"`
	ItemDescription string          `gorm:"type:text"`
	UnitPrice       decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	Quantity        int             `gorm:"not null;default:1"`
	TotalPrice      decimal.Decimal `gorm:"not null;type:numeric(10,2)"`

	Status             string `gorm:"not null;type:varchar(20);default:pending"`
	PreparationStation string `gorm:"not null;type:varchar(10);default:kitchen"`

	SpecialInstructions string `gorm:"type:text"`

	Modifiers []OrderItemModifierModel `gorm:"foreignKey:OrderItemID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts GORM model to domain entity
func (m *OrderItemModel) ToDomain() *orders.OrderItem {
	item := &orders.OrderItem{
		ID:                  m.ID,
		OrderID:             m.OrderID,
		MenuItemID:          m.MenuItemID,
		ItemName:            m.ItemName,
		ItemDescription:     m.ItemDescription,
		UnitPrice:           m.UnitPrice,
		Quantity:            m.Quantity,
		TotalPrice:          m.TotalPrice,
		Status:              m.Status,
		PreparationStation:  m.PreparationStation,
		SpecialInstructions: m.SpecialInstructions,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	for i := range m.Modifiers {
		item.Modifiers = append(item.Modifiers, m.Modifiers[i].ToDomain())
	}
	return item
}

// FromDomain converts domain entity to GORM model
func (m *OrderItemModel) FromDomain(i *orders.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.MenuItemID = i.MenuItemID
	m.ItemName = i.ItemName
	m.ItemDescription = i.ItemDescription
	m.UnitPrice = i.UnitPrice
	m.Quantity = i.Quantity
	m.TotalPrice = i.TotalPrice
	m.Status = i.Status
	m.PreparationStation = i.PreparationStation
	m.SpecialInstructions = i.SpecialInstructions
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
	m.Modifiers = nil
	for _, mod := range i.Modifiers {
		var modModel OrderItemModifierModel
		modModel.FromDomain(mod)
		m.Modifiers = append(m.Modifiers, modModel)
	}
}

// OrderItemModifierModel is the GORM database model for line item modifiers
type OrderItemModifierModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	OrderItemID     string          `gorm:"not null;index;type:uuid"`
	ModifierID      *string         `gorm:"type:uuid"`
	ModifierName    string          `gorm:"not null;type:varchar(100)"`
	PriceAdjustment decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrderItemModifierModel) TableName() string {
	return "order_item_modifiers"
}

// ToDomain converts GORM model to domain entity
func (m *OrderItemModifierModel) ToDomain() *orders.OrderItemModifier {
	return &orders.OrderItemModifier{
		ID:              m.ID,
		OrderItemID:     m.OrderItemID,
		ModifierID:      m.ModifierID,
		ModifierName:    m.ModifierName,
		PriceAdjustment: m.PriceAdjustment,
		CreatedAt:       m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderItemModifierModel) FromDomain(mod *orders.OrderItemModifier) {
	m.ID = mod.ID
	m.OrderItemID = mod.OrderItemID
	m.ModifierID = mod.ModifierID
	m.ModifierName = mod.ModifierName
	m.PriceAdjustment = mod.PriceAdjustment
	m.CreatedAt = mod.CreatedAt
}

// OrderStatusChangeModel is the GORM database model for order status history
type OrderStatusChangeModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	OrderID     string  `gorm:"not null;index;type:uuid"`
	FromStatus  string  `gorm:"type:varchar(20)"`
	ToStatus    string  `gorm:"not null;type:varchar(20)"`
	ChangedByID *string `gorm:"type:uuid"`
	Notes       string  `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrderStatusChangeModel) TableName() string {
	return "order_status_changes"
}

// ToDomain converts GORM model to domain entity
func (m *OrderStatusChangeModel) ToDomain() *orders.StatusChange {
	return &orders.StatusChange{
		ID:          m.ID,
		OrderID:     m.OrderID,
		FromStatus:  m.FromStatus,
		ToStatus:    m.ToStatus,
		ChangedByID: m.ChangedByID,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderStatusChangeModel) FromDomain(c *orders.StatusChange) {
	m.ID = c.ID
	m.OrderID = c.OrderID
	m.FromStatus = c.FromStatus
	m.ToStatus = c.ToStatus
	m.ChangedByID = c.ChangedByID
	m.Notes = c.Notes
	m.CreatedAt = c.CreatedAt
}
