package app

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// orderService implements the OrderService interface for the order
// lifecycle. Line items snapshot menu names and prices at placement time.
type orderService struct {
	orderRepo      orders.OrderRepository
	itemRepo       menu.MenuItemRepository
	modifierRepo   menu.ModifierRepository
	restaurantRepo tenants.RestaurantRepository
	logger         logger.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(
	orderRepo orders.OrderRepository,
	itemRepo menu.MenuItemRepository,
	modifierRepo menu.ModifierRepository,
	restaurantRepo tenants.RestaurantRepository,
	logger logger.Logger,
) (orders.OrderService, error) {
	return &orderService{
		orderRepo:      orderRepo,
		itemRepo:       itemRepo,
		modifierRepo:   modifierRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}, nil
}

func (s *orderService) Place(ctx context.Context, newOrder *orders.NewOrder) (*orders.Order, error) {
	if err := validator.New().Struct(newOrder); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, newOrder.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant with ID %s not found", newOrder.RestaurantID)
	}

	now := time.Now().UTC()
	orderID := uuid.NewString()

	var tracked []*menu.MenuItem
	items := make([]*orders.OrderItem, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		menuItem, err := s.itemRepo.GetByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem.RestaurantID != newOrder.RestaurantID {
			return nil, fmt.Errorf("menu item with ID %s not found", line.MenuItemID)
		}
		if !menuItem.IsAvailable || !menuItem.InStock() {
			return nil, fmt.Errorf("menu item %s is not available", menuItem.Name)
		}
		if menuItem.TrackStock {
			if menuItem.StockQuantity < line.Quantity {
				return nil, fmt.Errorf("insufficient stock for %s", menuItem.Name)
			}
			menuItem.StockQuantity -= line.Quantity
			tracked = append(tracked, menuItem)
		}

		menuItemID := menuItem.ID
		item := &orders.OrderItem{
			ID:                  uuid.NewString(),
			OrderID:             orderID,
			MenuItemID:          &menuItemID,
			ItemName:            menuItem.Name,
			ItemDescription:     menuItem.Description,
			UnitPrice:           menuItem.Price,
			Quantity:            line.Quantity,
			Status:              orders.ItemPending,
			PreparationStation:  menuItem.PreparationStation,
			SpecialInstructions: line.SpecialInstructions,
			CreatedAt:           now,
		}

		for _, modifierID := range line.ModifierIDs {
			modifier, err := s.modifierRepo.GetModifierByID(ctx, modifierID)
			if err != nil {
				return nil, err
			}
			if !modifier.IsAvailable {
				return nil, fmt.Errorf("modifier %s is not available", modifier.Name)
			}
			snapshotID := modifier.ID
			item.Modifiers = append(item.Modifiers, &orders.OrderItemModifier{
				ID:              uuid.NewString(),
				OrderItemID:     item.ID,
				ModifierID:      &snapshotID,
				ModifierName:    modifier.Name,
				PriceAdjustment: modifier.PriceAdjustment,
				CreatedAt:       now,
			})
		}

		item.RecalculateTotal()
		items = append(items, item)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	count, err := s.orderRepo.CountSince(ctx, newOrder.RestaurantID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute order number: %w", err)
	}

	order := &orders.Order{
		ID:              orderID,
		OrderNumber:     orders.FormatOrderNumber(dayStart, int(count)+1),
		RestaurantID:    newOrder.RestaurantID,
		TableID:         newOrder.TableID,
		SessionID:       newOrder.SessionID,
		CustomerID:      newOrder.CustomerID,
		OrderType:       newOrder.OrderType,
		Status:          orders.StatusPending,
		CustomerName:    newOrder.CustomerName,
		CustomerPhone:   newOrder.CustomerPhone,
		CustomerEmail:   newOrder.CustomerEmail,
		CustomerNotes:   newOrder.CustomerNotes,
		DeliveryAddress: newOrder.DeliveryAddress,
		Items:           items,
		CreatedAt:       now,
	}
	order.RecalculateTotals(restaurant.TaxRate, restaurant.ServiceCharge)

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, menuItem := range tracked {
		menuItem.UpdatedAt = now
		if err := s.itemRepo.UpdateByID(ctx, menuItem); err != nil {
			s.logger.Error("Failed to decrement stock for menu item ", menuItem.ID, ": ", err)
		}
	}

	s.recordStatusChange(ctx, order.ID, "", orders.StatusPending, newOrder.CustomerID, "", now)
	s.logger.Info("Placed order ", order.OrderNumber, " for restaurant ", order.RestaurantID)
	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, restaurantID, orderID string) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, fmt.Errorf("order with ID %s not found", orderID)
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, restaurantID string, query *orders.OrderQuery) ([]*orders.Order, error) {
	if query == nil {
		query = orders.NewOrderQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.orderRepo.List(ctx, restaurantID, query)
}

func (s *orderService) Transition(ctx context.Context, restaurantID, orderID, target string, changedBy *string, notes string) (*orders.Order, error) {
	order, err := s.GetByID(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(target) {
		return nil, fmt.Errorf("order cannot move from %s to %s", order.Status, target)
	}

	now := time.Now().UTC()
	previous := order.Status
	order.Status = target
	order.UpdatedAt = now
	order.HandledByID = changedBy

	switch target {
	case orders.StatusConfirmed:
		order.ConfirmedAt = &now
	case orders.StatusReady:
		order.PreparedAt = &now
	case orders.StatusCompleted:
		order.CompletedAt = &now
	}

	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.recordStatusChange(ctx, order.ID, previous, target, changedBy, notes, now)
	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, restaurantID, orderID string, cancelledBy *string, reason string) (*orders.Order, error) {
	order, err := s.GetByID(ctx, restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.CanCancel() {
		return nil, fmt.Errorf("order in status %s cannot be cancelled", order.Status)
	}

	now := time.Now().UTC()
	previous := order.Status
	order.Status = orders.StatusCancelled
	order.CancelledAt = &now
	order.CancellationReason = reason
	order.UpdatedAt = now

	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	s.restoreStock(ctx, order, now)
	s.recordStatusChange(ctx, order.ID, previous, orders.StatusCancelled, cancelledBy, reason, now)
	s.logger.Info("Cancelled order ", order.OrderNumber)
	return order, nil
}

func (s *orderService) History(ctx context.Context, restaurantID, orderID string) ([]*orders.StatusChange, error) {
	if _, err := s.GetByID(ctx, restaurantID, orderID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListStatusChanges(ctx, orderID)
}

func (s *orderService) recordStatusChange(ctx context.Context, orderID, from, to string, changedBy *string, notes string, now time.Time) {
	change := &orders.StatusChange{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		FromStatus:  from,
		ToStatus:    to,
		ChangedByID: changedBy,
		Notes:       notes,
		CreatedAt:   now,
	}
	if err := s.orderRepo.AddStatusChange(ctx, change); err != nil {
		s.logger.Error("Failed to record status change for order ", orderID, ": ", err)
	}
}

// restoreStock puts cancelled quantities back on inventory-tracked
// items, best effort.
func (s *orderService) restoreStock(ctx context.Context, order *orders.Order, now time.Time) {
	for _, item := range order.Items {
		if item.MenuItemID == nil || item.Status == orders.ItemCancelled {
			continue
		}
		menuItem, err := s.itemRepo.GetByID(ctx, *item.MenuItemID)
		if err != nil || !menuItem.TrackStock {
			continue
		}
		menuItem.StockQuantity += item.Quantity
		menuItem.UpdatedAt = now
		if err := s.itemRepo.UpdateByID(ctx, menuItem); err != nil {
			s.logger.Error("Failed to restore stock for menu item ", menuItem.ID, ": ", err)
		}
	}
}
