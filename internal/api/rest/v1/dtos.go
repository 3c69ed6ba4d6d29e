package v1

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/favorites"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human-readable confirmation.
type InfoResponse struct {
	Message string `json:"message"`
}

// --- auth ---

// RegisterRequest creates an account.
type RegisterRequest struct {
	Email             string `json:"email" binding:"required"`
	Password          string `json:"password" binding:"required"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	PhoneNumber       string `json:"phone_number"`
	PreferredLanguage string `json:"preferred_language"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest replaces the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// UpdateProfileRequest carries the mutable account fields.
type UpdateProfileRequest struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	PhoneNumber       *string `json:"phone_number"`
	PreferredLanguage *string `json:"preferred_language"`
}

// TokenResponse is an issued access/refresh pair.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
	PhoneNumber       string    `json:"phone_number"`
	PhoneVerified     bool      `json:"phone_verified"`
	AvatarURL         string    `json:"avatar_url"`
	PreferredLanguage string    `json:"preferred_language"`
	CreatedAt         time.Time `json:"created_at"`
}

// LoginResponse is the login payload.
type LoginResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

func toUserResponse(user *accounts.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		FullName:          user.FullName(),
		PhoneNumber:       user.PhoneNumber,
		PhoneVerified:     user.PhoneVerified,
		AvatarURL:         user.AvatarURL,
		PreferredLanguage: user.PreferredLanguage,
		CreatedAt:         user.CreatedAt,
	}
}

func toTokenResponse(pair *accounts.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}
}

// --- restaurants ---

// CreateRestaurantRequest registers a tenant.
type CreateRestaurantRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// UpdateRestaurantRequest carries the mutable tenant fields.
type UpdateRestaurantRequest struct {
	Name          *string          `json:"name"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	ServiceCharge *decimal.Decimal `json:"service_charge"`
}

// RestaurantResponse is the public view of a tenant.
type RestaurantResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	IsActive      bool            `json:"is_active"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toRestaurantResponse(restaurant *tenants.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:            restaurant.ID,
		Name:          restaurant.Name,
		Slug:          restaurant.Slug,
		IsActive:      restaurant.IsActive,
		TaxRate:       restaurant.TaxRate,
		ServiceCharge: restaurant.ServiceCharge,
		CreatedAt:     restaurant.CreatedAt,
	}
}

// --- staff ---

// AddStaffRequest assigns a user to a role.
type AddStaffRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	RoleName string `json:"role_name" binding:"required"`
}

// StaffMemberResponse is one roster entry.
type StaffMemberResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toStaffMemberResponse(member *staff.StaffMember) StaffMemberResponse {
	return StaffMemberResponse{
		ID:        member.ID,
		UserID:    member.UserID,
		RoleID:    member.RoleID,
		IsActive:  member.IsActive,
		CreatedAt: member.CreatedAt,
	}
}

// --- menu ---

// CategoryRequest creates or updates a menu category.
type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// CategoryResponse is one menu category.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func toCategoryResponse(category *menu.MenuCategory) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		ImageURL:     category.ImageURL,
		DisplayOrder: category.DisplayOrder,
		IsActive:     category.IsActive,
	}
}

// MenuItemRequest creates or updates a menu item.
type MenuItemRequest struct {
	CategoryID         *string         `json:"category_id"`
	Name               string          `json:"name" binding:"required"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	IsAvailable        *bool           `json:"is_available"`
	IsFeatured         bool            `json:"is_featured"`
	DisplayOrder       int             `json:"display_order"`
	PreparationMinutes int             `json:"preparation_minutes"`
	PreparationStation string          `json:"preparation_station"`
	Calories           *int            `json:"calories"`
	Allergens          []string        `json:"allergens"`
	IsVegetarian       bool            `json:"is_vegetarian"`
	IsVegan            bool            `json:"is_vegan"`
	IsGlutenFree       bool            `json:"is_gluten_free"`
	IsSpicy            bool            `json:"is_spicy"`
	SpicyLevel         int             `json:"spicy_level"`
	TrackStock         bool            `json:"track_stock"`
	StockQuantity      int             `json:"stock_quantity"`
}

// MenuItemResponse is one menu item.
type MenuItemResponse struct {
	ID                 string          `json:"id"`
	CategoryID         *string         `json:"category_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	ImageURL           string          `json:"image_url"`
	IsAvailable        bool            `json:"is_available"`
	IsFeatured         bool            `json:"is_featured"`
	DisplayOrder       int             `json:"display_order"`
	PreparationMinutes int             `json:"preparation_minutes"`
	PreparationStation string          `json:"preparation_station"`
	Calories           *int            `json:"calories"`
	Allergens          []string        `json:"allergens"`
	DietaryTags        []string        `json:"dietary_tags"`
	SpicyLevel         int             `json:"spicy_level"`
	InStock            bool            `json:"in_stock"`
	TrackStock         bool            `json:"track_stock"`
	StockQuantity      int             `json:"stock_quantity"`
}

func toMenuItemResponse(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:                 item.ID,
		CategoryID:         item.CategoryID,
		Name:               item.Name,
		Description:        item.Description,
		Price:              item.Price,
		ImageURL:           item.ImageURL,
		IsAvailable:        item.IsAvailable,
		IsFeatured:         item.IsFeatured,
		DisplayOrder:       item.DisplayOrder,
		PreparationMinutes: item.PreparationMinutes,
		PreparationStation: item.PreparationStation,
		Calories:           item.Calories,
		Allergens:          item.Allergens,
		DietaryTags:        item.DietaryTags(),
		SpicyLevel:         item.SpicyLevel,
		InStock:            item.InStock(),
		TrackStock:         item.TrackStock,
		StockQuantity:      item.StockQuantity,
	}
}

// ModifierGroupRequest creates a modifier group.
type ModifierGroupRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	SelectionType string `json:"selection_type"`
	MinSelections int    `json:"min_selections"`
	MaxSelections int    `json:"max_selections"`
	IsRequired    bool   `json:"is_required"`
	DisplayOrder  int    `json:"display_order"`
}

// ModifierGroupResponse is one modifier group.
type ModifierGroupResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SelectionType string `json:"selection_type"`
	MinSelections int    `json:"min_selections"`
	MaxSelections int    `json:"max_selections"`
	IsRequired    bool   `json:"is_required"`
	DisplayOrder  int    `json:"display_order"`
}

func toModifierGroupResponse(group *menu.ModifierGroup) ModifierGroupResponse {
	return ModifierGroupResponse{
		ID:            group.ID,
		Name:          group.Name,
		Description:   group.Description,
		SelectionType: group.SelectionType,
		MinSelections: group.MinSelections,
		MaxSelections: group.MaxSelections,
		IsRequired:    group.IsRequired,
		DisplayOrder:  group.DisplayOrder,
	}
}

// ModifierRequest creates a modifier within a group.
type ModifierRequest struct {
	Name            string          `json:"name" binding:"required"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	IsDefault       bool            `json:"is_default"`
	DisplayOrder    int             `json:"display_order"`
}

// ModifierResponse is one modifier option.
type ModifierResponse struct {
	ID              string          `json:"id"`
	GroupID         string          `json:"group_id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	IsAvailable     bool            `json:"is_available"`
	IsDefault       bool            `json:"is_default"`
	DisplayOrder    int             `json:"display_order"`
}

func toModifierResponse(modifier *menu.Modifier) ModifierResponse {
	return ModifierResponse{
		ID:              modifier.ID,
		GroupID:         modifier.GroupID,
		Name:            modifier.Name,
		PriceAdjustment: modifier.PriceAdjustment,
		IsAvailable:     modifier.IsAvailable,
		IsDefault:       modifier.IsDefault,
		DisplayOrder:    modifier.DisplayOrder,
	}
}

// StockAdjustmentRequest applies a delta to an inventory-tracked item.
type StockAdjustmentRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// --- tables and sessions ---

// SectionRequest creates a floor-plan section.
type SectionRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// SectionResponse is one floor-plan section.
type SectionResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func toSectionResponse(section *tables.TableSection) SectionResponse {
	return SectionResponse{
		ID:           section.ID,
		Name:         section.Name,
		Description:  section.Description,
		DisplayOrder: section.DisplayOrder,
		IsActive:     section.IsActive,
	}
}

// TableRequest creates or updates a table.
type TableRequest struct {
	SectionID   *string `json:"section_id"`
	Number      string  `json:"number" binding:"required"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity" binding:"required"`
	MinCapacity int     `json:"min_capacity"`
	PositionX   *int    `json:"position_x"`
	PositionY   *int    `json:"position_y"`
	Shape       string  `json:"shape"`
}

// TableResponse is one table.
type TableResponse struct {
	ID          string  `json:"id"`
	SectionID   *string `json:"section_id"`
	Number      string  `json:"number"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Capacity    int     `json:"capacity"`
	MinCapacity int     `json:"min_capacity"`
	Status      string  `json:"status"`
	IsActive    bool    `json:"is_active"`
	PositionX   *int    `json:"position_x"`
	PositionY   *int    `json:"position_y"`
	Shape       string  `json:"shape"`
}

func toTableResponse(table *tables.Table) TableResponse {
	return TableResponse{
		ID:          table.ID,
		SectionID:   table.SectionID,
		Number:      table.Number,
		Name:        table.Name,
		DisplayName: table.DisplayName(),
		Capacity:    table.Capacity,
		MinCapacity: table.MinCapacity,
		Status:      table.Status,
		IsActive:    table.IsActive,
		PositionX:   table.PositionX,
		PositionY:   table.PositionY,
		Shape:       table.Shape,
	}
}

// TableStatusRequest sets a table's floor status.
type TableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// QRCodeRequest names a new QR code.
type QRCodeRequest struct {
	Name string `json:"name"`
}

// QRCodeResponse is one table QR code.
type QRCodeResponse struct {
	ID            string     `json:"id"`
	TableID       string     `json:"table_id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	IsActive      bool       `json:"is_active"`
	ScansCount    int        `json:"scans_count"`
	LastScannedAt *time.Time `json:"last_scanned_at"`
}

func toQRCodeResponse(qr *tables.TableQRCode) QRCodeResponse {
	return QRCodeResponse{
		ID:            qr.ID,
		TableID:       qr.TableID,
		Code:          qr.Code,
		Name:          qr.Name,
		IsActive:      qr.IsActive,
		ScansCount:    qr.ScansCount,
		LastScannedAt: qr.LastScannedAt,
	}
}

// ScanRequest carries the optional guest display name on scan/join.
type ScanRequest struct {
	GuestName string `json:"guest_name"`
}

// JoinSessionRequest joins an active session by invite code.
type JoinSessionRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
	GuestName  string `json:"guest_name"`
}

// SessionResponse is one table session.
type SessionResponse struct {
	ID         string     `json:"id"`
	TableID    string     `json:"table_id"`
	InviteCode string     `json:"invite_code"`
	GuestCount int        `json:"guest_count"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	ClosedAt   *time.Time `json:"closed_at"`
}

func toSessionResponse(session *tables.TableSession) SessionResponse {
	return SessionResponse{
		ID:         session.ID,
		TableID:    session.TableID,
		InviteCode: session.InviteCode,
		GuestCount: session.GuestCount,
		Status:     session.Status,
		StartedAt:  session.StartedAt,
		ClosedAt:   session.ClosedAt,
	}
}

// GuestResponse is one session participant.
type GuestResponse struct {
	ID        string  `json:"id"`
	SessionID string  `json:"session_id"`
	UserID    *string `json:"user_id"`
	GuestName string  `json:"guest_name"`
	IsHost    bool    `json:"is_host"`
	Status    string  `json:"status"`
}

func toGuestResponse(guest *tables.SessionGuest) GuestResponse {
	return GuestResponse{
		ID:        guest.ID,
		SessionID: guest.SessionID,
		UserID:    guest.UserID,
		GuestName: guest.GuestName,
		IsHost:    guest.IsHost,
		Status:    guest.Status,
	}
}

// ScanResponse is returned on scan and join.
type ScanResponse struct {
	Table          TableResponse   `json:"table"`
	Session        SessionResponse `json:"session"`
	Guest          GuestResponse   `json:"guest"`
	SessionCreated bool            `json:"session_created"`
}

func toScanResponse(result *tables.ScanResult) ScanResponse {
	return ScanResponse{
		Table:          toTableResponse(result.Table),
		Session:        toSessionResponse(result.Session),
		Guest:          toGuestResponse(result.Guest),
		SessionCreated: result.Created,
	}
}

// --- orders ---

// OrderItemRequest is one requested line when placing an order.
type OrderItemRequest struct {
	MenuItemID          string   `json:"menu_item_id" binding:"required"`
	Quantity            int      `json:"quantity" binding:"required"`
	ModifierIDs         []string `json:"modifier_ids"`
	SpecialInstructions string   `json:"special_instructions"`
}

// PlaceOrderRequest places an order.
type PlaceOrderRequest struct {
	TableID         *string            `json:"table_id"`
	SessionID       *string            `json:"session_id"`
	OrderType       string             `json:"order_type" binding:"required"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerNotes   string             `json:"customer_notes"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
}

// OrderTransitionRequest moves an order to a target status.
type OrderTransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// CancelRequest cancels an order or reservation with a reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// OrderItemModifierResponse is a modifier snapshot on a line item.
type OrderItemModifierResponse struct {
	ID              string          `json:"id"`
	ModifierName    string          `json:"modifier_name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ID                  string                      `json:"id"`
	MenuItemID          *string                     `json:"menu_item_id"`
	ItemName            string                      `json:"item_name"`
	UnitPrice           decimal.Decimal             `json:"unit_price"`
	Quantity            int                         `json:"quantity"`
	TotalPrice          decimal.Decimal             `json:"total_price"`
	Status              string                      `json:"status"`
	PreparationStation  string                      `json:"preparation_station"`
	SpecialInstructions string                      `json:"special_instructions"`
	Modifiers           []OrderItemModifierResponse `json:"modifiers"`
}

// OrderResponse is one order with items and totals.
type OrderResponse struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"order_number"`
	TableID        *string             `json:"table_id"`
	SessionID      *string             `json:"session_id"`
	OrderType      string              `json:"order_type"`
	Status         string              `json:"status"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TaxAmount      decimal.Decimal     `json:"tax_amount"`
	ServiceCharge  decimal.Decimal     `json:"service_charge"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	Total          decimal.Decimal     `json:"total"`
	CustomerName   string              `json:"customer_name"`
	CustomerNotes  string              `json:"customer_notes"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
}

func toOrderResponse(order *orders.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		modifiers := make([]OrderItemModifierResponse, 0, len(item.Modifiers))
		for _, m := range item.Modifiers {
			modifiers = append(modifiers, OrderItemModifierResponse{
				ID:              m.ID,
				ModifierName:    m.ModifierName,
				PriceAdjustment: m.PriceAdjustment,
			})
		}
		items = append(items, OrderItemResponse{
			ID:                  item.ID,
			MenuItemID:          item.MenuItemID,
			ItemName:            item.ItemName,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			TotalPrice:          item.TotalPrice,
			Status:              item.Status,
			PreparationStation:  item.PreparationStation,
			SpecialInstructions: item.SpecialInstructions,
			Modifiers:           modifiers,
		})
	}
	return OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		TableID:        order.TableID,
		SessionID:      order.SessionID,
		OrderType:      order.OrderType,
		Status:         order.Status,
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ServiceCharge:  order.ServiceCharge,
		DiscountAmount: order.DiscountAmount,
		Total:          order.Total,
		CustomerName:   order.CustomerName,
		CustomerNotes:  order.CustomerNotes,
		Items:          items,
		CreatedAt:      order.CreatedAt,
	}
}

// StatusChangeResponse is one entry in an order's status history.
type StatusChangeResponse struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

func toStatusChangeResponse(change *orders.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		ID:         change.ID,
		FromStatus: change.FromStatus,
		ToStatus:   change.ToStatus,
		Notes:      change.Notes,
		CreatedAt:  change.CreatedAt,
	}
}

// --- reservations ---

// BookReservationRequest places a reservation.
type BookReservationRequest struct {
	GuestName       string  `json:"guest_name" binding:"required"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	PartySize       int     `json:"party_size" binding:"required"`
	TableID         *string `json:"table_id"`
	Source          string  `json:"source"`
	SpecialRequests string  `json:"special_requests"`
}

// ReservationTransitionRequest moves a reservation to a target status.
type ReservationTransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// AssignTableRequest sets the table of a reservation.
type AssignTableRequest struct {
	TableID string `json:"table_id" binding:"required"`
}

// ReservationResponse is one booking.
type ReservationResponse struct {
	ID               string     `json:"id"`
	GuestName        string     `json:"guest_name"`
	GuestPhone       string     `json:"guest_phone"`
	Date             string     `json:"date"`
	StartTime        string     `json:"start_time"`
	PartySize        int        `json:"party_size"`
	DurationMinutes  int        `json:"duration_minutes"`
	TableID          *string    `json:"table_id"`
	Status           string     `json:"status"`
	Source           string     `json:"source"`
	ConfirmationCode string     `json:"confirmation_code"`
	SpecialRequests  string     `json:"special_requests"`
	ConfirmedAt      *time.Time `json:"confirmed_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toReservationResponse(reservation *reservations.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               reservation.ID,
		GuestName:        reservation.GuestName,
		GuestPhone:       reservation.GuestPhone,
		Date:             reservation.Date.Format("2006-01-02"),
		StartTime:        reservation.StartTime.Format("15:04"),
		PartySize:        reservation.PartySize,
		DurationMinutes:  int(reservation.Duration.Minutes()),
		TableID:          reservation.TableID,
		Status:           reservation.Status,
		Source:           reservation.Source,
		ConfirmationCode: reservation.ConfirmationCode,
		SpecialRequests:  reservation.SpecialRequests,
		ConfirmedAt:      reservation.ConfirmedAt,
		CreatedAt:        reservation.CreatedAt,
	}
}

// SlotResponse is one bookable time on a day.
type SlotResponse struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
}

// ReservationSettingsRequest updates the booking policy.
type ReservationSettingsRequest struct {
	AcceptsReservations       bool `json:"accepts_reservations"`
	MinPartySize              int  `json:"min_party_size"`
	MaxPartySize              int  `json:"max_party_size"`
	ReservationDurationMin    int  `json:"reservation_duration_minutes"`
	AdvanceBookingDays        int  `json:"advance_booking_days"`
	MinAdvanceHours           int  `json:"min_advance_hours"`
	BufferMinutes             int  `json:"buffer_minutes"`
	SlotIntervalMin           int  `json:"slot_interval_minutes"`
	CancellationDeadlineHours int  `json:"cancellation_deadline_hours"`
	RequireConfirmation       bool `json:"require_confirmation"`
	AutoConfirmThreshold      int  `json:"auto_confirm_threshold"`
	SendReminder              bool `json:"send_reminder"`
	ReminderHoursBefore       int  `json:"reminder_hours_before"`
	MaxDailyReservations      int  `json:"max_daily_reservations"`
	MaxHourlyReservations     int  `json:"max_hourly_reservations"`
}

// ReservationSettingsResponse is the booking policy.
type ReservationSettingsResponse struct {
	AcceptsReservations       bool `json:"accepts_reservations"`
	MinPartySize              int  `json:"min_party_size"`
	MaxPartySize              int  `json:"max_party_size"`
	ReservationDurationMin    int  `json:"reservation_duration_minutes"`
	AdvanceBookingDays        int  `json:"advance_booking_days"`
	MinAdvanceHours           int  `json:"min_advance_hours"`
	BufferMinutes             int  `json:"buffer_minutes"`
	SlotIntervalMin           int  `json:"slot_interval_minutes"`
	CancellationDeadlineHours int  `json:"cancellation_deadline_hours"`
	RequireConfirmation       bool `json:"require_confirmation"`
	AutoConfirmThreshold      int  `json:"auto_confirm_threshold"`
	SendReminder              bool `json:"send_reminder"`
	ReminderHoursBefore       int  `json:"reminder_hours_before"`
	MaxDailyReservations      int  `json:"max_daily_reservations"`
	MaxHourlyReservations     int  `json:"max_hourly_reservations"`
}

func toSettingsResponse(settings *reservations.Settings) ReservationSettingsResponse {
	return ReservationSettingsResponse{
		AcceptsReservations:       settings.AcceptsReservations,
		MinPartySize:              settings.MinPartySize,
		MaxPartySize:              settings.MaxPartySize,
		ReservationDurationMin:    int(settings.ReservationDuration.Minutes()),
		AdvanceBookingDays:        settings.AdvanceBookingDays,
		MinAdvanceHours:           settings.MinAdvanceHours,
		BufferMinutes:             settings.BufferMinutes,
		SlotIntervalMin:           settings.SlotIntervalMin,
		CancellationDeadlineHours: settings.CancellationDeadlineHours,
		RequireConfirmation:       settings.RequireConfirmation,
		AutoConfirmThreshold:      settings.AutoConfirmThreshold,
		SendReminder:              settings.SendReminder,
		ReminderHoursBefore:       settings.ReminderHoursBefore,
		MaxDailyReservations:      settings.MaxDailyReservations,
		MaxHourlyReservations:     settings.MaxHourlyReservations,
	}
}

// BlockedTimeRequest blocks a reservation window.
type BlockedTimeRequest struct {
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	TableIDs    []string  `json:"table_ids"`
	Reason      string    `json:"reason" binding:"required"`
	Description string    `json:"description"`
}

// BlockedTimeResponse is one blocked window.
type BlockedTimeResponse struct {
	ID          string    `json:"id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	TableIDs    []string  `json:"table_ids"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
}

func toBlockedTimeResponse(block *reservations.BlockedTime) BlockedTimeResponse {
	return BlockedTimeResponse{
		ID:          block.ID,
		StartAt:     block.StartAt,
		EndAt:       block.EndAt,
		TableIDs:    block.TableIDs,
		Reason:      block.Reason,
		Description: block.Description,
	}
}

// ReservationStatsResponse aggregates booking counts for a date.
type ReservationStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Seated    int64 `json:"seated"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	NoShow    int64 `json:"no_show"`
}

// --- payments ---

// RecordPaymentRequest creates a pending payment against an order.
type RecordPaymentRequest struct {
	OrderID   string          `json:"order_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	TipAmount decimal.Decimal `json:"tip_amount"`
	Method    string          `json:"method" binding:"required"`
	Currency  string          `json:"currency"`
	Notes     string          `json:"notes"`
}

// CompletePaymentRequest settles a payment.
type CompletePaymentRequest struct {
	ExternalPaymentID string `json:"external_payment_id"`
}

// FailPaymentRequest marks a payment as failed.
type FailPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RefundRequest returns part or all of a completed payment.
type RefundRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason"`
}

// PaymentResponse is one payment.
type PaymentResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	TipAmount     decimal.Decimal `json:"tip_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	ReceiptNumber string          `json:"receipt_number"`
	CompletedAt   *time.Time      `json:"completed_at"`
	FailureReason string          `json:"failure_reason"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toPaymentResponse(payment *payments.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		TipAmount:     payment.TipAmount,
		TotalAmount:   payment.TotalAmount,
		Method:        payment.Method,
		Status:        payment.Status,
		Currency:      payment.Currency,
		ReceiptNumber: payment.ReceiptNumber,
		CompletedAt:   payment.CompletedAt,
		FailureReason: payment.FailureReason,
		CreatedAt:     payment.CreatedAt,
	}
}

// RefundResponse is one refund.
type RefundResponse struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
}

func toRefundResponse(refund *payments.Refund) RefundResponse {
	return RefundResponse{
		ID:        refund.ID,
		PaymentID: refund.PaymentID,
		Amount:    refund.Amount,
		Reason:    refund.Reason,
		CreatedAt: refund.CreatedAt,
	}
}

// --- favorites ---

// FavoriteRestaurantResponse is one saved restaurant.
type FavoriteRestaurantResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toFavoriteRestaurantResponse(favorite *favorites.FavoriteRestaurant) FavoriteRestaurantResponse {
	return FavoriteRestaurantResponse{
		ID:           favorite.ID,
		RestaurantID: favorite.RestaurantID,
		CreatedAt:    favorite.CreatedAt,
	}
}

// FavoriteMenuItemResponse is one saved menu item.
type FavoriteMenuItemResponse struct {
	ID           string    `json:"id"`
	MenuItemID   string    `json:"menu_item_id"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toFavoriteMenuItemResponse(favorite *favorites.FavoriteMenuItem) FavoriteMenuItemResponse {
	return FavoriteMenuItemResponse{
		ID:           favorite.ID,
		MenuItemID:   favorite.MenuItemID,
		RestaurantID: favorite.RestaurantID,
		CreatedAt:    favorite.CreatedAt,
	}
}

// --- audit ---

// AuditEntryResponse is one audit log record.
type AuditEntryResponse struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	IPAddress   string    `json:"ip_address"`
	Action      string    `json:"action"`
	TargetModel string    `json:"target_model"`
	TargetID    string    `json:"target_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAuditEntryResponse(entry *audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          entry.ID,
		UserID:      entry.UserID,
		UserEmail:   entry.UserEmail,
		IPAddress:   entry.IPAddress,
		Action:      entry.Action,
		TargetModel: entry.TargetModel,
		TargetID:    entry.TargetID,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}
