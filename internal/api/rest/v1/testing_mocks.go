//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"
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
	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, registration *accounts.Registration) (*accounts.User, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password, remoteIP string) (*accounts.User, *accounts.TokenPair, error) {
	args := m.Called(ctx, email, password, remoteIP)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*accounts.User), args.Get(1).(*accounts.TokenPair), args.Error(2)
}

func (m *MockAccountService) Refresh(ctx context.Context, refreshToken string) (*accounts.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.TokenPair), args.Error(1)
}

func (m *MockAccountService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) Update(ctx context.Context, userID string, update *accounts.ProfileUpdate) (*accounts.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssuePair(userID, email string) (*accounts.TokenPair, error) {
	args := m.Called(userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) VerifyAccess(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) VerifyRefresh(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// MockRestaurantService is a mock implementation of RestaurantService
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) Register(ctx context.Context, ownerID, name, slug string) (*tenants.Restaurant, error) {
	args := m.Called(ctx, ownerID, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetBySlug(ctx context.Context, slug string) (*tenants.Restaurant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetByID(ctx context.Context, restaurantID string) (*tenants.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) List(ctx context.Context, query *tenants.RestaurantQuery) ([]*tenants.Restaurant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tenants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Update(ctx context.Context, restaurantID string, update *tenants.RestaurantUpdate) (*tenants.Restaurant, error) {
	args := m.Called(ctx, restaurantID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenants.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Deactivate(ctx context.Context, restaurantID string) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// MockStaffService is a mock implementation of StaffService
type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) EnsureDefaultRoles(ctx context.Context, restaurantID string) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockStaffService) AddMember(ctx context.Context, restaurantID, userID, roleName string) (*staff.StaffMember, error) {
	args := m.Called(ctx, restaurantID, userID, roleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.StaffMember), args.Error(1)
}

func (m *MockStaffService) RemoveMember(ctx context.Context, restaurantID, memberID string) error {
	args := m.Called(ctx, restaurantID, memberID)
	return args.Error(0)
}

func (m *MockStaffService) ListMembers(ctx context.Context, restaurantID string) ([]*staff.StaffMember, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.StaffMember), args.Error(1)
}

func (m *MockStaffService) HasPermission(ctx context.Context, restaurantID, userID, resource, action string) (bool, error) {
	args := m.Called(ctx, restaurantID, userID, resource, action)
	return args.Bool(0), args.Error(1)
}

// MockMenuService is a mock implementation of MenuService
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) CreateCategory(ctx context.Context, category *menu.MenuCategory) (*menu.MenuCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuCategory), args.Error(1)
}

func (m *MockMenuService) ListCategories(ctx context.Context, restaurantID string, includeInactive bool) ([]*menu.MenuCategory, error) {
	args := m.Called(ctx, restaurantID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuCategory), args.Error(1)
}

func (m *MockMenuService) UpdateCategory(ctx context.Context, category *menu.MenuCategory) (*menu.MenuCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuCategory), args.Error(1)
}

func (m *MockMenuService) DeleteCategory(ctx context.Context, restaurantID, categoryID string) error {
	args := m.Called(ctx, restaurantID, categoryID)
	return args.Error(0)
}

func (m *MockMenuService) CreateItem(ctx context.Context, item *menu.MenuItem) (*menu.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) GetItem(ctx context.Context, restaurantID, itemID string) (*menu.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) ListItems(ctx context.Context, restaurantID string, query *menu.MenuItemQuery) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, restaurantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) UpdateItem(ctx context.Context, item *menu.MenuItem) (*menu.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) DeleteItem(ctx context.Context, restaurantID, itemID string) error {
	args := m.Called(ctx, restaurantID, itemID)
	return args.Error(0)
}

func (m *MockMenuService) UploadItemImage(ctx context.Context, restaurantID, itemID string, file *multipart.FileHeader) (*menu.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) CreateModifierGroup(ctx context.Context, group *menu.ModifierGroup) (*menu.ModifierGroup, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.ModifierGroup), args.Error(1)
}

func (m *MockMenuService) ListModifierGroups(ctx context.Context, restaurantID string) ([]*menu.ModifierGroup, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.ModifierGroup), args.Error(1)
}

func (m *MockMenuService) CreateModifier(ctx context.Context, modifier *menu.Modifier) (*menu.Modifier, error) {
	args := m.Called(ctx, modifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Modifier), args.Error(1)
}

func (m *MockMenuService) ListModifiers(ctx context.Context, groupID string) ([]*menu.Modifier, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Modifier), args.Error(1)
}

func (m *MockMenuService) LinkModifierGroup(ctx context.Context, restaurantID, itemID, groupID string) error {
	args := m.Called(ctx, restaurantID, itemID, groupID)
	return args.Error(0)
}

func (m *MockMenuService) ItemModifierGroups(ctx context.Context, restaurantID, itemID string) ([]*menu.ModifierGroup, error) {
	args := m.Called(ctx, restaurantID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.ModifierGroup), args.Error(1)
}

func (m *MockMenuService) AdjustStock(ctx context.Context, restaurantID, itemID string, delta int) (*menu.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

// MockTableService is a mock implementation of TableService
type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) CreateSection(ctx context.Context, section *tables.TableSection) (*tables.TableSection, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.TableSection), args.Error(1)
}

func (m *MockTableService) ListSections(ctx context.Context, restaurantID string) ([]*tables.TableSection, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tables.TableSection), args.Error(1)
}

func (m *MockTableService) CreateTable(ctx context.Context, table *tables.Table) (*tables.Table, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Table), args.Error(1)
}

func (m *MockTableService) GetTable(ctx context.Context, restaurantID, tableID string) (*tables.Table, error) {
	args := m.Called(ctx, restaurantID, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Table), args.Error(1)
}

func (m *MockTableService) ListTables(ctx context.Context, restaurantID string) ([]*tables.Table, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tables.Table), args.Error(1)
}

func (m *MockTableService) UpdateTable(ctx context.Context, table *tables.Table) (*tables.Table, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Table), args.Error(1)
}

func (m *MockTableService) SetTableStatus(ctx context.Context, restaurantID, tableID, status string) (*tables.Table, error) {
	args := m.Called(ctx, restaurantID, tableID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.Table), args.Error(1)
}

func (m *MockTableService) CreateQRCode(ctx context.Context, restaurantID, tableID, name string) (*tables.TableQRCode, error) {
	args := m.Called(ctx, restaurantID, tableID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.TableQRCode), args.Error(1)
}

func (m *MockTableService) ListQRCodes(ctx context.Context, restaurantID, tableID string) ([]*tables.TableQRCode, error) {
	args := m.Called(ctx, restaurantID, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tables.TableQRCode), args.Error(1)
}

func (m *MockTableService) Scan(ctx context.Context, code string, userID *string, guestName string) (*tables.ScanResult, error) {
	args := m.Called(ctx, code, userID, guestName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.ScanResult), args.Error(1)
}

func (m *MockTableService) JoinByInviteCode(ctx context.Context, inviteCode string, userID *string, guestName string) (*tables.ScanResult, error) {
	args := m.Called(ctx, inviteCode, userID, guestName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tables.ScanResult), args.Error(1)
}

func (m *MockTableService) LeaveSession(ctx context.Context, sessionID, guestID string) error {
	args := m.Called(ctx, sessionID, guestID)
	return args.Error(0)
}

func (m *MockTableService) CloseSession(ctx context.Context, restaurantID, sessionID string) error {
	args := m.Called(ctx, restaurantID, sessionID)
	return args.Error(0)
}

func (m *MockTableService) ExpireStaleSessions(ctx context.Context, maxIdle time.Duration, now time.Time) (int, error) {
	args := m.Called(ctx, maxIdle, now)
	return args.Int(0), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, newOrder *orders.NewOrder) (*orders.Order, error) {
	args := m.Called(ctx, newOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, restaurantID, orderID string) (*orders.Order, error) {
	args := m.Called(ctx, restaurantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, restaurantID string, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, restaurantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) Transition(ctx context.Context, restaurantID, orderID, target string, changedBy *string, notes string) (*orders.Order, error) {
	args := m.Called(ctx, restaurantID, orderID, target, changedBy, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, restaurantID, orderID string, cancelledBy *string, reason string) (*orders.Order, error) {
	args := m.Called(ctx, restaurantID, orderID, cancelledBy, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) History(ctx context.Context, restaurantID, orderID string) ([]*orders.StatusChange, error) {
	args := m.Called(ctx, restaurantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.StatusChange), args.Error(1)
}

// MockReservationService is a mock implementation of ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) GetSettings(ctx context.Context, restaurantID string) (*reservations.Settings, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Settings), args.Error(1)
}

func (m *MockReservationService) UpdateSettings(ctx context.Context, settings *reservations.Settings) (*reservations.Settings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Settings), args.Error(1)
}

func (m *MockReservationService) Availability(ctx context.Context, restaurantID string, date time.Time, partySize int) ([]*reservations.Slot, error) {
	args := m.Called(ctx, restaurantID, date, partySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservations.Slot), args.Error(1)
}

func (m *MockReservationService) Book(ctx context.Context, request *reservations.BookingRequest) (*reservations.Reservation, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) Lookup(ctx context.Context, restaurantID, confirmationCode string) (*reservations.Reservation, error) {
	args := m.Called(ctx, restaurantID, confirmationCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) GetByID(ctx context.Context, restaurantID, reservationID string) (*reservations.Reservation, error) {
	args := m.Called(ctx, restaurantID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context, restaurantID string, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	args := m.Called(ctx, restaurantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) ListByCustomer(ctx context.Context, customerID string, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	args := m.Called(ctx, customerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) Transition(ctx context.Context, restaurantID, reservationID, target string, changedBy *string, notes string) (*reservations.Reservation, error) {
	args := m.Called(ctx, restaurantID, reservationID, target, changedBy, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) Cancel(ctx context.Context, restaurantID, reservationID string, cancelledBy *string, reason string, enforceDeadline bool) (*reservations.Reservation, error) {
	args := m.Called(ctx, restaurantID, reservationID, cancelledBy, reason, enforceDeadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) AssignTable(ctx context.Context, restaurantID, reservationID, tableID string) (*reservations.Reservation, error) {
	args := m.Called(ctx, restaurantID, reservationID, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) Stats(ctx context.Context, restaurantID string, date time.Time) (*reservations.Stats, error) {
	args := m.Called(ctx, restaurantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.Stats), args.Error(1)
}

func (m *MockReservationService) CreateBlockedTime(ctx context.Context, block *reservations.BlockedTime) (*reservations.BlockedTime, error) {
	args := m.Called(ctx, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservations.BlockedTime), args.Error(1)
}

func (m *MockReservationService) ListBlockedTimes(ctx context.Context, restaurantID string) ([]*reservations.BlockedTime, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservations.BlockedTime), args.Error(1)
}

func (m *MockReservationService) DeleteBlockedTime(ctx context.Context, restaurantID, blockID string) error {
	args := m.Called(ctx, restaurantID, blockID)
	return args.Error(0)
}

func (m *MockReservationService) DueReminders(ctx context.Context, now time.Time) ([]*reservations.Reservation, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservations.Reservation), args.Error(1)
}

func (m *MockReservationService) MarkReminderSent(ctx context.Context, reservationID string, sentAt time.Time) error {
	args := m.Called(ctx, reservationID, sentAt)
	return args.Error(0)
}

func (m *MockReservationService) MarkOverdueNoShows(ctx context.Context, grace time.Duration, now time.Time) (int, error) {
	args := m.Called(ctx, grace, now)
	return args.Int(0), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Record(ctx context.Context, payment *payments.Payment) (*payments.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) Complete(ctx context.Context, restaurantID, paymentID string, externalPaymentID string) (*payments.Payment, error) {
	args := m.Called(ctx, restaurantID, paymentID, externalPaymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) Fail(ctx context.Context, restaurantID, paymentID, reason string) (*payments.Payment, error) {
	args := m.Called(ctx, restaurantID, paymentID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) Refund(ctx context.Context, restaurantID, paymentID string, amount decimal.Decimal, reason string, processedBy *string) (*payments.Refund, error) {
	args := m.Called(ctx, restaurantID, paymentID, amount, reason, processedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Refund), args.Error(1)
}

func (m *MockPaymentService) ListByOrder(ctx context.Context, restaurantID, orderID string) ([]*payments.Payment, error) {
	args := m.Called(ctx, restaurantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) GetByID(ctx context.Context, restaurantID, paymentID string) (*payments.Payment, error) {
	args := m.Called(ctx, restaurantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

// MockFavoriteService is a mock implementation of FavoriteService
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) AddRestaurant(ctx context.Context, userID, restaurantID string) (*favorites.FavoriteRestaurant, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favorites.FavoriteRestaurant), args.Error(1)
}

func (m *MockFavoriteService) RemoveRestaurant(ctx context.Context, userID, restaurantID string) error {
	args := m.Called(ctx, userID, restaurantID)
	return args.Error(0)
}

func (m *MockFavoriteService) ListRestaurants(ctx context.Context, userID string) ([]*favorites.FavoriteRestaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*favorites.FavoriteRestaurant), args.Error(1)
}

func (m *MockFavoriteService) AddMenuItem(ctx context.Context, userID, menuItemID string) (*favorites.FavoriteMenuItem, error) {
	args := m.Called(ctx, userID, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*favorites.FavoriteMenuItem), args.Error(1)
}

func (m *MockFavoriteService) RemoveMenuItem(ctx context.Context, userID, menuItemID string) error {
	args := m.Called(ctx, userID, menuItemID)
	return args.Error(0)
}

func (m *MockFavoriteService) ListMenuItems(ctx context.Context, userID string) ([]*favorites.FavoriteMenuItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*favorites.FavoriteMenuItem), args.Error(1)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *audit.Entry) {
	m.Called(ctx, entry)
}

func (m *MockAuditService) List(ctx context.Context, restaurantID string, query *audit.EntryQuery) ([]*audit.Entry, error) {
	args := m.Called(ctx, restaurantID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}
