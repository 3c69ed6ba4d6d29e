package v1

import (
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
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/connector"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	middleware *Middleware,
	db *gorm.DB,
	cache connector.Cache,
	accountService accounts.AccountService,
	restaurantService tenants.RestaurantService,
	staffService staff.StaffService,
	menuService menu.MenuService,
	tableService tables.TableService,
	orderService orders.OrderService,
	reservationService reservations.ReservationService,
	paymentService payments.PaymentService,
	favoriteService favorites.FavoriteService,
	auditService audit.AuditService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Health Routes
	healthHandler := NewHealthHandler(db, cache)
	v1.GET("/health", healthHandler.Health)
	v1.GET("/ready", healthHandler.Ready)

	// Auth Routes
	authHandler := NewAuthHandler(accountService)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.Refresh)
	v1.GET("/auth/me", middleware.RequireAuth(), authHandler.Me)
	v1.PATCH("/auth/me", middleware.RequireAuth(), authHandler.UpdateMe)
	v1.POST("/auth/change-password", middleware.RequireAuth(), authHandler.ChangePassword)

	// Restaurant directory Routes, tenant independent
	restaurantHandler := NewRestaurantHandler(restaurantService, staffService)
	v1.GET("/restaurants", restaurantHandler.List)
	v1.POST("/restaurants", middleware.RequireAuth(), restaurantHandler.Register)

	// User scoped Routes
	favoriteHandler := NewFavoriteHandler(favoriteService)
	reservationHandler := NewReservationHandler(reservationService, cache)
	me := v1.Group("/me", middleware.RequireAuth())
	me.GET("/favorites/restaurants", favoriteHandler.ListRestaurants)
	me.POST("/favorites/restaurants/:id", favoriteHandler.AddRestaurant)
	me.DELETE("/favorites/restaurants/:id", favoriteHandler.RemoveRestaurant)
	me.GET("/favorites/menu-items", favoriteHandler.ListMenuItems)
	me.POST("/favorites/menu-items/:id", favoriteHandler.AddMenuItem)
	me.DELETE("/favorites/menu-items/:id", favoriteHandler.RemoveMenuItem)
	me.GET("/reservations", reservationHandler.ListMine)

	// Tenant scoped Routes. The restaurant resolves from the
	// X-Restaurant header or the subdomain, authentication is optional
	// for guest flows and enforced per route by permission checks.
	tenant := v1.Group("", middleware.ResolveTenant(), middleware.OptionalAuth())

	tenant.GET("/restaurant", restaurantHandler.Current)
	tenant.PATCH("/restaurant", middleware.RequirePermission("restaurant", "update"), restaurantHandler.Update)
	tenant.DELETE("/restaurant", middleware.RequirePermission("restaurant", "delete"), restaurantHandler.Deactivate)

	// Staff Routes
	tenant.GET("/staff", middleware.RequirePermission("staff", "view"), restaurantHandler.ListStaff)
	tenant.POST("/staff", middleware.RequirePermission("staff", "create"), restaurantHandler.AddStaff)
	tenant.DELETE("/staff/:id", middleware.RequirePermission("staff", "update"), restaurantHandler.RemoveStaff)

	// Menu Routes
	menuHandler := NewMenuHandler(menuService)
	tenant.GET("/menu/categories", menuHandler.ListCategories)
	tenant.POST("/menu/categories", middleware.RequirePermission("menu", "create"), menuHandler.CreateCategory)
	tenant.PATCH("/menu/categories/:id", middleware.RequirePermission("menu", "update"), menuHandler.UpdateCategory)
	tenant.DELETE("/menu/categories/:id", middleware.RequirePermission("menu", "delete"), menuHandler.DeleteCategory)
	tenant.GET("/menu/items", menuHandler.ListItems)
	tenant.GET("/menu/items/:id", menuHandler.GetItem)
	tenant.GET("/menu/items/:id/modifier-groups", menuHandler.ItemModifierGroups)
	tenant.POST("/menu/items", middleware.RequirePermission("menu", "create"), menuHandler.CreateItem)
	tenant.PATCH("/menu/items/:id", middleware.RequirePermission("menu", "update"), menuHandler.UpdateItem)
	tenant.DELETE("/menu/items/:id", middleware.RequirePermission("menu", "delete"), menuHandler.DeleteItem)
	tenant.POST("/menu/items/:id/image", middleware.RequirePermission("menu", "update"), menuHandler.UploadItemImage)
	tenant.POST("/menu/items/:id/stock", middleware.RequirePermission("menu", "update"), menuHandler.AdjustStock)
	tenant.POST("/menu/items/:id/modifier-groups/:groupId", middleware.RequirePermission("menu", "update"), menuHandler.LinkModifierGroup)
	tenant.GET("/menu/modifier-groups", menuHandler.ListModifierGroups)
	tenant.POST("/menu/modifier-groups", middleware.RequirePermission("menu", "create"), menuHandler.CreateModifierGroup)
	tenant.GET("/menu/modifier-groups/:id/modifiers", menuHandler.ListModifiers)
	tenant.POST("/menu/modifier-groups/:id/modifiers", middleware.RequirePermission("menu", "create"), menuHandler.CreateModifier)

	// Table Routes
	tableHandler := NewTableHandler(tableService)
	tenant.GET("/sections", middleware.RequirePermission("tables", "view"), tableHandler.ListSections)
	tenant.POST("/sections", middleware.RequirePermission("tables", "create"), tableHandler.CreateSection)
	tenant.GET("/tables", middleware.RequirePermission("tables", "view"), tableHandler.ListTables)
	tenant.POST("/tables", middleware.RequirePermission("tables", "create"), tableHandler.CreateTable)
	tenant.GET("/tables/:id", middleware.RequirePermission("tables", "view"), tableHandler.GetTable)
	tenant.PATCH("/tables/:id", middleware.RequirePermission("tables", "update"), tableHandler.UpdateTable)
	tenant.POST("/tables/:id/status", middleware.RequirePermission("tables", "update"), tableHandler.SetTableStatus)
	tenant.POST("/tables/:id/qrcodes", middleware.RequirePermission("tables", "create"), tableHandler.CreateQRCode)
	tenant.GET("/tables/:id/qrcodes", middleware.RequirePermission("tables", "view"), tableHandler.ListQRCodes)

	// Table session Routes, open to guests scanning a QR code
	tenant.POST("/scan/:code", tableHandler.Scan)
	tenant.POST("/sessions/join", tableHandler.JoinSession)
	tenant.POST("/sessions/:id/guests/:guestId/leave", tableHandler.LeaveSession)
	tenant.POST("/sessions/:id/close", middleware.RequirePermission("tables", "update"), tableHandler.CloseSession)

	// Order Routes
	orderHandler := NewOrderHandler(orderService)
	tenant.POST("/orders", orderHandler.Place)
	tenant.GET("/orders", middleware.RequirePermission("orders", "view"), orderHandler.List)
	tenant.GET("/orders/:id", orderHandler.GetByID)
	tenant.POST("/orders/:id/transition", middleware.RequirePermission("orders", "update"), orderHandler.Transition)
	tenant.POST("/orders/:id/cancel", middleware.RequirePermission("orders", "cancel"), orderHandler.Cancel)
	tenant.GET("/orders/:id/history", middleware.RequirePermission("orders", "view"), orderHandler.History)

	// Reservation Routes
	tenant.GET("/reservations/settings", middleware.RequirePermission("reservations", "view"), reservationHandler.GetSettings)
	tenant.PATCH("/reservations/settings", middleware.RequirePermission("reservations", "update"), reservationHandler.UpdateSettings)
	tenant.GET("/reservations/availability", reservationHandler.Availability)
	tenant.POST("/reservations", reservationHandler.Book)
	tenant.GET("/reservations/lookup/:code", reservationHandler.Lookup)
	tenant.POST("/reservations/lookup/:code/cancel", reservationHandler.CancelByGuest)
	tenant.GET("/reservations", middleware.RequirePermission("reservations", "view"), reservationHandler.List)
	tenant.GET("/reservations/stats", middleware.RequirePermission("reservations", "view"), reservationHandler.Stats)
	tenant.GET("/reservations/:id", middleware.RequirePermission("reservations", "view"), reservationHandler.GetByID)
	tenant.POST("/reservations/:id/transition", middleware.RequirePermission("reservations", "update"), reservationHandler.Transition)
	tenant.POST("/reservations/:id/cancel", middleware.RequirePermission("reservations", "cancel"), reservationHandler.Cancel)
	tenant.POST("/reservations/:id/table", middleware.RequirePermission("reservations", "update"), reservationHandler.AssignTable)
	tenant.GET("/blocked-times", middleware.RequirePermission("reservations", "view"), reservationHandler.ListBlockedTimes)
	tenant.POST("/blocked-times", middleware.RequirePermission("reservations", "create"), reservationHandler.CreateBlockedTime)
	tenant.DELETE("/blocked-times/:id", middleware.RequirePermission("reservations", "update"), reservationHandler.DeleteBlockedTime)

	// Payment Routes
	paymentHandler := NewPaymentHandler(paymentService)
	tenant.POST("/payments", middleware.RequirePermission("payments", "create"), paymentHandler.Record)
	tenant.GET("/payments/:id", middleware.RequirePermission("payments", "view"), paymentHandler.GetByID)
	tenant.POST("/payments/:id/complete", middleware.RequirePermission("payments", "create"), paymentHandler.Complete)
	tenant.POST("/payments/:id/fail", middleware.RequirePermission("payments", "create"), paymentHandler.Fail)
	tenant.POST("/payments/:id/refund", middleware.RequirePermission("payments", "refund"), paymentHandler.Refund)
	tenant.GET("/orders/:id/payments", middleware.RequirePermission("payments", "view"), paymentHandler.ListByOrder)

	// Audit Routes
	auditHandler := NewAuditHandler(auditService)
	tenant.GET("/audit", middleware.RequirePermission("audit", "view"), auditHandler.List)
}
