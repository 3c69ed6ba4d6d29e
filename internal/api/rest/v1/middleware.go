package v1

import (
	"net/http"
	"strings"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware chain.
const (
	ctxRestaurantKey = "restaurant"
	ctxUserIDKey     = "userID"
)

// Middleware bundles the cross-cutting request handlers: tenant
// resolution, authentication and permission checks.
type Middleware struct {
	restaurantService tenants.RestaurantService
	staffService      staff.StaffService
	tokenIssuer       accounts.TokenIssuer
	mainDomain        string
}

// NewMiddleware creates the middleware set.
func NewMiddleware(
	restaurantService tenants.RestaurantService,
	staffService staff.StaffService,
	tokenIssuer accounts.TokenIssuer,
	mainDomain string,
) *Middleware {
	return &Middleware{
		restaurantService: restaurantService,
		staffService:      staffService,
		tokenIssuer:       tokenIssuer,
		mainDomain:        mainDomain,
	}
}

// ResolveTenant resolves the restaurant of the request from the
// X-Restaurant header, falling back to the subdomain of the main
// domain. Requests that resolve to no active restaurant are rejected.
func (m *Middleware) ResolveTenant() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		slug := ctx.GetHeader("X-Restaurant")
		if slug == "" {
			slug = m.slugFromHost(ctx.Request.Host)
		}
		if slug == "" {
			ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "restaurant not found"})
			return
		}

		restaurant, err := m.restaurantService.GetBySlug(ctx, slug)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "restaurant not found"})
			return
		}

		ctx.Set(ctxRestaurantKey, restaurant)
		ctx.Next()
	}
}

// RequireAuth validates the bearer token and stores the user id on the
// context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := m.bearerUserID(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		ctx.Set(ctxUserIDKey, userID)
		ctx.Next()
	}
}

// OptionalAuth stores the user id when a valid bearer token is present
// and lets anonymous requests pass.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if userID, ok := m.bearerUserID(ctx); ok {
			ctx.Set(ctxUserIDKey, userID)
		}
		ctx.Next()
	}
}

// RequirePermission rejects callers lacking the staff permission at the
// resolved restaurant. Owners always pass.
func (m *Middleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		restaurant := currentRestaurant(ctx)
		userID, authenticated := currentUserID(ctx)
		if restaurant == nil || !authenticated {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}

		allowed, err := m.staffService.HasPermission(ctx, restaurant.ID, userID, resource, action)
		if err != nil || !allowed {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "permission denied"})
			return
		}
		ctx.Next()
	}
}

func (m *Middleware) bearerUserID(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	userID, err := m.tokenIssuer.VerifyAccess(token)
	if err != nil {
		return "", false
	}
	return userID, true
}

// slugFromHost extracts the tenant slug from a host of the form
// <slug>.<main domain>. Reserved subdomains never resolve to a tenant.
func (m *Middleware) slugFromHost(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	suffix := "." + m.mainDomain
	if !strings.HasSuffix(host, suffix) {
		return ""
	}
	sub := strings.TrimSuffix(host, suffix)
	if sub == "" || strings.Contains(sub, ".") {
		return ""
	}
	for _, reserved := range config.ReservedSubdomains {
		if sub == reserved {
			return ""
		}
	}
	return sub
}

func currentRestaurant(ctx *gin.Context) *tenants.Restaurant {
	value, exists := ctx.Get(ctxRestaurantKey)
	if !exists {
		return nil
	}
	restaurant, ok := value.(*tenants.Restaurant)
	if !ok {
		return nil
	}
	return restaurant
}

func currentUserID(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}

func currentUserIDPtr(ctx *gin.Context) *string {
	if userID, ok := currentUserID(ctx); ok {
		return &userID
	}
	return nil
}
