package v1

import (
	"fmt"
	"net/http"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler defines the interface for handling tenant operations
type RestaurantHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	Current(ctx *gin.Context)
	Update(ctx *gin.Context)
	Deactivate(ctx *gin.Context)
	ListStaff(ctx *gin.Context)
	AddStaff(ctx *gin.Context)
	RemoveStaff(ctx *gin.Context)
}

type restaurantHandler struct {
	restaurantService tenants.RestaurantService
	staffService      staff.StaffService
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(restaurantService tenants.RestaurantService, staffService staff.StaffService) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		staffService:      staffService,
	}
}

// Register creates a restaurant owned by the caller
func (handler *restaurantHandler) Register(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	var request CreateRestaurantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	restaurant, err := handler.restaurantService.Register(ctx, userID, request.Name, request.Slug)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not register restaurant: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toRestaurantResponse(restaurant))
}

// List fetches restaurants optionally with query parameters
func (handler *restaurantHandler) List(ctx *gin.Context) {
	query := tenants.NewRestaurantQuery()

	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	restaurants, err := handler.restaurantService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []RestaurantResponse{}
	for _, restaurant := range restaurants {
		listResponse = append(listResponse, toRestaurantResponse(restaurant))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Current returns the restaurant resolved for this request
func (handler *restaurantHandler) Current(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant))
}

// Update applies a partial update to the current restaurant
func (handler *restaurantHandler) Update(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request UpdateRestaurantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	updated, err := handler.restaurantService.Update(ctx, restaurant.ID, &tenants.RestaurantUpdate{
		Name:          request.Name,
		TaxRate:       request.TaxRate,
		ServiceCharge: request.ServiceCharge,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("update failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toRestaurantResponse(updated))
}

// Deactivate removes the restaurant from tenant resolution
func (handler *restaurantHandler) Deactivate(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	if err := handler.restaurantService.Deactivate(ctx, restaurant.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deactivated restaurant %s", restaurant.Slug)})
}

// ListStaff lists the active staff roster
func (handler *restaurantHandler) ListStaff(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	members, err := handler.staffService.ListMembers(ctx, restaurant.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []StaffMemberResponse{}
	for _, member := range members {
		listResponse = append(listResponse, toStaffMemberResponse(member))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// AddStaff assigns a user to a role at the restaurant
func (handler *restaurantHandler) AddStaff(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request AddStaffRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	member, err := handler.staffService.AddMember(ctx, restaurant.ID, request.UserID, request.RoleName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not add staff member: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toStaffMemberResponse(member))
}

// RemoveStaff deactivates a staff member
func (handler *restaurantHandler) RemoveStaff(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	memberID := ctx.Param("id")

	if err := handler.staffService.RemoveMember(ctx, restaurant.ID, memberID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("staff member with id %s not found", memberID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("removed staff member with id %s", memberID)})
}
