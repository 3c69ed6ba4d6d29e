package v1

import (
	"fmt"
	"net/http"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/favorites"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler defines the interface for handling favorite operations
type FavoriteHandler interface {
	AddRestaurant(ctx *gin.Context)
	RemoveRestaurant(ctx *gin.Context)
	ListRestaurants(ctx *gin.Context)

	AddMenuItem(ctx *gin.Context)
	RemoveMenuItem(ctx *gin.Context)
	ListMenuItems(ctx *gin.Context)
}

type favoriteHandler struct {
	favoriteService favorites.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService favorites.FavoriteService) FavoriteHandler {
	return &favoriteHandler{favoriteService: favoriteService}
}

// AddRestaurant saves a restaurant for the caller
func (handler *favoriteHandler) AddRestaurant(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)
	restaurantID := ctx.Param("id")

	favorite, err := handler.favoriteService.AddRestaurant(ctx, userID, restaurantID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("restaurant with id %s not found", restaurantID)})
		return
	}

	ctx.JSON(http.StatusCreated, toFavoriteRestaurantResponse(favorite))
}

// RemoveRestaurant removes a saved restaurant
func (handler *favoriteHandler) RemoveRestaurant(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)
	restaurantID := ctx.Param("id")

	if err := handler.favoriteService.RemoveRestaurant(ctx, userID, restaurantID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("favorite restaurant with id %s not found", restaurantID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("removed favorite restaurant with id %s", restaurantID)})
}

// ListRestaurants fetches the caller's saved restaurants
func (handler *favoriteHandler) ListRestaurants(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	favoriteList, err := handler.favoriteService.ListRestaurants(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []FavoriteRestaurantResponse{}
	for _, favorite := range favoriteList {
		listResponse = append(listResponse, toFavoriteRestaurantResponse(favorite))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// AddMenuItem saves a menu item for the caller
func (handler *favoriteHandler) AddMenuItem(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)
	menuItemID := ctx.Param("id")

	favorite, err := handler.favoriteService.AddMenuItem(ctx, userID, menuItemID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("menu item with id %s not found", menuItemID)})
		return
	}

	ctx.JSON(http.StatusCreated, toFavoriteMenuItemResponse(favorite))
}

// RemoveMenuItem removes a saved menu item
func (handler *favoriteHandler) RemoveMenuItem(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)
	menuItemID := ctx.Param("id")

	if err := handler.favoriteService.RemoveMenuItem(ctx, userID, menuItemID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("favorite menu item with id %s not found", menuItemID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("removed favorite menu item with id %s", menuItemID)})
}

// ListMenuItems fetches the caller's saved menu items
func (handler *favoriteHandler) ListMenuItems(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	favoriteList, err := handler.favoriteService.ListMenuItems(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []FavoriteMenuItemResponse{}
	for _, favorite := range favoriteList {
		listResponse = append(listResponse, toFavoriteMenuItemResponse(favorite))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
