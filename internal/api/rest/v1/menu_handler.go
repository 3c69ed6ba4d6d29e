package v1

import (
	"fmt"
	"net/http"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// MenuHandler defines the interface for handling menu operations
type MenuHandler interface {
	CreateCategory(ctx *gin.Context)
	ListCategories(ctx *gin.Context)
	UpdateCategory(ctx *gin.Context)
	DeleteCategory(ctx *gin.Context)

	CreateItem(ctx *gin.Context)
	GetItem(ctx *gin.Context)
	ListItems(ctx *gin.Context)
	UpdateItem(ctx *gin.Context)
	DeleteItem(ctx *gin.Context)
	UploadItemImage(ctx *gin.Context)
	AdjustStock(ctx *gin.Context)

	CreateModifierGroup(ctx *gin.Context)
	ListModifierGroups(ctx *gin.Context)
	CreateModifier(ctx *gin.Context)
	ListModifiers(ctx *gin.Context)
	LinkModifierGroup(ctx *gin.Context)
	ItemModifierGroups(ctx *gin.Context)
}

type menuHandler struct {
	menuService menu.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandler{menuService: menuService}
}

// CreateCategory creates a menu category
func (handler *menuHandler) CreateCategory(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	category, err := handler.menuService.CreateCategory(ctx, &menu.MenuCategory{
		RestaurantID: restaurant.ID,
		Name:         request.Name,
		Description:  request.Description,
		DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not create category: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toCategoryResponse(category))
}

// ListCategories fetches the menu categories
func (handler *menuHandler) ListCategories(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	includeInactive := strutil.ConvertToBool(ctx.Query("includeInactive"))

	categories, err := handler.menuService.ListCategories(ctx, restaurant.ID, includeInactive)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []CategoryResponse{}
	for _, category := range categories {
		listResponse = append(listResponse, toCategoryResponse(category))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateCategory updates a menu category
func (handler *menuHandler) UpdateCategory(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	categoryID := ctx.Param("id")

	var request CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	category, err := handler.menuService.UpdateCategory(ctx, &menu.MenuCategory{
		ID:           categoryID,
		RestaurantID: restaurant.ID,
		Name:         request.Name,
		Description:  request.Description,
		DisplayOrder: request.DisplayOrder,
		IsActive:     isActive,
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("category with id %s not found", categoryID)})
		return
	}

	ctx.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory deletes a menu category
func (handler *menuHandler) DeleteCategory(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	categoryID := ctx.Param("id")

	if err := handler.menuService.DeleteCategory(ctx, restaurant.ID, categoryID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("category with id %s not found", categoryID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted category with id %s", categoryID)})
}

// CreateItem creates a menu item
func (handler *menuHandler) CreateItem(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request MenuItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	item, err := handler.menuService.CreateItem(ctx, itemFromRequest(restaurant.ID, "", &request))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not create menu item: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toMenuItemResponse(item))
}

// GetItem fetches a menu item by ID
func (handler *menuHandler) GetItem(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")

	item, err := handler.menuService.GetItem(ctx, restaurant.ID, itemID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("menu item with id %s not found", itemID)})
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// ListItems fetches menu items optionally with query parameters
func (handler *menuHandler) ListItems(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	query := menu.NewMenuItemQuery()
	if categoryID := ctx.Query("categoryId"); len(categoryID) > 0 {
		query.CategoryID = categoryID
	}
	if available := ctx.Query("available"); len(available) > 0 {
		query.OnlyAvailable = strutil.ConvertToBool(available)
	}
	if featured := ctx.Query("featured"); len(featured) > 0 {
		query.OnlyFeatured = strutil.ConvertToBool(featured)
	}
	if station := ctx.Query("station"); len(station) > 0 {
		query.Station = station
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

	items, err := handler.menuService.ListItems(ctx, restaurant.ID, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []MenuItemResponse{}
	for _, item := range items {
		listResponse = append(listResponse, toMenuItemResponse(item))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateItem updates a menu item
func (handler *menuHandler) UpdateItem(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")

	var request MenuItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	item, err := handler.menuService.UpdateItem(ctx, itemFromRequest(restaurant.ID, itemID, &request))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("menu item with id %s not found", itemID)})
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// DeleteItem deletes a menu item
func (handler *menuHandler) DeleteItem(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")

	if err := handler.menuService.DeleteItem(ctx, restaurant.ID, itemID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("menu item with id %s not found", itemID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted menu item with id %s", itemID)})
}

// UploadItemImage stores an item image and records its URL
func (handler *menuHandler) UploadItemImage(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")

	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form data"})
		return
	}

	item, err := handler.menuService.UploadItemImage(ctx, restaurant.ID, itemID, file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error uploading item image: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// AdjustStock applies a stock delta to an inventory-tracked item
func (handler *menuHandler) AdjustStock(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")

	var request StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	item, err := handler.menuService.AdjustStock(ctx, restaurant.ID, itemID, request.Delta)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// CreateModifierGroup creates a modifier group
func (handler *menuHandler) CreateModifierGroup(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request ModifierGroupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	group, err := handler.menuService.CreateModifierGroup(ctx, &menu.ModifierGroup{
		RestaurantID:  restaurant.ID,
		Name:          request.Name,
		Description:   request.Description,
		SelectionType: request.SelectionType,
		MinSelections: request.MinSelections,
		MaxSelections: request.MaxSelections,
		IsRequired:    request.IsRequired,
		DisplayOrder:  request.DisplayOrder,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not create modifier group: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toModifierGroupResponse(group))
}

// ListModifierGroups fetches the restaurant's modifier groups
func (handler *menuHandler) ListModifierGroups(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	groups, err := handler.menuService.ListModifierGroups(ctx, restaurant.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []ModifierGroupResponse{}
	for _, group := range groups {
		listResponse = append(listResponse, toModifierGroupResponse(group))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// CreateModifier creates a modifier within a group
func (handler *menuHandler) CreateModifier(ctx *gin.Context) {
	groupID := ctx.Param("id")

	var request ModifierRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	modifier, err := handler.menuService.CreateModifier(ctx, &menu.Modifier{
		GroupID:         groupID,
		Name:            request.Name,
		PriceAdjustment: request.PriceAdjustment,
		IsDefault:       request.IsDefault,
		DisplayOrder:    request.DisplayOrder,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not create modifier: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toModifierResponse(modifier))
}

// ListModifiers fetches a group's modifiers
func (handler *menuHandler) ListModifiers(ctx *gin.Context) {
	groupID := ctx.Param("id")

	modifiers, err := handler.menuService.ListModifiers(ctx, groupID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []ModifierResponse{}
	for _, modifier := range modifiers {
		listResponse = append(listResponse, toModifierResponse(modifier))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// LinkModifierGroup attaches a modifier group to a menu item
func (handler *menuHandler) LinkModifierGroup(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")
	groupID := ctx.Param("groupId")

	if err := handler.menuService.LinkModifierGroup(ctx, restaurant.ID, itemID, groupID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("linked modifier group %s to item %s", groupID, itemID)})
}

// ItemModifierGroups fetches the modifier groups attached to an item
func (handler *menuHandler) ItemModifierGroups(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	itemID := ctx.Param("id")

	groups, err := handler.menuService.ItemModifierGroups(ctx, restaurant.ID, itemID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("menu item with id %s not found", itemID)})
		return
	}

	listResponse := []ModifierGroupResponse{}
	for _, group := range groups {
		listResponse = append(listResponse, toModifierGroupResponse(group))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

func itemFromRequest(restaurantID, itemID string, request *MenuItemRequest) *menu.MenuItem {
	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}
	return &menu.MenuItem{
		ID:                 itemID,
		RestaurantID:       restaurantID,
		CategoryID:         request.CategoryID,
		Name:               request.Name,
		Description:        request.Description,
		Price:              request.Price,
		IsAvailable:        isAvailable,
		IsFeatured:         request.IsFeatured,
		DisplayOrder:       request.DisplayOrder,
		PreparationMinutes: request.PreparationMinutes,
		PreparationStation: request.PreparationStation,
		Calories:           request.Calories,
		Allergens:          request.Allergens,
		IsVegetarian:       request.IsVegetarian,
		IsVegan:            request.IsVegan,
		IsGlutenFree:       request.IsGlutenFree,
		IsSpicy:            request.IsSpicy,
		SpicyLevel:         request.SpicyLevel,
		TrackStock:         request.TrackStock,
		StockQuantity:      request.StockQuantity,
	}
}
