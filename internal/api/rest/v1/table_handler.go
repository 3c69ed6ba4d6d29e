package v1

import (
	"fmt"
	"net/http"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"

	"github.com/gin-gonic/gin"
)

// TableHandler defines the interface for handling floor plan and
// session operations
type TableHandler interface {
	CreateSection(ctx *gin.Context)
	ListSections(ctx *gin.Context)

	CreateTable(ctx *gin.Context)
	GetTable(ctx *gin.Context)
	ListTables(ctx *gin.Context)
	UpdateTable(ctx *gin.Context)
	SetTableStatus(ctx *gin.Context)

	CreateQRCode(ctx *gin.Context)
	ListQRCodes(ctx *gin.Context)

	Scan(ctx *gin.Context)
	JoinSession(ctx *gin.Context)
	LeaveSession(ctx *gin.Context)
	CloseSession(ctx *gin.Context)
}

type tableHandler struct {
	tableService tables.TableService
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(tableService tables.TableService) TableHandler {
	return &tableHandler{tableService: tableService}
}

// CreateSection creates a floor-plan section
func (handler *tableHandler) CreateSection(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request SectionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	section, err := handler.tableService.CreateSection(ctx, &tables.TableSection{
		RestaurantID: restaurant.ID,
		Name:         request.Name,
		Description:  request.Description,
		DisplayOrder: request.DisplayOrder,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not create section: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toSectionResponse(section))
}

// ListSections fetches the restaurant's sections
func (handler *tableHandler) ListSections(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	sections, err := handler.tableService.ListSections(ctx, restaurant.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []SectionResponse{}
	for _, section := range sections {
		listResponse = append(listResponse, toSectionResponse(section))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// CreateTable creates a table
func (handler *tableHandler) CreateTable(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request TableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	table, err := handler.tableService.CreateTable(ctx, tableFromRequest(restaurant.ID, "", &request))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not create table: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toTableResponse(table))
}

// GetTable fetches a table by ID
func (handler *tableHandler) GetTable(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	tableID := ctx.Param("id")

	table, err := handler.tableService.GetTable(ctx, restaurant.ID, tableID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("table with id %s not found", tableID)})
		return
	}

	ctx.JSON(http.StatusOK, toTableResponse(table))
}

// ListTables fetches the restaurant's tables
func (handler *tableHandler) ListTables(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	allTables, err := handler.tableService.ListTables(ctx, restaurant.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []TableResponse{}
	for _, table := range allTables {
		listResponse = append(listResponse, toTableResponse(table))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// UpdateTable updates a table
func (handler *tableHandler) UpdateTable(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	tableID := ctx.Param("id")

	var request TableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	existing, err := handler.tableService.GetTable(ctx, restaurant.ID, tableID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("table with id %s not found", tableID)})
		return
	}

	table := tableFromRequest(restaurant.ID, tableID, &request)
	table.Status = existing.Status
	table.IsActive = existing.IsActive

	updated, err := handler.tableService.UpdateTable(ctx, table)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("update failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toTableResponse(updated))
}

// SetTableStatus sets a table's floor status
func (handler *tableHandler) SetTableStatus(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	tableID := ctx.Param("id")

	var request TableStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	table, err := handler.tableService.SetTableStatus(ctx, restaurant.ID, tableID, request.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toTableResponse(table))
}

// CreateQRCode creates a QR code for a table
func (handler *tableHandler) CreateQRCode(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	tableID := ctx.Param("id")

	var request QRCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	qr, err := handler.tableService.CreateQRCode(ctx, restaurant.ID, tableID, request.Name)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("table with id %s not found", tableID)})
		return
	}

	ctx.JSON(http.StatusCreated, toQRCodeResponse(qr))
}

// ListQRCodes fetches a table's QR codes
func (handler *tableHandler) ListQRCodes(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	tableID := ctx.Param("id")

	codes, err := handler.tableService.ListQRCodes(ctx, restaurant.ID, tableID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("table with id %s not found", tableID)})
		return
	}

	listResponse := []QRCodeResponse{}
	for _, qr := range codes {
		listResponse = append(listResponse, toQRCodeResponse(qr))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Scan resolves a QR code and opens or joins the table session
func (handler *tableHandler) Scan(ctx *gin.Context) {
	code := ctx.Param("code")

	var request ScanRequest
	// The body is optional for anonymous scans.
	_ = ctx.ShouldBindJSON(&request)

	result, err := handler.tableService.Scan(ctx, code, currentUserIDPtr(ctx), request.GuestName)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toScanResponse(result))
}

// JoinSession adds a guest to an active session by invite code
func (handler *tableHandler) JoinSession(ctx *gin.Context) {
	var request JoinSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	result, err := handler.tableService.JoinByInviteCode(ctx, request.InviteCode, currentUserIDPtr(ctx), request.GuestName)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toScanResponse(result))
}

// LeaveSession marks a guest as having left
func (handler *tableHandler) LeaveSession(ctx *gin.Context) {
	sessionID := ctx.Param("id")
	guestID := ctx.Param("guestId")

	if err := handler.tableService.LeaveSession(ctx, sessionID, guestID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "left session"})
}

// CloseSession closes the session and frees the table
func (handler *tableHandler) CloseSession(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	sessionID := ctx.Param("id")

	if err := handler.tableService.CloseSession(ctx, restaurant.ID, sessionID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("session with id %s not found", sessionID)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("closed session with id %s", sessionID)})
}

func tableFromRequest(restaurantID, tableID string, request *TableRequest) *tables.Table {
	return &tables.Table{
		ID:           tableID,
		RestaurantID: restaurantID,
		SectionID:    request.SectionID,
		Number:       request.Number,
		Name:         request.Name,
		Capacity:     request.Capacity,
		MinCapacity:  request.MinCapacity,
		PositionX:    request.PositionX,
		PositionY:    request.PositionY,
		Shape:        request.Shape,
	}
}
