package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/connector"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// availabilityCacheTTL bounds how stale a cached availability grid may
// get before it is recomputed.
const availabilityCacheTTL = time.Minute

// ReservationHandler defines the interface for handling booking operations
type ReservationHandler interface {
	GetSettings(ctx *gin.Context)
	UpdateSettings(ctx *gin.Context)

	Availability(ctx *gin.Context)
	Book(ctx *gin.Context)
	Lookup(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	Transition(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	CancelByGuest(ctx *gin.Context)
	AssignTable(ctx *gin.Context)
	Stats(ctx *gin.Context)

	CreateBlockedTime(ctx *gin.Context)
	ListBlockedTimes(ctx *gin.Context)
	DeleteBlockedTime(ctx *gin.Context)
}

type reservationHandler struct {
	reservationService reservations.ReservationService
	cache              connector.Cache
}

// NewReservationHandler creates a new ReservationHandler. The cache is
// optional; without one availability is recomputed on every request.
func NewReservationHandler(reservationService reservations.ReservationService, cache connector.Cache) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
		cache:              cache,
	}
}

// GetSettings fetches the booking policy
func (handler *reservationHandler) GetSettings(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	settings, err := handler.reservationService.GetSettings(ctx, restaurant.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings replaces the booking policy
func (handler *reservationHandler) UpdateSettings(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request ReservationSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	settings, err := handler.reservationService.UpdateSettings(ctx, &reservations.Settings{
		RestaurantID:              restaurant.ID,
		AcceptsReservations:       request.AcceptsReservations,
		MinPartySize:              request.MinPartySize,
		MaxPartySize:              request.MaxPartySize,
		ReservationDuration:       time.Duration(request.ReservationDurationMin) * time.Minute,
		AdvanceBookingDays:        request.AdvanceBookingDays,
		MinAdvanceHours:           request.MinAdvanceHours,
		BufferMinutes:             request.BufferMinutes,
		SlotIntervalMin:           request.SlotIntervalMin,
		CancellationDeadlineHours: request.CancellationDeadlineHours,
		RequireConfirmation:       request.RequireConfirmation,
		AutoConfirmThreshold:      request.AutoConfirmThreshold,
		SendReminder:              request.SendReminder,
		ReminderHoursBefore:       request.ReminderHoursBefore,
		MaxDailyReservations:      request.MaxDailyReservations,
		MaxHourlyReservations:     request.MaxHourlyReservations,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toSettingsResponse(settings))
}

// Availability fetches the bookable slots for a date and party size
func (handler *reservationHandler) Availability(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "date must be of the form YYYY-MM-DD"})
		return
	}
	partySize := strutil.ConvertToInt(ctx.Query("partySize"))
	if partySize < 1 {
		partySize = 2
	}

	cacheKey := fmt.Sprintf("availability:%s:%s:%d", restaurant.ID, date.Format("2006-01-02"), partySize)
	if handler.cache != nil {
		if cached, err := handler.cache.Get(ctx, cacheKey); err == nil {
			var listResponse []SlotResponse
			if json.Unmarshal([]byte(cached), &listResponse) == nil {
				ctx.JSON(http.StatusOK, listResponse)
				return
			}
		}
	}

	slots, err := handler.reservationService.Availability(ctx, restaurant.ID, date, partySize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []SlotResponse{}
	for _, slot := range slots {
		listResponse = append(listResponse, SlotResponse{
			Start:     slot.Start.Format("15:04"),
			Available: slot.Available,
		})
	}

	if handler.cache != nil {
		if payload, err := json.Marshal(listResponse); err == nil {
			// Serving the fresh result matters more than caching it.
			_ = handler.cache.Set(ctx, cacheKey, string(payload), availabilityCacheTTL)
		}
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Book places a reservation
func (handler *reservationHandler) Book(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request BookReservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "date must be of the form YYYY-MM-DD"})
		return
	}
	startTime, err := time.Parse("15:04", request.StartTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "start_time must be of the form HH:MM"})
		return
	}

	reservation, err := handler.reservationService.Book(ctx, &reservations.BookingRequest{
		RestaurantID:    restaurant.ID,
		CustomerID:      currentUserIDPtr(ctx),
		GuestName:       request.GuestName,
		GuestEmail:      request.GuestEmail,
		GuestPhone:      request.GuestPhone,
		Date:            date,
		StartTime:       startTime,
		PartySize:       request.PartySize,
		TableID:         request.TableID,
		Source:          request.Source,
		SpecialRequests: request.SpecialRequests,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not book reservation: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toReservationResponse(reservation))
}

// Lookup fetches a reservation by confirmation code
func (handler *reservationHandler) Lookup(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	code := ctx.Param("code")

	reservation, err := handler.reservationService.Lookup(ctx, restaurant.ID, code)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("reservation with code %s not found", code)})
		return
	}

	ctx.JSON(http.StatusOK, toReservationResponse(reservation))
}

// GetByID fetches a reservation by ID
func (handler *reservationHandler) GetByID(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	reservationID := ctx.Param("id")

	reservation, err := handler.reservationService.GetByID(ctx, restaurant.ID, reservationID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("reservation with id %s not found", reservationID)})
		return
	}

	ctx.JSON(http.StatusOK, toReservationResponse(reservation))
}

// List fetches reservations optionally with query parameters
func (handler *reservationHandler) List(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	query, err := reservationQueryFromRequest(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	reservationList, err := handler.reservationService.List(ctx, restaurant.ID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []ReservationResponse{}
	for _, reservation := range reservationList {
		listResponse = append(listResponse, toReservationResponse(reservation))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// ListMine fetches the authenticated customer's reservations
func (handler *reservationHandler) ListMine(ctx *gin.Context) {
	userID, _ := currentUserID(ctx)

	query, err := reservationQueryFromRequest(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	reservationList, err := handler.reservationService.ListByCustomer(ctx, userID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []ReservationResponse{}
	for _, reservation := range reservationList {
		listResponse = append(listResponse, toReservationResponse(reservation))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Transition moves a reservation to a target status
func (handler *reservationHandler) Transition(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	reservationID := ctx.Param("id")

	var request ReservationTransitionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	reservation, err := handler.reservationService.Transition(ctx, restaurant.ID, reservationID, request.Status, currentUserIDPtr(ctx), request.Notes)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toReservationResponse(reservation))
}

// Cancel cancels a reservation on behalf of staff
func (handler *reservationHandler) Cancel(ctx *gin.Context) {
	handler.cancel(ctx, ctx.Param("id"), false)
}

// CancelByGuest cancels the reservation behind a confirmation code,
// enforcing the cancellation deadline. Guests never see internal ids.
func (handler *reservationHandler) CancelByGuest(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	reservation, err := handler.reservationService.Lookup(ctx, restaurant.ID, ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		return
	}

	handler.cancel(ctx, reservation.ID, true)
}

func (handler *reservationHandler) cancel(ctx *gin.Context, reservationID string, enforceDeadline bool) {
	restaurant := currentRestaurant(ctx)

	var request CancelRequest
	_ = ctx.ShouldBindJSON(&request)

	reservation, err := handler.reservationService.Cancel(ctx, restaurant.ID, reservationID, currentUserIDPtr(ctx), request.Reason, enforceDeadline)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toReservationResponse(reservation))
}

// AssignTable sets or changes the table of a reservation
func (handler *reservationHandler) AssignTable(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	reservationID := ctx.Param("id")

	var request AssignTableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	reservation, err := handler.reservationService.AssignTable(ctx, restaurant.ID, reservationID, request.TableID)
	if err != nil {
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toReservationResponse(reservation))
}

// Stats aggregates booking counts for a date
func (handler *reservationHandler) Stats(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	date := time.Now().UTC()
	if raw := ctx.Query("date"); len(raw) > 0 {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "date must be of the form YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	stats, err := handler.reservationService.Stats(ctx, restaurant.ID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ReservationStatsResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Confirmed: stats.Confirmed,
		Seated:    stats.Seated,
		Completed: stats.Completed,
		Cancelled: stats.Cancelled,
		NoShow:    stats.NoShow,
	})
}

// CreateBlockedTime blocks a reservation window
func (handler *reservationHandler) CreateBlockedTime(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	var request BlockedTimeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	block, err := handler.reservationService.CreateBlockedTime(ctx, &reservations.BlockedTime{
		RestaurantID: restaurant.ID,
		StartAt:      request.StartAt,
		EndAt:        request.EndAt,
		TableIDs:     request.TableIDs,
		Reason:       request.Reason,
		Description:  request.Description,
		CreatedByID:  currentUserIDPtr(ctx),
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toBlockedTimeResponse(block))
}

// ListBlockedTimes fetches the restaurant's blocked windows
func (handler *reservationHandler) ListBlockedTimes(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	blocks, err := handler.reservationService.ListBlockedTimes(ctx, restaurant.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	listResponse := []BlockedTimeResponse{}
	for _, block := range blocks {
		listResponse = append(listResponse, toBlockedTimeResponse(block))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// DeleteBlockedTime removes a blocked window
func (handler *reservationHandler) DeleteBlockedTime(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)
	blockID := ctx.Param("id")

	if err := handler.reservationService.DeleteBlockedTime(ctx, restaurant.ID, blockID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("blocked time with id %s not found", blockID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted blocked time with id %s", blockID)})
}

func reservationQueryFromRequest(ctx *gin.Context) (*reservations.ReservationQuery, error) {
	query := reservations.NewReservationQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if date := ctx.Query("date"); len(date) > 0 {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("date must be of the form YYYY-MM-DD")
		}
		query.Date = parsed
	}
	if upcoming := ctx.Query("upcoming"); len(upcoming) > 0 {
		query.Upcoming = strutil.ConvertToBool(upcoming)
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

	return query, nil
}
