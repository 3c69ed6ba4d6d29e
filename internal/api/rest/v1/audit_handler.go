package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// AuditHandler defines the interface for handling audit log queries
type AuditHandler interface {
	List(ctx *gin.Context)
}

type auditHandler struct {
	auditService audit.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandler{auditService: auditService}
}

// List fetches audit entries optionally with query parameters
func (handler *auditHandler) List(ctx *gin.Context) {
	restaurant := currentRestaurant(ctx)

	query := audit.NewEntryQuery()
	if action := ctx.Query("action"); len(action) > 0 {
		query.Action = action
	}
	if userID := ctx.Query("userId"); len(userID) > 0 {
		query.UserID = userID
	}
	if targetModel := ctx.Query("targetModel"); len(targetModel) > 0 {
		query.TargetModel = targetModel
	}
	if since := ctx.Query("since"); len(since) > 0 {
		parsed, err := time.Parse(time.RFC3339, since)
		if err == nil {
			query.Since = parsed
		}
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	entries, err := handler.auditService.List(ctx, restaurant.ID, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []AuditEntryResponse{}
	for _, entry := range entries {
		listResponse = append(listResponse, toAuditEntryResponse(entry))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
