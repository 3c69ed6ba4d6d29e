package audit

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Audited action constants
const (
	ActionLogin          = "login"
	ActionLogout         = "logout"
	ActionLoginFailed    = "login_failed"
	ActionPasswordChange = "password_change"
	ActionUserCreate     = "user_create"
	ActionUserUpdate     = "user_update"
	ActionStaffAdd       = "staff_add"
	ActionStaffRemove    = "staff_remove"
	ActionOrderCreate    = "order_create"
	ActionOrderUpdate    = "order_update"
	ActionOrderCancel    = "order_cancel"
	ActionPaymentCollect = "payment_collect"
	ActionPaymentRefund  = "payment_refund"
	ActionSettingsUpdate = "settings_update"
)

// Entry is one audit log record of a sensitive operation.
type Entry struct {
	ID string `validate:"required,uuid4"`

	// Actor
	UserID    *string
	UserEmail string `validate:"omitempty,email"`
	IPAddress string
	UserAgent string

	// Context
	RestaurantID *string

	Action string `validate:"required,max=50"`

	// Target
	TargetModel string `validate:"omitempty,max=100"`
	TargetID    string `validate:"omitempty,max=100"`

	Description string
	Changes     map[string]interface{}

	RequestMethod  string `validate:"omitempty,max=10"`
	RequestPath    string `validate:"omitempty,max=500"`
	ResponseStatus int

	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Entry struct
func (e *Entry) Validate() error {
	validate := validator.New()
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// EntryQuery is a filter for listing audit entries.
type EntryQuery struct {
	Action      string
	UserID      string
	TargetModel string
	Since       time.Time

	Limit     int    `validate:"omitempty,min=1,max=200"`
	Offset    int    `validate:"omitempty,min=0"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewEntryQuery creates an EntryQuery with defaults.
func NewEntryQuery() *EntryQuery {
	return &EntryQuery{
		Limit:     50,
		SortOrder: "desc",
	}
}

// Validate for validating EntryQuery struct
func (q *EntryQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
