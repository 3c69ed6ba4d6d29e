package tenants

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Restaurant is the tenant entity. Every dashboard-scoped record in
// the platform hangs off one restaurant, resolved per request from the
// X-Restaurant header or the subdomain of the main domain.
type Restaurant struct {
	ID            string `validate:"required,uuid4"`
	Name          string `validate:"required,min=1,max=255"`
	Slug          string `validate:"required,min=1,max=100,hostname_rfc1123"`
	OwnerID       string `validate:"required,uuid4"`
	IsActive      bool
	TaxRate       decimal.Decimal
	ServiceCharge decimal.Decimal
	CreatedAt     time.Time `validate:"required"`
	UpdatedAt     time.Time
}

// Validate for validating Restaurant struct
func (r *Restaurant) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// RestaurantQuery is a filter for listing restaurants.
type RestaurantQuery struct {
	Search     string
	OnlyActive bool

	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=name slug created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewRestaurantQuery creates a RestaurantQuery with defaults.
func NewRestaurantQuery() *RestaurantQuery {
	return &RestaurantQuery{
		OnlyActive: true,
		Limit:      20,
		SortBy:     "created_at",
		SortOrder:  "desc",
	}
}

// Validate for validating RestaurantQuery struct
func (q *RestaurantQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
