package audit

import "context"

// AuditService records and queries sensitive operations. Recording is
// best effort: a failed write is logged and never fails the calling
// operation.
type AuditService interface {
	// Record stores an audit entry.
	Record(ctx context.Context, entry *Entry)

	// List retrieves a restaurant's audit entries considering a query
	// filter when set.
	List(ctx context.Context, restaurantID string, query *EntryQuery) ([]*Entry, error)
}

// EntryRepository defines the interface for audit Entry-related operations
type EntryRepository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, restaurantID string, query *EntryQuery) ([]*Entry, error)
}
