package ports

import (
	"context"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

// SortOrder selects the applied-date ordering for list queries.
type SortOrder string

const (
	SortNone       SortOrder = ""
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ListFilter carries the query parameters for listing applications.
// OwnerID is always set by the service layer; handlers never bypass it.
type ListFilter struct {
	OwnerID string
	Status  string    // optional: exact match on one status label
	Sort    SortOrder // applied-date order; SortNone = descending (default view)
}

// ApplicationRepository defines persistence for job-application records.
// Every operation that touches an existing record filters on both the
// record id and the owner id, so a foreign id behaves like a missing one.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (string, error)
	FindByID(ctx context.Context, ownerID, id string) (*domain.Application, error)
	Update(ctx context.Context, ownerID string, app *domain.Application) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Application, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByStatus(ctx context.Context, ownerID string, status domain.ApplicationStatus) (int64, error)
}
