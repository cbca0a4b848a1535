package ports

import (
	"context"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

// ApplicationInput carries the form fields for creating or editing a record.
// Optional fields arrive empty when absent from the form and are stored as-is.
type ApplicationInput struct {
	Company     string
	Role        string
	Category    string
	Location    string
	Flexibility string
	Status      string
	AppliedDate string // text, YYYY-MM-DD
	Link        string
}

// ApplicationService defines the use cases on job-application records.
// Every operation is scoped to ownerID; a record id that exists but belongs
// to a different owner surfaces as domain.ErrApplicationNotFound.
type ApplicationService interface {
	Create(ctx context.Context, ownerID string, input ApplicationInput) (*domain.Application, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Application, error)
	Update(ctx context.Context, ownerID, id string, input ApplicationInput) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, status string, sort SortOrder) ([]*domain.Application, error)
}
