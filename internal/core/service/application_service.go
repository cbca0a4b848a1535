package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// ApplicationService implements CRUD on job-application records. Every
// operation is scoped to the calling owner; the repository enforces the
// scoping in its filters, so a foreign record id never matches.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, logger: logger}
}

func (s *ApplicationService) Create(ctx context.Context, ownerID string, input ports.ApplicationInput) (*domain.Application, error) {
	if ownerID == "" || input.Company == "" || input.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidStatus(input.Status) {
		return nil, domain.ErrInvalidInput
	}

	app := &domain.Application{
		OwnerID:     ownerID,
		Company:     input.Company,
		Role:        input.Role,
		Category:    input.Category,
		Location:    input.Location,
		Flexibility: input.Flexibility,
		Status:      domain.ApplicationStatus(input.Status),
		AppliedDate: input.AppliedDate,
		Link:        input.Link,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, app)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create application")
		return nil, err
	}
	app.ID = id

	s.logger.Info().Str("application_id", id).Str("company", input.Company).Msg("application created")
	return app, nil
}

func (s *ApplicationService) Get(ctx context.Context, ownerID, id string) (*domain.Application, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

// Update replaces the named fields of the record. A missing or foreign id
// returns ErrApplicationNotFound rather than succeeding silently.
func (s *ApplicationService) Update(ctx context.Context, ownerID, id string, input ports.ApplicationInput) error {
	if !domain.ValidStatus(input.Status) {
		return domain.ErrInvalidInput
	}

	app := &domain.Application{
		ID:          id,
		OwnerID:     ownerID,
		Company:     input.Company,
		Role:        input.Role,
		Category:    input.Category,
		Location:    input.Location,
		Flexibility: input.Flexibility,
		Status:      domain.ApplicationStatus(input.Status),
		AppliedDate: input.AppliedDate,
		Link:        input.Link,
	}

	if err := s.repo.Update(ctx, ownerID, app); err != nil {
		return err
	}

	s.logger.Info().Str("application_id", id).Msg("application updated")
	return nil
}

func (s *ApplicationService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.logger.Info().Str("application_id", id).Msg("application deleted")
	return nil
}

// List returns the owner's applications. status filters on an exact label;
// sort orders by applied date. With neither set the default view is
// descending by applied date.
func (s *ApplicationService) List(ctx context.Context, ownerID string, status string, sort ports.SortOrder) ([]*domain.Application, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.List(ctx, ports.ListFilter{
		OwnerID: ownerID,
		Status:  status,
		Sort:    sort,
	})
}
