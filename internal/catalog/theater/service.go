// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theater

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cinema/internal/platform/patch"
	"github.com/taibuivan/cinema/internal/platform/validate"
)

// # Service Layer

// Service orchestrates business rules for movie theaters.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new theater [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Theater Retrieval

/*
ListTheaters retrieves one page of theaters with their addresses resolved.

Parameters:
  - ctx: context.Context
  - limit, offset: int

Returns:
  - []*Details: The page of theaters
  - int: Total number of theaters
  - error: Retrieval errors
*/
func (service *Service) ListTheaters(ctx context.Context, limit, offset int) ([]*Details, int, error) {
	return service.repo.ListTheaters(ctx, limit, offset)
}

// GetTheater returns the theater with its address and the movies it screens.
func (service *Service) GetTheater(ctx context.Context, id int) (*Details, error) {
	details, err := service.repo.GetTheater(ctx, id)
	if err != nil {
		return nil, err
	}

	details.Sections, err = service.repo.ListShowings(ctx, id)
	if err != nil {
		return nil, err
	}

	return details, nil
}

// # Theater Mutation

/*
CreateTheater validates the input and persists a new theater.

Parameters:
  - ctx: context.Context
  - input: Input (AddressID may be nil)

Returns:
  - *MovieTheater: The stored theater with its generated id
  - error: ValidationError, [ErrAddressNotFound], a conflict when the address
    already belongs to another theater, or persistence failures
*/
func (service *Service) CreateTheater(ctx context.Context, input Input) (*MovieTheater, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	t := &MovieTheater{Name: input.Name, AddressID: input.AddressID}
	if err := service.repo.CreateTheater(ctx, t); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "theater_created", slog.Int("theater_id", t.ID), slog.String("name", t.Name))
	return t, nil
}

/*
UpdateTheater replaces the name and address of an existing theater.

Parameters:
  - ctx: context.Context
  - id: int
  - input: Input

Returns:
  - error: Same failures as [Service.CreateTheater], plus [ErrNotFound]
*/
func (service *Service) UpdateTheater(ctx context.Context, id int, input Input) error {
	if err := validateInput(input); err != nil {
		return err
	}

	if err := service.repo.UpdateTheater(ctx, &MovieTheater{ID: id, Name: input.Name, AddressID: input.AddressID}); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "theater_updated", slog.Int("theater_id", id))
	return nil
}

// PatchTheater applies a JSON Patch document to a theater and stores the
// re-validated result.
func (service *Service) PatchTheater(ctx context.Context, id int, document []byte) error {
	current, err := service.repo.GetTheater(ctx, id)
	if err != nil {
		return err
	}

	input := InputOf(current)
	if err := patch.Apply(&input, document); err != nil {
		return err
	}

	return service.UpdateTheater(ctx, id, input)
}

// DeleteTheater removes a theater together with its sections.
func (service *Service) DeleteTheater(ctx context.Context, id int) error {
	if err := service.repo.DeleteTheater(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "theater_deleted", slog.Int("theater_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name)
	if input.AddressID != nil {
		validator.Custom(FieldAddressID, *input.AddressID <= 0, "Must be a positive integer")
	}

	return validator.Err()
}
