// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cinema/internal/platform/patch"
	"github.com/taibuivan/cinema/internal/platform/validate"
)

// Service orchestrates business rules for cinema addresses.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new address [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListAddresses returns one page of addresses and the total count.
func (service *Service) ListAddresses(ctx context.Context, limit, offset int) ([]*Address, int, error) {
	return service.repo.ListAddresses(ctx, limit, offset)
}

// GetAddress returns the address with the given id, or [ErrNotFound].
func (service *Service) GetAddress(ctx context.Context, id int) (*Address, error) {
	return service.repo.GetAddress(ctx, id)
}

/*
CreateAddress validates the input and persists a new address.

Returns:
  - *Address: The stored address with its generated id
  - error: ValidationError or persistence failures
*/
func (service *Service) CreateAddress(ctx context.Context, input Input) (*Address, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	a := &Address{Street: input.Street, Number: input.Number}
	if err := service.repo.CreateAddress(ctx, a); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "address_created", slog.Int("address_id", a.ID))
	return a, nil
}

// UpdateAddress replaces the street and number of an existing address.
func (service *Service) UpdateAddress(ctx context.Context, id int, input Input) error {
	if err := validateInput(input); err != nil {
		return err
	}

	if err := service.repo.UpdateAddress(ctx, &Address{ID: id, Street: input.Street, Number: input.Number}); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "address_updated", slog.Int("address_id", id))
	return nil
}

// PatchAddress applies a JSON Patch document to an address and stores the
// re-validated result.
func (service *Service) PatchAddress(ctx context.Context, id int, document []byte) error {
	current, err := service.repo.GetAddress(ctx, id)
	if err != nil {
		return err
	}

	input := InputOf(current)
	if err := patch.Apply(&input, document); err != nil {
		return err
	}

	return service.UpdateAddress(ctx, id, input)
}

// DeleteAddress removes an address. It fails with a conflict while a movie
// theater still references it.
func (service *Service) DeleteAddress(ctx context.Context, id int) error {
	if err := service.repo.DeleteAddress(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "address_deleted", slog.Int("address_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldStreet, input.Street)
	validator.Min(FieldNumber, input.Number, 0)

	return validator.Err()
}
