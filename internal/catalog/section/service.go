// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cinema/internal/platform/validate"
)

// Service orchestrates business rules for sections, the pairing of a movie
// with a movie theater.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new section [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Section Retrieval

// ListSections returns one page of sections and the total count.
func (service *Service) ListSections(ctx context.Context, limit, offset int) ([]*Section, int, error) {
	return service.repo.ListSections(ctx, limit, offset)
}

/*
GetSection retrieves the section identified by its composite key.

Parameters:
  - ctx: context.Context
  - movieID, movieTheaterID: int

Returns:
  - *Section: The stored section
  - error: [ErrNotFound] if the pair is not scheduled
*/
func (service *Service) GetSection(ctx context.Context, movieID, movieTheaterID int) (*Section, error) {
	return service.repo.GetSection(ctx, movieID, movieTheaterID)
}

// # Section Mutation
// CreateSection schedules a movie in a movie theater. Both must exist.
func (service *Service) CreateSection(ctx context.Context, input Input) (*Section, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldMovieID, input.MovieID <= 0, "Must be a positive integer")
	validator.Custom(FieldMovieTheaterID, input.MovieTheaterID <= 0, "Must be a positive integer")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	s := &Section{MovieID: input.MovieID, MovieTheaterID: input.MovieTheaterID}
	if err := service.repo.CreateSection(ctx, s); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "section_created",
		slog.Int("movie_id", s.MovieID),
		slog.Int("movie_theater_id", s.MovieTheaterID),
	)
	return s, nil
}

// DeleteSection unschedules a movie from a movie theater, or returns [ErrNotFound].
func (service *Service) DeleteSection(ctx context.Context, movieID, movieTheaterID int) error {
	if err := service.repo.DeleteSection(ctx, movieID, movieTheaterID); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "section_deleted",
		slog.Int("movie_id", movieID),
		slog.Int("movie_theater_id", movieTheaterID),
	)
	return nil
}
