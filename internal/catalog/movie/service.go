// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/cinema/internal/platform/patch"
	"github.com/taibuivan/cinema/internal/platform/validate"
)

// # Service Layer

// Service orchestrates business rules for movies and their screenings.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new movie [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// # Movie Retrieval

/*
ListMovies retrieves one page of movies ordered by id.

Parameters:
  - ctx: context.Context
  - limit, offset: int

Returns:
  - []*Movie: The page of movies
  - int: Total number of movies
  - error: Retrieval errors
*/
func (service *Service) ListMovies(ctx context.Context, limit, offset int) ([]*Movie, int, error) {
	return service.repo.ListMovies(ctx, limit, offset)
}

// GetMovie returns the movie together with the theaters screening it.
func (service *Service) GetMovie(ctx context.Context, id int) (*Details, error) {
	m, err := service.repo.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	screenings, err := service.repo.ListScreenings(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Details{Movie: m, Sections: screenings, Time: service.now().UTC()}, nil
}

// # Movie Mutation

/*
CreateMovie validates the input and persists a new movie.

Parameters:
  - ctx: context.Context
  - input: Input

Returns:
  - *Movie: The stored movie with its generated id and timestamps
  - error: ValidationError for bad input, or persistence failures
*/
func (service *Service) CreateMovie(ctx context.Context, input Input) (*Movie, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	m := &Movie{Title: input.Title, Genre: input.Genre, Duration: input.Duration}
	if err := service.repo.CreateMovie(ctx, m); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "movie_created", slog.Int("movie_id", m.ID), slog.String("title", m.Title))
	return m, nil
}

/*
UpdateMovie replaces every writable field of an existing movie.

Parameters:
  - ctx: context.Context
  - id: int
  - input: Input

Returns:
  - error: ValidationError, [ErrNotFound], or persistence failures
*/
func (service *Service) UpdateMovie(ctx context.Context, id int, input Input) error {
	if err := validateInput(input); err != nil {
		return err
	}

	m := &Movie{ID: id, Title: input.Title, Genre: input.Genre, Duration: input.Duration}
	if err := service.repo.UpdateMovie(ctx, m); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "movie_updated", slog.Int("movie_id", id))
	return nil
}

// PatchMovie applies a JSON Patch document to the writable fields of a movie
// and stores the re-validated result.
func (service *Service) PatchMovie(ctx context.Context, id int, document []byte) error {
	current, err := service.repo.GetMovie(ctx, id)
	if err != nil {
		return err
	}

	input := InputOf(current)
	if err := patch.Apply(&input, document); err != nil {
		return err
	}

	return service.UpdateMovie(ctx, id, input)
}

// DeleteMovie removes a movie together with its sections.
func (service *Service) DeleteMovie(ctx context.Context, id int) error {
	if err := service.repo.DeleteMovie(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "movie_deleted", slog.Int("movie_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title)
	validator.Required(FieldGenre, input.Genre).MaxLen(FieldGenre, input.Genre, MaxGenreLength)
	validator.Range(FieldDuration, input.Duration, MinDuration, MaxDuration)

	return validator.Err()
}
