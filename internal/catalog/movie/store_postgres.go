// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/cinema/internal/platform/database/schema"
	"github.com/taibuivan/cinema/internal/platform/dberr"
	"github.com/taibuivan/cinema/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed movie store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Movie Retrieval
var selectMovie = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CinemaMovie.Columns(), ", "), schema.CinemaMovie.Table)

/*
ListMovies returns a page of movies ordered by id plus the total row count.

Parameters:
  - ctx: context.Context
  - limit, offset: int

Returns:
  - []*Movie: The page of movies
  - int: Total number of movies
  - error: Wrapped database errors
*/
func (repository *PostgresRepository) ListMovies(ctx context.Context, limit, offset int) ([]*Movie, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CinemaMovie.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_movies")
	}

	query := selectMovie + fmt.Sprintf(` ORDER BY %s ASC LIMIT $1 OFFSET $2`, schema.CinemaMovie.ID)
	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	movies := make([]*Movie, 0, limit)
	for rows.Next() {
		m := &Movie{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Duration, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_movie")
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_movies")
	}

	return movies, total, nil
}

// GetMovie fetches a single movie by id, or [ErrNotFound].
func (repository *PostgresRepository) GetMovie(ctx context.Context, id int) (*Movie, error) {
	query := selectMovie + fmt.Sprintf(` WHERE %s = $1`, schema.CinemaMovie.ID)

	m := &Movie{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Title, &m.Genre, &m.Duration, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie")
	}

	return m, nil
}

// ListScreenings returns the theaters that have a section for the movie.
func (repository *PostgresRepository) ListScreenings(ctx context.Context, movieID int) ([]Screening, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s
		FROM %s s
		JOIN %s t ON t.%s = s.%s
		WHERE s.%s = $1
		ORDER BY t.%s ASC
	`,
		schema.CinemaMovieTheater.ID, schema.CinemaMovieTheater.Name,
		schema.CinemaSection.Table,
		schema.CinemaMovieTheater.Table, schema.CinemaMovieTheater.ID, schema.CinemaSection.MovieTheaterID,
		schema.CinemaSection.MovieID,
		schema.CinemaMovieTheater.ID,
	)

	rows, err := repository.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_screenings")
	}
	defer rows.Close()

	screenings := []Screening{}
	for rows.Next() {
		var screening Screening
		if err := rows.Scan(&screening.MovieTheaterID, &screening.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_screening")
		}
		screenings = append(screenings, screening)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_screenings")
	}

	return screenings, nil
}

// # Movie Mutation

// CreateMovie inserts the movie and fills in its generated id and timestamps.
func (repository *PostgresRepository) CreateMovie(ctx context.Context, m *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CinemaMovie.Table, schema.CinemaMovie.Title, schema.CinemaMovie.Genre,
		schema.CinemaMovie.Duration, schema.CinemaMovie.CreatedAt, schema.CinemaMovie.UpdatedAt,
		schema.CinemaMovie.ID, schema.CinemaMovie.CreatedAt, schema.CinemaMovie.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, m.Title, m.Genre, m.Duration).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_movie")
}

// UpdateMovie overwrites the writable columns of an existing movie.
func (repository *PostgresRepository) UpdateMovie(ctx context.Context, m *Movie) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CinemaMovie.Table, schema.CinemaMovie.Title, schema.CinemaMovie.Genre,
		schema.CinemaMovie.Duration, schema.CinemaMovie.UpdatedAt, schema.CinemaMovie.ID,
		schema.CinemaMovie.CreatedAt, schema.CinemaMovie.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, m.ID, m.Title, m.Genre, m.Duration).Scan(&m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return dberr.Wrap(err, "update_movie")
}

// DeleteMovie removes a movie. Its sections are removed by ON DELETE CASCADE.
func (repository *PostgresRepository) DeleteMovie(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CinemaMovie.Table, schema.CinemaMovie.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
