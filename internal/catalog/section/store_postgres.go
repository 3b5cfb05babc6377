// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/database/schema"
	"github.com/taibuivan/cinema/internal/platform/dberr"
	"github.com/taibuivan/cinema/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed section store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectSection = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CinemaSection.Columns(), ", "), schema.CinemaSection.Table)

// ListSections returns a page of sections ordered by movie and theater id.
func (repository *PostgresRepository) ListSections(ctx context.Context, limit, offset int) ([]*Section, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CinemaSection.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sections")
	}

	query := selectSection + fmt.Sprintf(` ORDER BY %s ASC, %s ASC LIMIT $1 OFFSET $2`,
		schema.CinemaSection.MovieID, schema.CinemaSection.MovieTheaterID)
	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sections")
	}
	defer rows.Close()

	sections := make([]*Section, 0, limit)
	for rows.Next() {
		s := &Section{}
		if err := rows.Scan(&s.MovieID, &s.MovieTheaterID, &s.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_section")
		}
		sections = append(sections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_sections")
	}

	return sections, total, nil
}

// GetSection fetches one section by its composite key.
func (repository *PostgresRepository) GetSection(ctx context.Context, movieID, movieTheaterID int) (*Section, error) {
	query := selectSection + fmt.Sprintf(` WHERE %s = $1 AND %s = $2`,
		schema.CinemaSection.MovieID, schema.CinemaSection.MovieTheaterID)

	s := &Section{}
	err := repository.db.QueryRow(ctx, query, movieID, movieTheaterID).Scan(&s.MovieID, &s.MovieTheaterID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_section")
	}

	return s, nil
}

// CreateSection inserts the pair. Foreign key and unique violations are mapped
// onto [ErrMovieNotFound], [ErrMovieTheaterNotFound] and a conflict.
func (repository *PostgresRepository) CreateSection(ctx context.Context, s *Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		RETURNING %s
	`,
		schema.CinemaSection.Table, schema.CinemaSection.MovieID, schema.CinemaSection.MovieTheaterID,
		schema.CinemaSection.CreatedAt, schema.CinemaSection.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, s.MovieID, s.MovieTheaterID).Scan(&s.CreatedAt)
	switch {
	case err == nil:
		return nil
	case dberr.IsForeignKeyViolation(err, schema.CinemaSection.MovieForeignKey):
		return ErrMovieNotFound
	case dberr.IsForeignKeyViolation(err, schema.CinemaSection.MovieTheaterForeignKey):
		return ErrMovieTheaterNotFound
	case dberr.IsUniqueViolation(err, schema.CinemaSection.PrimaryKey):
		conflict := apperr.Conflict("Movie is already scheduled in this movie theater")
		conflict.Cause = err
		return conflict
	default:
		return dberr.Wrap(err, "create_section")
	}
}

// DeleteSection removes one section by its composite key.
func (repository *PostgresRepository) DeleteSection(ctx context.Context, movieID, movieTheaterID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CinemaSection.Table, schema.CinemaSection.MovieID, schema.CinemaSection.MovieTheaterID)

	cmd, err := repository.db.Exec(ctx, query, movieID, movieTheaterID)
	if err != nil {
		return dberr.Wrap(err, "delete_section")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
