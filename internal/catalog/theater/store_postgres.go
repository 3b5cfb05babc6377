// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theater

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/database/schema"
	"github.com/taibuivan/cinema/internal/platform/dberr"
	"github.com/taibuivan/cinema/internal/platform/postgres"
	"github.com/taibuivan/cinema/pkg/pointer"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed theater store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Theater Retrieval
var selectDetails = fmt.Sprintf(`
	SELECT t.%s, t.%s, t.%s, t.%s, a.%s, a.%s, a.%s
	FROM %s t
	LEFT JOIN %s a ON a.%s = t.%s
`,
	schema.CinemaMovieTheater.ID, schema.CinemaMovieTheater.Name,
	schema.CinemaMovieTheater.CreatedAt, schema.CinemaMovieTheater.UpdatedAt,
	schema.CinemaAddress.ID, schema.CinemaAddress.Street, schema.CinemaAddress.Number,
	schema.CinemaMovieTheater.Table,
	schema.CinemaAddress.Table, schema.CinemaAddress.ID, schema.CinemaMovieTheater.AddressID,
)

func scanDetails(row pgx.Row) (*Details, error) {
	var (
		details       Details
		addressID     *int
		addressStreet *string
		addressNumber *int
	)

	err := row.Scan(&details.ID, &details.Name, &details.CreatedAt, &details.UpdatedAt,
		&addressID, &addressStreet, &addressNumber)
	if err != nil {
		return nil, err
	}

	if addressID != nil {
		details.Address = &Location{
			ID:     *addressID,
			Street: pointer.Val(addressStreet),
			Number: pointer.Val(addressNumber),
		}
	}

	return &details, nil
}

// ListTheaters returns a page of theaters joined with their addresses.
func (repository *PostgresRepository) ListTheaters(ctx context.Context, limit, offset int) ([]*Details, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CinemaMovieTheater.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_theaters")
	}

	query := selectDetails + fmt.Sprintf(` ORDER BY t.%s ASC LIMIT $1 OFFSET $2`, schema.CinemaMovieTheater.ID)
	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_theaters")
	}
	defer rows.Close()

	theaters := make([]*Details, 0, limit)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_theater")
		}
		theaters = append(theaters, details)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_theaters")
	}

	return theaters, total, nil
}

// GetTheater fetches a single theater and its address, or [ErrNotFound].
func (repository *PostgresRepository) GetTheater(ctx context.Context, id int) (*Details, error) {
	query := selectDetails + fmt.Sprintf(` WHERE t.%s = $1`, schema.CinemaMovieTheater.ID)

	details, err := scanDetails(repository.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_theater")
	}

	return details, nil
}

// ListShowings returns the movies that have a section in the theater.
func (repository *PostgresRepository) ListShowings(ctx context.Context, theaterID int) ([]Showing, error) {
	query := fmt.Sprintf(`
		SELECT m.%s, m.%s
		FROM %s s
		JOIN %s m ON m.%s = s.%s
		WHERE s.%s = $1
		ORDER BY m.%s ASC
	`,
		schema.CinemaMovie.ID, schema.CinemaMovie.Title,
		schema.CinemaSection.Table,
		schema.CinemaMovie.Table, schema.CinemaMovie.ID, schema.CinemaSection.MovieID,
		schema.CinemaSection.MovieTheaterID,
		schema.CinemaMovie.ID,
	)

	rows, err := repository.db.Query(ctx, query, theaterID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_showings")
	}
	defer rows.Close()

	showings := []Showing{}
	for rows.Next() {
		var showing Showing
		if err := rows.Scan(&showing.MovieID, &showing.Title); err != nil {
			return nil, dberr.Wrap(err, "scan_showing")
		}
		showings = append(showings, showing)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_showings")
	}

	return showings, nil
}

// # Theater Mutation

// CreateTheater inserts the theater and sets its generated id.
func (repository *PostgresRepository) CreateTheater(ctx context.Context, t *MovieTheater) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CinemaMovieTheater.Table, schema.CinemaMovieTheater.Name, schema.CinemaMovieTheater.AddressID,
		schema.CinemaMovieTheater.CreatedAt, schema.CinemaMovieTheater.UpdatedAt,
		schema.CinemaMovieTheater.ID, schema.CinemaMovieTheater.CreatedAt, schema.CinemaMovieTheater.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, t.Name, t.AddressID).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return wrapWriteError(err, "create_theater")
}

// UpdateTheater overwrites the name and address of an existing theater.
func (repository *PostgresRepository) UpdateTheater(ctx context.Context, t *MovieTheater) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CinemaMovieTheater.Table, schema.CinemaMovieTheater.Name, schema.CinemaMovieTheater.AddressID,
		schema.CinemaMovieTheater.UpdatedAt, schema.CinemaMovieTheater.ID,
		schema.CinemaMovieTheater.CreatedAt, schema.CinemaMovieTheater.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, t.ID, t.Name, t.AddressID).Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return wrapWriteError(err, "update_theater")
}

// DeleteTheater removes a theater. Its sections are removed by ON DELETE CASCADE.
func (repository *PostgresRepository) DeleteTheater(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CinemaMovieTheater.Table, schema.CinemaMovieTheater.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_theater")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// wrapWriteError maps address constraint failures onto domain errors.
func wrapWriteError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsForeignKeyViolation(err, schema.CinemaMovieTheater.AddressForeignKey):
		return ErrAddressNotFound
	case dberr.IsUniqueViolation(err, schema.CinemaMovieTheater.AddressUniqueKey):
		conflict := apperr.Conflict("Address is already used by another movie theater")
		conflict.Cause = err
		return conflict
	default:
		return dberr.Wrap(err, action)
	}
}
