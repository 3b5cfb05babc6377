// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

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

// NewPostgresRepository constructs a PostgreSQL backed address store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectAddress = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CinemaAddress.Columns(), ", "), schema.CinemaAddress.Table)

// ListAddresses returns a page of addresses ordered by id plus the total row count.
func (repository *PostgresRepository) ListAddresses(ctx context.Context, limit, offset int) ([]*Address, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CinemaAddress.Table)
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_addresses")
	}

	query := selectAddress + fmt.Sprintf(` ORDER BY %s ASC LIMIT $1 OFFSET $2`, schema.CinemaAddress.ID)
	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_addresses")
	}
	defer rows.Close()

	addresses := make([]*Address, 0, limit)
	for rows.Next() {
		a := &Address{}
		if err := rows.Scan(&a.ID, &a.Street, &a.Number, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_address")
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_addresses")
	}

	return addresses, total, nil
}

// GetAddress fetches a single address by id.
func (repository *PostgresRepository) GetAddress(ctx context.Context, id int) (*Address, error) {
	query := selectAddress + fmt.Sprintf(` WHERE %s = $1`, schema.CinemaAddress.ID)

	a := &Address{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Street, &a.Number, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_address")
	}

	return a, nil
}

// CreateAddress inserts the address and sets its generated id.
func (repository *PostgresRepository) CreateAddress(ctx context.Context, a *Address) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CinemaAddress.Table, schema.CinemaAddress.Street, schema.CinemaAddress.Number,
		schema.CinemaAddress.CreatedAt, schema.CinemaAddress.UpdatedAt,
		schema.CinemaAddress.ID, schema.CinemaAddress.CreatedAt, schema.CinemaAddress.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, a.Street, a.Number).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_address")
}

// UpdateAddress overwrites street and number, or returns [ErrNotFound].
func (repository *PostgresRepository) UpdateAddress(ctx context.Context, a *Address) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CinemaAddress.Table, schema.CinemaAddress.Street, schema.CinemaAddress.Number,
		schema.CinemaAddress.UpdatedAt, schema.CinemaAddress.ID,
		schema.CinemaAddress.CreatedAt, schema.CinemaAddress.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, a.ID, a.Street, a.Number).Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return dberr.Wrap(err, "update_address")
}

// DeleteAddress removes the row. A foreign key violation from
// cinema_movietheater is reported as a conflict.
func (repository *PostgresRepository) DeleteAddress(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CinemaAddress.Table, schema.CinemaAddress.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if dberr.IsForeignKeyViolation(err, schema.CinemaMovieTheater.AddressForeignKey) {
		conflict := apperr.Conflict("Address is still used by a movie theater")
		conflict.Cause = err
		return conflict
	}
	if err != nil {
		return dberr.Wrap(err, "delete_address")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
