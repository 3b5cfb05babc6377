// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

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

// # User Repository

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	db postgres.DB
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var (
	findByUsernameQuery = fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		strings.Join(schema.UserAccount.Columns(), ", "),
		schema.UserAccount.Table,
		schema.UserAccount.NormalizedUsername,
	)

	createUserQuery = fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.NormalizedUsername,
		schema.UserAccount.Password, schema.UserAccount.BirthDate, schema.UserAccount.CreatedAt,
		schema.UserAccount.CreatedAt,
	)
)

/*
FindByUsername retrieves an account by its normalized username.

Returns:
  - *User: Hydrated entity
  - error: [ErrUserNotFound] when no row matches
*/
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, normalizedUsername string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(ctx, findByUsernameQuery, normalizedUsername).Scan(
		&user.ID,
		&user.Username,
		&user.NormalizedUsername,
		&user.PasswordHash,
		&user.BirthDate,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_username")
	}

	return user, nil
}

/*
Create persists a new user record into the users.account table.

The unique index on the normalized username makes concurrent registrations
of the same name fail with [ErrUsernameTaken] instead of producing duplicates.
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	err := repository.db.QueryRow(ctx, createUserQuery,
		user.ID,
		user.Username,
		user.NormalizedUsername,
		user.PasswordHash,
		user.BirthDate,
	).Scan(&user.CreatedAt)

	if dberr.IsUniqueViolation(err, schema.UserAccount.UsernameUniqueKey) {
		return ErrUsernameTaken
	}
	if err != nil {
		return dberr.Wrap(err, "create_user")
	}

	return nil
}
