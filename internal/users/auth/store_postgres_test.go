// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinema/internal/users/auth"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	birthDate := time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`FROM users\.account WHERE normalizedusername = \$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "normalizedusername", "passwordhash", "birthdate", "createdat"}).
			AddRow("0190a1b2-0000-7000-8000-000000000001", "Alice", "alice", "$2a$10$hash", birthDate, now))
	mock.ExpectQuery(`FROM users\.account WHERE normalizedusername = \$1`).
		WithArgs("bob").
		WillReturnError(pgx.ErrNoRows)

	repo := auth.NewUserRepository(mock)

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Username)
	assert.Equal(t, birthDate, user.BirthDate)

	_, err = repo.FindByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	birthDate := time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC)
	user := &auth.User{
		ID:                 "0190a1b2-0000-7000-8000-000000000002",
		Username:           "Alice",
		NormalizedUsername: "alice",
		PasswordHash:       "$2a$10$hash",
		BirthDate:          birthDate,
	}
	createdAt := time.Now()

	mock.ExpectQuery(`INSERT INTO users\.account`).
		WithArgs(user.ID, "Alice", "alice", "$2a$10$hash", birthDate).
		WillReturnRows(pgxmock.NewRows([]string{"createdat"}).AddRow(createdAt))
	mock.ExpectQuery(`INSERT INTO users\.account`).
		WithArgs(user.ID, "Alice", "alice", "$2a$10$hash", birthDate).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_normalizedusername_key"})

	repo := auth.NewUserRepository(mock)

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, createdAt, user.CreatedAt)

	err = repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}
