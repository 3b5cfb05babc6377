// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/sec"
	"github.com/taibuivan/cinema/internal/users/auth"
)

func validInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username:   "Alice",
		BirthDate:  "2000-02-29",
		Password:   "secret1",
		RePassword: "secret1",
	}
}

func TestService_Register(t *testing.T) {
	repo := newFakeUserRepository()
	service, _ := newService(t, repo)

	require.NoError(t, service.Register(context.Background(), validInput()))

	stored, ok := repo.users["alice"]
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.Username)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.Len(t, stored.ID, 36)
	assert.Equal(t, "2000-02-29", stored.BirthDate.Format("2006-01-02"))
}

func TestService_Register_DuplicateIsCaseInsensitive(t *testing.T) {
	service, _ := newService(t, newFakeUserRepository())
	require.NoError(t, service.Register(context.Background(), validInput()))

	input := validInput()
	input.Username = "ALICE"
	err := service.Register(context.Background(), input)
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*auth.RegisterInput)
		field  string
	}{
		{"missing_username", func(in *auth.RegisterInput) { in.Username = "" }, auth.FieldUsername},
		{"short_password", func(in *auth.RegisterInput) { in.Password, in.RePassword = "abc", "abc" }, auth.FieldPassword},
		{"long_password", func(in *auth.RegisterInput) {
			in.Password = strings.Repeat("x", 73)
			in.RePassword = in.Password
		}, auth.FieldPassword},
		{"mismatch", func(in *auth.RegisterInput) { in.RePassword = "secret2" }, auth.FieldRePassword},
		{"missing_birth_date", func(in *auth.RegisterInput) { in.BirthDate = "" }, auth.FieldBirthDate},
		{"malformed_birth_date", func(in *auth.RegisterInput) { in.BirthDate = "29/02/2000" }, auth.FieldBirthDate},
		{"future_birth_date", func(in *auth.RegisterInput) { in.BirthDate = "2026-03-16" }, auth.FieldBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepository()
			service, _ := newService(t, repo)

			input := validInput()
			tt.mutate(&input)

			err := service.Register(context.Background(), input)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, detail := range ae.Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, tt.field)
			assert.Empty(t, repo.users)
		})
	}
}

func TestService_Register_BornToday(t *testing.T) {
	service, _ := newService(t, newFakeUserRepository())

	input := validInput()
	input.BirthDate = "2026-03-15"
	assert.NoError(t, service.Register(context.Background(), input))
}

func TestService_Login(t *testing.T) {
	service, tokens := newService(t, newFakeUserRepository())
	require.NoError(t, service.Register(context.Background(), validInput()))

	token, err := service.Login(context.Background(), auth.LoginInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Alice", claims.Username)
	assert.Equal(t, "2000-02-29", claims.BirthDate)
	assert.NotEmpty(t, claims.UserID)
}

func TestService_Login_GenericFailure(t *testing.T) {
	service, _ := newService(t, newFakeUserRepository())
	require.NoError(t, service.Register(context.Background(), validInput()))

	_, wrongPassword := service.Login(context.Background(), auth.LoginInput{Username: "Alice", Password: "nope!!"})
	_, unknownUser := service.Login(context.Background(), auth.LoginInput{Username: "bob", Password: "secret1"})
	_, empty := service.Login(context.Background(), auth.LoginInput{})

	for _, err := range []error{wrongPassword, unknownUser, empty} {
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

// recordingChecker wraps sec.CheckPasswordHash and keeps every hash it was
// asked to compare against.
type recordingChecker struct {
	hashes []string
}

func (checker *recordingChecker) check(plainTextPassword, existingHash string) bool {
	checker.hashes = append(checker.hashes, existingHash)
	return sec.CheckPasswordHash(plainTextPassword, existingHash)
}

func TestService_Login_EveryFailureComparesAHash(t *testing.T) {
	repo := newFakeUserRepository()
	checker := &recordingChecker{}
	service := auth.NewService(repo, newTokenService(t), discardLogger(), auth.WithPasswordChecker(checker.check))
	require.NoError(t, service.Register(context.Background(), validInput()))
	stored, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input auth.LoginInput
		dummy bool
	}{
		{"wrong_password", auth.LoginInput{Username: "Alice", Password: "nope!!"}, false},
		{"unknown_user", auth.LoginInput{Username: "bob", Password: "secret1"}, true},
		{"empty_username", auth.LoginInput{Password: "secret1"}, true},
		{"empty_input", auth.LoginInput{}, true},
	}

	var dummyHash string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker.hashes = nil

			_, err := service.Login(context.Background(), tt.input)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			require.Len(t, checker.hashes, 1)

			hash := checker.hashes[0]
			if !tt.dummy {
				assert.Equal(t, stored.PasswordHash, hash)
				return
			}
			assert.NotEqual(t, stored.PasswordHash, hash)
			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.DefaultCost, cost)
			if dummyHash != "" {
				assert.Equal(t, dummyHash, hash)
			}
			dummyHash = hash
		})
	}
}

type failingRepository struct{ auth.UserRepository }

func (failingRepository) FindByUsername(context.Context, string) (*auth.User, error) {
	return nil, apperr.Internal(errors.New("connection reset"))
}

func TestService_Login_StorageFailureIsNotMaskedAsCredentials(t *testing.T) {
	service, _ := newService(t, failingRepository{})

	_, err := service.Login(context.Background(), auth.LoginInput{Username: "alice", Password: "secret1"})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", auth.NormalizeUsername("  ALICE "))
	assert.Equal(t, "école", auth.NormalizeUsername("ÉCOLE"))
}
