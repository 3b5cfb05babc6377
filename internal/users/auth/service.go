// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/cinema/internal/platform/constants"
	"github.com/taibuivan/cinema/internal/platform/sec"
	"github.com/taibuivan/cinema/internal/platform/validate"
	"github.com/taibuivan/cinema/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer mints a signed bearer token for an authenticated identity.
type TokenIssuer interface {
	Issue(identity sec.Identity) (string, error)
}

// ServiceOption customizes a [Service].
type ServiceOption func(*Service)

// WithClock overrides the time source used to reject future birth dates.
func WithClock(now func() time.Time) ServiceOption {
	return func(service *Service) {
		service.now = now
	}
}

// WithPasswordChecker overrides the bcrypt comparison used by [Service.Login].
func WithPasswordChecker(check func(plainTextPassword, existingHash string) bool) ServiceOption {
	return func(service *Service) {
		service.checkPassword = check
	}
}

// dummyPasswordHash stands in for the stored hash when there is none. It is
// generated with the same bcrypt cost as real accounts.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := sec.HashPassword("cinema-login-placeholder")
	if err != nil {
		panic(fmt.Sprintf("auth: dummy password hash: %v", err))
	}
	return hash
})

// Service implements user registration and login.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
	logger         *slog.Logger
	now            func() time.Time
	checkPassword  func(plainTextPassword, existingHash string) bool
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, issuer TokenIssuer, logger *slog.Logger, opts ...ServiceOption) *Service {
	service := &Service{
		userRepository: userRepo,
		tokenIssuer:    issuer,
		logger:         logger,
		now:            time.Now,
		checkPassword:  sec.CheckPasswordHash,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// # Registration Flow

/*
Register validates, hashes, and persists a new user account.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - error: ValidationError for bad input, [ErrUsernameTaken] if the
    username exists (case-insensitively), or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) error {
	birthDate, err := service.validateRegistration(input)
	if err != nil {
		return err
	}

	normalized := NormalizeUsername(input.Username)

	// Early conflict check; the unique index still decides concurrent races.
	_, err = service.userRepository.FindByUsername(ctx, normalized)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case !errors.Is(err, ErrUserNotFound):
		return err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:                 uuid.New(),
		Username:           input.Username,
		NormalizedUsername: normalized,
		PasswordHash:       hashedPassword,
		BirthDate:          birthDate,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return nil
}

func (service *Service) validateRegistration(input RegisterInput) (time.Time, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		Custom(FieldPassword, len(input.Password) > MaxPasswordLength, fmt.Sprintf("Must be at most %d bytes", MaxPasswordLength)).
		Custom(FieldRePassword, input.RePassword != input.Password, "Passwords do not match").
		Required(FieldBirthDate, input.BirthDate).
		Date(FieldBirthDate, input.BirthDate, constants.BirthDateLayout)

	birthDate, parseErr := time.Parse(constants.BirthDateLayout, input.BirthDate)
	if parseErr == nil {
		today := service.now().UTC().Format(constants.BirthDateLayout)
		validator.Custom(FieldBirthDate, input.BirthDate > today, "Must not be in the future")
	}

	if err := validator.Err(); err != nil {
		return time.Time{}, err
	}

	return birthDate, nil
}

// # Authentication Flow

/*
Login verifies credentials and returns a signed bearer token.

An unknown username and a wrong password produce the same
[ErrInvalidCredentials]; the log record does not say which one failed.
Empty input and unknown usernames are still checked against a placeholder
hash so all failures take comparable time.

Returns:
  - string: Signed token
  - error: [ErrInvalidCredentials] or internal failures
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	if input.Username == "" || input.Password == "" {
		service.checkPassword(input.Password, dummyPasswordHash())
		service.loginFailed(ctx, input.Username)
		return "", ErrInvalidCredentials
	}

	user, err := service.userRepository.FindByUsername(ctx, NormalizeUsername(input.Username))
	if errors.Is(err, ErrUserNotFound) {
		service.checkPassword(input.Password, dummyPasswordHash())
		service.loginFailed(ctx, input.Username)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !service.checkPassword(input.Password, user.PasswordHash) {
		service.loginFailed(ctx, input.Username)
		return "", ErrInvalidCredentials
	}

	token, err := service.tokenIssuer.Issue(sec.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		BirthDate: user.BirthDate,
	})
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.InfoContext(ctx, "user_logged_in", slog.String("user_id", user.ID))
	return token, nil
}

func (service *Service) loginFailed(ctx context.Context, username string) {
	service.logger.WarnContext(ctx, "login_failed", slog.String("username", username))
}
