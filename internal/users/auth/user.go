// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the credential store and the register/login flow.

It owns user identity records {username, password hash, birth date} and mints
bearer tokens on a successful login through a [TokenIssuer].

# Architecture

  - Service: Register and Login use cases.
  - Repository: [UserRepository] with a PostgreSQL implementation.
  - Handler: POST /register and POST /login.

Tokens cannot be refreshed or revoked; they expire on their own.
*/
package auth

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/taibuivan/cinema/internal/platform/apperr"
)

// # Domain Entities

// User is a registered account. The password hash never leaves the package
// through JSON.
type User struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	NormalizedUsername string    `json:"-"`
	PasswordHash       string    `json:"-"`
	BirthDate          time.Time `json:"birth_date"`
	CreatedAt          time.Time `json:"created_at"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Username   string `json:"username"`
	BirthDate  string `json:"birthDate"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// # Field Identifiers

const (
	FieldUsername   = "username"
	FieldBirthDate  = "birthDate"
	FieldPassword   = "password"
	FieldRePassword = "rePassword"
)

// # Constraints

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6

	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72

	// MaxUsernameLength bounds the stored username.
	MaxUsernameLength = 100
)

// # Errors

var (
	ErrUserNotFound       = apperr.NotFound("User")
	ErrUsernameTaken      = apperr.Conflict("Username is already taken")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid login credentials")
)

// NormalizeUsername returns the case-folded form used for uniqueness and
// lookup. "Alice" and "ALICE" normalize to the same value.
func NormalizeUsername(username string) string {
	return cases.Fold().String(strings.TrimSpace(username))
}
