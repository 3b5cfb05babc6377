// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the auth.TokenIssuer and middleware.TokenVerifier
// interfaces.
//
// # Signing Key
//
// Tokens are signed with HS256 using one symmetric key that is fixed for the
// lifetime of the process. The key is either configured or generated once at
// startup by [GenerateSigningKey]; it is never regenerated per token.
package sec

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/cinema/internal/platform/constants"
)

var (
	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid covers bad signatures, wrong algorithms and malformed claims.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// Identity is the authenticated user a token is minted for.
type Identity struct {
	UserID    string
	Username  string
	BirthDate time.Time
}

// AuthClaims represents the payload embedded inside a bearer token.
//
// The birth date is carried as a YYYY-MM-DD string so that it round-trips
// through parsing exactly as it was serialized.
type AuthClaims struct {
	jwt.RegisteredClaims

	Username  string `json:"username"`
	UserID    string `json:"userid"`
	BirthDate string `json:"dateofbirth,omitempty"`
}

// Validate implements [jwt.ClaimsValidator]. It runs after the registered
// claims (exp, iss) have been checked.
func (claims AuthClaims) Validate() error {
	if claims.UserID == "" || claims.Username == "" {
		return errors.New("missing identity claims")
	}

	if claims.BirthDate != "" {
		if _, err := time.Parse(constants.BirthDateLayout, claims.BirthDate); err != nil {
			return fmt.Errorf("malformed dateofbirth claim: %w", err)
		}
	}

	return nil
}

// DateOfBirth returns the birth date claim. The boolean is false when the
// claim is absent or cannot be parsed.
func (claims *AuthClaims) DateOfBirth() (time.Time, bool) {
	if claims == nil || claims.BirthDate == "" {
		return time.Time{}, false
	}

	birthDate, err := time.Parse(constants.BirthDateLayout, claims.BirthDate)
	if err != nil {
		return time.Time{}, false
	}

	return birthDate, true
}

// TokenOption customizes a [TokenService].
type TokenOption func(*TokenService)

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(service *TokenService) {
		service.now = now
	}
}

// WithTTL overrides the token lifetime.
func WithTTL(ttl time.Duration) TokenOption {
	return func(service *TokenService) {
		service.ttl = ttl
	}
}

// TokenService handles generation and verification of HS256 bearer tokens.
//
// It is immutable after construction and safe for concurrent use.
type TokenService struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a new TokenService bound to one signing key.
func NewTokenService(key []byte, issuer string, opts ...TokenOption) (*TokenService, error) {
	if len(key) == 0 {
		return nil, errors.New("sec: signing key must not be empty")
	}

	service := &TokenService{
		key:    append([]byte(nil), key...),
		issuer: issuer,
		ttl:    constants.TokenTTL,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service, nil
}

// GenerateSigningKey returns a random key for the degraded mode where no
// secret is configured. Call it once at startup.
func GenerateSigningKey() ([]byte, error) {
	key := make([]byte, constants.GeneratedKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("sec: failed to generate signing key: %w", err)
	}
	return key, nil
}

// Issue creates a signed token for the given identity, valid for the configured TTL.
func (service *TokenService) Issue(identity Identity) (string, error) {
	currentTime := service.now()

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Username: identity.Username,
		UserID:   identity.UserID,
	}

	if !identity.BirthDate.IsZero() {
		claims.BirthDate = identity.BirthDate.Format(constants.BirthDateLayout)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, algorithm, issuer and expiry of a token
// and returns its typed claims.
//
// Returns [ErrTokenExpired] or [ErrTokenInvalid].
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return service.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(service.issuer),
		jwt.WithTimeFunc(service.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
