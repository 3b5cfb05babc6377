// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package access guards age-restricted content behind the bearer token's
// birth date claim.
//
// The policy is evaluated at request time against the current UTC date, so a
// token that was refused yesterday may be accepted today.
package access

import (
	"time"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/sec"
)

var (
	ErrBirthDateMissing = apperr.Forbidden("Birth date is required to access this content")
	ErrUnderage         = apperr.Forbidden("You are not old enough to access this content")
)

// Age returns the number of full years between birthDate and today.
//
// Only calendar fields are compared. Someone born on 29 February turns a year
// older on 1 March in non-leap years.
func Age(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()

	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}

	return age
}

// Evaluate reports whether the claims satisfy minimumAge on the given day.
// A missing or unreadable birth date fails closed.
//
// Returns nil, [ErrBirthDateMissing] or [ErrUnderage].
func Evaluate(claims *sec.AuthClaims, minimumAge int, today time.Time) error {
	birthDate, ok := claims.DateOfBirth()
	if !ok {
		return ErrBirthDateMissing
	}

	if Age(birthDate, today) < minimumAge {
		return ErrUnderage
	}

	return nil
}
