// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByUsername returns the account whose normalized username matches.

		Returns:
		  - *User: Hydrated entity
		  - error: [ErrUserNotFound] or storage failures
	*/
	FindByUsername(ctx context.Context, normalizedUsername string) (*User, error)

	/*
		Create persists a new account. The normalized username is unique; a
		duplicate is reported as [ErrUsernameTaken].
	*/
	Create(ctx context.Context, user *User) error
}
