// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinema/internal/platform/sec"
	"github.com/taibuivan/cinema/internal/users/auth"
)

// fakeUserRepository is an in-memory auth.UserRepository keyed by the
// normalized username.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*auth.User{}}
}

func (repo *fakeUserRepository) FindByUsername(_ context.Context, normalized string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[normalized]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (repo *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.users[user.NormalizedUsername]; exists {
		return auth.ErrUsernameTaken
	}
	user.CreatedAt = time.Now()
	copied := *user
	repo.users[user.NormalizedUsername] = &copied
	return nil
}

var fixedNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	tokens, err := sec.NewTokenService([]byte("test-signing-key-0123456789abcdef"), "cinema-test",
		sec.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return tokens
}

func newService(t *testing.T, repo auth.UserRepository) (*auth.Service, *sec.TokenService) {
	t.Helper()
	tokens := newTokenService(t)
	service := auth.NewService(repo, tokens, discardLogger(),
		auth.WithClock(func() time.Time { return fixedNow }))
	return service, tokens
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
