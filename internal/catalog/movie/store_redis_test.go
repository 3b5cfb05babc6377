// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinema/internal/catalog/movie"
	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/internal/platform/constants"
	"github.com/taibuivan/cinema/internal/platform/redis"
)

func newCachedRepository(t *testing.T, backing *fakeRepository) (*movie.CachedRepository, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := redis.NewJSONCache(client, constants.RedisPrefixMovie, time.Minute)
	return movie.NewCachedRepository(backing, cache, discardLogger()), server
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	backing := newFakeRepository(movie.Movie{ID: 1, Title: "Alien", Genre: "Horror", Duration: 117})
	repo, server := newCachedRepository(t, backing)
	ctx := context.Background()

	first, err := repo.GetMovie(ctx, 1)
	require.NoError(t, err)
	second, err := repo.GetMovie(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, backing.getCalls)
	assert.Equal(t, first.Title, second.Title)
	assert.True(t, server.Exists("cinema:movie:1"))
}

func TestCachedRepository_MissIsNotCached(t *testing.T) {
	backing := newFakeRepository()
	repo, server := newCachedRepository(t, backing)

	_, err := repo.GetMovie(context.Background(), 5)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.False(t, server.Exists("cinema:movie:5"))
}

func TestCachedRepository_WritesEvict(t *testing.T) {
	backing := newFakeRepository(movie.Movie{ID: 1, Title: "Alien", Genre: "Horror", Duration: 117})
	repo, server := newCachedRepository(t, backing)
	ctx := context.Background()

	_, err := repo.GetMovie(ctx, 1)
	require.NoError(t, err)
	require.True(t, server.Exists("cinema:movie:1"))

	require.NoError(t, repo.UpdateMovie(ctx, &movie.Movie{ID: 1, Title: "Aliens", Genre: "Action", Duration: 137}))
	assert.False(t, server.Exists("cinema:movie:1"))

	updated, err := repo.GetMovie(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Aliens", updated.Title)

	require.NoError(t, repo.DeleteMovie(ctx, 1))
	assert.False(t, server.Exists("cinema:movie:1"))

	_, err = repo.GetMovie(ctx, 1)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestCachedRepository_CacheOutageFallsThrough(t *testing.T) {
	backing := newFakeRepository(movie.Movie{ID: 1, Title: "Alien", Genre: "Horror", Duration: 117})
	repo, server := newCachedRepository(t, backing)
	server.Close()

	m, err := repo.GetMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alien", m.Title)
}
