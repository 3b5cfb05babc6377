// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"
	"strconv"
)

// Cache is the key-value store used by [CachedRepository].
type Cache interface {
	Get(ctx context.Context, id string, dest any) (bool, error)
	Set(ctx context.Context, id string, value any) error
	Delete(ctx context.Context, id string) error
}

// CachedRepository decorates a [Repository] with a read-through cache of
// single movie rows. Writes go to the wrapped repository first and then evict
// the cached row.
//
// Cache failures are logged and never fail the request.
type CachedRepository struct {
	Repository
	cache  Cache
	logger *slog.Logger
}

// NewCachedRepository wraps next with a read-through cache.
func NewCachedRepository(next Repository, cache Cache, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{Repository: next, cache: cache, logger: logger}
}

// GetMovie serves the row from cache when present and fills the cache on a miss.
func (repository *CachedRepository) GetMovie(ctx context.Context, id int) (*Movie, error) {
	key := strconv.Itoa(id)

	cached := &Movie{}
	found, err := repository.cache.Get(ctx, key, cached)
	if err != nil {
		repository.logger.WarnContext(ctx, "movie_cache_read_failed", slog.Int("movie_id", id), slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	m, err := repository.Repository.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repository.cache.Set(ctx, key, m); err != nil {
		repository.logger.WarnContext(ctx, "movie_cache_write_failed", slog.Int("movie_id", id), slog.Any("error", err))
	}

	return m, nil
}

// UpdateMovie writes through to the wrapped repository and evicts the cached row.
func (repository *CachedRepository) UpdateMovie(ctx context.Context, m *Movie) error {
	if err := repository.Repository.UpdateMovie(ctx, m); err != nil {
		return err
	}
	repository.evict(ctx, m.ID)
	return nil
}

// DeleteMovie deletes through the wrapped repository and evicts the cached row.
func (repository *CachedRepository) DeleteMovie(ctx context.Context, id int) error {
	if err := repository.Repository.DeleteMovie(ctx, id); err != nil {
		return err
	}
	repository.evict(ctx, id)
	return nil
}

func (repository *CachedRepository) evict(ctx context.Context, id int) {
	if err := repository.cache.Delete(ctx, strconv.Itoa(id)); err != nil {
		repository.logger.WarnContext(ctx, "movie_cache_evict_failed", slog.Int("movie_id", id), slog.Any("error", err))
	}
}
