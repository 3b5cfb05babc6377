// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/cinema/internal/catalog/section"
	"github.com/taibuivan/cinema/internal/platform/apperr"
)

type pair struct{ movieID, movieTheaterID int }

// fakeRepository is an in-memory section.Repository over a fixed set of
// movies and theaters.
type fakeRepository struct {
	mu       sync.Mutex
	movies   map[int]bool
	theaters map[int]bool
	sections map[pair]section.Section
}

func newFakeRepository(movies, theaters []int) *fakeRepository {
	repo := &fakeRepository{movies: map[int]bool{}, theaters: map[int]bool{}, sections: map[pair]section.Section{}}
	for _, id := range movies {
		repo.movies[id] = true
	}
	for _, id := range theaters {
		repo.theaters[id] = true
	}
	return repo
}

func (repo *fakeRepository) ListSections(_ context.Context, limit, offset int) ([]*section.Section, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all := make([]*section.Section, 0, len(repo.sections))
	for _, s := range repo.sections {
		copied := s
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].MovieID != all[j].MovieID {
			return all[i].MovieID < all[j].MovieID
		}
		return all[i].MovieTheaterID < all[j].MovieTheaterID
	})

	total := len(all)
	if offset > total {
		offset = total
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (repo *fakeRepository) GetSection(_ context.Context, movieID, movieTheaterID int) (*section.Section, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	s, ok := repo.sections[pair{movieID, movieTheaterID}]
	if !ok {
		return nil, section.ErrNotFound
	}
	return &s, nil
}

func (repo *fakeRepository) CreateSection(_ context.Context, s *section.Section) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if !repo.movies[s.MovieID] {
		return section.ErrMovieNotFound
	}
	if !repo.theaters[s.MovieTheaterID] {
		return section.ErrMovieTheaterNotFound
	}
	key := pair{s.MovieID, s.MovieTheaterID}
	if _, exists := repo.sections[key]; exists {
		return apperr.Conflict("Movie is already scheduled in this movie theater")
	}
	s.CreatedAt = time.Now()
	repo.sections[key] = *s
	return nil
}

func (repo *fakeRepository) DeleteSection(_ context.Context, movieID, movieTheaterID int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := pair{movieID, movieTheaterID}
	if _, ok := repo.sections[key]; !ok {
		return section.ErrNotFound
	}
	delete(repo.sections, key)
	return nil
}

func newService(repo *fakeRepository) *section.Service {
	return section.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
