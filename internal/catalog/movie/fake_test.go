// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/cinema/internal/catalog/movie"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepository is an in-memory movie.Repository.
type fakeRepository struct {
	mu         sync.Mutex
	movies     map[int]*movie.Movie
	screenings map[int][]movie.Screening
	nextID     int
	getCalls   int
}

func newFakeRepository(seed ...movie.Movie) *fakeRepository {
	repo := &fakeRepository{
		movies:     map[int]*movie.Movie{},
		screenings: map[int][]movie.Screening{},
		nextID:     1,
	}
	for _, m := range seed {
		m := m
		repo.movies[m.ID] = &m
		if m.ID >= repo.nextID {
			repo.nextID = m.ID + 1
		}
	}
	return repo
}

func (repo *fakeRepository) ListMovies(_ context.Context, limit, offset int) ([]*movie.Movie, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	ids := make([]int, 0, len(repo.movies))
	for id := range repo.movies {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := []*movie.Movie{}
	for i := offset; i < len(ids) && len(result) < limit; i++ {
		copied := *repo.movies[ids[i]]
		result = append(result, &copied)
	}
	return result, len(ids), nil
}

func (repo *fakeRepository) GetMovie(_ context.Context, id int) (*movie.Movie, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.getCalls++
	m, ok := repo.movies[id]
	if !ok {
		return nil, movie.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (repo *fakeRepository) ListScreenings(_ context.Context, movieID int) ([]movie.Screening, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return append([]movie.Screening{}, repo.screenings[movieID]...), nil
}

func (repo *fakeRepository) CreateMovie(_ context.Context, m *movie.Movie) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	m.ID = repo.nextID
	repo.nextID++
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	copied := *m
	repo.movies[m.ID] = &copied
	return nil
}

func (repo *fakeRepository) UpdateMovie(_ context.Context, m *movie.Movie) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.movies[m.ID]; !ok {
		return movie.ErrNotFound
	}
	copied := *m
	repo.movies[m.ID] = &copied
	return nil
}

func (repo *fakeRepository) DeleteMovie(_ context.Context, id int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.movies[id]; !ok {
		return movie.ErrNotFound
	}
	delete(repo.movies, id)
	delete(repo.screenings, id)
	return nil
}
