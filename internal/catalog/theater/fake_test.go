// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theater_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/cinema/internal/catalog/theater"
	"github.com/taibuivan/cinema/internal/platform/apperr"
)

// fakeRepository is an in-memory theater.Repository with a fixed set of
// known addresses.
type fakeRepository struct {
	mu        sync.Mutex
	theaters  map[int]*theater.MovieTheater
	addresses map[int]theater.Location
	showings  map[int][]theater.Showing
	nextID    int
}

func newFakeRepository(addresses ...theater.Location) *fakeRepository {
	repo := &fakeRepository{
		theaters:  map[int]*theater.MovieTheater{},
		addresses: map[int]theater.Location{},
		showings:  map[int][]theater.Showing{},
		nextID:    1,
	}
	for _, a := range addresses {
		repo.addresses[a.ID] = a
	}
	return repo
}

func (repo *fakeRepository) details(t *theater.MovieTheater) *theater.Details {
	details := &theater.Details{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
	if t.AddressID != nil {
		location := repo.addresses[*t.AddressID]
		details.Address = &location
	}
	return details
}

func (repo *fakeRepository) ListTheaters(_ context.Context, limit, offset int) ([]*theater.Details, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	result := []*theater.Details{}
	for id := 1; id < repo.nextID && len(result) < limit; id++ {
		if t, ok := repo.theaters[id]; ok {
			if offset > 0 {
				offset--
				continue
			}
			result = append(result, repo.details(t))
		}
	}
	return result, len(repo.theaters), nil
}

func (repo *fakeRepository) GetTheater(_ context.Context, id int) (*theater.Details, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	t, ok := repo.theaters[id]
	if !ok {
		return nil, theater.ErrNotFound
	}
	return repo.details(t), nil
}

func (repo *fakeRepository) ListShowings(_ context.Context, theaterID int) ([]theater.Showing, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return append([]theater.Showing{}, repo.showings[theaterID]...), nil
}

func (repo *fakeRepository) checkAddress(selfID int, addressID *int) error {
	if addressID == nil {
		return nil
	}
	if _, ok := repo.addresses[*addressID]; !ok {
		return theater.ErrAddressNotFound
	}
	for id, t := range repo.theaters {
		if id != selfID && t.AddressID != nil && *t.AddressID == *addressID {
			return apperr.Conflict("Address is already used by another movie theater")
		}
	}
	return nil
}

func (repo *fakeRepository) CreateTheater(_ context.Context, t *theater.MovieTheater) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if err := repo.checkAddress(0, t.AddressID); err != nil {
		return err
	}
	t.ID = repo.nextID
	repo.nextID++
	copied := *t
	repo.theaters[t.ID] = &copied
	return nil
}

func (repo *fakeRepository) UpdateTheater(_ context.Context, t *theater.MovieTheater) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.theaters[t.ID]; !ok {
		return theater.ErrNotFound
	}
	if err := repo.checkAddress(t.ID, t.AddressID); err != nil {
		return err
	}
	copied := *t
	repo.theaters[t.ID] = &copied
	return nil
}

func (repo *fakeRepository) DeleteTheater(_ context.Context, id int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.theaters[id]; !ok {
		return theater.ErrNotFound
	}
	delete(repo.theaters, id)
	delete(repo.showings, id)
	return nil
}

func newService(repo *fakeRepository) *theater.Service {
	return theater.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
