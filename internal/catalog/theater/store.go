// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theater

import "context"

// Repository persists movie theaters.
//
// Create and update report [ErrAddressNotFound] for an unknown address and a
// CONFLICT when the address already belongs to another theater.
type Repository interface {
	ListTheaters(ctx context.Context, limit, offset int) ([]*Details, int, error)
	GetTheater(ctx context.Context, id int) (*Details, error)
	ListShowings(ctx context.Context, theaterID int) ([]Showing, error)
	CreateTheater(ctx context.Context, theater *MovieTheater) error
	UpdateTheater(ctx context.Context, theater *MovieTheater) error
	DeleteTheater(ctx context.Context, id int) error
}
