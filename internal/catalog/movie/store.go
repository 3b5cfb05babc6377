// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Repository persists movies.
//
// Missing rows are reported as a NOT_FOUND apperr.AppError.
type Repository interface {
	ListMovies(ctx context.Context, limit, offset int) ([]*Movie, int, error)
	GetMovie(ctx context.Context, id int) (*Movie, error)
	ListScreenings(ctx context.Context, movieID int) ([]Screening, error)
	CreateMovie(ctx context.Context, movie *Movie) error
	UpdateMovie(ctx context.Context, movie *Movie) error
	DeleteMovie(ctx context.Context, id int) error
}
