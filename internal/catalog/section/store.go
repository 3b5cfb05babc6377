// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import "context"

// Repository persists sections.
//
// CreateSection reports [ErrMovieNotFound] or [ErrMovieTheaterNotFound] for a
// dangling reference and a CONFLICT for a duplicate pair.
type Repository interface {
	ListSections(ctx context.Context, limit, offset int) ([]*Section, int, error)
	GetSection(ctx context.Context, movieID, movieTheaterID int) (*Section, error)
	CreateSection(ctx context.Context, section *Section) error
	DeleteSection(ctx context.Context, movieID, movieTheaterID int) error
}
