// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package section links movies to the movie theaters that screen them.
package section

import (
	"time"

	"github.com/taibuivan/cinema/internal/platform/apperr"
)

var (
	ErrNotFound             = apperr.NotFound("Section")
	ErrMovieNotFound        = apperr.NotFound("Movie")
	ErrMovieTheaterNotFound = apperr.NotFound("Movie theater")
)

// Section schedules one movie in one movie theater. The pair is unique.
type Section struct {
	MovieID        int       `json:"movie_id"`
	MovieTheaterID int       `json:"movie_theater_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Input identifies the pair to link.
type Input struct {
	MovieID        int `json:"movie_id"`
	MovieTheaterID int `json:"movie_theater_id"`
}

const (
	FieldMovieID        = "movie_id"
	FieldMovieTheaterID = "movie_theater_id"
)
