// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package movie manages the film catalogue: CRUD, JSON Patch updates and the
// list of theaters screening each film.
package movie

import (
	"time"

	"github.com/taibuivan/cinema/internal/platform/apperr"
)

// ErrNotFound is returned when no movie has the requested id.
var ErrNotFound = apperr.NotFound("Movie")

// Movie is a film that can be screened in movie theaters.
type Movie struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Genre     string    `json:"genre"`
	Duration  int       `json:"duration"` // minutes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Screening is a movie theater that shows a given movie.
type Screening struct {
	MovieTheaterID int    `json:"movie_theater_id"`
	Name           string `json:"name"`
}

// Details is the single-movie read model.
type Details struct {
	*Movie
	Sections []Screening `json:"sections"`

	// Time is the moment the lookup was served.
	Time time.Time `json:"time"`
}

// Input is the writable subset of a movie, used by create, update and patch.
type Input struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
}

// InputOf returns the writable fields of an existing movie.
func InputOf(movie *Movie) Input {
	return Input{Title: movie.Title, Genre: movie.Genre, Duration: movie.Duration}
}

// Field names and limits for validation.
const (
	FieldTitle    = "title"
	FieldGenre    = "genre"
	FieldDuration = "duration"

	MaxGenreLength = 50
	MinDuration    = 70
	MaxDuration    = 600
)
