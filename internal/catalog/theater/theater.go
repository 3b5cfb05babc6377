// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package theater manages movie theaters, their optional address and the
// movies they screen.
package theater

import (
	"time"

	"github.com/taibuivan/cinema/internal/platform/apperr"
	"github.com/taibuivan/cinema/pkg/pointer"
)

var (
	// ErrNotFound is returned when no movie theater has the requested id.
	ErrNotFound = apperr.NotFound("Movie theater")

	// ErrAddressNotFound is returned when address_id references nothing.
	ErrAddressNotFound = apperr.NotFound("Address")
)

// MovieTheater is the stored row. AddressID is nil for a theater without a
// known location.
type MovieTheater struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	AddressID *int      `json:"address_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location is the address embedded in the theater read model.
type Location struct {
	ID     int    `json:"id"`
	Street string `json:"street"`
	Number int    `json:"number"`
}

// Showing is a movie screened by a theater.
type Showing struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
}

// Details is the theater read model.
type Details struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   *Location `json:"address"`
	Sections  []Showing `json:"sections,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input is the writable subset of a movie theater.
type Input struct {
	Name      string `json:"name"`
	AddressID *int   `json:"address_id"`
}

// InputOf returns the writable fields of an existing theater.
func InputOf(details *Details) Input {
	input := Input{Name: details.Name}
	if details.Address != nil {
		input.AddressID = pointer.To(details.Address.ID)
	}
	return input
}

const (
	FieldName      = "name"
	FieldAddressID = "address_id"
)
