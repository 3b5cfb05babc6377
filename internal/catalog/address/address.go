// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package address manages street addresses that movie theaters are located at.
package address

import (
	"time"

	"github.com/taibuivan/cinema/internal/platform/apperr"
)

// ErrNotFound is returned when no address has the requested id.
var ErrNotFound = apperr.NotFound("Address")

// Address is a street location. At most one movie theater may use it.
type Address struct {
	ID        int       `json:"id"`
	Street    string    `json:"street"`
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input is the writable subset of an address.
type Input struct {
	Street string `json:"street"`
	Number int    `json:"number"`
}

// InputOf returns the writable fields of an existing address.
func InputOf(address *Address) Input {
	return Input{Street: address.Street, Number: address.Number}
}

const (
	FieldStreet = "street"
	FieldNumber = "number"
)
