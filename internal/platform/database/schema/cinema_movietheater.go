package schema

// CinemaMovieTheaterTable represents the 'cinema.movietheater' table
type CinemaMovieTheaterTable struct {
	Table     string
	ID        string
	Name      string
	AddressID string
	CreatedAt string
	UpdatedAt string

	// Constraint names surfaced by PostgreSQL on violations.
	AddressUniqueKey  string
	AddressForeignKey string
}

// CinemaMovieTheater is the schema definition for cinema.movietheater
var CinemaMovieTheater = CinemaMovieTheaterTable{
	Table:     "cinema.movietheater",
	ID:        "id",
	Name:      "name",
	AddressID: "addressid",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",

	AddressUniqueKey:  "movietheater_addressid_key",
	AddressForeignKey: "movietheater_addressid_fkey",
}

