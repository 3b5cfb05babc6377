package schema

// CinemaMovieTable represents the 'cinema.movie' table
type CinemaMovieTable struct {
	Table     string
	ID        string
	Title     string
	Genre     string
	Duration  string
	CreatedAt string
	UpdatedAt string
}

// CinemaMovie is the schema definition for cinema.movie
var CinemaMovie = CinemaMovieTable{
	Table:     "cinema.movie",
	ID:        "id",
	Title:     "title",
	Genre:     "genre",
	Duration:  "duration",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns the column list in the order stores scan them.
func (t CinemaMovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.Genre, t.Duration, t.CreatedAt, t.UpdatedAt}
}
