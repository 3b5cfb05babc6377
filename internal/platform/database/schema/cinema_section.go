package schema

// CinemaSectionTable represents the 'cinema.section' join table
type CinemaSectionTable struct {
	Table          string
	MovieID        string
	MovieTheaterID string
	CreatedAt      string

	PrimaryKey             string
	MovieForeignKey        string
	MovieTheaterForeignKey string
}

// CinemaSection is the schema definition for cinema.section
var CinemaSection = CinemaSectionTable{
	Table:          "cinema.section",
	MovieID:        "movieid",
	MovieTheaterID: "movietheaterid",
	CreatedAt:      "createdat",

	PrimaryKey:             "section_pkey",
	MovieForeignKey:        "section_movieid_fkey",
	MovieTheaterForeignKey: "section_movietheaterid_fkey",
}

// Columns returns the column list in the order stores scan them.
func (t CinemaSectionTable) Columns() []string {
	return []string{t.MovieID, t.MovieTheaterID, t.CreatedAt}
}
