package schema

// CinemaAddressTable represents the 'cinema.address' table
type CinemaAddressTable struct {
	Table     string
	ID        string
	Street    string
	Number    string
	CreatedAt string
	UpdatedAt string
}

// CinemaAddress is the schema definition for cinema.address
var CinemaAddress = CinemaAddressTable{
	Table:     "cinema.address",
	ID:        "id",
	Street:    "street",
	Number:    "number",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns the column list in the order stores scan them.
func (t CinemaAddressTable) Columns() []string {
	return []string{t.ID, t.Street, t.Number, t.CreatedAt, t.UpdatedAt}
}
