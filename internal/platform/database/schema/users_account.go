package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table              string
	ID                 string
	Username           string
	NormalizedUsername string
	Password           string
	BirthDate          string
	CreatedAt          string

	UsernameUniqueKey string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:              "users.account",
	ID:                 "id",
	Username:           "username",
	NormalizedUsername: "normalizedusername",
	Password:           "passwordhash",
	BirthDate:          "birthdate",
	CreatedAt:          "createdat",

	UsernameUniqueKey: "account_normalizedusername_key",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.NormalizedUsername, t.Password, t.BirthDate, t.CreatedAt,
	}
}
