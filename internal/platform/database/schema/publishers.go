package schema

// PublishersTable represents the 'publishers' table
type PublishersTable struct {
	Table         string
	ID            string
	Name          string
	Email         string
	ContactNumber string
	Address       string
}

// Publishers is the schema definition for publishers
var Publishers = PublishersTable{
	Table:         "publishers",
	ID:            "id",
	Name:          "name",
	Email:         "email",
	ContactNumber: "contact_number",
	Address:       "address",
}

func (t PublishersTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.ContactNumber, t.Address}
}
