package schema

// MagazinesTable represents the 'magazines' table
type MagazinesTable struct {
	Table       string
	ID          string
	Title       string
	Genre       string
	IssueNumber string
	ReleaseYear string
	Price       string
	PublisherID string
}

// Magazines is the schema definition for magazines
var Magazines = MagazinesTable{
	Table:       "magazines",
	ID:          "id",
	Title:       "title",
	Genre:       "genre",
	IssueNumber: "issue_number",
	ReleaseYear: "release_year",
	Price:       "price",
	PublisherID: "publisher_id",
}

func (t MagazinesTable) Columns() []string {
	return []string{t.ID, t.Title, t.Genre, t.IssueNumber, t.ReleaseYear, t.Price, t.PublisherID}
}
