package magazine

import (
	"github.com/shopspring/decimal"

	"github.com/taibuivan/pressroom/internal/core/publisher"
	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

// EntityName labels magazine errors and log events.
const EntityName = "Magazine"

// Prices travel as JSON numbers wherever a Magazine is encoded.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Magazine is a periodical issue owned by exactly one publisher.
type Magazine struct {
	ID          int                  `json:"id"`
	Title       string               `json:"title"`
	Genre       string               `json:"genre"`
	IssueNumber int                  `json:"issueNumber"`
	ReleaseYear int                  `json:"releaseYear"`
	Price       decimal.Decimal      `json:"price"`
	Publisher   *publisher.Publisher `json:"publisher"`
}

// PublisherID returns the owning publisher's id, or 0 when unattached.
func (m *Magazine) PublisherID() int {
	if m.Publisher == nil {
		return 0
	}
	return m.Publisher.ID
}

// SortFields lists the API fields a magazine listing can be ordered by.
var SortFields = sorting.Fields{
	"id":          "id",
	"title":       "title",
	"genre":       "genre",
	"issueNumber": "issue_number",
	"releaseYear": "release_year",
	"price":       "price",
}
