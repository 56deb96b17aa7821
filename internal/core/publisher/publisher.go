package publisher

import "github.com/taibuivan/pressroom/internal/platform/sorting"

// EntityName labels publisher errors and log events.
const EntityName = "Publisher"

// Publisher is an organisation owning zero or more magazines.
//
// The owned magazines are never loaded into or serialised with a Publisher;
// they are reached through the magazine queries instead.
type Publisher struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

// MagazineCount pairs a publisher with the number of magazines it owns.
type MagazineCount struct {
	PublisherID int    `json:"publisherId"`
	Name        string `json:"name"`
	Count       int64  `json:"count"`
}

// SortFields lists the API fields a publisher listing can be ordered by.
var SortFields = sorting.Fields{
	"id":            "id",
	"name":          "name",
	"email":         "email",
	"contactNumber": "contact_number",
	"address":       "address",
}
