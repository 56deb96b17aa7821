package magazine

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/pressroom/internal/core/publisher"
	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

// Repository is the persistence contract for magazines. Reads return
// magazines with their Publisher hydrated.
type Repository interface {
	ListMagazines(context context.Context, order sorting.Order) ([]*Magazine, error)
	GetMagazine(context context.Context, id int) (*Magazine, error)
	CreateMagazine(context context.Context, m *Magazine) error
	UpdateMagazine(context context.Context, m *Magazine) error
	DeleteMagazine(context context.Context, id int) (bool, error)

	ListByPublisher(context context.Context, publisherID int) ([]*Magazine, error)
	ListByGenre(context context.Context, genre string) ([]*Magazine, error)
	ListReleasedAfter(context context.Context, year int) ([]*Magazine, error)
	ListByPriceRange(context context.Context, minPrice, maxPrice decimal.Decimal) ([]*Magazine, error)
}

// PublisherLookup resolves the owner of a magazine.
type PublisherLookup interface {
	GetPublisher(context context.Context, id int) (*publisher.Publisher, error)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
