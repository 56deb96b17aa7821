package publisher

import (
	"context"

	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

// Repository is the persistence contract for publishers.
type Repository interface {
	ListPublishers(context context.Context, order sorting.Order) ([]*Publisher, error)
	GetPublisher(context context.Context, id int) (*Publisher, error)
	CreatePublisher(context context.Context, p *Publisher) error
	UpdatePublisher(context context.Context, p *Publisher) error
	DeletePublisher(context context.Context, id int) error

	// LockPublisher row-locks publisher id for the rest of the current
	// transaction, so inserts referencing it wait until the lock is released.
	LockPublisher(context context.Context, id int) error
	LockPublishersByName(context context.Context, name string) error

	FindByName(context context.Context, name string) ([]*Publisher, error)
	SearchByName(context context.Context, keyword string) ([]*Publisher, error)
	CountPublishers(context context.Context) (int64, error)
	FindByEmailDomain(context context.Context, domain string) ([]*Publisher, error)
	FindWithMagazines(context context.Context) ([]*Publisher, error)
	FindWithMinMagazines(context context.Context, minMagazines int) ([]*Publisher, error)
	MagazineCounts(context context.Context) ([]MagazineCount, error)
	UpdateEmailByName(context context.Context, email, name string) (int64, error)
	DeleteByName(context context.Context, name string) (int64, error)
}

// MagazineRemover deletes the magazines a publisher owns. It is implemented
// by the magazine repository and lets this package enforce ownership without
// importing it.
type MagazineRemover interface {
	DeleteMagazinesByPublisher(context context.Context, publisherID int) (int64, error)
	DeleteMagazinesByPublisherName(context context.Context, name string) (int64, error)
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
