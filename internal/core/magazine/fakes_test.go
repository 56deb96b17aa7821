package magazine_test

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/pressroom/internal/core/magazine"
	"github.com/taibuivan/pressroom/internal/core/publisher"
	"github.com/taibuivan/pressroom/internal/platform/apperr"
	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type memoryRepository struct {
	magazines []*magazine.Magazine
	nextID    int
	lastOrder sorting.Order
}

func (repository *memoryRepository) ListMagazines(_ context.Context, order sorting.Order) ([]*magazine.Magazine, error) {
	repository.lastOrder = order
	out := slices.Clone(repository.magazines)
	if order.Direction == sorting.Desc {
		slices.Reverse(out)
	}
	return out, nil
}

func (repository *memoryRepository) GetMagazine(_ context.Context, id int) (*magazine.Magazine, error) {
	for _, m := range repository.magazines {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, apperr.EntityNotFound(magazine.EntityName, id)
}

func (repository *memoryRepository) CreateMagazine(_ context.Context, m *magazine.Magazine) error {
	repository.nextID++
	m.ID = repository.nextID
	clone := *m
	repository.magazines = append(repository.magazines, &clone)
	return nil
}

func (repository *memoryRepository) UpdateMagazine(_ context.Context, m *magazine.Magazine) error {
	for i, existing := range repository.magazines {
		if existing.ID == m.ID {
			clone := *m
			repository.magazines[i] = &clone
			return nil
		}
	}
	return apperr.EntityNotFound(magazine.EntityName, m.ID)
}

func (repository *memoryRepository) DeleteMagazine(_ context.Context, id int) (bool, error) {
	before := len(repository.magazines)
	repository.magazines = slices.DeleteFunc(repository.magazines, func(m *magazine.Magazine) bool { return m.ID == id })
	return len(repository.magazines) < before, nil
}

func (repository *memoryRepository) filter(keep func(*magazine.Magazine) bool) []*magazine.Magazine {
	out := []*magazine.Magazine{}
	for _, m := range repository.magazines {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func (repository *memoryRepository) ListByPublisher(_ context.Context, publisherID int) ([]*magazine.Magazine, error) {
	return repository.filter(func(m *magazine.Magazine) bool { return m.PublisherID() == publisherID }), nil
}

func (repository *memoryRepository) ListByGenre(_ context.Context, genre string) ([]*magazine.Magazine, error) {
	return repository.filter(func(m *magazine.Magazine) bool { return m.Genre == genre }), nil
}

func (repository *memoryRepository) ListReleasedAfter(_ context.Context, year int) ([]*magazine.Magazine, error) {
	return repository.filter(func(m *magazine.Magazine) bool { return m.ReleaseYear > year }), nil
}

func (repository *memoryRepository) ListByPriceRange(_ context.Context, minPrice, maxPrice decimal.Decimal) ([]*magazine.Magazine, error) {
	return repository.filter(func(m *magazine.Magazine) bool {
		return m.Price.GreaterThanOrEqual(minPrice) && m.Price.LessThanOrEqual(maxPrice)
	}), nil
}

// publisherDirectory resolves publishers from a fixed map.
type publisherDirectory map[int]*publisher.Publisher

func (directory publisherDirectory) GetPublisher(_ context.Context, id int) (*publisher.Publisher, error) {
	if p, ok := directory[id]; ok {
		return p, nil
	}
	return nil, apperr.EntityNotFound(publisher.EntityName, id)
}

type inlineTransactor struct {
	calls int
}

func (transactor *inlineTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	transactor.calls++
	return fn(ctx)
}

type fixture struct {
	repository *memoryRepository
	transactor *inlineTransactor
	service    *magazine.Service
}

func newFixture() *fixture {
	repository := &memoryRepository{}
	transactor := &inlineTransactor{}
	directory := publisherDirectory{
		1: {ID: 1, Name: "Acme", Email: "a@acme.com"},
		2: {ID: 2, Name: "Globex", Email: "desk@globex.com"},
	}
	return &fixture{
		repository: repository,
		transactor: transactor,
		service:    magazine.NewService(repository, directory, transactor, discardLogger),
	}
}
