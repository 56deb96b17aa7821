package magazine

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo       Repository
	publishers PublisherLookup
	tx         Transactor
	logger     *slog.Logger
}

func NewService(repo Repository, publishers PublisherLookup, tx Transactor, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		publishers: publishers,
		tx:         tx,
		logger:     logger,
	}
}

// ListMagazines returns every magazine ordered by sortField. Order "desc"
// (any case) sorts descending, anything else ascending.
func (service *Service) ListMagazines(context context.Context, sortField, order string) ([]*Magazine, error) {
	resolved, err := SortFields.Resolve("sortBy", sortField, order)
	if err != nil {
		return nil, err
	}
	return service.repo.ListMagazines(context, resolved)
}

func (service *Service) GetMagazine(context context.Context, id int) (*Magazine, error) {
	return service.repo.GetMagazine(context, id)
}

// CreateMagazine attaches m to the publisher identified by publisherID and
// stores it. Nothing is written when the publisher does not exist.
func (service *Service) CreateMagazine(ctx context.Context, publisherID int, m *Magazine) error {
	err := service.tx.Transaction(ctx, func(ctx context.Context) error {
		owner, err := service.publishers.GetPublisher(ctx, publisherID)
		if err != nil {
			return err
		}

		m.ID = 0
		m.Publisher = owner
		return service.repo.CreateMagazine(ctx, m)
	})
	if err != nil {
		return err
	}

	service.logger.Info("magazine_created",
		slog.Int("magazine_id", m.ID),
		slog.Int("publisher_id", publisherID),
		slog.String("title", m.Title),
	)
	return nil
}

/*
UpdateMagazine overwrites the scalar fields of magazine id with those of input.

When input names a publisher it is re-resolved by id and the magazine moves
to it. A missing magazine or publisher leaves the row unchanged.
*/
func (service *Service) UpdateMagazine(ctx context.Context, id int, input *Magazine) (*Magazine, error) {
	var updated *Magazine

	err := service.tx.Transaction(ctx, func(ctx context.Context) error {
		existing, err := service.repo.GetMagazine(ctx, id)
		if err != nil {
			return err
		}

		existing.Title = input.Title
		existing.Genre = input.Genre
		existing.IssueNumber = input.IssueNumber
		existing.ReleaseYear = input.ReleaseYear
		existing.Price = input.Price

		if input.Publisher != nil {
			owner, err := service.publishers.GetPublisher(ctx, input.Publisher.ID)
			if err != nil {
				return err
			}
			existing.Publisher = owner
		}

		if err := service.repo.UpdateMagazine(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("magazine_updated", slog.Int("magazine_id", id), slog.Int("publisher_id", updated.PublisherID()))
	return updated, nil
}

// DeleteMagazine reports whether a magazine with id existed and was removed.
func (service *Service) DeleteMagazine(context context.Context, id int) (bool, error) {
	deleted, err := service.repo.DeleteMagazine(context, id)
	if err != nil {
		return false, err
	}

	if deleted {
		service.logger.Warn("magazine_deleted", slog.Int("magazine_id", id))
	}
	return deleted, nil
}

// # Filters

func (service *Service) ListByPublisher(context context.Context, publisherID int) ([]*Magazine, error) {
	return service.repo.ListByPublisher(context, publisherID)
}

// ListByGenre matches the genre exactly.
func (service *Service) ListByGenre(context context.Context, genre string) ([]*Magazine, error) {
	return service.repo.ListByGenre(context, genre)
}

// ListReleasedAfter returns magazines released strictly after year.
func (service *Service) ListReleasedAfter(context context.Context, year int) ([]*Magazine, error) {
	return service.repo.ListReleasedAfter(context, year)
}

// ListByPriceRange returns magazines priced within [minPrice, maxPrice].
// An inverted range matches nothing.
func (service *Service) ListByPriceRange(context context.Context, minPrice, maxPrice decimal.Decimal) ([]*Magazine, error) {
	return service.repo.ListByPriceRange(context, minPrice, maxPrice)
}
