package publisher

import (
	"context"
	"log/slog"
)

type Service struct {
	repo      Repository
	magazines MagazineRemover
	tx        Transactor
	logger    *slog.Logger
}

func NewService(repo Repository, magazines MagazineRemover, tx Transactor, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		magazines: magazines,
		tx:        tx,
		logger:    logger,
	}
}

// ListPublishers returns every publisher ordered by sortField. Direction "desc"
// (any case) sorts descending, anything else ascending.
func (service *Service) ListPublishers(context context.Context, sortField, direction string) ([]*Publisher, error) {
	order, err := SortFields.Resolve("sortBy", sortField, direction)
	if err != nil {
		return nil, err
	}
	return service.repo.ListPublishers(context, order)
}

func (service *Service) GetPublisher(context context.Context, id int) (*Publisher, error) {
	return service.repo.GetPublisher(context, id)
}

func (service *Service) CreatePublisher(context context.Context, publisher *Publisher) error {
	publisher.ID = 0
	if err := service.repo.CreatePublisher(context, publisher); err != nil {
		return err
	}

	service.logger.Info("publisher_created", slog.Int("publisher_id", publisher.ID), slog.String("name", publisher.Name))
	return nil
}

// UpdatePublisher overwrites the contact fields of an existing publisher.
// Its magazines are untouched.
func (service *Service) UpdatePublisher(context context.Context, id int, publisher *Publisher) error {
	publisher.ID = id
	if err := service.repo.UpdatePublisher(context, publisher); err != nil {
		return err
	}

	service.logger.Info("publisher_updated", slog.Int("publisher_id", id))
	return nil
}

// DeletePublisher removes a publisher together with all of its magazines in
// one transaction. The publisher row stays locked until commit so a magazine
// created concurrently cannot slip in between the two deletes.
func (service *Service) DeletePublisher(ctx context.Context, id int) error {
	var removed int64

	err := service.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := service.repo.LockPublisher(ctx, id); err != nil {
			return err
		}

		var err error
		if removed, err = service.magazines.DeleteMagazinesByPublisher(ctx, id); err != nil {
			return err
		}

		return service.repo.DeletePublisher(ctx, id)
	})
	if err != nil {
		return err
	}

	service.logger.Warn("publisher_deleted", slog.Int("publisher_id", id), slog.Int64("magazines_deleted", removed))
	return nil
}

// # Derived Queries

// FindByName matches the whole name, ignoring case.
func (service *Service) FindByName(context context.Context, name string) ([]*Publisher, error) {
	return service.repo.FindByName(context, name)
}

// SearchByName matches publishers whose name contains keyword, ignoring case.
func (service *Service) SearchByName(context context.Context, keyword string) ([]*Publisher, error) {
	return service.repo.SearchByName(context, keyword)
}

func (service *Service) CountPublishers(context context.Context) (int64, error) {
	return service.repo.CountPublishers(context)
}

// FindByEmailDomain matches publishers whose email ends with domain.
func (service *Service) FindByEmailDomain(context context.Context, domain string) ([]*Publisher, error) {
	return service.repo.FindByEmailDomain(context, domain)
}

func (service *Service) FindWithMagazines(context context.Context) ([]*Publisher, error) {
	return service.repo.FindWithMagazines(context)
}

// FindWithMinMagazines returns publishers owning strictly more than minMagazines.
func (service *Service) FindWithMinMagazines(context context.Context, minMagazines int) ([]*Publisher, error) {
	return service.repo.FindWithMinMagazines(context, minMagazines)
}

func (service *Service) MagazineCounts(context context.Context) ([]MagazineCount, error) {
	return service.repo.MagazineCounts(context)
}

// # Bulk Mutations

// UpdateEmailByName sets email on every publisher named exactly name.
func (service *Service) UpdateEmailByName(context context.Context, email, name string) (int64, error) {
	updated, err := service.repo.UpdateEmailByName(context, email, name)
	if err != nil {
		return 0, err
	}

	service.logger.Info("publisher_email_updated", slog.String("name", name), slog.Int64("updated", updated))
	return updated, nil
}

// DeleteByName removes every publisher named exactly name, and their
// magazines, in one transaction.
func (service *Service) DeleteByName(ctx context.Context, name string) (int64, error) {
	var deleted int64

	err := service.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := service.repo.LockPublishersByName(ctx, name); err != nil {
			return err
		}

		if _, err := service.magazines.DeleteMagazinesByPublisherName(ctx, name); err != nil {
			return err
		}

		var err error
		deleted, err = service.repo.DeleteByName(ctx, name)
		return err
	})
	if err != nil {
		return 0, err
	}

	service.logger.Warn("publishers_deleted_by_name", slog.String("name", name), slog.Int64("deleted", deleted))
	return deleted, nil
}
