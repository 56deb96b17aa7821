package publisher_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/pressroom/internal/core/publisher"
	"github.com/taibuivan/pressroom/internal/platform/apperr"
	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// memoryRepository keeps publishers in insertion order.
type memoryRepository struct {
	publishers []*publisher.Publisher
	nextID     int
	// magazine counts by publisher id
	owned     map[int]int
	lastOrder sorting.Order
	// row locks and magazine removals, in call order
	trail []string
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{nextID: 1, owned: map[int]int{}}
}

func (repository *memoryRepository) ListPublishers(_ context.Context, order sorting.Order) ([]*publisher.Publisher, error) {
	repository.lastOrder = order
	out := slices.Clone(repository.publishers)
	if order.Direction == sorting.Desc {
		slices.Reverse(out)
	}
	return out, nil
}

func (repository *memoryRepository) GetPublisher(_ context.Context, id int) (*publisher.Publisher, error) {
	for _, p := range repository.publishers {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, apperr.EntityNotFound(publisher.EntityName, id)
}

func (repository *memoryRepository) CreatePublisher(_ context.Context, p *publisher.Publisher) error {
	p.ID = repository.nextID
	repository.nextID++
	clone := *p
	repository.publishers = append(repository.publishers, &clone)
	return nil
}

func (repository *memoryRepository) UpdatePublisher(_ context.Context, p *publisher.Publisher) error {
	for i, existing := range repository.publishers {
		if existing.ID == p.ID {
			clone := *p
			repository.publishers[i] = &clone
			return nil
		}
	}
	return apperr.EntityNotFound(publisher.EntityName, p.ID)
}

func (repository *memoryRepository) DeletePublisher(_ context.Context, id int) error {
	for i, existing := range repository.publishers {
		if existing.ID == id {
			repository.publishers = slices.Delete(repository.publishers, i, i+1)
			return nil
		}
	}
	return apperr.EntityNotFound(publisher.EntityName, id)
}

func (repository *memoryRepository) LockPublisher(ctx context.Context, id int) error {
	if _, err := repository.GetPublisher(ctx, id); err != nil {
		return err
	}
	repository.trail = append(repository.trail, fmt.Sprintf("id:%d", id))
	return nil
}

func (repository *memoryRepository) LockPublishersByName(_ context.Context, name string) error {
	repository.trail = append(repository.trail, "name:"+name)
	return nil
}

func (repository *memoryRepository) filter(keep func(*publisher.Publisher) bool) []*publisher.Publisher {
	out := []*publisher.Publisher{}
	for _, p := range repository.publishers {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (repository *memoryRepository) FindByName(_ context.Context, name string) ([]*publisher.Publisher, error) {
	return repository.filter(func(p *publisher.Publisher) bool { return strings.EqualFold(p.Name, name) }), nil
}

func (repository *memoryRepository) SearchByName(_ context.Context, keyword string) ([]*publisher.Publisher, error) {
	keyword = strings.ToLower(keyword)
	return repository.filter(func(p *publisher.Publisher) bool {
		return strings.Contains(strings.ToLower(p.Name), keyword)
	}), nil
}

func (repository *memoryRepository) CountPublishers(context.Context) (int64, error) {
	return int64(len(repository.publishers)), nil
}

func (repository *memoryRepository) FindByEmailDomain(_ context.Context, domain string) ([]*publisher.Publisher, error) {
	return repository.filter(func(p *publisher.Publisher) bool { return strings.HasSuffix(p.Email, domain) }), nil
}

func (repository *memoryRepository) FindWithMagazines(context.Context) ([]*publisher.Publisher, error) {
	return repository.filter(func(p *publisher.Publisher) bool { return repository.owned[p.ID] > 0 }), nil
}

func (repository *memoryRepository) FindWithMinMagazines(_ context.Context, minMagazines int) ([]*publisher.Publisher, error) {
	return repository.filter(func(p *publisher.Publisher) bool { return repository.owned[p.ID] > minMagazines }), nil
}

func (repository *memoryRepository) MagazineCounts(context.Context) ([]publisher.MagazineCount, error) {
	counts := []publisher.MagazineCount{}
	for _, p := range repository.publishers {
		counts = append(counts, publisher.MagazineCount{PublisherID: p.ID, Name: p.Name, Count: int64(repository.owned[p.ID])})
	}
	return counts, nil
}

func (repository *memoryRepository) UpdateEmailByName(_ context.Context, email, name string) (int64, error) {
	var updated int64
	for _, p := range repository.publishers {
		if p.Name == name {
			p.Email = email
			updated++
		}
	}
	return updated, nil
}

func (repository *memoryRepository) DeleteByName(_ context.Context, name string) (int64, error) {
	before := len(repository.publishers)
	repository.publishers = slices.DeleteFunc(repository.publishers, func(p *publisher.Publisher) bool { return p.Name == name })
	return int64(before - len(repository.publishers)), nil
}

// magazineRemover drops the counts held by memoryRepository.owned.
type magazineRemover struct {
	repository *memoryRepository
	fail       error
}

func (remover *magazineRemover) DeleteMagazinesByPublisher(_ context.Context, publisherID int) (int64, error) {
	if remover.fail != nil {
		return 0, remover.fail
	}
	remover.repository.trail = append(remover.repository.trail, fmt.Sprintf("magazines:%d", publisherID))
	removed := remover.repository.owned[publisherID]
	delete(remover.repository.owned, publisherID)
	return int64(removed), nil
}

func (remover *magazineRemover) DeleteMagazinesByPublisherName(_ context.Context, name string) (int64, error) {
	if remover.fail != nil {
		return 0, remover.fail
	}
	remover.repository.trail = append(remover.repository.trail, "magazines:"+name)
	var removed int64
	for _, p := range remover.repository.publishers {
		if p.Name == name {
			removed += int64(remover.repository.owned[p.ID])
			delete(remover.repository.owned, p.ID)
		}
	}
	return removed, nil
}

// inlineTransactor runs fn directly and counts the calls.
type inlineTransactor struct {
	calls int
}

func (transactor *inlineTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	transactor.calls++
	return fn(ctx)
}

type fixture struct {
	repository *memoryRepository
	remover    *magazineRemover
	transactor *inlineTransactor
	service    *publisher.Service
}

func newFixture() *fixture {
	repository := newMemoryRepository()
	remover := &magazineRemover{repository: repository}
	transactor := &inlineTransactor{}
	return &fixture{
		repository: repository,
		remover:    remover,
		transactor: transactor,
		service:    publisher.NewService(repository, remover, transactor, discardLogger),
	}
}
