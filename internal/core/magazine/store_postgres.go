package magazine

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/pressroom/internal/core/publisher"
	"github.com/taibuivan/pressroom/internal/platform/apperr"
	"github.com/taibuivan/pressroom/internal/platform/database/schema"
	"github.com/taibuivan/pressroom/internal/platform/dberr"
	"github.com/taibuivan/pressroom/internal/platform/postgres"
	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectMagazines joins every magazine to its publisher.
func selectMagazines() string {
	columns := []string{
		schema.Magazines.ID, schema.Magazines.Title, schema.Magazines.Genre,
		schema.Magazines.IssueNumber, schema.Magazines.ReleaseYear, schema.Magazines.Price,
	}

	return fmt.Sprintf(`
		SELECT %s, %s
		FROM %s m
		JOIN %s p ON p.%s = m.%s
	`,
		schema.Qualified("m", columns), schema.Qualified("p", schema.Publishers.Columns()),
		schema.Magazines.Table,
		schema.Publishers.Table, schema.Publishers.ID, schema.Magazines.PublisherID,
	)
}

func scanMagazine(row pgx.Row) (*Magazine, error) {
	m := &Magazine{Publisher: &publisher.Publisher{}}
	err := row.Scan(
		&m.ID, &m.Title, &m.Genre, &m.IssueNumber, &m.ReleaseYear, &m.Price,
		&m.Publisher.ID, &m.Publisher.Name, &m.Publisher.Email, &m.Publisher.ContactNumber, &m.Publisher.Address,
	)
	return m, err
}

func (repository *PostgresRepository) ListMagazines(context context.Context, order sorting.Order) ([]*Magazine, error) {
	query := selectMagazines() + " ORDER BY " + order.Clause("m", schema.Magazines.ID)
	return repository.queryMagazines(context, "list_magazines", query)
}

func (repository *PostgresRepository) GetMagazine(context context.Context, id int) (*Magazine, error) {
	query := selectMagazines() + fmt.Sprintf(` WHERE m.%s = $1`, schema.Magazines.ID)

	m, err := scanMagazine(postgres.Conn(context, repository.db).QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_magazine", EntityName, id)
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMagazine(context context.Context, m *Magazine) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.Magazines.Table,
		schema.Magazines.Title, schema.Magazines.Genre, schema.Magazines.IssueNumber,
		schema.Magazines.ReleaseYear, schema.Magazines.Price, schema.Magazines.PublisherID,
		schema.Magazines.ID,
	)

	err := postgres.Conn(context, repository.db).
		QueryRow(context, query, m.Title, m.Genre, m.IssueNumber, m.ReleaseYear, m.Price, m.PublisherID()).
		Scan(&m.ID)
	return dberr.Wrap(err, "create_magazine")
}

func (repository *PostgresRepository) UpdateMagazine(context context.Context, m *Magazine) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
	`,
		schema.Magazines.Table,
		schema.Magazines.Title, schema.Magazines.Genre, schema.Magazines.IssueNumber,
		schema.Magazines.ReleaseYear, schema.Magazines.Price, schema.Magazines.PublisherID,
		schema.Magazines.ID,
	)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query,
		m.ID, m.Title, m.Genre, m.IssueNumber, m.ReleaseYear, m.Price, m.PublisherID())
	if err != nil {
		return dberr.Wrap(err, "update_magazine")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.EntityNotFound(EntityName, m.ID)
	}
	return nil
}

func (repository *PostgresRepository) DeleteMagazine(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Magazines.Table, schema.Magazines.ID)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_magazine")
	}
	return cmd.RowsAffected() > 0, nil
}

// # Filters

func (repository *PostgresRepository) ListByPublisher(context context.Context, publisherID int) ([]*Magazine, error) {
	query := selectMagazines() + fmt.Sprintf(` WHERE m.%s = $1 ORDER BY m.%s`,
		schema.Magazines.PublisherID, schema.Magazines.ID)
	return repository.queryMagazines(context, "list_magazines_by_publisher", query, publisherID)
}

func (repository *PostgresRepository) ListByGenre(context context.Context, genre string) ([]*Magazine, error) {
	query := selectMagazines() + fmt.Sprintf(` WHERE m.%s = $1 ORDER BY m.%s`,
		schema.Magazines.Genre, schema.Magazines.ID)
	return repository.queryMagazines(context, "list_magazines_by_genre", query, genre)
}

func (repository *PostgresRepository) ListReleasedAfter(context context.Context, year int) ([]*Magazine, error) {
	query := selectMagazines() + fmt.Sprintf(` WHERE m.%s > $1 ORDER BY m.%s`,
		schema.Magazines.ReleaseYear, schema.Magazines.ID)
	return repository.queryMagazines(context, "list_magazines_released_after", query, year)
}

func (repository *PostgresRepository) ListByPriceRange(context context.Context, minPrice, maxPrice decimal.Decimal) ([]*Magazine, error) {
	query := selectMagazines() + fmt.Sprintf(` WHERE m.%s BETWEEN $1 AND $2 ORDER BY m.%s`,
		schema.Magazines.Price, schema.Magazines.ID)
	return repository.queryMagazines(context, "list_magazines_by_price_range", query, minPrice, maxPrice)
}

// # Ownership

// DeleteMagazinesByPublisher removes every magazine owned by publisherID.
func (repository *PostgresRepository) DeleteMagazinesByPublisher(context context.Context, publisherID int) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Magazines.Table, schema.Magazines.PublisherID)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, publisherID)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_magazines_by_publisher")
	}
	return cmd.RowsAffected(), nil
}

// DeleteMagazinesByPublisherName removes every magazine owned by a publisher named exactly name.
func (repository *PostgresRepository) DeleteMagazinesByPublisherName(context context.Context, name string) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s IN (SELECT %s FROM %s WHERE %s = $1)
	`,
		schema.Magazines.Table,
		schema.Magazines.PublisherID, schema.Publishers.ID, schema.Publishers.Table, schema.Publishers.Name,
	)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, name)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_magazines_by_publisher_name")
	}
	return cmd.RowsAffected(), nil
}

func (repository *PostgresRepository) queryMagazines(context context.Context, action, query string, args ...any) ([]*Magazine, error) {
	rows, err := postgres.Conn(context, repository.db).Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	magazines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Magazine, error) {
		return scanMagazine(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return magazines, nil
}
