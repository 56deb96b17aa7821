package publisher

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/pressroom/internal/platform/apperr"
	"github.com/taibuivan/pressroom/internal/platform/database/schema"
	"github.com/taibuivan/pressroom/internal/platform/dberr"
	"github.com/taibuivan/pressroom/internal/platform/postgres"
	"github.com/taibuivan/pressroom/internal/platform/sorting"
)

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectPublishers is the projection shared by every publisher read.
func selectPublishers() string {
	return fmt.Sprintf(`SELECT %s FROM %s p`,
		schema.Qualified("p", schema.Publishers.Columns()), schema.Publishers.Table)
}

func (repository *PostgresRepository) ListPublishers(context context.Context, order sorting.Order) ([]*Publisher, error) {
	query := selectPublishers() + " ORDER BY " + order.Clause("p", schema.Publishers.ID)
	return repository.queryPublishers(context, "list_publishers", query)
}

func (repository *PostgresRepository) GetPublisher(context context.Context, id int) (*Publisher, error) {
	query := selectPublishers() + fmt.Sprintf(` WHERE p.%s = $1`, schema.Publishers.ID)

	p := &Publisher{}
	err := postgres.Conn(context, repository.db).QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.ContactNumber, &p.Address,
	)
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_publisher", EntityName, id)
	}

	return p, nil
}

func (repository *PostgresRepository) CreatePublisher(context context.Context, p *Publisher) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.Publishers.Table, schema.Publishers.Name, schema.Publishers.Email,
		schema.Publishers.ContactNumber, schema.Publishers.Address,
		schema.Publishers.ID,
	)

	err := postgres.Conn(context, repository.db).
		QueryRow(context, query, p.Name, p.Email, p.ContactNumber, p.Address).
		Scan(&p.ID)
	return dberr.Wrap(err, "create_publisher")
}

func (repository *PostgresRepository) UpdatePublisher(context context.Context, p *Publisher) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.Publishers.Table, schema.Publishers.Name, schema.Publishers.Email,
		schema.Publishers.ContactNumber, schema.Publishers.Address, schema.Publishers.ID,
	)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, p.ID, p.Name, p.Email, p.ContactNumber, p.Address)
	if err != nil {
		return dberr.Wrap(err, "update_publisher")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.EntityNotFound(EntityName, p.ID)
	}
	return nil
}

func (repository *PostgresRepository) DeletePublisher(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Publishers.Table, schema.Publishers.ID)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_publisher")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.EntityNotFound(EntityName, id)
	}
	return nil
}

// # Row Locks

func (repository *PostgresRepository) LockPublisher(context context.Context, id int) error {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		schema.Publishers.ID, schema.Publishers.Table, schema.Publishers.ID)

	var locked int
	err := postgres.Conn(context, repository.db).QueryRow(context, query, id).Scan(&locked)
	return dberr.WrapNotFound(err, "lock_publisher", EntityName, id)
}

func (repository *PostgresRepository) LockPublishersByName(context context.Context, name string) error {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		schema.Publishers.ID, schema.Publishers.Table, schema.Publishers.Name)

	rows, err := postgres.Conn(context, repository.db).Query(context, query, name)
	if err != nil {
		return dberr.Wrap(err, "lock_publishers_by_name")
	}

	_, err = pgx.CollectRows(rows, pgx.RowTo[int])
	return dberr.Wrap(err, "lock_publishers_by_name")
}

// # Derived Queries

func (repository *PostgresRepository) FindByName(context context.Context, name string) ([]*Publisher, error) {
	query := selectPublishers() + fmt.Sprintf(` WHERE LOWER(p.%s) = LOWER($1) ORDER BY p.%s`,
		schema.Publishers.Name, schema.Publishers.ID)
	return repository.queryPublishers(context, "find_publishers_by_name", query, name)
}

func (repository *PostgresRepository) SearchByName(context context.Context, keyword string) ([]*Publisher, error) {
	query := selectPublishers() + fmt.Sprintf(` WHERE p.%s ILIKE '%%' || $1 || '%%' ORDER BY p.%s`,
		schema.Publishers.Name, schema.Publishers.ID)
	return repository.queryPublishers(context, "search_publishers_by_name", query, likeEscaper.Replace(keyword))
}

func (repository *PostgresRepository) CountPublishers(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.Publishers.Table)

	var total int64
	if err := postgres.Conn(context, repository.db).QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_publishers")
	}
	return total, nil
}

func (repository *PostgresRepository) FindByEmailDomain(context context.Context, domain string) ([]*Publisher, error) {
	query := selectPublishers() + fmt.Sprintf(` WHERE p.%s LIKE '%%' || $1 ORDER BY p.%s`,
		schema.Publishers.Email, schema.Publishers.ID)
	return repository.queryPublishers(context, "find_publishers_by_email_domain", query, likeEscaper.Replace(domain))
}

func (repository *PostgresRepository) FindWithMagazines(context context.Context) ([]*Publisher, error) {
	query := selectPublishers() + fmt.Sprintf(`
		WHERE EXISTS (SELECT 1 FROM %s m WHERE m.%s = p.%s)
		ORDER BY p.%s
	`,
		schema.Magazines.Table, schema.Magazines.PublisherID, schema.Publishers.ID,
		schema.Publishers.ID,
	)
	return repository.queryPublishers(context, "find_publishers_with_magazines", query)
}

func (repository *PostgresRepository) FindWithMinMagazines(context context.Context, minMagazines int) ([]*Publisher, error) {
	query := selectPublishers() + fmt.Sprintf(`
		WHERE (SELECT COUNT(*) FROM %s m WHERE m.%s = p.%s) > $1
		ORDER BY p.%s
	`,
		schema.Magazines.Table, schema.Magazines.PublisherID, schema.Publishers.ID,
		schema.Publishers.ID,
	)
	return repository.queryPublishers(context, "find_publishers_with_min_magazines", query, minMagazines)
}

func (repository *PostgresRepository) MagazineCounts(context context.Context) ([]MagazineCount, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, COUNT(m.%s)
		FROM %s p
		LEFT JOIN %s m ON m.%s = p.%s
		GROUP BY p.%s, p.%s
		ORDER BY p.%s
	`,
		schema.Publishers.ID, schema.Publishers.Name, schema.Magazines.ID,
		schema.Publishers.Table,
		schema.Magazines.Table, schema.Magazines.PublisherID, schema.Publishers.ID,
		schema.Publishers.ID, schema.Publishers.Name,
		schema.Publishers.ID,
	)

	rows, err := postgres.Conn(context, repository.db).Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "publisher_magazine_counts")
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (MagazineCount, error) {
		var count MagazineCount
		err := row.Scan(&count.PublisherID, &count.Name, &count.Count)
		return count, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_publisher_magazine_count")
	}

	return counts, nil
}

// # Bulk Mutations

func (repository *PostgresRepository) UpdateEmailByName(context context.Context, email, name string) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.Publishers.Table, schema.Publishers.Email, schema.Publishers.Name)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, email, name)
	if err != nil {
		return 0, dberr.Wrap(err, "update_publisher_email_by_name")
	}
	return cmd.RowsAffected(), nil
}

func (repository *PostgresRepository) DeleteByName(context context.Context, name string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Publishers.Table, schema.Publishers.Name)

	cmd, err := postgres.Conn(context, repository.db).Exec(context, query, name)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_publishers_by_name")
	}
	return cmd.RowsAffected(), nil
}

// queryPublishers runs a publisher projection and scans every row.
func (repository *PostgresRepository) queryPublishers(context context.Context, action, query string, args ...any) ([]*Publisher, error) {
	rows, err := postgres.Conn(context, repository.db).Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	publishers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Publisher, error) {
		p := &Publisher{}
		err := row.Scan(&p.ID, &p.Name, &p.Email, &p.ContactNumber, &p.Address)
		return p, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return publishers, nil
}
