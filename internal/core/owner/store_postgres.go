package owner

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mzalesak/periodika/internal/platform/database/schema"
	"github.com/mzalesak/periodika/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListOwners(context context.Context) ([]*Owner, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogOwner.ID,
		schema.CatalogOwner.Name,
		schema.CatalogOwner.Sigla,
		schema.CatalogOwner.CreatedAt,
		schema.CatalogOwner.Table,
		schema.CatalogOwner.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_owners")
	}
	defer rows.Close()

	var owners []*Owner
	for rows.Next() {
		o := &Owner{}
		if err := rows.Scan(&o.ID, &o.Name, &o.Sigla, &o.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_owner")
		}
		owners = append(owners, o)
	}

	return owners, nil
}

func (repository *PostgresRepository) GetOwnerByID(context context.Context, id string) (*Owner, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogOwner.ID,
		schema.CatalogOwner.Name,
		schema.CatalogOwner.Sigla,
		schema.CatalogOwner.CreatedAt,
		schema.CatalogOwner.Table,
		schema.CatalogOwner.ID,
	)

	o := &Owner{}
	err := repository.db.QueryRow(context, query, id).Scan(&o.ID, &o.Name, &o.Sigla, &o.CreatedAt)
	return o, dberr.Wrap(err, "get_owner")
}

func (repository *PostgresRepository) CreateOwner(context context.Context, owner *Owner) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3);
	`,
		schema.CatalogOwner.Table,
		schema.CatalogOwner.ID,
		schema.CatalogOwner.Name,
		schema.CatalogOwner.Sigla,
	)

	_, err := repository.db.Exec(context, query, owner.ID, owner.Name, owner.Sigla)
	return dberr.Wrap(err, "create_owner")
}

func (repository *PostgresRepository) UpdateOwner(context context.Context, owner *Owner) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1;
	`,
		schema.CatalogOwner.Table,
		schema.CatalogOwner.Name,
		schema.CatalogOwner.Sigla,
		schema.CatalogOwner.ID,
	)

	tag, err := repository.db.Exec(context, query, owner.ID, owner.Name, owner.Sigla)
	if err != nil {
		return dberr.Wrap(err, "update_owner")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) DeleteOwner(context context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogOwner.Table,
		schema.CatalogOwner.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_owner")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
