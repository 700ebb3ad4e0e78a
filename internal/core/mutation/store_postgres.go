package mutation

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

func (repository *PostgresRepository) ListMutations(context context.Context) ([]*Mutation, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogMutation.ID,
		schema.CatalogMutation.Name,
		schema.CatalogMutation.CreatedAt,
		schema.CatalogMutation.Table,
		schema.CatalogMutation.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_mutations")
	}
	defer rows.Close()

	var mutations []*Mutation
	for rows.Next() {
		m := &Mutation{}
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_mutation")
		}
		mutations = append(mutations, m)
	}

	return mutations, nil
}

func (repository *PostgresRepository) GetMutationByID(context context.Context, id string) (*Mutation, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogMutation.ID,
		schema.CatalogMutation.Name,
		schema.CatalogMutation.CreatedAt,
		schema.CatalogMutation.Table,
		schema.CatalogMutation.ID,
	)

	m := &Mutation{}
	err := repository.db.QueryRow(context, query, id).Scan(&m.ID, &m.Name, &m.CreatedAt)
	return m, dberr.Wrap(err, "get_mutation")
}

func (repository *PostgresRepository) CreateMutation(context context.Context, mutation *Mutation) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2);
	`,
		schema.CatalogMutation.Table,
		schema.CatalogMutation.ID,
		schema.CatalogMutation.Name,
	)

	_, err := repository.db.Exec(context, query, mutation.ID, mutation.Name)
	return dberr.Wrap(err, "create_mutation")
}

func (repository *PostgresRepository) UpdateMutation(context context.Context, mutation *Mutation) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2
		WHERE %s = $1;
	`,
		schema.CatalogMutation.Table,
		schema.CatalogMutation.Name,
		schema.CatalogMutation.ID,
	)

	tag, err := repository.db.Exec(context, query, mutation.ID, mutation.Name)
	if err != nil {
		return dberr.Wrap(err, "update_mutation")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) DeleteMutation(context context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogMutation.Table,
		schema.CatalogMutation.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_mutation")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
