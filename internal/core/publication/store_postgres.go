// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package publication

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

func (repository *PostgresRepository) List(context context.Context) ([]*Publication, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogPublication.ID, schema.CatalogPublication.Name,
		schema.CatalogPublication.IsDefault, schema.CatalogPublication.IsAttachment,
		schema.CatalogPublication.CreatedAt,
		schema.CatalogPublication.Table, schema.CatalogPublication.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publications")
	}
	defer rows.Close()

	publications := make([]*Publication, 0)
	for rows.Next() {
		p := &Publication{}
		if err := rows.Scan(&p.ID, &p.Name, &p.IsDefault, &p.IsAttachment, &p.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_publication")
		}
		publications = append(publications, p)
	}

	return publications, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Publication, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogPublication.ID, schema.CatalogPublication.Name,
		schema.CatalogPublication.IsDefault, schema.CatalogPublication.IsAttachment,
		schema.CatalogPublication.CreatedAt,
		schema.CatalogPublication.Table, schema.CatalogPublication.ID)

	p := &Publication{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.IsDefault, &p.IsAttachment, &p.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_publication_by_id")
	}

	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, publication *Publication) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.CatalogPublication.Table,
		schema.CatalogPublication.ID, schema.CatalogPublication.Name,
		schema.CatalogPublication.IsDefault, schema.CatalogPublication.IsAttachment)

	_, err := repository.db.Exec(context, query,
		publication.ID, publication.Name, publication.IsDefault, publication.IsAttachment)
	if err != nil {
		return dberr.Wrap(err, "create_publication")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, publication *Publication) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		schema.CatalogPublication.Table,
		schema.CatalogPublication.Name, schema.CatalogPublication.IsDefault,
		schema.CatalogPublication.IsAttachment, schema.CatalogPublication.ID)

	tag, err := repository.db.Exec(context, query,
		publication.ID, publication.Name, publication.IsDefault, publication.IsAttachment)
	if err != nil {
		return dberr.Wrap(err, "update_publication")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogPublication.Table, schema.CatalogPublication.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_publication")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
