// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package metatitle

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

/*
ListOverviews fetches one page of meta titles together with volume count,
specimen count and the covered publication-date range, plus the total
number of matching titles.

The aggregates come from correlated LEFT JOIN subqueries so titles
without any catalogued material still appear with zero counts.
*/
func (repository *PostgresRepository) ListOverviews(context context.Context, publicOnly bool, limit, offset int) ([]*Overview, int, error) {
	where := ""
	if publicOnly {
		where = fmt.Sprintf("WHERE t.%s = TRUE", schema.CatalogMetaTitle.IsPublic)
	}

	query := fmt.Sprintf(`
		SELECT
			t.%s, t.%s, t.%s, t.%s, t.%s, t.%s,
			COALESCE(v.volume_count, 0),
			COALESCE(s.specimen_count, 0),
			s.covered_from,
			s.covered_to,
			COUNT(*) OVER() AS total_rows
		FROM %s t
		LEFT JOIN (
			SELECT %s, COUNT(*) AS volume_count
			FROM %s
			GROUP BY %s
		) v ON v.%s = t.%s
		LEFT JOIN (
			SELECT %s,
				COUNT(*) AS specimen_count,
				MIN(%s) AS covered_from,
				MAX(%s) AS covered_to
			FROM %s
			GROUP BY %s
		) s ON s.%s = t.%s
		%s
		ORDER BY t.%s ASC
		LIMIT $1 OFFSET $2;
	`,
		schema.CatalogMetaTitle.ID,
		schema.CatalogMetaTitle.Name,
		schema.CatalogMetaTitle.Note,
		schema.CatalogMetaTitle.IsPublic,
		schema.CatalogMetaTitle.CreatedAt,
		schema.CatalogMetaTitle.UpdatedAt,
		schema.CatalogMetaTitle.Table,
		schema.CatalogVolume.MetaTitleID,
		schema.CatalogVolume.Table,
		schema.CatalogVolume.MetaTitleID,
		schema.CatalogVolume.MetaTitleID,
		schema.CatalogMetaTitle.ID,
		schema.CatalogSpecimen.MetaTitleID,
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.MetaTitleID,
		schema.CatalogSpecimen.MetaTitleID,
		schema.CatalogMetaTitle.ID,
		where,
		schema.CatalogMetaTitle.Name,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_metatitle_overviews")
	}
	defer rows.Close()

	var overviews []*Overview
	var total int
	for rows.Next() {
		o := &Overview{}
		err := rows.Scan(
			&o.ID, &o.Name, &o.Note, &o.IsPublic, &o.CreatedAt, &o.UpdatedAt,
			&o.VolumeCount, &o.SpecimenCount, &o.CoveredFrom, &o.CoveredTo,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_metatitle_overview")
		}
		overviews = append(overviews, o)
	}

	return overviews, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*MetaTitle, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogMetaTitle.ID,
		schema.CatalogMetaTitle.Name,
		schema.CatalogMetaTitle.Note,
		schema.CatalogMetaTitle.IsPublic,
		schema.CatalogMetaTitle.CreatedAt,
		schema.CatalogMetaTitle.UpdatedAt,
		schema.CatalogMetaTitle.Table,
		schema.CatalogMetaTitle.ID,
	)

	t := &MetaTitle{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&t.ID, &t.Name, &t.Note, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, dberr.Wrap(err, "get_metatitle")
}

func (repository *PostgresRepository) Create(context context.Context, title *MetaTitle) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4);
	`,
		schema.CatalogMetaTitle.Table,
		schema.CatalogMetaTitle.ID,
		schema.CatalogMetaTitle.Name,
		schema.CatalogMetaTitle.Note,
		schema.CatalogMetaTitle.IsPublic,
	)

	_, err := repository.db.Exec(context, query,
		title.ID, title.Name, title.Note, title.IsPublic,
	)
	return dberr.Wrap(err, "create_metatitle")
}

func (repository *PostgresRepository) Update(context context.Context, title *MetaTitle) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1;
	`,
		schema.CatalogMetaTitle.Table,
		schema.CatalogMetaTitle.Name,
		schema.CatalogMetaTitle.Note,
		schema.CatalogMetaTitle.IsPublic,
		schema.CatalogMetaTitle.UpdatedAt,
		schema.CatalogMetaTitle.ID,
	)

	tag, err := repository.db.Exec(context, query,
		title.ID, title.Name, title.Note, title.IsPublic,
	)
	if err != nil {
		return dberr.Wrap(err, "update_metatitle")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogMetaTitle.Table,
		schema.CatalogMetaTitle.ID,
	)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_metatitle")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
