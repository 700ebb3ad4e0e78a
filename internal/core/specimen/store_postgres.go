// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package specimen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/internal/platform/database/schema"
	"github.com/mzalesak/periodika/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// buildFilter renders the dynamic WHERE clause for a specimen filter.
// Publication dates are stored as ISO strings, so range and year checks are
// plain lexicographic comparisons.
func buildFilter(filter Filter) (string, []any) {
	var clause strings.Builder
	var args []any
	argID := 1

	clause.WriteString("WHERE 1=1")

	appendEqual := func(column, value string) {
		if value == "" {
			return
		}
		clause.WriteString(fmt.Sprintf(" AND %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}
	appendAny := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		clause.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", column, argID))
		args = append(args, values)
		argID++
	}

	appendEqual(schema.CatalogSpecimen.MetaTitleID, filter.MetaTitleID)
	appendEqual(schema.CatalogSpecimen.VolumeID, filter.VolumeID)

	if filter.Year != nil {
		clause.WriteString(fmt.Sprintf(" AND substring(%s from 1 for 4) = $%d",
			schema.CatalogSpecimen.PublicationDate, argID))
		args = append(args, strconv.Itoa(*filter.Year))
		argID++
	}

	if filter.DateFrom != "" {
		clause.WriteString(fmt.Sprintf(" AND %s >= $%d", schema.CatalogSpecimen.PublicationDate, argID))
		args = append(args, filter.DateFrom)
		argID++
	}
	if filter.DateTo != "" {
		clause.WriteString(fmt.Sprintf(" AND %s <= $%d", schema.CatalogSpecimen.PublicationDate, argID))
		args = append(args, filter.DateTo)
		argID++
	}

	appendAny(schema.CatalogSpecimen.Name, filter.Names)
	appendAny(schema.CatalogSpecimen.MutationID, filter.MutationIDs)
	appendAny(schema.CatalogSpecimen.PublicationID, filter.PublicationIDs)
	appendAny(schema.CatalogSpecimen.MutationMark, filter.MutationMarks)
	appendAny(schema.CatalogSpecimen.OwnerID, filter.OwnerIDs)

	if len(filter.DamageTypes) > 0 {
		clause.WriteString(fmt.Sprintf(" AND %s && $%d::text[]",
			schema.CatalogSpecimen.DamageTypes, argID))
		args = append(args, filter.DamageTypes)
		argID++
	}

	return clause.String(), args
}

func specimenColumns() string {
	t := schema.CatalogSpecimen
	return strings.Join([]string{
		t.ID, t.VolumeID, t.MetaTitleID, t.OwnerID, t.PublicationID, t.MutationID,
		t.BarCode, t.NumExists, t.NumMissing, t.Number, t.AttachmentNumber,
		t.IsAttachment, t.Name, t.SubName, t.MutationMark,
		t.PublicationDate, t.PublicationDateString, t.PagesCount, t.Note,
		t.DamageTypes, t.DamagedPages, t.MissingPages,
	}, ", ")
}

func scanSpecimen(row interface{ Scan(...any) error }) (*volume.Specimen, error) {
	s := &volume.Specimen{}
	var damageTypes []string

	err := row.Scan(
		&s.ID, &s.VolumeID, &s.MetaTitleID, &s.OwnerID, &s.PublicationID,
		&s.MutationID, &s.BarCode, &s.NumExists, &s.NumMissing,
		&s.Number, &s.AttachmentNumber, &s.IsAttachment,
		&s.Name, &s.SubName, &s.MutationMark,
		&s.PublicationDate, &s.PublicationDateString, &s.PagesCount, &s.Note,
		&damageTypes, &s.DamagedPages, &s.MissingPages,
	)
	if err != nil {
		return nil, err
	}

	s.DamageTypes = make([]volume.DamageType, 0, len(damageTypes))
	for _, d := range damageTypes {
		s.DamageTypes = append(s.DamageTypes, volume.DamageType(d))
	}
	if s.DamagedPages == nil {
		s.DamagedPages = []int{}
	}
	if s.MissingPages == nil {
		s.MissingPages = []int{}
	}

	return s, nil
}

// List returns one filtered page in chronological order plus the total
// match count, computed with a window function to keep it one round trip.
func (repository *PostgresRepository) List(context context.Context, filter Filter, offset, rows int) ([]*volume.Specimen, int, error) {
	clause, args := buildFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		%s
		ORDER BY %s ASC, %s ASC
		LIMIT $%d OFFSET $%d;
	`,
		specimenColumns(),
		schema.CatalogSpecimen.Table,
		clause,
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.CreatedAt,
		len(args)+1,
		len(args)+2,
	)
	args = append(args, rows, offset)

	result, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_specimen_overview")
	}
	defer result.Close()

	var specimens []*volume.Specimen
	total := 0
	for result.Next() {
		s := &volume.Specimen{}
		var damageTypes []string

		err := result.Scan(
			&s.ID, &s.VolumeID, &s.MetaTitleID, &s.OwnerID, &s.PublicationID,
			&s.MutationID, &s.BarCode, &s.NumExists, &s.NumMissing,
			&s.Number, &s.AttachmentNumber, &s.IsAttachment,
			&s.Name, &s.SubName, &s.MutationMark,
			&s.PublicationDate, &s.PublicationDateString, &s.PagesCount, &s.Note,
			&damageTypes, &s.DamagedPages, &s.MissingPages,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_specimen_overview")
		}

		s.DamageTypes = make([]volume.DamageType, 0, len(damageTypes))
		for _, d := range damageTypes {
			s.DamageTypes = append(s.DamageTypes, volume.DamageType(d))
		}
		if s.DamagedPages == nil {
			s.DamagedPages = []int{}
		}
		if s.MissingPages == nil {
			s.MissingPages = []int{}
		}

		specimens = append(specimens, s)
	}

	return specimens, total, nil
}

// Facets computes value/count pairs for every facet panel under the active
// filter. Damage types live in a text[] column and are unnested first.
func (repository *PostgresRepository) Facets(context context.Context, filter Filter) (*Facets, error) {
	facets := &Facets{}

	columns := []struct {
		column string
		target *[]FacetValue
	}{
		{schema.CatalogSpecimen.Name, &facets.Names},
		{schema.CatalogSpecimen.MutationID, &facets.Mutations},
		{schema.CatalogSpecimen.PublicationID, &facets.Publications},
		{schema.CatalogSpecimen.MutationMark, &facets.MutationMarks},
		{schema.CatalogSpecimen.OwnerID, &facets.Owners},
	}

	for _, facet := range columns {
		values, err := repository.countColumn(context, facet.column, filter)
		if err != nil {
			return nil, err
		}
		*facet.target = values
	}

	damage, err := repository.countDamageTypes(context, filter)
	if err != nil {
		return nil, err
	}
	facets.DamageTypes = damage

	return facets, nil
}

func (repository *PostgresRepository) countColumn(context context.Context, column string, filter Filter) ([]FacetValue, error) {
	clause, args := buildFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM %s
		%s AND %s <> ''
		GROUP BY %s
		ORDER BY %s ASC;
	`,
		column,
		schema.CatalogSpecimen.Table,
		clause,
		column,
		column,
		column,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "count_facet_"+column)
	}
	defer rows.Close()

	values := []FacetValue{}
	for rows.Next() {
		var value FacetValue
		if err := rows.Scan(&value.Value, &value.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_facet_"+column)
		}
		values = append(values, value)
	}

	return values, nil
}

func (repository *PostgresRepository) countDamageTypes(context context.Context, filter Filter) ([]FacetValue, error) {
	clause, args := buildFilter(filter)

	query := fmt.Sprintf(`
		SELECT damage, COUNT(*)
		FROM %s, unnest(%s) AS damage
		%s
		GROUP BY damage
		ORDER BY damage ASC;
	`,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.DamageTypes,
		clause,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "count_facet_damage_types")
	}
	defer rows.Close()

	values := []FacetValue{}
	for rows.Next() {
		var value FacetValue
		if err := rows.Scan(&value.Value, &value.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_facet_damage_types")
		}
		values = append(values, value)
	}

	return values, nil
}

// ListYear loads one title-year of specimens for the calendar view.
func (repository *PostgresRepository) ListYear(context context.Context, metaTitleID string, year int, filter Filter) ([]*volume.Specimen, error) {
	filter.MetaTitleID = metaTitleID
	filter.Year = &year

	clause, args := buildFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s ASC, %s ASC;
	`,
		specimenColumns(),
		schema.CatalogSpecimen.Table,
		clause,
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_specimen_year")
	}
	defer rows.Close()

	var specimens []*volume.Specimen
	for rows.Next() {
		s, err := scanSpecimen(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_specimen_year")
		}
		specimens = append(specimens, s)
	}

	return specimens, nil
}
