// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) GetVolume(context context.Context, id string) (*Volume, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogVolume.ID,
		schema.CatalogVolume.BarCode,
		schema.CatalogVolume.Signature,
		schema.CatalogVolume.MetaTitleID,
		schema.CatalogVolume.MutationID,
		schema.CatalogVolume.OwnerID,
		schema.CatalogVolume.Year,
		schema.CatalogVolume.DateFrom,
		schema.CatalogVolume.DateTo,
		schema.CatalogVolume.MutationMark,
		schema.CatalogVolume.FirstNumber,
		schema.CatalogVolume.LastNumber,
		schema.CatalogVolume.Periodicity,
		schema.CatalogVolume.ShowAttachmentsAtTheEnd,
		schema.CatalogVolume.Note,
		schema.CatalogVolume.Table,
		schema.CatalogVolume.ID,
	)

	v := &Volume{}
	var periodicityJSON []byte

	err := repository.db.QueryRow(context, query, id).Scan(
		&v.ID, &v.BarCode, &v.Signature, &v.MetaTitleID, &v.MutationID,
		&v.OwnerID, &v.Year, &v.DateFrom, &v.DateTo, &v.MutationMark,
		&v.FirstNumber, &v.LastNumber, &periodicityJSON,
		&v.ShowAttachmentsAtTheEnd, &v.Note,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_volume")
	}

	if err := json.Unmarshal(periodicityJSON, &v.Periodicity); err != nil {
		return nil, dberr.Wrap(err, "decode_volume_periodicity")
	}

	return v, nil
}

/*
ListSpecimens loads a volume's specimens in display order.

Display order is chronological with ties broken by insertion order. When
attachmentsAtEnd is set, the whole attachment sequence sorts after the main
sequence instead of interleaving by date.
*/
func (repository *PostgresRepository) ListSpecimens(context context.Context, volumeID string, attachmentsAtEnd bool) ([]*Specimen, error) {
	orderBy := fmt.Sprintf("%s ASC, %s ASC",
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.CreatedAt,
	)
	if attachmentsAtEnd {
		orderBy = fmt.Sprintf("%s ASC, %s", schema.CatalogSpecimen.IsAttachment, orderBy)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s;
	`,
		schema.CatalogSpecimen.ID,
		schema.CatalogSpecimen.VolumeID,
		schema.CatalogSpecimen.MetaTitleID,
		schema.CatalogSpecimen.OwnerID,
		schema.CatalogSpecimen.PublicationID,
		schema.CatalogSpecimen.MutationID,
		schema.CatalogSpecimen.BarCode,
		schema.CatalogSpecimen.NumExists,
		schema.CatalogSpecimen.NumMissing,
		schema.CatalogSpecimen.Number,
		schema.CatalogSpecimen.AttachmentNumber,
		schema.CatalogSpecimen.IsAttachment,
		schema.CatalogSpecimen.Name,
		schema.CatalogSpecimen.SubName,
		schema.CatalogSpecimen.MutationMark,
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.PublicationDateString,
		schema.CatalogSpecimen.PagesCount,
		schema.CatalogSpecimen.Note,
		schema.CatalogSpecimen.DamageTypes,
		schema.CatalogSpecimen.DamagedPages,
		schema.CatalogSpecimen.MissingPages,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.VolumeID,
		orderBy,
	)

	rows, err := repository.db.Query(context, query, volumeID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_specimens")
	}
	defer rows.Close()

	var specimens []*Specimen
	for rows.Next() {
		s := &Specimen{}
		var damageTypes []string

		err := rows.Scan(
			&s.ID, &s.VolumeID, &s.MetaTitleID, &s.OwnerID, &s.PublicationID,
			&s.MutationID, &s.BarCode, &s.NumExists, &s.NumMissing,
			&s.Number, &s.AttachmentNumber, &s.IsAttachment,
			&s.Name, &s.SubName, &s.MutationMark,
			&s.PublicationDate, &s.PublicationDateString,
			&s.PagesCount, &s.Note,
			&damageTypes, &s.DamagedPages, &s.MissingPages,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_specimen")
		}

		s.DamageTypes = damageTypesFromStrings(damageTypes)
		if s.DamagedPages == nil {
			s.DamagedPages = []int{}
		}
		if s.MissingPages == nil {
			s.MissingPages = []int{}
		}

		specimens = append(specimens, s)
	}

	return specimens, nil
}

/*
SaveVolume persists the volume aggregate in one transaction.

The volume row is upserted; the specimen set is replaced wholesale
(delete-and-reinsert) so the stored list always mirrors the saved draft,
including removed rows.
*/
func (repository *PostgresRepository) SaveVolume(context context.Context, volume *Volume, specimens []*Specimen) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_save_volume")
	}
	defer transaction.Rollback(context)

	if err := upsertVolume(context, transaction, volume); err != nil {
		return err
	}

	deleteQuery := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.VolumeID,
	)
	if _, err := transaction.Exec(context, deleteQuery, volume.ID); err != nil {
		return dberr.Wrap(err, "clear_volume_specimens")
	}

	for _, specimen := range specimens {
		if err := insertSpecimen(context, transaction, specimen); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_save_volume")
	}

	return nil
}

func upsertVolume(context context.Context, transaction pgx.Tx, volume *Volume) error {
	periodicityJSON, err := json.Marshal(volume.Periodicity)
	if err != nil {
		return dberr.Wrap(err, "encode_volume_periodicity")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = NOW();
	`,
		schema.CatalogVolume.Table,
		schema.CatalogVolume.ID,
		schema.CatalogVolume.BarCode,
		schema.CatalogVolume.Signature,
		schema.CatalogVolume.MetaTitleID,
		schema.CatalogVolume.MutationID,
		schema.CatalogVolume.OwnerID,
		schema.CatalogVolume.Year,
		schema.CatalogVolume.DateFrom,
		schema.CatalogVolume.DateTo,
		schema.CatalogVolume.MutationMark,
		schema.CatalogVolume.FirstNumber,
		schema.CatalogVolume.LastNumber,
		schema.CatalogVolume.Periodicity,
		schema.CatalogVolume.ShowAttachmentsAtTheEnd,
		schema.CatalogVolume.Note,
		schema.CatalogVolume.ID,
		schema.CatalogVolume.BarCode, schema.CatalogVolume.BarCode,
		schema.CatalogVolume.Signature, schema.CatalogVolume.Signature,
		schema.CatalogVolume.MetaTitleID, schema.CatalogVolume.MetaTitleID,
		schema.CatalogVolume.MutationID, schema.CatalogVolume.MutationID,
		schema.CatalogVolume.OwnerID, schema.CatalogVolume.OwnerID,
		schema.CatalogVolume.Year, schema.CatalogVolume.Year,
		schema.CatalogVolume.DateFrom, schema.CatalogVolume.DateFrom,
		schema.CatalogVolume.DateTo, schema.CatalogVolume.DateTo,
		schema.CatalogVolume.MutationMark, schema.CatalogVolume.MutationMark,
		schema.CatalogVolume.FirstNumber, schema.CatalogVolume.FirstNumber,
		schema.CatalogVolume.LastNumber, schema.CatalogVolume.LastNumber,
		schema.CatalogVolume.Periodicity, schema.CatalogVolume.Periodicity,
		schema.CatalogVolume.ShowAttachmentsAtTheEnd, schema.CatalogVolume.ShowAttachmentsAtTheEnd,
		schema.CatalogVolume.Note, schema.CatalogVolume.Note,
		schema.CatalogVolume.UpdatedAt,
	)

	_, err = transaction.Exec(context, query,
		volume.ID, volume.BarCode, volume.Signature, volume.MetaTitleID,
		volume.MutationID, volume.OwnerID, volume.Year, volume.DateFrom,
		volume.DateTo, volume.MutationMark, volume.FirstNumber,
		volume.LastNumber, periodicityJSON, volume.ShowAttachmentsAtTheEnd,
		volume.Note,
	)
	return dberr.Wrap(err, "upsert_volume")
}

func insertSpecimen(context context.Context, transaction pgx.Tx, specimen *Specimen) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		);
	`,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.ID,
		schema.CatalogSpecimen.VolumeID,
		schema.CatalogSpecimen.MetaTitleID,
		schema.CatalogSpecimen.OwnerID,
		schema.CatalogSpecimen.PublicationID,
		schema.CatalogSpecimen.MutationID,
		schema.CatalogSpecimen.BarCode,
		schema.CatalogSpecimen.NumExists,
		schema.CatalogSpecimen.NumMissing,
		schema.CatalogSpecimen.Number,
		schema.CatalogSpecimen.AttachmentNumber,
		schema.CatalogSpecimen.IsAttachment,
		schema.CatalogSpecimen.Name,
		schema.CatalogSpecimen.SubName,
		schema.CatalogSpecimen.MutationMark,
		schema.CatalogSpecimen.PublicationDate,
		schema.CatalogSpecimen.PublicationDateString,
		schema.CatalogSpecimen.PagesCount,
		schema.CatalogSpecimen.Note,
		schema.CatalogSpecimen.DamageTypes,
		schema.CatalogSpecimen.DamagedPages,
		schema.CatalogSpecimen.MissingPages,
	)

	_, err := transaction.Exec(context, query,
		specimen.ID, specimen.VolumeID, specimen.MetaTitleID,
		specimen.OwnerID, specimen.PublicationID, specimen.MutationID,
		specimen.BarCode, specimen.NumExists, specimen.NumMissing,
		specimen.Number, specimen.AttachmentNumber, specimen.IsAttachment,
		specimen.Name, specimen.SubName, specimen.MutationMark,
		specimen.PublicationDate, specimen.PublicationDateString,
		specimen.PagesCount, specimen.Note,
		damageTypesToStrings(specimen.DamageTypes),
		specimen.DamagedPages, specimen.MissingPages,
	)
	return dberr.Wrap(err, "insert_specimen")
}

// UpdateSpecimenNumbers rewrites only the sequence-number columns of the
// given specimens, all inside one transaction.
func (repository *PostgresRepository) UpdateSpecimenNumbers(context context.Context, specimens []*Specimen) error {
	if len(specimens) == 0 {
		return nil
	}

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_numbers")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1;
	`,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.Number,
		schema.CatalogSpecimen.AttachmentNumber,
		schema.CatalogSpecimen.UpdatedAt,
		schema.CatalogSpecimen.ID,
	)

	for _, specimen := range specimens {
		_, err := transaction.Exec(context, query,
			specimen.ID, specimen.Number, specimen.AttachmentNumber,
		)
		if err != nil {
			return dberr.Wrap(err, "update_specimen_numbers")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_numbers")
	}

	return nil
}

// DeleteVolume removes the volume row and its specimens in one transaction.
func (repository *PostgresRepository) DeleteVolume(context context.Context, id string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_volume")
	}
	defer transaction.Rollback(context)

	specimenQuery := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogSpecimen.Table,
		schema.CatalogSpecimen.VolumeID,
	)
	if _, err := transaction.Exec(context, specimenQuery, id); err != nil {
		return dberr.Wrap(err, "delete_volume_specimens")
	}

	volumeQuery := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1;
	`,
		schema.CatalogVolume.Table,
		schema.CatalogVolume.ID,
	)

	tag, err := transaction.Exec(context, volumeQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_volume")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_volume")
	}

	return nil
}

func damageTypesToStrings(types []DamageType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func damageTypesFromStrings(values []string) []DamageType {
	out := make([]DamageType, 0, len(values))
	for _, v := range values {
		out = append(out, DamageType(v))
	}
	return out
}
