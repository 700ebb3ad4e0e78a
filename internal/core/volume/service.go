// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mzalesak/periodika/internal/core/publication"
	"github.com/mzalesak/periodika/internal/platform/apperr"
	"github.com/mzalesak/periodika/internal/platform/constants"
	"github.com/mzalesak/periodika/internal/platform/validate"
)

// PublicationSource provides the publication reference list the repair
// functions default against.
type PublicationSource interface {
	List(context context.Context) ([]*publication.Publication, error)
}

type Service struct {
	repo         Repository
	publications PublicationSource
	logger       *slog.Logger
}

func NewService(repo Repository, publications PublicationSource, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		publications: publications,
		logger:       logger,
	}
}

// GetDetail loads a volume together with its specimens in display order.
func (service *Service) GetDetail(context context.Context, id string) (*Detail, error) {
	volume, err := service.repo.GetVolume(context, id)
	if err != nil {
		return nil, err
	}

	specimens, err := service.repo.ListSpecimens(context, id, volume.ShowAttachmentsAtTheEnd)
	if err != nil {
		return nil, err
	}

	return &Detail{Volume: volume, Specimens: specimens}, nil
}

/*
Save repairs and persists a volume draft together with its full specimen
list.

The volume draft and every specimen row are repaired first; repair is total
and never rejects input. The repaired batch is then validated as a whole,
and the first failure aborts the save before anything is written. On
success, volume and specimens are stored in one transaction.
*/
func (service *Service) Save(context context.Context, draft Draft, specimenDrafts []Specimen) (*Detail, error) {
	publications, err := service.publications.List(context)
	if err != nil {
		return nil, err
	}

	repaired := RepairVolume(draft, publications)
	if err := validateVolume(&repaired); err != nil {
		return nil, err
	}

	specimens := make([]*Specimen, 0, len(specimenDrafts))
	for index, partial := range specimenDrafts {
		specimen := RepairSpecimen(partial, &repaired)
		if err := validateSpecimen(&specimen, index); err != nil {
			return nil, err
		}
		specimens = append(specimens, &specimen)
	}

	if err := service.repo.SaveVolume(context, &repaired, specimens); err != nil {
		return nil, err
	}

	service.logger.Info("volume_saved",
		slog.String("volume_id", repaired.ID),
		slog.String("bar_code", repaired.BarCode),
		slog.Int("specimen_count", len(specimens)),
	)

	return &Detail{Volume: &repaired, Specimens: specimens}, nil
}

/*
RenumberSpecimens runs the renumbering engine over a stored volume.

Specimens are loaded in display order, numbers are recomputed forward from
the anchor, and unless dryRun is set the touched rows are written back. A
dry run reports what the renumbering would do without changing anything.
*/
func (service *Service) RenumberSpecimens(context context.Context, volumeID, anchorID string, sequence Sequence, dryRun bool) (RenumberResult, error) {
	validator := &validate.Validator{}
	validator.Required(FieldAnchorID, anchorID)
	validator.OneOf(FieldSequence, string(sequence), string(SequenceNumber), string(SequenceAttachment))
	if err := validator.Err(); err != nil {
		return RenumberResult{}, err
	}

	volume, err := service.repo.GetVolume(context, volumeID)
	if err != nil {
		return RenumberResult{}, err
	}

	specimens, err := service.repo.ListSpecimens(context, volumeID, volume.ShowAttachmentsAtTheEnd)
	if err != nil {
		return RenumberResult{}, err
	}

	result := Renumber(specimens, anchorID, sequence)
	if result.Count == 0 {
		return result, nil
	}

	if dryRun {
		return result, nil
	}

	if err := service.repo.UpdateSpecimenNumbers(context, result.Updated); err != nil {
		return RenumberResult{}, err
	}

	service.logger.Info("specimens_renumbered",
		slog.String("volume_id", volumeID),
		slog.String("sequence", string(sequence)),
		slog.Int("count", result.Count),
		slog.Int("first_number", result.FirstNumber),
		slog.Int("last_number", result.LastNumber),
	)

	return result, nil
}

// DuplicateDetail loads a volume and returns an unsaved duplicated draft of
// it: fresh identities, cleared bar codes, specimen condition records reset.
// Nothing is written; the caller saves the draft explicitly.
func (service *Service) DuplicateDetail(context context.Context, id string) (*Detail, error) {
	detail, err := service.GetDetail(context, id)
	if err != nil {
		return nil, err
	}

	clone := DuplicateVolume(detail.Volume)

	specimens := make([]*Specimen, 0, len(detail.Specimens))
	for _, specimen := range detail.Specimens {
		specimens = append(specimens, DuplicateSpecimen(specimen, clone))
	}

	return &Detail{Volume: clone, Specimens: specimens}, nil
}

// GenerateDrafts expands a volume draft's periodicity template into per-day
// specimen drafts without writing anything.
func (service *Service) GenerateDrafts(context context.Context, draft Draft) (*Detail, error) {
	publications, err := service.publications.List(context)
	if err != nil {
		return nil, err
	}

	repaired := RepairVolume(draft, publications)
	if err := validateVolume(&repaired); err != nil {
		return nil, err
	}

	specimens := GenerateSpecimens(&repaired)
	if specimens == nil {
		specimens = []*Specimen{}
	}

	return &Detail{Volume: &repaired, Specimens: specimens}, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.DeleteVolume(context, id); err != nil {
		return err
	}

	service.logger.Info("volume_deleted", slog.String("volume_id", id))
	return nil
}

// # Validation

// validateVolume checks a repaired volume against the storage schema.
// Repair has already normalized the value, so failures here mean the
// cataloger genuinely left something required out.
func validateVolume(volume *Volume) error {
	validator := &validate.Validator{}

	validator.Required(FieldBarCode, volume.BarCode)
	validator.Required(FieldMetaTitleID, volume.MetaTitleID)
	validator.Required(FieldMutationID, volume.MutationID)
	validator.Required(FieldOwnerID, volume.OwnerID)
	validator.ISODate(FieldDateFrom, volume.DateFrom)
	validator.ISODate(FieldDateTo, volume.DateTo)

	validator.Custom(FieldPeriodicity,
		len(volume.Periodicity) != constants.PeriodicityLength,
		fmt.Sprintf("must have exactly %d entries", constants.PeriodicityLength),
	)
	for _, entry := range volume.Periodicity {
		if !knownWeekday(entry.Weekday) {
			validator.Custom(FieldPeriodicity, true,
				fmt.Sprintf("unknown weekday %q", entry.Weekday))
			break
		}
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if rangeInverted(volume.DateFrom, volume.DateTo) {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldDateTo,
			Message: "must not precede date_from",
		})
	}

	return nil
}

// validateSpecimen checks one repaired specimen; index identifies the row
// in the submitted list for error reporting.
func validateSpecimen(specimen *Specimen, index int) error {
	field := func(name string) string {
		return fmt.Sprintf("specimens[%d].%s", index, name)
	}

	validator := &validate.Validator{}
	validator.Required(field("publication_id"), specimen.PublicationID)
	validator.Required(field("mutation_id"), specimen.MutationID)
	validator.ISODate(field("publication_date"), specimen.PublicationDate)
	validator.NonNegative(field("pages_count"), specimen.PagesCount)

	for _, damage := range specimen.DamageTypes {
		if !damage.Valid() {
			validator.Custom(field("damage_types"), true,
				fmt.Sprintf("unknown damage type %q", damage))
			break
		}
	}

	validator.Custom(field("damaged_pages"),
		len(specimen.DamagedPages) > 0 && !specimen.HasDamage(DamagePP),
		"only allowed with damage type PP")
	validator.Custom(field("missing_pages"),
		len(specimen.MissingPages) > 0 && !specimen.HasDamage(DamageChS),
		"only allowed with damage type ChS")

	return validator.Err()
}

func knownWeekday(day Weekday) bool {
	for _, known := range Weekdays() {
		if day == known {
			return true
		}
	}
	return false
}

func rangeInverted(from, to string) bool {
	start, err := time.Parse(constants.ISODateFormat, from)
	if err != nil {
		return false
	}
	end, err := time.Parse(constants.ISODateFormat, to)
	if err != nil {
		return false
	}
	return end.Before(start)
}
