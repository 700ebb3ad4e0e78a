// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import (
	"strings"

	"github.com/mzalesak/periodika/internal/core/publication"
	"github.com/mzalesak/periodika/internal/platform/constants"
	"github.com/mzalesak/periodika/pkg/convert"
	"github.com/mzalesak/periodika/pkg/uuidv7"
)

// # Repair

// Repair functions are total: they never fail on malformed or partial input,
// they default-fill instead. Validation of the repaired result is a separate,
// later step; only that step can reject a batch.

/*
RepairSpecimen fills a partial specimen edit buffer into a fully-formed
specimen using the owning volume's defaults.

Rules:
  - Free-text fields are trimmed; missing values become the empty string.
  - VolumeID, MetaTitleID, OwnerID, and BarCode are always overwritten from
    the owning volume, never trusted from the input. This keeps references
    consistent even when a draft row was copied from another volume.
  - The ID is generated only when absent; existing identities are preserved.
  - Nil damage/page lists become empty lists; page lists whose corresponding
    damage type is not set are dropped.
  - NumExists and NumMissing are mutually exclusive; when both arrive set,
    physical presence wins.

RepairSpecimen is idempotent: repairing a repaired specimen is a no-op.
*/
func RepairSpecimen(partial Specimen, owner *Volume) Specimen {
	out := partial

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		out.ID = uuidv7.New()
	}

	// Referential fields always come from the owning volume.
	out.VolumeID = owner.ID
	out.MetaTitleID = owner.MetaTitleID
	out.OwnerID = owner.OwnerID
	out.BarCode = owner.BarCode

	out.PublicationID = strings.TrimSpace(out.PublicationID)
	out.MutationID = strings.TrimSpace(out.MutationID)
	out.Name = strings.TrimSpace(out.Name)
	out.SubName = strings.TrimSpace(out.SubName)
	out.MutationMark = strings.TrimSpace(out.MutationMark)
	out.PublicationDate = strings.TrimSpace(out.PublicationDate)
	out.PublicationDateString = strings.TrimSpace(out.PublicationDateString)
	out.Note = strings.TrimSpace(out.Note)

	out.Number = repairNumber(out.Number)
	out.AttachmentNumber = repairNumber(out.AttachmentNumber)

	if out.NumExists && out.NumMissing {
		out.NumMissing = false
	}

	if out.DamageTypes == nil {
		out.DamageTypes = []DamageType{}
	}

	// Page lists are only meaningful alongside their damage type.
	if out.DamagedPages == nil || !out.HasDamage(DamagePP) {
		out.DamagedPages = []int{}
	}
	if out.MissingPages == nil || !out.HasDamage(DamageChS) {
		out.MissingPages = []int{}
	}

	return out
}

// repairNumber trims a string-encoded sequence number, collapsing blank
// values to nil ("no number in this sequence").
func repairNumber(raw *string) *string {
	if raw == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

/*
RepairVolume fills a volume edit buffer into a fully-formed volume.

Rules:
  - The ID is generated only when absent.
  - Free-text fields are trimmed.
  - Year, FirstNumber, and LastNumber accept string-or-number input and are
    coerced to integers; absent or unparseable values become the
    constants.UnsetNumber sentinel (-1), which is distinct from the valid
    value 0.
  - The periodicity template is normalized to exactly 7 entries, one per
    weekday in catalog order. Entries missing a publication get the
    publication flagged as default in the supplied reference list; page
    counts are coerced with a 0 fallback.

RepairVolume never fails; schema validation of the result happens separately.
*/
func RepairVolume(draft Draft, publications []*publication.Publication) Volume {
	out := Volume{
		ID:                      strings.TrimSpace(draft.ID),
		BarCode:                 strings.TrimSpace(draft.BarCode),
		Signature:               strings.TrimSpace(draft.Signature),
		MetaTitleID:             strings.TrimSpace(draft.MetaTitleID),
		MutationID:              strings.TrimSpace(draft.MutationID),
		OwnerID:                 strings.TrimSpace(draft.OwnerID),
		Year:                    convert.NumberToIntD(draft.Year, constants.UnsetNumber),
		DateFrom:                strings.TrimSpace(draft.DateFrom),
		DateTo:                  strings.TrimSpace(draft.DateTo),
		MutationMark:            strings.TrimSpace(draft.MutationMark),
		FirstNumber:             convert.NumberToIntD(draft.FirstNumber, constants.UnsetNumber),
		LastNumber:              convert.NumberToIntD(draft.LastNumber, constants.UnsetNumber),
		ShowAttachmentsAtTheEnd: draft.ShowAttachmentsAtTheEnd,
		Note:                    strings.TrimSpace(draft.Note),
	}

	if out.ID == "" {
		out.ID = uuidv7.New()
	}

	out.Periodicity = repairPeriodicity(draft.Periodicity, defaultPublicationID(publications))

	return out
}

// repairPeriodicity normalizes a drafted template to one repaired entry per
// weekday, Monday first. Draft entries are matched by weekday; weekdays the
// draft does not cover get an inactive default entry.
func repairPeriodicity(drafts []PeriodicityEntryDraft, defaultPublication string) []PeriodicityEntry {
	entries := make([]PeriodicityEntry, 0, constants.PeriodicityLength)

	for _, day := range Weekdays() {
		entry := PeriodicityEntry{Weekday: day}

		for _, draft := range drafts {
			if draft.Weekday != day {
				continue
			}

			entry.Active = draft.Active
			entry.PublicationID = strings.TrimSpace(draft.PublicationID)
			entry.PagesCount = convert.NumberToIntD(draft.PagesCount, 0)
			entry.Name = strings.TrimSpace(draft.Name)
			entry.SubName = strings.TrimSpace(draft.SubName)
			entry.IsAttachment = draft.IsAttachment
			break
		}

		if entry.PublicationID == "" {
			entry.PublicationID = defaultPublication
		}

		entries = append(entries, entry)
	}

	return entries
}

// defaultPublicationID returns the ID of the publication flagged as default,
// or the empty string when the reference list has none.
func defaultPublicationID(publications []*publication.Publication) string {
	for _, p := range publications {
		if p.IsDefault {
			return p.ID
		}
	}
	return ""
}
