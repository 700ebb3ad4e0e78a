// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import "github.com/mzalesak/periodika/pkg/uuidv7"

// # Duplication

// Duplication backs the "save as new" workflows: it clones a persisted
// record into a fresh editable draft with a new identity. Both functions are
// pure; inserting the clone into a draft list and persisting it are the
// caller's concern.

/*
DuplicateVolume clones a volume into an unsaved draft.

The clone receives a fresh ID and a cleared bar code (bar codes identify one
physical binding and must be re-entered); every other field is preserved.
*/
func DuplicateVolume(source *Volume) *Volume {
	clone := *source
	clone.ID = uuidv7.New()
	clone.BarCode = ""

	clone.Periodicity = make([]PeriodicityEntry, len(source.Periodicity))
	copy(clone.Periodicity, source.Periodicity)

	return &clone
}

/*
DuplicateSpecimen clones a specimen into an unsaved draft bound to the given
(possibly freshly duplicated) volume.

The clone receives a fresh ID, is rebound to the target volume's identity and
owner, and starts with cleared bar code, note, and damage records — physical
condition belongs to one concrete copy and is never inherited. Descriptive
and scheduling fields are copied. The Duplicated marker tells the editing UI
the row may be deleted from the draft; original rows are only editable in
place.
*/
func DuplicateSpecimen(source *Specimen, target *Volume) *Specimen {
	clone := *source
	clone.ID = uuidv7.New()

	clone.VolumeID = target.ID
	clone.MetaTitleID = target.MetaTitleID
	clone.OwnerID = target.OwnerID

	clone.BarCode = ""
	clone.Note = ""
	clone.DamageTypes = []DamageType{}
	clone.DamagedPages = []int{}
	clone.MissingPages = []int{}

	clone.Number = copyNumber(source.Number)
	clone.AttachmentNumber = copyNumber(source.AttachmentNumber)

	clone.Duplicated = true

	return &clone
}

// copyNumber deep-copies an optional sequence number so the clone and the
// source never share a pointer.
func copyNumber(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := *raw
	return &value
}
