// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import "context"

// Repository defines the data access contract for volumes and their
// specimens.
type Repository interface {
	GetVolume(context context.Context, id string) (*Volume, error)

	// ListSpecimens returns a volume's specimens in display order:
	// chronological, with attachments sorted after the main sequence when
	// attachmentsAtEnd is set.
	ListSpecimens(context context.Context, volumeID string, attachmentsAtEnd bool) ([]*Specimen, error)

	// SaveVolume persists a repaired volume and the full specimen list it
	// owns in one transaction. Existing specimens of the volume are
	// replaced by the given list.
	SaveVolume(context context.Context, volume *Volume, specimens []*Specimen) error

	// UpdateSpecimenNumbers persists only the sequence-number columns of
	// the given specimens.
	UpdateSpecimenNumbers(context context.Context, specimens []*Specimen) error

	// DeleteVolume removes a volume and every specimen bound to it.
	DeleteVolume(context context.Context, id string) error
}
