// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/pkg/pointer"
)

/*
TestDuplicateVolume verifies the clone gets a fresh identity and a cleared
bar code while everything else is preserved, and that the periodicity slice
is not shared with the source.
*/
func TestDuplicateVolume(t *testing.T) {
	source := &volume.Volume{
		ID:          "vol-1",
		BarCode:     "2610He001",
		Signature:   "Sig 44",
		MetaTitleID: "mt-1",
		Year:        1986,
		Periodicity: []volume.PeriodicityEntry{
			{Weekday: volume.WeekdayMonday, Active: true, PublicationID: "pub-main"},
		},
	}

	clone := volume.DuplicateVolume(source)

	assert.NotEqual(t, source.ID, clone.ID)
	assert.NotEmpty(t, clone.ID)
	assert.Empty(t, clone.BarCode)

	assert.Equal(t, source.Signature, clone.Signature)
	assert.Equal(t, source.MetaTitleID, clone.MetaTitleID)
	assert.Equal(t, source.Year, clone.Year)

	// The template is deep-copied, not aliased.
	require.Len(t, clone.Periodicity, 1)
	clone.Periodicity[0].PublicationID = "pub-other"
	assert.Equal(t, "pub-main", source.Periodicity[0].PublicationID)
}

/*
TestDuplicateSpecimen verifies the clone is rebound to the target volume,
starts with a clean condition record, and shares no number pointers with the
source.
*/
func TestDuplicateSpecimen(t *testing.T) {
	source := &volume.Specimen{
		ID:           "spec-1",
		VolumeID:     "vol-1",
		MetaTitleID:  "mt-1",
		OwnerID:      "own-1",
		BarCode:      "2610He001",
		NumExists:    true,
		Number:       pointer.To("12"),
		Name:         "Morning issue",
		Note:         "water damage on spine",
		DamageTypes:  []volume.DamageType{volume.DamagePP},
		DamagedPages: []int{3, 4},
	}

	target := &volume.Volume{ID: "vol-2", MetaTitleID: "mt-2", OwnerID: "own-2"}

	clone := volume.DuplicateSpecimen(source, target)

	assert.NotEqual(t, source.ID, clone.ID)
	assert.Equal(t, "vol-2", clone.VolumeID)
	assert.Equal(t, "mt-2", clone.MetaTitleID)
	assert.Equal(t, "own-2", clone.OwnerID)
	assert.True(t, clone.Duplicated)

	// Physical-condition fields belong to one concrete copy.
	assert.Empty(t, clone.BarCode)
	assert.Empty(t, clone.Note)
	assert.Empty(t, clone.DamageTypes)
	assert.Empty(t, clone.DamagedPages)

	// Descriptive fields carry over.
	assert.Equal(t, source.Name, clone.Name)
	assert.True(t, clone.NumExists)

	// Sequence numbers are copied by value.
	require.NotNil(t, clone.Number)
	*clone.Number = "13"
	assert.Equal(t, "12", *source.Number)
}
