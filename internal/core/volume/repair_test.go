// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/core/publication"
	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/internal/platform/constants"
	"github.com/mzalesak/periodika/pkg/pointer"
)

func testVolume() *volume.Volume {
	return &volume.Volume{
		ID:          "vol-1",
		BarCode:     "2610He001",
		MetaTitleID: "mt-1",
		MutationID:  "mut-1",
		OwnerID:     "own-1",
	}
}

func testPublications() []*publication.Publication {
	return []*publication.Publication{
		{ID: "pub-att", Name: "Привет Summer Special", IsAttachment: true},
		{ID: "pub-main", Name: "Daily Edition", IsDefault: true},
	}
}

/*
TestRepairSpecimen_OwnerFieldsOverwritten verifies the referential fields
always come from the owning volume regardless of what the draft row carried.
*/
func TestRepairSpecimen_OwnerFieldsOverwritten(t *testing.T) {
	owner := testVolume()

	repaired := volume.RepairSpecimen(volume.Specimen{
		VolumeID:    "someone-elses-volume",
		MetaTitleID: "other-title",
		OwnerID:     "other-owner",
		BarCode:     "stale",
	}, owner)

	assert.Equal(t, owner.ID, repaired.VolumeID)
	assert.Equal(t, owner.MetaTitleID, repaired.MetaTitleID)
	assert.Equal(t, owner.OwnerID, repaired.OwnerID)
	assert.Equal(t, owner.BarCode, repaired.BarCode)
}

/*
TestRepairSpecimen_Identity checks ID handling: generated when absent,
preserved when present.
*/
func TestRepairSpecimen_Identity(t *testing.T) {
	owner := testVolume()

	generated := volume.RepairSpecimen(volume.Specimen{}, owner)
	assert.NotEmpty(t, generated.ID)

	kept := volume.RepairSpecimen(volume.Specimen{ID: "  spec-7  "}, owner)
	assert.Equal(t, "spec-7", kept.ID)
}

/*
TestRepairSpecimen_MutualExclusivity verifies a repaired specimen is never
both present and tracked as missing; presence wins.
*/
func TestRepairSpecimen_MutualExclusivity(t *testing.T) {
	repaired := volume.RepairSpecimen(volume.Specimen{
		NumExists:  true,
		NumMissing: true,
	}, testVolume())

	assert.True(t, repaired.NumExists)
	assert.False(t, repaired.NumMissing)
}

/*
TestRepairSpecimen_Numbers checks blank sequence numbers collapse to nil
while meaningful ones survive trimmed.
*/
func TestRepairSpecimen_Numbers(t *testing.T) {
	tests := []struct {
		name   string
		input  *string
		expect *string
	}{
		{"nil_stays_nil", nil, nil},
		{"blank_collapses", pointer.To("   "), nil},
		{"trimmed", pointer.To(" 42 "), pointer.To("42")},
		{"zero_is_valid", pointer.To("0"), pointer.To("0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaired := volume.RepairSpecimen(volume.Specimen{Number: tt.input}, testVolume())

			if tt.expect == nil {
				assert.Nil(t, repaired.Number)
				return
			}
			require.NotNil(t, repaired.Number)
			assert.Equal(t, *tt.expect, *repaired.Number)
		})
	}
}

/*
TestRepairSpecimen_PageLists verifies page lists are kept only alongside
their damage type and nil lists become empty.
*/
func TestRepairSpecimen_PageLists(t *testing.T) {
	owner := testVolume()

	// Lists without the matching damage type are dropped.
	orphaned := volume.RepairSpecimen(volume.Specimen{
		DamagedPages: []int{1, 2},
		MissingPages: []int{3},
	}, owner)
	assert.Empty(t, orphaned.DamagedPages)
	assert.Empty(t, orphaned.MissingPages)

	// Lists with the matching damage type survive.
	kept := volume.RepairSpecimen(volume.Specimen{
		DamageTypes:  []volume.DamageType{volume.DamagePP, volume.DamageChS},
		DamagedPages: []int{1, 2},
		MissingPages: []int{3},
	}, owner)
	assert.Equal(t, []int{1, 2}, kept.DamagedPages)
	assert.Equal(t, []int{3}, kept.MissingPages)

	// Nil collections become empty, never nil.
	blank := volume.RepairSpecimen(volume.Specimen{}, owner)
	assert.NotNil(t, blank.DamageTypes)
	assert.NotNil(t, blank.DamagedPages)
	assert.NotNil(t, blank.MissingPages)
}

/*
TestRepairSpecimen_Idempotent verifies repairing a repaired specimen is a
no-op.
*/
func TestRepairSpecimen_Idempotent(t *testing.T) {
	owner := testVolume()

	once := volume.RepairSpecimen(volume.Specimen{
		Name:         "  Morning issue ",
		NumExists:    true,
		NumMissing:   true,
		Number:       pointer.To(" 5 "),
		DamageTypes:  []volume.DamageType{volume.DamagePP},
		DamagedPages: []int{4},
	}, owner)

	twice := volume.RepairSpecimen(once, owner)

	assert.Equal(t, once, twice)
}

/*
TestRepairVolume_NumberCoercion exercises the string-or-number handling of
the loosely-typed draft fields, including the unset sentinel.
*/
func TestRepairVolume_NumberCoercion(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		expect int
	}{
		{"int_passthrough", 1986, 1986},
		{"float_from_json", float64(12), 12},
		{"numeric_string", "7", 7},
		{"zero_is_valid", "0", 0},
		{"blank_is_unset", "", constants.UnsetNumber},
		{"nil_is_unset", nil, constants.UnsetNumber},
		{"garbage_is_unset", "abc", constants.UnsetNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaired := volume.RepairVolume(volume.Draft{
				Year:        tt.value,
				FirstNumber: tt.value,
				LastNumber:  tt.value,
			}, testPublications())

			assert.Equal(t, tt.expect, repaired.Year)
			assert.Equal(t, tt.expect, repaired.FirstNumber)
			assert.Equal(t, tt.expect, repaired.LastNumber)
		})
	}
}

/*
TestRepairVolume_PeriodicityInvariant verifies the template is always
normalized to exactly 7 entries, one per weekday, Monday first, regardless
of what the draft supplied.
*/
func TestRepairVolume_PeriodicityInvariant(t *testing.T) {
	tests := []struct {
		name    string
		entries []volume.PeriodicityEntryDraft
	}{
		{"no_entries", nil},
		{"partial_week", []volume.PeriodicityEntryDraft{
			{Weekday: volume.WeekdayFriday, Active: true, PublicationID: "pub-x"},
		}},
		{"unknown_weekday_dropped", []volume.PeriodicityEntryDraft{
			{Weekday: volume.Weekday("caturday"), Active: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaired := volume.RepairVolume(volume.Draft{Periodicity: tt.entries}, testPublications())

			require.Len(t, repaired.Periodicity, constants.PeriodicityLength)
			for i, day := range volume.Weekdays() {
				assert.Equal(t, day, repaired.Periodicity[i].Weekday)
			}
		})
	}
}

/*
TestRepairVolume_DefaultPublication verifies periodicity entries without a
publication fall back to the reference publication flagged as default.
*/
func TestRepairVolume_DefaultPublication(t *testing.T) {
	repaired := volume.RepairVolume(volume.Draft{
		Periodicity: []volume.PeriodicityEntryDraft{
			{Weekday: volume.WeekdayMonday, Active: true, PublicationID: "pub-att"},
			{Weekday: volume.WeekdayTuesday, Active: true},
		},
	}, testPublications())

	assert.Equal(t, "pub-att", repaired.Periodicity[0].PublicationID)
	for _, entry := range repaired.Periodicity[1:] {
		assert.Equal(t, "pub-main", entry.PublicationID)
	}
}

/*
TestRepairVolume_Idempotent round-trips a repaired volume back through its
draft form and verifies the second repair changes nothing.
*/
func TestRepairVolume_Idempotent(t *testing.T) {
	once := volume.RepairVolume(volume.Draft{
		BarCode:     " 2610He001 ",
		MetaTitleID: "mt-1",
		Year:        "1986",
		FirstNumber: "",
		DateFrom:    "1986-01-01",
		DateTo:      "1986-06-30",
		Periodicity: []volume.PeriodicityEntryDraft{
			{Weekday: volume.WeekdayWednesday, Active: true, PagesCount: "8"},
		},
	}, testPublications())

	twice := volume.RepairVolume(once.AsDraft(), testPublications())

	assert.Equal(t, once, twice)
}
