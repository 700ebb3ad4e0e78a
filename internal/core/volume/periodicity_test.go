// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/core/volume"
)

// weeklyVolume builds a repaired-shape volume issuing on the given weekdays
// over the first two ISO weeks of June 1987.
func weeklyVolume(active ...volume.Weekday) *volume.Volume {
	activeSet := map[volume.Weekday]bool{}
	for _, day := range active {
		activeSet[day] = true
	}

	entries := make([]volume.PeriodicityEntry, 0, len(volume.Weekdays()))
	for _, day := range volume.Weekdays() {
		entries = append(entries, volume.PeriodicityEntry{
			Weekday:       day,
			Active:        activeSet[day],
			PublicationID: "pub-main",
			PagesCount:    8,
			Name:          "Daily",
		})
	}

	return &volume.Volume{
		ID:          "vol-1",
		BarCode:     "2610He001",
		MetaTitleID: "mt-1",
		MutationID:  "mut-1",
		OwnerID:     "own-1",
		DateFrom:    "1987-06-01", // a Monday
		DateTo:      "1987-06-14",
		Periodicity: entries,
	}
}

/*
TestGenerateSpecimens_ActiveDaysOnly expands a Monday+Thursday template over
two weeks and verifies one draft per active day, in calendar order, carrying
the entry defaults.
*/
func TestGenerateSpecimens_ActiveDaysOnly(t *testing.T) {
	v := weeklyVolume(volume.WeekdayMonday, volume.WeekdayThursday)

	drafts := volume.GenerateSpecimens(v)

	require.Len(t, drafts, 4)

	dates := make([]string, 0, len(drafts))
	for _, draft := range drafts {
		dates = append(dates, draft.PublicationDate)
	}
	assert.Equal(t, []string{
		"1987-06-01", "1987-06-04", "1987-06-08", "1987-06-11",
	}, dates)

	first := drafts[0]
	assert.Equal(t, "pub-main", first.PublicationID)
	assert.Equal(t, 8, first.PagesCount)
	assert.Equal(t, "Daily", first.Name)
	assert.Equal(t, "01.06.1987", first.PublicationDateString)

	// Drafts are already repaired against the volume.
	assert.Equal(t, v.ID, first.VolumeID)
	assert.Equal(t, v.BarCode, first.BarCode)
	assert.NotEmpty(t, first.ID)

	// Numbering is left to the renumbering action.
	assert.Nil(t, first.Number)
	assert.Nil(t, first.AttachmentNumber)
}

/*
TestGenerateSpecimens_InactiveTemplate verifies a template with no active
days yields no drafts.
*/
func TestGenerateSpecimens_InactiveTemplate(t *testing.T) {
	drafts := volume.GenerateSpecimens(weeklyVolume())

	assert.Empty(t, drafts)
}

/*
TestGenerateSpecimens_BadRange covers unparseable and inverted date ranges.
*/
func TestGenerateSpecimens_BadRange(t *testing.T) {
	tests := []struct {
		name     string
		dateFrom string
		dateTo   string
	}{
		{"unparseable_from", "01.06.1987", "1987-06-14"},
		{"unparseable_to", "1987-06-01", "June 14th"},
		{"inverted", "1987-06-14", "1987-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := weeklyVolume(volume.WeekdayMonday)
			v.DateFrom = tt.dateFrom
			v.DateTo = tt.dateTo

			assert.Empty(t, volume.GenerateSpecimens(v))
		})
	}
}

/*
TestGenerateSpecimens_SingleDayRange verifies an equal from/to range still
produces the draft for that day.
*/
func TestGenerateSpecimens_SingleDayRange(t *testing.T) {
	v := weeklyVolume(volume.WeekdayMonday)
	v.DateFrom = "1987-06-01"
	v.DateTo = "1987-06-01"

	drafts := volume.GenerateSpecimens(v)

	require.Len(t, drafts, 1)
	assert.Equal(t, "1987-06-01", drafts[0].PublicationDate)
}
