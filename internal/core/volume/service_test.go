// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/core/publication"
	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/internal/platform/apperr"
	"github.com/mzalesak/periodika/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	volume        *volume.Volume
	specimens     []*volume.Specimen
	savedVolume   *volume.Volume
	savedList     []*volume.Specimen
	updatedRows   []*volume.Specimen
	deletedVolume string
}

func (f *fakeRepository) GetVolume(_ context.Context, id string) (*volume.Volume, error) {
	if f.volume == nil || f.volume.ID != id {
		return nil, apperr.NotFound("Volume")
	}
	return f.volume, nil
}

func (f *fakeRepository) ListSpecimens(_ context.Context, _ string, _ bool) ([]*volume.Specimen, error) {
	return f.specimens, nil
}

func (f *fakeRepository) SaveVolume(_ context.Context, v *volume.Volume, specimens []*volume.Specimen) error {
	f.savedVolume = v
	f.savedList = specimens
	return nil
}

func (f *fakeRepository) UpdateSpecimenNumbers(_ context.Context, specimens []*volume.Specimen) error {
	f.updatedRows = specimens
	return nil
}

func (f *fakeRepository) DeleteVolume(_ context.Context, id string) error {
	f.deletedVolume = id
	return nil
}

type fakePublications struct{}

func (fakePublications) List(_ context.Context) ([]*publication.Publication, error) {
	return []*publication.Publication{
		{ID: "pub-main", Name: "Daily Edition", IsDefault: true},
	}, nil
}

func newTestService(repo *fakeRepository) *volume.Service {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return volume.NewService(repo, fakePublications{}, logger)
}

func validDraft() volume.Draft {
	return volume.Draft{
		BarCode:     "2610He001",
		MetaTitleID: "mt-1",
		MutationID:  "mut-1",
		OwnerID:     "own-1",
		DateFrom:    "1987-06-01",
		DateTo:      "1987-06-14",
	}
}

/*
TestService_Save_RepairsAndPersists verifies the happy path: drafts are
repaired, validated, and handed to the repository as one batch.
*/
func TestService_Save_RepairsAndPersists(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	detail, err := service.Save(context.Background(), validDraft(), []volume.Specimen{
		{PublicationID: "pub-main", MutationID: "mut-1", PublicationDate: "1987-06-01"},
	})

	require.NoError(t, err)
	require.NotNil(t, repo.savedVolume)
	require.Len(t, repo.savedList, 1)

	assert.NotEmpty(t, detail.Volume.ID)
	assert.Len(t, detail.Volume.Periodicity, 7)
	assert.Equal(t, detail.Volume.ID, repo.savedList[0].VolumeID)
	assert.Equal(t, "2610He001", repo.savedList[0].BarCode)
}

/*
TestService_Save_AbortsOnInvalidSpecimen verifies one bad row fails the
whole batch before anything is written.
*/
func TestService_Save_AbortsOnInvalidSpecimen(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	_, err := service.Save(context.Background(), validDraft(), []volume.Specimen{
		{PublicationID: "pub-main", MutationID: "mut-1", PublicationDate: "1987-06-01"},
		{PublicationID: "pub-main", MutationID: "mut-1", PublicationDate: "not a date"},
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	assert.Nil(t, repo.savedVolume)
	assert.Nil(t, repo.savedList)
}

/*
TestService_Save_RejectsInvalidVolume covers the volume-level checks:
missing bar code and inverted date range.
*/
func TestService_Save_RejectsInvalidVolume(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*volume.Draft)
	}{
		{"missing_bar_code", func(d *volume.Draft) { d.BarCode = "" }},
		{"inverted_range", func(d *volume.Draft) { d.DateFrom, d.DateTo = d.DateTo, d.DateFrom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			draft := validDraft()
			tt.mutate(&draft)

			_, err := service.Save(context.Background(), draft, nil)

			require.Error(t, err)
			assert.Nil(t, repo.savedVolume)
		})
	}
}

/*
TestService_RenumberSpecimens_DryRun verifies a dry run reports the result
without persisting anything.
*/
func TestService_RenumberSpecimens_DryRun(t *testing.T) {
	repo := &fakeRepository{
		volume: &volume.Volume{ID: "vol-1"},
		specimens: []*volume.Specimen{
			{ID: "s1", NumExists: true, Number: pointer.To("5")},
			{ID: "s2", NumExists: true, Number: pointer.To("9")},
		},
	}
	service := newTestService(repo)

	result, err := service.RenumberSpecimens(
		context.Background(), "vol-1", "s1", volume.SequenceNumber, true,
	)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 5, result.FirstNumber)
	assert.Equal(t, 6, result.LastNumber)
	assert.Nil(t, repo.updatedRows)
}

/*
TestService_RenumberSpecimens_Persists verifies a real run writes back
exactly the touched rows.
*/
func TestService_RenumberSpecimens_Persists(t *testing.T) {
	repo := &fakeRepository{
		volume: &volume.Volume{ID: "vol-1"},
		specimens: []*volume.Specimen{
			{ID: "s1", NumExists: true, Number: pointer.To("5")},
			{ID: "skip", IsAttachment: true, NumExists: true},
			{ID: "s2", NumExists: true, Number: pointer.To("9")},
		},
	}
	service := newTestService(repo)

	result, err := service.RenumberSpecimens(
		context.Background(), "vol-1", "s1", volume.SequenceNumber, false,
	)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, repo.updatedRows, 2)
	assert.Equal(t, "s1", repo.updatedRows[0].ID)
	assert.Equal(t, "s2", repo.updatedRows[1].ID)
}

/*
TestService_RenumberSpecimens_BadInput covers the request-level validation:
blank anchor and unknown sequence.
*/
func TestService_RenumberSpecimens_BadInput(t *testing.T) {
	service := newTestService(&fakeRepository{volume: &volume.Volume{ID: "vol-1"}})

	_, err := service.RenumberSpecimens(
		context.Background(), "vol-1", "", volume.SequenceNumber, false,
	)
	require.Error(t, err)

	_, err = service.RenumberSpecimens(
		context.Background(), "vol-1", "s1", volume.Sequence("chapters"), false,
	)
	require.Error(t, err)
}

/*
TestService_DuplicateDetail verifies duplication returns an unsaved draft
with rebound specimens and writes nothing.
*/
func TestService_DuplicateDetail(t *testing.T) {
	repo := &fakeRepository{
		volume: &volume.Volume{ID: "vol-1", BarCode: "2610He001", MetaTitleID: "mt-1"},
		specimens: []*volume.Specimen{
			{ID: "s1", VolumeID: "vol-1", BarCode: "2610He001"},
		},
	}
	service := newTestService(repo)

	detail, err := service.DuplicateDetail(context.Background(), "vol-1")

	require.NoError(t, err)
	assert.NotEqual(t, "vol-1", detail.Volume.ID)
	assert.Empty(t, detail.Volume.BarCode)

	require.Len(t, detail.Specimens, 1)
	assert.Equal(t, detail.Volume.ID, detail.Specimens[0].VolumeID)
	assert.True(t, detail.Specimens[0].Duplicated)

	assert.Nil(t, repo.savedVolume)
}

/*
TestService_GenerateDrafts verifies periodicity expansion goes through
repair and performs no writes.
*/
func TestService_GenerateDrafts(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	draft := validDraft()
	draft.Periodicity = []volume.PeriodicityEntryDraft{
		{Weekday: volume.WeekdayMonday, Active: true, PagesCount: "8"},
	}

	detail, err := service.GenerateDrafts(context.Background(), draft)

	require.NoError(t, err)
	require.Len(t, detail.Specimens, 2) // Mondays 1987-06-01 and 1987-06-08
	assert.Equal(t, "pub-main", detail.Specimens[0].PublicationID)
	assert.Nil(t, repo.savedVolume)
}
