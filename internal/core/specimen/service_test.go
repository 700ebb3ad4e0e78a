// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package specimen_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/core/specimen"
	"github.com/mzalesak/periodika/internal/core/volume"
)

type fakeRepository struct {
	items      []*volume.Specimen
	total      int
	lastOffset int
	lastRows   int
}

func (f *fakeRepository) List(_ context.Context, _ specimen.Filter, offset, rows int) ([]*volume.Specimen, int, error) {
	f.lastOffset = offset
	f.lastRows = rows
	return f.items, f.total, nil
}

func (f *fakeRepository) Facets(_ context.Context, _ specimen.Filter) (*specimen.Facets, error) {
	return &specimen.Facets{}, nil
}

func (f *fakeRepository) ListYear(_ context.Context, _ string, _ int, _ specimen.Filter) ([]*volume.Specimen, error) {
	return f.items, nil
}

func newTestService(repo *fakeRepository) *specimen.Service {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return specimen.NewService(repo, logger)
}

/*
TestService_Overview_ClampsWindow verifies the page window is normalized
before it reaches the repository and the view defaults to the table.
*/
func TestService_Overview_ClampsWindow(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	result, err := service.Overview(context.Background(), specimen.Filter{}, -5, 0, "")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, repo.lastOffset, 0)
	assert.Greater(t, repo.lastRows, 0)

	// Empty matches serialize as [], never null.
	assert.NotNil(t, result.Items)
	assert.NotNil(t, result.Facets)
}

/*
TestService_Overview_RejectsUnknownView verifies an unknown view name is a
validation error.
*/
func TestService_Overview_RejectsUnknownView(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.Overview(context.Background(), specimen.Filter{}, 0, 50, specimen.View("kanban"))

	require.Error(t, err)
}

/*
TestService_Calendar_GroupsByDate verifies chronological rows collapse into
per-day groups with order preserved.
*/
func TestService_Calendar_GroupsByDate(t *testing.T) {
	repo := &fakeRepository{
		items: []*volume.Specimen{
			{ID: "s1", PublicationDate: "1987-06-01"},
			{ID: "s2", PublicationDate: "1987-06-01"},
			{ID: "s3", PublicationDate: "1987-06-04"},
		},
	}
	service := newTestService(repo)

	days, err := service.Calendar(context.Background(), "mt-1", 1987, specimen.Filter{})

	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "1987-06-01", days[0].Date)
	assert.Len(t, days[0].Specimens, 2)
	assert.Equal(t, "1987-06-04", days[1].Date)
	assert.Equal(t, "s3", days[1].Specimens[0].ID)
}

/*
TestService_Calendar_BadInput covers the request-level checks: missing
title and out-of-range year.
*/
func TestService_Calendar_BadInput(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.Calendar(context.Background(), "", 1987, specimen.Filter{})
	require.Error(t, err)

	_, err = service.Calendar(context.Background(), "mt-1", 87, specimen.Filter{})
	require.Error(t, err)
}
