// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package specimen

import (
	"context"
	"log/slog"

	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/internal/platform/validate"
	"github.com/mzalesak/periodika/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Overview serves the specimen table: one clamped page of matches plus the
// facet counts computed under the same filter.
func (service *Service) Overview(context context.Context, filter Filter, offset, rows int, view View) (*ListResult, error) {
	if view == "" {
		view = ViewTable
	}

	validator := &validate.Validator{}
	validator.OneOf("view", string(view), string(ViewTable), string(ViewCalendar))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	offset, rows = pagination.Window(offset, rows)

	items, total, err := service.repo.List(context, filter, offset, rows)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*volume.Specimen{}
	}

	facets, err := service.repo.Facets(context, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: items, Total: total, Facets: facets}, nil
}

// Calendar groups one title-year of specimens by publication date for
// calendar rendering. Days without issues are omitted.
func (service *Service) Calendar(context context.Context, metaTitleID string, year int, filter Filter) ([]CalendarDay, error) {
	validator := &validate.Validator{}
	validator.Required("meta_title_id", metaTitleID)
	validator.Range("year", year, 1500, 2999)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	specimens, err := service.repo.ListYear(context, metaTitleID, year, filter)
	if err != nil {
		return nil, err
	}

	// Rows arrive chronologically, so grouping preserves calendar order.
	days := []CalendarDay{}
	for _, s := range specimens {
		if len(days) == 0 || days[len(days)-1].Date != s.PublicationDate {
			days = append(days, CalendarDay{Date: s.PublicationDate})
		}
		last := &days[len(days)-1]
		last.Specimens = append(last.Specimens, s)
	}

	return days, nil
}
