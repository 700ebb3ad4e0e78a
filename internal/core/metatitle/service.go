// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package metatitle

import (
	"context"
	"log/slog"

	"github.com/mzalesak/periodika/internal/platform/validate"
	"github.com/mzalesak/periodika/pkg/pagination"
	"github.com/mzalesak/periodika/pkg/uuidv7"
)

const (
	FieldName = "name"
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

// ListOverviews returns one page of title overviews. Anonymous callers
// only see titles flagged public; authenticated users see the full
// catalogue.
func (service *Service) ListOverviews(context context.Context, authenticated bool, params pagination.Params) ([]*Overview, pagination.Meta, error) {
	overviews, total, err := service.repo.ListOverviews(context, !authenticated, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if overviews == nil {
		overviews = []*Overview{}
	}

	return overviews, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) GetMetaTitle(context context.Context, id string) (*MetaTitle, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) CreateMetaTitle(context context.Context, title *MetaTitle) error {
	if title.ID == "" {
		title.ID = uuidv7.New()
	}

	if err := validateMetaTitle(title); err != nil {
		return err
	}

	if err := service.repo.Create(context, title); err != nil {
		return err
	}

	service.logger.Info("metatitle_created",
		slog.String("metatitle_id", title.ID),
		slog.String("name", title.Name),
	)

	return nil
}

func (service *Service) UpdateMetaTitle(context context.Context, title *MetaTitle) error {
	if err := validateMetaTitle(title); err != nil {
		return err
	}

	return service.repo.Update(context, title)
}

func (service *Service) DeleteMetaTitle(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("metatitle_deleted", slog.String("metatitle_id", id))
	return nil
}

func validateMetaTitle(title *MetaTitle) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, title.Name)
	validator.MaxLen(FieldName, title.Name, 255)
	return validator.Err()
}
