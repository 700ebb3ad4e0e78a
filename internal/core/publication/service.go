// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package publication

import (
	"context"
	"log/slog"

	"github.com/mzalesak/periodika/internal/platform/validate"
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

func (service *Service) ListPublications(context context.Context) ([]*Publication, error) {
	return service.repo.List(context)
}

func (service *Service) GetPublication(context context.Context, id string) (*Publication, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) CreatePublication(context context.Context, publication *Publication) error {
	if publication.ID == "" {
		publication.ID = uuidv7.New()
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, publication.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(context, publication); err != nil {
		return err
	}

	service.logger.Info("publication_created",
		slog.String("publication_id", publication.ID),
		slog.String("name", publication.Name),
	)

	return nil
}

func (service *Service) UpdatePublication(context context.Context, publication *Publication) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, publication.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.Update(context, publication)
}

func (service *Service) DeletePublication(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("publication_deleted", slog.String("publication_id", id))
	return nil
}
