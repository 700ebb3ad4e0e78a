package mutation

import (
	"context"
	"log/slog"

	"github.com/mzalesak/periodika/internal/platform/validate"
	"github.com/mzalesak/periodika/pkg/uuidv7"
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

func (service *Service) ListMutations(context context.Context) ([]*Mutation, error) {
	return service.repo.ListMutations(context)
}

func (service *Service) GetMutation(context context.Context, id string) (*Mutation, error) {
	return service.repo.GetMutationByID(context, id)
}

func (service *Service) CreateMutation(context context.Context, mutation *Mutation) error {
	if mutation.ID == "" {
		mutation.ID = uuidv7.New()
	}

	validator := &validate.Validator{}
	validator.Required("name", mutation.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.CreateMutation(context, mutation)
}

func (service *Service) UpdateMutation(context context.Context, mutation *Mutation) error {
	validator := &validate.Validator{}
	validator.Required("name", mutation.Name)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.UpdateMutation(context, mutation)
}

func (service *Service) DeleteMutation(context context.Context, id string) error {
	if err := service.repo.DeleteMutation(context, id); err != nil {
		return err
	}

	service.logger.Info("mutation_deleted", slog.String("mutation_id", id))
	return nil
}
