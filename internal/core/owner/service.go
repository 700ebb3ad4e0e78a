package owner

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

func (service *Service) ListOwners(context context.Context) ([]*Owner, error) {
	return service.repo.ListOwners(context)
}

func (service *Service) GetOwner(context context.Context, id string) (*Owner, error) {
	return service.repo.GetOwnerByID(context, id)
}

func (service *Service) CreateOwner(context context.Context, owner *Owner) error {
	if owner.ID == "" {
		owner.ID = uuidv7.New()
	}

	if err := validateOwner(owner); err != nil {
		return err
	}

	return service.repo.CreateOwner(context, owner)
}

func (service *Service) UpdateOwner(context context.Context, owner *Owner) error {
	if err := validateOwner(owner); err != nil {
		return err
	}

	return service.repo.UpdateOwner(context, owner)
}

func (service *Service) DeleteOwner(context context.Context, id string) error {
	if err := service.repo.DeleteOwner(context, id); err != nil {
		return err
	}

	service.logger.Info("owner_deleted", slog.String("owner_id", id))
	return nil
}

func validateOwner(owner *Owner) error {
	validator := &validate.Validator{}
	validator.Required("name", owner.Name)
	validator.Required("sigla", owner.Sigla)
	validator.MaxLen("sigla", owner.Sigla, 20)
	return validator.Err()
}
