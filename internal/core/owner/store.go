package owner

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListOwners(context context.Context) ([]*Owner, error)
	GetOwnerByID(context context.Context, id string) (*Owner, error)
	CreateOwner(context context.Context, owner *Owner) error
	UpdateOwner(context context.Context, owner *Owner) error
	DeleteOwner(context context.Context, id string) error
}
