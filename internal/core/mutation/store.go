package mutation

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListMutations(context context.Context) ([]*Mutation, error)
	GetMutationByID(context context.Context, id string) (*Mutation, error)
	CreateMutation(context context.Context, mutation *Mutation) error
	UpdateMutation(context context.Context, mutation *Mutation) error
	DeleteMutation(context context.Context, id string) error
}
