// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package publication

import "context"

type Repository interface {
	List(context context.Context) ([]*Publication, error)
	GetByID(context context.Context, id string) (*Publication, error)
	Create(context context.Context, publication *Publication) error
	Update(context context.Context, publication *Publication) error
	Delete(context context.Context, id string) error
}
